package domain

// User represents an authenticated author of bookkeeping records.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Email        string `json:"email"`  // Unique login identifier
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"` // e.g. "admin", "bookkeeper"
	IsActive     bool   `json:"isActive"`
	AuditFields
}
