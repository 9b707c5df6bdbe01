package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// BalanceSide is the side on which an account normally carries its balance.
type BalanceSide string

const (
	DebitNormal  BalanceSide = "DEBIT"
	CreditNormal BalanceSide = "CREDIT"
)

// NormalSideFor returns the normal balance side for an account type.
// Assets and expenses grow on the debit side; liabilities, equity and
// revenue grow on the credit side.
func NormalSideFor(t AccountType) BalanceSide {
	switch t {
	case Asset, Expense:
		return DebitNormal
	default:
		return CreditNormal
	}
}

// ValidAccountType reports whether t is one of the five account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents an entry in the chart of accounts.
// This is the primary representation used by services.
type Account struct {
	AccountID       string      `json:"accountID"`       // Primary Key (UUID)
	Code            string      `json:"code"`            // Unique, sortable account code (e.g. "1000")
	Name            string      `json:"name"`            // User-defined name
	AccountType     AccountType `json:"accountType"`     // ASSET, LIABILITY, etc. Immutable after creation.
	ParentAccountID string      `json:"parentAccountID"` // Nullable FK -> accounts.account_id (Self-referencing)
	Description     string      `json:"description"`     // Nullable user description
	IsActive        bool        `json:"isActive"`
	AuditFields
}

// NormalSide returns the account's normal balance side.
func (a Account) NormalSide() BalanceSide {
	return NormalSideFor(a.AccountType)
}
