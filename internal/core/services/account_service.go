package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbooks-app/openbooks/internal/core/ports/services"
	"github.com/openbooks-app/openbooks/internal/dto"
)

// accountService manages the chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount validates and persists a new account. The code must be unique
// and the type must be one of the five fundamental types.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	accountType := domain.AccountType(req.AccountType)
	if !domain.ValidAccountType(accountType) {
		return nil, fmt.Errorf("invalid account type %q: %w", req.AccountType, apperrors.ErrValidation)
	}

	parentAccountID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID); err != nil {
			return nil, fmt.Errorf("parent account lookup failed: %w", err)
		}
		parentAccountID = *req.ParentAccountID
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     accountType,
		ParentAccountID: parentAccountID,
		Description:     req.Description,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("code", req.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves a specific account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// GetAccountByCode retrieves an account by its chart-of-accounts code.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByCode(ctx, code)
}

// ListAccounts retrieves a paginated list of accounts.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	filter := portsrepo.AccountListFilter{ActiveOnly: params.ActiveOnly}
	if params.AccountType != nil && *params.AccountType != "" {
		accountType := domain.AccountType(*params.AccountType)
		if !domain.ValidAccountType(accountType) {
			return nil, fmt.Errorf("invalid account type filter %q: %w", *params.AccountType, apperrors.ErrValidation)
		}
		filter.AccountType = &accountType
	}
	return s.accountRepo.ListAccounts(ctx, filter, params.Limit, params.Offset)
}

// UpdateAccount applies the provided fields to an existing account. The
// account type and code stay fixed for life, otherwise historical entries
// would change meaning.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// DeactivateAccount marks an account inactive. Its history remains intact.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	return s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now())
}
