package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portssvc "github.com/openbooks-app/openbooks/internal/core/ports/services"
	"github.com/openbooks-app/openbooks/internal/core/services"
	"github.com/openbooks-app/openbooks/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	service     portssvc.AccountSvcFacade
	ctx         context.Context
	userID      string
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepository)
	s.service = services.NewAccountService(s.accountRepo)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	s.accountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil)

	account, err := s.service.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:        "1050",
		Name:        "Till Float",
		AccountType: "ASSET",
	}, s.userID)

	s.NoError(err)
	s.Require().NotNil(account)
	s.Equal("1050", account.Code)
	s.Equal(domain.Asset, account.AccountType)
	s.True(account.IsActive)
	s.Equal(s.userID, account.CreatedBy)
	s.accountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	account, err := s.service.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:        "1050",
		Name:        "Till Float",
		AccountType: "GOODWILL",
	}, s.userID)

	s.Nil(account)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.accountRepo.AssertNotCalled(s.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestCreateAccount_ParentOfDifferentType() {
	// Only parent existence is required; the hierarchy may mix types.
	parent := systemAccountFixture("4000", domain.Revenue)
	s.accountRepo.On("FindAccountByID", mock.Anything, parent.AccountID).Return(&parent, nil)
	s.accountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil)

	account, err := s.service.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:            "1050",
		Name:            "Till Float",
		AccountType:     "ASSET",
		ParentAccountID: &parent.AccountID,
	}, s.userID)

	s.NoError(err)
	s.Require().NotNil(account)
	s.Equal(parent.AccountID, account.ParentAccountID)
	s.Equal(domain.Asset, account.AccountType)
}

func (s *AccountServiceTestSuite) TestCreateAccount_ParentNotFound() {
	parentID := uuid.NewString()
	s.accountRepo.On("FindAccountByID", mock.Anything, parentID).
		Return(nil, apperrors.NewNotFoundError("account not found"))

	account, err := s.service.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:            "1050",
		Name:            "Till Float",
		AccountType:     "ASSET",
		ParentAccountID: &parentID,
	}, s.userID)

	s.Nil(account)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	s.accountRepo.On("SaveAccount", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate)

	account, err := s.service.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Cash Again",
		AccountType: "ASSET",
	}, s.userID)

	s.Nil(account)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_KeepsTypeAndCode() {
	existing := systemAccountFixture("1000", domain.Asset)
	s.accountRepo.On("FindAccountByID", mock.Anything, existing.AccountID).Return(&existing, nil)

	var updated domain.Account
	s.accountRepo.On("UpdateAccount", mock.Anything, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Account)
		}).
		Return(nil)

	newName := "Cash on Hand"
	account, err := s.service.UpdateAccount(s.ctx, existing.AccountID, dto.UpdateAccountRequest{Name: &newName}, s.userID)

	s.NoError(err)
	s.Require().NotNil(account)
	s.Equal("Cash on Hand", updated.Name)
	s.Equal(existing.Code, updated.Code)
	s.Equal(existing.AccountType, updated.AccountType)
	s.Equal(s.userID, updated.LastUpdatedBy)
}

func (s *AccountServiceTestSuite) TestListAccounts_InvalidTypeFilter() {
	bad := "GOODWILL"
	accounts, err := s.service.ListAccounts(s.ctx, dto.ListAccountsParams{AccountType: &bad, Limit: 20})

	s.Nil(accounts)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.accountRepo.AssertNotCalled(s.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestDeactivateAccount() {
	accountID := uuid.NewString()
	s.accountRepo.On("DeactivateAccount", mock.Anything, accountID, s.userID, mock.Anything).Return(nil)

	err := s.service.DeactivateAccount(s.ctx, accountID, s.userID)

	s.NoError(err)
	s.accountRepo.AssertExpectations(s.T())
}
