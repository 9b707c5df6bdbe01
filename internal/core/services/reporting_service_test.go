package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portssvc "github.com/openbooks-app/openbooks/internal/core/ports/services"
	"github.com/openbooks-app/openbooks/internal/core/services"
	"github.com/openbooks-app/openbooks/internal/utils/accounting"
)

func TestDefaultCashAccountMatcher(t *testing.T) {
	matcher := services.DefaultCashAccountMatcher("10")

	tests := []struct {
		name    string
		account domain.Account
		want    bool
	}{
		{"asset named cash", domain.Account{AccountType: domain.Asset, Code: "9999", Name: "Petty Cash"}, true},
		{"asset named bank", domain.Account{AccountType: domain.Asset, Code: "9999", Name: "Main Bank Account"}, true},
		{"asset with cash code prefix", domain.Account{AccountType: domain.Asset, Code: "1050", Name: "Till Float"}, true},
		{"plain asset", domain.Account{AccountType: domain.Asset, Code: "1400", Name: "Inventory"}, false},
		{"liability named bank", domain.Account{AccountType: domain.Liability, Code: "2100", Name: "Bank Loan"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher(tt.account))
		})
	}
}

func TestDefaultCashFlowClassifier(t *testing.T) {
	tests := []struct {
		name            string
		transactionType domain.TransactionType
		description     string
		want            domain.CashActivity
	}{
		{"sale", domain.SaleTransaction, "Sales invoice INV-0000001", domain.OperatingActivity},
		{"expense", domain.ExpenseTransaction, "Office rent", domain.OperatingActivity},
		{"plain purchase", domain.PurchaseTransaction, "Stock replenishment", domain.OperatingActivity},
		{"equipment purchase", domain.PurchaseTransaction, "New equipment for workshop", domain.InvestingActivity},
		{"manual loan", domain.ManualTransaction, "Loan drawdown from bank", domain.FinancingActivity},
		{"manual capital", domain.ManualTransaction, "Owner capital injection", domain.FinancingActivity},
		{"manual investment", domain.ManualTransaction, "Short term investment", domain.InvestingActivity},
		{"manual default", domain.ManualTransaction, "Correction of posting", domain.OperatingActivity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.DefaultCashFlowClassifier(tt.transactionType, tt.description))
		})
	}
}

type ReportingServiceTestSuite struct {
	suite.Suite
	reportingRepo *MockReportingRepository
	accountRepo   *MockAccountRepository
	service       portssvc.ReportingService
	ctx           context.Context
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.reportingRepo = new(MockReportingRepository)
	s.accountRepo = new(MockAccountRepository)
	s.service = services.NewReportingService(testConfig(), s.reportingRepo, s.accountRepo)
	s.ctx = context.Background()
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) TestBalanceSheet() {
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	balances := []domain.AccountBalance{
		{AccountID: uuid.NewString(), Code: "1000", Name: "Cash", AccountType: domain.Asset, Balance: decimal.NewFromInt(900)},
		{AccountID: uuid.NewString(), Code: "1200", Name: "Accounts Receivable", AccountType: domain.Asset, Balance: decimal.NewFromInt(100)},
		{AccountID: uuid.NewString(), Code: "1400", Name: "Inventory", AccountType: domain.Asset, Balance: decimal.Zero},
		{AccountID: uuid.NewString(), Code: "2100", Name: "Accounts Payable", AccountType: domain.Liability, Balance: decimal.NewFromInt(400)},
		{AccountID: uuid.NewString(), Code: "3000", Name: "Owner Equity", AccountType: domain.Equity, Balance: decimal.NewFromInt(600)},
	}
	s.reportingRepo.On("GetAccountBalances", mock.Anything, asOf).Return(balances, nil)

	report, err := s.service.BalanceSheet(s.ctx, asOf)

	s.NoError(err)
	s.Require().NotNil(report)
	s.Len(report.Assets, 2)
	s.Len(report.Liabilities, 1)
	s.Len(report.Equity, 1)
	s.True(report.TotalAssets.Equal(decimal.NewFromInt(1000)))
	s.True(report.TotalLiabilities.Equal(decimal.NewFromInt(400)))
	s.True(report.TotalEquity.Equal(decimal.NewFromInt(600)))
	s.True(report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity)))
}

func (s *ReportingServiceTestSuite) TestBalanceSheet_IdentityAfterMixedPostings() {
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	cash := domain.Account{AccountID: uuid.NewString(), Code: "1000", Name: "Cash", AccountType: domain.Asset}
	receivable := domain.Account{AccountID: uuid.NewString(), Code: "1200", Name: "Accounts Receivable", AccountType: domain.Asset}
	taxPayable := domain.Account{AccountID: uuid.NewString(), Code: "2300", Name: "Tax Payable", AccountType: domain.Liability}
	ownerEquity := domain.Account{AccountID: uuid.NewString(), Code: "3000", Name: "Owner Equity", AccountType: domain.Equity}
	revenue := domain.Account{AccountID: uuid.NewString(), Code: "4000", Name: "Sales Revenue", AccountType: domain.Revenue}
	rent := domain.Account{AccountID: uuid.NewString(), Code: "5100", Name: "Rent Expense", AccountType: domain.Expense}
	accountsByID := map[string]domain.Account{
		cash.AccountID:        cash,
		receivable.AccountID:  receivable,
		taxPayable.AccountID:  taxPayable,
		ownerEquity.AccountID: ownerEquity,
		revenue.AccountID:     revenue,
		rent.AccountID:        rent,
	}

	// A capital injection, a taxed sale and a rent payment, as the posting
	// rules would record them.
	lines := []domain.JournalLine{
		{AccountID: cash.AccountID, DebitAmount: decimal.NewFromInt(1000)},
		{AccountID: ownerEquity.AccountID, CreditAmount: decimal.NewFromInt(1000)},
		{AccountID: receivable.AccountID, DebitAmount: decimal.RequireFromString("138.75")},
		{AccountID: revenue.AccountID, CreditAmount: decimal.RequireFromString("125.00")},
		{AccountID: taxPayable.AccountID, CreditAmount: decimal.RequireFromString("13.75")},
		{AccountID: rent.AccountID, DebitAmount: decimal.NewFromInt(200)},
		{AccountID: cash.AccountID, CreditAmount: decimal.NewFromInt(200)},
	}

	totals := map[string]decimal.Decimal{}
	for _, line := range lines {
		signed, err := accounting.SignedAmount(line, accountsByID[line.AccountID].AccountType)
		s.Require().NoError(err)
		totals[line.AccountID] = totals[line.AccountID].Add(signed)
	}
	balances := make([]domain.AccountBalance, 0, len(totals))
	for id, balance := range totals {
		account := accountsByID[id]
		balances = append(balances, domain.AccountBalance{
			AccountID:   id,
			Code:        account.Code,
			Name:        account.Name,
			AccountType: account.AccountType,
			Balance:     balance,
		})
	}
	s.reportingRepo.On("GetAccountBalances", mock.Anything, asOf).Return(balances, nil)

	report, err := s.service.BalanceSheet(s.ctx, asOf)

	s.NoError(err)
	s.Require().NotNil(report)
	s.True(report.TotalAssets.Equal(decimal.RequireFromString("938.75")))
	s.True(report.TotalLiabilities.Equal(decimal.RequireFromString("13.75")))
	// Unclosed revenue minus expenses lands in equity as current earnings.
	s.True(report.TotalEquity.Equal(decimal.RequireFromString("925.00")))
	s.True(report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity)))
}

func (s *ReportingServiceTestSuite) TestIncomeStatement() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	revenue := []domain.AccountBalance{
		{Code: "4000", Name: "Sales Revenue", AccountType: domain.Revenue, Balance: decimal.NewFromInt(1500)},
	}
	expenses := []domain.AccountBalance{
		{Code: "5000", Name: "General Expenses", AccountType: domain.Expense, Balance: decimal.NewFromInt(400)},
		{Code: "5100", Name: "Rent", AccountType: domain.Expense, Balance: decimal.NewFromInt(600)},
	}
	s.reportingRepo.On("GetPeriodActivity", mock.Anything, from, to).Return(revenue, expenses, nil)

	report, err := s.service.IncomeStatement(s.ctx, from, to)

	s.NoError(err)
	s.Require().NotNil(report)
	s.True(report.TotalRevenue.Equal(decimal.NewFromInt(1500)))
	s.True(report.TotalExpenses.Equal(decimal.NewFromInt(1000)))
	s.True(report.NetIncome.Equal(decimal.NewFromInt(500)))
}

func (s *ReportingServiceTestSuite) TestIncomeStatement_InvertedPeriod() {
	from := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	report, err := s.service.IncomeStatement(s.ctx, from, to)

	s.Nil(report)
	s.ErrorIs(err, apperrors.ErrPeriodInvalid)
	s.reportingRepo.AssertNotCalled(s.T(), "GetPeriodActivity", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportingServiceTestSuite) TestCashFlow() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	cash := domain.Account{AccountID: uuid.NewString(), Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true}
	inventory := domain.Account{AccountID: uuid.NewString(), Code: "1400", Name: "Inventory", AccountType: domain.Asset, IsActive: true}
	s.accountRepo.On("ListAccounts", mock.Anything, mock.Anything, 500, 0).
		Return([]domain.Account{cash, inventory}, nil)

	saleEntry := uuid.NewString()
	loanEntry := uuid.NewString()
	noiseEntry := uuid.NewString()
	movements := []domain.CashMovement{
		// Two movements of the same entry merge into one line.
		{JournalEntryID: saleEntry, EntryDate: from, Description: "Sales invoice INV-0000001", TransactionType: domain.SaleTransaction, DebitAmount: decimal.NewFromInt(100)},
		{JournalEntryID: saleEntry, EntryDate: from, Description: "Sales invoice INV-0000001", TransactionType: domain.SaleTransaction, CreditAmount: decimal.NewFromInt(20)},
		{JournalEntryID: loanEntry, EntryDate: to, Description: "Loan drawdown", TransactionType: domain.ManualTransaction, DebitAmount: decimal.NewFromInt(500)},
		{JournalEntryID: noiseEntry, EntryDate: to, Description: "Rounding noise", TransactionType: domain.ManualTransaction, DebitAmount: decimal.RequireFromString("0.01")},
	}
	s.reportingRepo.On("GetCashMovements", mock.Anything, []string{cash.AccountID}, from, to).Return(movements, nil)

	report, err := s.service.CashFlow(s.ctx, from, to)

	s.NoError(err)
	s.Require().NotNil(report)
	s.Require().Len(report.Operating, 1)
	s.True(report.Operating[0].Amount.Equal(decimal.NewFromInt(80)))
	s.Require().Len(report.Financing, 1)
	s.True(report.Financing[0].Amount.Equal(decimal.NewFromInt(500)))
	s.Empty(report.Investing)
	s.True(report.NetOperating.Equal(decimal.NewFromInt(80)))
	s.True(report.NetFinancing.Equal(decimal.NewFromInt(500)))
	s.True(report.NetCashChange.Equal(decimal.NewFromInt(580)))
	s.reportingRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestCashFlow_PagesThroughLargeChart() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	firstPage := make([]domain.Account, 500)
	for i := range firstPage {
		firstPage[i] = domain.Account{
			AccountID:   uuid.NewString(),
			Code:        fmt.Sprintf("6%04d", i),
			Name:        "Misc Expense",
			AccountType: domain.Expense,
			IsActive:    true,
		}
	}
	cash := domain.Account{AccountID: uuid.NewString(), Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true}

	// The cash account sits on the second page and must still be found.
	s.accountRepo.On("ListAccounts", mock.Anything, mock.Anything, 500, 0).Return(firstPage, nil)
	s.accountRepo.On("ListAccounts", mock.Anything, mock.Anything, 500, 500).Return([]domain.Account{cash}, nil)
	s.reportingRepo.On("GetCashMovements", mock.Anything, []string{cash.AccountID}, from, to).
		Return([]domain.CashMovement{
			{JournalEntryID: uuid.NewString(), EntryDate: from, Description: "Sales invoice INV-0000002", TransactionType: domain.SaleTransaction, DebitAmount: decimal.NewFromInt(75)},
		}, nil)

	report, err := s.service.CashFlow(s.ctx, from, to)

	s.NoError(err)
	s.Require().NotNil(report)
	s.Require().Len(report.Operating, 1)
	s.True(report.NetOperating.Equal(decimal.NewFromInt(75)))
	s.accountRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestCashFlow_CustomClassifier() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	everythingInvesting := func(domain.TransactionType, string) domain.CashActivity {
		return domain.InvestingActivity
	}
	svc := services.NewReportingService(testConfig(), s.reportingRepo, s.accountRepo,
		services.WithCashFlowClassifier(everythingInvesting))

	cash := domain.Account{AccountID: uuid.NewString(), Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true}
	s.accountRepo.On("ListAccounts", mock.Anything, mock.Anything, 500, 0).
		Return([]domain.Account{cash}, nil)
	s.reportingRepo.On("GetCashMovements", mock.Anything, []string{cash.AccountID}, from, to).
		Return([]domain.CashMovement{
			{JournalEntryID: uuid.NewString(), EntryDate: from, Description: "Sales invoice", TransactionType: domain.SaleTransaction, DebitAmount: decimal.NewFromInt(50)},
		}, nil)

	report, err := svc.CashFlow(s.ctx, from, to)

	s.NoError(err)
	s.Require().NotNil(report)
	s.Empty(report.Operating)
	s.Require().Len(report.Investing, 1)
	s.True(report.NetInvesting.Equal(decimal.NewFromInt(50)))
}

func (s *ReportingServiceTestSuite) TestCashFlow_InvertedPeriod() {
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	report, err := s.service.CashFlow(s.ctx, from, to)

	s.Nil(report)
	s.ErrorIs(err, apperrors.ErrPeriodInvalid)
	s.accountRepo.AssertNotCalled(s.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
