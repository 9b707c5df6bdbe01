package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbooks-app/openbooks/internal/core/ports/services"
	"github.com/openbooks-app/openbooks/internal/platform/config"
)

// CashAccountMatcher decides whether an account counts as cash or a cash
// equivalent for the cash flow statement.
type CashAccountMatcher func(account domain.Account) bool

// CashFlowClassifier assigns a cash movement to a cash flow activity based
// on the owning entry's transaction type and description.
type CashFlowClassifier func(transactionType domain.TransactionType, description string) domain.CashActivity

// DefaultCashAccountMatcher treats ASSET accounts as cash when their name
// mentions cash or bank, or their code carries the configured prefix.
func DefaultCashAccountMatcher(codePrefix string) CashAccountMatcher {
	return func(account domain.Account) bool {
		if account.AccountType != domain.Asset {
			return false
		}
		name := strings.ToLower(account.Name)
		if strings.Contains(name, "cash") || strings.Contains(name, "bank") {
			return true
		}
		return codePrefix != "" && strings.HasPrefix(account.Code, codePrefix)
	}
}

// DefaultCashFlowClassifier sorts movements by transaction type first and
// description keywords second. Sales and expenses are operating. Purchases
// are operating unless the description points at equipment or investments.
// Manual entries fall to keywords, defaulting to operating.
func DefaultCashFlowClassifier(transactionType domain.TransactionType, description string) domain.CashActivity {
	desc := strings.ToLower(description)
	switch transactionType {
	case domain.SaleTransaction, domain.ExpenseTransaction:
		return domain.OperatingActivity
	case domain.PurchaseTransaction:
		if strings.Contains(desc, "equipment") || strings.Contains(desc, "asset") || strings.Contains(desc, "investment") {
			return domain.InvestingActivity
		}
		return domain.OperatingActivity
	default:
		if strings.Contains(desc, "loan") || strings.Contains(desc, "equity") || strings.Contains(desc, "dividend") ||
			strings.Contains(desc, "financing") || strings.Contains(desc, "capital") {
			return domain.FinancingActivity
		}
		if strings.Contains(desc, "equipment") || strings.Contains(desc, "investment") || strings.Contains(desc, "asset purchase") {
			return domain.InvestingActivity
		}
		return domain.OperatingActivity
	}
}

// reportingService generates financial statements from posted entries.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountRepositoryFacade
	cashMatcher   CashAccountMatcher
	classifier    CashFlowClassifier
}

// ReportingOption customizes the reporting service.
type ReportingOption func(*reportingService)

// WithCashAccountMatcher overrides how cash accounts are identified.
func WithCashAccountMatcher(matcher CashAccountMatcher) ReportingOption {
	return func(s *reportingService) { s.cashMatcher = matcher }
}

// WithCashFlowClassifier overrides how cash movements are classified.
func WithCashFlowClassifier(classifier CashFlowClassifier) ReportingOption {
	return func(s *reportingService) { s.classifier = classifier }
}

// NewReportingService creates a new reporting service.
func NewReportingService(cfg *config.Config, reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountRepositoryFacade, opts ...ReportingOption) portssvc.ReportingService {
	s := &reportingService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
		cashMatcher:   DefaultCashAccountMatcher(cfg.CashAccountCodePrefix),
		classifier:    DefaultCashFlowClassifier,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// BalanceSheet groups as-of balances into assets, liabilities and equity.
// Accounts with a zero balance are left out, matching what a bookkeeper
// expects to read. Unclosed revenue and expense balances are folded into
// equity as current earnings, so assets always equal liabilities plus equity.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	balances, err := s.reportingRepo.GetAccountBalances(ctx, asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:        asOf,
		Assets:      []domain.AccountBalance{},
		Liabilities: []domain.AccountBalance{},
		Equity:      []domain.AccountBalance{},
	}
	currentEarnings := decimal.Zero
	for _, balance := range balances {
		if balance.Balance.IsZero() {
			continue
		}
		switch balance.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, balance)
			report.TotalAssets = report.TotalAssets.Add(balance.Balance)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, balance)
			report.TotalLiabilities = report.TotalLiabilities.Add(balance.Balance)
		case domain.Equity:
			report.Equity = append(report.Equity, balance)
			report.TotalEquity = report.TotalEquity.Add(balance.Balance)
		case domain.Revenue:
			currentEarnings = currentEarnings.Add(balance.Balance)
		case domain.Expense:
			currentEarnings = currentEarnings.Sub(balance.Balance)
		}
	}
	if !currentEarnings.IsZero() {
		report.Equity = append(report.Equity, domain.AccountBalance{
			Name:        "Current Earnings",
			AccountType: domain.Equity,
			Balance:     currentEarnings,
		})
		report.TotalEquity = report.TotalEquity.Add(currentEarnings)
	}
	return report, nil
}

// IncomeStatement summarises revenue and expense activity within [from, to].
func (s *reportingService) IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatementReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("period end %s is before start %s: %w", to.Format("2006-01-02"), from.Format("2006-01-02"), apperrors.ErrPeriodInvalid)
	}

	revenue, expenses, err := s.reportingRepo.GetPeriodActivity(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &domain.IncomeStatementReport{
		FromDate: from,
		ToDate:   to,
		Revenue:  revenue,
		Expenses: expenses,
	}
	for _, balance := range revenue {
		report.TotalRevenue = report.TotalRevenue.Add(balance.Balance)
	}
	for _, balance := range expenses {
		report.TotalExpenses = report.TotalExpenses.Add(balance.Balance)
	}
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)
	return report, nil
}

// CashFlow classifies the period's cash movements into operating, investing
// and financing activities. Movements of the same entry are merged before
// classification; amounts within the balance tolerance are dropped.
func (s *reportingService) CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("period end %s is before start %s: %w", to.Format("2006-01-02"), from.Format("2006-01-02"), apperrors.ErrPeriodInvalid)
	}

	cashAccountIDs := []string{}
	const pageSize = 500
	for offset := 0; ; offset += pageSize {
		accounts, err := s.accountRepo.ListAccounts(ctx, portsrepo.AccountListFilter{}, pageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, account := range accounts {
			if s.cashMatcher(account) {
				cashAccountIDs = append(cashAccountIDs, account.AccountID)
			}
		}
		if len(accounts) < pageSize {
			break
		}
	}

	movements, err := s.reportingRepo.GetCashMovements(ctx, cashAccountIDs, from, to)
	if err != nil {
		return nil, err
	}

	type grouped struct {
		movement domain.CashMovement
		amount   decimal.Decimal
	}
	order := []string{}
	byEntry := map[string]*grouped{}
	for _, movement := range movements {
		g, ok := byEntry[movement.JournalEntryID]
		if !ok {
			g = &grouped{movement: movement, amount: decimal.Zero}
			byEntry[movement.JournalEntryID] = g
			order = append(order, movement.JournalEntryID)
		}
		g.amount = g.amount.Add(movement.NetAmount())
	}

	threshold := decimal.NewFromFloat(0.01)
	report := &domain.CashFlowReport{
		FromDate:  from,
		ToDate:    to,
		Operating: []domain.CashFlowLine{},
		Investing: []domain.CashFlowLine{},
		Financing: []domain.CashFlowLine{},
	}
	for _, entryID := range order {
		g := byEntry[entryID]
		if g.amount.Abs().LessThanOrEqual(threshold) {
			continue
		}
		line := domain.CashFlowLine{
			EntryDate:   g.movement.EntryDate,
			Description: g.movement.Description,
			Amount:      g.amount,
		}
		switch s.classifier(g.movement.TransactionType, g.movement.Description) {
		case domain.InvestingActivity:
			report.Investing = append(report.Investing, line)
			report.NetInvesting = report.NetInvesting.Add(g.amount)
		case domain.FinancingActivity:
			report.Financing = append(report.Financing, line)
			report.NetFinancing = report.NetFinancing.Add(g.amount)
		default:
			report.Operating = append(report.Operating, line)
			report.NetOperating = report.NetOperating.Add(g.amount)
		}
	}
	report.NetCashChange = report.NetOperating.Add(report.NetInvesting).Add(report.NetFinancing)
	return report, nil
}
