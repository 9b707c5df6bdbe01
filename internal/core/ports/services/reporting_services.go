package services

import (
	"context"
	"time"

	"github.com/openbooks-app/openbooks/internal/core/domain"
)

// ReportingService defines operations for generating financial statements.
// Reports are pure reads over posted entries and are idempotent.
type ReportingService interface {
	// BalanceSheet generates a balance sheet as of a specific date.
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)

	// IncomeStatement generates an income statement for a period.
	IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatementReport, error)

	// CashFlow generates a cash flow statement for a period.
	CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error)
}
