package accounting

import (
	"fmt"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance absorbs rounding noise when comparing debit and credit
// totals. Amounts are stored with two decimal places.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// SignedAmount applies the account's normal side to a journal line.
// Debits to debit-normal accounts and credits to credit-normal accounts
// are positive; the opposite side is negative.
func SignedAmount(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	if !domain.ValidAccountType(accountType) {
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}

	net := line.DebitAmount.Sub(line.CreditAmount)
	if domain.NormalSideFor(accountType) == domain.CreditNormal {
		net = net.Neg()
	}
	return net, nil
}

// ValidateLines checks the structural rules for journal lines: at least two
// lines, and every line single-sided with a positive amount.
func ValidateLines(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	}

	for i, line := range lines {
		if line.DebitAmount.IsNegative() || line.CreditAmount.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i+1)
		}
		hasDebit := line.DebitAmount.IsPositive()
		hasCredit := line.CreditAmount.IsPositive()
		if hasDebit == hasCredit {
			return fmt.Errorf("%w: line %d must carry exactly one of debit or credit", apperrors.ErrValidation, i+1)
		}
	}
	return nil
}

// ValidateEntryBalance checks that total debits equal total credits within
// BalanceTolerance.
func ValidateEntryBalance(lines []domain.JournalLine) error {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.DebitAmount)
		totalCredit = totalCredit.Add(line.CreditAmount)
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(BalanceTolerance) {
		return fmt.Errorf("%w: debits %s do not equal credits %s", apperrors.ErrUnbalanced, totalDebit.String(), totalCredit.String())
	}
	return nil
}
