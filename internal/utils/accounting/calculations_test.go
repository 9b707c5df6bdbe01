package accounting_test

import (
	"testing"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/openbooks-app/openbooks/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func debitLine(accountID string, amount float64) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, DebitAmount: decimal.NewFromFloat(amount)}
}

func creditLine(accountID string, amount float64) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, CreditAmount: decimal.NewFromFloat(amount)}
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name        string
		line        domain.JournalLine
		accountType domain.AccountType
		want        float64
	}{
		{name: "debit to asset is positive", line: debitLine("a1", 100), accountType: domain.Asset, want: 100},
		{name: "credit to asset is negative", line: creditLine("a1", 100), accountType: domain.Asset, want: -100},
		{name: "debit to expense is positive", line: debitLine("a1", 40), accountType: domain.Expense, want: 40},
		{name: "credit to liability is positive", line: creditLine("a1", 80), accountType: domain.Liability, want: 80},
		{name: "debit to liability is negative", line: debitLine("a1", 80), accountType: domain.Liability, want: -80},
		{name: "credit to revenue is positive", line: creditLine("a1", 125), accountType: domain.Revenue, want: 125},
		{name: "credit to equity is positive", line: creditLine("a1", 500), accountType: domain.Equity, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.SignedAmount(tt.line, tt.accountType)
			assert.NoError(t, err)
			assert.True(t, decimal.NewFromFloat(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestSignedAmount_UnknownType(t *testing.T) {
	_, err := accounting.SignedAmount(debitLine("a1", 10), domain.AccountType("BOGUS"))
	assert.Error(t, err)
}

func TestValidateLines(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalLine
		wantErr bool
	}{
		{
			name:  "two single sided lines pass",
			lines: []domain.JournalLine{debitLine("a1", 100), creditLine("a2", 100)},
		},
		{
			name:    "single line fails",
			lines:   []domain.JournalLine{debitLine("a1", 100)},
			wantErr: true,
		},
		{
			name:    "no lines fails",
			lines:   nil,
			wantErr: true,
		},
		{
			name: "line with both sides fails",
			lines: []domain.JournalLine{
				{AccountID: "a1", DebitAmount: decimal.NewFromInt(50), CreditAmount: decimal.NewFromInt(50)},
				creditLine("a2", 50),
			},
			wantErr: true,
		},
		{
			name: "line with neither side fails",
			lines: []domain.JournalLine{
				{AccountID: "a1"},
				creditLine("a2", 50),
			},
			wantErr: true,
		},
		{
			name: "negative amount fails",
			lines: []domain.JournalLine{
				{AccountID: "a1", DebitAmount: decimal.NewFromInt(-10)},
				creditLine("a2", 10),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateLines(tt.lines)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEntryBalance(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalLine
		wantErr bool
	}{
		{
			name:  "balanced pair passes",
			lines: []domain.JournalLine{debitLine("a1", 100), creditLine("a2", 100)},
		},
		{
			name:  "balanced split passes",
			lines: []domain.JournalLine{debitLine("a1", 100), creditLine("a2", 60), creditLine("a3", 40)},
		},
		{
			name:    "unbalanced entry fails",
			lines:   []domain.JournalLine{debitLine("a1", 100), creditLine("a2", 50)},
			wantErr: true,
		},
		{
			name:  "sub cent drift within tolerance passes",
			lines: []domain.JournalLine{debitLine("a1", 100.00), creditLine("a2", 99.995)},
		},
		{
			name:    "drift beyond tolerance fails",
			lines:   []domain.JournalLine{debitLine("a1", 100.00), creditLine("a2", 99.98)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateEntryBalance(tt.lines)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnbalanced)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
