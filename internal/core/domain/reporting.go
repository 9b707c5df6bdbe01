package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is the signed balance of one account at a cutoff date.
// The sign follows the account's normal side, so healthy accounts of every
// type report positive numbers.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
}

// BalanceSheetReport groups as-of balances into the three balance sheet
// sections. TotalAssets equals TotalLiabilities plus TotalEquity.
type BalanceSheetReport struct {
	AsOf             time.Time        `json:"asOf"`
	Assets           []AccountBalance `json:"assets"`
	Liabilities      []AccountBalance `json:"liabilities"`
	Equity           []AccountBalance `json:"equity"`
	TotalAssets      decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal  `json:"totalEquity"`
}

// IncomeStatementReport summarises revenue and expense activity in a period.
type IncomeStatementReport struct {
	FromDate      time.Time        `json:"fromDate"`
	ToDate        time.Time        `json:"toDate"`
	Revenue       []AccountBalance `json:"revenue"`
	Expenses      []AccountBalance `json:"expenses"`
	TotalRevenue  decimal.Decimal  `json:"totalRevenue"`
	TotalExpenses decimal.Decimal  `json:"totalExpenses"`
	NetIncome     decimal.Decimal  `json:"netIncome"`
}

// CashActivity is the cash flow statement section a movement belongs to.
type CashActivity string

const (
	OperatingActivity CashActivity = "OPERATING"
	InvestingActivity CashActivity = "INVESTING"
	FinancingActivity CashActivity = "FINANCING"
)

// CashMovement is one journal line against a cash account, with enough of
// its owning entry to classify the movement.
type CashMovement struct {
	JournalEntryID  string          `json:"journalEntryID"`
	EntryDate       time.Time       `json:"entryDate"`
	Description     string          `json:"description"`
	TransactionType TransactionType `json:"transactionType"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
}

// NetAmount is the movement's effect on cash. Debits increase cash.
func (m CashMovement) NetAmount() decimal.Decimal {
	return m.DebitAmount.Sub(m.CreditAmount)
}

// CashFlowLine is one classified movement in the cash flow statement.
type CashFlowLine struct {
	EntryDate   time.Time       `json:"entryDate"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CashFlowReport groups cash movements by activity for a period.
type CashFlowReport struct {
	FromDate      time.Time       `json:"fromDate"`
	ToDate        time.Time       `json:"toDate"`
	Operating     []CashFlowLine  `json:"operating"`
	Investing     []CashFlowLine  `json:"investing"`
	Financing     []CashFlowLine  `json:"financing"`
	NetOperating  decimal.Decimal `json:"netOperating"`
	NetInvesting  decimal.Decimal `json:"netInvesting"`
	NetFinancing  decimal.Decimal `json:"netFinancing"`
	NetCashChange decimal.Decimal `json:"netCashChange"`
}
