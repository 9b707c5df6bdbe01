package dto

import (
	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountBalanceResponse represents an account with its signed balance in a report.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                   `json:"asOf"`
	Assets      []AccountBalanceResponse `json:"assets"`
	Liabilities []AccountBalanceResponse `json:"liabilities"`
	Equity      []AccountBalanceResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
	} `json:"summary"`
}

// IncomeStatementResponse represents the income statement report response
type IncomeStatementResponse struct {
	FromDate string                   `json:"fromDate"`
	ToDate   string                   `json:"toDate"`
	Revenue  []AccountBalanceResponse `json:"revenue"`
	Expenses []AccountBalanceResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetIncome     decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
}

// CashFlowLineResponse represents one classified movement in the cash flow response.
type CashFlowLineResponse struct {
	EntryDate   string          `json:"entryDate"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CashFlowResponse represents the cash flow statement report response
type CashFlowResponse struct {
	FromDate  string                 `json:"fromDate"`
	ToDate    string                 `json:"toDate"`
	Operating []CashFlowLineResponse `json:"operating"`
	Investing []CashFlowLineResponse `json:"investing"`
	Financing []CashFlowLineResponse `json:"financing"`
	Summary   struct {
		NetOperating  decimal.Decimal `json:"netOperating"`
		NetInvesting  decimal.Decimal `json:"netInvesting"`
		NetFinancing  decimal.Decimal `json:"netFinancing"`
		NetCashChange decimal.Decimal `json:"netCashChange"`
	} `json:"summary"`
}

func toAccountBalanceResponses(rows []domain.AccountBalance) []AccountBalanceResponse {
	res := make([]AccountBalanceResponse, len(rows))
	for i, row := range rows {
		res[i] = AccountBalanceResponse{
			AccountID: row.AccountID,
			Code:      row.Code,
			Name:      row.Name,
			Balance:   row.Balance,
		}
	}
	return res
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf:        report.AsOf.Format("2006-01-02"),
		Assets:      toAccountBalanceResponses(report.Assets),
		Liabilities: toAccountBalanceResponses(report.Liabilities),
		Equity:      toAccountBalanceResponses(report.Equity),
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	return response
}

// ToIncomeStatementResponse converts a domain income statement report to a DTO response
func ToIncomeStatementResponse(report *domain.IncomeStatementReport) IncomeStatementResponse {
	response := IncomeStatementResponse{
		FromDate: report.FromDate.Format("2006-01-02"),
		ToDate:   report.ToDate.Format("2006-01-02"),
		Revenue:  toAccountBalanceResponses(report.Revenue),
		Expenses: toAccountBalanceResponses(report.Expenses),
	}
	response.Summary.TotalRevenue = report.TotalRevenue
	response.Summary.TotalExpenses = report.TotalExpenses
	response.Summary.NetIncome = report.NetIncome
	return response
}

func toCashFlowLineResponses(lines []domain.CashFlowLine) []CashFlowLineResponse {
	res := make([]CashFlowLineResponse, len(lines))
	for i, line := range lines {
		res[i] = CashFlowLineResponse{
			EntryDate:   line.EntryDate.Format("2006-01-02"),
			Description: line.Description,
			Amount:      line.Amount,
		}
	}
	return res
}

// ToCashFlowResponse converts a domain cash flow report to a DTO response
func ToCashFlowResponse(report *domain.CashFlowReport) CashFlowResponse {
	response := CashFlowResponse{
		FromDate:  report.FromDate.Format("2006-01-02"),
		ToDate:    report.ToDate.Format("2006-01-02"),
		Operating: toCashFlowLineResponses(report.Operating),
		Investing: toCashFlowLineResponses(report.Investing),
		Financing: toCashFlowLineResponses(report.Financing),
	}
	response.Summary.NetOperating = report.NetOperating
	response.Summary.NetInvesting = report.NetInvesting
	response.Summary.NetFinancing = report.NetFinancing
	response.Summary.NetCashChange = report.NetCashChange
	return response
}
