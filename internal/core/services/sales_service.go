package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbooks-app/openbooks/internal/core/ports/services"
	"github.com/openbooks-app/openbooks/internal/dto"
	"github.com/openbooks-app/openbooks/internal/platform/config"
	"github.com/openbooks-app/openbooks/internal/utils/accounting"
)

// salesService posts sales invoices with their ledger effect.
type salesService struct {
	BaseService
	cfg          *config.Config
	journalRepo  portsrepo.JournalRepositoryWithTx
	accountRepo  portsrepo.AccountRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	productRepo  portsrepo.ProductRepositoryFacade
	salesRepo    portsrepo.SalesRepositoryFacade
	sequenceRepo portsrepo.SequenceRepository
}

// NewSalesService creates a new sales service.
func NewSalesService(
	cfg *config.Config,
	journalRepo portsrepo.JournalRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	salesRepo portsrepo.SalesRepositoryFacade,
	sequenceRepo portsrepo.SequenceRepository,
) portssvc.SalesSvcFacade {
	return &salesService{
		cfg:          cfg,
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		salesRepo:    salesRepo,
		sequenceRepo: sequenceRepo,
	}
}

var _ portssvc.SalesSvcFacade = (*salesService)(nil)

// systemAccount pulls one well-known account out of a code-keyed map. A
// missing system account is a deployment fault, not a caller mistake.
func systemAccount(accounts map[string]domain.Account, code string, purpose string) (domain.Account, error) {
	account, ok := accounts[code]
	if !ok {
		return domain.Account{}, fmt.Errorf("%s account with code %s is not configured: %w", purpose, code, apperrors.ErrMissingAccount)
	}
	return account, nil
}

// postingAudit builds the audit fields shared by every row a posting writes.
func postingAudit(userID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// CreateSale posts a sales invoice. The journal entry, the invoice record and
// the stock decrements all commit or roll back together.
//
// Ledger effect: DR accounts receivable for the total, CR sales revenue for
// the subtotal, CR tax payable for the tax.
func (s *salesService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.SalesTransaction, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	productIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("unit price must not be negative for product %s: %w", item.ProductID, apperrors.ErrValidation)
		}
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range productIDs {
		if _, ok := products[id]; !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with ID %s not found", id))
		}
	}

	taxRate := s.cfg.DefaultTaxRate
	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() {
			return nil, fmt.Errorf("tax rate must not be negative: %w", apperrors.ErrValidation)
		}
		taxRate = *req.TaxRate
	}

	subtotal := decimal.Zero
	items := make([]domain.SalesLineItem, len(req.Items))
	saleID := uuid.NewString()
	for i, item := range req.Items {
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)).Round(2)
		subtotal = subtotal.Add(lineTotal)
		items[i] = domain.SalesLineItem{
			SalesLineItemID:    uuid.NewString(),
			SalesTransactionID: saleID,
			ProductID:          item.ProductID,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			TotalPrice:         lineTotal,
		}
	}
	taxAmount := subtotal.Mul(taxRate).Round(2)
	totalAmount := subtotal.Add(taxAmount)

	codes := s.cfg.SystemAccounts
	accountsByCode, err := s.accountRepo.FindAccountsByCodes(ctx, []string{codes.AccountsReceivable, codes.SalesRevenue, codes.TaxPayable})
	if err != nil {
		return nil, err
	}
	receivable, err := systemAccount(accountsByCode, codes.AccountsReceivable, "accounts receivable")
	if err != nil {
		return nil, err
	}
	revenue, err := systemAccount(accountsByCode, codes.SalesRevenue, "sales revenue")
	if err != nil {
		return nil, err
	}
	taxPayable, err := systemAccount(accountsByCode, codes.TaxPayable, "tax payable")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.JournalEntry{
		JournalEntryID:  uuid.NewString(),
		EntryDate:       req.TransactionDate,
		TransactionType: domain.SaleTransaction,
		Status:          domain.Posted,
		AuditFields:     postingAudit(userID, now),
	}

	lines := []domain.JournalLine{
		{
			JournalLineID:  uuid.NewString(),
			JournalEntryID: entry.JournalEntryID,
			AccountID:      receivable.AccountID,
			DebitAmount:    totalAmount,
			AuditFields:    postingAudit(userID, now),
		},
		{
			JournalLineID:  uuid.NewString(),
			JournalEntryID: entry.JournalEntryID,
			AccountID:      revenue.AccountID,
			CreditAmount:   subtotal,
			AuditFields:    postingAudit(userID, now),
		},
	}
	if taxAmount.IsPositive() {
		lines = append(lines, domain.JournalLine{
			JournalLineID:  uuid.NewString(),
			JournalEntryID: entry.JournalEntryID,
			AccountID:      taxPayable.AccountID,
			CreditAmount:   taxAmount,
			AuditFields:    postingAudit(userID, now),
		})
	}

	// Generated lines obey the same engine invariants as manual entries. A
	// zero-amount invoice fails here rather than reaching the ledger.
	if err := accounting.ValidateLines(lines); err != nil {
		return nil, err
	}
	if err := accounting.ValidateEntryBalance(lines); err != nil {
		return nil, err
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.journalRepo.Rollback(ctx, tx) }()

	if _, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, collectAccountIDs(lines)); err != nil {
		return nil, err
	}

	seq, err := s.sequenceRepo.NextValueInTx(ctx, tx, domain.SeqSalesInvoice)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to assign invoice number", err)
	}
	invoiceNumber := domain.FormatInvoiceNumber(seq)
	entry.Reference = invoiceNumber
	entry.Description = fmt.Sprintf("Sales invoice %s", invoiceNumber)

	if err := s.journalRepo.SaveEntryInTx(ctx, tx, &entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to save sale journal entry")
		return nil, err
	}

	sale := domain.SalesTransaction{
		SalesTransactionID: saleID,
		InvoiceNumber:      invoiceNumber,
		CustomerID:         req.CustomerID,
		TransactionDate:    req.TransactionDate,
		DueDate:            req.DueDate,
		Subtotal:           subtotal,
		TaxAmount:          taxAmount,
		TotalAmount:        totalAmount,
		JournalEntryID:     entry.JournalEntryID,
		Status:             entry.Status,
		AuditFields:        postingAudit(userID, now),
	}
	if err := s.salesRepo.SaveSaleInTx(ctx, tx, &sale, items); err != nil {
		s.LogError(ctx, err, "Failed to save sales transaction")
		return nil, err
	}

	for _, item := range items {
		if err := s.productRepo.DecrementStockInTx(ctx, tx, item.ProductID, item.Quantity, userID, now); err != nil {
			return nil, err
		}
	}

	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	sale.Items = items
	s.LogInfo(ctx, "Sale posted",
		slog.String("sales_transaction_id", sale.SalesTransactionID),
		slog.String("invoice_number", sale.InvoiceNumber),
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("total_amount", totalAmount.String()))
	return &sale, nil
}

// GetSaleByID retrieves a sales transaction with its line items.
func (s *salesService) GetSaleByID(ctx context.Context, saleID string) (*domain.SalesTransaction, error) {
	return s.salesRepo.FindSaleByID(ctx, saleID)
}

// ListSales retrieves a paginated list of sales transactions.
func (s *salesService) ListSales(ctx context.Context, limit, offset int) ([]domain.SalesTransaction, error) {
	return s.salesRepo.ListSales(ctx, limit, offset)
}
