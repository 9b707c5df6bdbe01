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

// purchaseService posts supplier bills with their ledger effect.
type purchaseService struct {
	BaseService
	cfg          *config.Config
	journalRepo  portsrepo.JournalRepositoryWithTx
	accountRepo  portsrepo.AccountRepositoryFacade
	supplierRepo portsrepo.SupplierRepositoryFacade
	productRepo  portsrepo.ProductRepositoryFacade
	purchaseRepo portsrepo.PurchaseRepositoryFacade
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(
	cfg *config.Config,
	journalRepo portsrepo.JournalRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	supplierRepo portsrepo.SupplierRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	purchaseRepo portsrepo.PurchaseRepositoryFacade,
) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		cfg:          cfg,
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// CreatePurchase posts a supplier bill. The journal entry, the bill record
// and the stock increments all commit or roll back together.
//
// Ledger effect: DR inventory for the subtotal, DR tax receivable for the
// tax, CR accounts payable for the total.
func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.PurchaseTxn, error) {
	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	productIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		if item.UnitCost.IsNegative() {
			return nil, fmt.Errorf("unit cost must not be negative for product %s: %w", item.ProductID, apperrors.ErrValidation)
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
	purchaseID := uuid.NewString()
	items := make([]domain.PurchaseLineItem, len(req.Items))
	for i, item := range req.Items {
		lineTotal := item.UnitCost.Mul(decimal.NewFromInt(item.Quantity)).Round(2)
		subtotal = subtotal.Add(lineTotal)
		items[i] = domain.PurchaseLineItem{
			PurchaseLineItemID: uuid.NewString(),
			PurchaseTxnID:      purchaseID,
			ProductID:          item.ProductID,
			Quantity:           item.Quantity,
			UnitCost:           item.UnitCost,
			TotalCost:          lineTotal,
		}
	}
	taxAmount := subtotal.Mul(taxRate).Round(2)
	totalAmount := subtotal.Add(taxAmount)

	codes := s.cfg.SystemAccounts
	accountsByCode, err := s.accountRepo.FindAccountsByCodes(ctx, []string{codes.Inventory, codes.TaxReceivable, codes.AccountsPayable})
	if err != nil {
		return nil, err
	}
	inventory, err := systemAccount(accountsByCode, codes.Inventory, "inventory")
	if err != nil {
		return nil, err
	}
	taxReceivable, err := systemAccount(accountsByCode, codes.TaxReceivable, "tax receivable")
	if err != nil {
		return nil, err
	}
	payable, err := systemAccount(accountsByCode, codes.AccountsPayable, "accounts payable")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.JournalEntry{
		JournalEntryID:  uuid.NewString(),
		EntryDate:       req.TransactionDate,
		Description:     fmt.Sprintf("Purchase invoice %s", req.InvoiceNumber),
		Reference:       req.InvoiceNumber,
		TransactionType: domain.PurchaseTransaction,
		Status:          domain.Posted,
		AuditFields:     postingAudit(userID, now),
	}

	lines := []domain.JournalLine{
		{
			JournalLineID:  uuid.NewString(),
			JournalEntryID: entry.JournalEntryID,
			AccountID:      inventory.AccountID,
			DebitAmount:    subtotal,
			AuditFields:    postingAudit(userID, now),
		},
	}
	if taxAmount.IsPositive() {
		lines = append(lines, domain.JournalLine{
			JournalLineID:  uuid.NewString(),
			JournalEntryID: entry.JournalEntryID,
			AccountID:      taxReceivable.AccountID,
			DebitAmount:    taxAmount,
			AuditFields:    postingAudit(userID, now),
		})
	}
	lines = append(lines, domain.JournalLine{
		JournalLineID:  uuid.NewString(),
		JournalEntryID: entry.JournalEntryID,
		AccountID:      payable.AccountID,
		CreditAmount:   totalAmount,
		AuditFields:    postingAudit(userID, now),
	})

	// Generated lines obey the same engine invariants as manual entries.
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

	if err := s.journalRepo.SaveEntryInTx(ctx, tx, &entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to save purchase journal entry")
		return nil, err
	}

	purchase := domain.PurchaseTxn{
		PurchaseTxnID:   purchaseID,
		InvoiceNumber:   req.InvoiceNumber,
		SupplierID:      req.SupplierID,
		TransactionDate: req.TransactionDate,
		DueDate:         req.DueDate,
		Subtotal:        subtotal,
		TaxAmount:       taxAmount,
		TotalAmount:     totalAmount,
		JournalEntryID:  entry.JournalEntryID,
		Status:          entry.Status,
		AuditFields:     postingAudit(userID, now),
	}
	if err := s.purchaseRepo.SavePurchaseInTx(ctx, tx, &purchase, items); err != nil {
		s.LogError(ctx, err, "Failed to save purchase transaction")
		return nil, err
	}

	for _, item := range items {
		if err := s.productRepo.IncrementStockInTx(ctx, tx, item.ProductID, item.Quantity, item.UnitCost, userID, now); err != nil {
			return nil, err
		}
	}

	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	purchase.Items = items
	s.LogInfo(ctx, "Purchase posted",
		slog.String("purchase_transaction_id", purchase.PurchaseTxnID),
		slog.String("invoice_number", purchase.InvoiceNumber),
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("total_amount", totalAmount.String()))
	return &purchase, nil
}

// GetPurchaseByID retrieves a purchase transaction with its line items.
func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseTxn, error) {
	return s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
}

// ListPurchases retrieves a paginated list of purchase transactions.
func (s *purchaseService) ListPurchases(ctx context.Context, limit, offset int) ([]domain.PurchaseTxn, error) {
	return s.purchaseRepo.ListPurchases(ctx, limit, offset)
}
