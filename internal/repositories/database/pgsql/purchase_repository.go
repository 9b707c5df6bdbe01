package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	"github.com/openbooks-app/openbooks/internal/models"
	"github.com/openbooks-app/openbooks/internal/utils/mapping"
)

// PgxPurchaseRepository implements the purchase repository interface using pgx
type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new purchase repository instance.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_transaction_id, invoice_number, supplier_id, transaction_date, due_date, subtotal, tax_amount, total_amount, journal_entry_id, status, created_at, created_by, last_updated_at, last_updated_by`

func scanPurchaseTxn(row pgx.Row) (models.PurchaseTxn, error) {
	var purchase models.PurchaseTxn
	err := row.Scan(
		&purchase.PurchaseTxnID,
		&purchase.InvoiceNumber,
		&purchase.SupplierID,
		&purchase.TransactionDate,
		&purchase.DueDate,
		&purchase.Subtotal,
		&purchase.TaxAmount,
		&purchase.TotalAmount,
		&purchase.JournalEntryID,
		&purchase.Status,
		&purchase.CreatedAt,
		&purchase.CreatedBy,
		&purchase.LastUpdatedAt,
		&purchase.LastUpdatedBy,
	)
	return purchase, err
}

// SavePurchaseInTx inserts the purchase transaction with its line items inside
// tx. The invoice number is the supplier's document number; a repeat of the
// same (supplier, invoice) pair is rejected as a duplicate.
func (r *PgxPurchaseRepository) SavePurchaseInTx(ctx context.Context, tx pgx.Tx, purchase *domain.PurchaseTxn, items []domain.PurchaseLineItem) error {
	modelPurchase := mapping.ToModelPurchaseTxn(*purchase)

	query := `
		INSERT INTO purchase_transactions (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	_, err := tx.Exec(ctx, query,
		modelPurchase.PurchaseTxnID,
		modelPurchase.InvoiceNumber,
		modelPurchase.SupplierID,
		modelPurchase.TransactionDate,
		modelPurchase.DueDate,
		modelPurchase.Subtotal,
		modelPurchase.TaxAmount,
		modelPurchase.TotalAmount,
		modelPurchase.JournalEntryID,
		modelPurchase.Status,
		modelPurchase.CreatedAt,
		modelPurchase.CreatedBy,
		modelPurchase.LastUpdatedAt,
		modelPurchase.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("purchase invoice %s already recorded for supplier %s: %w", purchase.InvoiceNumber, purchase.SupplierID, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert purchase transaction", err)
	}

	itemQuery := `
		INSERT INTO purchase_line_items (purchase_line_item_id, purchase_transaction_id, product_id, quantity, unit_cost, total_cost)
		VALUES ($1, $2, $3, $4, $5, $6);`

	batch := &pgx.Batch{}
	for _, item := range items {
		modelItem := mapping.ToModelPurchaseLineItem(item)
		batch.Queue(itemQuery,
			modelItem.PurchaseLineItemID,
			modelPurchase.PurchaseTxnID,
			modelItem.ProductID,
			modelItem.Quantity,
			modelItem.UnitCost,
			modelItem.TotalCost,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return apperrors.NewAppError(500, "failed to insert purchase line item", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close purchase line item batch", err)
	}
	return nil
}

// FindPurchaseByID retrieves a purchase transaction along with its line items.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseTxn, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchase_transactions WHERE purchase_transaction_id = $1;`

	modelPurchase, err := scanPurchaseTxn(r.Pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("purchase transaction with ID %s not found", purchaseID))
		}
		return nil, fmt.Errorf("failed to find purchase transaction by ID: %w", err)
	}

	itemQuery := `
		SELECT purchase_line_item_id, purchase_transaction_id, product_id, quantity, unit_cost, total_cost
		FROM purchase_line_items WHERE purchase_transaction_id = $1 ORDER BY purchase_line_item_id ASC;`

	rows, err := r.Pool.Query(ctx, itemQuery, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase line items: %w", err)
	}
	defer rows.Close()

	modelItems := []models.PurchaseLineItem{}
	for rows.Next() {
		var item models.PurchaseLineItem
		if err := rows.Scan(&item.PurchaseLineItemID, &item.PurchaseTxnID, &item.ProductID, &item.Quantity, &item.UnitCost, &item.TotalCost); err != nil {
			return nil, fmt.Errorf("failed to scan purchase line item row: %w", err)
		}
		modelItems = append(modelItems, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase line item rows: %w", err)
	}

	purchase := mapping.ToDomainPurchaseTxn(modelPurchase)
	purchase.Items = mapping.ToDomainPurchaseLineItemSlice(modelItems)
	return &purchase, nil
}

// ListPurchases retrieves purchase transactions ordered newest first.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, limit int, offset int) ([]domain.PurchaseTxn, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + purchaseColumns + ` FROM purchase_transactions ORDER BY transaction_date DESC, created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase transactions: %w", err)
	}
	defer rows.Close()

	purchases := []domain.PurchaseTxn{}
	for rows.Next() {
		modelPurchase, err := scanPurchaseTxn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase transaction row: %w", err)
		}
		purchases = append(purchases, mapping.ToDomainPurchaseTxn(modelPurchase))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase transaction rows: %w", err)
	}
	return purchases, nil
}
