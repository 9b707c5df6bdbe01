package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	"github.com/openbooks-app/openbooks/internal/models"
	"github.com/openbooks-app/openbooks/internal/utils/mapping"
)

// PgxSalesRepository implements the sales repository interface using pgx
type PgxSalesRepository struct {
	BaseRepository
	sequenceRepo portsrepo.SequenceRepository
}

// newPgxSalesRepository creates a new sales repository instance.
func newPgxSalesRepository(pool *pgxpool.Pool, sequenceRepo portsrepo.SequenceRepository) portsrepo.SalesRepositoryFacade {
	return &PgxSalesRepository{
		BaseRepository: BaseRepository{Pool: pool},
		sequenceRepo:   sequenceRepo,
	}
}

var _ portsrepo.SalesRepositoryFacade = (*PgxSalesRepository)(nil)

const salesColumns = `sales_transaction_id, invoice_number, customer_id, transaction_date, due_date, subtotal, tax_amount, total_amount, journal_entry_id, status, created_at, created_by, last_updated_at, last_updated_by`

func scanSalesTransaction(row pgx.Row) (models.SalesTransaction, error) {
	var sale models.SalesTransaction
	err := row.Scan(
		&sale.SalesTransactionID,
		&sale.InvoiceNumber,
		&sale.CustomerID,
		&sale.TransactionDate,
		&sale.DueDate,
		&sale.Subtotal,
		&sale.TaxAmount,
		&sale.TotalAmount,
		&sale.JournalEntryID,
		&sale.Status,
		&sale.CreatedAt,
		&sale.CreatedBy,
		&sale.LastUpdatedAt,
		&sale.LastUpdatedBy,
	)
	return sale, err
}

// SaveSaleInTx inserts the transaction with its line items inside tx. When
// the caller has not already taken an invoice number from the sequence, one
// is assigned here.
func (r *PgxSalesRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale *domain.SalesTransaction, items []domain.SalesLineItem) error {
	if sale.InvoiceNumber == "" {
		seq, err := r.sequenceRepo.NextValueInTx(ctx, tx, domain.SeqSalesInvoice)
		if err != nil {
			return apperrors.NewAppError(500, "failed to assign invoice number", err)
		}
		sale.InvoiceNumber = domain.FormatInvoiceNumber(seq)
	}

	modelSale := mapping.ToModelSalesTransaction(*sale)

	query := `
		INSERT INTO sales_transactions (` + salesColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	_, err := tx.Exec(ctx, query,
		modelSale.SalesTransactionID,
		modelSale.InvoiceNumber,
		modelSale.CustomerID,
		modelSale.TransactionDate,
		modelSale.DueDate,
		modelSale.Subtotal,
		modelSale.TaxAmount,
		modelSale.TotalAmount,
		modelSale.JournalEntryID,
		modelSale.Status,
		modelSale.CreatedAt,
		modelSale.CreatedBy,
		modelSale.LastUpdatedAt,
		modelSale.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert sales transaction", err)
	}

	itemQuery := `
		INSERT INTO sales_line_items (sales_line_item_id, sales_transaction_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6);`

	batch := &pgx.Batch{}
	for _, item := range items {
		modelItem := mapping.ToModelSalesLineItem(item)
		batch.Queue(itemQuery,
			modelItem.SalesLineItemID,
			modelSale.SalesTransactionID,
			modelItem.ProductID,
			modelItem.Quantity,
			modelItem.UnitPrice,
			modelItem.TotalPrice,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return apperrors.NewAppError(500, "failed to insert sales line item", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close sales line item batch", err)
	}
	return nil
}

// FindSaleByID retrieves a sales transaction along with its line items.
func (r *PgxSalesRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.SalesTransaction, error) {
	query := `SELECT ` + salesColumns + ` FROM sales_transactions WHERE sales_transaction_id = $1;`

	modelSale, err := scanSalesTransaction(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("sales transaction with ID %s not found", saleID))
		}
		return nil, fmt.Errorf("failed to find sales transaction by ID: %w", err)
	}

	itemQuery := `
		SELECT sales_line_item_id, sales_transaction_id, product_id, quantity, unit_price, total_price
		FROM sales_line_items WHERE sales_transaction_id = $1 ORDER BY sales_line_item_id ASC;`

	rows, err := r.Pool.Query(ctx, itemQuery, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales line items: %w", err)
	}
	defer rows.Close()

	modelItems := []models.SalesLineItem{}
	for rows.Next() {
		var item models.SalesLineItem
		if err := rows.Scan(&item.SalesLineItemID, &item.SalesTransactionID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.TotalPrice); err != nil {
			return nil, fmt.Errorf("failed to scan sales line item row: %w", err)
		}
		modelItems = append(modelItems, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales line item rows: %w", err)
	}

	sale := mapping.ToDomainSalesTransaction(modelSale)
	sale.Items = mapping.ToDomainSalesLineItemSlice(modelItems)
	return &sale, nil
}

// ListSales retrieves sales transactions ordered newest first.
func (r *PgxSalesRepository) ListSales(ctx context.Context, limit int, offset int) ([]domain.SalesTransaction, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + salesColumns + ` FROM sales_transactions ORDER BY invoice_number DESC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales transactions: %w", err)
	}
	defer rows.Close()

	sales := []domain.SalesTransaction{}
	for rows.Next() {
		modelSale, err := scanSalesTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales transaction row: %w", err)
		}
		sales = append(sales, mapping.ToDomainSalesTransaction(modelSale))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales transaction rows: %w", err)
	}
	return sales, nil
}
