package mapping

import (
	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/openbooks-app/openbooks/internal/models"
)

// ToModelSalesTransaction converts a domain SalesTransaction to a model SalesTransaction
func ToModelSalesTransaction(d domain.SalesTransaction) models.SalesTransaction {
	return models.SalesTransaction{
		SalesTransactionID: d.SalesTransactionID,
		InvoiceNumber:      d.InvoiceNumber,
		CustomerID:         d.CustomerID,
		TransactionDate:    d.TransactionDate,
		DueDate:            d.DueDate,
		Subtotal:           d.Subtotal,
		TaxAmount:          d.TaxAmount,
		TotalAmount:        d.TotalAmount,
		JournalEntryID:     d.JournalEntryID,
		Status:             models.EntryStatus(d.Status),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalesTransaction converts a model SalesTransaction to a domain SalesTransaction
func ToDomainSalesTransaction(m models.SalesTransaction) domain.SalesTransaction {
	return domain.SalesTransaction{
		SalesTransactionID: m.SalesTransactionID,
		InvoiceNumber:      m.InvoiceNumber,
		CustomerID:         m.CustomerID,
		TransactionDate:    m.TransactionDate,
		DueDate:            m.DueDate,
		Subtotal:           m.Subtotal,
		TaxAmount:          m.TaxAmount,
		TotalAmount:        m.TotalAmount,
		JournalEntryID:     m.JournalEntryID,
		Status:             domain.EntryStatus(m.Status),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSalesLineItem converts a domain SalesLineItem to a model SalesLineItem
func ToModelSalesLineItem(d domain.SalesLineItem) models.SalesLineItem {
	return models.SalesLineItem{
		SalesLineItemID:    d.SalesLineItemID,
		SalesTransactionID: d.SalesTransactionID,
		ProductID:          d.ProductID,
		Quantity:           d.Quantity,
		UnitPrice:          d.UnitPrice,
		TotalPrice:         d.TotalPrice,
	}
}

// ToDomainSalesLineItem converts a model SalesLineItem to a domain SalesLineItem
func ToDomainSalesLineItem(m models.SalesLineItem) domain.SalesLineItem {
	return domain.SalesLineItem{
		SalesLineItemID:    m.SalesLineItemID,
		SalesTransactionID: m.SalesTransactionID,
		ProductID:          m.ProductID,
		Quantity:           m.Quantity,
		UnitPrice:          m.UnitPrice,
		TotalPrice:         m.TotalPrice,
	}
}

// ToDomainSalesLineItemSlice converts model SalesLineItems to domain SalesLineItems
func ToDomainSalesLineItemSlice(ms []models.SalesLineItem) []domain.SalesLineItem {
	ds := make([]domain.SalesLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalesLineItem(m)
	}
	return ds
}

// ToModelPurchaseTxn converts a domain PurchaseTxn to a model PurchaseTxn
func ToModelPurchaseTxn(d domain.PurchaseTxn) models.PurchaseTxn {
	return models.PurchaseTxn{
		PurchaseTxnID:   d.PurchaseTxnID,
		InvoiceNumber:   d.InvoiceNumber,
		SupplierID:      d.SupplierID,
		TransactionDate: d.TransactionDate,
		DueDate:         d.DueDate,
		Subtotal:        d.Subtotal,
		TaxAmount:       d.TaxAmount,
		TotalAmount:     d.TotalAmount,
		JournalEntryID:  d.JournalEntryID,
		Status:          models.EntryStatus(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseTxn converts a model PurchaseTxn to a domain PurchaseTxn
func ToDomainPurchaseTxn(m models.PurchaseTxn) domain.PurchaseTxn {
	return domain.PurchaseTxn{
		PurchaseTxnID:   m.PurchaseTxnID,
		InvoiceNumber:   m.InvoiceNumber,
		SupplierID:      m.SupplierID,
		TransactionDate: m.TransactionDate,
		DueDate:         m.DueDate,
		Subtotal:        m.Subtotal,
		TaxAmount:       m.TaxAmount,
		TotalAmount:     m.TotalAmount,
		JournalEntryID:  m.JournalEntryID,
		Status:          domain.EntryStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseLineItem converts a domain PurchaseLineItem to a model PurchaseLineItem
func ToModelPurchaseLineItem(d domain.PurchaseLineItem) models.PurchaseLineItem {
	return models.PurchaseLineItem{
		PurchaseLineItemID: d.PurchaseLineItemID,
		PurchaseTxnID:      d.PurchaseTxnID,
		ProductID:          d.ProductID,
		Quantity:           d.Quantity,
		UnitCost:           d.UnitCost,
		TotalCost:          d.TotalCost,
	}
}

// ToDomainPurchaseLineItem converts a model PurchaseLineItem to a domain PurchaseLineItem
func ToDomainPurchaseLineItem(m models.PurchaseLineItem) domain.PurchaseLineItem {
	return domain.PurchaseLineItem{
		PurchaseLineItemID: m.PurchaseLineItemID,
		PurchaseTxnID:      m.PurchaseTxnID,
		ProductID:          m.ProductID,
		Quantity:           m.Quantity,
		UnitCost:           m.UnitCost,
		TotalCost:          m.TotalCost,
	}
}

// ToDomainPurchaseLineItemSlice converts model PurchaseLineItems to domain PurchaseLineItems
func ToDomainPurchaseLineItemSlice(ms []models.PurchaseLineItem) []domain.PurchaseLineItem {
	ds := make([]domain.PurchaseLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchaseLineItem(m)
	}
	return ds
}

// ToModelExpenseTxn converts a domain ExpenseTxn to a model ExpenseTxn
func ToModelExpenseTxn(d domain.ExpenseTxn) models.ExpenseTxn {
	return models.ExpenseTxn{
		ExpenseTxnID:    d.ExpenseTxnID,
		Description:     d.Description,
		Amount:          d.Amount,
		TransactionDate: d.TransactionDate,
		AccountID:       d.AccountID,
		SupplierID:      d.SupplierID,
		Reference:       d.Reference,
		JournalEntryID:  d.JournalEntryID,
		Status:          models.EntryStatus(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpenseTxn converts a model ExpenseTxn to a domain ExpenseTxn
func ToDomainExpenseTxn(m models.ExpenseTxn) domain.ExpenseTxn {
	return domain.ExpenseTxn{
		ExpenseTxnID:    m.ExpenseTxnID,
		Description:     m.Description,
		Amount:          m.Amount,
		TransactionDate: m.TransactionDate,
		AccountID:       m.AccountID,
		SupplierID:      m.SupplierID,
		Reference:       m.Reference,
		JournalEntryID:  m.JournalEntryID,
		Status:          domain.EntryStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
