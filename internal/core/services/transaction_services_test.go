package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portssvc "github.com/openbooks-app/openbooks/internal/core/ports/services"
	"github.com/openbooks-app/openbooks/internal/core/services"
	"github.com/openbooks-app/openbooks/internal/dto"
	"github.com/openbooks-app/openbooks/internal/platform/config"
)

func testConfig() *config.Config {
	return &config.Config{
		DefaultTaxRate: decimal.NewFromFloat(0.11),
		SystemAccounts: config.SystemAccountCodes{
			Cash:               "1000",
			AccountsReceivable: "1200",
			TaxReceivable:      "1300",
			Inventory:          "1400",
			AccountsPayable:    "2100",
			TaxPayable:         "2300",
			SalesRevenue:       "4000",
		},
		CashAccountCodePrefix: "10",
	}
}

func systemAccountFixture(code string, accountType domain.AccountType) domain.Account {
	return domain.Account{
		AccountID:   uuid.NewString(),
		Code:        code,
		Name:        "System " + code,
		AccountType: accountType,
		IsActive:    true,
	}
}

type SalesServiceTestSuite struct {
	suite.Suite
	journalRepo  *MockJournalRepository
	accountRepo  *MockAccountRepository
	customerRepo *MockCustomerRepository
	productRepo  *MockProductRepository
	salesRepo    *MockSalesRepository
	sequenceRepo *MockSequenceRepository

	receivable domain.Account
	revenue    domain.Account
	taxPayable domain.Account
	customer   domain.Customer
	product    domain.Product
	ctx        context.Context
	userID     string
}

func (s *SalesServiceTestSuite) SetupTest() {
	s.journalRepo = new(MockJournalRepository)
	s.accountRepo = new(MockAccountRepository)
	s.customerRepo = new(MockCustomerRepository)
	s.productRepo = new(MockProductRepository)
	s.salesRepo = new(MockSalesRepository)
	s.sequenceRepo = new(MockSequenceRepository)

	s.receivable = systemAccountFixture("1200", domain.Asset)
	s.revenue = systemAccountFixture("4000", domain.Revenue)
	s.taxPayable = systemAccountFixture("2300", domain.Liability)
	s.customer = domain.Customer{CustomerID: uuid.NewString(), Name: "Acme Ltd"}
	s.product = domain.Product{ProductID: uuid.NewString(), SKU: "WID-1", Name: "Widget", StockQuantity: 10}
	s.ctx = context.Background()
	s.userID = uuid.NewString()
}

func (s *SalesServiceTestSuite) newService() portssvc.SalesSvcFacade {
	return services.NewSalesService(testConfig(), s.journalRepo, s.accountRepo, s.customerRepo, s.productRepo, s.salesRepo, s.sequenceRepo)
}

func TestSalesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalesServiceTestSuite))
}

func (s *SalesServiceTestSuite) saleRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		CustomerID:      s.customer.CustomerID,
		TransactionDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Items: []dto.SaleItemRequest{
			{ProductID: s.product.ProductID, Quantity: 5, UnitPrice: decimal.NewFromInt(25)},
		},
	}
}

func (s *SalesServiceTestSuite) expectLookups() {
	s.customerRepo.On("FindCustomerByID", mock.Anything, s.customer.CustomerID).Return(&s.customer, nil)
	s.productRepo.On("FindProductsByIDs", mock.Anything, []string{s.product.ProductID}).
		Return(map[string]domain.Product{s.product.ProductID: s.product}, nil)
	s.accountRepo.On("FindAccountsByCodes", mock.Anything, mock.Anything).Return(map[string]domain.Account{
		"1200": s.receivable,
		"4000": s.revenue,
		"2300": s.taxPayable,
	}, nil)
}

func (s *SalesServiceTestSuite) expectTransaction() {
	s.journalRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.journalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.journalRepo.On("Commit", mock.Anything, mock.Anything).Return(nil)
	s.accountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]domain.Account{}, nil)
}

func (s *SalesServiceTestSuite) TestCreateSale_Success() {
	s.expectLookups()
	s.expectTransaction()
	s.sequenceRepo.On("NextValueInTx", mock.Anything, mock.Anything, domain.SeqSalesInvoice).Return(int64(1), nil)

	var postedLines []domain.JournalLine
	s.journalRepo.On("SaveEntryInTx", mock.Anything, mock.Anything, mock.AnythingOfType("*domain.JournalEntry"), mock.Anything).
		Run(func(args mock.Arguments) {
			postedLines = args.Get(3).([]domain.JournalLine)
		}).
		Return(nil)
	s.salesRepo.On("SaveSaleInTx", mock.Anything, mock.Anything, mock.AnythingOfType("*domain.SalesTransaction"), mock.Anything).Return(nil)
	s.productRepo.On("DecrementStockInTx", mock.Anything, mock.Anything, s.product.ProductID, int64(5), s.userID, mock.Anything).Return(nil)

	sale, err := s.newService().CreateSale(s.ctx, s.saleRequest(), s.userID)

	s.NoError(err)
	s.Require().NotNil(sale)
	s.Equal("INV-0000001", sale.InvoiceNumber)
	s.Equal(domain.Posted, sale.Status)
	s.True(sale.Subtotal.Equal(decimal.RequireFromString("125.00")))
	s.True(sale.TaxAmount.Equal(decimal.RequireFromString("13.75")))
	s.True(sale.TotalAmount.Equal(decimal.RequireFromString("138.75")))

	s.Require().Len(postedLines, 3)
	s.Equal(s.receivable.AccountID, postedLines[0].AccountID)
	s.True(postedLines[0].DebitAmount.Equal(decimal.RequireFromString("138.75")))
	s.Equal(s.revenue.AccountID, postedLines[1].AccountID)
	s.True(postedLines[1].CreditAmount.Equal(decimal.RequireFromString("125.00")))
	s.Equal(s.taxPayable.AccountID, postedLines[2].AccountID)
	s.True(postedLines[2].CreditAmount.Equal(decimal.RequireFromString("13.75")))

	s.journalRepo.AssertExpectations(s.T())
	s.salesRepo.AssertExpectations(s.T())
	s.productRepo.AssertExpectations(s.T())
	s.sequenceRepo.AssertExpectations(s.T())
}

func (s *SalesServiceTestSuite) TestCreateSale_ZeroTaxRateSkipsTaxLine() {
	s.expectLookups()
	s.expectTransaction()
	s.sequenceRepo.On("NextValueInTx", mock.Anything, mock.Anything, domain.SeqSalesInvoice).Return(int64(2), nil)

	var postedLines []domain.JournalLine
	s.journalRepo.On("SaveEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			postedLines = args.Get(3).([]domain.JournalLine)
		}).
		Return(nil)
	s.salesRepo.On("SaveSaleInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.productRepo.On("DecrementStockInTx", mock.Anything, mock.Anything, s.product.ProductID, int64(5), s.userID, mock.Anything).Return(nil)

	req := s.saleRequest()
	zero := decimal.Zero
	req.TaxRate = &zero

	sale, err := s.newService().CreateSale(s.ctx, req, s.userID)

	s.NoError(err)
	s.Require().NotNil(sale)
	s.True(sale.TaxAmount.IsZero())
	s.True(sale.TotalAmount.Equal(decimal.RequireFromString("125.00")))
	s.Len(postedLines, 2)
}

func (s *SalesServiceTestSuite) TestCreateSale_InsufficientStock() {
	s.expectLookups()
	s.journalRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.journalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	s.accountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]domain.Account{}, nil)
	s.sequenceRepo.On("NextValueInTx", mock.Anything, mock.Anything, domain.SeqSalesInvoice).Return(int64(3), nil)
	s.journalRepo.On("SaveEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.salesRepo.On("SaveSaleInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.productRepo.On("DecrementStockInTx", mock.Anything, mock.Anything, s.product.ProductID, int64(5), s.userID, mock.Anything).
		Return(apperrors.ErrInsufficientStock)

	sale, err := s.newService().CreateSale(s.ctx, s.saleRequest(), s.userID)

	s.Nil(sale)
	s.ErrorIs(err, apperrors.ErrInsufficientStock)
	s.journalRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *SalesServiceTestSuite) TestCreateSale_MissingSystemAccount() {
	s.customerRepo.On("FindCustomerByID", mock.Anything, s.customer.CustomerID).Return(&s.customer, nil)
	s.productRepo.On("FindProductsByIDs", mock.Anything, mock.Anything).
		Return(map[string]domain.Product{s.product.ProductID: s.product}, nil)
	s.accountRepo.On("FindAccountsByCodes", mock.Anything, mock.Anything).Return(map[string]domain.Account{
		"1200": s.receivable,
		"4000": s.revenue,
	}, nil)

	sale, err := s.newService().CreateSale(s.ctx, s.saleRequest(), s.userID)

	s.Nil(sale)
	s.ErrorIs(err, apperrors.ErrMissingAccount)
	s.journalRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *SalesServiceTestSuite) TestCreateSale_UnknownProduct() {
	s.customerRepo.On("FindCustomerByID", mock.Anything, s.customer.CustomerID).Return(&s.customer, nil)
	s.productRepo.On("FindProductsByIDs", mock.Anything, mock.Anything).
		Return(map[string]domain.Product{}, nil)

	sale, err := s.newService().CreateSale(s.ctx, s.saleRequest(), s.userID)

	s.Nil(sale)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SalesServiceTestSuite) TestCreateSale_NegativeUnitPrice() {
	s.customerRepo.On("FindCustomerByID", mock.Anything, s.customer.CustomerID).Return(&s.customer, nil)

	req := s.saleRequest()
	req.Items[0].UnitPrice = decimal.NewFromInt(-5)

	sale, err := s.newService().CreateSale(s.ctx, req, s.userID)

	s.Nil(sale)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SalesServiceTestSuite) TestCreateSale_ZeroUnitPriceRejected() {
	s.expectLookups()

	// A zero-price sale would generate both-sides-zero lines. It must fail
	// line validation before anything reaches the ledger.
	req := s.saleRequest()
	req.Items[0].UnitPrice = decimal.Zero

	sale, err := s.newService().CreateSale(s.ctx, req, s.userID)

	s.Nil(sale)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.journalRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
	s.journalRepo.AssertNotCalled(s.T(), "SaveEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SalesServiceTestSuite) TestCreateSale_UnknownCustomer() {
	s.customerRepo.On("FindCustomerByID", mock.Anything, s.customer.CustomerID).
		Return(nil, apperrors.NewNotFoundError("customer not found"))

	sale, err := s.newService().CreateSale(s.ctx, s.saleRequest(), s.userID)

	s.Nil(sale)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

type PurchaseServiceTestSuite struct {
	suite.Suite
	journalRepo  *MockJournalRepository
	accountRepo  *MockAccountRepository
	supplierRepo *MockSupplierRepository
	productRepo  *MockProductRepository
	purchaseRepo *MockPurchaseRepository

	inventory     domain.Account
	taxReceivable domain.Account
	payable       domain.Account
	supplier      domain.Supplier
	product       domain.Product
	ctx           context.Context
	userID        string
}

func (s *PurchaseServiceTestSuite) SetupTest() {
	s.journalRepo = new(MockJournalRepository)
	s.accountRepo = new(MockAccountRepository)
	s.supplierRepo = new(MockSupplierRepository)
	s.productRepo = new(MockProductRepository)
	s.purchaseRepo = new(MockPurchaseRepository)

	s.inventory = systemAccountFixture("1400", domain.Asset)
	s.taxReceivable = systemAccountFixture("1300", domain.Asset)
	s.payable = systemAccountFixture("2100", domain.Liability)
	s.supplier = domain.Supplier{SupplierID: uuid.NewString(), Name: "Parts Co"}
	s.product = domain.Product{ProductID: uuid.NewString(), SKU: "WID-1", Name: "Widget", StockQuantity: 2}
	s.ctx = context.Background()
	s.userID = uuid.NewString()
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}

func (s *PurchaseServiceTestSuite) purchaseRequest() dto.CreatePurchaseRequest {
	return dto.CreatePurchaseRequest{
		SupplierID:      s.supplier.SupplierID,
		InvoiceNumber:   "SUP-2025-042",
		TransactionDate: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Items: []dto.PurchaseItemRequest{
			{ProductID: s.product.ProductID, Quantity: 10, UnitCost: decimal.NewFromInt(8)},
		},
	}
}

func (s *PurchaseServiceTestSuite) TestCreatePurchase_Success() {
	svc := services.NewPurchaseService(testConfig(), s.journalRepo, s.accountRepo, s.supplierRepo, s.productRepo, s.purchaseRepo)

	s.supplierRepo.On("FindSupplierByID", mock.Anything, s.supplier.SupplierID).Return(&s.supplier, nil)
	s.productRepo.On("FindProductsByIDs", mock.Anything, []string{s.product.ProductID}).
		Return(map[string]domain.Product{s.product.ProductID: s.product}, nil)
	s.accountRepo.On("FindAccountsByCodes", mock.Anything, mock.Anything).Return(map[string]domain.Account{
		"1400": s.inventory,
		"1300": s.taxReceivable,
		"2100": s.payable,
	}, nil)
	s.journalRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.journalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.journalRepo.On("Commit", mock.Anything, mock.Anything).Return(nil)
	s.accountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]domain.Account{}, nil)

	var postedEntry *domain.JournalEntry
	var postedLines []domain.JournalLine
	s.journalRepo.On("SaveEntryInTx", mock.Anything, mock.Anything, mock.AnythingOfType("*domain.JournalEntry"), mock.Anything).
		Run(func(args mock.Arguments) {
			postedEntry = args.Get(2).(*domain.JournalEntry)
			postedLines = args.Get(3).([]domain.JournalLine)
		}).
		Return(nil)
	s.purchaseRepo.On("SavePurchaseInTx", mock.Anything, mock.Anything, mock.AnythingOfType("*domain.PurchaseTxn"), mock.Anything).Return(nil)
	s.productRepo.On("IncrementStockInTx", mock.Anything, mock.Anything, s.product.ProductID, int64(10), decimal.NewFromInt(8), s.userID, mock.Anything).Return(nil)

	purchase, err := svc.CreatePurchase(s.ctx, s.purchaseRequest(), s.userID)

	s.NoError(err)
	s.Require().NotNil(purchase)
	s.Equal("SUP-2025-042", purchase.InvoiceNumber)
	s.Equal(domain.Posted, purchase.Status)
	s.True(purchase.Subtotal.Equal(decimal.RequireFromString("80.00")))
	s.True(purchase.TaxAmount.Equal(decimal.RequireFromString("8.80")))
	s.True(purchase.TotalAmount.Equal(decimal.RequireFromString("88.80")))

	s.Require().NotNil(postedEntry)
	s.Equal(domain.PurchaseTransaction, postedEntry.TransactionType)
	s.Equal(domain.Posted, postedEntry.Status)
	s.Require().Len(postedLines, 3)
	s.Equal(s.inventory.AccountID, postedLines[0].AccountID)
	s.True(postedLines[0].DebitAmount.Equal(decimal.RequireFromString("80.00")))
	s.Equal(s.taxReceivable.AccountID, postedLines[1].AccountID)
	s.True(postedLines[1].DebitAmount.Equal(decimal.RequireFromString("8.80")))
	s.Equal(s.payable.AccountID, postedLines[2].AccountID)
	s.True(postedLines[2].CreditAmount.Equal(decimal.RequireFromString("88.80")))

	s.journalRepo.AssertExpectations(s.T())
	s.purchaseRepo.AssertExpectations(s.T())
	s.productRepo.AssertExpectations(s.T())
}

func (s *PurchaseServiceTestSuite) TestCreatePurchase_ZeroUnitCostRejected() {
	svc := services.NewPurchaseService(testConfig(), s.journalRepo, s.accountRepo, s.supplierRepo, s.productRepo, s.purchaseRepo)

	s.supplierRepo.On("FindSupplierByID", mock.Anything, s.supplier.SupplierID).Return(&s.supplier, nil)
	s.productRepo.On("FindProductsByIDs", mock.Anything, mock.Anything).
		Return(map[string]domain.Product{s.product.ProductID: s.product}, nil)
	s.accountRepo.On("FindAccountsByCodes", mock.Anything, mock.Anything).Return(map[string]domain.Account{
		"1400": s.inventory,
		"1300": s.taxReceivable,
		"2100": s.payable,
	}, nil)

	req := s.purchaseRequest()
	req.Items[0].UnitCost = decimal.Zero

	purchase, err := svc.CreatePurchase(s.ctx, req, s.userID)

	s.Nil(purchase)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.journalRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
	s.journalRepo.AssertNotCalled(s.T(), "SaveEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PurchaseServiceTestSuite) TestCreatePurchase_DuplicateInvoice() {
	svc := services.NewPurchaseService(testConfig(), s.journalRepo, s.accountRepo, s.supplierRepo, s.productRepo, s.purchaseRepo)

	s.supplierRepo.On("FindSupplierByID", mock.Anything, s.supplier.SupplierID).Return(&s.supplier, nil)
	s.productRepo.On("FindProductsByIDs", mock.Anything, mock.Anything).
		Return(map[string]domain.Product{s.product.ProductID: s.product}, nil)
	s.accountRepo.On("FindAccountsByCodes", mock.Anything, mock.Anything).Return(map[string]domain.Account{
		"1400": s.inventory,
		"1300": s.taxReceivable,
		"2100": s.payable,
	}, nil)
	s.journalRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.journalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	s.accountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]domain.Account{}, nil)
	s.journalRepo.On("SaveEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.purchaseRepo.On("SavePurchaseInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.ErrDuplicate)

	purchase, err := svc.CreatePurchase(s.ctx, s.purchaseRequest(), s.userID)

	s.Nil(purchase)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.journalRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

type ExpenseServiceTestSuite struct {
	suite.Suite
	journalRepo  *MockJournalRepository
	accountRepo  *MockAccountRepository
	supplierRepo *MockSupplierRepository
	expenseRepo  *MockExpenseRepository
	sequenceRepo *MockSequenceRepository

	cash   domain.Account
	target domain.Account
	ctx    context.Context
	userID string
}

func (s *ExpenseServiceTestSuite) SetupTest() {
	s.journalRepo = new(MockJournalRepository)
	s.accountRepo = new(MockAccountRepository)
	s.supplierRepo = new(MockSupplierRepository)
	s.expenseRepo = new(MockExpenseRepository)
	s.sequenceRepo = new(MockSequenceRepository)

	s.cash = systemAccountFixture("1000", domain.Asset)
	s.target = systemAccountFixture("5000", domain.Expense)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

func (s *ExpenseServiceTestSuite) expenseRequest() dto.CreateExpenseRequest {
	return dto.CreateExpenseRequest{
		Description:     "Office rent",
		Amount:          decimal.NewFromInt(500),
		TransactionDate: time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC),
		AccountID:       s.target.AccountID,
	}
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	svc := services.NewExpenseService(testConfig(), s.journalRepo, s.accountRepo, s.supplierRepo, s.expenseRepo, s.sequenceRepo)

	s.accountRepo.On("FindAccountByID", mock.Anything, s.target.AccountID).Return(&s.target, nil)
	s.accountRepo.On("FindAccountsByCodes", mock.Anything, []string{"1000"}).
		Return(map[string]domain.Account{"1000": s.cash}, nil)
	s.journalRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.journalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.journalRepo.On("Commit", mock.Anything, mock.Anything).Return(nil)
	s.accountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]domain.Account{}, nil)
	s.sequenceRepo.On("NextValueInTx", mock.Anything, mock.Anything, domain.SeqExpenseRef).Return(int64(1), nil)

	var postedLines []domain.JournalLine
	s.journalRepo.On("SaveEntryInTx", mock.Anything, mock.Anything, mock.AnythingOfType("*domain.JournalEntry"), mock.Anything).
		Run(func(args mock.Arguments) {
			postedLines = args.Get(3).([]domain.JournalLine)
		}).
		Return(nil)
	s.expenseRepo.On("SaveExpenseInTx", mock.Anything, mock.Anything, mock.AnythingOfType("*domain.ExpenseTxn")).Return(nil)

	expense, err := svc.CreateExpense(s.ctx, s.expenseRequest(), s.userID)

	s.NoError(err)
	s.Require().NotNil(expense)
	s.Equal("EXP-0000001", expense.Reference)
	s.Equal(domain.Posted, expense.Status)

	s.Require().Len(postedLines, 2)
	s.Equal(s.target.AccountID, postedLines[0].AccountID)
	s.True(postedLines[0].DebitAmount.Equal(decimal.NewFromInt(500)))
	s.Equal(s.cash.AccountID, postedLines[1].AccountID)
	s.True(postedLines[1].CreditAmount.Equal(decimal.NewFromInt(500)))

	s.journalRepo.AssertExpectations(s.T())
	s.expenseRepo.AssertExpectations(s.T())
	s.sequenceRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_CallerReferenceKept() {
	svc := services.NewExpenseService(testConfig(), s.journalRepo, s.accountRepo, s.supplierRepo, s.expenseRepo, s.sequenceRepo)

	s.accountRepo.On("FindAccountByID", mock.Anything, s.target.AccountID).Return(&s.target, nil)
	s.accountRepo.On("FindAccountsByCodes", mock.Anything, mock.Anything).
		Return(map[string]domain.Account{"1000": s.cash}, nil)
	s.journalRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.journalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.journalRepo.On("Commit", mock.Anything, mock.Anything).Return(nil)
	s.accountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]domain.Account{}, nil)
	s.journalRepo.On("SaveEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.expenseRepo.On("SaveExpenseInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := s.expenseRequest()
	req.Reference = "RCPT-889"

	expense, err := svc.CreateExpense(s.ctx, req, s.userID)

	s.NoError(err)
	s.Require().NotNil(expense)
	s.Equal("RCPT-889", expense.Reference)
	s.sequenceRepo.AssertNotCalled(s.T(), "NextValueInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_NonExpenseAccount() {
	svc := services.NewExpenseService(testConfig(), s.journalRepo, s.accountRepo, s.supplierRepo, s.expenseRepo, s.sequenceRepo)

	asset := systemAccountFixture("1000", domain.Asset)
	s.accountRepo.On("FindAccountByID", mock.Anything, asset.AccountID).Return(&asset, nil)

	req := s.expenseRequest()
	req.AccountID = asset.AccountID

	expense, err := svc.CreateExpense(s.ctx, req, s.userID)

	s.Nil(expense)
	s.ErrorIs(err, apperrors.ErrInvalidAccountType)
	s.journalRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_NonPositiveAmount() {
	svc := services.NewExpenseService(testConfig(), s.journalRepo, s.accountRepo, s.supplierRepo, s.expenseRepo, s.sequenceRepo)

	req := s.expenseRequest()
	req.Amount = decimal.Zero

	expense, err := svc.CreateExpense(s.ctx, req, s.userID)

	s.Nil(expense)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.accountRepo.AssertNotCalled(s.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_UnknownSupplier() {
	svc := services.NewExpenseService(testConfig(), s.journalRepo, s.accountRepo, s.supplierRepo, s.expenseRepo, s.sequenceRepo)

	s.accountRepo.On("FindAccountByID", mock.Anything, s.target.AccountID).Return(&s.target, nil)
	supplierID := uuid.NewString()
	s.supplierRepo.On("FindSupplierByID", mock.Anything, supplierID).
		Return(nil, apperrors.NewNotFoundError("supplier not found"))

	req := s.expenseRequest()
	req.SupplierID = &supplierID

	expense, err := svc.CreateExpense(s.ctx, req, s.userID)

	s.Nil(expense)
	s.ErrorIs(err, apperrors.ErrNotFound)
}
