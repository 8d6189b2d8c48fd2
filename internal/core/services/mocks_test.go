package services_test

import (
	"context"
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Shared repository and service mocks for the service test suites.

func testDate() time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

// --- Mock QuotationRepository ---
type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	args := m.Called(ctx, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) ListQuotations(ctx context.Context, customerID string, status string, limit int, nextToken *string) ([]domain.Quotation, *string, error) {
	args := m.Called(ctx, customerID, status, limit, nextToken)
	var quotations []domain.Quotation
	if args.Get(0) != nil {
		quotations = args.Get(0).([]domain.Quotation)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return quotations, token, args.Error(2)
}

func (m *MockQuotationRepository) SaveQuotation(ctx context.Context, quotation domain.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

func (m *MockQuotationRepository) UpdateQuotation(ctx context.Context, quotation domain.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

func (m *MockQuotationRepository) UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.QuotationStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, quotationID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockQuotationRepository) ConvertToInvoice(ctx context.Context, quotationID string, invoice domain.Invoice, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, quotationID, invoice, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, search string, limit int, nextToken *string) ([]domain.Customer, *string, error) {
	args := m.Called(ctx, search, limit, nextToken)
	var customers []domain.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]domain.Customer)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return customers, token, args.Error(2)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeactivateCustomer(ctx context.Context, customerID string, userID string, now time.Time) error {
	args := m.Called(ctx, customerID, userID, now)
	return args.Error(0)
}

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, search string, limit int, nextToken *string) ([]domain.Supplier, *string, error) {
	args := m.Called(ctx, search, limit, nextToken)
	var suppliers []domain.Supplier
	if args.Get(0) != nil {
		suppliers = args.Get(0).([]domain.Supplier)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return suppliers, token, args.Error(2)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeactivateSupplier(ctx context.Context, supplierID string, userID string, now time.Time) error {
	args := m.Called(ctx, supplierID, userID, now)
	return args.Error(0)
}

// --- Mock TaxRateRepository ---
type MockTaxRateRepository struct {
	mock.Mock
}

func (m *MockTaxRateRepository) SaveTaxRate(ctx context.Context, taxRate domain.TaxRate) error {
	args := m.Called(ctx, taxRate)
	return args.Error(0)
}

func (m *MockTaxRateRepository) FindTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error) {
	args := m.Called(ctx, taxRateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) FindTaxRatesByIDs(ctx context.Context, taxRateIDs []string) (map[string]domain.TaxRate, error) {
	args := m.Called(ctx, taxRateIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) ListTaxRates(ctx context.Context, onlyEnabled bool) ([]domain.TaxRate, error) {
	args := m.Called(ctx, onlyEnabled)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) UpdateTaxRate(ctx context.Context, taxRate domain.TaxRate) error {
	args := m.Called(ctx, taxRate)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, customerID string, status string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, customerID, status, limit, nextToken)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return invoices, token, args.Error(2)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, invoiceID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ApplyPayment(ctx context.Context, payment domain.Payment, newPaid, newBalance decimal.Decimal, newStatus domain.InvoiceStatus, updatedAt time.Time) error {
	args := m.Called(ctx, payment, newPaid, newBalance, newStatus, updatedAt)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// --- Mock PurchaseOrderRepository ---
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, purchaseOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, supplierID string, status string, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error) {
	args := m.Called(ctx, supplierID, status, limit, nextToken)
	var orders []domain.PurchaseOrder
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.PurchaseOrder)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return orders, token, args.Error(2)
}

func (m *MockPurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, purchaseOrder domain.PurchaseOrder) error {
	args := m.Called(ctx, purchaseOrder)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) UpdatePurchaseOrder(ctx context.Context, purchaseOrder domain.PurchaseOrder) error {
	args := m.Called(ctx, purchaseOrder)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) UpdatePurchaseOrderStatus(ctx context.Context, purchaseOrderID string, status domain.PurchaseOrderStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, purchaseOrderID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) ConvertToGoodsReceipt(ctx context.Context, purchaseOrderID string, receipt domain.GoodsReceipt, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, purchaseOrderID, receipt, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock GoodsReceiptRepository ---
type MockGoodsReceiptRepository struct {
	mock.Mock
}

func (m *MockGoodsReceiptRepository) FindGoodsReceiptByID(ctx context.Context, goodsReceiptID string) (*domain.GoodsReceipt, error) {
	args := m.Called(ctx, goodsReceiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoodsReceipt), args.Error(1)
}

func (m *MockGoodsReceiptRepository) ListGoodsReceipts(ctx context.Context, supplierID string, status string, limit int, nextToken *string) ([]domain.GoodsReceipt, *string, error) {
	args := m.Called(ctx, supplierID, status, limit, nextToken)
	var receipts []domain.GoodsReceipt
	if args.Get(0) != nil {
		receipts = args.Get(0).([]domain.GoodsReceipt)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return receipts, token, args.Error(2)
}

func (m *MockGoodsReceiptRepository) SaveGoodsReceipt(ctx context.Context, receipt domain.GoodsReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockGoodsReceiptRepository) UpdateGoodsReceipt(ctx context.Context, receipt domain.GoodsReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockGoodsReceiptRepository) UpdateGoodsReceiptStatus(ctx context.Context, goodsReceiptID string, status domain.GoodsReceiptStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, goodsReceiptID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockGoodsReceiptRepository) CompleteWithStock(ctx context.Context, goodsReceiptID string, locationID string, increments map[string]decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, goodsReceiptID, locationID, increments, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock NumberingSvc ---
type MockNumberingSvc struct {
	mock.Mock
}

func (m *MockNumberingSvc) NextNumber(ctx context.Context, docType domain.DocumentType) (string, error) {
	args := m.Called(ctx, docType)
	return args.String(0), args.Error(1)
}
