package pgsql

import (
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	customerRepo := newPgxCustomerRepository(dbPool)
	supplierRepo := newPgxSupplierRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	taxRateRepo := newPgxTaxRateRepository(dbPool)
	quotationRepo := newPgxQuotationRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	purchaseOrderRepo := newPgxPurchaseOrderRepository(dbPool)
	goodsReceiptRepo := newPgxGoodsReceiptRepository(dbPool)
	stockRepo := newPgxStockRepository(dbPool)
	sequenceRepo := newPgxSequenceRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	settingRepo := newPgxSettingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CustomerRepo:      customerRepo,
		SupplierRepo:      supplierRepo,
		ProductRepo:       productRepo,
		TaxRateRepo:       taxRateRepo,
		QuotationRepo:     quotationRepo,
		InvoiceRepo:       invoiceRepo,
		PaymentRepo:       paymentRepo,
		PurchaseOrderRepo: purchaseOrderRepo,
		GoodsReceiptRepo:  goodsReceiptRepo,
		StockRepo:         stockRepo,
		SequenceRepo:      sequenceRepo,
		UserRepo:          userRepo,
		SettingRepo:       settingRepo,
	}
}
