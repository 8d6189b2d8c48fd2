package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CustomerRepo      CustomerRepositoryFacade
	SupplierRepo      SupplierRepositoryFacade
	ProductRepo       ProductRepositoryFacade
	TaxRateRepo       TaxRateRepositoryFacade
	QuotationRepo     QuotationRepositoryFacade
	InvoiceRepo       InvoiceRepositoryFacade
	PaymentRepo       PaymentRepositoryFacade
	PurchaseOrderRepo PurchaseOrderRepositoryFacade
	GoodsReceiptRepo  GoodsReceiptRepositoryFacade
	StockRepo         StockRepositoryFacade
	SequenceRepo      SequenceRepositoryFacade
	UserRepo          UserRepositoryFacade
	SettingRepo       SettingRepositoryFacade
}
