package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Customer      CustomerSvcFacade
	Supplier      SupplierSvcFacade
	Product       ProductSvcFacade
	TaxRate       TaxRateSvcFacade
	Quotation     QuotationSvcFacade
	Invoice       InvoiceSvcFacade
	Payment       PaymentSvcFacade
	PurchaseOrder PurchaseOrderSvcFacade
	GoodsReceipt  GoodsReceiptSvcFacade
	Stock         StockSvcFacade
	Numbering     NumberingSvc
	Setting       SettingSvcFacade
	User          UserSvcFacade
	Auth          AuthSvcFacade
}
