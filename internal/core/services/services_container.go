package services

import (
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Numbering goes first since every document service depends on it.
	container.Numbering = NewNumberingService(repos.SequenceRepo)

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.TaxRate = NewTaxRateService(repos.TaxRateRepo)

	container.Quotation = NewQuotationService(repos.QuotationRepo, repos.CustomerRepo, repos.TaxRateRepo, container.Numbering)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.CustomerRepo, repos.TaxRateRepo, container.Numbering)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.InvoiceRepo, container.Numbering)
	container.PurchaseOrder = NewPurchaseOrderService(repos.PurchaseOrderRepo, repos.SupplierRepo, repos.TaxRateRepo, container.Numbering)
	container.GoodsReceipt = NewGoodsReceiptService(repos.GoodsReceiptRepo, repos.SupplierRepo, container.Numbering)
	container.Stock = NewStockService(repos.StockRepo, repos.ProductRepo)

	container.Setting = NewSettingService(repos.SettingRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}

// Compile-time checks that the implementations satisfy their facades.
var (
	_ portssvc.CustomerSvcFacade      = (*CustomerService)(nil)
	_ portssvc.SupplierSvcFacade      = (*SupplierService)(nil)
	_ portssvc.ProductSvcFacade       = (*ProductService)(nil)
	_ portssvc.TaxRateSvcFacade       = (*TaxRateService)(nil)
	_ portssvc.QuotationSvcFacade     = (*QuotationService)(nil)
	_ portssvc.InvoiceSvcFacade       = (*InvoiceService)(nil)
	_ portssvc.PaymentSvcFacade       = (*PaymentService)(nil)
	_ portssvc.PurchaseOrderSvcFacade = (*PurchaseOrderService)(nil)
	_ portssvc.GoodsReceiptSvcFacade  = (*GoodsReceiptService)(nil)
	_ portssvc.StockSvcFacade         = (*StockService)(nil)
	_ portssvc.NumberingSvc           = (*NumberingService)(nil)
	_ portssvc.SettingSvcFacade       = (*SettingService)(nil)
	_ portssvc.UserSvcFacade          = (*UserService)(nil)
	_ portssvc.AuthSvcFacade          = (*AuthService)(nil)
)
