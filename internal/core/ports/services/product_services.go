package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/dto"
)

// ProductReaderSvc defines read operations for product data
type ProductReaderSvc interface {
	// GetProductByID retrieves a specific product by its ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated list of products, optionally
	// filtered by a name or SKU search term.
	ListProducts(ctx context.Context, params dto.ListProductsParams) (*dto.ListProductsResponse, error)
}

// ProductWriterSvc defines write operations for product data
type ProductWriterSvc interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, actor domain.Actor, req dto.SaveProductRequest) (*domain.Product, error)

	// UpdateProduct updates product details.
	UpdateProduct(ctx context.Context, actor domain.Actor, productID string, req dto.SaveProductRequest) (*domain.Product, error)

	// DeactivateProduct marks a product as inactive.
	DeactivateProduct(ctx context.Context, actor domain.Actor, productID string) error
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}

// TaxRateReaderSvc defines read operations for tax rate data
type TaxRateReaderSvc interface {
	// GetTaxRateByID retrieves a specific tax rate by its ID.
	GetTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error)

	// ListTaxRates retrieves all tax rates, optionally only enabled ones.
	ListTaxRates(ctx context.Context, onlyEnabled bool) ([]domain.TaxRate, error)
}

// TaxRateWriterSvc defines write operations for tax rate data
type TaxRateWriterSvc interface {
	// CreateTaxRate persists a new tax rate.
	CreateTaxRate(ctx context.Context, actor domain.Actor, req dto.SaveTaxRateRequest) (*domain.TaxRate, error)

	// UpdateTaxRate updates a tax rate. Documents keep the tax values
	// snapshotted at issue time; only future documents see the change.
	UpdateTaxRate(ctx context.Context, actor domain.Actor, taxRateID string, req dto.SaveTaxRateRequest) (*domain.TaxRate, error)
}

// TaxRateSvcFacade combines all tax-rate-related service interfaces
type TaxRateSvcFacade interface {
	TaxRateReaderSvc
	TaxRateWriterSvc
}

// StockReaderSvc defines read operations for stock data
type StockReaderSvc interface {
	// GetStockLevel retrieves the stock level for a product at a location.
	GetStockLevel(ctx context.Context, productID string, locationID string) (*domain.StockLevel, error)

	// ListStockLevels retrieves a paginated list of stock levels.
	ListStockLevels(ctx context.Context, params dto.ListStockLevelsParams) (*dto.ListStockLevelsResponse, error)
}

// StockWriterSvc defines write operations for stock data
type StockWriterSvc interface {
	// AdjustStock applies a signed manual adjustment to a stock level.
	AdjustStock(ctx context.Context, actor domain.Actor, req dto.AdjustStockRequest) (*domain.StockLevel, error)
}

// StockSvcFacade combines all stock-related service interfaces
type StockSvcFacade interface {
	StockReaderSvc
	StockWriterSvc
}
