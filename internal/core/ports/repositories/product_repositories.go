package repositories

import (
	"context"
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductRepositoryFacade defines persistence operations for products.
type ProductRepositoryFacade interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	// FindProductsByIDs returns the found products keyed by ID; missing IDs
	// are simply absent from the map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)
	ListProducts(ctx context.Context, search string, limit int, nextToken *string) ([]domain.Product, *string, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeactivateProduct(ctx context.Context, productID string, userID string, now time.Time) error
}

// TaxRateRepositoryFacade defines persistence operations for tax rates.
type TaxRateRepositoryFacade interface {
	SaveTaxRate(ctx context.Context, taxRate domain.TaxRate) error
	FindTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error)
	FindTaxRatesByIDs(ctx context.Context, taxRateIDs []string) (map[string]domain.TaxRate, error)
	// ListTaxRates returns all rates, or only enabled ones.
	ListTaxRates(ctx context.Context, onlyEnabled bool) ([]domain.TaxRate, error)
	UpdateTaxRate(ctx context.Context, taxRate domain.TaxRate) error
}

// StockRepositoryFacade defines persistence operations for stock levels.
// Increments from goods receipt completion happen inside the goods receipt
// repository's transaction, not here.
type StockRepositoryFacade interface {
	FindStockLevel(ctx context.Context, productID, locationID string) (*domain.StockLevel, error)
	ListStockLevels(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockLevel, *string, error)
	// AdjustStock applies a signed delta under a row lock, creating the level
	// row if it does not exist yet.
	AdjustStock(ctx context.Context, productID, locationID string, delta decimal.Decimal, userID string, now time.Time) error
}
