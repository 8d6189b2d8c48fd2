package repositories

import (
	"context"
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// CustomerRepositoryFacade defines persistence operations for customers.
type CustomerRepositoryFacade interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	// ListCustomers returns active customers filtered by an optional name
	// search, with token pagination.
	ListCustomers(ctx context.Context, search string, limit int, nextToken *string) ([]domain.Customer, *string, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeactivateCustomer(ctx context.Context, customerID string, userID string, now time.Time) error
}

// SupplierRepositoryFacade defines persistence operations for suppliers.
type SupplierRepositoryFacade interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, search string, limit int, nextToken *string) ([]domain.Supplier, *string, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeactivateSupplier(ctx context.Context, supplierID string, userID string, now time.Time) error
}
