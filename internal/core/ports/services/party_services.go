package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a specific customer by its ID.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers, optionally
	// filtered by a name search term.
	ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, actor domain.Actor, req dto.SaveCustomerRequest) (*domain.Customer, error)

	// UpdateCustomer updates customer details.
	UpdateCustomer(ctx context.Context, actor domain.Actor, customerID string, req dto.SaveCustomerRequest) (*domain.Customer, error)

	// DeactivateCustomer marks a customer as inactive.
	DeactivateCustomer(ctx context.Context, actor domain.Actor, customerID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}

// SupplierReaderSvc defines read operations for supplier data
type SupplierReaderSvc interface {
	// GetSupplierByID retrieves a specific supplier by its ID.
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves a paginated list of suppliers, optionally
	// filtered by a name search term.
	ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) (*dto.ListSuppliersResponse, error)
}

// SupplierWriterSvc defines write operations for supplier data
type SupplierWriterSvc interface {
	// CreateSupplier persists a new supplier.
	CreateSupplier(ctx context.Context, actor domain.Actor, req dto.SaveSupplierRequest) (*domain.Supplier, error)

	// UpdateSupplier updates supplier details.
	UpdateSupplier(ctx context.Context, actor domain.Actor, supplierID string, req dto.SaveSupplierRequest) (*domain.Supplier, error)

	// DeactivateSupplier marks a supplier as inactive.
	DeactivateSupplier(ctx context.Context, actor domain.Actor, supplierID string) error
}

// SupplierSvcFacade combines all supplier-related service interfaces
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}
