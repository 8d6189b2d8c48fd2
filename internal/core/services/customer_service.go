package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/google/uuid"
)

const defaultListLimit = 20

type CustomerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

func NewCustomerService(repo portsrepo.CustomerRepositoryFacade) *CustomerService {
	return &CustomerService{customerRepo: repo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, actor domain.Actor, req dto.SaveCustomerRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		TaxNumber:  req.TaxNumber,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Customer created successfully", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer by ID", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	customers, nextToken, err := s.customerRepo.ListCustomers(ctx, params.Search, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list customers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	resp := dto.ToListCustomersResponse(customers, nextToken)
	return &resp, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, actor domain.Actor, customerID string, req dto.SaveCustomerRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.TaxNumber = req.TaxNumber
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = actor.UserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		logger.Error("Failed to update customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, err
	}

	logger.Info("Customer updated successfully", slog.String("customer_id", customerID))
	return customer, nil
}

func (s *CustomerService) DeactivateCustomer(ctx context.Context, actor domain.Actor, customerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := requireManageRole(actor); err != nil {
		return err
	}

	if err := s.customerRepo.DeactivateCustomer(ctx, customerID, actor.UserID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return err
	}

	logger.Info("Customer deactivated successfully", slog.String("customer_id", customerID))
	return nil
}
