package dto

import "github.com/bizgrid/erp_backend/internal/core/domain"

// SaveCustomerRequest creates or updates a customer.
type SaveCustomerRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	TaxNumber string `json:"taxNumber"`
}

// CustomerResponse is the customer representation returned by the API.
type CustomerResponse struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	TaxNumber  string `json:"taxNumber,omitempty"`
	IsActive   bool   `json:"isActive"`
}

// ToCustomerResponse converts a domain Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		TaxNumber:  c.TaxNumber,
		IsActive:   c.IsActive,
	}
}

// ListCustomersParams are the query parameters accepted by the list endpoint.
type ListCustomersParams struct {
	Search    string  `form:"search"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListCustomersResponse wraps a page of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToListCustomersResponse maps a page of domain customers.
func ToListCustomersResponse(customers []domain.Customer, nextToken *string) ListCustomersResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = ToCustomerResponse(&customers[i])
	}
	return ListCustomersResponse{Customers: out, NextToken: nextToken}
}
