package dto

import "github.com/bizgrid/erp_backend/internal/core/domain"

// SaveSupplierRequest creates or updates a supplier.
type SaveSupplierRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	TaxNumber string `json:"taxNumber"`
}

// SupplierResponse is the supplier representation returned by the API.
type SupplierResponse struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	TaxNumber  string `json:"taxNumber,omitempty"`
	IsActive   bool   `json:"isActive"`
}

// ToSupplierResponse converts a domain Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID: s.SupplierID,
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Address:    s.Address,
		TaxNumber:  s.TaxNumber,
		IsActive:   s.IsActive,
	}
}

// ListSuppliersParams are the query parameters accepted by the list endpoint.
type ListSuppliersParams struct {
	Search    string  `form:"search"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListSuppliersResponse wraps a page of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToListSuppliersResponse maps a page of domain suppliers.
func ToListSuppliersResponse(suppliers []domain.Supplier, nextToken *string) ListSuppliersResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		out[i] = ToSupplierResponse(&suppliers[i])
	}
	return ListSuppliersResponse{Suppliers: out, NextToken: nextToken}
}
