package dto

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveProductRequest creates or updates a product.
type SaveProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"omitempty,min=0"`
	CostPrice   decimal.Decimal `json:"costPrice" binding:"omitempty,min=0"`
}

// ProductResponse is the product representation returned by the API.
type ProductResponse struct {
	ProductID   string          `json:"productID"`
	SKU         string          `json:"sku,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	CostPrice   decimal.Decimal `json:"costPrice"`
	IsActive    bool            `json:"isActive"`
}

// ToProductResponse converts a domain Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Unit:        p.Unit,
		UnitPrice:   p.UnitPrice,
		CostPrice:   p.CostPrice,
		IsActive:    p.IsActive,
	}
}

// ListProductsParams are the query parameters accepted by the list endpoint.
type ListProductsParams struct {
	Search    string  `form:"search"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListProductsResponse wraps a page of products.
type ListProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListProductsResponse maps a page of domain products.
func ToListProductsResponse(products []domain.Product, nextToken *string) ListProductsResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return ListProductsResponse{Products: out, NextToken: nextToken}
}
