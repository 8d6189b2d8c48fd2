package dto

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AdjustStockRequest applies a signed manual adjustment to a stock level.
type AdjustStockRequest struct {
	ProductID  string          `json:"productID" binding:"required"`
	LocationID string          `json:"locationID"`
	Delta      decimal.Decimal `json:"delta" binding:"required"`
	Reason     string          `json:"reason" binding:"required"`
}

// StockLevelResponse is the stock level representation returned by the API.
type StockLevelResponse struct {
	ProductID  string          `json:"productID"`
	LocationID string          `json:"locationID"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// ToStockLevelResponse converts a domain StockLevel to its response DTO.
func ToStockLevelResponse(s *domain.StockLevel) StockLevelResponse {
	return StockLevelResponse{
		ProductID:  s.ProductID,
		LocationID: s.LocationID,
		Quantity:   s.Quantity,
	}
}

// ListStockLevelsParams are the query parameters accepted by the list endpoint.
type ListStockLevelsParams struct {
	ProductID string  `form:"productID"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListStockLevelsResponse wraps a page of stock levels.
type ListStockLevelsResponse struct {
	StockLevels []StockLevelResponse `json:"stockLevels"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// ToListStockLevelsResponse maps a page of domain stock levels.
func ToListStockLevelsResponse(levels []domain.StockLevel, nextToken *string) ListStockLevelsResponse {
	out := make([]StockLevelResponse, len(levels))
	for i := range levels {
		out[i] = ToStockLevelResponse(&levels[i])
	}
	return ListStockLevelsResponse{StockLevels: out, NextToken: nextToken}
}
