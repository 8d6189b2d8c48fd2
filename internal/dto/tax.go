package dto

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveTaxRateRequest creates or updates a tax rate.
type SaveTaxRateRequest struct {
	Name      string          `json:"name" binding:"required"`
	Value     decimal.Decimal `json:"value" binding:"min=0,max=100"`
	Enabled   *bool           `json:"enabled"`
	IsDefault *bool           `json:"isDefault"`
}

// TaxRateResponse is the tax rate representation returned by the API.
type TaxRateResponse struct {
	TaxRateID string          `json:"taxRateID"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	Enabled   bool            `json:"enabled"`
	IsDefault bool            `json:"isDefault"`
}

// ToTaxRateResponse converts a domain TaxRate to its response DTO.
func ToTaxRateResponse(t *domain.TaxRate) TaxRateResponse {
	return TaxRateResponse{
		TaxRateID: t.TaxRateID,
		Name:      t.Name,
		Value:     t.Value,
		Enabled:   t.Enabled,
		IsDefault: t.IsDefault,
	}
}

// ToTaxRateResponses maps a slice of domain tax rates.
func ToTaxRateResponses(taxRates []domain.TaxRate) []TaxRateResponse {
	out := make([]TaxRateResponse, len(taxRates))
	for i := range taxRates {
		out[i] = ToTaxRateResponse(&taxRates[i])
	}
	return out
}
