package dto

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one document row as submitted by the client.
// Percent bounds rely on the decimal custom type func registered with the
// validator at startup.
type LineItemRequest struct {
	ProductID       string          `json:"productID"`
	Description     string          `json:"description" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent" binding:"omitempty,min=0,max=100"`
}

// TotalsRequest carries the client-computed figures. They are optional and
// only ever used as a cross-check: the server recomputes from the items and
// rejects a submission whose total disagrees.
type TotalsRequest struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`
}

// LineItemResponse is one document row as returned to the client.
type LineItemResponse struct {
	LineItemID      string          `json:"lineItemID"`
	ProductID       string          `json:"productID,omitempty"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	LineTotal       decimal.Decimal `json:"lineTotal"`
}

// AppliedTaxResponse is a tax snapshot as returned to the client.
type AppliedTaxResponse struct {
	TaxRateID string          `json:"taxRateID"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
}

// TotalsResponse is the persisted totals snapshot as returned to the client.
type TotalsResponse struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`
}

func toLineItemResponses(items []domain.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, item := range items {
		out[i] = LineItemResponse{
			LineItemID:      item.LineItemID,
			ProductID:       item.ProductID,
			Description:     item.Description,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
			LineTotal:       item.NetAmount(),
		}
	}
	return out
}

func toAppliedTaxResponses(taxes []domain.AppliedTax) []AppliedTaxResponse {
	out := make([]AppliedTaxResponse, len(taxes))
	for i, tax := range taxes {
		out[i] = AppliedTaxResponse{TaxRateID: tax.TaxRateID, Name: tax.Name, Value: tax.Value}
	}
	return out
}

func toTotalsResponse(snap domain.TotalsSnapshot) TotalsResponse {
	return TotalsResponse{
		Subtotal:       snap.Subtotal,
		DiscountAmount: snap.DiscountAmount,
		TaxAmount:      snap.TaxAmount,
		Total:          snap.Total,
	}
}
