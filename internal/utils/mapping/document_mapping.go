package mapping

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/models"
)

// ToModelDocumentItems converts document line items to model rows for the
// given parent document, assigning positions from slice order.
func ToModelDocumentItems(documentID string, items []domain.LineItem) []models.DocumentItem {
	rows := make([]models.DocumentItem, 0, len(items))
	for i, it := range items {
		rows = append(rows, models.DocumentItem{
			LineItemID:      it.LineItemID,
			DocumentID:      documentID,
			ProductID:       strPtr(it.ProductID),
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			Position:        i,
		})
	}
	return rows
}

// ToDomainLineItems converts model item rows (ordered by position) back to
// domain line items.
func ToDomainLineItems(rows []models.DocumentItem) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.LineItem{
			LineItemID:      r.LineItemID,
			ProductID:       strVal(r.ProductID),
			Description:     r.Description,
			Quantity:        r.Quantity,
			UnitPrice:       r.UnitPrice,
			DiscountPercent: r.DiscountPercent,
		})
	}
	return items
}

// ToModelDocumentTaxes converts applied tax snapshots to model rows for the
// given parent document.
func ToModelDocumentTaxes(documentID string, taxes []domain.AppliedTax) []models.DocumentTax {
	rows := make([]models.DocumentTax, 0, len(taxes))
	for i, t := range taxes {
		rows = append(rows, models.DocumentTax{
			DocumentID: documentID,
			TaxRateID:  t.TaxRateID,
			Name:       t.Name,
			Value:      t.Value,
			Position:   i,
		})
	}
	return rows
}

// ToDomainAppliedTaxes converts model tax rows back to applied tax snapshots.
func ToDomainAppliedTaxes(rows []models.DocumentTax) []domain.AppliedTax {
	taxes := make([]domain.AppliedTax, 0, len(rows))
	for _, r := range rows {
		taxes = append(taxes, domain.AppliedTax{
			TaxRateID: r.TaxRateID,
			Name:      r.Name,
			Value:     r.Value,
		})
	}
	return taxes
}
