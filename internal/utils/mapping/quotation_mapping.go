package mapping

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/models"
)

// ToModelQuotation converts a domain Quotation to a model header row.
// Items and applied taxes are mapped separately.
func ToModelQuotation(d domain.Quotation) models.Quotation {
	return models.Quotation{
		QuotationID:            d.QuotationID,
		Number:                 d.Number,
		CustomerID:             d.CustomerID,
		QuotationDate:          d.QuotationDate,
		ExpiryDate:             timePtr(d.ExpiryDate),
		OverallDiscountPercent: d.OverallDiscountPercent,
		Subtotal:               d.Subtotal,
		DiscountAmount:         d.DiscountAmount,
		TaxAmount:              d.TaxAmount,
		Total:                  d.Total,
		Status:                 string(d.Status),
		ConvertedToInvoice:     d.ConvertedToInvoice,
		InvoiceID:              strPtr(d.InvoiceID),
		Notes:                  d.Notes,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainQuotation converts a model header row plus its item and tax rows
// to a domain Quotation.
func ToDomainQuotation(m models.Quotation, items []models.DocumentItem, taxes []models.DocumentTax) domain.Quotation {
	return domain.Quotation{
		QuotationID:            m.QuotationID,
		Number:                 m.Number,
		CustomerID:             m.CustomerID,
		QuotationDate:          m.QuotationDate,
		ExpiryDate:             timeVal(m.ExpiryDate),
		Items:                  ToDomainLineItems(items),
		OverallDiscountPercent: m.OverallDiscountPercent,
		AppliedTaxes:           ToDomainAppliedTaxes(taxes),
		TotalsSnapshot: domain.TotalsSnapshot{
			Subtotal:       m.Subtotal,
			DiscountAmount: m.DiscountAmount,
			TaxAmount:      m.TaxAmount,
			Total:          m.Total,
		},
		Status:             domain.QuotationStatus(m.Status),
		ConvertedToInvoice: m.ConvertedToInvoice,
		InvoiceID:          strVal(m.InvoiceID),
		Notes:              m.Notes,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
