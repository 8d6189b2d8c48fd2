package mapping

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model header row.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:              d.InvoiceID,
		Number:                 d.Number,
		CustomerID:             d.CustomerID,
		SourceQuotationID:      strPtr(d.SourceQuotationID),
		InvoiceDate:            d.InvoiceDate,
		DueDate:                timePtr(d.DueDate),
		OverallDiscountPercent: d.OverallDiscountPercent,
		Subtotal:               d.Subtotal,
		DiscountAmount:         d.DiscountAmount,
		TaxAmount:              d.TaxAmount,
		Total:                  d.Total,
		PaidAmount:             d.PaidAmount,
		BalanceAmount:          d.BalanceAmount,
		Status:                 string(d.Status),
		Notes:                  d.Notes,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model header row plus its item and tax rows to
// a domain Invoice.
func ToDomainInvoice(m models.Invoice, items []models.DocumentItem, taxes []models.DocumentTax) domain.Invoice {
	return domain.Invoice{
		InvoiceID:              m.InvoiceID,
		Number:                 m.Number,
		CustomerID:             m.CustomerID,
		SourceQuotationID:      strVal(m.SourceQuotationID),
		InvoiceDate:            m.InvoiceDate,
		DueDate:                timeVal(m.DueDate),
		Items:                  ToDomainLineItems(items),
		OverallDiscountPercent: m.OverallDiscountPercent,
		AppliedTaxes:           ToDomainAppliedTaxes(taxes),
		TotalsSnapshot: domain.TotalsSnapshot{
			Subtotal:       m.Subtotal,
			DiscountAmount: m.DiscountAmount,
			TaxAmount:      m.TaxAmount,
			Total:          m.Total,
		},
		PaidAmount:    m.PaidAmount,
		BalanceAmount: m.BalanceAmount,
		Status:        domain.InvoiceStatus(m.Status),
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
