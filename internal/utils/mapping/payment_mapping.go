package mapping

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		Number:      d.Number,
		InvoiceID:   d.InvoiceID,
		Amount:      d.Amount,
		Method:      string(d.Method),
		PaymentDate: d.PaymentDate,
		Reference:   d.Reference,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		Number:      m.Number,
		InvoiceID:   m.InvoiceID,
		Amount:      m.Amount,
		Method:      domain.PaymentMethod(m.Method),
		PaymentDate: m.PaymentDate,
		Reference:   m.Reference,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
