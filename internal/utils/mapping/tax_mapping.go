package mapping

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/models"
)

// ToModelTaxRate converts a domain TaxRate to a model TaxRate
func ToModelTaxRate(d domain.TaxRate) models.TaxRate {
	return models.TaxRate{
		TaxRateID:   d.TaxRateID,
		Name:        d.Name,
		Value:       d.Value,
		Enabled:     d.Enabled,
		IsDefault:   d.IsDefault,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTaxRate converts a model TaxRate to a domain TaxRate
func ToDomainTaxRate(m models.TaxRate) domain.TaxRate {
	return domain.TaxRate{
		TaxRateID:   m.TaxRateID,
		Name:        m.Name,
		Value:       m.Value,
		Enabled:     m.Enabled,
		IsDefault:   m.IsDefault,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
