package mapping

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		SKU:         d.SKU,
		Name:        d.Name,
		Description: d.Description,
		Unit:        d.Unit,
		UnitPrice:   d.UnitPrice,
		CostPrice:   d.CostPrice,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		SKU:         m.SKU,
		Name:        m.Name,
		Description: m.Description,
		Unit:        m.Unit,
		UnitPrice:   m.UnitPrice,
		CostPrice:   m.CostPrice,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
