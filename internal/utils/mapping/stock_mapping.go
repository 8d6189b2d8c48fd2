package mapping

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/models"
)

// ToModelStockLevel converts a domain StockLevel to a model StockLevel
func ToModelStockLevel(d domain.StockLevel) models.StockLevel {
	return models.StockLevel{
		ProductID:   d.ProductID,
		LocationID:  d.LocationID,
		Quantity:    d.Quantity,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStockLevel converts a model StockLevel to a domain StockLevel
func ToDomainStockLevel(m models.StockLevel) domain.StockLevel {
	return domain.StockLevel{
		ProductID:   m.ProductID,
		LocationID:  m.LocationID,
		Quantity:    m.Quantity,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
