package mapping

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/models"
)

// ToModelSetting converts a domain Setting to a model Setting
func ToModelSetting(d domain.Setting) models.Setting {
	return models.Setting{
		Key:         d.Key,
		Value:       d.Value,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSetting converts a model Setting to a domain Setting
func ToDomainSetting(m models.Setting) domain.Setting {
	return domain.Setting{
		Key:         m.Key,
		Value:       m.Value,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
