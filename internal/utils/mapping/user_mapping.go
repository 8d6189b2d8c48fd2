package mapping

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Username:       d.Username,
		Name:           d.Name,
		Email:          d.Email,
		PasswordHash:   strPtr(d.PasswordHash),
		Role:           string(d.Role),
		AuthProvider:   d.AuthProvider,
		ProviderUserID: strPtr(d.ProviderUserID),
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Username:       m.Username,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHash:   strVal(m.PasswordHash),
		Role:           domain.Role(m.Role),
		AuthProvider:   m.AuthProvider,
		ProviderUserID: strVal(m.ProviderUserID),
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
