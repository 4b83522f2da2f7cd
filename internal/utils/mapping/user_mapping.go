package mapping

import (
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

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
