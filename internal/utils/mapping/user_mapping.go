package mapping

import (
	"database/sql"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	"github.com/SscSPs/thoughtlog_backend/internal/models"
)

// ToModelUser converts a domain.User to its database representation.
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		IsPremium:    d.IsPremium,
		Theme:        d.Theme,
		DarkMode:     d.DarkMode,
		AvatarIndex:  d.AvatarIndex,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
	if d.AuthProvider != nil {
		m.AuthProvider = sql.NullString{String: *d.AuthProvider, Valid: true}
	}
	if d.ProviderUserID != nil {
		m.ProviderUserID = sql.NullString{String: *d.ProviderUserID, Valid: true}
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainUser converts a models.User to its domain representation.
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Preferences: domain.Preferences{
			IsPremium:   m.IsPremium,
			Theme:       m.Theme,
			DarkMode:    m.DarkMode,
			AvatarIndex: m.AvatarIndex,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.AuthProvider.Valid {
		provider := m.AuthProvider.String
		d.AuthProvider = &provider
	}
	if m.ProviderUserID.Valid {
		providerUserID := m.ProviderUserID.String
		d.ProviderUserID = &providerUserID
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		expiry := m.RefreshTokenExpiryTime.Time.In(time.UTC)
		d.RefreshTokenExpiryTime = &expiry
	}
	return d
}
