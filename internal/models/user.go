package models

import "database/sql"

// User is the database representation of an account.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`

	// External OAuth identity, null for password accounts.
	AuthProvider   sql.NullString `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`

	// Presentation preferences.
	IsPremium   bool   `db:"is_premium"`
	Theme       string `db:"theme"`
	DarkMode    bool   `db:"dark_mode"`
	AvatarIndex int    `db:"avatar_index"`

	AuditFields

	// Refresh token state.
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
