package domain

import "time"

// User represents an account holder in the domain.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Preferences
	AuditFields

	// External OAuth identity, when the account was created via a provider.
	AuthProvider   *string `json:"authProvider,omitempty"`
	ProviderUserID *string `json:"-"`

	// Refresh token state for the auth flow.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// Preferences holds the per-account presentation settings.
type Preferences struct {
	IsPremium   bool   `json:"isPremium"`
	Theme       string `json:"theme"`
	DarkMode    bool   `json:"darkMode"`
	AvatarIndex int    `json:"avatarIndex"`
}

// GoogleUserInfo is the subset of the Google userinfo response we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
