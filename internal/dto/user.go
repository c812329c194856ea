package dto

import (
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	UserID      string    `json:"userID"`
	Username    string    `json:"username"`
	IsPremium   bool      `json:"isPremium"`
	Theme       string    `json:"theme"`
	DarkMode    bool      `json:"darkMode"`
	AvatarIndex int       `json:"avatarIndex"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its public representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		IsPremium:   user.IsPremium,
		Theme:       user.Theme,
		DarkMode:    user.DarkMode,
		AvatarIndex: user.AvatarIndex,
		CreatedAt:   user.CreatedAt,
	}
}

// ChangePasswordRequest carries a password change form.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UpdatePreferencesRequest updates the account's presentation preferences.
// Pointers differentiate omitted fields from zero-value fields.
type UpdatePreferencesRequest struct {
	IsPremium   *bool   `json:"isPremium"`
	Theme       *string `json:"theme" binding:"omitempty,oneof=tan ocean autumn lilac moss moon night"`
	DarkMode    *bool   `json:"darkMode"`
	AvatarIndex *int    `json:"avatarIndex" binding:"omitempty,gte=0,lte=4"`
}

// PreferencesResponse is the persisted presentation state of an account.
type PreferencesResponse struct {
	IsPremium   bool   `json:"isPremium"`
	Theme       string `json:"theme"`
	DarkMode    bool   `json:"darkMode"`
	AvatarIndex int    `json:"avatarIndex"`
}

// ToPreferencesResponse converts domain preferences to their wire form.
func ToPreferencesResponse(prefs domain.Preferences) PreferencesResponse {
	return PreferencesResponse{
		IsPremium:   prefs.IsPremium,
		Theme:       prefs.Theme,
		DarkMode:    prefs.DarkMode,
		AvatarIndex: prefs.AvatarIndex,
	}
}
