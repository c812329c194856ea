package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/apperrors"
	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/thoughtlog_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/thoughtlog_backend/internal/core/ports/services"
	"github.com/SscSPs/thoughtlog_backend/internal/dto"
	"github.com/SscSPs/thoughtlog_backend/internal/utils"
	"github.com/google/uuid"
)

const (
	defaultTheme       = "tan"
	googleProvider     = "google"
	defaultAvatarIndex = 0
)

// freeThemes are selectable without a premium account; the rest unlock with it.
var freeThemes = map[string]bool{
	"tan":   true,
	"ocean": true,
}

// userService implements portssvc.UserSvcFacade on top of the user repository.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if req.Password != req.Password2 {
		return nil, fmt.Errorf("%w: passwords do not match", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Preferences: domain.Preferences{
			Theme:       defaultTheme,
			AvatarIndex: defaultAvatarIndex,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username already in use", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// AuthenticateUser verifies credentials. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to look up user for password change: %w", err)
	}

	if user.PasswordHash == "" {
		return fmt.Errorf("%w: password login is not enabled for this account", apperrors.ErrValidation)
	}
	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrUnauthorized
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash, time.Now()); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}

func (s *userService) UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user for preferences update: %w", err)
	}

	prefs := user.Preferences
	if req.IsPremium != nil {
		prefs.IsPremium = *req.IsPremium
	}
	if req.Theme != nil {
		prefs.Theme = *req.Theme
	}
	if req.DarkMode != nil {
		prefs.DarkMode = *req.DarkMode
	}
	if req.AvatarIndex != nil {
		prefs.AvatarIndex = *req.AvatarIndex
	}

	// Premium themes are only selectable on premium accounts. Dropping
	// premium while a locked theme is active falls back to the default.
	if !prefs.IsPremium && !freeThemes[prefs.Theme] {
		if req.Theme != nil {
			return nil, fmt.Errorf("%w: theme %q requires a premium account", apperrors.ErrForbidden, prefs.Theme)
		}
		prefs.Theme = defaultTheme
	}

	if err := s.userRepo.UpdatePreferences(ctx, userID, prefs, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	user.Preferences = prefs
	return user, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

// FindOrCreateGoogleUser resolves a Google identity to a local account,
// creating one on first sign-in. Google accounts have no password hash, so
// password login stays disabled for them.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, googleProvider, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	now := time.Now()
	provider := googleProvider
	providerUserID := info.ID
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Username:       info.Email,
		AuthProvider:   &provider,
		ProviderUserID: &providerUserID,
		Preferences: domain.Preferences{
			Theme:       defaultTheme,
			AvatarIndex: defaultAvatarIndex,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: an account with this email already exists", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}

	s.LogInfo(ctx, "Google account linked", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}
