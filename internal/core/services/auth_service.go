package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/bizgrid/erp_backend/internal/platform/config"
	"github.com/bizgrid/erp_backend/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// AuthService implements credential login, JWT issuance and the Google
// sign-in exchange.
type AuthService struct {
	cfg          *config.Config
	userRepo     portsrepo.UserRepositoryFacade
	oauth2Config *oauth2.Config
}

func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) *AuthService {
	return &AuthService{
		cfg:      cfg,
		userRepo: userRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Login verifies a username and password. Wrong username and wrong password
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username string, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", apperrors.ErrUnauthorized)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	return user, nil
}

// GenerateAccessToken issues a signed JWT carrying the user's ID and role.
func (s *AuthService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// ExchangeGoogleCode exchanges an OAuth authorization code for a token.
func (s *AuthService) ExchangeGoogleCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and
// returns the payload if valid.
func (s *AuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}

// LoginWithGoogle finds or provisions the user for a validated Google
// identity. First-time users are created read-only; an admin assigns a real
// role afterwards.
func (s *AuthService) LoginWithGoogle(ctx context.Context, payload *idtoken.Payload) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: google token has no email claim", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		if !user.IsActive {
			return nil, fmt.Errorf("%w: account is deactivated", apperrors.ErrUnauthorized)
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up user by email", slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now()
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Username:       email,
		Name:           name,
		Email:          email,
		Role:           domain.RoleReadOnly,
		AuthProvider:   "google",
		ProviderUserID: payload.Subject,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	newUser.CreatedBy = newUser.UserID
	newUser.LastUpdatedBy = newUser.UserID

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		logger.Error("Failed to provision google user", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Provisioned new user from google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}
