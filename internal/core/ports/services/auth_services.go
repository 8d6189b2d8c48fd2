package services

import (
	"context"
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthSvcFacade defines authentication operations: credential login, token
// issuance and the Google sign-in exchange.
type AuthSvcFacade interface {
	// Login verifies a username and password and returns the user.
	Login(ctx context.Context, username string, password string) (*domain.User, error)

	// GenerateAccessToken issues a signed JWT carrying the user's ID and role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ExchangeGoogleCode exchanges an OAuth authorization code for a token.
	ExchangeGoogleCode(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken validates a Google ID token and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)

	// LoginWithGoogle finds or provisions the user for a validated Google
	// identity. New users get the read-only role until an admin promotes them.
	LoginWithGoogle(ctx context.Context, payload *idtoken.Payload) (*domain.User, error)
}
