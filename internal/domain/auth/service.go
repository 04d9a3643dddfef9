package auth

import (
	"context"

	"github.com/brickmart/console-backend-go/internal/pkg/oauth"
)

// AuthService defines authentication business logic.
type AuthService interface {
	// Login authenticates with email and password.
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (LoginResponse, error)

	// LoginWithGoogle authenticates with a verified Google identity.
	// The account must already exist; the console has no self sign-up.
	LoginWithGoogle(ctx context.Context, info oauth.GoogleInformation, session SessionTrackingRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string, session SessionTrackingRequest) (LoginResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
