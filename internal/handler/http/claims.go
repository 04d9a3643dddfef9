package http

import (
	"context"

	"github.com/brickmart/console-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// userIDFromContext extracts the authenticated account id from the
// verified access token.
func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}
