package middleware

import (
	"net/http"

	"github.com/brickmart/console-backend-go/internal/domain/auth"
	"github.com/brickmart/console-backend-go/internal/domain/user"
	"github.com/brickmart/console-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly rejects requests whose access token does not carry the admin
// role. The role claim is the single source of truth here; handlers never
// consult any cached profile state.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
