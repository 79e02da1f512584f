// Package middleware provides the HTTP middleware chain for the API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/cropconnect/api/pkg/auth"
	"github.com/cropconnect/api/pkg/response"
)

// Auth verifies the bearer token and injects the resulting Principal into
// the request context. Protected routes read the caller identity via
// auth.PrincipalFrom; they never trust ids supplied in the body.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(w, "Access token required")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		ctx := auth.WithPrincipal(r.Context(), auth.Principal{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
