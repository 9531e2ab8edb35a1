package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/coursestore/backend/internal/middleware"
)

type contextKey string

const viewerIDKey contextKey = "viewerID"

// AuthMiddleware validates the JWT access token and puts the viewer ID in the request context
//
// Requests without a valid token are refused with 401.
func AuthMiddleware(tokenGenerator *TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				writeUnauthorized(w, r, "authentication required")
				return
			}

			viewerID, err := tokenGenerator.ValidateAccessToken(token)
			if err != nil {
				writeUnauthorized(w, r, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithViewerID(r.Context(), viewerID)))
		})
	}
}

// OptionalAuthMiddleware puts the viewer ID in the request context when a valid token is present
//
// Requests without a token, or with an invalid one, continue as the anonymous viewer.
func OptionalAuthMiddleware(tokenGenerator *TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			viewerID, err := tokenGenerator.ValidateAccessToken(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithViewerID(r.Context(), viewerID)))
		})
	}
}

// GetViewerID retrieves the viewer ID from context
func GetViewerID(ctx context.Context) (int, bool) {
	viewerID, ok := ctx.Value(viewerIDKey).(int)
	return viewerID, ok
}

// WithViewerID returns a copy of ctx carrying the viewer ID
func WithViewerID(ctx context.Context, viewerID int) context.Context {
	return context.WithValue(ctx, viewerIDKey, viewerID)
}

// extractToken reads the token from the Authorization header, then from the access_token cookie
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	cookie, err := r.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}

	return ""
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	middleware.WriteError(w, r, http.StatusUnauthorized, message)
}
