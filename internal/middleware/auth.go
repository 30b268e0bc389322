package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/xblinx/attachments/internal/response"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

// SubjectKey is the context key for the authenticated caller's subject.
const SubjectKey contextKey = "subject"

const (
	msgAuthRequired   = "Authorization header required."
	msgAuthFormat     = "Invalid authorization header format."
	msgSessionExpired = "Session expired. Please sign in again."
	msgInvalidToken   = "Invalid token."
)

// RequireAuth returns middleware that validates a Bearer JWT signed with
// secret and injects its subject into the request context. Expired tokens
// get a distinct message so clients can refresh the session.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, msgAuthRequired)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Unauthorized(w, msgAuthFormat)
				return
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				response.Unauthorized(w, msgSessionExpired)
				return
			case err != nil || !token.Valid:
				response.Unauthorized(w, msgInvalidToken)
				return
			}

			subject, _ := token.Claims.GetSubject()
			ctx := context.WithValue(r.Context(), SubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Subject returns the authenticated subject stored by RequireAuth.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(SubjectKey).(string)
	return s
}
