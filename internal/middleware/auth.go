package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"smartcity-server/internal/auth"
	"smartcity-server/internal/model"
	"smartcity-server/internal/service"
)

const bearerPrefix = "Bearer "

type tokenVerifier interface {
	VerifyAccessToken(tokenString string) (service.AccessClaims, error)
}

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
}

type contextKey string

const principalContextKey contextKey = "principal"

// AuthMiddleware resolves the bearer token of each request into a Principal.
// It decides who the caller is; whether the caller may touch a specific row
// is decided later, inside the resource services.
type AuthMiddleware struct {
	tokens tokenVerifier
	users  userFinder
}

func NewAuthMiddleware(tokens tokenVerifier, users userFinder) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Authenticate runs once per request, before any handler. Requests without a
// "Bearer " authorization header pass through anonymous; protected routes
// reject them downstream via RequireAuth. A present-but-bad token aborts the
// request here, and a structurally valid token for a missing or deactivated
// account is a hard failure, never a partial trust.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimSpace(header[len(bearerPrefix):])
		claims, err := m.tokens.VerifyAccessToken(token)
		if err != nil {
			writeAuthFailure(w, err)
			return
		}

		// Re-entrant call within the same request: the principal is already
		// resolved, do not hit the store again.
		if _, ok := PrincipalFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.users.FindByEmail(r.Context(), claims.Email)
		if err != nil {
			if errors.Is(err, model.ErrUserNotFound) {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "user not found")
				return
			}
			// Unexpected store failure: fail closed, never let the request
			// through unauthenticated.
			slog.Error("principal resolution failed", "error", err)
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication failed")
			return
		}

		if !user.Active {
			slog.Warn("inactive account rejected", "user_id", user.ID)
			writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "account is not active")
			return
		}

		principal := user.Principal()
		slog.Debug("request authenticated", "user_id", principal.ID, "authority", principal.Authority())

		ctx := context.WithValue(r.Context(), principalContextKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests that reached a protected route without a
// resolved principal.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFromContext(r.Context()); !ok {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireRole gates a route group on the principal's role.
func (m *AuthMiddleware) RequireRole(allowed ...auth.Role) func(http.Handler) http.Handler {
	roleSet := map[auth.Role]struct{}{}
	for _, role := range allowed {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
				return
			}

			if _, exists := roleSet[principal.Role]; !exists {
				writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// PrincipalFromContext returns the principal resolved for this request, if
// any.
func PrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(auth.Principal)
	return principal, ok
}

func writeAuthFailure(w http.ResponseWriter, err error) {
	message := "invalid token"
	switch {
	case errors.Is(err, model.ErrExpiredToken):
		message = "token expired"
	case errors.Is(err, model.ErrMalformedToken):
		message = "malformed token"
	}

	writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func writeAuthError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    code,
			Message: message,
		},
	})
}
