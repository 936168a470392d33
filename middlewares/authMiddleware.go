package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/02priyeshraj/Table_Ordering_Backend/helper"
	"github.com/02priyeshraj/Table_Ordering_Backend/models"
)

type contextKey string

const principalKey contextKey = "principal"

const AdminTokenHeader = "X-Admin-Token"

// Principal is the authenticated caller of an admin route.
type Principal struct {
	UserID   string
	Username string
	Role     string
	Static   bool
}

type Authenticator struct {
	tokens     *helper.TokenHelper
	adminToken string
}

// NewAuthenticator accepts signed tokens and, when adminToken is not empty,
// the static admin token.
func NewAuthenticator(tokens *helper.TokenHelper, adminToken string) *Authenticator {
	return &Authenticator{tokens: tokens, adminToken: adminToken}
}

// Authentication rejects requests without a valid credential and stores the
// caller in the request context.
func (a *Authenticator) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		credential := helper.ExtractToken(r.Header.Get("Authorization"))
		if credential == "" {
			credential = r.Header.Get(AdminTokenHeader)
		}
		if credential == "" {
			helper.WriteError(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		if a.adminToken != "" && subtle.ConstantTimeCompare([]byte(credential), []byte(a.adminToken)) == 1 {
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), Principal{
				Username: "static-admin",
				Role:     models.RoleAdmin,
				Static:   true,
			})))
			return
		}

		claims, err := a.tokens.ValidateToken(credential)
		if errors.Is(err, helper.ErrTokenExpired) {
			helper.WriteError(w, http.StatusUnauthorized, "Token expired")
			return
		}
		if err != nil {
			helper.WriteError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})))
	})
}

// RequireRoles lets a request through only when the caller holds one of roles.
// It must run after Authentication.
func RequireRoles(roles ...string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				helper.WriteError(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}
			for _, role := range roles {
				if principal.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			helper.WriteError(w, http.StatusForbidden, "Insufficient permissions")
		})
	}
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
