package middleware

import (
	"context"
	"net/http"
	e "storefront/internal/core/domain/errors"
	"storefront/internal/core/domain/user"
	"storefront/internal/http/handlers/response"
	"strings"
)

const (
	AUTH_TOKEN_PREFIX  = "Bearer "
	AUTH_TOKEN_MAX_LEN = 1024
)

type contextKey string

const CONTEXT_SESSION_CLAIMS_KEY = contextKey("sessionClaims")

func ParseToken(r *http.Request) (token user.SessionToken, ok bool) {
	header := r.Header.Get("authorization")
	if header == "" {
		return token, false
	}
	parts := strings.SplitN(header, AUTH_TOKEN_PREFIX, 2)
	if len(parts) != 2 {
		return token, false
	}
	if len(parts[1]) > AUTH_TOKEN_MAX_LEN {
		return token, false
	}
	return user.SessionToken(parts[1]), true
}

// SessionClaimsFromContext yields the claims stored by Authenticate.
func SessionClaimsFromContext(ctx context.Context) (user.SessionClaims, bool) {
	claims, ok := ctx.Value(CONTEXT_SESSION_CLAIMS_KEY).(user.SessionClaims)
	return claims, ok
}

// Authenticate rejects requests without a valid session token and stores the
// parsed claims in the request context.
func Authenticate(issuer user.SessionTokenIssuer) func(http.Handler) http.Handler {
	if issuer == nil {
		panic(e.NewNilArgumentError("issuer"))
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := ParseToken(r)
			if !ok {
				response.RenderUnauthorized(w)
				return
			}
			claims, err := issuer.Parse(token)
			if err != nil {
				response.RenderUnauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), CONTEXT_SESSION_CLAIMS_KEY, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin must be nested inside Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := SessionClaimsFromContext(r.Context())
		if !ok || claims.Role != user.RoleAdmin {
			response.RenderError(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
