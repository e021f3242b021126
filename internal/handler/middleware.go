package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/msomdec/pitchside/internal/auth"
	"github.com/msomdec/pitchside/internal/domain"
)

type contextKey string

const identityContextKey contextKey = "identity"

// IdentityFromContext extracts the verified token claims from the request
// context. Returns nil if the request is unauthenticated.
func IdentityFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(identityContextKey).(*auth.Claims)
	return claims
}

// RequireAuth is the authentication gate. It reads the Authorization header,
// verifies the bearer token, and injects the claims into the request
// context. Missing, malformed, expired, or badly signed tokens are all
// rejected with 401 before the handler runs.
func RequireAuth(verifier auth.TokenVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeDomainError(w, "authenticate", domain.ErrUnauthenticated)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			writeDomainError(w, "authenticate", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err))
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin is the authorization gate. It runs after RequireAuth and
// rejects with 403 unless the authenticated identity carries the admin flag.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := IdentityFromContext(r.Context())
		if claims == nil || !claims.IsAdmin {
			writeDomainError(w, "authorize", domain.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}
