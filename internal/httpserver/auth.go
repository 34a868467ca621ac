// apps/advisor/internal/httpserver/auth.go
//
// Bearer-token auth for operator endpoints. Tokens are HS256 JWTs with a
// "sub" claim; there are no user accounts, an operator mints a token with
// IssueToken (cmd/simulate -token) from the shared JWT_SECRET.

package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ctxSubjectKey is the context key type for the token subject.
type ctxSubjectKey struct{}

// IssueToken signs a token for subject valid for ttl.
func IssueToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	return t.SignedString([]byte(secret))
}

// Subject returns the authenticated subject, if any.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(ctxSubjectKey{}).(string)
	return s
}

// requireAuth enforces a valid JWT and injects its subject into the request context.
func requireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			sub, _ := claims["sub"].(string)
			if sub == "" {
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxSubjectKey{}, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
