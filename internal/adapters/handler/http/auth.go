package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/validately/api/internal/core/ports"
)

type contextKey string

const (
	// IdentityKey holds the actor's identity (an opaque email string).
	IdentityKey contextKey = "identity"
	// RoleKey holds the actor's role, pm or stakeholder.
	RoleKey contextKey = "role"
)

// AuthMiddleware reads the access token cookie and places (role, identity)
// in the request context. The engine treats both as opaque; beyond the
// signature check there is no authorization enforcement here.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("access_token")
			if err != nil {
				http.Error(w, "missing access token", http.StatusUnauthorized)
				return
			}

			claims := jwt.MapClaims{}
			_, err = jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			identity, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)
			if identity == "" {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			ctx = context.WithValue(ctx, RoleKey, ports.Role(role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func identityFrom(r *http.Request) (string, bool) {
	identity, ok := r.Context().Value(IdentityKey).(string)
	return identity, ok && identity != ""
}

func roleFrom(r *http.Request) ports.Role {
	role, _ := r.Context().Value(RoleKey).(ports.Role)
	return role
}
