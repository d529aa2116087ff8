package http

import (
	"net/http"
	"strings"

	"orgadmin/internal/routes"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// BearerAuth verifies the token minted by the external auth service for
// every route the table does not declare public. An empty signing key
// disables verification entirely.
func BearerAuth(signingKey []byte, table *routes.Table) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(signingKey) == 0 ||
				table.IsPublic(r.URL.Path) ||
				table.IsAuthRoute(r.URL.Path) ||
				strings.HasPrefix(r.URL.Path, table.APIAuthPrefix()) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(header[len(bearerPrefix):], func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return signingKey, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
