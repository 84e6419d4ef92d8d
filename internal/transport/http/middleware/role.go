package middleware

import (
	"net/http"

	"github.com/maverick1978/3dlabmod1/internal/domain"
)

// RequireRole returns middleware that allows access only to users whose JWT
// role matches one of the provided role names. Administrators always pass.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				http.Error(w, `{"error":"no autorizado"}`, http.StatusUnauthorized)
				return
			}
			if claims.Role == domain.RoleAdmin {
				next.ServeHTTP(w, r)
				return
			}
			for _, role := range allowedRoles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, `{"error":"acceso denegado"}`, http.StatusForbidden)
		})
	}
}
