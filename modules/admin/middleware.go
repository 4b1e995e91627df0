package admin

import (
	"net/http"

	"github.com/leadvane/leadvane/pkg/rbac"
	"github.com/leadvane/leadvane/pkg/render"
)

// RequireAuth rejects requests without a valid staff session and places the
// identity and role into the request context for downstream handlers.
func RequireAuth(sessions *SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := sessions.Validate(r)
			if err != nil {
				render.Error(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
				return
			}

			ctx := ContextWithIdentity(r.Context(), identity)
			ctx = rbac.ContextWithRole(ctx, identity.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission rejects authenticated callers whose role lacks the given
// capability. Must be mounted after RequireAuth.
func RequirePermission(authz rbac.Authorizer, permission rbac.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authz.CanFromContext(r.Context(), permission); err != nil {
				render.Error(w, http.StatusForbidden, "insufficient_permissions", "you do not have access to this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
