package portal

import (
	"net/http"

	"github.com/leadvane/leadvane/pkg/render"
)

// RequireSession validates the session cookie and refetches the customer's
// profile from storage on every request. The token is only an id reference:
// a deactivated account or edited profile is reflected immediately, not at
// token expiry.
func RequireSession(sessions *SessionManager, svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			customerID, err := sessions.Validate(r)
			if err != nil {
				render.Error(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
				return
			}

			customer, err := svc.CurrentCustomer(r.Context(), customerID)
			if err != nil {
				render.Error(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithCustomer(r.Context(), customer)))
		})
	}
}
