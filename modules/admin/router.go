package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leadvane/leadvane/pkg/clientip"
	"github.com/leadvane/leadvane/pkg/ratelimit"
	"github.com/leadvane/leadvane/pkg/rbac"
	"github.com/leadvane/leadvane/pkg/render"
	"github.com/leadvane/leadvane/pkg/validator"
)

// RouterDeps carries the collaborators the staff auth router mounts.
type RouterDeps struct {
	Service      *Service
	Sessions     *SessionManager
	Authorizer   rbac.Authorizer
	LoginLimiter *ratelimit.Limiter
}

// LoginRequest is the staff login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Router exposes the staff authentication endpoints.
func Router(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.With(ratelimit.Middleware(
		deps.LoginLimiter,
		ratelimit.Composite(ratelimit.Static("admin_login"), clientip.Key),
	)).Post("/login", login(deps))

	r.Post("/logout", logout(deps))

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(deps.Sessions))
		r.Get("/me", me())
		r.Get("/permissions", permissions(deps))
	})

	return r
}

func login(deps RouterDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Error(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
			return
		}

		if err := validator.Apply(
			validator.Required("email", req.Email),
			validator.Required("password", req.Password),
		); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				render.ValidationError(w, verrs.Fields())
				return
			}
			render.Error(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}

		identity, err := deps.Service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			render.Error(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
			return
		}

		if err := deps.Sessions.Issue(w, identity); err != nil {
			render.Error(w, http.StatusInternalServerError, "internal_error", "failed to establish session")
			return
		}

		render.JSON(w, http.StatusOK, identity)
	}
}

func logout(deps RouterDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		deps.Sessions.Revoke(w)
		w.WriteHeader(http.StatusNoContent)
	}
}

// permissions returns the caller's capability set so the frontend can hide
// actions the role cannot perform.
func permissions(deps RouterDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			render.Error(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"role":        identity.Role,
			"permissions": deps.Authorizer.Permissions(identity.Role),
		})
	}
}

func me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			render.Error(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
			return
		}

		render.JSON(w, http.StatusOK, identity)
	}
}
