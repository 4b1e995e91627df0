package portal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leadvane/leadvane/pkg/clientip"
	"github.com/leadvane/leadvane/pkg/ratelimit"
	"github.com/leadvane/leadvane/pkg/render"
	"github.com/leadvane/leadvane/pkg/validator"
)

// Limiters groups the rate limiters for the portal's sensitive endpoints,
// one per policy table entry.
type Limiters struct {
	Registration   *ratelimit.Limiter
	ForgotPassword *ratelimit.Limiter
	ContactForm    *ratelimit.Limiter
	Application    *ratelimit.Limiter
}

// RouterDeps carries the collaborators the portal router mounts.
type RouterDeps struct {
	Service  *Service
	Sessions *SessionManager
	Limiters Limiters
}

// LoginRequest is the portal login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the portal registration payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the reset-link request payload.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the password reset payload.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ApplicationRequest is the public subcontractor application payload.
type ApplicationRequest struct {
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Trade       string `json:"trade"`
	Message     string `json:"message"`
}

// CustomerResponse is the customer profile shape returned to the client.
// Password hash and internal flags never leave the server.
type CustomerResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

func toCustomerResponse(c *Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Email: c.Email, Name: c.Name, Phone: c.Phone}
}

// Router exposes the portal authentication and public-form endpoints.
func Router(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	limited := func(l *ratelimit.Limiter, endpoint string) func(http.Handler) http.Handler {
		return ratelimit.Middleware(l, ratelimit.Composite(ratelimit.Static(endpoint), clientip.Key))
	}

	r.Post("/login", login(deps))
	r.Post("/logout", logout(deps))

	r.With(limited(deps.Limiters.Registration, "portal_registration")).
		Post("/register", register(deps))
	r.With(limited(deps.Limiters.ForgotPassword, "forgot_password")).
		Post("/forgot-password", forgotPassword(deps))
	r.Post("/reset-password", resetPassword(deps))

	r.With(limited(deps.Limiters.ContactForm, "contact_form")).
		Post("/contact", contact(deps))
	r.With(limited(deps.Limiters.Application, "subcontractor_application")).
		Post("/apply", apply(deps))

	r.Group(func(r chi.Router) {
		r.Use(RequireSession(deps.Sessions, deps.Service))
		r.Get("/me", me())
	})

	return r
}

// decodeJSON reads the request body into dst, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return false
	}
	return true
}

// renderServiceError maps validation errors to 422 and everything else to
// the given fallback code and status.
func renderServiceError(w http.ResponseWriter, err error, status int, code, message string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		render.ValidationError(w, verrs.Fields())
		return
	}
	render.Error(w, status, code, message)
}

func login(deps RouterDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		customer, err := deps.Service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			render.Error(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
			return
		}

		if err := deps.Sessions.Issue(w, customer.ID); err != nil {
			render.Error(w, http.StatusInternalServerError, "internal_error", "failed to establish session")
			return
		}

		render.JSON(w, http.StatusOK, toCustomerResponse(customer))
	}
}

func logout(deps RouterDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		deps.Sessions.Revoke(w)
		w.WriteHeader(http.StatusNoContent)
	}
}

func register(deps RouterDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		customer, err := deps.Service.Register(r.Context(), RegisterParams{
			Email:    req.Email,
			Name:     req.Name,
			Phone:    req.Phone,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, ErrEmailAlreadyExists) {
				render.Error(w, http.StatusConflict, "email_taken", "email already registered")
				return
			}
			renderServiceError(w, err, http.StatusInternalServerError, "internal_error", "failed to register")
			return
		}

		if err := deps.Sessions.Issue(w, customer.ID); err != nil {
			render.Error(w, http.StatusInternalServerError, "internal_error", "failed to establish session")
			return
		}

		render.JSON(w, http.StatusCreated, toCustomerResponse(customer))
	}
}

func forgotPassword(deps RouterDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := deps.Service.ForgotPassword(r.Context(), req.Email); err != nil {
			render.Error(w, http.StatusInternalServerError, "internal_error", "failed to process request")
			return
		}

		// Same response whether or not the account exists.
		render.JSON(w, http.StatusOK, map[string]string{
			"message": "if the email is registered, a reset link has been sent",
		})
	}
}

func resetPassword(deps RouterDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := deps.Service.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
			if errors.Is(err, ErrInvalidResetToken) {
				render.Error(w, http.StatusUnauthorized, "invalid_token", "invalid or expired reset token")
				return
			}
			renderServiceError(w, err, http.StatusInternalServerError, "internal_error", "failed to reset password")
			return
		}

		render.JSON(w, http.StatusOK, map[string]string{"message": "password updated"})
	}
}

func contact(deps RouterDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		msg := &ContactMessage{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Message:  req.Message,
			ClientIP: clientip.GetIP(r),
		}
		if err := deps.Service.SubmitContactMessage(r.Context(), msg); err != nil {
			renderServiceError(w, err, http.StatusInternalServerError, "internal_error", "failed to submit message")
			return
		}

		render.JSON(w, http.StatusCreated, map[string]string{"message": "thanks, we will be in touch"})
	}
}

func apply(deps RouterDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ApplicationRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		app := &SubcontractorApplication{
			CompanyName: req.CompanyName,
			ContactName: req.ContactName,
			Email:       req.Email,
			Phone:       req.Phone,
			Trade:       req.Trade,
			Message:     req.Message,
			ClientIP:    clientip.GetIP(r),
		}
		if err := deps.Service.SubmitSubcontractorApplication(r.Context(), app); err != nil {
			renderServiceError(w, err, http.StatusInternalServerError, "internal_error", "failed to submit application")
			return
		}

		render.JSON(w, http.StatusCreated, map[string]string{"message": "application received"})
	}
}

func me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, ok := CustomerFromContext(r.Context())
		if !ok {
			render.Error(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
			return
		}

		render.JSON(w, http.StatusOK, toCustomerResponse(customer))
	}
}
