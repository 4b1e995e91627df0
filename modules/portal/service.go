package portal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/leadvane/leadvane/pkg/email"
	"github.com/leadvane/leadvane/pkg/logger"
	"github.com/leadvane/leadvane/pkg/sanitizer"
	"github.com/leadvane/leadvane/pkg/token"
	"github.com/leadvane/leadvane/pkg/validator"
)

const subjectPasswordReset = "password_reset"

// passwordResetPayload is the claim set embedded in reset tokens. Signed with
// the portal secret but bound to a distinct subject so a reset token can
// never pass as a session.
type passwordResetPayload struct {
	CustomerID int64  `json:"id"`
	Email      string `json:"email"`
	Subject    string `json:"sub"`
	IAT        int64  `json:"iat"` // unix millis
}

func (p passwordResetPayload) IssuedAt() time.Time {
	return time.UnixMilli(p.IAT)
}

// RegisterParams is the input for creating a portal account.
type RegisterParams struct {
	Email    string
	Name     string
	Phone    string
	Password string
}

// Service implements portal account flows: login, registration, and
// password recovery.
type Service struct {
	storage          Storage
	mailer           email.EmailSender
	logger           *slog.Logger
	resetSecret      string
	resetTTL         time.Duration
	resetBaseURL     string
	bcryptCost       int
	passwordStrength validator.PasswordStrengthConfig
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = log
	}
}

// WithResetTokenTTL overrides how long password reset links stay valid.
func WithResetTokenTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		s.resetTTL = ttl
	}
}

// WithBcryptCost sets the bcrypt cost for password hashing.
func WithBcryptCost(cost int) ServiceOption {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

// WithPasswordStrength sets custom password strength requirements.
func WithPasswordStrength(config validator.PasswordStrengthConfig) ServiceOption {
	return func(s *Service) {
		s.passwordStrength = config
	}
}

// NewService creates a portal account service. resetBaseURL is the absolute
// URL of the password reset page; the token is appended as a query parameter.
func NewService(storage Storage, mailer email.EmailSender, resetSecret, resetBaseURL string, opts ...ServiceOption) (*Service, error) {
	if resetSecret == "" {
		return nil, ErrMissingSecret
	}

	s := &Service{
		storage:          storage,
		mailer:           mailer,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		resetSecret:      resetSecret,
		resetTTL:         time.Hour,
		resetBaseURL:     resetBaseURL,
		bcryptCost:       bcrypt.DefaultCost,
		passwordStrength: validator.DefaultPasswordStrength(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Login verifies email and password. Returns generic ErrInvalidCredentials
// for any failure mode to prevent account enumeration.
func (s *Service) Login(ctx context.Context, emailAddr, password string) (*Customer, error) {
	emailAddr = sanitizer.NormalizeEmail(emailAddr)

	customer, err := s.storage.GetCustomerByEmail(ctx, emailAddr)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !customer.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(customer.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.storage.UpdateLastLogin(ctx, customer.ID, time.Now()); err != nil {
		s.logger.Warn("failed to update last login",
			logger.CustomerID(customer.ID),
			logger.Error(err),
			logger.Component("portal"),
		)
	}

	return customer, nil
}

// Register creates a new portal account.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Customer, error) {
	emailAddr := sanitizer.NormalizeEmail(params.Email)
	name := sanitizer.TrimText(params.Name)

	if err := validator.Apply(
		validator.ValidEmail("email", emailAddr),
		validator.Required("name", name),
		validator.MaxLen("name", name, 100),
		validator.StrongPassword("password", params.Password, s.passwordStrength),
	); err != nil {
		return nil, err
	}

	_, err := s.storage.GetCustomerByEmail(ctx, emailAddr)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrCustomerNotFound) {
		return nil, fmt.Errorf("failed to check existing customer: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := &Customer{
		Email:        emailAddr,
		Name:         name,
		Phone:        sanitizer.TrimText(params.Phone),
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.storage.CreateCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// ForgotPassword emails a reset link to the given address. An unknown email
// is silently ignored so the caller always sees the same outcome regardless
// of whether the account exists.
func (s *Service) ForgotPassword(ctx context.Context, emailAddr string) error {
	emailAddr = sanitizer.NormalizeEmail(emailAddr)

	customer, err := s.storage.GetCustomerByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			s.logger.Debug("password reset requested for unknown email",
				logger.Component("portal"),
			)
			return nil
		}
		return fmt.Errorf("failed to get customer: %w", err)
	}

	resetToken, err := token.Generate(passwordResetPayload{
		CustomerID: customer.ID,
		Email:      customer.Email,
		Subject:    subjectPasswordReset,
		IAT:        time.Now().UnixMilli(),
	}, s.resetSecret)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	link := fmt.Sprintf("%s?token=%s", s.resetBaseURL, resetToken)
	if err := s.mailer.SendEmail(ctx, email.SendEmailParams{
		SendTo:  customer.Email,
		Subject: "Reset your password",
		BodyHTML: fmt.Sprintf(
			`<p>Hi %s,</p><p>Click the link below to reset your password. The link expires in %d minutes.</p><p><a href="%s">Reset password</a></p><p>If you did not request this, you can ignore this email.</p>`,
			customer.Name, int(s.resetTTL.Minutes()), link,
		),
		Tag: "password-reset",
	}); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

// ResetPassword sets a new password using a valid reset token. Forged,
// malformed, and expired tokens all yield ErrInvalidResetToken.
func (s *Service) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if err := validator.Apply(
		validator.StrongPassword("password", newPassword, s.passwordStrength),
	); err != nil {
		return err
	}

	payload, err := token.Parse[passwordResetPayload](resetToken, s.resetSecret, s.resetTTL)
	if err != nil {
		return ErrInvalidResetToken
	}

	if payload.Subject != subjectPasswordReset || payload.CustomerID <= 0 {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.storage.UpdatePassword(ctx, payload.CustomerID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// CurrentCustomer loads the live profile for a session-validated id. A
// deleted or deactivated account fails exactly like a missing session, so
// deactivation takes effect on the very next request.
func (s *Service) CurrentCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	customer, err := s.storage.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	if !customer.IsActive {
		return nil, ErrUnauthenticated
	}

	return customer, nil
}

// SubmitContactMessage validates and stores a public contact-form submission.
func (s *Service) SubmitContactMessage(ctx context.Context, msg *ContactMessage) error {
	msg.Name = sanitizer.TrimText(msg.Name)
	msg.Email = sanitizer.NormalizeEmail(msg.Email)
	msg.Message = sanitizer.TrimText(msg.Message)

	if err := validator.Apply(
		validator.Required("name", msg.Name),
		validator.MaxLen("name", msg.Name, 100),
		validator.ValidEmail("email", msg.Email),
		validator.Required("message", msg.Message),
		validator.MaxLen("message", msg.Message, 5000),
	); err != nil {
		return err
	}

	msg.CreatedAt = time.Now()
	if err := s.storage.CreateContactMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}

	return nil
}

// SubmitSubcontractorApplication validates and stores a public
// subcontractor application.
func (s *Service) SubmitSubcontractorApplication(ctx context.Context, app *SubcontractorApplication) error {
	app.CompanyName = sanitizer.TrimText(app.CompanyName)
	app.ContactName = sanitizer.TrimText(app.ContactName)
	app.Email = sanitizer.NormalizeEmail(app.Email)
	app.Trade = sanitizer.TrimText(app.Trade)
	app.Message = sanitizer.TrimText(app.Message)

	if err := validator.Apply(
		validator.Required("company_name", app.CompanyName),
		validator.MaxLen("company_name", app.CompanyName, 200),
		validator.Required("contact_name", app.ContactName),
		validator.ValidEmail("email", app.Email),
		validator.Required("trade", app.Trade),
		validator.MaxLen("message", app.Message, 5000),
	); err != nil {
		return err
	}

	app.CreatedAt = time.Now()
	if err := s.storage.CreateSubcontractorApplication(ctx, app); err != nil {
		return fmt.Errorf("failed to store subcontractor application: %w", err)
	}

	return nil
}
