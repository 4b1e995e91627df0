package admin

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/leadvane/leadvane/pkg/logger"
	"github.com/leadvane/leadvane/pkg/rbac"
	"github.com/leadvane/leadvane/pkg/sanitizer"
)

// Service verifies staff credentials.
type Service struct {
	storage Storage
	logger  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = log
	}
}

// NewService creates a staff authentication service.
func NewService(storage Storage, opts ...ServiceOption) *Service {
	s := &Service{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Login verifies email and password and returns the staff identity.
// Returns generic ErrInvalidCredentials for any failure - unknown email,
// deactivated account, bad password, corrupt role - to prevent account
// enumeration. bcrypt's comparison is constant-time internally.
func (s *Service) Login(ctx context.Context, email, password string) (Identity, error) {
	email = sanitizer.NormalizeEmail(email)

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		return Identity{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	role, err := rbac.ParseRole(user.Role)
	if err != nil {
		// Stored role is outside the known set. Treated as a login failure
		// for the caller, but logged loudly since it means bad data.
		s.logger.Error("staff account has unknown role",
			logger.UserID(user.ID),
			slog.String("role", user.Role),
			logger.Component("admin"),
		)
		return Identity{}, ErrInvalidCredentials
	}

	if err := s.storage.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		// Last-login is bookkeeping; a failed update must not block login.
		s.logger.Warn("failed to update last login",
			logger.UserID(user.ID),
			logger.Error(err),
			logger.Component("admin"),
		)
	}

	return Identity{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  role,
	}, nil
}
