package admin

import (
	"net/http"
	"time"

	"github.com/leadvane/leadvane/pkg/cookie"
	"github.com/leadvane/leadvane/pkg/rbac"
	"github.com/leadvane/leadvane/pkg/token"
)

// SessionCookieName is the cookie carrying the staff session token.
const SessionCookieName = "admin_session"

// DefaultSessionTTL bounds staff sessions. The cookie MaxAge mirrors the
// token's own max-age check so an expired cookie and an expired signature
// fail at the same boundary.
const DefaultSessionTTL = 12 * time.Hour

// SessionPayload is the claim set embedded in a staff session token. Role and
// display name travel in the token so authorization needs no storage round
// trip on every request.
type SessionPayload struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	IAT    int64  `json:"iat"` // unix millis
}

// IssuedAt implements token.Claims.
func (p SessionPayload) IssuedAt() time.Time {
	return time.UnixMilli(p.IAT)
}

// Identity is a validated staff caller.
type Identity struct {
	ID    int64     `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  rbac.Role `json:"role"`
}

// SessionManager issues and validates staff session cookies. Tokens are
// self-contained: validation is pure computation plus a cookie read, no
// server-side session store exists.
type SessionManager struct {
	secret  string
	cookies *cookie.Manager
	ttl     time.Duration
	secure  bool
}

// SessionOption configures a SessionManager.
type SessionOption func(*SessionManager)

// WithSessionTTL overrides the default session lifetime.
func WithSessionTTL(ttl time.Duration) SessionOption {
	return func(m *SessionManager) {
		m.ttl = ttl
	}
}

// WithInsecureCookies disables the Secure cookie attribute for local
// development over plain HTTP.
func WithInsecureCookies() SessionOption {
	return func(m *SessionManager) {
		m.secure = false
	}
}

// NewSessionManager creates a staff session manager. A missing secret is a
// configuration error: the caller must treat it as fatal at startup rather
// than serve auth-dependent routes with unsigned sessions.
func NewSessionManager(secret string, cookies *cookie.Manager, opts ...SessionOption) (*SessionManager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	m := &SessionManager{
		secret:  secret,
		cookies: cookies,
		ttl:     DefaultSessionTTL,
		secure:  true,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// TTL returns the configured session lifetime.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue writes a fresh session cookie for the given identity.
func (m *SessionManager) Issue(w http.ResponseWriter, identity Identity) error {
	payload := SessionPayload{
		UserID: identity.ID,
		Email:  identity.Email,
		Name:   identity.Name,
		Role:   identity.Role.String(),
		IAT:    time.Now().UnixMilli(),
	}

	value, err := token.Generate(payload, m.secret)
	if err != nil {
		return err
	}

	m.cookies.Set(w, SessionCookieName, value,
		cookie.WithMaxAge(int(m.ttl.Seconds())),
		cookie.WithSecure(m.secure),
	)

	return nil
}

// Validate extracts and verifies the session cookie. Every failure mode -
// missing cookie, forged signature, malformed payload, unknown role, expired
// token - collapses to ErrUnauthenticated so callers cannot distinguish a
// stale session from a forged one.
func (m *SessionManager) Validate(r *http.Request) (Identity, error) {
	value, err := m.cookies.Get(r, SessionCookieName)
	if err != nil {
		return Identity{}, ErrUnauthenticated
	}

	payload, err := token.Parse[SessionPayload](value, m.secret, m.ttl)
	if err != nil {
		return Identity{}, ErrUnauthenticated
	}

	role, err := rbac.ParseRole(payload.Role)
	if err != nil {
		return Identity{}, ErrUnauthenticated
	}

	return Identity{
		ID:    payload.UserID,
		Email: payload.Email,
		Name:  payload.Name,
		Role:  role,
	}, nil
}

// Revoke expires the session cookie on the client. Client-side invalidation
// only: a captured, unexpired token stays valid until its own expiry.
func (m *SessionManager) Revoke(w http.ResponseWriter) {
	m.cookies.Delete(w, SessionCookieName)
}
