package portal

import (
	"net/http"
	"time"

	"github.com/leadvane/leadvane/pkg/cookie"
	"github.com/leadvane/leadvane/pkg/token"
)

// SessionCookieName is the cookie carrying the customer session token.
const SessionCookieName = "customer_session"

// DefaultSessionTTL bounds portal sessions. Long-lived on purpose: the token
// carries only the customer id, and the profile is refetched on every
// request, so a stale token cannot serve stale claims.
const DefaultSessionTTL = 30 * 24 * time.Hour

// SessionPayload is the claim set embedded in a customer session token.
// Deliberately minimal: email and name are looked up fresh by id on each
// request so profile edits and deactivation take effect immediately.
type SessionPayload struct {
	CustomerID int64 `json:"id"`
	IAT        int64 `json:"iat"` // unix millis
}

// IssuedAt implements token.Claims.
func (p SessionPayload) IssuedAt() time.Time {
	return time.UnixMilli(p.IAT)
}

// SessionManager issues and validates customer session cookies.
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

// NewSessionManager creates a customer session manager. A missing secret is
// a fatal configuration error, surfaced here so startup wiring fails fast.
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

// Issue writes a fresh session cookie for the given customer.
func (m *SessionManager) Issue(w http.ResponseWriter, customerID int64) error {
	payload := SessionPayload{
		CustomerID: customerID,
		IAT:        time.Now().UnixMilli(),
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

// Validate extracts and verifies the session cookie, returning only the
// customer id. Profile fields are never trusted from the token; callers
// refetch them from storage. Every failure collapses to ErrUnauthenticated.
func (m *SessionManager) Validate(r *http.Request) (int64, error) {
	value, err := m.cookies.Get(r, SessionCookieName)
	if err != nil {
		return 0, ErrUnauthenticated
	}

	payload, err := token.Parse[SessionPayload](value, m.secret, m.ttl)
	if err != nil {
		return 0, ErrUnauthenticated
	}

	if payload.CustomerID <= 0 {
		return 0, ErrUnauthenticated
	}

	return payload.CustomerID, nil
}

// Revoke expires the session cookie on the client.
func (m *SessionManager) Revoke(w http.ResponseWriter) {
	m.cookies.Delete(w, SessionCookieName)
}
