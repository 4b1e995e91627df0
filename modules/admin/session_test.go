package admin_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadvane/leadvane/modules/admin"
	"github.com/leadvane/leadvane/pkg/cookie"
	"github.com/leadvane/leadvane/pkg/rbac"
	"github.com/leadvane/leadvane/pkg/token"
)

const testSecret = "test-admin-secret"

func testIdentity() admin.Identity {
	return admin.Identity{
		ID:    42,
		Email: "owner@example.com",
		Name:  "Pat Owner",
		Role:  rbac.RoleOwner,
	}
}

// issueAndCarry issues a session and returns a request carrying the
// resulting cookie, mimicking a browser round trip.
func issueAndCarry(t *testing.T, m *admin.SessionManager, identity admin.Identity) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, identity))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	return req
}

func TestNewSessionManager_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := admin.NewSessionManager("", cookie.New())
	require.ErrorIs(t, err, admin.ErrMissingSecret)
}

func TestSessionManager_IssueSetsCookieAttributes(t *testing.T) {
	t.Parallel()

	m, err := admin.NewSessionManager(testSecret, cookie.New())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, testIdentity()))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, admin.SessionCookieName, c.Name)
	assert.NotEmpty(t, c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, int((12 * time.Hour).Seconds()), c.MaxAge)
}

func TestSessionManager_InsecureCookiesForDev(t *testing.T) {
	t.Parallel()

	m, err := admin.NewSessionManager(testSecret, cookie.New(), admin.WithInsecureCookies())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, testIdentity()))

	require.Len(t, rec.Result().Cookies(), 1)
	assert.False(t, rec.Result().Cookies()[0].Secure)
}

func TestSessionManager_ValidateRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := admin.NewSessionManager(testSecret, cookie.New())
	require.NoError(t, err)

	req := issueAndCarry(t, m, testIdentity())

	got, err := m.Validate(req)
	require.NoError(t, err)
	assert.Equal(t, testIdentity(), got)
}

func TestSessionManager_ValidateFailures(t *testing.T) {
	t.Parallel()

	m, err := admin.NewSessionManager(testSecret, cookie.New())
	require.NoError(t, err)

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := m.Validate(req)
		assert.ErrorIs(t, err, admin.ErrUnauthenticated)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		other, err := admin.NewSessionManager("another-secret", cookie.New())
		require.NoError(t, err)

		req := issueAndCarry(t, other, testIdentity())
		_, err = m.Validate(req)
		assert.ErrorIs(t, err, admin.ErrUnauthenticated)
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()

		req := issueAndCarry(t, m, testIdentity())
		c, err := req.Cookie(admin.SessionCookieName)
		require.NoError(t, err)

		tampered := httptest.NewRequest(http.MethodGet, "/", nil)
		tampered.AddCookie(&http.Cookie{
			Name:  admin.SessionCookieName,
			Value: c.Value[:len(c.Value)-2],
		})

		_, err = m.Validate(tampered)
		assert.ErrorIs(t, err, admin.ErrUnauthenticated)
	})

	t.Run("unknown role in token", func(t *testing.T) {
		t.Parallel()

		value, err := token.Generate(admin.SessionPayload{
			UserID: 7,
			Email:  "x@example.com",
			Name:   "X",
			Role:   "superadmin",
			IAT:    time.Now().UnixMilli(),
		}, testSecret)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: admin.SessionCookieName, Value: value})

		_, err = m.Validate(req)
		assert.ErrorIs(t, err, admin.ErrUnauthenticated)
	})

	t.Run("expired session", func(t *testing.T) {
		t.Parallel()

		short, err := admin.NewSessionManager(testSecret, cookie.New(),
			admin.WithSessionTTL(time.Millisecond))
		require.NoError(t, err)

		req := issueAndCarry(t, short, testIdentity())
		time.Sleep(10 * time.Millisecond)

		_, err = short.Validate(req)
		assert.ErrorIs(t, err, admin.ErrUnauthenticated)
	})
}

func TestSessionManager_RevokeExpiresCookie(t *testing.T) {
	t.Parallel()

	m, err := admin.NewSessionManager(testSecret, cookie.New())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	m.Revoke(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, admin.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
