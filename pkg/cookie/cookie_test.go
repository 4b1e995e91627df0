package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadvane/leadvane/pkg/cookie"
)

func TestManager_SetDefaults(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecure(true))

	rec := httptest.NewRecorder()
	m.Set(rec, "admin_session", "tok", cookie.WithMaxAge(43200))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, "admin_session", c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 43200, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestManager_Get(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "customer_session", Value: "abc"})

	value, err := m.Get(r, "customer_session")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	_, err = m.Get(r, "missing")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecure(true))

	rec := httptest.NewRecorder()
	m.Delete(rec, "admin_session")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, "admin_session", c.Name)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
	assert.True(t, c.Secure)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	m := cookie.NewFromConfig(cookie.Config{
		Path:     "/app",
		Secure:   false,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	rec := httptest.NewRecorder()
	m.Set(rec, "name", "value")

	c := rec.Result().Cookies()[0]
	assert.Equal(t, "/app", c.Path)
	assert.False(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}
