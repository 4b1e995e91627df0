package render_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadvane/leadvane/pkg/render"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	render.JSON(rec, http.StatusCreated, map[string]string{"name": "Acme Roofing"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Acme Roofing", body.Data["name"])
}

func TestError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	render.Error(rec, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body render.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "invalid_credentials", body.Error.Code)
	assert.Equal(t, "invalid email or password", body.Error.Message)
	assert.Nil(t, body.Data)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	render.ValidationError(rec, map[string][]string{
		"email": {"invalid email address"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body render.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "validation_error", body.Error.Code)
	assert.Equal(t, []string{"invalid email address"}, body.Error.Details["email"])
}
