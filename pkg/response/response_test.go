package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "c1"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "ok")
	assert.Equal(t, 201, rec.Code)
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, 500, "Internal server error")

	assert.Equal(t, 500, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Internal server error", env.Error)
}

func TestValidationErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"email": "The email must be a valid email address."})

	assert.Equal(t, 422, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Error)
	assert.Contains(t, env.Errors, "email")
}

func TestOmitEmptyFields(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, "Crop deleted successfully")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "data")
	assert.NotContains(t, raw, "error")
	assert.NotContains(t, raw, "errors")
}
