package schemacheck

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(checker Checker) *chi.Mux {
	r := chi.NewRouter()
	NewHandler(NewValidator(checker)).RegisterRoutes(r)
	return r
}

func postValidate(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/schema/validate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type validateEnvelope struct {
	Data ValidateSchemaResponse `json:"data"`
}

func TestValidateSchema_Valid(t *testing.T) {
	router := newTestRouter(&mockChecker{})

	rec := postValidate(t, router, `{"schema":"{\"type\":\"object\"}"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope validateEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Valid)
	assert.Empty(t, envelope.Data.Message)
}

func TestValidateSchema_EmptySchema(t *testing.T) {
	router := newTestRouter(&mockChecker{})

	rec := postValidate(t, router, `{"schema":""}`)

	require.Equal(t, http.StatusOK, rec.Code, "a failed validation is still a 200")
	var envelope validateEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Data.Valid)
	assert.Equal(t, "Schema is required", envelope.Data.Message)
}

func TestValidateSchema_RemoteErrorCollapses(t *testing.T) {
	router := newTestRouter(&mockChecker{err: errors.New("timeout")})

	rec := postValidate(t, router, `{"schema":"something"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope validateEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Data.Valid)
	assert.Equal(t, "Invalid schema", envelope.Data.Message)
}

func TestValidateSchema_SemanticMessageSurfaces(t *testing.T) {
	router := newTestRouter(&mockChecker{err: &SemanticError{Message: "unknown directive"}})

	rec := postValidate(t, router, `{"schema":"something"}`)

	var envelope validateEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Data.Valid)
	assert.Equal(t, "unknown directive", envelope.Data.Message)
}

func TestValidateSchema_MalformedBody(t *testing.T) {
	router := newTestRouter(&mockChecker{})

	rec := postValidate(t, router, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
