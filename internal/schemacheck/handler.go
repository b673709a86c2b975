package schemacheck

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pmorken/settings-hub/internal/pkg/ctxlog"
	"github.com/pmorken/settings-hub/internal/pkg/httputil"
)

// Handler exposes the validator to the form layer over HTTP.
type Handler struct {
	validator *Validator
}

// NewHandler creates a new schemacheck handler.
func NewHandler(validator *Validator) *Handler {
	return &Handler{validator: validator}
}

// RegisterRoutes registers the schema validation route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/schema/validate", h.ValidateSchema)
}

// ValidateSchemaRequest is the request body for schema validation.
type ValidateSchemaRequest struct {
	Schema string `json:"schema"`
}

// ValidateSchemaResponse reports the validation outcome. Message is set only
// when the schema is invalid.
type ValidateSchemaResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidateSchema handles POST /schema/validate. A failed validation is not
// an HTTP error: the form layer reads the outcome from the body.
func (h *Handler) ValidateSchema(w http.ResponseWriter, r *http.Request) {
	var req ValidateSchemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.validator.Validate(r.Context(), req.Schema)
	if err == nil {
		httputil.Success(w, http.StatusOK, ValidateSchemaResponse{Valid: true})
		return
	}

	var failure *Failure
	if errors.As(err, &failure) {
		if cause := failure.Unwrap(); cause != nil {
			ctxlog.FromContext(r.Context()).Debug("schema validation failed", "cause", cause)
		}
		httputil.Success(w, http.StatusOK, ValidateSchemaResponse{Valid: false, Message: failure.Message})
		return
	}

	ctxlog.FromContext(r.Context()).Error("schema validation error", "error", err)
	httputil.Error(w, http.StatusInternalServerError, "internal error")
}
