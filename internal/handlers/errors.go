package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/okulab/microscope-backend/internal/services"
)

// ErrorResponse is the error body shared by all handlers
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Per-field validation messages, present for 400 responses only
	Fields map[string]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func writeUnauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "unauthorized")
}

// writeValidationError writes a 400 with the per-field messages of a
// ValidationError.
func writeValidationError(w http.ResponseWriter, err *services.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:  "Validation failed",
		Fields: err.Fields,
	})
}
