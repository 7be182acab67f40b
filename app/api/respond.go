// Package api carries the pieces shared by every HTTP handler: JSON
// response shaping, the error-to-status mapping, and middleware.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/leefeettrends/admin-api/models"
)

type jsonError struct {
	Error string `json:"error"`
}

// RespondJSON writes v as a JSON body with the given status code.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error maps an error to its HTTP status and writes a JSON error body.
// The same table applies to every handler: not-found 404, conflicts and
// stock guards 409, anything unrecognized a generic 500.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		RespondJSON(w, http.StatusNotFound, jsonError{Error: err.Error()})
	case errors.Is(err, models.ErrInsufficientStock):
		RespondJSON(w, http.StatusConflict, jsonError{Error: err.Error()})
	case errors.Is(err, models.ErrConflict):
		RespondJSON(w, http.StatusConflict, jsonError{Error: err.Error()})
	default:
		RespondJSON(w, http.StatusInternalServerError, jsonError{Error: "internal server error"})
	}
}

// BadRequest rejects malformed or invalid input before it reaches a
// repository.
func BadRequest(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusBadRequest, jsonError{Error: msg})
}

// Unauthorized writes a 401 with the given message.
func Unauthorized(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusUnauthorized, jsonError{Error: msg})
}
