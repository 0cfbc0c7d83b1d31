package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-points-gateway/internal/logger"
	"github.com/sbilibin2017/gw-points-gateway/internal/services"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// statusForError maps coordinator errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrTransferInProgress):
		return http.StatusConflict
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrTransfer), errors.Is(err, services.ErrFetch):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrConfig):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// messageForStatus keeps internal error text out of 5xx bodies we do not own.
func messageForStatus(status int, err error) string {
	switch status {
	case http.StatusInternalServerError:
		return "Internal server error"
	case http.StatusServiceUnavailable:
		return "Backend unavailable"
	case http.StatusUnauthorized:
		return "Unauthorized"
	default:
		return err.Error()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error", "err", err)
	}
	writeJSON(w, status, ErrorResponse{Error: messageForStatus(status, err)})
}
