package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"bigbazar/internal/model"

	"github.com/rs/zerolog"
)

// response is the envelope every endpoint returns.
type response struct {
	Success bool                 `json:"success"`
	Data    interface{}          `json:"data,omitempty"`
	Error   *model.ErrorResponse `json:"error,omitempty"`
}

// writeJSON writes a success envelope with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response{Success: true, Data: data}); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes a failure envelope with the given status code.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Str("code", code).Int("status", status).Msg("handler error")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response{
		Success: false,
		Error:   &model.ErrorResponse{Error: code, Message: message},
	})
}

// writeDomainError maps an error to the appropriate status and envelope.
// Expected business outcomes carry their DomainError code through to the
// client; everything else is a generic internal failure.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	status := http.StatusBadRequest
	switch domainErr.Code {
	case model.ErrCodeOrderNotFound:
		status = http.StatusNotFound
	case model.ErrCodeInsufficientStock:
		status = http.StatusConflict
	case model.ErrCodeInvalidTransition:
		status = http.StatusConflict
	}

	writeError(w, status, domainErr.Code, domainErr.Message, logger)
}
