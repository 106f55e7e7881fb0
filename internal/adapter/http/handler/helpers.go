package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/iho/walletledger/internal/adapter/http/dto"
	"github.com/iho/walletledger/internal/domain"
)

// genericErrorMessage is the only detail exposed on unexpected failures.
const genericErrorMessage = "The server has encountered an error."

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeServiceError maps a use case error to a status code. Business
// outcomes keep their explanatory message; anything unrecognized is
// logged and reported as a generic 500 without internal detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapDomainError(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")

		writeError(w, status, "internal server error", genericErrorMessage)

		return
	}

	writeError(w, status, err.Error(), "")
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrWalletNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusNotAcceptable
	case errors.Is(err, domain.ErrDuplicateUserID),
		errors.Is(err, domain.ErrDuplicatePhone),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidUserName),
		errors.Is(err, domain.ErrInvalidPhone):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
