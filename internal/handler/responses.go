package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/StudyGarden_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; nothing left to do but log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequest        = "Invalid request. Please check your inputs."
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgAuthFailedError       = "Authentication failed. Please check your API key."

	ErrMsgNotEnoughResources  = "Not enough resources"
	ErrMsgTileOccupiedError   = "That spot is already taken"
	ErrMsgOutOfBoundsError    = "That spot is outside the garden"
	ErrMsgNotEnoughSpaceError = "Not enough free space there"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgItemDeadError       = "That item has died. Remove it to free the spot."
	ErrMsgThemeOwnedError     = "You already own that theme"
	ErrMsgThemeNotOwnedError  = "Unlock that theme first"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses so callers never see internal error chains.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughResources
	case errors.Is(err, domain.ErrTileOccupied):
		return http.StatusConflict, ErrMsgTileOccupiedError
	case errors.Is(err, domain.ErrOutOfBounds):
		return http.StatusBadRequest, ErrMsgOutOfBoundsError
	case errors.Is(err, domain.ErrInsufficientSpace):
		return http.StatusConflict, ErrMsgNotEnoughSpaceError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrItemDead):
		return http.StatusBadRequest, ErrMsgItemDeadError
	case errors.Is(err, domain.ErrThemeAlreadyOwned):
		return http.StatusConflict, ErrMsgThemeOwnedError
	case errors.Is(err, domain.ErrThemeNotOwned):
		return http.StatusBadRequest, ErrMsgThemeNotOwnedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequest
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
