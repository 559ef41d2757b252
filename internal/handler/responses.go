package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
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
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgRaidNotFoundError   = "Raid not found"
	ErrMsgRaidNotActiveError  = "Raid is not active"
	ErrMsgAlreadyJoinedError  = "You have already joined this raid"
	ErrMsgInvalidRiderIDError = "Invalid rider id"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages safe to show outside.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrRaidNotFound):
		return http.StatusNotFound, ErrMsgRaidNotFoundError
	case errors.Is(err, domain.ErrRaidNotActive):
		return http.StatusConflict, ErrMsgRaidNotActiveError
	case errors.Is(err, domain.ErrAlreadyJoined):
		return http.StatusConflict, ErrMsgAlreadyJoinedError
	case errors.Is(err, domain.ErrInvalidRiderID):
		return http.StatusBadRequest, ErrMsgInvalidRiderIDError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError logs the real error and sends the mapped public one.
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "error", err)
	}
	respondError(w, status, message)
}
