// Package httpjson holds the JSON response helpers shared by all handlers,
// including the single place where domain error codes become HTTP statuses.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "dotback/pkg/domain-errors"
)

// MessageResponse is the error/status envelope the dashboard expects.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// best-effort fallback; don't override status for the caller
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// WriteMessage writes a plain {message} envelope.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, MessageResponse{Message: message})
}

// WriteError centralizes domain error translation to HTTP responses.
// Non-domain errors and internal codes surface a generic message so store or
// crypto failures never leak details to the client.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Unexpected error."

	var de *dErrors.Error
	if errors.As(err, &de) {
		status = dErrors.ToHTTPStatus(de.Code)
		if de.Code != dErrors.CodeInternal || de.Message != "" {
			message = de.Error()
		}
	}

	WriteMessage(w, status, message)
}
