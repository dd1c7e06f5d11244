package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the standard response shape for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithData sends a success envelope.
func RespondWithData(w http.ResponseWriter, statusCode int, data any, message string) {
	RespondWithJSON(w, statusCode, Envelope{Success: true, Message: message, Data: data})
}

// RespondWithError sends a failure envelope with a human-readable message.
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, Envelope{Success: false, Message: message})
}

// RespondWithValidation sends a 400 with per-field details.
func RespondWithValidation(w http.ResponseWriter, message string, errs any) {
	RespondWithJSON(w, http.StatusBadRequest, Envelope{Success: false, Message: message, Errors: errs})
}

type M map[string]any
