// File: internal/handlers/log_handler.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// FrontendLogPayload defines the structure for logs coming from the browser.
type FrontendLogPayload struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Context any    `json:"context,omitempty"`
}

// LogFrontendEvent handles incoming log requests from the frontend.
func LogFrontendEvent(w http.ResponseWriter, r *http.Request) {
	var payload FrontendLogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	slog.Info("CLIENT_LOG",
		slog.String("level", payload.Level),
		slog.String("message", payload.Message),
		slog.Any("context", payload.Context),
	)

	w.WriteHeader(http.StatusNoContent)
}
