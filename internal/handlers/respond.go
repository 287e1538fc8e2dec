package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/medassist/medassist/internal/chat"
	"github.com/medassist/medassist/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.L.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, chat.ErrorResponse{Error: message})
}
