package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/medassist/medassist/internal/bot"
	"github.com/medassist/medassist/internal/chat"
	"github.com/medassist/medassist/internal/logger"
	"github.com/medassist/medassist/internal/middleware"
)

// ChatHandler serves POST /api/chat. It is the error-isolation boundary:
// strategy failures become JSON error responses, never propagated faults.
type ChatHandler struct {
	strategy bot.Strategy
}

func NewChatHandler(strategy bot.Strategy) *ChatHandler {
	return &ChatHandler{strategy: strategy}
}

// Chat decodes {"messages": [...]}, invokes the active strategy and answers
// with {"reply": ...} or {"error": ...}.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chat.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON object with a messages array")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "messages is required and must be a non-empty array")
		return
	}

	reply, err := h.strategy.Reply(r.Context(), req.Messages)
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		if errors.Is(err, chat.ErrEmptyHistory) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.L.Error("reply generation failed", "error", err, "request_id", requestID)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, chat.Response{Reply: reply})
}
