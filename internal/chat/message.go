package chat

import "errors"

// Message roles. An empty role is treated as RoleUser.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrEmptyHistory is returned when an operation needs at least one message.
var ErrEmptyHistory = errors.New("conversation history is empty")

// Message is a single conversational message. Ordering within a history is
// chronological and meaningful.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the body of POST /api/chat. The client resends the full history
// each turn; the server keeps no session state.
type Request struct {
	Messages []Message `json:"messages"`
}

// Response carries the assistant reply.
type Response struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the JSON shape of every non-200 answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LastUserContent returns the content of the final message in history.
func LastUserContent(history []Message) (string, error) {
	if len(history) == 0 {
		return "", ErrEmptyHistory
	}
	return history[len(history)-1].Content, nil
}
