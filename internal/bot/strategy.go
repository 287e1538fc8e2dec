// Package bot holds the two interchangeable response strategies: a pure
// rule-based responder and one that delegates to an external completion
// service. Both work on the full, caller-supplied history; the server keeps
// no conversation state between requests.
package bot

import (
	"context"

	"github.com/medassist/medassist/internal/chat"
)

// Strategy turns a conversation history into a reply string.
type Strategy interface {
	Reply(ctx context.Context, history []chat.Message) (string, error)
}
