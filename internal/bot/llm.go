package bot

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/medassist/medassist/internal/chat"
	"github.com/medassist/medassist/internal/config"
)

// PlaceholderReply is returned when the completion call succeeds but yields
// no extractable text. Reachable-but-empty is deliberately not an error.
const PlaceholderReply = "(No response text received.)"

// Client is the minimal subset of the openai client used by the strategy;
// it is easy to mock in tests.
type Client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewClient creates a new OpenAI client
func NewClient(cfg config.LLMConfig) *openai.Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientCfg)
}

// LLM delegates reply generation to an external completion service. Each
// call is independent: the full history goes out with a fixed system
// instruction prepended, and nothing is cached or retried.
type LLM struct {
	client       Client
	model        string
	systemPrompt string
}

// NewLLM returns a delegated strategy over the given client.
func NewLLM(client Client, cfg config.LLMConfig) *LLM {
	return &LLM{
		client:       client,
		model:        cfg.Model,
		systemPrompt: cfg.SystemPrompt,
	}
}

// Reply sends the system instruction plus the caller's history to the
// completion service and extracts the reply text. Transport or API failures
// come back as *UpstreamError; an empty history is reported as
// chat.ErrEmptyHistory before any network call happens.
func (s *LLM) Reply(ctx context.Context, history []chat.Message) (string, error) {
	if len(history) == 0 {
		return "", chat.ErrEmptyHistory
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: s.systemPrompt,
	})
	for _, m := range history {
		role := m.Role
		if role == "" {
			role = chat.RoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	return extractText(resp), nil
}

// extractText applies the three-tier extraction policy: the first choice's
// content, else the text of its first multi-content part, else the fixed
// placeholder.
func extractText(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return PlaceholderReply
	}
	message := resp.Choices[0].Message
	if text := strings.TrimSpace(message.Content); text != "" {
		return text
	}
	if len(message.MultiContent) > 0 {
		part := message.MultiContent[0]
		if part.Type == openai.ChatMessagePartTypeText {
			if text := strings.TrimSpace(part.Text); text != "" {
				return text
			}
		}
	}
	return PlaceholderReply
}
