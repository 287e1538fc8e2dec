package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"github.com/medassist/medassist/internal/chat"
	"github.com/medassist/medassist/internal/config"
)

type mockClient struct {
	resp    openai.ChatCompletionResponse
	err     error
	lastReq openai.ChatCompletionRequest
}

func (m *mockClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return openai.ChatCompletionResponse{}, m.err
	}
	return m.resp, nil
}

func testLLMConfig() config.LLMConfig {
	return config.LLMConfig{
		Model:        "gpt-4o-mini",
		SystemPrompt: "You are a helpline assistant.",
	}
}

func textResponse(text string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: chat.RoleAssistant, Content: text}},
		},
	}
}

func TestLLM_PrependsSystemPrompt(t *testing.T) {
	client := &mockClient{resp: textResponse("hello")}
	strategy := NewLLM(client, testLLMConfig())

	history := []chat.Message{
		{Role: chat.RoleUser, Content: "hi"},
		{Role: chat.RoleAssistant, Content: "hello"},
		{Role: chat.RoleUser, Content: "visiting hours?"},
	}
	out, err := strategy.Reply(context.Background(), history)
	require.NoError(t, err)
	require.Equal(t, "hello", out)

	require.Equal(t, "gpt-4o-mini", client.lastReq.Model)
	require.Len(t, client.lastReq.Messages, len(history)+1)
	require.Equal(t, openai.ChatMessageRoleSystem, client.lastReq.Messages[0].Role)
	require.Equal(t, "You are a helpline assistant.", client.lastReq.Messages[0].Content)
	require.Equal(t, "visiting hours?", client.lastReq.Messages[3].Content)

	// caller history is untouched
	require.Len(t, history, 3)
	require.Equal(t, chat.RoleUser, history[0].Role)
}

func TestLLM_DefaultsMissingRoleToUser(t *testing.T) {
	client := &mockClient{resp: textResponse("ok")}
	strategy := NewLLM(client, testLLMConfig())

	_, err := strategy.Reply(context.Background(), []chat.Message{{Content: "no role"}})
	require.NoError(t, err)
	require.Equal(t, chat.RoleUser, client.lastReq.Messages[1].Role)
}

func TestLLM_FallbackToMultiContentText(t *testing.T) {
	client := &mockClient{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: "from the fallback path"},
				},
			},
		}},
	}}
	strategy := NewLLM(client, testLLMConfig())

	out, err := strategy.Reply(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})
	require.NoError(t, err)
	require.Equal(t, "from the fallback path", out)
}

func TestLLM_PlaceholderWhenNoText(t *testing.T) {
	tests := []struct {
		name string
		resp openai.ChatCompletionResponse
	}{
		{"no choices", openai.ChatCompletionResponse{}},
		{"empty content", textResponse("")},
		{"whitespace content", textResponse("   \n")},
		{"empty fallback part", openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{
					MultiContent: []openai.ChatMessagePart{
						{Type: openai.ChatMessagePartTypeText, Text: ""},
					},
				},
			}},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			strategy := NewLLM(&mockClient{resp: tc.resp}, testLLMConfig())
			out, err := strategy.Reply(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})
			require.NoError(t, err)
			require.Equal(t, PlaceholderReply, out)
		})
	}
}

func TestLLM_UpstreamError(t *testing.T) {
	cause := errors.New("quota exceeded")
	strategy := NewLLM(&mockClient{err: cause}, testLLMConfig())

	_, err := strategy.Reply(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.ErrorIs(t, err, cause)
}

func TestLLM_EmptyHistory(t *testing.T) {
	client := &mockClient{resp: textResponse("should not be called")}
	strategy := NewLLM(client, testLLMConfig())

	_, err := strategy.Reply(context.Background(), nil)
	require.ErrorIs(t, err, chat.ErrEmptyHistory)
	require.Empty(t, client.lastReq.Messages)
}
