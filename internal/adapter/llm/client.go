package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/xiaot623/snippetagent/internal/domain"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "meta-llama/Llama-3.3-70B-Instruct-Turbo"

// Client calls an OpenAI-compatible chat completion API.
type Client struct {
	api            *openai.Client
	model          string
	includeHistory bool
}

// NewClient creates a client for baseURL (for example https://api.together.xyz/v1).
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	if model == "" {
		model = DefaultModel
	}

	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// WithHistory makes Complete send prior turns ahead of the prompt.
func (c *Client) WithHistory(enabled bool) *Client {
	c.includeHistory = enabled
	return c
}

// Complete sends the prompt built from query and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, query string, history []domain.HistoryEntry) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: c.buildMessages(query, history),
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", domain.NewCompletionError(describeError(err))
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) buildMessages(query string, history []domain.HistoryEntry) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage
	if c.includeHistory {
		for _, h := range history {
			messages = append(messages, openai.ChatCompletionMessage{
				Role:    roleFor(h.Role),
				Content: h.Content,
			})
		}
	}
	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: BuildPrompt(query),
	})
}

func roleFor(t domain.MessageType) string {
	if t == domain.MessageTypeAI {
		return openai.ChatMessageRoleAssistant
	}
	return openai.ChatMessageRoleUser
}

// describeError keeps the HTTP status of a failed call in the error text.
func describeError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("LLM API error [%d]: %w", apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("LLM API error [%d]: %w", reqErr.HTTPStatusCode, err)
	}
	return fmt.Errorf("failed to send request: %w", err)
}
