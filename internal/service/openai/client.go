package openai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/luiskerner/finance-newsletter/internal/domain/models"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client implements repository.TextGenerator on the OpenAI chat
// completions API. One request, one completion, no retries.
type Client struct {
	client  *openai.Client
	timeout time.Duration
}

// New creates a new text generator client. Extra request options are
// applied to every call.
func New(apiKey string, timeout time.Duration, opts ...option.RequestOption) *Client {
	c := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &Client{client: &c, timeout: timeout}
}

// Generate sends the prompt and returns the first completion's text with
// surrounding whitespace removed.
func (c *Client) Generate(ctx context.Context, prompt, model string, temperature float64) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Temperature: openai.Float(temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", &models.GenerationError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &models.GenerationError{Err: errors.New("no completions returned")}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
