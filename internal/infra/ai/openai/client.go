package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	domai "textlens/internal/domain/ai"
)

const maxTokens = 1024

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return NewClientWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewClientWithConfig builds a gateway against a custom client config,
// e.g. a different base URL.
func NewClientWithConfig(cfg openai.ClientConfig, model string) *Client {
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// Generate sends the prompt as a single chat completion and returns the
// reply text. Any transport or provider error, and an empty reply, come
// back as an error wrapping ai.ErrUnavailable; the failure is logged
// here and never propagates as anything else. One attempt, no retries.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	model := c.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	req := openai.ChatCompletionRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		slog.Error("language model call failed", "model", model, "err", err)
		return "", fmt.Errorf("%w: %v", domai.ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		slog.Error("language model returned empty response", "model", model)
		return "", fmt.Errorf("%w: empty response", domai.ErrUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}
