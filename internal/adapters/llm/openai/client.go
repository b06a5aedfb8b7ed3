// Package openai implementa completion.Backend sobre chat completions compatibles con OpenAI
// (OpenAI, OpenRouter u otro gateway vía BaseURL).
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"healthflow/internal/ports/completion"

	goopenai "github.com/sashabaranov/go-openai"
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	apiKey string
	client *goopenai.Client
}

func New(cfg Config) *Client {
	key := strings.TrimSpace(cfg.APIKey)

	oc := goopenai.DefaultConfig(key)
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		oc.BaseURL = strings.TrimRight(base, "/")
	}
	if cfg.Timeout > 0 {
		oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{apiKey: key, client: goopenai.NewClientWithConfig(oc)}
}

func (c *Client) Name() string { return "openai" }

// Complete manda el system prompt como primer mensaje. La respuesta se mapea a un
// único text block.
func (c *Client) Complete(ctx context.Context, req completion.Request) (completion.Response, error) {
	if c == nil || c.apiKey == "" {
		return completion.Response{}, completion.ErrMissingCredential
	}

	msgs := make([]goopenai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleSystem, Content: req.System})
	}
	for _, t := range req.Messages {
		msgs = append(msgs, goopenai.ChatCompletionMessage{Role: string(t.Role), Content: t.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		Messages:  msgs,
	})
	if err != nil {
		return completion.Response{}, fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return completion.Response{}, errors.New("openai: no choices in response")
	}

	return completion.Response{
		Model: resp.Model,
		Blocks: []completion.Block{
			{Type: completion.BlockTypeText, Text: resp.Choices[0].Message.Content},
		},
	}, nil
}
