// Package anthropic implementa completion.Backend contra la Messages API de Anthropic.
package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"healthflow/internal/platform/httpclient"
	"healthflow/internal/ports/completion"
)

const (
	DefaultBaseURL = "https://api.anthropic.com"
	APIVersion     = "2023-06-01"

	messagesPath = "/v1/messages"
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	Transport http.RoundTripper // opcional (tests)
}

type Client struct {
	apiKey string
	http   *httpclient.Client
}

// New no valida la API key: sin key el cliente existe pero Complete devuelve
// completion.ErrMissingCredential sin salir a la red.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   base,
		Timeout:   cfg.Timeout,
		Transport: cfg.Transport,
		Headers: map[string]string{
			"anthropic-version": APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}

	return &Client{apiKey: strings.TrimSpace(cfg.APIKey), http: hc}, nil
}

func (c *Client) Name() string { return "anthropic" }

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type messagesResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func (c *Client) Complete(ctx context.Context, req completion.Request) (completion.Response, error) {
	if c == nil || c.apiKey == "" {
		return completion.Response{}, completion.ErrMissingCredential
	}

	body := messagesRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages:  make([]message, 0, len(req.Messages)),
	}
	for _, t := range req.Messages {
		body.Messages = append(body.Messages, message{Role: string(t.Role), Content: t.Content})
	}

	var out messagesResponse
	err := c.http.DoJSON(ctx, http.MethodPost, messagesPath, map[string]string{"x-api-key": c.apiKey}, body, &out)
	if err != nil {
		return completion.Response{}, fmt.Errorf("anthropic: messages: %w", err)
	}

	resp := completion.Response{Model: out.Model, Blocks: make([]completion.Block, 0, len(out.Content))}
	for _, b := range out.Content {
		resp.Blocks = append(resp.Blocks, completion.Block{Type: b.Type, Text: b.Text})
	}
	return resp, nil
}
