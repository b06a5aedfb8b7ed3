// Package llm arma el completion.Backend según la config.
package llm

import (
	"fmt"

	"healthflow/internal/adapters/llm/anthropic"
	"healthflow/internal/adapters/llm/openai"
	"healthflow/internal/config"
	"healthflow/internal/ports/completion"
)

// NewBackend devuelve el backend de LLM_PROVIDER. Una API key vacía no es error.
func NewBackend(cfg *config.Config) (completion.Backend, error) {
	switch cfg.LLMProvider {
	case config.ProviderAnthropic, "":
		return anthropic.New(anthropic.Config{
			APIKey:  cfg.AnthropicAPIKey,
			BaseURL: cfg.AnthropicBaseURL,
			Timeout: cfg.ChatTimeout,
		})
	case config.ProviderOpenAI:
		return openai.New(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Timeout: cfg.ChatTimeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}

// Model es el modelo configurado para el provider activo.
func Model(cfg *config.Config) string {
	if cfg.LLMProvider == config.ProviderOpenAI {
		return cfg.OpenAIModel
	}
	return cfg.AnthropicModel
}
