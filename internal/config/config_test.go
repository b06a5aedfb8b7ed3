package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr())
	}
	if cfg.LLMProvider != ProviderAnthropic {
		t.Fatalf("expected anthropic provider, got %q", cfg.LLMProvider)
	}
	if cfg.AnthropicModel != "claude-3-5-sonnet-20241022" || cfg.ChatMaxTokens != 1024 {
		t.Fatalf("unexpected chat defaults: %+v", cfg)
	}
	if cfg.ChatTimeout != 30*time.Second {
		t.Fatalf("expected 30s chat timeout, got %s", cfg.ChatTimeout)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
	if cfg.AnthropicAPIKey != "" {
		t.Fatalf("expected empty api key")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("CHAT_TIMEOUT", "5s")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.LLMProvider != ProviderOpenAI || cfg.ChatTimeout != 5*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.AllowedOrigins)
	}
}

func TestLoad_Rejects(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown provider")
	}

	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("CHAT_MAX_TOKENS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive max tokens")
	}
}
