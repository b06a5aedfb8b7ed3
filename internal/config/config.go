package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderAnthropic LLMProvider = "anthropic"
	ProviderOpenAI    LLMProvider = "openai"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	AppName string `env:"APP_NAME" envDefault:"healthflow"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`

	// Vacío => repositorio in-memory.
	DBDSN string `env:"DB_DSN"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// Completion backend
	LLMProvider      LLMProvider   `env:"LLM_PROVIDER" envDefault:"anthropic"`
	AnthropicAPIKey  string        `env:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL string        `env:"ANTHROPIC_BASE_URL" envDefault:"https://api.anthropic.com"`
	AnthropicModel   string        `env:"ANTHROPIC_MODEL" envDefault:"claude-3-5-sonnet-20241022"`
	OpenAIAPIKey     string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string        `env:"OPENAI_BASE_URL"`
	OpenAIModel      string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	ChatMaxTokens    int           `env:"CHAT_MAX_TOKENS" envDefault:"1024"`
	ChatTimeout      time.Duration `env:"CHAT_TIMEOUT" envDefault:"30s"`

	// Proveedor de auth (Supabase). Sin URL => modo dev con X-Debug-User-ID.
	SupabaseURL     string `env:"SUPABASE_URL"`
	SupabaseAnonKey string `env:"SUPABASE_ANON_KEY"`
}

// Load lee la config desde el entorno. Las API keys vacías son un estado válido:
// el backend correspondiente falla en cada llamada y el chat cae al fallback.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ChatMaxTokens <= 0 {
		return nil, fmt.Errorf("CHAT_MAX_TOKENS must be positive, got %d", cfg.ChatMaxTokens)
	}
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = ProviderAnthropic
	}
	switch cfg.LLMProvider {
	case ProviderAnthropic, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
