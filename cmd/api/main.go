package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthflow/internal/adapters/auth/supabase"
	"healthflow/internal/adapters/llm"
	pg "healthflow/internal/adapters/storage/postgres"
	"healthflow/internal/config"
	"healthflow/internal/domain/chat"
	"healthflow/internal/platform/logger"
	"healthflow/internal/ports/auth"
	"healthflow/internal/router"

	"github.com/joho/godotenv"
)

// @title HealthFlow+ API
// @version 1.0
// @description Timeline médico y asistente de chat de HealthFlow+.
// @BasePath /
func main() {
	// .env es opcional (dev)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer opened.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = pg.EnsureSchema(ctx, opened)
		cancel()
		if err != nil {
			return err
		}
		db = opened
		log.Info("using postgres timeline repository", nil)
	} else {
		log.Info("DB_DSN not set, using in-memory timeline repository", nil)
	}

	backend, err := llm.NewBackend(cfg)
	if err != nil {
		return err
	}
	if (cfg.LLMProvider == config.ProviderAnthropic && cfg.AnthropicAPIKey == "") ||
		(cfg.LLMProvider == config.ProviderOpenAI && cfg.OpenAIAPIKey == "") {
		log.Warn("completion api key not set, chat will answer with local fallback", map[string]any{
			"provider": string(cfg.LLMProvider),
		})
	}

	responder := chat.NewResponder(chat.Config{
		Model:     llm.Model(cfg),
		MaxTokens: cfg.ChatMaxTokens,
		Timeout:   cfg.ChatTimeout,
	}, backend, chat.WithLogger(log))

	var verifier auth.Verifier // nil => modo dev (X-Debug-User-ID)
	if cfg.SupabaseURL != "" {
		client, err := supabase.NewClient(supabase.Config{URL: cfg.SupabaseURL, AnonKey: cfg.SupabaseAnonKey})
		if err != nil {
			return err
		}
		verifier = supabase.NewVerifier(client)
	} else {
		log.Warn("SUPABASE_URL not set, running in dev auth mode", nil)
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Verifier:       verifier,
			DB:             db,
			Responder:      responder,
			Logger:         log,
			AllowedOrigins: cfg.AllowedOrigins,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "provider": backend.Name()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
