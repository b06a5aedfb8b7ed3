package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthflow/internal/domain/timeline"
	"healthflow/internal/platform/logger"
	"healthflow/internal/ports/completion"
)

const (
	DefaultModel     = "claude-3-5-sonnet-20241022"
	DefaultMaxTokens = 1024
)

var ErrNoBackend = errors.New("chat: no completion backend configured")

type Config struct {
	Model     string
	MaxTokens int

	// Timeout de la llamada al backend. 0 = solo la cancelación del request.
	Timeout time.Duration
}

// Source indica de dónde salió el contenido de una respuesta.
type Source string

const (
	SourceCompletion Source = "completion"
	SourceNonText    Source = "nontext"
	SourceFallback   Source = "fallback"
)

type Reply struct {
	Content string
	Source  Source
	Rule    string // regla de fallback aplicada ("" = default)
}

// Responder contesta un mensaje con el timeline como contexto. Sin estado entre llamadas.
type Responder struct {
	cfg     Config
	backend completion.Backend
	rules   []Rule
	log     logger.Logger
}

type Option func(*Responder)

// WithRules reemplaza las reglas de fallback (en orden).
func WithRules(rules ...Rule) Option {
	return func(r *Responder) {
		r.rules = append([]Rule(nil), rules...)
	}
}

func WithLogger(l logger.Logger) Option {
	return func(r *Responder) {
		if l != nil {
			r.log = l
		}
	}
}

func NewResponder(cfg Config, backend completion.Backend, opts ...Option) *Responder {
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	r := &Responder{
		cfg:     cfg,
		backend: backend,
		rules:   DefaultRules(),
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond nunca falla: cualquier error del backend termina en una respuesta de fallback.
func (r *Responder) Respond(ctx context.Context, message string, events []timeline.Event) string {
	return r.Reply(ctx, message, events).Content
}

func (r *Responder) Reply(ctx context.Context, message string, events []timeline.Event) Reply {
	reply, err := r.complete(ctx, message, events)
	if err == nil {
		return reply
	}

	content, rule := Fallback(r.rules, message, events)
	logger.FromContext(ctx, r.log).Warn("chat completion failed, using fallback", map[string]any{
		"error":   err,
		"backend": r.backendName(),
		"rule":    rule,
	})
	return Reply{Content: content, Source: SourceFallback, Rule: rule}
}

func (r *Responder) complete(ctx context.Context, message string, events []timeline.Event) (reply Reply, err error) {
	if r.backend == nil {
		return Reply{}, ErrNoBackend
	}

	defer func() {
		if p := recover(); p != nil {
			reply, err = Reply{}, fmt.Errorf("chat: completion backend panic: %v", p)
		}
	}()

	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	resp, err := r.backend.Complete(ctx, completion.Request{
		Model:     r.cfg.Model,
		MaxTokens: r.cfg.MaxTokens,
		System:    SystemPrompt(FormatContext(events)),
		Messages: []completion.Turn{
			{Role: completion.RoleUser, Content: message},
		},
	})
	if err != nil {
		return Reply{}, err
	}
	if len(resp.Blocks) == 0 {
		return Reply{}, completion.ErrEmptyResponse
	}

	// Solo se mira el primer block.
	first := resp.Blocks[0]
	if !first.IsText() {
		return Reply{Content: TroubleMessage, Source: SourceNonText}, nil
	}
	if strings.TrimSpace(first.Text) == "" {
		return Reply{}, completion.ErrEmptyResponse
	}
	return Reply{Content: first.Text, Source: SourceCompletion}, nil
}

func (r *Responder) backendName() string {
	if r.backend == nil {
		return "none"
	}
	return r.backend.Name()
}
