package router

import (
	"database/sql"
	"encoding/json"
	"net/http"

	_ "healthflow/docs"
	mem "healthflow/internal/adapters/storage/memory"
	pg "healthflow/internal/adapters/storage/postgres"
	"healthflow/internal/domain/chat"
	"healthflow/internal/domain/timeline"
	"healthflow/internal/middleware"
	"healthflow/internal/platform/logger"
	"healthflow/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Verifier auth.Verifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Sin Responder el chat responde siempre con el fallback.
	Responder *chat.Responder

	Logger         logger.Logger
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.AllowedOrigins))

	r.Use(middleware.AuthContext(opts.Verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/me", meHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var repo timeline.Repository
	if opts.DB != nil {
		repo = pg.NewTimelineRepo(opts.DB)
	} else {
		repo = mem.NewTimelineRepo()
	}
	timelineSvc := timeline.NewService(repo)

	responder := opts.Responder
	if responder == nil {
		responder = chat.NewResponder(chat.Config{}, nil, chat.WithLogger(log))
	}

	timeline.RegisterRoutes(r, timelineSvc)
	chat.RegisterRoutes(r, responder, timelineSvc, log)

	return r
}

// meHandler godoc
// @Summary Sesión actual
// @Description Devuelve los claims del usuario autenticado (chequeo de sesión del dashboard).
// @Tags auth
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Success 200 {object} auth.Claims
// @Failure 401 {string} string "unauthorized"
// @Router /me [get]
func meHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || claims.UserID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(claims)
}
