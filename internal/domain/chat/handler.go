package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"healthflow/internal/domain/timeline"
	"healthflow/internal/middleware"
	"healthflow/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const maxChatBody = 1 << 20

// EventSource es lo que el chat necesita del timeline guardado.
type EventSource interface {
	All(ctx context.Context, userID string) ([]timeline.Event, error)
	Get(ctx context.Context, userID, id string) (timeline.Event, error)
}

func RegisterRoutes(r chi.Router, responder *Responder, events EventSource, log logger.Logger) {
	if log == nil {
		log = logger.Discard()
	}
	r.Route("/api/chat", func(cr chi.Router) {
		cr.Post("/", chatHandler(responder, events, log, time.Now))
		cr.Get("/events/{eventID}", describeEventHandler(events))
	})
}

// chatRequest es el cuerpo del chat. Si events no viene y hay sesión, se usa el timeline guardado.
// Cada evento se decodifica por separado: uno malformado se descarta sin invalidar el resto.
type chatRequest struct {
	Message string            `json:"message"`
	Events  []json.RawMessage `json:"events"`
}

type chatResponse struct {
	Message string  `json:"message"`
	Source  Source  `json:"source"`
	Reply   Message `json:"reply"`
}

type describeResponse struct {
	Message string `json:"message"`
}

// chatHandler godoc
// @Summary Preguntar al asistente
// @Description Responde una pregunta usando el timeline como contexto. Siempre 200 con un texto mostrable: si el modelo falla se usa una respuesta local. Eventos malformados se descartan.
// @Tags chat
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param payload body chatRequest true "Mensaje + eventos"
// @Success 200 {object} chatResponse
// @Failure 400 {string} string "invalid json / message is required"
// @Router /api/chat [post]
func chatHandler(responder *Responder, events EventSource, log logger.Logger, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.FromContext(r.Context(), log)

		// El body se decodifica una sola vez; el fallback usa el mismo request ya parseado.
		var req chatRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxChatBody)).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			http.Error(w, "message is required", http.StatusBadRequest)
			return
		}

		evs := resolveEvents(r, req.Events, events, reqLog)

		reply := responder.Reply(r.Context(), req.Message, evs)
		reqLog.Info("chat reply", map[string]any{
			"source": string(reply.Source),
			"events": len(evs),
		})

		writeJSON(w, http.StatusOK, chatResponse{
			Message: reply.Content,
			Source:  reply.Source,
			Reply:   NewMessage(RoleAssistant, reply.Content, now()),
		})
	}
}

func resolveEvents(r *http.Request, raw []json.RawMessage, source EventSource, log logger.Logger) []timeline.Event {
	if raw == nil {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || source == nil || strings.TrimSpace(claims.UserID) == "" {
			return nil
		}
		evs, err := source.All(r.Context(), claims.UserID)
		if err != nil {
			log.Error("load timeline for chat", map[string]any{"error": err})
			return nil
		}
		// Guardado viene por fecha desc; el prompt usa orden cronológico.
		reverse(evs)
		return evs
	}

	evs, rejected := decodeEvents(raw)
	for _, rej := range rejected {
		log.Warn("dropping malformed chat event", map[string]any{
			"index": rej.Index,
			"error": rej.Err,
		})
	}
	return evs
}

// describeEventHandler godoc
// @Summary Describir evento
// @Description Mensaje de asistente con el detalle de un evento del timeline (al seleccionarlo en la UI).
// @Tags chat
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param eventID path string true "ID del evento"
// @Success 200 {object} describeResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /api/chat/events/{eventID} [get]
// decodeEvents decodifica y valida cada entrada. Los índices de los errores son
// los del array recibido.
func decodeEvents(raw []json.RawMessage) ([]timeline.Event, []timeline.InputError) {
	inputs := make([]timeline.Input, 0, len(raw))
	positions := make([]int, 0, len(raw))
	var rejected []timeline.InputError

	for i, msg := range raw {
		var in timeline.Input
		if err := json.Unmarshal(msg, &in); err != nil {
			rejected = append(rejected, timeline.InputError{
				Index: i,
				Err:   fmt.Errorf("%w: %v", timeline.ErrInvalidInput, err),
			})
			continue
		}
		inputs = append(inputs, in)
		positions = append(positions, i)
	}

	evs, invalid := timeline.Normalize(inputs)
	for _, e := range invalid {
		e.Index = positions[e.Index]
		rejected = append(rejected, e)
	}
	sort.Slice(rejected, func(i, j int) bool { return rejected[i].Index < rejected[j].Index })
	return evs, rejected
}

func describeEventHandler(events EventSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if events == nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		e, err := events.Get(r.Context(), claims.UserID, chi.URLParam(r, "eventID"))
		if err != nil {
			if errors.Is(err, timeline.ErrNotFound) || errors.Is(err, timeline.ErrInvalidInput) {
				http.Error(w, "event not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, describeResponse{Message: DescribeEvent(e)})
	}
}

func reverse(evs []timeline.Event) {
	for i, j := 0, len(evs)-1; i < j; i, j = i+1, j-1 {
		evs[i], evs[j] = evs[j], evs[i]
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
