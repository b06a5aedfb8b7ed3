package timeline

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"healthflow/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Timeline de ejemplo (página /demo, sin auth)
	r.Get("/timeline/demo", demoHandler())

	r.Route("/timeline/events", func(er chi.Router) {
		er.Post("/", createEventHandler(svc))
		er.Get("/", listEventsHandler(svc))
		er.Get("/counts", countsHandler(svc))
		er.Get("/{eventID}", getEventHandler(svc))
		er.Delete("/{eventID}", deleteEventHandler(svc))
	})
}

// eventResponse representa un evento del timeline devuelto por la API.
type eventResponse struct {
	ID          string     `json:"id"`
	Type        EventType  `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	EndDate     string     `json:"endDate,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// createEventHandler godoc
// @Summary Crear evento en el timeline
// @Description Registra un evento médico en el timeline del usuario autenticado. `date`/`endDate` en YYYY-MM-DD o RFC3339; `endDate` no puede ser anterior a `date`.
// @Tags timeline
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param payload body Input true "Evento"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "event already exists"
// @Router /timeline/events [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var in Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Create(r.Context(), userID, in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listEventsHandler godoc
// @Summary Listar timeline
// @Description Lista los eventos del usuario, más recientes primero. Filtros por tipos, rango de fechas y texto.
// @Tags timeline
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param types query string false "CSV de tipos (ej: medication,lab)"
// @Param from query string false "Fecha mínima (YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (YYYY-MM-DD)"
// @Param q query string false "Texto en título/descripción"
// @Param limit query int false "Máximo de eventos (1-200). Por defecto 50"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /timeline/events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), userID, filter)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// countsHandler godoc
// @Summary Conteos por tipo
// @Description Total de eventos y conteo por tipo (botones de filtro).
// @Tags timeline
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Success 200 {object} Counts
// @Failure 401 {string} string "unauthorized"
// @Router /timeline/events/counts [get]
func countsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		c, err := svc.Counts(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// getEventHandler godoc
// @Summary Obtener evento
// @Tags timeline
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /timeline/events/{eventID} [get]
func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		e, err := svc.Get(r.Context(), userID, chi.URLParam(r, "eventID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(e))
	}
}

// deleteEventHandler godoc
// @Summary Borrar evento
// @Tags timeline
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param eventID path string true "ID del evento"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /timeline/events/{eventID} [delete]
func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "eventID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// demoHandler godoc
// @Summary Timeline de ejemplo
// @Tags timeline
// @Produce json
// @Success 200 {array} eventResponse
// @Router /timeline/demo [get]
func demoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		demo := DemoEvents()
		out := make([]eventResponse, 0, len(demo))
		for _, e := range demo {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func parseListFilter(r *http.Request) (Filter, error) {
	q := r.URL.Query()

	filter := Filter{Limit: DefaultListLimit}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxListLimit {
			filter.Limit = n
		}
	}

	// types=medication,lab
	if v := strings.TrimSpace(q.Get("types")); v != "" {
		for _, p := range strings.Split(v, ",") {
			if t := EventType(strings.TrimSpace(p)); t != "" {
				filter.Types = append(filter.Types, t)
			}
		}
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		d, err := ParseDate(v)
		if err != nil {
			return Filter{}, errors.New("from must be YYYY-MM-DD or RFC3339")
		}
		filter.From = &d
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		d, err := ParseDate(v)
		if err != nil {
			return Filter{}, errors.New("to must be YYYY-MM-DD or RFC3339")
		}
		filter.To = &d
	}

	filter.Query = strings.TrimSpace(q.Get("q"))
	return filter, nil
}

func toEventResponse(e Event) eventResponse {
	out := eventResponse{
		ID:          e.ID,
		Type:        e.Type,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.String(),
	}
	if e.HasEndDate() {
		out.EndDate = e.EndDate.String()
	}
	if !e.CreatedAt.IsZero() {
		t := e.CreatedAt
		out.CreatedAt = &t
	}
	return out
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return claims.UserID, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
	case errors.Is(err, ErrConflict):
		http.Error(w, "event already exists", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON se repite en cada módulo (ver chat).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
