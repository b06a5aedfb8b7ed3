package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"healthflow/internal/domain/timeline"
)

// Los ids son únicos por usuario: userID -> id -> evento.
type timelineRepo struct {
	mu     sync.RWMutex
	byUser map[string]map[string]timeline.Event
}

func NewTimelineRepo() timeline.Repository {
	return &timelineRepo{
		byUser: make(map[string]map[string]timeline.Event),
	}
}

func (r *timelineRepo) Create(ctx context.Context, e timeline.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" || e.UserID == "" {
		return timeline.ErrInvalidInput
	}

	events, ok := r.byUser[e.UserID]
	if !ok {
		events = make(map[string]timeline.Event)
		r.byUser[e.UserID] = events
	}
	if _, exists := events[e.ID]; exists {
		return timeline.ErrConflict
	}

	events[e.ID] = e
	return nil
}

func (r *timelineRepo) GetByID(ctx context.Context, userID, id string) (timeline.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byUser[userID][id]
	if !ok {
		return timeline.Event{}, timeline.ErrNotFound
	}
	return e, nil
}

func (r *timelineRepo) ListByUser(ctx context.Context, userID string, filter timeline.Filter) ([]timeline.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]timeline.Event, 0)

	for _, e := range r.byUser[userID] {
		if len(filter.Types) > 0 {
			ok := false
			for _, t := range filter.Types {
				if e.Type == t {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		// Rango sobre date, inclusivo en ambos extremos.
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}

		if q != "" {
			hay := strings.ToLower(e.Title + " " + e.Description)
			if !strings.Contains(hay, q) {
				continue
			}
		}

		out = append(out, e)
	}

	// date desc; empates por created_at y luego id para que el orden sea estable
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Time().Equal(b.Date.Time()) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	if limit := filter.EffectiveLimit(); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *timelineRepo) CountByType(ctx context.Context, userID string) (map[timeline.EventType]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[timeline.EventType]int)
	for _, e := range r.byUser[userID] {
		out[e.Type]++
	}
	return out, nil
}

func (r *timelineRepo) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUser[userID][id]; !ok {
		return timeline.ErrNotFound
	}
	delete(r.byUser[userID], id)
	return nil
}
