package timeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create valida el input y lo guarda en el timeline de userID.
// Si no viene id, se genera uno.
func (s *Service) Create(ctx context.Context, userID string, in Input) (Event, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Event{}, ErrInvalidInput
	}

	e, err := in.Event()
	if err != nil {
		return Event{}, err
	}
	if e.ID == "" {
		e.ID = s.newID()
	}
	e.UserID = userID
	e.CreatedAt = s.now().UTC()

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Event, error) {
	userID = strings.TrimSpace(userID)
	id = strings.TrimSpace(id)
	if userID == "" || id == "" {
		return Event{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string, filter Filter) ([]Event, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, ErrInvalidInput
	}
	filter.Limit = filter.EffectiveLimit()
	return s.repo.ListByUser(ctx, userID, filter)
}

// All devuelve el timeline completo (hasta MaxListLimit), usado como contexto del chat.
func (s *Service) All(ctx context.Context, userID string) ([]Event, error) {
	return s.List(ctx, userID, Filter{Limit: MaxListLimit})
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	userID = strings.TrimSpace(userID)
	id = strings.TrimSpace(id)
	if userID == "" || id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, userID, id)
}

// Counts alimenta los botones de filtro: total + conteo por tipo.
type Counts struct {
	All    int               `json:"all"`
	ByType map[EventType]int `json:"byType"`
}

func (s *Service) Counts(ctx context.Context, userID string) (Counts, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Counts{}, ErrInvalidInput
	}

	byType, err := s.repo.CountByType(ctx, userID)
	if err != nil {
		return Counts{}, err
	}

	out := Counts{ByType: make(map[EventType]int, len(KnownTypes))}
	for _, t := range KnownTypes {
		out.ByType[t] = 0
	}
	for t, n := range byType {
		out.ByType[t] = n
		out.All += n
	}
	return out, nil
}
