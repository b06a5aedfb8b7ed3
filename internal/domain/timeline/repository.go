package timeline

import "context"

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type Repository interface {
	Create(ctx context.Context, e Event) error
	GetByID(ctx context.Context, userID, id string) (Event, error)
	ListByUser(ctx context.Context, userID string, filter Filter) ([]Event, error)
	CountByType(ctx context.Context, userID string) (map[EventType]int, error)
	Delete(ctx context.Context, userID, id string) error
}

// Filter para listar el timeline. Resultados por fecha desc.
type Filter struct {
	Types []EventType
	From  *Date
	To    *Date
	Query string
	Limit int
}

// EffectiveLimit aplica default y tope.
func (f Filter) EffectiveLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultListLimit
	case f.Limit > MaxListLimit:
		return MaxListLimit
	default:
		return f.Limit
	}
}
