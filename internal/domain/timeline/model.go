package timeline

import "time"

// Event es un hecho médico fechado del timeline del usuario.
type Event struct {
	ID     string
	UserID string

	Type        EventType
	Title       string
	Description string

	Date    Date
	EndDate *Date // solo eventos con duración (p.ej. una medicación en curso)

	CreatedAt time.Time
}

func (e Event) HasEndDate() bool {
	return e.EndDate != nil && !e.EndDate.IsZero()
}

// CountByType cuenta eventos de un tipo. Comparación exacta, como los filtros.
func CountByType(events []Event, t EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// OfType filtra preservando el orden de entrada.
func OfType(events []Event, t EventType) []Event {
	out := make([]Event, 0)
	for _, e := range events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
