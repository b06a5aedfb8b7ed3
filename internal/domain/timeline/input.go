package timeline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
)

// Input es la forma de un evento en el borde (JSON del cliente, archivos YAML del CLI).
// Nunca se confía en ella sin pasar por Event().
type Input struct {
	ID          string `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
	EndDate     string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}

// Event valida y normaliza el input. Errores envuelven ErrInvalidInput.
func (in Input) Event() (Event, error) {
	e := Event{
		ID:          strings.TrimSpace(in.ID),
		Type:        EventType(strings.TrimSpace(in.Type)),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
	}

	if e.Type == "" {
		return Event{}, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if e.Title == "" {
		return Event{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Date) == "" {
		return Event{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	d, err := ParseDate(in.Date)
	if err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	e.Date = d

	if strings.TrimSpace(in.EndDate) != "" {
		end, err := ParseDate(in.EndDate)
		if err != nil {
			return Event{}, fmt.Errorf("%w: endDate: %v", ErrInvalidInput, err)
		}
		if end.Before(d) {
			return Event{}, fmt.Errorf("%w: endDate %s is before date %s", ErrInvalidInput, end, d)
		}
		e.EndDate = &end
	}

	return e, nil
}

// InputFrom es la inversa de Event() (para export/CLI).
func InputFrom(e Event) Input {
	in := Input{
		ID:          e.ID,
		Type:        string(e.Type),
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.String(),
	}
	if e.HasEndDate() {
		in.EndDate = e.EndDate.String()
	}
	return in
}

type InputError struct {
	Index int
	Err   error
}

func (e InputError) Error() string {
	return fmt.Sprintf("event[%d]: %v", e.Index, e.Err)
}

func (e InputError) Unwrap() error { return e.Err }

// Normalize devuelve los eventos válidos en el orden de entrada y un error por cada
// entrada descartada (inválida o con id repetido).
func Normalize(inputs []Input) ([]Event, []InputError) {
	out := make([]Event, 0, len(inputs))
	var rejected []InputError
	seen := make(map[string]bool, len(inputs))

	for i, in := range inputs {
		e, err := in.Event()
		if err != nil {
			rejected = append(rejected, InputError{Index: i, Err: err})
			continue
		}
		if e.ID != "" {
			if seen[e.ID] {
				rejected = append(rejected, InputError{
					Index: i,
					Err:   fmt.Errorf("%w: duplicate id %q", ErrInvalidInput, e.ID),
				})
				continue
			}
			seen[e.ID] = true
		}
		out = append(out, e)
	}
	return out, rejected
}
