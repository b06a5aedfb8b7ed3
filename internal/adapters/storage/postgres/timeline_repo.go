package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthflow/internal/domain/timeline"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type TimelineRepo struct {
	db *sql.DB
}

func NewTimelineRepo(db *sql.DB) *TimelineRepo {
	return &TimelineRepo{db: db}
}

const selectColumns = `
	SELECT
		id, user_id,
		type, title, description,
		event_date, end_date,
		created_at
	FROM timeline_events
`

func (r *TimelineRepo) Create(ctx context.Context, e timeline.Event) error {
	var end any
	if e.HasEndDate() {
		end = e.EndDate.Time()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO timeline_events (
			id, user_id,
			type, title, description,
			event_date, end_date,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		e.UserID,
		string(e.Type),
		e.Title,
		e.Description,
		e.Date.Time(),
		end,
		e.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return timeline.ErrConflict
	}
	return err
}

func (r *TimelineRepo) GetByID(ctx context.Context, userID, id string) (timeline.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return timeline.Event{}, timeline.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1 AND user_id = $2`, id, userID)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return timeline.Event{}, timeline.ErrNotFound
		}
		return timeline.Event{}, err
	}
	return e, nil
}

func (r *TimelineRepo) ListByUser(ctx context.Context, userID string, filter timeline.Filter) ([]timeline.Event, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(selectColumns)
	sb.WriteString(" WHERE user_id = $1")

	args := []any{userID}
	argN := 2

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}

	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND event_date >= $%d", argN))
		args = append(args, filter.From.Time())
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND event_date <= $%d", argN))
		args = append(args, filter.To.Time())
		argN++
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		sb.WriteString(fmt.Sprintf(` AND (title ILIKE $%d ESCAPE '\' OR description ILIKE $%d ESCAPE '\')`, argN, argN))
		args = append(args, containsPattern(q))
		argN++
	}

	sb.WriteString(" ORDER BY event_date DESC, created_at ASC, id ASC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, filter.EffectiveLimit())

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]timeline.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *TimelineRepo) CountByType(ctx context.Context, userID string) (map[timeline.EventType]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT type, COUNT(*)
		FROM timeline_events
		WHERE user_id = $1
		GROUP BY type
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[timeline.EventType]int)
	for rows.Next() {
		var typ string
		var n int
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, err
		}
		out[timeline.EventType(typ)] = n
	}
	return out, rows.Err()
}

func (r *TimelineRepo) Delete(ctx context.Context, userID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return timeline.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM timeline_events
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return timeline.ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern arma el patrón ILIKE para buscar q como texto literal.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (timeline.Event, error) {
	var e timeline.Event
	var typ string
	var date time.Time
	var end sql.NullTime

	if err := s.Scan(
		&e.ID,
		&e.UserID,
		&typ,
		&e.Title,
		&e.Description,
		&date,
		&end,
		&e.CreatedAt,
	); err != nil {
		return timeline.Event{}, err
	}

	e.Type = timeline.EventType(typ)
	e.Date = timeline.DateOf(date.UTC())
	if end.Valid {
		d := timeline.DateOf(end.Time.UTC())
		e.EndDate = &d
	}
	return e, nil
}
