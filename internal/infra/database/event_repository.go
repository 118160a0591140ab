package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bensapovits/studiously/internal/entity"
)

type EventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{DB: db}
}

const eventColumns = `
	id, user_id, title, COALESCE(description, ''), type,
	start_time, end_time, COALESCE(location, ''), created_at
`

func (r *EventRepository) Create(ctx context.Context, e *entity.Event) error {
	query := `
		INSERT INTO events (
			id, user_id, title, description, type,
			start_time, end_time, location, created_at
		) VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.UserID, e.Title, e.Description, e.Type,
		e.StartTime, e.EndTime, e.Location, e.CreatedAt,
	)
	return err
}

func (r *EventRepository) FindByID(ctx context.Context, id, userID string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND user_id = $2`

	event, err := scanEvent(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) ListByRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE user_id = $1 AND start_time >= $2 AND start_time <= $3
		ORDER BY start_time ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *entity.Event) error {
	query := `
		UPDATE events SET
			title = $1, description = NULLIF($2, ''), type = $3,
			start_time = $4, end_time = $5, location = NULLIF($6, '')
		WHERE id = $7 AND user_id = $8
	`

	result, err := r.DB.ExecContext(ctx, query,
		e.Title, e.Description, e.Type,
		e.StartTime, e.EndTime, e.Location,
		e.ID, e.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result, entity.ErrEventNotFound)
}

func (r *EventRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result, entity.ErrEventNotFound)
}

func scanEvent(row rowScanner) (*entity.Event, error) {
	var e entity.Event
	err := row.Scan(
		&e.ID, &e.UserID, &e.Title, &e.Description, &e.Type,
		&e.StartTime, &e.EndTime, &e.Location, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
