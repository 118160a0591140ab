package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bensapovits/studiously/internal/entity"
)

type FollowUpRepository struct {
	DB *sql.DB
}

func NewFollowUpRepository(db *sql.DB) *FollowUpRepository {
	return &FollowUpRepository{DB: db}
}

const followUpColumns = `
	id, contact_id, user_id, frequency, next_due_date, last_completed,
	last_notified, status, snooze_until, COALESCE(notes, ''), created_at, updated_at
`

func (r *FollowUpRepository) Insert(ctx context.Context, f *entity.FollowUp) error {
	query := `
		INSERT INTO follow_ups (
			id, contact_id, user_id, frequency, next_due_date, last_completed,
			last_notified, status, snooze_until, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		f.ID, f.ContactID, f.UserID, f.Frequency, f.NextDueDate, f.LastCompleted,
		f.LastNotified, f.Status, f.SnoozeUntil, f.Notes, f.CreatedAt, f.UpdatedAt,
	)
	return err
}

func (r *FollowUpRepository) FindByID(ctx context.Context, id, userID string) (*entity.FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups WHERE id = $1 AND user_id = $2`

	followUp, err := scanFollowUp(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrFollowUpNotFound
		}
		return nil, err
	}
	return followUp, nil
}

func (r *FollowUpRepository) FindByContact(ctx context.Context, contactID, userID string) (*entity.FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups WHERE contact_id = $1 AND user_id = $2`

	followUp, err := scanFollowUp(r.DB.QueryRowContext(ctx, query, contactID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrFollowUpNotFound
		}
		return nil, err
	}
	return followUp, nil
}

func (r *FollowUpRepository) Update(ctx context.Context, f *entity.FollowUp) error {
	query := `
		UPDATE follow_ups SET
			frequency = $1, next_due_date = $2, last_completed = $3, last_notified = $4,
			status = $5, snooze_until = $6, notes = NULLIF($7, ''), updated_at = $8
		WHERE id = $9 AND user_id = $10
	`

	result, err := r.DB.ExecContext(ctx, query,
		f.Frequency, f.NextDueDate, f.LastCompleted, f.LastNotified,
		f.Status, f.SnoozeUntil, f.Notes, f.UpdatedAt,
		f.ID, f.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result, entity.ErrFollowUpNotFound)
}

func (r *FollowUpRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM follow_ups WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result, entity.ErrFollowUpNotFound)
}

// ListDue joins the contact name and owner address the reminder mail needs.
// A snoozed-then-never-resumed record stays out of the sweep until its
// snooze window passes, and a record already notified for the current due
// period is excluded so repeated sweeps do not re-send it.
func (r *FollowUpRepository) ListDue(ctx context.Context, now time.Time) ([]*entity.DueFollowUp, error) {
	query := `
		SELECT
			f.id, f.contact_id, f.user_id, f.frequency, f.next_due_date, f.last_completed,
			f.last_notified, f.status, f.snooze_until, COALESCE(f.notes, ''), f.created_at, f.updated_at,
			TRIM(c.first_name || ' ' || COALESCE(c.last_name, '')), u.email
		FROM follow_ups f
		JOIN contacts c ON c.id = f.contact_id
		JOIN users u ON u.id = f.user_id
		WHERE f.status = $1
		  AND f.next_due_date <= $2
		  AND (f.snooze_until IS NULL OR f.snooze_until <= $2)
		  AND (f.last_notified IS NULL OR f.last_notified < f.next_due_date)
		ORDER BY f.next_due_date ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, entity.FollowUpPending, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []*entity.DueFollowUp
	for rows.Next() {
		var d entity.DueFollowUp
		err := rows.Scan(
			&d.ID, &d.ContactID, &d.UserID, &d.Frequency, &d.NextDueDate, &d.LastCompleted,
			&d.LastNotified, &d.Status, &d.SnoozeUntil, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
			&d.ContactName, &d.OwnerEmail,
		)
		if err != nil {
			return nil, err
		}
		due = append(due, &d)
	}
	return due, rows.Err()
}

func (r *FollowUpRepository) MarkNotified(ctx context.Context, id string, at time.Time) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE follow_ups SET last_notified = $1 WHERE id = $2`, at, id)
	if err != nil {
		return err
	}
	return checkAffected(result, entity.ErrFollowUpNotFound)
}

func scanFollowUp(row rowScanner) (*entity.FollowUp, error) {
	var f entity.FollowUp
	err := row.Scan(
		&f.ID, &f.ContactID, &f.UserID, &f.Frequency, &f.NextDueDate, &f.LastCompleted,
		&f.LastNotified, &f.Status, &f.SnoozeUntil, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
