package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bensapovits/studiously/internal/entity"
)

type NoteRepository struct {
	DB *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

const noteColumns = `id, user_id, contact_id, content, created_at, updated_at`

func (r *NoteRepository) Create(ctx context.Context, n *entity.Note) error {
	query := `
		INSERT INTO notes (id, user_id, contact_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		n.ID, n.UserID, n.ContactID, n.Content, n.CreatedAt, n.UpdatedAt,
	)
	return err
}

func (r *NoteRepository) FindByID(ctx context.Context, id, userID string) (*entity.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND user_id = $2`

	note, err := scanNote(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func (r *NoteRepository) ListByContact(ctx context.Context, contactID, userID string) ([]*entity.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE contact_id = $1 AND user_id = $2
		ORDER BY updated_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, contactID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*entity.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) Update(ctx context.Context, n *entity.Note) error {
	query := `UPDATE notes SET content = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.DB.ExecContext(ctx, query, n.Content, n.UpdatedAt, n.ID, n.UserID)
	if err != nil {
		return err
	}
	return checkAffected(result, entity.ErrNoteNotFound)
}

func (r *NoteRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result, entity.ErrNoteNotFound)
}

func scanNote(row rowScanner) (*entity.Note, error) {
	var n entity.Note
	err := row.Scan(&n.ID, &n.UserID, &n.ContactID, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
