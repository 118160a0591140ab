package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/bensapovits/studiously/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

const contactColumns = `
	id, user_id, first_name, last_name,
	COALESCE(email, ''), COALESCE(phone, ''), COALESCE(linkedin, ''),
	COALESCE(company, ''), COALESCE(college, ''),
	stage, COALESCE(last_contacted, 'epoch'::timestamptz), created_at, updated_at
`

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (
			id, user_id, first_name, last_name, email, phone, linkedin,
			company, college, stage, last_contacted, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''),
			NULLIF($8, ''), NULLIF($9, ''),
			$10, NULLIF($11, 'epoch'::timestamptz), $12, $13
		)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.UserID, c.FirstName, c.LastName,
		c.Email, c.Phone, c.LinkedIn,
		c.Company, c.College,
		c.Stage, c.LastContacted, c.CreatedAt, c.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id, userID string) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1 AND user_id = $2`

	contact, err := scanContact(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrContactNotFound
		}
		return nil, err
	}
	return contact, nil
}

func (r *ContactRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*entity.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	query := `
		UPDATE contacts SET
			first_name = $1, last_name = $2,
			email = NULLIF($3, ''), phone = NULLIF($4, ''), linkedin = NULLIF($5, ''),
			company = NULLIF($6, ''), college = NULLIF($7, ''),
			stage = $8, last_contacted = NULLIF($9, 'epoch'::timestamptz), updated_at = NOW()
		WHERE id = $10 AND user_id = $11
	`

	result, err := r.DB.ExecContext(ctx, query,
		c.FirstName, c.LastName,
		c.Email, c.Phone, c.LinkedIn,
		c.Company, c.College,
		c.Stage, c.LastContacted, c.ID, c.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result, entity.ErrContactNotFound)
}

func (r *ContactRepository) UpdateStage(ctx context.Context, id, userID, stage string) error {
	query := `UPDATE contacts SET stage = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`

	result, err := r.DB.ExecContext(ctx, query, stage, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result, entity.ErrContactNotFound)
}

func (r *ContactRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result, entity.ErrContactNotFound)
}

// UpsertByEmail inserts a captured contact or, when the owner already has a
// row with that email, fills in the fields the capture brought. COALESCE
// keeps existing non-null values when the scrape produced nothing better.
func (r *ContactRepository) UpsertByEmail(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (
			id, user_id, first_name, last_name, email, phone, linkedin,
			company, college, stage, last_contacted, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''),
			$10, $11, NOW(), NOW()
		)
		ON CONFLICT (user_id, email)
		DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = COALESCE(EXCLUDED.phone, contacts.phone),
			linkedin = COALESCE(EXCLUDED.linkedin, contacts.linkedin),
			company = COALESCE(EXCLUDED.company, contacts.company),
			college = COALESCE(EXCLUDED.college, contacts.college),
			last_contacted = EXCLUDED.last_contacted,
			updated_at = NOW()
		RETURNING id, stage, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		c.ID, c.UserID, c.FirstName, c.LastName, c.Email,
		c.Phone, c.LinkedIn, c.Company, c.College,
		c.Stage, c.LastContacted,
	).Scan(&c.ID, &c.Stage, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert contact: %w", err)
	}
	return nil
}

// ListCompletedWithoutFollowUp finds the inconsistency window the two-step
// completion flow can leave behind: a contact parked in Call Completed with
// no follow-up record.
func (r *ContactRepository) ListCompletedWithoutFollowUp(ctx context.Context) ([]*entity.Contact, error) {
	query := `
		SELECT
			c.id, c.user_id, c.first_name, c.last_name,
			COALESCE(c.email, ''), COALESCE(c.phone, ''), COALESCE(c.linkedin, ''),
			COALESCE(c.company, ''), COALESCE(c.college, ''),
			c.stage, COALESCE(c.last_contacted, 'epoch'::timestamptz), c.created_at, c.updated_at
		FROM contacts c
		LEFT JOIN follow_ups f ON f.contact_id = c.id
		WHERE c.stage = $1 AND f.id IS NULL
	`

	rows, err := r.DB.QueryContext(ctx, query, entity.StageCallCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*entity.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContact(row rowScanner) (*entity.Contact, error) {
	var c entity.Contact
	err := row.Scan(
		&c.ID, &c.UserID, &c.FirstName, &c.LastName,
		&c.Email, &c.Phone, &c.LinkedIn,
		&c.Company, &c.College,
		&c.Stage, &c.LastContacted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func checkAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
