package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"listing_sync/internal/domain"
)

// ErrNotFound is returned by updates that match no row.
var ErrNotFound = errors.New("row not found")

type AgentStore struct {
	db *sqlx.DB
}

func NewAgentStore(db *sqlx.DB) *AgentStore {
	return &AgentStore{db: db}
}

func (s *AgentStore) FindIDByAirtableID(ctx context.Context, airtableID string) (string, bool, error) {
	return findID(ctx, GetExecutor(ctx, s.db),
		"SELECT id FROM agents WHERE airtable_id = $1 LIMIT 1", airtableID)
}

func (s *AgentStore) FindIDByEmail(ctx context.Context, email string) (string, bool, error) {
	return findID(ctx, GetExecutor(ctx, s.db),
		"SELECT id FROM agents WHERE lower(email) = lower($1) ORDER BY created_at LIMIT 1", email)
}

func (s *AgentStore) Insert(ctx context.Context, a *domain.Agent) error {
	query := `
		INSERT INTO agents (
			id, airtable_id, slug, first_name, last_name, email, phone,
			whatsapp, photo_url, specializations, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		a.ID,
		a.AirtableID,
		a.Slug,
		a.FirstName,
		a.LastName,
		a.Email,
		a.Phone,
		a.WhatsApp,
		a.PhotoURL,
		pq.Array(a.Specializations),
		a.IsActive,
	)
	return describe(err)
}

// Update overwrites the synced columns only. Columns edited in the back
// office (bio, ordering, tenant) are left alone.
func (s *AgentStore) Update(ctx context.Context, a *domain.Agent) error {
	query := `
		UPDATE agents SET
			airtable_id = $2,
			slug = $3,
			first_name = $4,
			last_name = $5,
			email = $6,
			phone = $7,
			whatsapp = $8,
			photo_url = $9,
			specializations = $10,
			is_active = $11,
			updated_at = NOW()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		a.ID,
		a.AirtableID,
		a.Slug,
		a.FirstName,
		a.LastName,
		a.Email,
		a.Phone,
		a.WhatsApp,
		a.PhotoURL,
		pq.Array(a.Specializations),
		a.IsActive,
	)
	if err != nil {
		return describe(err)
	}
	return expectRow(res, "agent", a.ID)
}

func findID(ctx context.Context, q sqlx.QueryerContext, query string, arg any) (string, bool, error) {
	var id string
	err := sqlx.GetContext(ctx, q, &id, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

func expectRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return nil
}

// describe turns constraint violations into short messages that end up in
// the sync result details.
func describe(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case "23505":
		return fmt.Errorf("unique constraint %s violated: %w", pqErr.Constraint, err)
	case "23502":
		return fmt.Errorf("column %s must not be null: %w", pqErr.Column, err)
	case "23514":
		return fmt.Errorf("check constraint %s violated: %w", pqErr.Constraint, err)
	case "23503":
		return fmt.Errorf("foreign key %s violated: %w", pqErr.Constraint, err)
	}
	return err
}
