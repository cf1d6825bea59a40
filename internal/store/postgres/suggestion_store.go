// Package postgres implements the suggestion store on top of a pgx
// connection pool.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Alex3925/company-suggestion-box/internal/store"
	"github.com/Alex3925/company-suggestion-box/types"
)

// DB is the subset of pgxpool.Pool the store uses. Declared as an interface
// so pgxmock can stand in during tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Ensure SuggestionStore implements store.SuggestionStore
var _ store.SuggestionStore = (*SuggestionStore)(nil)

// SuggestionStore persists suggestions in PostgreSQL.
type SuggestionStore struct {
	db DB
}

// NewSuggestionStore creates a suggestion store backed by the given pool.
func NewSuggestionStore(db DB) *SuggestionStore {
	return &SuggestionStore{db: db}
}

const createSuggestionsTable = `
	CREATE TABLE IF NOT EXISTS suggestions (
		id VARCHAR(48) PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		email VARCHAR(320) NOT NULL,
		type VARCHAR(60) NOT NULL,
		message TEXT NOT NULL,
		impact VARCHAR(30) NOT NULL DEFAULT '',
		extra TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`

const createCreatedAtIndex = `
	CREATE INDEX IF NOT EXISTS suggestions_created_at_idx
	ON suggestions (created_at DESC)`

// EnsureSchema idempotently creates the suggestions table and its listing
// index. Called once at startup; a failure is fatal to the process.
func (s *SuggestionStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createSuggestionsTable); err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, createCreatedAtIndex); err != nil {
		return err
	}
	return nil
}

// Insert appends a new suggestion. Length constraints and id uniqueness are
// enforced by the relation; violations surface as errors for the service to
// wrap.
func (s *SuggestionStore) Insert(ctx context.Context, sg *types.Suggestion) error {
	query := `
		INSERT INTO suggestions (id, name, email, type, message, impact, extra, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.Exec(ctx, query,
		sg.ID,
		sg.Name,
		sg.Email,
		sg.Type,
		sg.Message,
		sg.Impact,
		sg.Extra,
		sg.CreatedAt,
	)
	return err
}

// ListRecent returns up to limit suggestions, newest first.
func (s *SuggestionStore) ListRecent(ctx context.Context, limit int) ([]types.Suggestion, error) {
	query := `
		SELECT id, name, email, type, message, impact, extra, created_at
		FROM suggestions
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suggestions []types.Suggestion
	for rows.Next() {
		var sg types.Suggestion
		err := rows.Scan(
			&sg.ID,
			&sg.Name,
			&sg.Email,
			&sg.Type,
			&sg.Message,
			&sg.Impact,
			&sg.Extra,
			&sg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, sg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return suggestions, nil
}
