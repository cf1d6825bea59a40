// Package store defines the persistence interfaces consumed by the service
// layer. Concrete implementations live in subpackages.
package store

import (
	"context"

	"github.com/Alex3925/company-suggestion-box/types"
)

// SuggestionStore is the append-only persistence gateway for suggestions.
type SuggestionStore interface {
	// EnsureSchema creates the suggestions relation if absent. Safe to call
	// on every process start.
	EnsureSchema(ctx context.Context) error
	// Insert appends a new suggestion. The caller assigns ID and CreatedAt.
	Insert(ctx context.Context, s *types.Suggestion) error
	// ListRecent returns up to limit suggestions ordered by creation time
	// descending.
	ListRecent(ctx context.Context, limit int) ([]types.Suggestion, error)
}
