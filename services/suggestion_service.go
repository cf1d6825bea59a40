// Package services contains the request-scoped use cases: suggestion
// submission and bounded listing, plus the Redis-backed rate limit check.
package services

import (
	"context"
	"time"

	apperrors "github.com/Alex3925/company-suggestion-box/errors"
	"github.com/Alex3925/company-suggestion-box/internal/ids"
	"github.com/Alex3925/company-suggestion-box/internal/store"
	"github.com/Alex3925/company-suggestion-box/logger"
	"github.com/Alex3925/company-suggestion-box/types"
)

const (
	// apiListLimit caps GET /api/suggestions results.
	apiListLimit = 1000
	// AdminListLimit caps the admin view; the dashboard template shows it.
	AdminListLimit = 300
)

// SuggestionService orchestrates validation, identifier generation and
// persistence for submissions, and bounded reads for listings. Each call is
// a single request-scoped operation with no cross-request state.
type SuggestionService struct {
	store store.SuggestionStore
}

// NewSuggestionService creates a new SuggestionService.
func NewSuggestionService(s store.SuggestionStore) *SuggestionService {
	return &SuggestionService{store: s}
}

// Submit validates the payload, assigns an identifier and creation time, and
// persists the suggestion. Validation rejections return a 400-level AppError
// carrying the specific reason and never reach the store; persistence
// failures are logged with detail and surfaced as a generic server error.
func (s *SuggestionService) Submit(ctx context.Context, req types.SuggestionCreate) (string, error) {
	draft, verr := ValidateSubmission(req)
	if verr != nil {
		return "", verr
	}

	draft.ID = ids.New()
	draft.CreatedAt = time.Now().UTC()

	if err := s.store.Insert(ctx, draft); err != nil {
		return "", apperrors.NewDatabaseError(err)
	}

	logger.GetLogger().Infow("Suggestion accepted",
		"id", draft.ID,
		"type", draft.Type,
		"email", logger.MaskEmail(draft.Email),
	)
	return draft.ID, nil
}

// ListRecent returns up to 1000 suggestions, newest first.
func (s *SuggestionService) ListRecent(ctx context.Context) ([]types.Suggestion, error) {
	suggestions, err := s.store.ListRecent(ctx, apiListLimit)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return suggestions, nil
}

// AdminRecent returns up to 300 suggestions for the admin view, newest first.
func (s *SuggestionService) AdminRecent(ctx context.Context) ([]types.Suggestion, error) {
	suggestions, err := s.store.ListRecent(ctx, AdminListLimit)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return suggestions, nil
}
