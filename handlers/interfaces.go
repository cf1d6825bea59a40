// Package handlers contains the gin HTTP handlers for the suggestion API,
// the admin view and the health endpoint.
package handlers

import (
	"context"

	"github.com/Alex3925/company-suggestion-box/types"
)

// SuggestionService is the service surface the handlers depend on.
type SuggestionService interface {
	Submit(ctx context.Context, req types.SuggestionCreate) (string, error)
	ListRecent(ctx context.Context) ([]types.Suggestion, error)
	AdminRecent(ctx context.Context) ([]types.Suggestion, error)
}
