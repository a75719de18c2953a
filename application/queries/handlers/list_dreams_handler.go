package handlers

import (
	"context"
	"fmt"

	"github.com/Emm4L92/DreamsConnect/application/ports"
	"github.com/Emm4L92/DreamsConnect/application/queries"
)

// ListDreamsHandler handles filtered dream listing
type ListDreamsHandler struct {
	dreamRepo ports.DreamRepository
}

// NewListDreamsHandler creates a new list dreams handler
func NewListDreamsHandler(dreamRepo ports.DreamRepository) *ListDreamsHandler {
	return &ListDreamsHandler{dreamRepo: dreamRepo}
}

// Handle executes the list dreams query
func (h *ListDreamsHandler) Handle(ctx context.Context, query queries.ListDreamsQuery) (*queries.ListDreamsResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	limit := query.Limit
	if limit == 0 {
		limit = queries.DefaultListLimit
	}

	dreams, err := h.dreamRepo.Search(ctx, ports.SearchCriteria{
		AuthorID:  query.AuthorID,
		Language:  query.Language,
		Tag:       query.Tag,
		Query:     query.Search,
		Limit:     limit,
		Offset:    query.Offset,
		OrderDesc: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search dreams: %w", err)
	}

	results := make([]queries.DreamResult, 0, len(dreams))
	for _, dream := range dreams {
		results = append(results, toDreamResult(dream))
	}

	return &queries.ListDreamsResult{
		Dreams: results,
		Total:  len(results),
		Limit:  limit,
		Offset: query.Offset,
	}, nil
}
