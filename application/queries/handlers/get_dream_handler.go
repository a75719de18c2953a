package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/Emm4L92/DreamsConnect/application/ports"
	"github.com/Emm4L92/DreamsConnect/application/queries"
	"github.com/Emm4L92/DreamsConnect/domain/core/entities"
	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
)

// GetDreamHandler handles single dream lookups
type GetDreamHandler struct {
	dreamRepo ports.DreamRepository
}

// NewGetDreamHandler creates a new get dream handler
func NewGetDreamHandler(dreamRepo ports.DreamRepository) *GetDreamHandler {
	return &GetDreamHandler{dreamRepo: dreamRepo}
}

// Handle executes the get dream query
func (h *GetDreamHandler) Handle(ctx context.Context, query queries.GetDreamQuery) (*queries.DreamResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	dreamID, err := valueobjects.NewDreamIDFromString(query.DreamID)
	if err != nil {
		return nil, fmt.Errorf("invalid dream ID: %w", err)
	}

	dream, err := h.dreamRepo.GetByID(ctx, dreamID)
	if err != nil {
		return nil, err
	}

	result := toDreamResult(dream)
	return &result, nil
}

// toDreamResult maps a dream aggregate to its query DTO
func toDreamResult(dream *entities.Dream) queries.DreamResult {
	return queries.DreamResult{
		ID:        dream.ID().String(),
		AuthorID:  dream.AuthorID(),
		Title:     dream.Content().Title(),
		Content:   dream.Content().Body(),
		Language:  string(dream.Language()),
		Tags:      dream.Tags(),
		CreatedAt: dream.CreatedAt().UTC().Format(time.RFC3339),
	}
}
