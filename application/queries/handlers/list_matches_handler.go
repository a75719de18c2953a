package handlers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/ports"
	"github.com/Emm4L92/DreamsConnect/application/queries"
	"github.com/Emm4L92/DreamsConnect/domain/core/entities"
	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
)

// ListMatchesHandler handles match listing for a dream or an author.
// Each edge is enriched with the matched dream so clients can render the
// list without a follow-up lookup per row.
type ListMatchesHandler struct {
	dreamRepo ports.DreamRepository
	matchRepo ports.MatchRepository
	logger    *zap.Logger
}

// NewListMatchesHandler creates a new list matches handler
func NewListMatchesHandler(dreamRepo ports.DreamRepository, matchRepo ports.MatchRepository, logger *zap.Logger) *ListMatchesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListMatchesHandler{
		dreamRepo: dreamRepo,
		matchRepo: matchRepo,
		logger:    logger,
	}
}

// Handle executes the list matches query
func (h *ListMatchesHandler) Handle(ctx context.Context, query queries.ListMatchesQuery) (*queries.ListMatchesResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	var edges []*entities.MatchEdge
	var err error

	if query.DreamID != "" {
		var dreamID valueobjects.DreamID
		dreamID, err = valueobjects.NewDreamIDFromString(query.DreamID)
		if err != nil {
			return nil, fmt.Errorf("invalid dream ID: %w", err)
		}
		edges, err = h.matchRepo.GetByDreamID(ctx, dreamID)
	} else {
		edges, err = h.matchRepo.GetByAuthorID(ctx, query.AuthorID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}

	results := make([]queries.MatchResult, 0, len(edges))
	for _, edge := range edges {
		result := queries.MatchResult{
			DreamID:        edge.DreamID().String(),
			MatchedDreamID: edge.MatchedDreamID().String(),
			Score:          edge.Score(),
			CreatedAt:      edge.CreatedAt().UTC().Format(time.RFC3339),
		}

		// A missing matched dream means it was deleted after the edge was
		// read; return the bare edge rather than failing the page
		matched, lookupErr := h.dreamRepo.GetByID(ctx, edge.MatchedDreamID())
		if lookupErr != nil {
			h.logger.Debug("matched dream not found during enrichment",
				zap.String("matched_dream_id", edge.MatchedDreamID().String()),
				zap.Error(lookupErr),
			)
		} else {
			dto := toDreamResult(matched)
			result.MatchedDream = &dto
		}

		results = append(results, result)
	}

	return &queries.ListMatchesResult{
		Matches: results,
		Total:   len(results),
	}, nil
}
