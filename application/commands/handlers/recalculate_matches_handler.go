package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/commands"
	"github.com/Emm4L92/DreamsConnect/application/services"
)

// RecalculateMatchesHandler handles the full match graph rebuild
type RecalculateMatchesHandler struct {
	matchService *services.MatchService
	logger       *zap.Logger
}

// NewRecalculateMatchesHandler creates a new recalculation handler
func NewRecalculateMatchesHandler(matchService *services.MatchService, logger *zap.Logger) *RecalculateMatchesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecalculateMatchesHandler{
		matchService: matchService,
		logger:       logger,
	}
}

// Handle executes the recalculation command
func (h *RecalculateMatchesHandler) Handle(ctx context.Context, cmd commands.RecalculateMatchesCommand) (*commands.RecalculateMatchesResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	h.logger.Info("match recalculation requested", zap.String("requested_by", cmd.RequestedBy))

	processed, created, err := h.matchService.RecalculateAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("recalculation failed: %w", err)
	}

	return &commands.RecalculateMatchesResult{
		DreamsProcessed: processed,
		MatchesCreated:  created,
	}, nil
}
