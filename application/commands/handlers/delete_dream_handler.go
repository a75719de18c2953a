package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/commands"
	"github.com/Emm4L92/DreamsConnect/application/ports"
	"github.com/Emm4L92/DreamsConnect/application/services"
	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
	"github.com/Emm4L92/DreamsConnect/pkg/errors"
)

// DeleteDreamHandler handles dream deletion commands
type DeleteDreamHandler struct {
	dreamRepo      ports.DreamRepository
	matchService   *services.MatchService
	eventPublisher ports.EventPublisher
	logger         *zap.Logger
}

// NewDeleteDreamHandler creates a new delete dream handler
func NewDeleteDreamHandler(
	dreamRepo ports.DreamRepository,
	matchService *services.MatchService,
	eventPublisher ports.EventPublisher,
	logger *zap.Logger,
) *DeleteDreamHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeleteDreamHandler{
		dreamRepo:      dreamRepo,
		matchService:   matchService,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Handle executes the delete dream command
func (h *DeleteDreamHandler) Handle(ctx context.Context, cmd commands.DeleteDreamCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	dreamID, err := valueobjects.NewDreamIDFromString(cmd.DreamID)
	if err != nil {
		return fmt.Errorf("invalid dream ID: %w", err)
	}

	dream, err := h.dreamRepo.GetByID(ctx, dreamID)
	if err != nil {
		return err
	}

	if dream.AuthorID() != cmd.UserID {
		return errors.ErrUserNotAuthorized.
			WithDetail("dream_id", cmd.DreamID).
			WithDetail("user_id", cmd.UserID)
	}

	// Remove matches first so the match list never references a dream
	// that has already disappeared
	if err := h.matchService.RemoveDreamMatches(ctx, dreamID); err != nil {
		h.logger.Error("failed to delete matches for dream",
			zap.String("dream_id", cmd.DreamID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to delete dream matches: %w", err)
	}

	if err := h.dreamRepo.Delete(ctx, dreamID); err != nil {
		return fmt.Errorf("failed to delete dream: %w", err)
	}

	dream.MarkDeleted()
	if h.eventPublisher != nil {
		if err := h.eventPublisher.PublishBatch(ctx, dream.GetUncommittedEvents()); err != nil {
			h.logger.Warn("failed to publish deletion event",
				zap.String("dream_id", cmd.DreamID),
				zap.Error(err),
			)
		} else {
			dream.MarkEventsAsCommitted()
		}
	}

	h.logger.Info("dream deleted",
		zap.String("dream_id", cmd.DreamID),
		zap.String("user_id", cmd.UserID),
	)
	return nil
}
