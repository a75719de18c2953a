package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/commands"
	"github.com/Emm4L92/DreamsConnect/application/ports"
	"github.com/Emm4L92/DreamsConnect/application/services"
	"github.com/Emm4L92/DreamsConnect/domain/core/entities"
	"github.com/Emm4L92/DreamsConnect/domain/core/validators"
	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
	"github.com/Emm4L92/DreamsConnect/domain/nlp"
)

// CreateDreamHandler orchestrates dream creation: validation, tag
// generation, persistence, synchronous match resolution and event
// publication. Match resolution runs after the dream is durably saved so
// a resolution failure never loses the narrative itself.
type CreateDreamHandler struct {
	dreamRepo      ports.DreamRepository
	tagger         *nlp.Tagger
	validator      *validators.DreamValidator
	matchService   *services.MatchService
	eventPublisher ports.EventPublisher
	logger         *zap.Logger
}

// NewCreateDreamHandler creates a new handler instance
func NewCreateDreamHandler(
	dreamRepo ports.DreamRepository,
	tagger *nlp.Tagger,
	validator *validators.DreamValidator,
	matchService *services.MatchService,
	eventPublisher ports.EventPublisher,
	logger *zap.Logger,
) *CreateDreamHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CreateDreamHandler{
		dreamRepo:      dreamRepo,
		tagger:         tagger,
		validator:      validator,
		matchService:   matchService,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Handle executes the create dream command
func (h *CreateDreamHandler) Handle(ctx context.Context, cmd commands.CreateDreamCommand) (*entities.Dream, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	content, err := valueobjects.NewDreamContent(cmd.Title, cmd.Content)
	if err != nil {
		return nil, err
	}

	if err := h.validator.ValidateDreamContent(&content); err != nil {
		return nil, err
	}

	// Tags come from the extraction pipeline, computed once at creation.
	// The tagger never returns an empty list, so validation failures here
	// indicate a pipeline bug rather than bad input.
	tags := h.tagger.GenerateTags(content.Combined(), cmd.Language)
	if err := h.validator.ValidateTags(tags); err != nil {
		h.logger.Warn("generated tags failed validation",
			zap.Strings("tags", tags),
			zap.Error(err),
		)
		return nil, err
	}

	dream, err := entities.NewDream(cmd.AuthorID, content, cmd.Language, tags)
	if err != nil {
		return nil, fmt.Errorf("failed to create dream: %w", err)
	}

	if err := h.dreamRepo.Save(ctx, dream); err != nil {
		return nil, fmt.Errorf("failed to save dream: %w", err)
	}

	// Publish creation events after the save succeeds
	if events := dream.GetUncommittedEvents(); len(events) > 0 && h.eventPublisher != nil {
		if err := h.eventPublisher.PublishBatch(ctx, events); err != nil {
			h.logger.Error("failed to publish dream events",
				zap.String("dream_id", dream.ID().String()),
				zap.Int("event_count", len(events)),
				zap.Error(err),
			)
		} else {
			dream.MarkEventsAsCommitted()
		}
	}

	// Best-effort: the dream is already durable, matches can be rebuilt
	if h.matchService != nil {
		if _, err := h.matchService.OnDreamCreated(ctx, dream.ID()); err != nil {
			h.logger.Error("match resolution failed for new dream",
				zap.String("dream_id", dream.ID().String()),
				zap.Error(err),
			)
		}
	}

	h.logger.Info("dream created",
		zap.String("dream_id", dream.ID().String()),
		zap.String("author_id", cmd.AuthorID),
		zap.String("language", string(dream.Language())),
		zap.Strings("tags", tags),
	)
	return dream, nil
}
