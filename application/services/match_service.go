package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/ports"
	"github.com/Emm4L92/DreamsConnect/domain/config"
	"github.com/Emm4L92/DreamsConnect/domain/core/entities"
	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
	"github.com/Emm4L92/DreamsConnect/domain/events"
	"github.com/Emm4L92/DreamsConnect/domain/nlp"
)

// MatchService resolves matches for dreams. It scans the existing dreams,
// blends tag overlap with raw-text similarity and persists accepted pairs
// as symmetric match edges. Matching is best-effort: per-candidate failures
// are logged and skipped, never aborting the whole scan.
type MatchService struct {
	dreamRepo ports.DreamRepository
	matchRepo ports.MatchRepository
	scorer    *nlp.SimilarityScorer
	publisher ports.EventPublisher
	cfg       *config.DomainConfig
	logger    *zap.Logger
}

// NewMatchService creates a new match service
func NewMatchService(
	dreamRepo ports.DreamRepository,
	matchRepo ports.MatchRepository,
	scorer *nlp.SimilarityScorer,
	publisher ports.EventPublisher,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *MatchService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchService{
		dreamRepo: dreamRepo,
		matchRepo: matchRepo,
		scorer:    scorer,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// OnDreamCreated scans all other dreams for matches with the newly created
// dream and persists both directions of every accepted pair. Returns the
// edges written in the new-to-other direction.
func (s *MatchService) OnDreamCreated(ctx context.Context, dreamID valueobjects.DreamID) ([]*entities.MatchEdge, error) {
	dream, err := s.dreamRepo.GetByID(ctx, dreamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dream %s: %w", dreamID, err)
	}

	tags := dream.Tags()
	if len(tags) == 0 {
		s.logger.Info("dream has no tags, skipping match resolution",
			zap.String("dream_id", dreamID.String()),
		)
		return nil, nil
	}

	candidates, err := s.dreamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate dreams: %w", err)
	}

	// Minimum overlap is 30% of the new dream's tags, a deliberately low
	// bar since tag sets are small
	minOverlap := int(math.Ceil(s.cfg.TagOverlapRatio * float64(len(tags))))

	var created []*entities.MatchEdge
	for _, other := range candidates {
		if other.ID().Equals(dream.ID()) {
			continue
		}
		if other.AuthorID() == dream.AuthorID() {
			continue
		}

		edge, ok := s.evaluatePair(dream, other, minOverlap)
		if !ok {
			continue
		}

		inserted, err := s.persistPair(ctx, edge)
		if err != nil {
			// Best-effort: a failing candidate is skipped, not fatal
			s.logger.Warn("failed to persist match pair",
				zap.String("dream_id", edge.DreamID().String()),
				zap.String("matched_dream_id", edge.MatchedDreamID().String()),
				zap.Error(err),
			)
			continue
		}
		if inserted {
			created = append(created, edge)
			s.publishMatched(ctx, edge)
		}
	}

	s.logger.Info("match resolution completed",
		zap.String("dream_id", dreamID.String()),
		zap.Int("candidates", len(candidates)),
		zap.Int("matches_created", len(created)),
	)
	return created, nil
}

// evaluatePair applies the threshold cascade to one candidate pair
func (s *MatchService) evaluatePair(dream, other *entities.Dream, minOverlap int) (*entities.MatchEdge, bool) {
	tags := dream.Tags()

	matchCount := dream.TagOverlap(other.Tags())
	if matchCount < minOverlap {
		return nil, false
	}

	tagScore := float64(matchCount) / float64(len(tags)) * 100
	if tagScore < s.cfg.MinTagScore {
		return nil, false
	}

	contentScore := s.scorer.Score(dream.Content().Body(), other.Content().Body())

	// The final bar sits above the tag bar on purpose: tag-only
	// coincidences should not survive
	finalScore := tagScore*s.cfg.TagScoreWeight + contentScore*s.cfg.ContentWeight
	if finalScore < s.cfg.MinFinalScore {
		return nil, false
	}

	edge, err := entities.NewMatchEdge(dream.ID(), other.ID(), finalScore)
	if err != nil {
		s.logger.Warn("rejected invalid match edge",
			zap.String("dream_id", dream.ID().String()),
			zap.String("matched_dream_id", other.ID().String()),
			zap.Error(err),
		)
		return nil, false
	}
	return edge, true
}

// persistPair writes both directions of an accepted match. Each insert is
// idempotent on the ordered pair, so a repeated resolution is a no-op.
func (s *MatchService) persistPair(ctx context.Context, edge *entities.MatchEdge) (bool, error) {
	inserted, err := s.matchRepo.SaveIfAbsent(ctx, edge)
	if err != nil {
		return false, err
	}
	if _, err := s.matchRepo.SaveIfAbsent(ctx, edge.Reverse()); err != nil {
		return false, err
	}
	return inserted, nil
}

func (s *MatchService) publishMatched(ctx context.Context, edge *entities.MatchEdge) {
	if s.publisher == nil {
		return
	}
	event := events.NewDreamsMatched(edge.DreamID(), edge.MatchedDreamID(), edge.Score(), edge.CreatedAt())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish match event",
			zap.String("dream_id", edge.DreamID().String()),
			zap.Error(err),
		)
	}
}

// RecalculateAll clears every match edge and re-runs resolution for each
// dream in turn. Administrative maintenance, O(N²) in dream count.
func (s *MatchService) RecalculateAll(ctx context.Context) (int, int, error) {
	if err := s.matchRepo.DeleteAll(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to clear match edges: %w", err)
	}

	dreams, err := s.dreamRepo.GetAll(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load dreams: %w", err)
	}

	totalCreated := 0
	for _, dream := range dreams {
		created, err := s.OnDreamCreated(ctx, dream.ID())
		if err != nil {
			s.logger.Warn("recalculation skipped a dream",
				zap.String("dream_id", dream.ID().String()),
				zap.Error(err),
			)
			continue
		}
		totalCreated += len(created)
	}

	if s.publisher != nil {
		event := events.NewMatchesRecalculated(len(dreams), totalCreated, time.Now())
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish recalculation event", zap.Error(err))
		}
	}

	s.logger.Info("full match recalculation completed",
		zap.Int("dreams_processed", len(dreams)),
		zap.Int("matches_created", totalCreated),
	)
	return len(dreams), totalCreated, nil
}

// RemoveDreamMatches deletes all edges touching a dream, both directions
func (s *MatchService) RemoveDreamMatches(ctx context.Context, dreamID valueobjects.DreamID) error {
	return s.matchRepo.DeleteByDreamID(ctx, dreamID)
}
