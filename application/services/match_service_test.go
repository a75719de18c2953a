package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/domain/config"
	"github.com/Emm4L92/DreamsConnect/domain/core/entities"
	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
	"github.com/Emm4L92/DreamsConnect/domain/events"
	"github.com/Emm4L92/DreamsConnect/domain/nlp"
	"github.com/Emm4L92/DreamsConnect/infrastructure/persistence/memory"
)

type capturingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (p *capturingPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturingPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, batch...)
	return nil
}

func (p *capturingPublisher) byType(eventType string) []events.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var result []events.DomainEvent
	for _, e := range p.events {
		if e.GetEventType() == eventType {
			result = append(result, e)
		}
	}
	return result
}

func newTestMatchService(t *testing.T) (*MatchService, *memory.DreamRepository, *memory.MatchRepository, *capturingPublisher) {
	t.Helper()
	cfg := config.DefaultDomainConfig()
	dreams := memory.NewDreamRepository()
	matches := memory.NewMatchRepository(dreams)
	publisher := &capturingPublisher{}
	svc := NewMatchService(dreams, matches, nlp.NewSimilarityScorer(cfg), publisher, cfg, zap.NewNop())
	return svc, dreams, matches, publisher
}

func mustCreateDream(t *testing.T, repo *memory.DreamRepository, authorID, title, body string, tags []string) *entities.Dream {
	t.Helper()
	content, err := valueobjects.NewDreamContent(title, body)
	require.NoError(t, err)
	dream, err := entities.NewDream(authorID, content, "en", tags)
	require.NoError(t, err)
	dream.MarkEventsAsCommitted()
	require.NoError(t, repo.Save(context.Background(), dream))
	return dream
}

func TestMatchService_OnDreamCreated_CreatesSymmetricMatch(t *testing.T) {
	svc, dreams, matches, publisher := newTestMatchService(t)
	ctx := context.Background()

	body := "I was flying over snowy mountains while a storm gathered below me"
	existing := mustCreateDream(t, dreams, "user-a", "Storm flight", body, []string{"flying", "mountain", "storm"})
	created := mustCreateDream(t, dreams, "user-b", "Another storm flight", body, []string{"flying", "mountain", "storm"})

	edges, err := svc.OnDreamCreated(ctx, created.ID())
	require.NoError(t, err)
	require.Len(t, edges, 1)

	edge := edges[0]
	assert.True(t, edge.DreamID().Equals(created.ID()))
	assert.True(t, edge.MatchedDreamID().Equals(existing.ID()))
	assert.GreaterOrEqual(t, edge.Score(), 60)
	assert.LessOrEqual(t, edge.Score(), 100)

	// Both directions must be persisted with the same score
	forward, err := matches.GetByDreamID(ctx, created.ID())
	require.NoError(t, err)
	backward, err := matches.GetByDreamID(ctx, existing.ID())
	require.NoError(t, err)
	require.Len(t, forward, 1)
	require.Len(t, backward, 1)
	assert.Equal(t, forward[0].Score(), backward[0].Score())

	matched := publisher.byType("dreams.matched")
	require.Len(t, matched, 1)
}

func TestMatchService_OnDreamCreated_IsIdempotent(t *testing.T) {
	svc, dreams, matches, _ := newTestMatchService(t)
	ctx := context.Background()

	body := "I was flying over snowy mountains while a storm gathered below me"
	mustCreateDream(t, dreams, "user-a", "Storm flight", body, []string{"flying", "mountain", "storm"})
	created := mustCreateDream(t, dreams, "user-b", "Another storm flight", body, []string{"flying", "mountain", "storm"})

	first, err := svc.OnDreamCreated(ctx, created.ID())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Re-running resolution must not duplicate edges or report new matches
	second, err := svc.OnDreamCreated(ctx, created.ID())
	require.NoError(t, err)
	assert.Empty(t, second)

	forward, err := matches.GetByDreamID(ctx, created.ID())
	require.NoError(t, err)
	assert.Len(t, forward, 1)
}

func TestMatchService_OnDreamCreated_ExcludesSameAuthor(t *testing.T) {
	svc, dreams, matches, _ := newTestMatchService(t)
	ctx := context.Background()

	body := "I was flying over snowy mountains while a storm gathered below me"
	mustCreateDream(t, dreams, "user-a", "Storm flight", body, []string{"flying", "mountain", "storm"})
	created := mustCreateDream(t, dreams, "user-a", "Same dream again", body, []string{"flying", "mountain", "storm"})

	edges, err := svc.OnDreamCreated(ctx, created.ID())
	require.NoError(t, err)
	assert.Empty(t, edges)

	stored, err := matches.GetByDreamID(ctx, created.ID())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestMatchService_OnDreamCreated_RejectsLowOverlap(t *testing.T) {
	svc, dreams, _, _ := newTestMatchService(t)
	ctx := context.Background()

	mustCreateDream(t, dreams, "user-a", "Ocean dive",
		"I was swimming deep in a warm ocean full of glowing fish",
		[]string{"ocean", "swimming", "fish"})
	created := mustCreateDream(t, dreams, "user-b", "Desert walk",
		"I walked across an endless desert under a red sun",
		[]string{"desert", "walking", "sun"})

	edges, err := svc.OnDreamCreated(ctx, created.ID())
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestMatchService_RecalculateAll_EmptyStore(t *testing.T) {
	svc, _, _, publisher := newTestMatchService(t)

	processed, created, err := svc.RecalculateAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, processed)
	assert.Zero(t, created)

	recalc := publisher.byType("matches.recalculated")
	require.Len(t, recalc, 1)
}

func TestMatchService_RecalculateAll_RebuildsEdges(t *testing.T) {
	svc, dreams, matches, _ := newTestMatchService(t)
	ctx := context.Background()

	body := "I was flying over snowy mountains while a storm gathered below me"
	a := mustCreateDream(t, dreams, "user-a", "Storm flight", body, []string{"flying", "mountain", "storm"})
	b := mustCreateDream(t, dreams, "user-b", "Another storm flight", body, []string{"flying", "mountain", "storm"})

	// Seed a stale edge that recalculation must clear and rebuild
	stale, err := entities.NewMatchEdge(a.ID(), b.ID(), 1)
	require.NoError(t, err)
	_, err = matches.SaveIfAbsent(ctx, stale)
	require.NoError(t, err)

	processed, created, err := svc.RecalculateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	assert.Equal(t, 1, created)

	rebuilt, err := matches.GetByDreamID(ctx, a.ID())
	require.NoError(t, err)
	require.Len(t, rebuilt, 1)
	assert.GreaterOrEqual(t, rebuilt[0].Score(), 60)
}

func TestMatchService_RemoveDreamMatches(t *testing.T) {
	svc, dreams, matches, _ := newTestMatchService(t)
	ctx := context.Background()

	body := "I was flying over snowy mountains while a storm gathered below me"
	existing := mustCreateDream(t, dreams, "user-a", "Storm flight", body, []string{"flying", "mountain", "storm"})
	created := mustCreateDream(t, dreams, "user-b", "Another storm flight", body, []string{"flying", "mountain", "storm"})

	_, err := svc.OnDreamCreated(ctx, created.ID())
	require.NoError(t, err)

	require.NoError(t, svc.RemoveDreamMatches(ctx, created.ID()))

	forward, err := matches.GetByDreamID(ctx, created.ID())
	require.NoError(t, err)
	assert.Empty(t, forward)
	backward, err := matches.GetByDreamID(ctx, existing.ID())
	require.NoError(t, err)
	assert.Empty(t, backward)
}
