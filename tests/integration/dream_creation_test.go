package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/commands"
	cmdhandlers "github.com/Emm4L92/DreamsConnect/application/commands/handlers"
	"github.com/Emm4L92/DreamsConnect/application/queries"
	queryhandlers "github.com/Emm4L92/DreamsConnect/application/queries/handlers"
	"github.com/Emm4L92/DreamsConnect/application/services"
	"github.com/Emm4L92/DreamsConnect/domain/config"
	"github.com/Emm4L92/DreamsConnect/domain/core/validators"
	"github.com/Emm4L92/DreamsConnect/domain/nlp"
	"github.com/Emm4L92/DreamsConnect/infrastructure/messaging/eventbridge"
	"github.com/Emm4L92/DreamsConnect/infrastructure/persistence/memory"
)

// testEnv wires the full creation pipeline against in-memory storage
type testEnv struct {
	dreams        *memory.DreamRepository
	matches       *memory.MatchRepository
	createHandler *cmdhandlers.CreateDreamHandler
	deleteHandler *cmdhandlers.DeleteDreamHandler
	getDream      *queryhandlers.GetDreamHandler
	listMatches   *queryhandlers.ListMatchesHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.DefaultDomainConfig()
	logger := zap.NewNop()
	publisher := eventbridge.NewNoopPublisher()

	dreams := memory.NewDreamRepository()
	matches := memory.NewMatchRepository(dreams)

	scorer := nlp.NewSimilarityScorer(cfg)
	tagger := nlp.NewTagger(cfg, logger)
	validator := validators.NewDreamValidator(cfg)

	matchService := services.NewMatchService(dreams, matches, scorer, publisher, cfg, logger)

	return &testEnv{
		dreams:        dreams,
		matches:       matches,
		createHandler: cmdhandlers.NewCreateDreamHandler(dreams, tagger, validator, matchService, publisher, logger),
		deleteHandler: cmdhandlers.NewDeleteDreamHandler(dreams, matchService, publisher, logger),
		getDream:      queryhandlers.NewGetDreamHandler(dreams),
		listMatches:   queryhandlers.NewListMatchesHandler(dreams, matches, logger),
	}
}

const dreamBody = "I was flying over snowy mountains while a storm gathered below me. " +
	"The wind carried me higher above the white peaks until the storm swallowed the valley."

func TestDreamCreation_EndToEnd(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dream, err := env.createHandler.Handle(ctx, commands.CreateDreamCommand{
		AuthorID: "user-1",
		Title:    "Flight over the mountains",
		Content:  dreamBody,
		Language: "en",
	})
	require.NoError(t, err)
	require.NotNil(t, dream)

	assert.NotEmpty(t, dream.Tags(), "tags should be generated from content")
	assert.Equal(t, "user-1", dream.AuthorID())

	dreamResult, err := env.getDream.Handle(ctx, queries.GetDreamQuery{DreamID: dream.ID().String()})
	require.NoError(t, err)
	assert.Equal(t, "Flight over the mountains", dreamResult.Title)
	assert.Equal(t, dream.Tags(), dreamResult.Tags)
}

func TestDreamCreation_MatchesSimilarDream(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.createHandler.Handle(ctx, commands.CreateDreamCommand{
		AuthorID: "user-1",
		Title:    "Flight over the mountains",
		Content:  dreamBody,
		Language: "en",
	})
	require.NoError(t, err)

	second, err := env.createHandler.Handle(ctx, commands.CreateDreamCommand{
		AuthorID: "user-2",
		Title:    "Flight over the mountains",
		Content:  dreamBody,
		Language: "en",
	})
	require.NoError(t, err)

	listResult, err := env.listMatches.Handle(ctx, queries.ListMatchesQuery{DreamID: second.ID().String()})
	require.NoError(t, err)
	require.Equal(t, 1, listResult.Total)

	match := listResult.Matches[0]
	assert.Equal(t, first.ID().String(), match.MatchedDreamID)
	assert.GreaterOrEqual(t, match.Score, 60)
	require.NotNil(t, match.MatchedDream)
	assert.Equal(t, "user-1", match.MatchedDream.AuthorID)

	// Edge is stored in both directions
	reverseResult, err := env.listMatches.Handle(ctx, queries.ListMatchesQuery{DreamID: first.ID().String()})
	require.NoError(t, err)
	require.Equal(t, 1, reverseResult.Total)
	assert.Equal(t, second.ID().String(), reverseResult.Matches[0].MatchedDreamID)
}

func TestDreamDeletion_RemovesDreamAndMatches(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.createHandler.Handle(ctx, commands.CreateDreamCommand{
		AuthorID: "user-1",
		Title:    "Flight over the mountains",
		Content:  dreamBody,
		Language: "en",
	})
	require.NoError(t, err)

	second, err := env.createHandler.Handle(ctx, commands.CreateDreamCommand{
		AuthorID: "user-2",
		Title:    "Flight over the mountains",
		Content:  dreamBody,
		Language: "en",
	})
	require.NoError(t, err)

	err = env.deleteHandler.Handle(ctx, commands.DeleteDreamCommand{
		DreamID: first.ID().String(),
		UserID:  "user-1",
	})
	require.NoError(t, err)

	_, err = env.getDream.Handle(ctx, queries.GetDreamQuery{DreamID: first.ID().String()})
	assert.Error(t, err)

	// The surviving dream no longer points at the deleted one
	listResult, err := env.listMatches.Handle(ctx, queries.ListMatchesQuery{DreamID: second.ID().String()})
	require.NoError(t, err)
	assert.Equal(t, 0, listResult.Total)
}

func TestDreamDeletion_RejectsForeignDream(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dream, err := env.createHandler.Handle(ctx, commands.CreateDreamCommand{
		AuthorID: "user-1",
		Title:    "Flight over the mountains",
		Content:  dreamBody,
		Language: "en",
	})
	require.NoError(t, err)

	err = env.deleteHandler.Handle(ctx, commands.DeleteDreamCommand{
		DreamID: dream.ID().String(),
		UserID:  "user-2",
	})
	require.Error(t, err)

	// Dream is untouched
	_, err = env.getDream.Handle(ctx, queries.GetDreamQuery{DreamID: dream.ID().String()})
	assert.NoError(t, err)
}
