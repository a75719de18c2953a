//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/commands/bus"
	"github.com/Emm4L92/DreamsConnect/application/ports"
	querybus "github.com/Emm4L92/DreamsConnect/application/queries/bus"
	"github.com/Emm4L92/DreamsConnect/application/services"
	"github.com/Emm4L92/DreamsConnect/infrastructure/config"
	"github.com/Emm4L92/DreamsConnect/interfaces/http/rest"
	"github.com/Emm4L92/DreamsConnect/pkg/auth"
)

// Container holds all application dependencies
type Container struct {
	Config             *config.Config
	Logger             *zap.Logger
	DreamRepo          ports.DreamRepository
	MatchRepo          ports.MatchRepository
	EventPublisher     ports.EventPublisher
	MatchService       *services.MatchService
	TranslationService *services.TranslationService
	CommandBus         *bus.CommandBus
	QueryBus           *querybus.QueryBus
	Cache              ports.Cache
	JWTValidator       *auth.JWTValidator
	Router             *rest.Router
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideDomainConfig,
	ProvideDreamRepository,
	ProvideMatchRepository,
	ProvideEventPublisher,
	ProvideTagger,
	ProvideSimilarityScorer,
	ProvideDreamValidator,
	ProvideMatchService,
	ProvideTranslationService,
	ProvideCreateDreamHandler,
	ProvideDeleteDreamHandler,
	ProvideRecalculateMatchesHandler,
	ProvideCommandBus,
	ProvideQueryBus,
	ProvideInMemoryCache,
	ProvideRateLimiters,
	ProvideJWTValidator,
	ProvideDreamHandler,
	ProvideMatchHandler,
	ProvideTranslationHandler,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
