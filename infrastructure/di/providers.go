package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/commands"
	"github.com/Emm4L92/DreamsConnect/application/commands/bus"
	cmdhandlers "github.com/Emm4L92/DreamsConnect/application/commands/handlers"
	"github.com/Emm4L92/DreamsConnect/application/ports"
	"github.com/Emm4L92/DreamsConnect/application/queries"
	querybus "github.com/Emm4L92/DreamsConnect/application/queries/bus"
	queryhandlers "github.com/Emm4L92/DreamsConnect/application/queries/handlers"
	"github.com/Emm4L92/DreamsConnect/application/services"
	domainconfig "github.com/Emm4L92/DreamsConnect/domain/config"
	"github.com/Emm4L92/DreamsConnect/domain/core/validators"
	"github.com/Emm4L92/DreamsConnect/domain/nlp"
	"github.com/Emm4L92/DreamsConnect/infrastructure/config"
	"github.com/Emm4L92/DreamsConnect/infrastructure/messaging/eventbridge"
	"github.com/Emm4L92/DreamsConnect/infrastructure/persistence/dynamodb"
	"github.com/Emm4L92/DreamsConnect/infrastructure/persistence/memory"
	"github.com/Emm4L92/DreamsConnect/interfaces/http/rest"
	"github.com/Emm4L92/DreamsConnect/interfaces/http/rest/handlers"
	"github.com/Emm4L92/DreamsConnect/interfaces/http/rest/middleware"
	"github.com/Emm4L92/DreamsConnect/pkg/auth"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideDomainConfig loads the matching and tagging thresholds for the
// current environment
func ProvideDomainConfig(cfg *config.Config) *domainconfig.DomainConfig {
	return domainconfig.LoadDomainConfig(cfg.Environment)
}

// ProvideDreamRepository creates a dream repository for the configured
// storage driver
func ProvideDreamRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.DreamRepository {
	if cfg.StorageDriver == "memory" {
		return memory.NewDreamRepository()
	}
	return dynamodb.NewDreamRepository(
		client,
		cfg.DynamoDBTable,
		cfg.IndexName, // GSI1 for author-level queries
		logger,
	)
}

// ProvideMatchRepository creates a match repository for the configured
// storage driver. Match edges do not carry author information, so the
// repository consults the dream repository for ownership lookups.
func ProvideMatchRepository(
	client *awsdynamodb.Client,
	dreamRepo ports.DreamRepository,
	cfg *config.Config,
	logger *zap.Logger,
) ports.MatchRepository {
	if cfg.StorageDriver == "memory" {
		if memRepo, ok := dreamRepo.(*memory.DreamRepository); ok {
			return memory.NewMatchRepository(memRepo)
		}
	}
	return dynamodb.NewMatchRepository(
		client,
		cfg.DynamoDBTable,
		dreamRepo,
		logger,
	)
}

// ProvideEventPublisher creates an event publisher. When no event bus is
// configured events are dropped, which keeps local development working
// without AWS credentials.
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return eventbridge.NewNoopPublisher()
	}
	return eventbridge.NewPublisher(
		client,
		cfg.EventBusName,
		logger,
	)
}

// ProvideTagger creates the tag generation pipeline
func ProvideTagger(domainCfg *domainconfig.DomainConfig, logger *zap.Logger) *nlp.Tagger {
	return nlp.NewTagger(domainCfg, logger)
}

// ProvideSimilarityScorer creates the content similarity scorer
func ProvideSimilarityScorer(domainCfg *domainconfig.DomainConfig) *nlp.SimilarityScorer {
	return nlp.NewSimilarityScorer(domainCfg)
}

// ProvideDreamValidator creates the dream content validator
func ProvideDreamValidator(domainCfg *domainconfig.DomainConfig) *validators.DreamValidator {
	return validators.NewDreamValidator(domainCfg)
}

// ProvideMatchService creates the match resolution service
func ProvideMatchService(
	dreamRepo ports.DreamRepository,
	matchRepo ports.MatchRepository,
	scorer *nlp.SimilarityScorer,
	eventPublisher ports.EventPublisher,
	domainCfg *domainconfig.DomainConfig,
	logger *zap.Logger,
) *services.MatchService {
	return services.NewMatchService(dreamRepo, matchRepo, scorer, eventPublisher, domainCfg, logger)
}

// ProvideTranslationService creates the translation service
func ProvideTranslationService(cache ports.Cache, logger *zap.Logger) *services.TranslationService {
	return services.NewTranslationService(cache, logger)
}

// ProvideCreateDreamHandler creates the create dream command handler.
// With inline matching disabled the handler skips match resolution and the
// dream.created event triggers the match-dream Lambda instead.
func ProvideCreateDreamHandler(
	dreamRepo ports.DreamRepository,
	tagger *nlp.Tagger,
	validator *validators.DreamValidator,
	matchService *services.MatchService,
	eventPublisher ports.EventPublisher,
	cfg *config.Config,
	logger *zap.Logger,
) *cmdhandlers.CreateDreamHandler {
	if !cfg.InlineMatching {
		matchService = nil
	}
	return cmdhandlers.NewCreateDreamHandler(dreamRepo, tagger, validator, matchService, eventPublisher, logger)
}

// ProvideDeleteDreamHandler creates the delete dream command handler
func ProvideDeleteDreamHandler(
	dreamRepo ports.DreamRepository,
	matchService *services.MatchService,
	eventPublisher ports.EventPublisher,
	logger *zap.Logger,
) *cmdhandlers.DeleteDreamHandler {
	return cmdhandlers.NewDeleteDreamHandler(dreamRepo, matchService, eventPublisher, logger)
}

// ProvideRecalculateMatchesHandler creates the recalculate matches handler
func ProvideRecalculateMatchesHandler(matchService *services.MatchService, logger *zap.Logger) *cmdhandlers.RecalculateMatchesHandler {
	return cmdhandlers.NewRecalculateMatchesHandler(matchService, logger)
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	createHandler *cmdhandlers.CreateDreamHandler,
	deleteHandler *cmdhandlers.DeleteDreamHandler,
	recalcHandler *cmdhandlers.RecalculateMatchesHandler,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	commandBus.Register(commands.CreateDreamCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			createCmd, ok := cmd.(commands.CreateDreamCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := createHandler.Handle(ctx, createCmd)
			return err
		},
	})

	commandBus.Register(commands.DeleteDreamCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			deleteCmd, ok := cmd.(commands.DeleteDreamCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return deleteHandler.Handle(ctx, deleteCmd)
		},
	})

	commandBus.Register(commands.RecalculateMatchesCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			recalcCmd, ok := cmd.(commands.RecalculateMatchesCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := recalcHandler.Handle(ctx, recalcCmd)
			return err
		},
	})

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	dreamRepo ports.DreamRepository,
	matchRepo ports.MatchRepository,
	cache ports.Cache,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()
	caching := querybus.NewCachingMiddleware(cache, 30)

	getDreamHandler := queryhandlers.NewGetDreamHandler(dreamRepo)
	queryBus.Register(queries.GetDreamQuery{}, caching.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetDreamQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getDreamHandler.Handle(ctx, getQuery)
		},
	}))

	listDreamsHandler := queryhandlers.NewListDreamsHandler(dreamRepo)
	queryBus.Register(queries.ListDreamsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListDreamsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listDreamsHandler.Handle(ctx, listQuery)
		},
	})

	listMatchesHandler := queryhandlers.NewListMatchesHandler(dreamRepo, matchRepo, logger)
	queryBus.Register(queries.ListMatchesQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListMatchesQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listMatchesHandler.Handle(ctx, listQuery)
		},
	})

	return queryBus
}

// ProvideInMemoryCache creates a simple in-memory cache
// In production, this would be Redis or similar
func ProvideInMemoryCache() ports.Cache {
	return NewInMemoryCache()
}

// ProvideRateLimiters creates the request rate limiters. Lambda deployments
// use DynamoDB-backed limiters so counts survive cold starts; local servers
// keep the cheaper in-memory ones.
func ProvideRateLimiters(client *awsdynamodb.Client, cfg *config.Config) *middleware.RateLimiters {
	if !cfg.EnableRateLimit {
		return &middleware.RateLimiters{}
	}
	if cfg.IsLambda {
		return &middleware.RateLimiters{
			IP:   auth.NewDistributedIPRateLimiter(client, cfg.DynamoDBTable, 100),
			User: auth.NewDistributedUserRateLimiter(client, cfg.DynamoDBTable, 200),
		}
	}
	return &middleware.RateLimiters{
		IP:   auth.NewIPRateLimiter(100),
		User: auth.NewUserRateLimiter(200),
	}
}

// ProvideJWTValidator creates the JWT validator from configuration
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	return auth.NewJWTValidator(auth.JWTConfig{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
	})
}

// ProvideDreamHandler creates the dream HTTP handler
func ProvideDreamHandler(
	createHandler *cmdhandlers.CreateDreamHandler,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *handlers.DreamHandler {
	return handlers.NewDreamHandler(createHandler, commandBus, queryBus, logger)
}

// ProvideMatchHandler creates the match HTTP handler
func ProvideMatchHandler(
	queryBus *querybus.QueryBus,
	recalcHandler *cmdhandlers.RecalculateMatchesHandler,
	logger *zap.Logger,
) *handlers.MatchHandler {
	return handlers.NewMatchHandler(queryBus, recalcHandler, logger)
}

// ProvideTranslationHandler creates the translation HTTP handler
func ProvideTranslationHandler(
	translationService *services.TranslationService,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *handlers.TranslationHandler {
	return handlers.NewTranslationHandler(translationService, queryBus, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	dreamHandler *handlers.DreamHandler,
	matchHandler *handlers.MatchHandler,
	translationHandler *handlers.TranslationHandler,
	jwtValidator *auth.JWTValidator,
	rateLimiters *middleware.RateLimiters,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(cfg, dreamHandler, matchHandler, translationHandler, jwtValidator, rateLimiters, logger)
}
