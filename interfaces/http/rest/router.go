package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/infrastructure/config"
	"github.com/Emm4L92/DreamsConnect/interfaces/http/rest/handlers"
	"github.com/Emm4L92/DreamsConnect/interfaces/http/rest/middleware"
	"github.com/Emm4L92/DreamsConnect/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	config             *config.Config
	dreamHandler       *handlers.DreamHandler
	matchHandler       *handlers.MatchHandler
	translationHandler *handlers.TranslationHandler
	jwtValidator       *auth.JWTValidator
	rateLimiters       *middleware.RateLimiters
	logger             *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	dreamHandler *handlers.DreamHandler,
	matchHandler *handlers.MatchHandler,
	translationHandler *handlers.TranslationHandler,
	jwtValidator *auth.JWTValidator,
	rateLimiters *middleware.RateLimiters,
	logger *zap.Logger,
) *Router {
	return &Router{
		config:             cfg,
		dreamHandler:       dreamHandler,
		matchHandler:       matchHandler,
		translationHandler: translationHandler,
		jwtValidator:       jwtValidator,
		rateLimiters:       rateLimiters,
		logger:             logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.dreamsconnect.app"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.jwtValidator, rt.rateLimiters, rt.logger))

		// Dream endpoints
		r.Route("/dreams", func(r chi.Router) {
			r.Post("/", rt.dreamHandler.CreateDream)
			r.Get("/", rt.dreamHandler.ListDreams)
			r.Get("/{dreamID}", rt.dreamHandler.GetDream)
			r.Delete("/{dreamID}", rt.dreamHandler.DeleteDream)
			r.Get("/{dreamID}/matches", rt.dreamHandler.ListDreamMatches)
			r.Get("/{dreamID}/translate", rt.translationHandler.TranslateDream)
		})

		// Match endpoints
		r.Route("/matches", func(r chi.Router) {
			r.Get("/", rt.matchHandler.ListMatches)
			r.Post("/recalculate", rt.matchHandler.RecalculateMatches)
		})

		// Translation endpoints
		r.Route("/translate", func(r chi.Router) {
			r.Post("/", rt.translationHandler.Translate)
			r.Get("/languages", rt.translationHandler.SupportedLanguages)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
