package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/commands"
	cmdhandlers "github.com/Emm4L92/DreamsConnect/application/commands/handlers"
	"github.com/Emm4L92/DreamsConnect/application/queries"
	querybus "github.com/Emm4L92/DreamsConnect/application/queries/bus"
	"github.com/Emm4L92/DreamsConnect/pkg/auth"
)

// MatchHandler handles match-related HTTP requests
type MatchHandler struct {
	queryBus      *querybus.QueryBus
	recalcHandler *cmdhandlers.RecalculateMatchesHandler
	logger        *zap.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(
	queryBus *querybus.QueryBus,
	recalcHandler *cmdhandlers.RecalculateMatchesHandler,
	logger *zap.Logger,
) *MatchHandler {
	return &MatchHandler{
		queryBus:      queryBus,
		recalcHandler: recalcHandler,
		logger:        logger,
	}
}

// ListMatches handles GET /matches, returning every match for the
// authenticated user's dreams
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListMatchesQuery{AuthorID: userCtx.UserID})
	if err != nil {
		h.logger.Error("Failed to list matches",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "Failed to list matches")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// RecalculateMatches handles POST /matches/recalculate. This wipes and
// rebuilds the whole match graph, so it is an administrative operation.
func (h *MatchHandler) RecalculateMatches(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := h.recalcHandler.Handle(r.Context(), commands.RecalculateMatchesCommand{
		RequestedBy: userCtx.UserID,
	})
	if err != nil {
		h.logger.Error("Failed to recalculate matches",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "Failed to recalculate matches")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

func (h *MatchHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *MatchHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
