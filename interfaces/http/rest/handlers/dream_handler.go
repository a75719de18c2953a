package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/commands"
	"github.com/Emm4L92/DreamsConnect/application/commands/bus"
	cmdhandlers "github.com/Emm4L92/DreamsConnect/application/commands/handlers"
	"github.com/Emm4L92/DreamsConnect/application/queries"
	querybus "github.com/Emm4L92/DreamsConnect/application/queries/bus"
	"github.com/Emm4L92/DreamsConnect/pkg/auth"
	"github.com/Emm4L92/DreamsConnect/pkg/utils"
)

// DreamHandler handles dream-related HTTP requests
type DreamHandler struct {
	createHandler *cmdhandlers.CreateDreamHandler
	commandBus    *bus.CommandBus
	queryBus      *querybus.QueryBus
	logger        *zap.Logger
}

// NewDreamHandler creates a new dream handler
func NewDreamHandler(
	createHandler *cmdhandlers.CreateDreamHandler,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *DreamHandler {
	return &DreamHandler{
		createHandler: createHandler,
		commandBus:    commandBus,
		queryBus:      queryBus,
		logger:        logger,
	}
}

// CreateDreamRequest represents the request body for posting a dream.
// Tags are not accepted from the client; they are generated server-side.
type CreateDreamRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Content  string `json:"content" validate:"required,max=20000"`
	Language string `json:"language,omitempty" validate:"omitempty,max=10"`
}

// CreateDreamResponse represents the response for posting a dream
type CreateDreamResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Language  string   `json:"language"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
}

// CreateDream handles POST /dreams
func (h *DreamHandler) CreateDream(w http.ResponseWriter, r *http.Request) {
	var req CreateDreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cmd := commands.CreateDreamCommand{
		AuthorID: userCtx.UserID,
		Title:    req.Title,
		Content:  req.Content,
		Language: req.Language,
	}

	dream, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.logger.Error("Failed to create dream",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		if strings.Contains(err.Error(), "validation") || strings.Contains(err.Error(), "invalid command") {
			h.respondError(w, http.StatusBadRequest, err.Error())
		} else {
			h.respondError(w, http.StatusInternalServerError, "Failed to create dream")
		}
		return
	}

	h.respondJSON(w, http.StatusCreated, CreateDreamResponse{
		ID:        dream.ID().String(),
		Title:     dream.Content().Title(),
		Language:  string(dream.Language()),
		Tags:      dream.Tags(),
		CreatedAt: dream.CreatedAt().UTC().Format(time.RFC3339),
	})
}

// GetDream handles GET /dreams/{dreamID}
func (h *DreamHandler) GetDream(w http.ResponseWriter, r *http.Request) {
	dreamID := chi.URLParam(r, "dreamID")
	if dreamID == "" {
		h.respondError(w, http.StatusBadRequest, "Dream ID is required")
		return
	}

	if _, err := uuid.Parse(dreamID); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid dream ID format")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetDreamQuery{DreamID: dreamID})
	if err != nil {
		h.logger.Error("Failed to get dream",
			zap.String("dreamID", dreamID),
			zap.Error(err),
		)
		if strings.Contains(err.Error(), "not exist") || strings.Contains(err.Error(), "NOT_FOUND") {
			h.respondError(w, http.StatusNotFound, "Dream not found")
		} else {
			h.respondError(w, http.StatusInternalServerError, "Failed to retrieve dream")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// ListDreams handles GET /dreams
func (h *DreamHandler) ListDreams(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.GetUserFromContext(r.Context()); err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	query := queries.ListDreamsQuery{
		AuthorID: r.URL.Query().Get("author"),
		Language: r.URL.Query().Get("language"),
		Tag:      r.URL.Query().Get("tag"),
		Search:   r.URL.Query().Get("q"),
		Limit:    limit,
		Offset:   offset,
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to list dreams", zap.Error(err))
		if strings.Contains(err.Error(), "validation") {
			h.respondError(w, http.StatusBadRequest, err.Error())
		} else {
			h.respondError(w, http.StatusInternalServerError, "Failed to list dreams")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// DeleteDream handles DELETE /dreams/{dreamID}
func (h *DreamHandler) DeleteDream(w http.ResponseWriter, r *http.Request) {
	dreamID := chi.URLParam(r, "dreamID")
	if dreamID == "" {
		h.respondError(w, http.StatusBadRequest, "Dream ID is required")
		return
	}

	if _, err := uuid.Parse(dreamID); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid dream ID format")
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cmd := commands.DeleteDreamCommand{
		DreamID: dreamID,
		UserID:  userCtx.UserID,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to delete dream",
			zap.String("dreamID", dreamID),
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		switch {
		case strings.Contains(err.Error(), "not exist") || strings.Contains(err.Error(), "NOT_FOUND"):
			h.respondError(w, http.StatusNotFound, "Dream not found")
		case strings.Contains(err.Error(), "not authorized") || strings.Contains(err.Error(), "AUTHORIZATION"):
			h.respondError(w, http.StatusForbidden, "Dream belongs to another user")
		default:
			h.respondError(w, http.StatusInternalServerError, "Failed to delete dream")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDreamMatches handles GET /dreams/{dreamID}/matches
func (h *DreamHandler) ListDreamMatches(w http.ResponseWriter, r *http.Request) {
	dreamID := chi.URLParam(r, "dreamID")
	if dreamID == "" {
		h.respondError(w, http.StatusBadRequest, "Dream ID is required")
		return
	}

	if _, err := uuid.Parse(dreamID); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid dream ID format")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListMatchesQuery{DreamID: dreamID})
	if err != nil {
		h.logger.Error("Failed to list matches for dream",
			zap.String("dreamID", dreamID),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "Failed to list matches")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// Helper methods

func (h *DreamHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *DreamHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
