package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/queries"
	querybus "github.com/Emm4L92/DreamsConnect/application/queries/bus"
	"github.com/Emm4L92/DreamsConnect/application/services"
	"github.com/Emm4L92/DreamsConnect/pkg/utils"
)

// TranslationHandler handles dream vocabulary translation requests
type TranslationHandler struct {
	translationService *services.TranslationService
	queryBus           *querybus.QueryBus
	logger             *zap.Logger
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(
	translationService *services.TranslationService,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *TranslationHandler {
	return &TranslationHandler{
		translationService: translationService,
		queryBus:           queryBus,
		logger:             logger,
	}
}

// TranslateRequest represents the request body for a translation
type TranslateRequest struct {
	Text           string `json:"text" validate:"required,max=20000"`
	SourceLanguage string `json:"source_language" validate:"required,max=10"`
	TargetLanguage string `json:"target_language" validate:"required,max=10"`
}

// TranslateResponse represents the translation result
type TranslateResponse struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// Translate handles POST /translate
func (h *TranslationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	translated, err := h.translationService.Translate(r.Context(), req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		h.logger.Error("Failed to translate text", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Failed to translate text")
		return
	}

	h.respondJSON(w, http.StatusOK, TranslateResponse{
		Text:           translated,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	})
}

// TranslateDream handles GET /dreams/{dreamID}/translate?targetLang=
func (h *TranslationHandler) TranslateDream(w http.ResponseWriter, r *http.Request) {
	dreamID := chi.URLParam(r, "dreamID")
	if dreamID == "" {
		h.respondError(w, http.StatusBadRequest, "Dream ID is required")
		return
	}

	if _, err := uuid.Parse(dreamID); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid dream ID format")
		return
	}

	targetLang := r.URL.Query().Get("targetLang")
	if targetLang == "" {
		h.respondError(w, http.StatusBadRequest, "targetLang query parameter is required")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetDreamQuery{DreamID: dreamID})
	if err != nil {
		if strings.Contains(err.Error(), "not exist") || strings.Contains(err.Error(), "NOT_FOUND") {
			h.respondError(w, http.StatusNotFound, "Dream not found")
		} else {
			h.logger.Error("Failed to load dream for translation",
				zap.String("dreamID", dreamID),
				zap.Error(err),
			)
			h.respondError(w, http.StatusInternalServerError, "Failed to load dream")
		}
		return
	}

	dream, ok := result.(*queries.DreamResult)
	if !ok {
		h.respondError(w, http.StatusInternalServerError, "Unexpected query result")
		return
	}

	translated, err := h.translationService.Translate(r.Context(), dream.Content, dream.Language, targetLang)
	if err != nil {
		h.logger.Error("Failed to translate dream",
			zap.String("dreamID", dreamID),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "Failed to translate dream")
		return
	}

	h.respondJSON(w, http.StatusOK, TranslateResponse{
		Text:           translated,
		SourceLanguage: dream.Language,
		TargetLanguage: targetLang,
	})
}

// SupportedLanguages handles GET /translate/languages
func (h *TranslationHandler) SupportedLanguages(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"languages": h.translationService.SupportedLanguages(),
	})
}

func (h *TranslationHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *TranslationHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
