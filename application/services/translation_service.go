package services

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/ports"
	"github.com/Emm4L92/DreamsConnect/domain/nlp"
)

// TranslationService rewrites known dream vocabulary between languages.
// This is a toy dictionary substitution, not real translation: unknown
// words pass through unchanged. Results are cached per text pair.
type TranslationService struct {
	cache  ports.Cache
	logger *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(cache ports.Cache, logger *zap.Logger) *TranslationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranslationService{cache: cache, logger: logger}
}

const translationCacheTTL = 3600

// translationTable maps an English pivot word to its equivalents
var translationTable = map[string]map[nlp.Language]string{
	"dream":     {nlp.English: "dream", nlp.Italian: "sogno", nlp.Spanish: "sueño", nlp.French: "rêve", nlp.German: "Traum"},
	"nightmare": {nlp.English: "nightmare", nlp.Italian: "incubo", nlp.Spanish: "pesadilla", nlp.French: "cauchemar", nlp.German: "Albtraum"},
	"flying":    {nlp.English: "flying", nlp.Italian: "volare", nlp.Spanish: "volar", nlp.French: "voler", nlp.German: "fliegen"},
	"falling":   {nlp.English: "falling", nlp.Italian: "cadere", nlp.Spanish: "caer", nlp.French: "tomber", nlp.German: "fallen"},
	"chased":    {nlp.English: "chased", nlp.Italian: "inseguito", nlp.Spanish: "perseguido", nlp.French: "poursuivi", nlp.German: "verfolgt"},
	"water":     {nlp.English: "water", nlp.Italian: "acqua", nlp.Spanish: "agua", nlp.French: "eau", nlp.German: "Wasser"},
	"mountain":  {nlp.English: "mountain", nlp.Italian: "montagna", nlp.Spanish: "montaña", nlp.French: "montagne", nlp.German: "Berg"},
	"forest":    {nlp.English: "forest", nlp.Italian: "foresta", nlp.Spanish: "bosque", nlp.French: "forêt", nlp.German: "Wald"},
	"city":      {nlp.English: "city", nlp.Italian: "città", nlp.Spanish: "ciudad", nlp.French: "ville", nlp.German: "Stadt"},
	"family":    {nlp.English: "family", nlp.Italian: "famiglia", nlp.Spanish: "familia", nlp.French: "famille", nlp.German: "Familie"},
	"friend":    {nlp.English: "friend", nlp.Italian: "amico", nlp.Spanish: "amigo", nlp.French: "ami", nlp.German: "Freund"},
	"stranger":  {nlp.English: "stranger", nlp.Italian: "sconosciuto", nlp.Spanish: "extraño", nlp.French: "étranger", nlp.German: "Fremder"},
	"monster":   {nlp.English: "monster", nlp.Italian: "mostro", nlp.Spanish: "monstruo", nlp.French: "monstre", nlp.German: "Monster"},
	"animal":    {nlp.English: "animal", nlp.Italian: "animale", nlp.Spanish: "animal", nlp.French: "animal", nlp.German: "Tier"},
	"fear":      {nlp.English: "fear", nlp.Italian: "paura", nlp.Spanish: "miedo", nlp.French: "peur", nlp.German: "Angst"},
	"joy":       {nlp.English: "joy", nlp.Italian: "gioia", nlp.Spanish: "alegría", nlp.French: "joie", nlp.German: "Freude"},
	"sadness":   {nlp.English: "sadness", nlp.Italian: "tristezza", nlp.Spanish: "tristeza", nlp.French: "tristesse", nlp.German: "Traurigkeit"},
	"surprise":  {nlp.English: "surprise", nlp.Italian: "sorpresa", nlp.Spanish: "sorpresa", nlp.French: "surprise", nlp.German: "Überraschung"},
}

// Translate rewrites known vocabulary from the source language into the
// target language. Same-language requests return the text unchanged.
func (s *TranslationService) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	source := nlp.NormalizeLanguage(sourceLang)
	target := nlp.NormalizeLanguage(targetLang)
	if source == target {
		return text, nil
	}

	cacheKey := fmt.Sprintf("translate:%s:%s:%s", source, target, text)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			if translated, ok := cached.(string); ok {
				return translated, nil
			}
		}
	}

	translated := text
	for _, variants := range translationTable {
		sourceWord, okSource := variants[source]
		targetWord, okTarget := variants[target]
		if !okSource || !okTarget {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(sourceWord) + `\b`)
		if err != nil {
			continue
		}
		translated = re.ReplaceAllString(translated, targetWord)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, translated, translationCacheTTL); err != nil {
			s.logger.Warn("failed to cache translation", zap.Error(err))
		}
	}

	return translated, nil
}

// SupportedLanguages returns the language codes the dictionary covers
func (s *TranslationService) SupportedLanguages() []string {
	langs := make([]string, 0, len(nlp.SupportedLanguages))
	for _, lang := range nlp.SupportedLanguages {
		langs = append(langs, string(lang))
	}
	return langs
}
