package nlp

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/domain/config"
)

// Tagger is the tag-generation facade. It runs every extraction source
// against the narrative, pools their candidates into one score map and
// consolidates the result. Sources are pluggable so strategies can be
// added, removed or reweighted independently.
type Tagger struct {
	cfg          *config.DomainConfig
	logger       *zap.Logger
	sources      []Source
	consolidator *Consolidator
}

// NewTagger creates a tagger with the default source chain
func NewTagger(cfg *config.DomainConfig, logger *zap.Logger) *Tagger {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tagger{
		cfg:    cfg,
		logger: logger,
		sources: []Source{
			NewLexiconSource(cfg),
			NewEntitySource(),
			NewStatisticalSource(),
			NewTFIDFSource(cfg),
			NewFrequencySource(),
			NewWordPairSource(cfg),
		},
		consolidator: NewConsolidator(cfg),
	}
}

// NewTaggerWithSources creates a tagger with a custom source chain
func NewTaggerWithSources(cfg *config.DomainConfig, logger *zap.Logger, sources ...Source) *Tagger {
	tagger := NewTagger(cfg, logger)
	tagger.sources = sources
	return tagger
}

// GenerateTags produces the final tag list for a narrative. It never fails
// and never returns an empty list: on degenerate input or total extraction
// failure it falls back to localized generic tags.
func (t *Tagger) GenerateTags(text, languageCode string) []string {
	lang := NormalizeLanguage(languageCode)

	if strings.TrimSpace(text) == "" {
		return FallbackTags(lang)
	}

	candidates := make(CandidateSet)
	for _, source := range t.sources {
		t.runSource(source, text, lang, candidates)
	}

	tags := t.consolidator.Consolidate(candidates, lang)
	t.logger.Debug("generated tags",
		zap.String("language", string(lang)),
		zap.Int("candidates", len(candidates)),
		zap.Strings("tags", tags),
	)
	return tags
}

// runSource isolates one extraction strategy: a panic or error inside a
// source is logged and contributes no candidates instead of failing the
// whole pipeline.
func (t *Tagger) runSource(source Source, text string, lang Language, out CandidateSet) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Warn("extraction source panicked",
				zap.String("source", source.Name()),
				zap.Any("panic", r),
			)
		}
	}()

	if err := source.Extract(text, lang, out); err != nil {
		t.logger.Warn("extraction source failed",
			zap.String("source", source.Name()),
			zap.Error(err),
		)
	}
}
