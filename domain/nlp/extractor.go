package nlp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Emm4L92/DreamsConnect/domain/config"
)

// Candidate is a scored tag proposal produced during extraction.
// Candidates are ephemeral and never persisted.
type Candidate struct {
	Text     string
	Score    float64
	Category Category
}

// CandidateSet accumulates candidates across extraction sources.
// The same candidate found by multiple sources accumulates score.
type CandidateSet map[string]*Candidate

// Add inserts a candidate or accumulates score onto an existing one.
// The first non-empty category sticks.
func (s CandidateSet) Add(text string, score float64, category Category) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return
	}
	if existing, ok := s[text]; ok {
		existing.Score += score
		if existing.Category == CategoryNone {
			existing.Category = category
		}
		return
	}
	s[text] = &Candidate{Text: text, Score: score, Category: category}
}

// Boost adds a bonus to an already-known candidate and reports whether
// the candidate existed.
func (s CandidateSet) Boost(text string, bonus float64) bool {
	if existing, ok := s[text]; ok {
		existing.Score += bonus
		return true
	}
	return false
}

// Has reports whether a candidate is already in the set
func (s CandidateSet) Has(text string) bool {
	_, ok := s[text]
	return ok
}

// Source is one independent extraction strategy. Sources write additively
// into the shared candidate set; a failing source contributes nothing and
// never aborts the pipeline.
type Source interface {
	Name() string
	Extract(text string, lang Language, out CandidateSet) error
}

// LexiconSource matches the curated per-language lexicons in decreasing
// confidence passes: exact phrase, word boundary, partial/conjugation,
// then an English fallback when the native language yields too little.
type LexiconSource struct {
	cfg      *config.DomainConfig
	boundary map[Language]map[string]*regexp.Regexp
}

// NewLexiconSource precompiles the word-boundary patterns for every keyword
func NewLexiconSource(cfg *config.DomainConfig) *LexiconSource {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	boundary := make(map[Language]map[string]*regexp.Regexp, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		patterns := make(map[string]*regexp.Regexp)
		for keyword := range LexiconFor(lang) {
			re, err := regexp.Compile(`(?i)(^|\W)` + regexp.QuoteMeta(keyword) + `(\W|$)`)
			if err != nil {
				continue
			}
			patterns[keyword] = re
		}
		boundary[lang] = patterns
	}
	return &LexiconSource{cfg: cfg, boundary: boundary}
}

func (s *LexiconSource) Name() string { return "lexicon" }

func (s *LexiconSource) Extract(text string, lang Language, out CandidateSet) error {
	content := strings.ToLower(text)
	lexicon := LexiconFor(lang)
	if lexicon == nil {
		return fmt.Errorf("no lexicon for language %q", lang)
	}

	// First pass: exact phrase match
	for keyword, category := range lexicon {
		if hasExactPhrase(content, keyword) {
			out.Add(keyword, s.cfg.ExactPhraseScore, category)
		}
	}

	// Second pass: word boundary match
	for keyword, category := range lexicon {
		if out.Has(keyword) {
			continue
		}
		if re, ok := s.boundary[lang][keyword]; ok && re.MatchString(content) {
			out.Add(keyword, s.cfg.WordBoundaryScore, category)
		}
	}

	// Third pass: partial and conjugation-aware matching, only when the
	// higher-confidence passes came up short. Trades precision for recall.
	if len(out) < s.cfg.PartialMatchMaxCands {
		s.partialPass(content, lang, lexicon, out)
	}

	s.contextPass(content, lang, out)

	// English fallback when the native lexicon found too little
	if lang != English && len(out) < s.cfg.FallbackMaxCands {
		s.englishFallback(content, out)
	}

	return nil
}

func (s *LexiconSource) partialPass(content string, lang Language, lexicon map[string]Category, out CandidateSet) {
	for keyword, category := range lexicon {
		runes := []rune(keyword)
		if len(runes) < 5 || out.Has(keyword) {
			continue
		}

		// Italian verbs: match conjugated forms off the infinitive root
		// (volare -> volavo, volando, vola)
		if lang == Italian && category == CategoryActions {
			root := string(runes[:len(runes)-3])
			if len([]rune(root)) >= 3 {
				re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(root) + `[a-z]{1,5}\b`)
				if err == nil && re.MatchString(content) {
					out.Add(keyword, s.cfg.ConjugationScore, category)
					continue
				}
			}
		}

		// Plurals and general partial matches
		if strings.Contains(content, string(runes[:len(runes)-1])) {
			out.Add(keyword, s.cfg.PartialMatchScore, category)
		}
	}
}

// contextPass handles keyword combinations that imply a theme even when the
// theme word itself is absent.
func (s *LexiconSource) contextPass(content string, lang Language, out CandidateSet) {
	if lang != Italian {
		return
	}

	if strings.Contains(content, "astronave") || strings.Contains(content, "navicella") {
		if !out.Has("astronave") {
			out.Add("astronave", 9, CategoryPlaces)
		}
		if !out.Has("alieno") && alienHintRe.MatchString(content) {
			out.Add("alieno", 8, CategoryCharacters)
		}
	}

	// Travelling plus a planet reads as a space dream
	travelling := strings.Contains(content, "andare") ||
		strings.Contains(content, "andavamo") ||
		strings.Contains(content, "andando")
	if travelling && (strings.Contains(content, "marte") || strings.Contains(content, "pianeta")) {
		if !out.Has("spazio") {
			out.Add("spazio", 9, CategoryPlaces)
		}
	}
}

func (s *LexiconSource) englishFallback(content string, out CandidateSet) {
	for keyword, category := range LexiconFor(English) {
		if out.Has(keyword) {
			continue
		}
		if re, ok := s.boundary[English][keyword]; ok && re.MatchString(content) {
			out.Add(keyword, s.cfg.FallbackScore, category)
		} else if strings.Contains(keyword, " ") && strings.Contains(content, keyword) {
			out.Add(keyword, s.cfg.FallbackScore-1, category)
		}
	}
}

var alienHintRe = regexp.MustCompile(`(?i)\b(alien|extraterr|marz)`)

func hasExactPhrase(content, keyword string) bool {
	return strings.Contains(content, " "+keyword+" ") ||
		strings.HasPrefix(content, keyword+" ") ||
		strings.HasSuffix(content, " "+keyword) ||
		content == keyword
}
