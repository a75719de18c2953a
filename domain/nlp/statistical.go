package nlp

import (
	"math"
	"regexp"
	"strings"

	"github.com/Emm4L92/DreamsConnect/domain/config"
)

var tokenSplitRe = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Tokenize lower-cases the text and splits it on non-alphanumeric runs
func Tokenize(text string) []string {
	parts := tokenSplitRe.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// contentTokens keeps tokens that carry topical meaning: long enough and
// not function words.
func contentTokens(text string, lang Language, minLen int) []string {
	tokens := Tokenize(text)
	kept := tokens[:0]
	for _, t := range tokens {
		if len([]rune(t)) >= minLen && !IsStopword(t, lang) {
			kept = append(kept, t)
		}
	}
	return kept
}

// StatisticalSource contributes stopword-filtered keywords: it reinforces
// candidates other sources already found and adds unseen content words at
// low-medium confidence.
type StatisticalSource struct{}

func NewStatisticalSource() *StatisticalSource { return &StatisticalSource{} }

func (s *StatisticalSource) Name() string { return "statistical" }

const (
	statisticalBoost    = 2
	statisticalNewScore = 3
)

func (s *StatisticalSource) Extract(text string, lang Language, out CandidateSet) error {
	seen := make(map[string]struct{})
	for _, token := range contentTokens(text, lang, 4) {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if !out.Boost(token, statisticalBoost) {
			out.Add(token, statisticalNewScore, CategoryNone)
		}
	}
	return nil
}

// TFIDFSource scores the narrative as a single document: term frequency
// against an inverse-frequency proxy, normalized into a bounded bonus that
// only ever tops up candidates found by other sources.
type TFIDFSource struct {
	cfg *config.DomainConfig
}

func NewTFIDFSource(cfg *config.DomainConfig) *TFIDFSource {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &TFIDFSource{cfg: cfg}
}

func (s *TFIDFSource) Name() string { return "tfidf" }

func (s *TFIDFSource) Extract(text string, lang Language, out CandidateSet) error {
	tokens := contentTokens(text, lang, 4)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, t := range tokens {
		counts[t]++
	}

	total := float64(len(tokens))
	weights := make(map[string]float64, len(counts))
	maxWeight := 0.0
	for token, count := range counts {
		tf := float64(count) / total
		idf := math.Log(1 + total/float64(count))
		weights[token] = tf * idf
		if weights[token] > maxWeight {
			maxWeight = weights[token]
		}
	}
	if maxWeight == 0 {
		return nil
	}

	for token, weight := range weights {
		bonus := weight / maxWeight * s.cfg.MaxTFIDFBonus
		out.Boost(token, bonus)
	}
	return nil
}

// FrequencySource gives repeated tokens a small bounded bonus
type FrequencySource struct{}

func NewFrequencySource() *FrequencySource { return &FrequencySource{} }

func (s *FrequencySource) Name() string { return "frequency" }

const maxFrequencyBonus = 3

func (s *FrequencySource) Extract(text string, lang Language, out CandidateSet) error {
	counts := make(map[string]int)
	for _, token := range contentTokens(text, lang, 4) {
		counts[token]++
	}
	for token, count := range counts {
		if count <= 1 {
			continue
		}
		bonus := math.Min(float64(count-1), maxFrequencyBonus)
		if !out.Boost(token, bonus) && count >= 3 {
			out.Add(token, bonus, CategoryNone)
		}
	}
	return nil
}

// WordPairSource joins two adjacent content words into a multi-word
// candidate, catching compound concepts the single-word lexicon misses.
type WordPairSource struct {
	cfg *config.DomainConfig
}

func NewWordPairSource(cfg *config.DomainConfig) *WordPairSource {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &WordPairSource{cfg: cfg}
}

func (s *WordPairSource) Name() string { return "wordpair" }

const wordPairScore = 4

func (s *WordPairSource) Extract(text string, lang Language, out CandidateSet) error {
	tokens := Tokenize(text)
	for i := 0; i+1 < len(tokens); i++ {
		first, second := tokens[i], tokens[i+1]
		if len([]rune(first)) <= 3 || len([]rune(second)) <= 3 {
			continue
		}
		if IsStopword(first, lang) || IsStopword(second, lang) {
			continue
		}
		pair := first + " " + second
		if len([]rune(pair)) > s.cfg.MaxPairTagLength {
			continue
		}
		out.Add(pair, wordPairScore, CategoryNone)
	}
	return nil
}
