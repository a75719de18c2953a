package nlp

import (
	"math"
	"strings"

	"github.com/Emm4L92/DreamsConnect/domain/config"
)

// SimilarityScorer computes a 0-100 compatibility score between two
// narratives. The blend deliberately tempers pure Jaccard: the length term
// keeps short-vs-long pairs from being punished unfairly, and the density
// boost rewards a short text almost entirely contained in a longer one.
type SimilarityScorer struct {
	cfg *config.DomainConfig
}

func NewSimilarityScorer(cfg *config.DomainConfig) *SimilarityScorer {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &SimilarityScorer{cfg: cfg}
}

// Score returns the weighted similarity between two raw texts, clamped to
// [0,100]. Degenerate inputs score 0, never error. The score is symmetric.
func (s *SimilarityScorer) Score(textA, textB string) float64 {
	if strings.TrimSpace(textA) == "" || strings.TrimSpace(textB) == "" {
		return 0
	}

	lowerA := strings.ToLower(textA)
	lowerB := strings.ToLower(textB)

	setA := significantTokenSet(lowerA, s.cfg.MinTokenLength)
	setB := significantTokenSet(lowerB, s.cfg.MinTokenLength)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	common := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			common++
		}
	}

	union := len(setA) + len(setB) - common
	if union == 0 {
		return 0
	}
	jaccard := float64(common) / float64(union) * 100

	// Penalize large disparities in narrative length
	lenA := float64(len([]rune(lowerA)))
	lenB := float64(len([]rune(lowerB)))
	lengthSimilarity := math.Min(lenA, lenB) / math.Max(lenA, lenB) * 100

	// Reward overlap that covers a large share of either side. Scaled to
	// the same 0-100 range as the other terms so identical texts hit 100.
	densityA := float64(common) / float64(len(setA))
	densityB := float64(common) / float64(len(setB))
	densityBoost := math.Max(densityA, densityB) * s.cfg.DensityScale

	score := jaccard*s.cfg.JaccardWeight +
		lengthSimilarity*s.cfg.LengthWeight +
		densityBoost*s.cfg.DensityWeight

	return clampScore(score)
}

// significantTokenSet keeps tokens longer than minLen characters
func significantTokenSet(text string, minLen int) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range Tokenize(text) {
		if len([]rune(token)) > minLen {
			set[token] = struct{}{}
		}
	}
	return set
}

// clampScore bounds a score to [0,100] and coerces invalid values to 0
func clampScore(score float64) float64 {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return math.Min(100, math.Max(0, score))
}
