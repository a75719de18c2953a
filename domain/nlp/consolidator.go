package nlp

import (
	"sort"
	"strings"

	"github.com/Emm4L92/DreamsConnect/domain/config"
)

// Consolidator collapses a raw candidate set into the final tag list:
// stem dedupe, garbage filtering, category-diverse selection, cap at N.
// It never returns an empty list.
type Consolidator struct {
	cfg *config.DomainConfig
}

func NewConsolidator(cfg *config.DomainConfig) *Consolidator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &Consolidator{cfg: cfg}
}

// Consolidate selects the top tags from the candidate set
func (c *Consolidator) Consolidate(candidates CandidateSet, lang Language) []string {
	deduped := c.dedupeByStem(candidates, lang)

	kept := make([]*Candidate, 0, len(deduped))
	for _, cand := range deduped {
		if c.isGarbage(cand.Text, lang) {
			continue
		}
		kept = append(kept, cand)
	}

	tags := c.selectDiverse(kept)
	if len(tags) == 0 {
		return FallbackTags(lang)
	}
	return tags
}

// dedupeByStem groups candidates whose stems collide and keeps a single
// representative per group: fewest words, then shortest, then highest score.
func (c *Consolidator) dedupeByStem(candidates CandidateSet, lang Language) []*Candidate {
	groups := make(map[string]*Candidate)
	for _, cand := range candidates {
		key := StemPhrase(cand.Text, lang)
		current, ok := groups[key]
		if !ok || betterRepresentative(cand, current) {
			groups[key] = cand
		}
	}

	result := make([]*Candidate, 0, len(groups))
	for _, cand := range groups {
		result = append(result, cand)
	}
	return result
}

func betterRepresentative(a, b *Candidate) bool {
	aWords, bWords := wordCount(a.Text), wordCount(b.Text)
	if aWords != bWords {
		return aWords < bWords
	}
	aLen, bLen := len([]rune(a.Text)), len([]rune(b.Text))
	if aLen != bLen {
		return aLen < bLen
	}
	return a.Score > b.Score
}

// isGarbage drops fragments that arise as extraction noise rather than
// real topics.
func (c *Consolidator) isGarbage(text string, lang Language) bool {
	runes := []rune(text)
	if len(runes) < c.cfg.MinTagLength || len(runes) > c.cfg.MaxTagLength {
		return true
	}

	words := strings.Fields(text)
	if len(words) > c.cfg.MaxTagWords {
		return true
	}

	for _, word := range words {
		if isGarbageToken(word, lang) {
			return true
		}
	}

	// Auxiliary-led fragments ("was running", "era volando") are verbal
	// noise, not topics
	if _, ok := verbalFragmentStarters[words[0]]; ok {
		return true
	}

	return false
}

// selectDiverse picks at most one top candidate per semantic category first,
// then fills the remaining slots from the highest-scoring leftovers.
func (c *Consolidator) selectDiverse(candidates []*Candidate) []string {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Text < candidates[j].Text
	})

	maxTags := c.cfg.MaxTagsPerDream
	picked := make([]string, 0, maxTags)
	pickedSet := make(map[string]struct{}, maxTags)

	for _, category := range categoryOrder {
		for _, cand := range candidates {
			if cand.Category != category {
				continue
			}
			picked = append(picked, cand.Text)
			pickedSet[cand.Text] = struct{}{}
			break
		}
		if len(picked) >= maxTags {
			return picked[:maxTags]
		}
	}

	for _, cand := range candidates {
		if len(picked) >= maxTags {
			break
		}
		if _, ok := pickedSet[cand.Text]; ok {
			continue
		}
		picked = append(picked, cand.Text)
		pickedSet[cand.Text] = struct{}{}
	}

	return picked
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
