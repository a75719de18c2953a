package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsolidateEmptySetFallsBack(t *testing.T) {
	c := NewConsolidator(nil)

	assert.Equal(t, []string{"dream", "mystery", "experience"}, c.Consolidate(make(CandidateSet), English))
	assert.Equal(t, []string{"sogno", "mistero", "esperienza"}, c.Consolidate(make(CandidateSet), Italian))
}

func TestConsolidateFiltersGarbage(t *testing.T) {
	c := NewConsolidator(nil)

	candidates := make(CandidateSet)
	candidates.Add("ok", 10, CategoryNone)                           // too short
	candidates.Add("anextremelylongcandidatestring", 10, CategoryNone) // too long
	candidates.Add("one two three", 10, CategoryNone)                // too many words
	candidates.Add("with mountains", 10, CategoryNone)               // stopword token
	candidates.Add("was running", 10, CategoryNone)                  // auxiliary-led fragment
	candidates.Add("something", 10, CategoryNone)                    // generic pronoun
	candidates.Add("ocean", 5, CategoryPlaces)

	assert.Equal(t, []string{"ocean"}, c.Consolidate(candidates, English))
}

func TestConsolidateDedupesByStem(t *testing.T) {
	c := NewConsolidator(nil)

	candidates := make(CandidateSet)
	candidates.Add("mountains", 10, CategoryPlaces)
	candidates.Add("mountain", 5, CategoryPlaces)
	candidates.Add("flying", 8, CategoryActions)

	tags := c.Consolidate(candidates, English)
	assert.Contains(t, tags, "flying")
	// Shortest variant represents the stem group
	assert.Contains(t, tags, "mountain")
	assert.NotContains(t, tags, "mountains")
}

func TestConsolidateCapsAtFive(t *testing.T) {
	c := NewConsolidator(nil)

	candidates := make(CandidateSet)
	words := []string{"ocean", "flying", "fear", "monster", "water", "magic", "portal", "castle"}
	for i, w := range words {
		candidates.Add(w, float64(10-i), CategoryNone)
	}

	tags := c.Consolidate(candidates, English)
	assert.Len(t, tags, 5)
}

func TestConsolidatePrefersCategoryDiversity(t *testing.T) {
	c := NewConsolidator(nil)

	candidates := make(CandidateSet)
	candidates.Add("ocean", 10, CategoryPlaces)
	candidates.Add("beach", 9, CategoryPlaces)
	candidates.Add("island", 8, CategoryPlaces)
	candidates.Add("castle", 7, CategoryPlaces)
	candidates.Add("cave", 6, CategoryPlaces)
	candidates.Add("fear", 1, CategoryEmotions)

	tags := c.Consolidate(candidates, English)
	// The low-scoring emotion still earns a slot before places fill up
	assert.Contains(t, tags, "fear")
	assert.Contains(t, tags, "ocean")
}

func TestStem(t *testing.T) {
	tests := []struct {
		word     string
		lang     Language
		expected string
	}{
		{"mountains", English, "mountain"},
		{"flying", English, "fly"},
		{"volavo", Italian, "vol"},
		{"volare", Italian, "vol"},
		{"montagne", Italian, "montagn"},
		{"montagna", Italian, "montagn"},
		{"sun", English, "sun"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Stem(tt.word, tt.lang), "stem(%q, %s)", tt.word, tt.lang)
	}
}
