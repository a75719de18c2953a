package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilaritySymmetry(t *testing.T) {
	scorer := NewSimilarityScorer(nil)
	pairs := [][2]string{
		{"I was flying over the mountains", "Flying above tall mountains at night"},
		{"A short dream", "A very long dream about many different things happening at once"},
		{"completely unrelated words here", "nothing shared between these texts"},
	}

	for _, pair := range pairs {
		ab := scorer.Score(pair[0], pair[1])
		ba := scorer.Score(pair[1], pair[0])
		assert.Equal(t, ab, ba, "score must be symmetric for %q / %q", pair[0], pair[1])
	}
}

func TestSimilarityBounds(t *testing.T) {
	scorer := NewSimilarityScorer(nil)
	pairs := [][2]string{
		{"water fire earth", "water fire earth"},
		{"aaa bbb ccc", "xxx yyy zzz"},
		{"one", "two"},
		{"the quick brown fox jumps over the lazy dog", "the quick brown fox"},
	}

	for _, pair := range pairs {
		score := scorer.Score(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestSimilaritySelfMaximal(t *testing.T) {
	scorer := NewSimilarityScorer(nil)
	text := "I dreamed about flying over snowy mountains toward the ocean"
	assert.InDelta(t, 100.0, scorer.Score(text, text), 0.001)
}

func TestSimilarityDegenerateInputs(t *testing.T) {
	scorer := NewSimilarityScorer(nil)

	assert.Zero(t, scorer.Score("", "some text here"))
	assert.Zero(t, scorer.Score("some text here", ""))
	assert.Zero(t, scorer.Score("", ""))
	// No token longer than the minimum length survives tokenization
	assert.Zero(t, scorer.Score("a bb cc", "dd ee f"))
}

func TestSimilarityCrossLanguageIsLow(t *testing.T) {
	scorer := NewSimilarityScorer(nil)

	// Same dream in two languages shares almost no tokens: the scorer is
	// purely lexical, so the score stays low
	english := "I was flying over the mountains"
	italian := "Volavo sopra le montagne"

	score := scorer.Score(english, italian)
	assert.Less(t, score, 30.0)
}

func TestSimilarityRewardsContainment(t *testing.T) {
	scorer := NewSimilarityScorer(nil)

	short := "flying over mountains"
	long := "last night I kept flying over mountains and rivers and forests until dawn"

	contained := scorer.Score(short, long)
	unrelated := scorer.Score(short, "swimming under water with dolphins near coral reefs today")
	assert.Greater(t, contained, unrelated)
}
