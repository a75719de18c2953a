package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTagger() *Tagger {
	return NewTagger(nil, zap.NewNop())
}

func TestGenerateTagsNeverEmpty(t *testing.T) {
	tagger := newTestTagger()

	tests := []struct {
		name string
		text string
		lang string
	}{
		{name: "empty text", text: "", lang: "en"},
		{name: "whitespace only", text: "   \n\t ", lang: "it"},
		{name: "gibberish", text: "xqzt vrpl wmnk", lang: "es"},
		{name: "single short word", text: "ok", lang: "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := tagger.GenerateTags(tt.text, tt.lang)
			assert.NotEmpty(t, tags)
			assert.LessOrEqual(t, len(tags), 5)
		})
	}
}

func TestGenerateTagsFallbackIsLocalized(t *testing.T) {
	tagger := newTestTagger()

	assert.Equal(t, []string{"dream", "mystery", "experience"}, tagger.GenerateTags("", "en"))
	assert.Equal(t, []string{"sogno", "mistero", "esperienza"}, tagger.GenerateTags("", "it-IT"))
	assert.Equal(t, []string{"sueño", "misterio", "experiencia"}, tagger.GenerateTags("", "es"))
	assert.Equal(t, []string{"rêve", "mystère", "expérience"}, tagger.GenerateTags("", "fr"))
	assert.Equal(t, []string{"traum", "mysterium", "erfahrung"}, tagger.GenerateTags("", "de"))
	// Unknown languages fall back to English
	assert.Equal(t, []string{"dream", "mystery", "experience"}, tagger.GenerateTags("", "zz"))
}

func TestGenerateTagsShape(t *testing.T) {
	tagger := newTestTagger()

	texts := []struct {
		text string
		lang string
	}{
		{"I was flying over the mountains and I felt completely free", "en"},
		{"Volavo sopra le montagne e mi sentivo libero", "it"},
		{"Estaba corriendo por la playa cuando vi un tiburón enorme en el agua", "es"},
		{"Je marchais dans une forêt sombre avec mon chien", "fr"},
		{"Ich bin durch einen dunklen Wald gelaufen und hatte Angst", "de"},
	}

	for _, tt := range texts {
		tags := tagger.GenerateTags(tt.text, tt.lang)
		require.NotEmpty(t, tags)
		assert.LessOrEqual(t, len(tags), 5)

		for _, tag := range tags {
			runes := []rune(tag)
			assert.GreaterOrEqual(t, len(runes), 3, "tag %q too short", tag)
			assert.LessOrEqual(t, len(runes), 18, "tag %q too long", tag)
			assert.LessOrEqual(t, len(strings.Fields(tag)), 2, "tag %q has too many words", tag)
			assert.Equal(t, strings.ToLower(tag), tag, "tag %q must be lower-case", tag)
		}
	}
}

func TestGenerateTagsEnglishFlyingDream(t *testing.T) {
	tagger := newTestTagger()

	tags := tagger.GenerateTags("I was flying over mountains", "en")

	assert.Contains(t, tags, "flying")
	assert.True(t, containsPrefix(tags, "mountain"), "expected a mountain tag, got %v", tags)
}

func TestGenerateTagsItalianFlyingDream(t *testing.T) {
	tagger := newTestTagger()

	tags := tagger.GenerateTags("Volavo sopra le montagne", "it")

	assert.True(t, containsPrefix(tags, "vol"), "expected a volare-family tag, got %v", tags)
	assert.True(t, containsPrefix(tags, "montagn"), "expected a montagna-family tag, got %v", tags)
}

func TestGenerateTagsCategoryDiversity(t *testing.T) {
	tagger := newTestTagger()

	// Narrative spanning several categories should not produce tags from
	// just one theme
	text := "I was swimming in the ocean at night while a storm raged and I felt fear"
	tags := tagger.GenerateTags(text, "en")
	require.NotEmpty(t, tags)

	lexicon := LexiconFor(English)
	categories := make(map[Category]bool)
	for _, tag := range tags {
		if cat, ok := lexicon[tag]; ok {
			categories[cat] = true
		}
	}
	assert.GreaterOrEqual(t, len(categories), 2, "tags %v cover too few categories", tags)
}

func TestGenerateTagsDeduplicatesInflections(t *testing.T) {
	tagger := newTestTagger()

	tags := tagger.GenerateTags("mountains and more mountains, a mountain everywhere", "en")

	seen := 0
	for _, tag := range tags {
		if strings.HasPrefix(tag, "mountain") {
			seen++
		}
	}
	assert.Equal(t, 1, seen, "inflected variants must collapse to one tag, got %v", tags)
}

func TestGenerateTagsPanickingSourceIsIsolated(t *testing.T) {
	cfgSources := []Source{
		panicSource{},
		NewLexiconSource(nil),
	}
	// A panicking source must not take down tag generation
	tagger := NewTaggerWithSources(nil, zap.NewNop(), cfgSources...)

	assert.NotPanics(t, func() {
		tags := tagger.GenerateTags("flying over the ocean", "en")
		assert.NotEmpty(t, tags)
	})
}

type panicSource struct{}

func (panicSource) Name() string { return "panic" }
func (panicSource) Extract(string, Language, CandidateSet) error {
	panic("boom")
}

func containsPrefix(tags []string, prefix string) bool {
	for _, tag := range tags {
		if strings.HasPrefix(tag, prefix) {
			return true
		}
	}
	return false
}
