package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Language
	}{
		{name: "plain supported code", input: "it", expected: Italian},
		{name: "uppercase", input: "EN", expected: English},
		{name: "locale with dash", input: "it-IT", expected: Italian},
		{name: "locale with underscore", input: "de_DE", expected: German},
		{name: "regional spanish variant", input: "es_mx", expected: Spanish},
		{name: "regional french variant", input: "fr-CA", expected: French},
		{name: "swiss german", input: "de_ch", expected: German},
		{name: "swiss italian", input: "it_ch", expected: Italian},
		{name: "unknown language", input: "ja", expected: English},
		{name: "empty string", input: "", expected: English},
		{name: "whitespace", input: "  fr  ", expected: French},
		{name: "garbage", input: "???", expected: English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLanguage(tt.input))
		})
	}
}

func TestNormalizeLanguageIdempotent(t *testing.T) {
	inputs := []string{"en", "it-IT", "es_ar", "xx", "", "DE_AT"}
	for _, input := range inputs {
		once := NormalizeLanguage(input)
		twice := NormalizeLanguage(string(once))
		assert.Equal(t, once, twice, "normalize(normalize(%q)) must be stable", input)
	}
}

func TestNormalizeLanguageAlwaysSupported(t *testing.T) {
	inputs := []string{"pt-BR", "zh", "ru_RU", "klingon", "12345", "en-US"}
	for _, input := range inputs {
		assert.True(t, IsSupported(NormalizeLanguage(input)), "input %q", input)
	}
}
