package nlp

import (
	"strings"
	"unicode"
)

// EntitySource applies lightweight grammatical heuristics: capitalized
// words inside a sentence are treated as named entities, and words that
// directly follow an article are treated as nouns. No real POS tagging,
// just enough signal for short informal narratives.
type EntitySource struct{}

func NewEntitySource() *EntitySource { return &EntitySource{} }

func (s *EntitySource) Name() string { return "entity" }

// articlesByLang marks determiners whose following word is likely a noun
var articlesByLang = map[Language]map[string]struct{}{
	English: toSet("the", "a", "an"),
	Italian: toSet("il", "lo", "la", "le", "gli", "un", "una", "uno"),
	Spanish: toSet("el", "la", "los", "las", "un", "una"),
	French:  toSet("le", "la", "les", "un", "une", "des"),
	German:  toSet("der", "die", "das", "den", "dem", "ein", "eine", "einen"),
}

const (
	entityScore = 6
	nounScore   = 5
)

func (s *EntitySource) Extract(text string, lang Language, out CandidateSet) error {
	words := strings.Fields(text)
	articles, ok := articlesByLang[lang]
	if !ok {
		articles = articlesByLang[DefaultLanguage]
	}

	sentenceStart := true
	for i, word := range words {
		cleaned := trimPunct(word)
		if cleaned == "" {
			continue
		}

		// Capitalized words mid-sentence read as named entities
		if !sentenceStart && startsUpper(cleaned) && len([]rune(cleaned)) >= 3 {
			lower := strings.ToLower(cleaned)
			if !IsStopword(lower, lang) {
				out.Add(lower, entityScore, CategoryNone)
			}
		}

		// A word following an article is probably a noun
		if i+1 < len(words) {
			lower := strings.ToLower(cleaned)
			if _, isArticle := articles[lower]; isArticle {
				next := strings.ToLower(trimPunct(words[i+1]))
				if len([]rune(next)) >= 3 && !IsStopword(next, lang) {
					out.Add(next, nounScore, CategoryNone)
				}
			}
		}

		sentenceStart = endsSentence(word)
	}
	return nil
}

func trimPunct(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func endsSentence(word string) bool {
	return strings.HasSuffix(word, ".") ||
		strings.HasSuffix(word, "!") ||
		strings.HasSuffix(word, "?")
}
