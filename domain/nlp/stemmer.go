package nlp

import "strings"

// suffixesByLang lists inflection suffixes stripped by the generic stemmer,
// longest first so the most specific suffix wins.
var suffixesByLang = map[Language][]string{
	English: {"ations", "ation", "ingly", "ments", "ment", "ness", "ing", "ers", "ies", "ied", "ed", "es", "er", "ly", "s"},
	Italian: {"azione", "azioni", "amento", "amenti", "ando", "endo", "are", "ere", "ire", "ato", "uto", "ita", "avo", "ava", "ano", "oni", "ine", "i", "e", "a", "o"},
	Spanish: {"aciones", "ación", "amiento", "ando", "iendo", "ar", "er", "ir", "ado", "ido", "aba", "es", "as", "os", "a", "o", "s"},
	French:  {"ations", "ation", "ement", "ant", "er", "ir", "ée", "és", "ée", "es", "e", "s"},
	German:  {"ungen", "ung", "heit", "keit", "chen", "lein", "en", "er", "e", "n", "s"},
}

// Stem reduces a word to an approximate root by stripping one inflection
// suffix. It is deliberately crude: its only job is grouping near-identical
// candidates, not linguistic correctness.
func Stem(word string, lang Language) string {
	word = strings.ToLower(strings.TrimSpace(word))
	runes := []rune(word)
	if len(runes) <= 3 {
		return word
	}

	suffixes, ok := suffixesByLang[lang]
	if !ok {
		suffixes = suffixesByLang[DefaultLanguage]
	}

	for _, suffix := range suffixes {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, suffix)
		// Keep at least three characters so short words survive intact
		if len([]rune(stem)) >= 3 {
			return stem
		}
	}
	return word
}

// StemPhrase stems each word of a candidate so multi-word candidates group
// with their inflected variants.
func StemPhrase(phrase string, lang Language) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = Stem(w, lang)
	}
	return strings.Join(words, " ")
}
