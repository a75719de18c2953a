package nlp

import "strings"

// Language is a supported analysis language code
type Language string

const (
	English Language = "en"
	Italian Language = "it"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
)

// DefaultLanguage is used when a locale cannot be resolved
const DefaultLanguage = English

// SupportedLanguages lists every language the pipeline understands
var SupportedLanguages = []Language{English, Italian, Spanish, French, German}

var supportedSet = map[Language]bool{
	English: true,
	Italian: true,
	Spanish: true,
	French:  true,
	German:  true,
}

// regionalVariants maps regional locale codes to their base language
var regionalVariants = map[string]Language{
	// Spanish variants
	"es_mx": Spanish, "es_ar": Spanish, "es_co": Spanish,
	// French variants
	"fr_ca": French, "fr_be": French, "fr_ch": French,
	// German variants
	"de_at": German, "de_ch": German,
	// Italian variants
	"it_ch": Italian,
}

// NormalizeLanguage maps an arbitrary locale string to a supported language.
// It lower-cases, truncates at the first separator ("it-IT" -> "it"), falls
// back through the regional variant table and defaults to English. It never
// fails and is idempotent.
func NormalizeLanguage(raw string) Language {
	code := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		// Regional variants like es_mx are looked up before truncation
		normalized := strings.ReplaceAll(code, "-", "_")
		if lang, ok := regionalVariants[normalized]; ok {
			return lang
		}
		code = code[:i]
	}

	if supportedSet[Language(code)] {
		return Language(code)
	}
	if lang, ok := regionalVariants[code]; ok {
		return lang
	}
	return DefaultLanguage
}

// IsSupported reports whether the given language is in the supported set
func IsSupported(lang Language) bool {
	return supportedSet[lang]
}
