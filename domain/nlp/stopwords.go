package nlp

// stopwordsByLang holds the function words excluded from statistical
// extraction and word-pair building.
var stopwordsByLang = map[Language]map[string]struct{}{
	English: toSet(
		"the", "a", "an", "and", "or", "but", "if", "then", "else", "when",
		"at", "by", "for", "with", "about", "against", "between", "into",
		"through", "during", "before", "after", "above", "below", "from",
		"up", "down", "in", "out", "on", "off", "over", "under", "again",
		"this", "that", "these", "those", "there", "here", "where", "which",
		"who", "whom", "what", "was", "were", "is", "are", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"i", "me", "my", "myself", "we", "our", "you", "your", "he", "him",
		"his", "she", "her", "it", "its", "they", "them", "their", "very",
		"can", "will", "just", "would", "could", "should", "some", "such",
		"more", "most", "only", "also", "than", "while", "felt",
	),
	Italian: toSet(
		"il", "lo", "la", "le", "gli", "un", "una", "uno", "e", "o", "ma",
		"se", "poi", "quando", "a", "da", "di", "con", "su", "per", "tra",
		"fra", "in", "nel", "nella", "sopra", "sotto", "dopo", "prima",
		"questo", "questa", "questi", "quello", "quella", "che", "chi",
		"cui", "dove", "come", "era", "ero", "sono", "sei", "siamo",
		"erano", "essere", "stato", "stata", "avere", "aveva", "avevo",
		"ho", "hai", "ha", "io", "tu", "lui", "lei", "noi", "voi", "loro",
		"mio", "mia", "suo", "sua", "molto", "anche", "non", "più", "del",
		"della", "dei", "delle", "al", "alla", "ai", "alle",
	),
	Spanish: toSet(
		"el", "la", "los", "las", "un", "una", "unos", "unas", "y", "o",
		"pero", "si", "cuando", "a", "de", "con", "en", "por", "para",
		"entre", "sobre", "bajo", "desde", "hasta", "antes", "después",
		"este", "esta", "estos", "ese", "esa", "que", "quien", "donde",
		"como", "era", "fue", "soy", "eres", "es", "somos", "son", "estaba",
		"estar", "haber", "había", "he", "has", "ha", "yo", "tú", "él",
		"ella", "nosotros", "ellos", "mi", "su", "muy", "también", "no",
		"más", "del", "al", "lo", "se", "me", "te",
	),
	French: toSet(
		"le", "la", "les", "un", "une", "des", "et", "ou", "mais", "si",
		"quand", "à", "de", "avec", "en", "par", "pour", "entre", "sur",
		"sous", "depuis", "avant", "après", "ce", "cette", "ces", "cet",
		"que", "qui", "dont", "où", "comme", "était", "étais", "suis",
		"es", "est", "sommes", "sont", "être", "été", "avoir", "avait",
		"avais", "ai", "as", "je", "tu", "il", "elle", "nous", "vous",
		"ils", "elles", "mon", "ma", "son", "sa", "très", "aussi", "ne",
		"pas", "plus", "du", "au", "aux", "se", "me", "te",
	),
	German: toSet(
		"der", "die", "das", "den", "dem", "ein", "eine", "einen", "einem",
		"und", "oder", "aber", "wenn", "dann", "als", "an", "auf", "aus",
		"bei", "durch", "für", "gegen", "in", "mit", "nach", "über",
		"unter", "von", "vor", "zu", "zwischen", "dieser", "diese",
		"dieses", "jener", "dass", "wer", "wo", "wie", "war", "warst",
		"bin", "bist", "ist", "sind", "waren", "sein", "gewesen", "haben",
		"hatte", "habe", "hast", "hat", "ich", "du", "er", "sie", "es",
		"wir", "ihr", "mein", "dein", "sehr", "auch", "nicht", "mehr",
		"im", "am", "zum", "zur", "sich", "mich", "dich",
	),
}

// verbalFragmentStarters are auxiliary forms whose presence at the head of
// a multi-word candidate marks it as extraction noise, not a topic.
var verbalFragmentStarters = toSet(
	"was", "were", "is", "are", "been", "have", "has", "had",
	"ero", "era", "sono", "sei", "stavo", "stava", "avevo", "aveva",
	"estaba", "era", "soy", "fue", "había",
	"étais", "était", "suis", "avais", "avait",
	"war", "bin", "ist", "hatte", "habe",
)

// genericPronouns never make meaningful tags on their own
var genericPronouns = toSet(
	"something", "nothing", "anything", "everything", "someone", "anyone",
	"qualcosa", "niente", "nulla", "qualcuno", "nessuno",
	"algo", "nada", "alguien", "nadie",
	"quelque", "rien", "quelqu'un", "personne",
	"etwas", "nichts", "jemand", "niemand",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether a token is a function word in the given language
func IsStopword(token string, lang Language) bool {
	set, ok := stopwordsByLang[lang]
	if !ok {
		set = stopwordsByLang[DefaultLanguage]
	}
	_, found := set[token]
	return found
}

// isGarbageToken reports whether a token disqualifies a candidate outright
func isGarbageToken(token string, lang Language) bool {
	if _, ok := genericPronouns[token]; ok {
		return true
	}
	return IsStopword(token, lang)
}
