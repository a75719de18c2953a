package nlp

// Category is a semantic grouping for curated keywords
type Category string

const (
	CategoryPlaces     Category = "places"
	CategoryActions    Category = "actions"
	CategoryEmotions   Category = "emotions"
	CategoryCharacters Category = "characters"
	CategoryElements   Category = "elements"
	CategoryConcepts   Category = "concepts"
	CategoryNone       Category = ""
)

// categoryOrder fixes the iteration order for diverse tag selection
var categoryOrder = []Category{
	CategoryPlaces,
	CategoryActions,
	CategoryEmotions,
	CategoryCharacters,
	CategoryElements,
	CategoryConcepts,
}

// lexiconData holds the curated keywords per category and language.
// Lists include landscape and astronomy vocabulary since those themes
// recur constantly in dream narratives.
var lexiconData = map[Category]map[Language][]string{
	CategoryPlaces: {
		English: {
			"house", "home", "building", "city", "mountain", "mountains", "ocean", "sea",
			"beach", "forest", "woods", "jungle", "desert", "river", "lake", "island",
			"cave", "castle", "school", "office", "hospital", "church", "park", "garden",
			"sky", "space", "underwater", "subway", "train", "airplane", "car", "road", "street",
			"spaceship", "spacecraft", "ufo", "mars", "moon", "planet", "galaxy", "universe",
			"rocket", "shuttle", "station", "satellite",
		},
		Italian: {
			"casa", "edificio", "città", "montagna", "montagne", "oceano", "mare",
			"spiaggia", "foresta", "bosco", "giungla", "deserto", "fiume", "lago", "isola",
			"grotta", "castello", "scuola", "ufficio", "ospedale", "chiesa", "parco", "giardino",
			"cielo", "spazio", "sottomarino", "metropolitana", "treno", "aereo", "auto", "strada", "via",
			"astronave", "navicella", "astronavi", "ufo", "marte", "luna", "pianeta", "galassia", "universo",
			"razzo", "navetta", "stazione", "satellite",
		},
		Spanish: {
			"casa", "edificio", "ciudad", "montaña", "montañas", "océano", "mar",
			"playa", "bosque", "selva", "desierto", "río", "lago", "isla",
			"cueva", "castillo", "escuela", "oficina", "hospital", "iglesia", "parque", "jardín",
			"cielo", "espacio", "submarino", "metro", "tren", "avión", "coche", "carretera", "calle",
			"nave espacial", "ovni", "marte", "luna", "planeta", "galaxia", "universo",
			"cohete", "estación", "satélite",
		},
		French: {
			"maison", "bâtiment", "ville", "montagne", "montagnes", "océan", "mer",
			"plage", "forêt", "bois", "jungle", "désert", "rivière", "lac", "île",
			"grotte", "château", "école", "bureau", "hôpital", "église", "parc", "jardin",
			"ciel", "espace", "sous-marin", "métro", "train", "avion", "voiture", "route", "rue",
			"vaisseau spatial", "ovni", "mars", "lune", "planète", "galaxie", "univers",
			"fusée", "navette", "station", "satellite",
		},
		German: {
			"haus", "gebäude", "stadt", "berg", "berge", "ozean", "meer",
			"strand", "wald", "dschungel", "wüste", "fluss", "see", "insel",
			"höhle", "schloss", "schule", "büro", "krankenhaus", "kirche", "park", "garten",
			"himmel", "weltraum", "unterwasser", "u-bahn", "zug", "flugzeug", "auto", "straße", "weg",
			"raumschiff", "ufo", "mars", "mond", "planet", "galaxie", "universum",
			"rakete", "shuttle", "station", "satellit",
		},
	},
	CategoryActions: {
		English: {
			"flying", "falling", "running", "swimming", "walking", "jumping", "climbing",
			"fighting", "hiding", "escaping", "chasing", "searching", "finding", "losing",
			"talking", "singing", "dancing", "eating", "drinking", "sleeping", "waking",
			"traveling", "driving", "riding", "sailing", "diving", "floating", "exploring",
			"spaceflight", "journeying", "teleporting", "landing", "launching", "hovering",
		},
		Italian: {
			"volare", "volavo", "volando", "cadere", "correre", "nuotare", "camminare",
			"saltare", "arrampicare", "combattere", "nascondere", "fuggire", "inseguire",
			"cercare", "trovare", "perdere", "parlare", "cantare", "ballare", "mangiare",
			"bere", "dormire", "svegliare", "viaggiare", "viaggiando", "guidare", "cavalcare",
			"navigare", "tuffare", "galleggiare", "esplorare", "esplorando", "astronavigare",
			"teletrasportare", "atterrare", "lanciare", "sospendere", "fluttuare", "andare",
		},
		Spanish: {
			"volar", "caer", "correr", "nadar", "caminar", "saltar", "escalar",
			"luchar", "esconder", "escapar", "perseguir", "buscar", "encontrar", "perder",
			"hablar", "cantar", "bailar", "comer", "beber", "dormir", "despertar",
			"viajar", "conducir", "montar", "navegar", "sumergir", "flotar",
		},
		French: {
			"voler", "tomber", "courir", "nager", "marcher", "sauter", "grimper",
			"combattre", "cacher", "échapper", "poursuivre", "chercher", "trouver", "perdre",
			"parler", "chanter", "danser", "manger", "boire", "dormir", "réveiller",
			"voyager", "conduire", "monter", "naviguer", "plonger", "flotter",
		},
		German: {
			"fliegen", "fallen", "rennen", "schwimmen", "gehen", "springen", "klettern",
			"kämpfen", "verstecken", "entkommen", "jagen", "suchen", "finden", "verlieren",
			"sprechen", "singen", "tanzen", "essen", "trinken", "schlafen", "aufwachen",
			"reisen", "fahren", "reiten", "segeln", "tauchen", "schweben",
		},
	},
	CategoryEmotions: {
		English: {
			"fear", "afraid", "scared", "happy", "excited", "sad", "angry", "confused",
			"lost", "alone", "trapped", "free", "peaceful", "calm", "anxious", "stressed",
			"overwhelmed", "love", "hate", "joy", "sorrow", "surprise", "disgust", "shame",
		},
		Italian: {
			"paura", "spaventato", "terrorizzato", "felice", "eccitato", "triste", "arrabbiato", "confuso",
			"perso", "solo", "intrappolato", "libero", "pacifico", "calmo", "ansioso", "stressato",
			"sopraffatto", "amore", "odio", "gioia", "dolore", "sorpresa", "disgusto", "vergogna",
		},
		Spanish: {
			"miedo", "asustado", "aterrado", "feliz", "emocionado", "triste", "enfadado", "confundido",
			"perdido", "solo", "atrapado", "libre", "pacífico", "tranquilo", "ansioso", "estresado",
			"abrumado", "amor", "odio", "alegría", "tristeza", "sorpresa", "asco", "vergüenza",
		},
		French: {
			"peur", "effrayé", "terrifié", "heureux", "excité", "triste", "en colère", "confus",
			"perdu", "seul", "piégé", "libre", "paisible", "calme", "anxieux", "stressé",
			"débordé", "amour", "haine", "joie", "chagrin", "surprise", "dégoût", "honte",
		},
		German: {
			"angst", "ängstlich", "erschrocken", "glücklich", "aufgeregt", "traurig", "wütend", "verwirrt",
			"verloren", "allein", "gefangen", "frei", "friedlich", "ruhig", "besorgt", "gestresst",
			"überfordert", "liebe", "hass", "freude", "kummer", "überraschung", "ekel", "scham",
		},
	},
	CategoryCharacters: {
		English: {
			"family", "friend", "stranger", "monster", "animal", "dog", "cat", "bird",
			"snake", "spider", "insect", "bear", "wolf", "lion", "tiger", "fish", "shark",
			"human", "child", "adult", "mother", "father", "sister", "brother",
			"ghost", "spirit", "angel", "demon", "alien", "aliens", "extraterrestrial", "robot", "astronaut", "zombie",
		},
		Italian: {
			"famiglia", "amico", "sconosciuto", "mostro", "animale", "cane", "gatto", "uccello",
			"serpente", "ragno", "insetto", "orso", "lupo", "leone", "tigre", "pesce", "squalo",
			"umano", "bambino", "adulto", "madre", "padre", "sorella", "fratello",
			"fantasma", "spirito", "angelo", "demone", "alieno", "alieni", "extraterrestre", "robot", "astronauta", "zombi",
		},
		Spanish: {
			"familia", "amigo", "extraño", "monstruo", "animal", "perro", "gato", "pájaro",
			"serpiente", "araña", "insecto", "oso", "lobo", "león", "tigre", "pez", "tiburón",
			"humano", "niño", "adulto", "madre", "padre", "hermana", "hermano",
			"fantasma", "espíritu", "ángel", "demonio", "extraterrestre", "robot", "zombi",
		},
		French: {
			"famille", "ami", "étranger", "monstre", "animal", "chien", "chat", "oiseau",
			"serpent", "araignée", "insecte", "ours", "loup", "lion", "tigre", "poisson", "requin",
			"humain", "enfant", "adulte", "mère", "père", "soeur", "frère",
			"fantôme", "esprit", "ange", "démon", "extraterrestre", "robot", "zombie",
		},
		German: {
			"familie", "freund", "fremder", "monster", "tier", "hund", "katze", "vogel",
			"schlange", "spinne", "insekt", "bär", "wolf", "löwe", "tiger", "fisch", "hai",
			"mensch", "kind", "erwachsener", "mutter", "vater", "schwester", "bruder",
			"geist", "seele", "engel", "dämon", "alien", "roboter", "zombie",
		},
	},
	CategoryElements: {
		English: {
			"water", "fire", "earth", "air", "wind", "light", "dark", "darkness", "sun",
			"moon", "stars", "cloud", "rain", "snow", "ice", "storm", "thunder",
			"lightning", "rainbow", "shadow", "nature", "tree", "flower", "rock", "mountain",
		},
		Italian: {
			"acqua", "fuoco", "terra", "aria", "vento", "luce", "buio", "oscurità", "sole",
			"luna", "stelle", "nuvola", "pioggia", "neve", "ghiaccio", "tempesta", "tuono",
			"fulmine", "arcobaleno", "ombra", "natura", "albero", "fiore", "roccia", "montagna",
		},
		Spanish: {
			"agua", "fuego", "tierra", "aire", "viento", "luz", "oscuro", "oscuridad", "sol",
			"luna", "estrellas", "nube", "lluvia", "nieve", "hielo", "tormenta", "trueno",
			"relámpago", "arcoíris", "sombra", "naturaleza", "árbol", "flor", "roca", "montaña",
		},
		French: {
			"eau", "feu", "terre", "air", "vent", "lumière", "sombre", "obscurité", "soleil",
			"lune", "étoiles", "nuage", "pluie", "neige", "glace", "tempête", "tonnerre",
			"éclair", "arc-en-ciel", "ombre", "nature", "arbre", "fleur", "rocher", "montagne",
		},
		German: {
			"wasser", "feuer", "erde", "luft", "wind", "licht", "dunkel", "dunkelheit", "sonne",
			"mond", "sterne", "wolke", "regen", "schnee", "eis", "sturm", "donner",
			"blitz", "regenbogen", "schatten", "natur", "baum", "blume", "felsen", "berg",
		},
	},
	CategoryConcepts: {
		English: {
			"time", "death", "life", "birth", "future", "past", "memory", "dream",
			"nightmare", "reality", "fantasy", "magic", "power", "control", "freedom",
			"escape", "transformation", "change", "beginning", "end", "infinity",
			"universe", "world", "dimension", "portal", "door",
		},
		Italian: {
			"tempo", "morte", "vita", "nascita", "futuro", "passato", "memoria", "sogno",
			"incubo", "realtà", "fantasia", "magia", "potere", "controllo", "libertà",
			"fuga", "trasformazione", "cambiamento", "inizio", "fine", "infinito",
			"universo", "mondo", "dimensione", "portale", "porta",
		},
		Spanish: {
			"tiempo", "muerte", "vida", "nacimiento", "futuro", "pasado", "memoria", "sueño",
			"pesadilla", "realidad", "fantasía", "magia", "poder", "control", "libertad",
			"escape", "transformación", "cambio", "comienzo", "fin", "infinito",
			"universo", "mundo", "dimensión", "portal", "puerta",
		},
		French: {
			"temps", "mort", "vie", "naissance", "futur", "passé", "mémoire", "rêve",
			"cauchemar", "réalité", "fantaisie", "magie", "pouvoir", "contrôle", "liberté",
			"évasion", "transformation", "changement", "début", "fin", "infini",
			"univers", "monde", "dimension", "portail", "porte",
		},
		German: {
			"zeit", "tod", "leben", "geburt", "zukunft", "vergangenheit", "erinnerung", "traum",
			"albtraum", "realität", "fantasie", "magie", "kraft", "kontrolle", "freiheit",
			"flucht", "verwandlung", "veränderung", "anfang", "ende", "unendlichkeit",
			"universum", "welt", "dimension", "portal", "tür",
		},
	},
}

// keywordsByLang maps each supported language to keyword -> category
var keywordsByLang = buildKeywordMaps()

func buildKeywordMaps() map[Language]map[string]Category {
	maps := make(map[Language]map[string]Category, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		maps[lang] = make(map[string]Category)
	}
	for _, category := range categoryOrder {
		for lang, keywords := range lexiconData[category] {
			for _, keyword := range keywords {
				maps[lang][keyword] = category
			}
		}
	}
	return maps
}

// LexiconFor returns the keyword -> category map for a language
func LexiconFor(lang Language) map[string]Category {
	return keywordsByLang[lang]
}

// genericFallbackTags is returned when extraction yields nothing
var genericFallbackTags = map[Language][]string{
	English: {"dream", "mystery", "experience"},
	Italian: {"sogno", "mistero", "esperienza"},
	Spanish: {"sueño", "misterio", "experiencia"},
	French:  {"rêve", "mystère", "expérience"},
	German:  {"traum", "mysterium", "erfahrung"},
}

// FallbackTags returns the localized generic tag list for a language
func FallbackTags(lang Language) []string {
	if tags, ok := genericFallbackTags[lang]; ok {
		return append([]string(nil), tags...)
	}
	return append([]string(nil), genericFallbackTags[DefaultLanguage]...)
}
