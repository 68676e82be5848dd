package generator

// Vocabulary holds the lookup tables the generator works from. The zero
// value is not usable; start from DefaultVocabulary and extend it with an
// overlay file if needed. Tables are read-only after engine construction.
type Vocabulary struct {
	Colori          map[string]struct{}
	Materiali       map[string]struct{}
	Stili           map[string]struct{}
	Caratteristiche map[string]struct{}
	Forme           map[string]struct{}
	Dettagli        map[string]struct{}

	// BrandAdjectives maps a brand to its curated laudatory adjectives
	// (masculine base forms, agreement is applied later).
	BrandAdjectives map[string][]string

	// ContextWords maps each keyword category to related words counted by
	// the scorer as semantic coverage signals.
	ContextWords map[string][]string

	// StyleWords maps each style to the vocabulary that marks its tone.
	StyleWords map[Style][]string
}

func newSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// DefaultVocabulary returns the built-in Italian vocabulary tables.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Colori: newSet(
			"nero", "bianco", "rosso", "blu", "verde", "giallo", "marrone",
			"beige", "rosa", "viola", "arancione", "grigio", "oro", "argento",
			"celeste", "azzurro", "bordeaux", "navy", "cammello", "ecru",
			"turchese", "corallo",
		),
		Materiali: newSet(
			"pelle", "tessuto", "cotone", "seta", "nylon", "lino", "jeans",
			"velluto", "camoscio", "canvas", "paglia", "lana", "eco-pelle",
			"vernice", "gomma", "lycra", "poliestere", "cashmere", "raso",
			"tela", "mesh", "suede",
		),
		Stili: newSet(
			"elegante", "casual", "sportivo", "chic", "vintage", "moderno",
			"classico", "trendy", "glamour", "minimale", "bohemian", "rock",
			"sofisticato", "raffinato", "contemporaneo", "femminile", "androgino",
		),
		Caratteristiche: newSet(
			"comodo", "versatile", "pratico", "resistente", "leggero",
			"morbido", "durevole", "flessibile", "elastico", "traspirante",
			"impermeabile", "lussuoso", "pregiato", "esclusivo",
		),
		Forme: newSet(
			"ampio", "fitted", "aderente", "oversize", "slim", "largo",
			"stretto", "lungo", "corto", "mini", "midi", "maxi",
		),
		Dettagli: newSet(
			"tracolla", "zip", "bottoni", "borchie", "frange", "pizzo",
			"ricami", "stampa", "monogramma", "logo", "catena", "fibbia", "lacci",
		),
		BrandAdjectives: map[string][]string{
			"dior":          {"iconico", "mitico", "leggendario", "raffinato"},
			"chanel":        {"intramontabile", "classico", "elegante", "iconico"},
			"louis vuitton": {"iconico", "elegante", "prestigioso"},
			"hermès":        {"leggendario", "esclusivo", "prestigioso"},
			"hermes":        {"leggendario", "esclusivo", "prestigioso"},
			"gucci":         {"distintivo", "elegante", "iconico"},
			"prada":         {"sofisticato", "elegante", "moderno"},
		},
		ContextWords: map[string][]string{
			"colori":          {"colore", "tonalità", "nuance"},
			"materiali":       {"materiale", "finiture", "lavorazione"},
			"stili":           {"stile", "look", "carattere"},
			"caratteristiche": {"qualità", "comfort", "pregio"},
			"forme":           {"linea", "silhouette", "taglio"},
			"dettagli":        {"dettagli", "finiture", "particolari"},
		},
		StyleWords: map[Style][]string{
			StyleElegant:      {"eleganza", "elegante", "raffinato", "raffinata", "classe", "senza tempo"},
			StyleEmotional:    {"storia", "fascino", "emozione", "tesoro", "sogno"},
			StyleFriendly:     {"perfetto", "perfetta", "occasione", "caso tuo", "stile"},
			StyleProfessional: {"condizioni", "collezione", "firmato", "firmata", "investimento"},
			StyleExclusive:    {"esclusivo", "esclusiva", "introvabile", "collezionisti", "unicità", "rarità"},
			StyleOutreach:     {"offerta", "sconto", "riservato", "riservata", "esclusiva"},
		},
	}
}
