package generator

import (
	"math/rand"
	"strings"

	"github.com/FlavioLombardi95/dist-gestionale/models"
	"github.com/FlavioLombardi95/dist-gestionale/utils"
)

// Style selects the tone of the generated sentence and which template
// set and vocabulary it draws from.
type Style string

const (
	StyleElegant      Style = "elegant"
	StyleEmotional    Style = "emotional"
	StyleFriendly     Style = "friendly"
	StyleProfessional Style = "professional"
	StyleExclusive    Style = "exclusive"
	StyleOutreach     Style = "outreach"
)

// ParseStyle maps a free-text style id to the enum. Unrecognized styles
// fall back to the professional default rather than erroring.
func ParseStyle(s string) Style {
	switch utils.NormalizeToken(s) {
	case "elegant", "elegante":
		return StyleElegant
	case "emotional", "emozionale":
		return StyleEmotional
	case "friendly", "amichevole":
		return StyleFriendly
	case "professional", "professionale":
		return StyleProfessional
	case "exclusive", "esclusivo":
		return StyleExclusive
	case "outreach", "direct-outreach", "direct outreach":
		return StyleOutreach
	default:
		return StyleProfessional
	}
}

// Template placeholders: {brand} {nome} {tipo} {materiali} {condizioni}
// {rarita} {target} {det} {indet} {agg} {iconico} {mitico}, plus '*'
// agreement markers resolved by expandSuffix. Clauses may be empty; the
// malformed-marker filter and the normalizer clean up the leftovers.
var styleTemplates = map[Style][]string{
	StyleProfessional: {
		"Eleganza senza tempo firmata {brand}: quest* {nome} {materiali} è un tesoro da collezione, {condizioni}.",
		"{agg} e {iconico}, {det} {brand} {nome} {materiali} è perfett* per chi cerca stile e unicità.",
		"{indet} {nome} {rarita} e affascinante {materiali}, firmat* {brand}: {condizioni}, pront* per una nuova storia.",
		"{det} {mitico} {brand} {nome}: {materiali}, {condizioni}. Un classico che non tramonta.",
		"Un tocco di classe firmato {brand}: {nome} {materiali}, {rarita} e {condizioni}.",
		"Perfett* {target}: {brand} {nome} {materiali}, {condizioni}.",
		"{tipo} {brand} {nome} {materiali}: un pezzo {rarita}, {condizioni}.",
		"Collezionabile e chic: {brand} {nome} {materiali}, {condizioni}, un classico senza tempo.",
		"Quest* {brand} {nome} ha tutto: eleganza, storia e carattere. {condizioni}.",
		"Stile {brand} in chiave vintage: {nome} {materiali}, {condizioni}. Un vero pezzo {rarita}.",
	},
	StyleElegant: {
		"Eleganza pura firmata {brand}: {det} {nome} {materiali} è una scelta di rara finezza, {condizioni}.",
		"Raffinatezza senza tempo: {brand} {nome} {materiali}, {condizioni}.",
		"{det} {brand} {nome} incarna un'eleganza discreta: {materiali}, {rarita}, sempre impeccabile.",
		"Classe ed equilibrio: quest* {nome} firmat* {brand} {materiali} è una scelta di stile, {condizioni}.",
		"Eleganza discreta e fascino vintage: {det} {brand} {nome} {materiali} è perfett* per ogni occasione, {condizioni}.",
		"Intramontabile e raffinat*: {det} {brand} {nome} {materiali}, {rarita}, bellissim*.",
		"{agg} come solo {brand} sa essere: {nome} {materiali}, {condizioni}.",
	},
	StyleEmotional: {
		"C'è una storia cucita in ogni dettaglio: {brand} {nome} {materiali}, {condizioni}, pront* per un nuovo capitolo.",
		"Un colpo di fulmine chiamato {brand}: quest* {nome} {materiali} sa emozionare, {condizioni}.",
		"Il fascino di un tesoro ritrovato: {nome} {brand} {materiali}, {rarita}, da amare a prima vista.",
		"Quest* {nome} {brand} non è solo un acquisto, è un'emozione: {materiali}, {condizioni}.",
		"Un sogno firmato {brand}: {nome} {materiali}, {condizioni}, pensato per chi ascolta il cuore.",
		"Ogni dettaglio racconta qualcosa: {brand} {nome} {materiali}, {rarita}, con tutto il fascino della sua storia.",
	},
	StyleFriendly: {
		"Cerchi un pezzo che faccia la differenza? {det} {brand} {nome} {materiali} fa al caso tuo, {condizioni}.",
		"Quest* {nome} {brand} è una vera chicca: {materiali}, {condizioni}, pront* da sfoggiare.",
		"Stile facile e immediato: {brand} {nome} {materiali}, {condizioni}. Difficile resistere.",
		"Vintage di lusso? Quest* {brand} {nome} {materiali} fa al caso tuo. {condizioni}.",
		"Un'occasione da non perdere: {brand} {nome} {materiali}, {rarita} e {condizioni}.",
		"Semplice: {brand} {nome} {materiali}, {condizioni}. Stile assicurato, ogni giorno.",
	},
	StyleExclusive: {
		"Per pochi, non per tutti: {brand} {nome} {materiali}, {rarita}, {condizioni}.",
		"{indet} {nome} che non passa inosservat*: firma {brand}, {materiali}, un pezzo {rarita}.",
		"Pezzo da collezione {target}: {brand} {nome} {materiali}, {rarita}, {condizioni}.",
		"Rarità e prestigio firmati {brand}: quest* {nome} {materiali} è un investimento di stile, {condizioni}.",
		"Semplicemente {iconico}: {brand} {nome} {materiali}, perfett* {target}.",
		"Riservat* a chi se ne intende: {det} {brand} {nome} {materiali}, {rarita}, {condizioni}.",
	},
}

// callToActions are the stock outreach closers; commercial terms from the
// item add parametrized variants on top.
var callToActions = []string{
	"Guarda tra i tuoi messaggi: c'è un'offerta ancora più vantaggiosa che ti abbiamo appena inviato.",
	"Ti abbiamo riservato un'offerta esclusiva con un ribasso extra.",
	"Dai un'occhiata alla nostra proposta scontata che ti abbiamo appena inviato.",
	"Controlla subito la tua casella: c'è un'offerta speciale con uno sconto in più per te.",
	"Approfitta dell'ulteriore sconto che ti abbiamo appena mandato.",
	"Ti abbiamo appena fatto arrivare un'offerta personale con uno sconto extra.",
	"Controlla i tuoi messaggi, ti aspetta un'ulteriore sorpresa.",
	"Diamo valore alla tua attenzione: ti abbiamo mandato uno sconto aggiuntivo.",
	"Guarda la proposta che ti abbiamo appena inviato, c'è un extra sconto incluso.",
	"Ti sta aspettando un'offerta con un ulteriore ribasso, già inviata!",
	"Dai un'occhiata all'offerta privata con sconto extra che ti abbiamo appena spedito.",
	"Controlla i tuoi messaggi, troverai uno sconto in più dedicato solo a te.",
	"Ti abbiamo appena inviato un'offerta speciale con un ulteriore ribasso.",
	"Guarda subito l'offerta personale con sconto aggiuntivo che ti abbiamo mandato.",
	"Nel tuo account c'è un ulteriore sconto riservato in esclusiva: appena inviato!",
	"Abbiamo preparato per te un'offerta scontata ancora più conveniente.",
	"Ti è stata inviata un'offerta con uno sconto supplementare: non lasciartela scappare.",
	"Guarda l'offerta extra che ti abbiamo appena riservato, è valida per poco.",
	"Abbiamo aggiunto uno sconto ulteriore per te: controlla la tua area offerte.",
	"Abbiamo appena applicato un ulteriore sconto alla tua offerta: non perdere!",
}

// templatesFor returns the descriptive template set for a style.
// Outreach reuses the professional set for its first line.
func templatesFor(style Style) []string {
	if style == StyleOutreach {
		return styleTemplates[StyleProfessional]
	}
	if set, ok := styleTemplates[style]; ok {
		return set
	}
	return styleTemplates[StyleProfessional]
}

// fillTemplate substitutes the clause values into one template and
// resolves the agreement markers.
func fillTemplate(tpl string, item models.Item, t ProductType, g Gender, c Clauses) string {
	replacer := strings.NewReplacer(
		"{brand}", strings.TrimSpace(item.Brand),
		"{nome}", c.DisplayName,
		"{tipo}", string(t),
		"{materiali}", c.MaterialColor,
		"{condizioni}", c.Condition,
		"{rarita}", c.Rarity,
		"{target}", c.Target,
		"{det}", c.Det,
		"{indet}", c.Indet,
		"{agg}", c.BrandAdjective,
		"{iconico}", Agree("iconico", g),
		"{mitico}", Agree("mitico", g),
	)
	return expandSuffix(replacer.Replace(tpl), g)
}

// callToAction picks the outreach closer, extending the stock list with
// variants built from the item's commercial terms.
func callToAction(terms []string, rng *rand.Rand) string {
	options := callToActions
	available := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			available = append(available, t)
		}
	}
	if len(available) > 0 {
		term := available[rng.Intn(len(available))]
		options = append(append([]string{}, callToActions...),
			"Abbiamo attivato per te una "+term+" esclusiva: controlla subito!",
			"Ti abbiamo riservato una "+term+" speciale, già disponibile nel tuo account.",
			"Approfitta della "+term+" che ti abbiamo appena inviato.",
		)
	}
	return options[rng.Intn(len(options))]
}
