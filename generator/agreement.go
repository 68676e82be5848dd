package generator

import (
	"strings"
	"unicode"

	"github.com/FlavioLombardi95/dist-gestionale/utils"
)

// adjectiveForms lists the four inflected forms of each known adjective:
// masculine, feminine, masculine plural, feminine plural. Invariable
// adjectives map to themselves in all four slots.
var adjectiveForms = map[string][4]string{
	"nero":           {"nero", "nera", "neri", "nere"},
	"bianco":         {"bianco", "bianca", "bianchi", "bianche"},
	"rosso":          {"rosso", "rossa", "rossi", "rosse"},
	"blu":            {"blu", "blu", "blu", "blu"},
	"verde":          {"verde", "verde", "verdi", "verdi"},
	"marrone":        {"marrone", "marrone", "marroni", "marroni"},
	"beige":          {"beige", "beige", "beige", "beige"},
	"grigio":         {"grigio", "grigia", "grigi", "grigie"},
	"rosa":           {"rosa", "rosa", "rosa", "rosa"},
	"giallo":         {"giallo", "gialla", "gialli", "gialle"},
	"viola":          {"viola", "viola", "viola", "viola"},
	"arancione":      {"arancione", "arancione", "arancioni", "arancioni"},
	"bordeaux":       {"bordeaux", "bordeaux", "bordeaux", "bordeaux"},
	"cammello":       {"cammello", "cammello", "cammello", "cammello"},
	"raro":           {"raro", "rara", "rari", "rare"},
	"nuovo":          {"nuovo", "nuova", "nuovi", "nuove"},
	"usato":          {"usato", "usata", "usati", "usate"},
	"perfetto":       {"perfetto", "perfetta", "perfetti", "perfette"},
	"elegante":       {"elegante", "elegante", "eleganti", "eleganti"},
	"iconico":        {"iconico", "iconica", "iconici", "iconiche"},
	"mitico":         {"mitico", "mitica", "mitici", "mitiche"},
	"classico":       {"classico", "classica", "classici", "classiche"},
	"esclusivo":      {"esclusivo", "esclusiva", "esclusivi", "esclusive"},
	"prestigioso":    {"prestigioso", "prestigiosa", "prestigiosi", "prestigiose"},
	"leggendario":    {"leggendario", "leggendaria", "leggendari", "leggendarie"},
	"raffinato":      {"raffinato", "raffinata", "raffinati", "raffinate"},
	"sofisticato":    {"sofisticato", "sofisticata", "sofisticati", "sofisticate"},
	"distintivo":     {"distintivo", "distintiva", "distintivi", "distintive"},
	"moderno":        {"moderno", "moderna", "moderni", "moderne"},
	"intramontabile": {"intramontabile", "intramontabile", "intramontabili", "intramontabili"},
	"introvabile":    {"introvabile", "introvabile", "introvabili", "introvabili"},
}

func (g Gender) formIndex() int {
	switch {
	case g.Feminine && g.Plural:
		return 3
	case g.Plural:
		return 2
	case g.Feminine:
		return 1
	default:
		return 0
	}
}

// Agree returns the inflected form of a base adjective for the target
// gender and number. The lookup is case-insensitive and capitalization
// of the input is preserved. Unknown adjectives degrade to suffix rules
// and ultimately to the input unchanged; Agree never fails.
func Agree(adjective string, g Gender) string {
	base := utils.NormalizeToken(adjective)
	if base == "" {
		return adjective
	}

	inflected := ""
	if forms, ok := adjectiveForms[base]; ok {
		inflected = forms[g.formIndex()]
	} else {
		inflected = fallbackInflect(base, g)
	}

	if startsUpper(adjective) {
		return utils.CapitalizeFirst(inflected)
	}
	return inflected
}

// fallbackInflect applies the regular Italian suffix rules for words
// missing from the table.
func fallbackInflect(base string, g Gender) string {
	switch {
	case strings.HasSuffix(base, "o"):
		return base[:len(base)-1] + g.Suffix()
	case strings.HasSuffix(base, "a") && !g.Feminine:
		if g.Plural {
			return base[:len(base)-1] + "i"
		}
		return base[:len(base)-1] + "o"
	case strings.HasSuffix(base, "a") && g.Plural:
		return base[:len(base)-1] + "e"
	case strings.HasSuffix(base, "e") && g.Plural:
		return base[:len(base)-1] + "i"
	default:
		return base
	}
}

// expandSuffix resolves the '*' agreement markers left in phrasings and
// templates ("quest*", "mantenut* perfettamente") to the o/a/i/e ending
// for the target gender and number.
func expandSuffix(phrase string, g Gender) string {
	return strings.ReplaceAll(phrase, "*", g.Suffix())
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
