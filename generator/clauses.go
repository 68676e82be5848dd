package generator

import (
	"math/rand"
	"strings"

	"github.com/FlavioLombardi95/dist-gestionale/models"
	"github.com/FlavioLombardi95/dist-gestionale/utils"
)

// Clauses are the natural-language fragments a template draws from.
// Empty fields mean "no clause", never a placeholder token.
type Clauses struct {
	MaterialColor  string
	Condition      string
	Rarity         string
	Target         string
	BrandAdjective string
	Det            string
	Indet          string
	DisplayName    string
}

// conditionPhrasings holds the agreement-marked variants per condition.
var conditionPhrasings = map[models.Condition][]string{
	models.ConditionExcellent: {
		"in condizioni eccellenti",
		"in perfette condizioni",
		"mantenut* perfettamente",
	},
	models.ConditionVeryGood: {
		"in ottime condizioni",
		"ben conservat*",
		"tenut* benissimo",
	},
	models.ConditionGood: {
		"in buone condizioni",
		"ben tenut*",
	},
	models.ConditionFair: {
		"in discrete condizioni",
		"usat* ma funzionale",
	},
}

var targetPhrases = map[string]string{
	"intenditrici":          "per intenditrici",
	"collezionisti":         "per veri collezionisti",
	"amanti del vintage":    "per chi ama il vintage autentico",
	"appassionati di lusso": "per appassionati di lusso",
	"chi ama distinguersi":  "per chi ama distinguersi",
}

// genericBrandAdjectives is the fallback for unrecognized brands.
var genericBrandAdjectives = []string{"elegante", "raffinato"}

// buildClauses assembles every clause fragment for one generation call.
// All sub-builders are pure; rng only picks among synonymous phrasings.
func buildClauses(item models.Item, cls *Classified, t ProductType, g Gender, vocab *Vocabulary, rng *rand.Rand) Clauses {
	return Clauses{
		MaterialColor:  materialColorClause(item.Material, item.Color, cls, g),
		Condition:      conditionClause(item.Condition, g, rng),
		Rarity:         rarityClause(item.Rarity, g, rng),
		Target:         targetClause(item.Target),
		BrandAdjective: brandAdjective(item.Brand, g, vocab, rng),
		Det:            determiner(g),
		Indet:          indeterminer(g),
		DisplayName:    displayName(item.Name, item.Brand, t),
	}
}

// materialColorClause builds the "in <materiale> <colore>" fragment.
// When the material is leather and the keywords mention another textile,
// the two are combined ("in tela e pelle nera"). Missing fields degrade
// to partial phrasings; both missing yields an empty clause.
func materialColorClause(material, color string, cls *Classified, g Gender) string {
	material = utils.NormalizeToken(material)
	color = utils.NormalizeToken(color)

	switch {
	case material != "" && color != "":
		agreed := Agree(color, g)
		if strings.Contains(material, "pelle") {
			for _, other := range cls.Materiali {
				if other != material && (other == "tela" || other == "canvas" || other == "tessuto") {
					return "in " + other + " e pelle " + agreed
				}
			}
		}
		return "in " + material + " " + agreed
	case material != "":
		return "in " + material
	case color != "":
		return "color " + Agree(color, g)
	default:
		return ""
	}
}

// conditionClause picks one of the synonymous phrasings for the item
// condition. An empty condition yields no clause; an unrecognized one
// degrades to the Buone phrasings.
func conditionClause(condition string, g Gender, rng *rand.Rand) string {
	if strings.TrimSpace(condition) == "" {
		return ""
	}
	options := conditionPhrasings[models.ParseCondition(condition)]
	return expandSuffix(options[rng.Intn(len(options))], g)
}

// rarityClause is empty for common items and picks an agreement-adjusted
// phrasing for the other tiers.
func rarityClause(rarity string, g Gender, rng *rand.Rand) string {
	var options []string
	switch models.ParseRarity(rarity) {
	case models.RarityUnobtainable:
		options = []string{Agree("introvabile", g), "praticamente " + Agree("introvabile", g)}
	case models.RarityVeryRare:
		options = []string{"molto " + Agree("raro", g), "rarissim*"}
	case models.RarityRare:
		options = []string{Agree("raro", g)}
	default:
		return ""
	}
	return expandSuffix(options[rng.Intn(len(options))], g)
}

// targetClause maps the target audience to its fixed phrase; unknown or
// absent targets yield an empty clause.
func targetClause(target string) string {
	return targetPhrases[utils.NormalizeToken(target)]
}

// brandAdjective picks a laudatory adjective for the brand, falling back
// to the generic pair for unrecognized brands.
func brandAdjective(brand string, g Gender, vocab *Vocabulary, rng *rand.Rand) string {
	options := vocab.BrandAdjectives[utils.NormalizeToken(brand)]
	if len(options) == 0 {
		options = genericBrandAdjectives
	}
	return Agree(options[rng.Intn(len(options))], g)
}

// determiner returns the definite article for the resolved gender,
// including the plural-only forms used by scarpe and pantaloni.
func determiner(g Gender) string {
	switch {
	case g.Feminine && g.Plural:
		return "le"
	case g.Feminine:
		return "la"
	case g.Plural:
		return "i"
	default:
		return "il"
	}
}

// indeterminer returns the indefinite article, with the partitive plural
// forms ("delle scarpe", "dei pantaloni").
func indeterminer(g Gender) string {
	switch {
	case g.Feminine && g.Plural:
		return "delle"
	case g.Feminine:
		return "una"
	case g.Plural:
		return "dei"
	default:
		return "un"
	}
}

// displayName strips the brand out of the item name and prepends the
// product type when the name does not already carry it.
func displayName(name, brand string, t ProductType) string {
	cleaned := name
	if brand != "" {
		cleaned = replaceFold(cleaned, brand, "")
	}
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if t == TypeGenerico {
		if cleaned == "" {
			return "articolo"
		}
		return cleaned
	}
	if strings.Contains(strings.ToLower(cleaned), string(t)) {
		return cleaned
	}
	return strings.TrimSpace(string(t) + " " + cleaned)
}

// replaceFold removes every case-insensitive occurrence of old from s.
func replaceFold(s, old, repl string) string {
	lower := strings.ToLower(s)
	oldLower := strings.ToLower(old)
	var b strings.Builder
	for {
		i := strings.Index(lower, oldLower)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		b.WriteString(repl)
		s = s[i+len(old):]
		lower = lower[i+len(oldLower):]
	}
}
