package models

import "strings"

// Item represents a catalog entry as handed over by the catalog layer.
// The generator only reads it; ID is used as the anti-repetition key.
type Item struct {
	ID              string   `json:"id"`
	Brand           string   `json:"brand"`
	Name            string   `json:"name"`
	Color           string   `json:"color"`
	Material        string   `json:"material"`
	Keywords        []string `json:"keywords"`
	CommercialTerms []string `json:"commercialTerms"`
	Condition       string   `json:"condition"`
	Rarity          string   `json:"rarity"`
	Vintage         bool     `json:"vintage"`
	Target          string   `json:"target"`
}

// Condition describes the state of wear of an item.
// The Italian values are the canonical ones stored by the catalog.
type Condition string

const (
	ConditionExcellent Condition = "Eccellenti"
	ConditionVeryGood  Condition = "Ottime"
	ConditionGood      Condition = "Buone"
	ConditionFair      Condition = "Discrete"
)

// ParseCondition maps a free-text condition value to the enum.
// Accepts both the Italian catalog values and the English names.
// Unknown values degrade to ConditionGood, never to an error.
func ParseCondition(s string) Condition {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eccellenti", "eccellente", "excellent":
		return ConditionExcellent
	case "ottime", "ottimo", "verygood", "very good":
		return ConditionVeryGood
	case "buone", "buono", "good":
		return ConditionGood
	case "discrete", "discreto", "fair":
		return ConditionFair
	default:
		return ConditionGood
	}
}

// Rarity describes how hard an item is to find on the market.
type Rarity string

const (
	RarityCommon       Rarity = "Comune"
	RarityRare         Rarity = "Raro"
	RarityVeryRare     Rarity = "Molto Raro"
	RarityUnobtainable Rarity = "Introvabile"
)

// ParseRarity maps a free-text rarity value to the enum.
// Unknown values degrade to RarityCommon, which yields no rarity clause.
func ParseRarity(s string) Rarity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raro", "rara", "rare":
		return RarityRare
	case "molto raro", "molto rara", "veryrare", "very rare":
		return RarityVeryRare
	case "introvabile", "unobtainable":
		return RarityUnobtainable
	default:
		return RarityCommon
	}
}
