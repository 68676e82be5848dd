package generator

import "strings"

// ProductType is the coarse article category inferred from the item name.
type ProductType string

const (
	TypeBorsa      ProductType = "borsa"
	TypeScarpe     ProductType = "scarpe"
	TypeVestito    ProductType = "vestito"
	TypeTop        ProductType = "top"
	TypePantaloni  ProductType = "pantaloni"
	TypeGiacca     ProductType = "giacca"
	TypeAccessorio ProductType = "accessorio"
	TypeGenerico   ProductType = "generico"
)

// Gender carries Italian grammatical gender and number for agreement.
type Gender struct {
	Feminine bool
	Plural   bool
}

// Suffix returns the adjective ending for regular -o adjectives.
func (g Gender) Suffix() string {
	switch {
	case g.Feminine && g.Plural:
		return "e"
	case g.Feminine:
		return "a"
	case g.Plural:
		return "i"
	default:
		return "o"
	}
}

// typeKeywords is scanned in order; the first matching category wins.
var typeKeywords = []struct {
	Type  ProductType
	Words []string
}{
	{TypeBorsa, []string{"borsa", "borse", "bag", "clutch", "pochette", "zaino", "trolley", "valigia"}},
	{TypeScarpe, []string{"scarpa", "scarpe", "sandalo", "sandali", "boot", "stivale", "sneaker", "decollete", "pump"}},
	{TypeVestito, []string{"vestito", "abito", "dress", "gonna", "skirt"}},
	{TypeTop, []string{"camicia", "shirt", "blusa", "top", "maglia", "t-shirt", "polo"}},
	{TypePantaloni, []string{"pantalone", "pantaloni", "jeans", "short", "bermuda"}},
	{TypeGiacca, []string{"giacca", "blazer", "coat", "cappotto", "giubbotto", "parka"}},
	{TypeAccessorio, []string{"accessorio", "accessori", "cintura", "belt", "sciarpa", "foulard", "cappello"}},
}

// brandDefaultType covers names that carry no type keyword: the big
// houses are catalogued mostly through their bags.
var brandDefaultType = map[string]ProductType{
	"chanel":        TypeBorsa,
	"hermès":        TypeBorsa,
	"hermes":        TypeBorsa,
	"louis vuitton": TypeBorsa,
	"dior":          TypeBorsa,
	"gucci":         TypeBorsa,
	"prada":         TypeBorsa,
	"longchamp":     TypeBorsa,
	"fendi":         TypeBorsa,
}

var typeGender = map[ProductType]Gender{
	TypeBorsa:      {Feminine: true},
	TypeScarpe:     {Feminine: true, Plural: true},
	TypeVestito:    {},
	TypeTop:        {},
	TypePantaloni:  {Plural: true},
	TypeGiacca:     {Feminine: true},
	TypeAccessorio: {},
	TypeGenerico:   {},
}

// ResolveType infers the product type from the item name via ordered
// substring matching, falling back to the brand default table, then to
// the generic type.
func ResolveType(name, brand string) ProductType {
	nameLower := strings.ToLower(name)
	for _, entry := range typeKeywords {
		for _, word := range entry.Words {
			if strings.Contains(nameLower, word) {
				return entry.Type
			}
		}
	}
	if t, ok := brandDefaultType[strings.ToLower(strings.TrimSpace(brand))]; ok {
		return t
	}
	return TypeGenerico
}

// GenderFor returns the grammatical gender of a product type.
// Unmapped types default to masculine singular.
func GenderFor(t ProductType) Gender {
	if g, ok := typeGender[t]; ok {
		return g
	}
	return Gender{}
}
