package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FlavioLombardi95/dist-gestionale/utils"
)

// VocabOverlay is an optional YAML file extending the built-in
// vocabulary tables, so the shop can add colors, materials or brand
// epithets without a rebuild.
type VocabOverlay struct {
	Colori          []string            `yaml:"colori"`
	Materiali       []string            `yaml:"materiali"`
	Stili           []string            `yaml:"stili"`
	Caratteristiche []string            `yaml:"caratteristiche"`
	Forme           []string            `yaml:"forme"`
	Dettagli        []string            `yaml:"dettagli"`
	BrandAdjectives map[string][]string `yaml:"brandAdjectives"`
}

// LoadVocabOverlay reads and parses an overlay file.
func LoadVocabOverlay(path string) (*VocabOverlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary overlay: %w", err)
	}
	var overlay VocabOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary overlay: %w", err)
	}
	return &overlay, nil
}

// Apply merges an overlay into the vocabulary. Call it before handing
// the vocabulary to NewEngine; tables are read-only afterwards.
func (v *Vocabulary) Apply(overlay *VocabOverlay) {
	if overlay == nil {
		return
	}
	addAll(v.Colori, overlay.Colori)
	addAll(v.Materiali, overlay.Materiali)
	addAll(v.Stili, overlay.Stili)
	addAll(v.Caratteristiche, overlay.Caratteristiche)
	addAll(v.Forme, overlay.Forme)
	addAll(v.Dettagli, overlay.Dettagli)
	for brand, adjectives := range overlay.BrandAdjectives {
		key := utils.NormalizeToken(brand)
		v.BrandAdjectives[key] = append(v.BrandAdjectives[key], adjectives...)
	}
}

func addAll(set map[string]struct{}, words []string) {
	for _, w := range words {
		if t := utils.NormalizeToken(w); t != "" {
			set[t] = struct{}{}
		}
	}
}
