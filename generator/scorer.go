package generator

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/FlavioLombardi95/dist-gestionale/utils"
)

// malformedMarkers flag candidates whose empty clauses left broken
// punctuation behind; such candidates are rejected before scoring.
var malformedMarkers = []string{": ,", ": .", " :", "None", ", .", " ,", ",,", "::", ", e ."}

type candidate struct {
	text  string
	score int
}

func isMalformed(text string) bool {
	for _, marker := range malformedMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// scoreCandidate rates a filled template for plausibility. Bonuses for a
// comfortable length, semantic coverage of the classified keywords,
// style vocabulary and a vintage mention; a penalty when the sentence
// repeats itself. The result is floored at 1 so every surviving
// candidate stays selectable.
func scoreCandidate(text string, cls *Classified, style Style, vintage bool, vocab *Vocabulary, cfg Config) int {
	score := 0
	length := len([]rune(text))

	switch {
	case length >= cfg.IdealMinLength && length <= cfg.IdealMaxLength:
		score += 3
	case length >= cfg.IdealMinLength/2 && length <= cfg.IdealMaxLength*3/2:
		score++
	}

	lower := strings.ToLower(text)

	// Coverage of the item's own keywords and their contextual synonyms.
	for _, kw := range cls.All() {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	for category, words := range vocab.ContextWords {
		if categoryEmpty(cls, category) {
			continue
		}
		for _, w := range words {
			if strings.Contains(lower, w) {
				score++
			}
		}
	}

	for _, w := range vocab.StyleWords[style] {
		if strings.Contains(lower, w) {
			score += 2
		}
	}

	if vintage && strings.Contains(lower, "vintage") {
		score += 2
	}

	words := utils.Words(text)
	if len(words) > 0 {
		distinct := len(utils.WordSet(text))
		if float64(distinct)/float64(len(words)) < 0.6 {
			score -= 3
		}
	}

	if score < 1 {
		return 1
	}
	return score
}

func categoryEmpty(cls *Classified, category string) bool {
	switch category {
	case "colori":
		return len(cls.Colori) == 0
	case "materiali":
		return len(cls.Materiali) == 0
	case "stili":
		return len(cls.Stili) == 0
	case "caratteristiche":
		return len(cls.Caratteristiche) == 0
	case "forme":
		return len(cls.Forme) == 0
	case "dettagli":
		return len(cls.Dettagli) == 0
	default:
		return true
	}
}

// rankCandidates sorts candidates by score, best first; ties keep the
// template order so ranking stays deterministic.
func rankCandidates(cands []candidate) []candidate {
	ranked := append([]candidate{}, cands...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

// pickWeighted selects among the top-ranked candidates with decreasing
// weights, so repeated calls vary while still favoring quality.
func pickWeighted(ranked []candidate, weights []int, rng *rand.Rand) string {
	if len(ranked) == 0 {
		return ""
	}
	n := len(weights)
	if len(ranked) < n {
		n = len(ranked)
	}
	total := 0
	for _, w := range weights[:n] {
		total += w
	}
	roll := rng.Intn(total)
	for i, w := range weights[:n] {
		if roll < w {
			return ranked[i].text
		}
		roll -= w
	}
	return ranked[0].text
}
