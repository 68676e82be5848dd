package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var wordRegex = regexp.MustCompile(`[\p{L}\d]+(?:'[\p{L}\d]+)?`)

// NormalizeToken lowercases and trims a free-text token.
func NormalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CapitalizeFirst uppercases the first letter of s, leaving the rest as is.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Words extracts the lowercased word tokens of a sentence, apostrophes
// kept inside elided forms ("un'offerta" stays one token).
func Words(s string) []string {
	return wordRegex.FindAllString(strings.ToLower(s), -1)
}

// WordSet returns the distinct word tokens of a sentence.
func WordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range Words(s) {
		set[w] = struct{}{}
	}
	return set
}

// Jaccard computes the word-overlap similarity of two sentences.
// Two empty sentences are considered identical.
func Jaccard(a, b string) float64 {
	setA := WordSet(a)
	setB := WordSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}
	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
