package generator

import (
	"regexp"
	"strings"
	"unicode"
)

type cleanupRule struct {
	pattern *regexp.Regexp
	repl    string
}

// cleanupRules run in order, repeatedly, until the text stops changing.
// They collapse whitespace, reattach punctuation, drop doubled marks and
// fix the un'/una elision errors the templates can produce.
var cleanupRules = []cleanupRule{
	{regexp.MustCompile(`\s+`), " "},
	{regexp.MustCompile(`\s+([,.:;!?])`), "$1"},
	{regexp.MustCompile(`([,;:!?])(\p{L})`), "$1 $2"},
	{regexp.MustCompile(`,\s*,`), ","},
	{regexp.MustCompile(`\.\s*\.`), "."},
	{regexp.MustCompile(`:\s*:`), ":"},
	{regexp.MustCompile(`:\s*,`), ":"},
	{regexp.MustCompile(`:\s*\.`), "."},
	{regexp.MustCompile(`,\s*\.`), "."},
	{regexp.MustCompile(`\.\s*,`), "."},
	{regexp.MustCompile(`\b(un|Un)'\s+`), "$1 "},
	{regexp.MustCompile(`\b(un|Un)a\s+([aeiouàèéìòù])`), "${1}'$2"},
	{regexp.MustCompile(`^[\s,.:;]+`), ""},
}

// Normalize is the final cleanup pass over a generated sentence. It is
// idempotent: normalizing an already-normalized sentence returns it
// unchanged.
func Normalize(s string) string {
	text := strings.TrimSpace(s)
	for i := 0; i < 10; i++ {
		next := applyRules(text)
		next = removeAdjacentDuplicates(next)
		if next == text {
			break
		}
		text = next
	}
	return capitalizeSentences(strings.TrimSpace(text))
}

func applyRules(s string) string {
	for _, rule := range cleanupRules {
		s = rule.pattern.ReplaceAllString(s, rule.repl)
	}
	return s
}

// removeAdjacentDuplicates drops the second of two identical consecutive
// words ("in pelle pelle nera"), keeping any trailing punctuation.
func removeAdjacentDuplicates(s string) string {
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	prev := ""
	for _, f := range fields {
		bare := strings.ToLower(strings.TrimRight(f, ",.:;!?"))
		if bare != "" && bare == prev {
			trailing := f[len(strings.TrimRight(f, ",.:;!?")):]
			if trailing != "" && len(out) > 0 {
				out[len(out)-1] += trailing
			}
			continue
		}
		out = append(out, f)
		prev = bare
	}
	return strings.Join(out, " ")
}

// capitalizeSentences uppercases the first letter of the string and the
// first letter after each sentence-terminal mark.
func capitalizeSentences(s string) string {
	runes := []rune(s)
	capitalizeNext := true
	for i, r := range runes {
		switch {
		case capitalizeNext && unicode.IsLetter(r):
			runes[i] = unicode.ToUpper(r)
			capitalizeNext = false
		case capitalizeNext && unicode.IsDigit(r):
			capitalizeNext = false
		case r == '.' || r == '!' || r == '?':
			capitalizeNext = true
		}
	}
	return string(runes)
}

// fallbackSentence is the hard floor returned when normalization leaves
// an implausibly short or still-broken sentence.
func fallbackSentence(brand string) string {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return "Elegante articolo di lusso, in ottime condizioni."
	}
	return Normalize("Elegante articolo " + brand + ", in ottime condizioni.")
}

// plausible reports whether a normalized sentence passes the quality
// gate: long enough and free of malformed markers.
func plausible(s string, minLength int) bool {
	if len([]rune(s)) < minLength {
		return false
	}
	if strings.Contains(s, "  ") {
		return false
	}
	return !isMalformed(s)
}
