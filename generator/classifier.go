package generator

import (
	"strings"
	"sync"

	"github.com/FlavioLombardi95/dist-gestionale/utils"
)

// Classified maps each semantic category to the keywords that matched it.
// Order mirrors the input order; a keyword lands in exactly one category.
type Classified struct {
	Colori          []string
	Materiali       []string
	Stili           []string
	Caratteristiche []string
	Forme           []string
	Dettagli        []string
	Altre           []string
}

// All returns the classified tokens in input order across all categories.
func (c *Classified) All() []string {
	out := make([]string, 0,
		len(c.Colori)+len(c.Materiali)+len(c.Stili)+
			len(c.Caratteristiche)+len(c.Forme)+len(c.Dettagli)+len(c.Altre))
	out = append(out, c.Colori...)
	out = append(out, c.Materiali...)
	out = append(out, c.Stili...)
	out = append(out, c.Caratteristiche...)
	out = append(out, c.Forme...)
	out = append(out, c.Dettagli...)
	out = append(out, c.Altre...)
	return out
}

// Classifier buckets free-text keywords into semantic categories.
// Classification is pure, so results are memoized on the normalized
// joined key; the cache is bounded and safe for concurrent use.
type Classifier struct {
	vocab    *Vocabulary
	capacity int

	mu    sync.RWMutex
	cache map[string]*Classified
	order []string
}

// NewClassifier creates a classifier over the given vocabulary.
// capacity bounds the memoization cache; zero disables caching.
func NewClassifier(vocab *Vocabulary, capacity int) *Classifier {
	return &Classifier{
		vocab:    vocab,
		capacity: capacity,
		cache:    make(map[string]*Classified),
	}
}

// Classify trims and lowercases each keyword, drops empty tokens and
// assigns every remaining token to exactly one category. Tokens matching
// no vocabulary set go to Altre; nothing is ever dropped once non-empty.
func (c *Classifier) Classify(keywords []string) *Classified {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if t := utils.NormalizeToken(kw); t != "" {
			normalized = append(normalized, t)
		}
	}

	key := strings.Join(normalized, "|")
	if c.capacity > 0 {
		c.mu.RLock()
		cached, ok := c.cache[key]
		c.mu.RUnlock()
		if ok {
			return cached
		}
	}

	result := &Classified{}
	for _, kw := range normalized {
		switch {
		case contains(c.vocab.Colori, kw):
			result.Colori = append(result.Colori, kw)
		case contains(c.vocab.Materiali, kw):
			result.Materiali = append(result.Materiali, kw)
		case contains(c.vocab.Stili, kw):
			result.Stili = append(result.Stili, kw)
		case contains(c.vocab.Caratteristiche, kw):
			result.Caratteristiche = append(result.Caratteristiche, kw)
		case contains(c.vocab.Forme, kw):
			result.Forme = append(result.Forme, kw)
		case contains(c.vocab.Dettagli, kw):
			result.Dettagli = append(result.Dettagli, kw)
		default:
			result.Altre = append(result.Altre, kw)
		}
	}

	if c.capacity > 0 {
		c.mu.Lock()
		if _, exists := c.cache[key]; !exists {
			if len(c.order) >= c.capacity {
				oldest := c.order[0]
				c.order = c.order[1:]
				delete(c.cache, oldest)
			}
			c.cache[key] = result
			c.order = append(c.order, key)
		}
		c.mu.Unlock()
	}

	return result
}

func contains(set map[string]struct{}, word string) bool {
	_, ok := set[word]
	return ok
}
