package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/FlavioLombardi95/dist-gestionale/models"
)

// Config controls the generator's scoring, memory and quality-gate
// behavior. Zero values are rejected; start from DefaultConfig.
type Config struct {
	// MemoryCapacity bounds the anti-repetition store.
	MemoryCapacity int
	// CacheCapacity bounds the classifier memoization cache.
	CacheCapacity int
	// SimilarityThreshold is the Jaccard overlap above which a candidate
	// counts as a repeat of the last sentence for the same item.
	SimilarityThreshold float64
	// IdealMinLength and IdealMaxLength delimit the preferred sentence
	// length band, in runes.
	IdealMinLength int
	IdealMaxLength int
	// MinLength is the quality-gate floor below which the fallback
	// sentence is returned.
	MinLength int
	// TopWeights are the selection weights for the best-ranked
	// candidates, best first.
	TopWeights []int
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		MemoryCapacity:      256,
		CacheCapacity:       512,
		SimilarityThreshold: 0.7,
		IdealMinLength:      60,
		IdealMaxLength:      180,
		MinLength:           25,
		TopWeights:          []int{5, 3, 2},
	}
}

func validateConfig(cfg Config) error {
	if cfg.MemoryCapacity <= 0 {
		return fmt.Errorf("memory capacity must be positive")
	}
	if cfg.SimilarityThreshold <= 0 || cfg.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold must be in (0, 1]")
	}
	if cfg.IdealMinLength <= 0 || cfg.IdealMaxLength <= cfg.IdealMinLength {
		return fmt.Errorf("invalid ideal length band")
	}
	if cfg.MinLength <= 0 {
		return fmt.Errorf("minimum length must be positive")
	}
	if len(cfg.TopWeights) == 0 {
		return fmt.Errorf("top weights are required")
	}
	for _, w := range cfg.TopWeights {
		if w <= 0 {
			return fmt.Errorf("top weights must be positive")
		}
	}
	return nil
}

// Engine generates Italian marketing sentences for catalog items. It is
// safe for concurrent use: the classifier cache and the anti-repetition
// memory are the only shared state and both are internally synchronized.
type Engine struct {
	cfg        Config
	vocab      *Vocabulary
	classifier *Classifier
	memory     *Memory
}

// NewEngine creates an engine over the given vocabulary; a nil
// vocabulary means the built-in one.
func NewEngine(cfg Config, vocab *Vocabulary) (*Engine, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Engine{
		cfg:        cfg,
		vocab:      vocab,
		classifier: NewClassifier(vocab, cfg.CacheCapacity),
		memory:     NewMemory(cfg.MemoryCapacity),
	}, nil
}

// Memory exposes the anti-repetition store, mainly for tests.
func (e *Engine) Memory() *Memory { return e.memory }

// Generate produces one normalized marketing message for the item in the
// requested style. It never fails: missing fields degrade to partial
// phrasings and a broken result is replaced by the fallback sentence.
// The outreach style appends a call-to-action line after a newline.
// Side effect: the emitted sentence is recorded for the item id.
func (e *Engine) Generate(item models.Item, style Style, rng *rand.Rand) string {
	classified := e.classifier.Classify(item.Keywords)
	productType := ResolveType(item.Name, item.Brand)
	gender := GenderFor(productType)
	clauses := buildClauses(item, classified, productType, gender, e.vocab, rng)

	candidates := make([]candidate, 0, 20)
	for _, tpl := range templatesFor(style) {
		text := fillTemplate(tpl, item, productType, gender, clauses)
		text = strings.Join(strings.Fields(text), " ")
		if isMalformed(text) {
			continue
		}
		candidates = append(candidates, candidate{
			text:  text,
			score: scoreCandidate(text, classified, style, item.Vintage, e.vocab, e.cfg),
		})
	}

	sentence := e.selectCandidate(item.ID, candidates, rng)
	sentence = Normalize(sentence)
	if !plausible(sentence, e.cfg.MinLength) {
		sentence = fallbackSentence(item.Brand)
	}

	e.memory.Record(item.ID, sentence)

	if style == StyleOutreach {
		return sentence + "\n" + Normalize(callToAction(item.CommercialTerms, rng))
	}
	return sentence
}

// selectCandidate ranks the candidates, drops the ones too similar to
// the item's last sentence (unless that would drop everything) and picks
// among the top ranks with decreasing weights.
func (e *Engine) selectCandidate(itemID string, candidates []candidate, rng *rand.Rand) string {
	if len(candidates) == 0 {
		return ""
	}
	ranked := rankCandidates(candidates)

	fresh := make([]candidate, 0, len(ranked))
	for _, c := range ranked {
		if !e.memory.IsRecentlyUsed(itemID, c.text, e.cfg.SimilarityThreshold) {
			fresh = append(fresh, c)
		}
	}
	if len(fresh) == 0 {
		fresh = ranked
	}
	return pickWeighted(fresh, e.cfg.TopWeights, rng)
}
