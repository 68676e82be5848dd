package generator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/FlavioLombardi95/dist-gestionale/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func chanelItem() models.Item {
	return models.Item{
		ID:        "item-1",
		Brand:     "Chanel",
		Name:      "Borsa 2.55",
		Color:     "Nero",
		Material:  "Pelle",
		Condition: "Eccellenti",
		Rarity:    "Raro",
		Vintage:   true,
	}
}

func TestGenerateChanelScenario(t *testing.T) {
	engine := newTestEngine(t)
	rng := rand.New(rand.NewSource(1))

	got := engine.Generate(chanelItem(), StyleElegant, rng)

	if got == "" {
		t.Fatal("generate must always return a sentence")
	}
	if !strings.Contains(got, "Chanel") {
		t.Errorf("missing brand in %q", got)
	}
	if !strings.Contains(strings.ToLower(got), "nera") {
		t.Errorf("expected feminine agreement 'nera' in %q", got)
	}
	for _, artifact := range []string{"None", " ,", "  ", "in ."} {
		if strings.Contains(got, artifact) {
			t.Errorf("artifact %q in %q", artifact, got)
		}
	}
}

func TestGenerateUnknownBrandMinimalItem(t *testing.T) {
	engine := newTestEngine(t)
	rng := rand.New(rand.NewSource(2))

	item := models.Item{ID: "item-2", Brand: "MisteroBrand", Name: "Borsa hobo"}
	got := engine.Generate(item, StyleProfessional, rng)

	if got == "" {
		t.Fatal("generate must always return a sentence")
	}
	for _, artifact := range []string{"in .", ": ,", "None", "  ", " ,"} {
		if strings.Contains(got, artifact) {
			t.Errorf("artifact %q in %q", artifact, got)
		}
	}
}

func TestGenerateEmptyConditionCommonRarity(t *testing.T) {
	engine := newTestEngine(t)
	rng := rand.New(rand.NewSource(3))

	item := models.Item{ID: "item-3", Brand: "Gucci", Name: "Cintura GG", Rarity: "Comune"}
	got := engine.Generate(item, StyleFriendly, rng)

	if got == "" {
		t.Fatal("generate must always return a sentence")
	}
	if strings.Contains(got, "  ") || strings.Contains(got, " ,") {
		t.Errorf("malformed output: %q", got)
	}
}

func TestGenerateAvoidsImmediateRepetition(t *testing.T) {
	differs := 0
	for seed := int64(0); seed < 10; seed++ {
		engine := newTestEngine(t)
		rng := rand.New(rand.NewSource(seed))
		first := engine.Generate(chanelItem(), StyleProfessional, rng)
		second := engine.Generate(chanelItem(), StyleProfessional, rng)
		if first != second {
			differs++
		}
	}
	if differs < 8 {
		t.Fatalf("consecutive generations repeated too often: %d/10 differed", differs)
	}
}

func TestGenerateRecordsMemory(t *testing.T) {
	engine := newTestEngine(t)
	rng := rand.New(rand.NewSource(4))

	got := engine.Generate(chanelItem(), StyleElegant, rng)
	last, ok := engine.Memory().Last("item-1")
	if !ok {
		t.Fatal("generation should record the sentence for the item")
	}
	if last != got {
		t.Fatalf("stored pattern %q does not match output %q", last, got)
	}
}

func TestGenerateOutreachHasCallToAction(t *testing.T) {
	engine := newTestEngine(t)
	rng := rand.New(rand.NewSource(5))

	item := chanelItem()
	item.CommercialTerms = []string{"promozione"}
	got := engine.Generate(item, StyleOutreach, rng)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("outreach message should have two lines, got %d: %q", len(lines), got)
	}
	if lines[0] == "" || lines[1] == "" {
		t.Fatalf("both lines must be non-empty: %q", got)
	}
}

func TestGenerateOutreachRecordsOnlyDescriptiveLine(t *testing.T) {
	engine := newTestEngine(t)
	rng := rand.New(rand.NewSource(6))

	got := engine.Generate(chanelItem(), StyleOutreach, rng)
	lines := strings.Split(got, "\n")
	last, _ := engine.Memory().Last("item-1")
	if last != lines[0] {
		t.Fatalf("memory should store the descriptive line, got %q", last)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	first := newTestEngine(t).Generate(chanelItem(), StyleEmotional, rand.New(rand.NewSource(9)))
	second := newTestEngine(t).Generate(chanelItem(), StyleEmotional, rand.New(rand.NewSource(9)))
	if first != second {
		t.Fatalf("same seed must reproduce the same sentence:\n%q\n%q", first, second)
	}
}

func TestGenerateDegradedItemStillPlausible(t *testing.T) {
	engine := newTestEngine(t)
	rng := rand.New(rand.NewSource(7))

	got := engine.Generate(models.Item{ID: "x"}, StyleExclusive, rng)
	if got == "" {
		t.Fatal("even an empty item must produce a sentence")
	}
	if len([]rune(got)) < DefaultConfig().MinLength {
		t.Fatalf("output below the quality-gate floor: %q", got)
	}
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SimilarityThreshold = 2
	if _, err := NewEngine(cfg, nil); err == nil {
		t.Fatal("expected config validation error")
	}
	cfg = DefaultConfig()
	cfg.TopWeights = nil
	if _, err := NewEngine(cfg, nil); err == nil {
		t.Fatal("expected config validation error")
	}
	cfg = DefaultConfig()
	cfg.TopWeights = []int{0}
	if _, err := NewEngine(cfg, nil); err == nil {
		t.Fatal("zero selection weight must be rejected")
	}
	cfg = DefaultConfig()
	cfg.TopWeights = []int{5, -1, 2}
	if _, err := NewEngine(cfg, nil); err == nil {
		t.Fatal("negative selection weight must be rejected")
	}
}

func TestParseStyleFallback(t *testing.T) {
	if got := ParseStyle("stile-misterioso"); got != StyleProfessional {
		t.Fatalf("unknown style should fall back to professional, got %s", got)
	}
	if got := ParseStyle("direct-outreach"); got != StyleOutreach {
		t.Fatalf("want outreach, got %s", got)
	}
	if got := ParseStyle("ELEGANT"); got != StyleElegant {
		t.Fatalf("style parsing should be case-insensitive, got %s", got)
	}
}
