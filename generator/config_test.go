package generator

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadVocabOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yaml")
	overlayYAML := `
colori:
  - pervinca
materiali:
  - rafia
brandAdjectives:
  Rolex:
    - prezioso
`
	if err := os.WriteFile(path, []byte(overlayYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	overlay, err := LoadVocabOverlay(path)
	if err != nil {
		t.Fatalf("LoadVocabOverlay: %v", err)
	}

	vocab := DefaultVocabulary()
	vocab.Apply(overlay)

	c := NewClassifier(vocab, 0)
	got := c.Classify([]string{"pervinca", "rafia"})
	if len(got.Colori) != 1 || got.Colori[0] != "pervinca" {
		t.Fatalf("overlay color not classified: %+v", got)
	}
	if len(got.Materiali) != 1 || got.Materiali[0] != "rafia" {
		t.Fatalf("overlay material not classified: %+v", got)
	}

	adj := brandAdjective("Rolex", Gender{Feminine: true}, vocab, testRand())
	if adj != "preziosa" {
		t.Fatalf("overlay brand adjective not used, got %q", adj)
	}
}

func TestLoadVocabOverlayMissingFile(t *testing.T) {
	if _, err := LoadVocabOverlay("/non/esiste.yaml"); err == nil {
		t.Fatal("expected error for missing overlay file")
	}
}

func TestApplyNilOverlay(t *testing.T) {
	vocab := DefaultVocabulary()
	vocab.Apply(nil) // must not panic
}
