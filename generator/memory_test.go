package generator

import "testing"

func TestMemoryRecordAndOverwrite(t *testing.T) {
	m := NewMemory(4)

	if _, ok := m.Last("a"); ok {
		t.Fatal("cold memory should have no entry")
	}

	m.Record("a", "prima frase")
	if last, ok := m.Last("a"); !ok || last != "prima frase" {
		t.Fatalf("want 'prima frase', got %q (ok=%v)", last, ok)
	}

	m.Record("a", "seconda frase")
	if last, _ := m.Last("a"); last != "seconda frase" {
		t.Fatalf("record should overwrite, got %q", last)
	}
	if m.Len() != 1 {
		t.Fatalf("overwrite should not grow the store, len=%d", m.Len())
	}
}

func TestMemoryEvictsOldest(t *testing.T) {
	m := NewMemory(2)
	m.Record("a", "uno")
	m.Record("b", "due")
	m.Record("c", "tre")

	if _, ok := m.Last("a"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	if _, ok := m.Last("b"); !ok {
		t.Fatal("entry b should survive")
	}
	if _, ok := m.Last("c"); !ok {
		t.Fatal("entry c should survive")
	}
}

func TestMemoryOverwriteRefreshesRecency(t *testing.T) {
	m := NewMemory(2)
	m.Record("a", "uno")
	m.Record("b", "due")
	m.Record("a", "uno bis")
	m.Record("c", "tre")

	if _, ok := m.Last("b"); ok {
		t.Fatal("least recently recorded entry should have been evicted")
	}
	if last, ok := m.Last("a"); !ok || last != "uno bis" {
		t.Fatalf("refreshed entry should survive eviction, got %q (ok=%v)", last, ok)
	}
}

func TestMemoryLastAt(t *testing.T) {
	m := NewMemory(2)
	if _, ok := m.LastAt("a"); ok {
		t.Fatal("cold memory should have no timestamp")
	}
	m.Record("a", "uno")
	at, ok := m.LastAt("a")
	if !ok || at.IsZero() {
		t.Fatalf("recorded entry should carry a timestamp, got %v (ok=%v)", at, ok)
	}
}

func TestIsRecentlyUsed(t *testing.T) {
	m := NewMemory(4)

	if m.IsRecentlyUsed("a", "qualsiasi frase", 0.7) {
		t.Fatal("cold memory must never constrain generation")
	}

	m.Record("a", "Borsa Chanel in pelle nera, in perfette condizioni.")
	if !m.IsRecentlyUsed("a", "Borsa Chanel in pelle nera, in perfette condizioni.", 0.7) {
		t.Fatal("identical sentence should count as recently used")
	}
	if m.IsRecentlyUsed("a", "Un cappotto di lana grigio per la stagione fredda.", 0.7) {
		t.Fatal("unrelated sentence should not count as recently used")
	}
}

func TestMemoryIgnoresEmptyID(t *testing.T) {
	m := NewMemory(4)
	m.Record("", "frase")
	if m.Len() != 0 {
		t.Fatal("empty item id should not be stored")
	}
}
