package generator

import "testing"

func TestNormalizeCleanup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ciao  mondo .", "Ciao mondo."},
		{"frase: , strana", "Frase: strana"},
		{"un' articolo elegante", "Un articolo elegante"},
		{"Un' articolo raro", "Un articolo raro"},
		{"una offerta speciale", "Un'offerta speciale"},
		{"in pelle pelle nera", "In pelle nera"},
		{"bella ,vero", "Bella, vero"},
		{"fine frase. altra frase.", "Fine frase. Altra frase."},
		{"troppi punti.. qui", "Troppi punti. Qui"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Eleganza senza tempo firmata Chanel: questa borsa 2.55 in pelle nera è un tesoro da collezione, in perfette condizioni.",
		"Un'offerta speciale per te.",
		"ciao  mondo ,  come va .",
		"una occasione: un' articolo raro raro.",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent:\n once: %q\ntwice: %q", once, twice)
		}
	}
}

func TestPlausible(t *testing.T) {
	if plausible("Troppo corta.", 25) {
		t.Error("short sentence should fail the quality gate")
	}
	if plausible("Una frase abbastanza lunga ma  con doppio spazio dentro.", 25) {
		t.Error("doubled space should fail the quality gate")
	}
	if !plausible("Una frase abbastanza lunga e perfettamente pulita.", 25) {
		t.Error("clean sentence should pass the quality gate")
	}
}

func TestFallbackSentence(t *testing.T) {
	got := fallbackSentence("Chanel")
	if got != "Elegante articolo Chanel, in ottime condizioni." {
		t.Fatalf("unexpected fallback: %q", got)
	}
	if fallbackSentence("") == "" {
		t.Fatal("fallback must never be empty")
	}
}
