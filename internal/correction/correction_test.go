package correction

import (
	"testing"
)

func TestCorrectWordLevel(t *testing.T) {
	t.Parallel()
	c := New()

	got, changes := c.Correct("Ouvres Crome")
	if want := "ouvre chrome"; got != want {
		t.Errorf("Correct(%q) = %q, want %q", "Ouvres Crome", got, want)
	}
	if len(changes) != 2 {
		t.Fatalf("len(changes) = %d, want 2", len(changes))
	}
	for _, ch := range changes {
		if ch.Method != "dictionary" {
			t.Errorf("change %v method = %q, want dictionary", ch, ch.Method)
		}
	}
}

func TestCorrectPhraseLevel(t *testing.T) {
	t.Parallel()
	c := New()

	tests := []struct{ in, want string }{
		{"ouvre vis code", "ouvre vscode"},
		{"va sur you tube", "va sur youtube"},
		{"lance el m studio", "lance lm studio"},
		{"va sur git hub", "va sur github"},
	}
	for _, tt := range tests {
		if got, _ := c.Correct(tt.in); got != tt.want {
			t.Errorf("Correct(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCorrectDoesNotCorruptLongerWords(t *testing.T) {
	t.Parallel()
	c := New()

	// "scan" maps to "scanne" but must only fire on the whole word.
	in := "scanner le marche"
	if got, changes := c.Correct(in); got != in {
		t.Errorf("Correct(%q) = %q (changes %v), want unchanged", in, got, changes)
	}
	if got, _ := c.Correct("scan le marche"); got != "scanne le marche" {
		t.Errorf(`Correct("scan le marche") = %q, want "scanne le marche"`, got)
	}
}

func TestCorrectIsIdempotent(t *testing.T) {
	t.Parallel()
	c := New()

	inputs := []string{
		"ouvres crome et va sur gougueule",
		"lance le snipeur breakaout",
		"verouille le pc",
	}
	for _, in := range inputs {
		once, _ := c.Correct(in)
		twice, changes := c.Correct(once)
		if twice != once {
			t.Errorf("Correct(Correct(%q)) = %q, want fixed point %q", in, twice, once)
		}
		if len(changes) != 0 {
			t.Errorf("re-correcting %q applied changes: %v", once, changes)
		}
	}
}

func TestCorrectEmptyInput(t *testing.T) {
	t.Parallel()
	c := New()
	if got, changes := c.Correct("   "); got != "" || len(changes) != 0 {
		t.Errorf("Correct(whitespace) = (%q, %v), want empty and no changes", got, changes)
	}
}

func TestCorrectLearnedOverridesStatic(t *testing.T) {
	t.Parallel()
	c := New(WithLearned([]Rule{
		{Wrong: "crome", Right: "chromium", Category: "app"},
		{Wrong: "tradigne view", Right: "tradingview", Category: "site"},
	}))

	got, changes := c.Correct("ouvre crome")
	if want := "ouvre chromium"; got != want {
		t.Errorf("Correct() = %q, want learned override %q", got, want)
	}
	if len(changes) != 1 || changes[0].Method != "learned" {
		t.Errorf("changes = %v, want one learned change", changes)
	}

	if got, _ := c.Correct("va sur tradigne view"); got != "va sur tradingview" {
		t.Errorf("learned phrase rule not applied, got %q", got)
	}
}

func TestAlignerCorrectsUnknownWords(t *testing.T) {
	t.Parallel()
	a := NewAligner(
		[]string{"chrome", "tradingview", "spotify"},
		WithKnownWords([]string{"ouvre", "va", "sur"}),
	)

	got, changes := a.Align("ouvre chrom")
	if want := "ouvre chrome"; got != want {
		t.Errorf("Align() = %q, want %q", got, want)
	}
	if len(changes) != 1 || changes[0].Method != "phonetic" {
		t.Fatalf("changes = %v, want one phonetic change", changes)
	}
}

func TestAlignerLeavesKnownWordsAlone(t *testing.T) {
	t.Parallel()
	a := NewAligner(
		[]string{"chrome", "spotify"},
		WithKnownWords([]string{"ouvre", "le", "volume", "monte"}),
	)
	in := "monte le volume"
	if got, changes := a.Align(in); got != in || len(changes) != 0 {
		t.Errorf("Align(%q) = (%q, %v), want unchanged", in, got, changes)
	}
}

func TestCorrectorWithAligner(t *testing.T) {
	t.Parallel()
	c := New(WithAligner(NewAligner(
		DefaultVocabulary(),
		WithKnownWords([]string{"ouvre", "va", "sur", "lance", "le", "la", "les"}),
	)))

	// Dictionary fixes "crome"; the aligner then has nothing left to do.
	got, _ := c.Correct("ouvre crome")
	if want := "ouvre chrome"; got != want {
		t.Errorf("Correct() = %q, want %q", got, want)
	}

	// "spotifai" is not in the dictionary; only the phonetic stage can fix it.
	got, changes := c.Correct("lance spotifai")
	if want := "lance spotify"; got != want {
		t.Errorf("Correct() = %q, want %q (changes %v)", got, want, changes)
	}
}
