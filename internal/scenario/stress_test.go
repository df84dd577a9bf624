package scenario

import (
	"context"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/MrWong99/majordome/internal/catalog"
	"github.com/MrWong99/majordome/internal/correction"
)

func builtinStressTester(t *testing.T, cfg StressConfig) *StressTester {
	t.Helper()
	st, err := NewStressTester(builtinCatalog(t), correction.New(), Builtin(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func TestStressVariantsAreNoisyAndDistinct(t *testing.T) {
	t.Parallel()
	st := builtinStressTester(t, StressConfig{})
	rng := rand.New(rand.NewSource(7))

	input := "ouvre le navigateur s'il te plait"
	variants := st.variants(rng, input)
	if len(variants) == 0 {
		t.Fatal("variants() returned nothing for a mutable input")
	}
	if len(variants) > st.cfg.Variants {
		t.Fatalf("got %d variants, cap is %d", len(variants), st.cfg.Variants)
	}
	seen := make(map[string]bool)
	for _, v := range variants {
		if v == input {
			t.Errorf("variant %q identical to input", v)
		}
		if seen[v] {
			t.Errorf("duplicate variant %q", v)
		}
		seen[v] = true
	}
}

func TestStressRunIsDeterministic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	first := builtinStressTester(t, StressConfig{Seed: 42}).Run(ctx)
	second := builtinStressTester(t, StressConfig{Seed: 42}).Run(ctx)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed, different reports: %+v vs %+v", first.Total, second.Total)
	}

	if first.Total == 0 {
		t.Fatal("stress run produced no variants")
	}
	if first.Passed > first.Total {
		t.Errorf("Passed = %d > Total = %d", first.Passed, first.Total)
	}
	if len(first.Failures) > 20 {
		t.Errorf("failure examples = %d, cap is 20", len(first.Failures))
	}
}

func TestStressAcceptTiers(t *testing.T) {
	t.Parallel()
	cat, err := catalog.New(
		[]catalog.CommandEntry{{
			Name: "cible", Triggers: []string{strings.Repeat("a", 20)},
			Kind: catalog.ActionShell, Action: "x",
		}},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	st, err := NewStressTester(cat, correction.New(), nil, StressConfig{})
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"cible"}

	// Full pass at or above the threshold.
	if ok, _, score := st.accept(strings.Repeat("a", 20), expected); !ok || score != 1 {
		t.Errorf("exact variant: accept = %v score %.2f, want pass", ok, score)
	}

	// Similarity 0.50 exactly: within 0.05 below the threshold, near-pass.
	near := strings.Repeat("a", 10) + strings.Repeat("b", 10)
	if ok, matched, score := st.accept(near, expected); !ok {
		t.Errorf("near variant: accept = false (%s, %.2f), want near-pass", matched, score)
	}

	// Similarity 0.45: below the relaxed floor, rejected.
	far := strings.Repeat("a", 9) + strings.Repeat("b", 11)
	if ok, _, _ := st.accept(far, expected); ok {
		t.Error("far variant accepted, want rejection")
	}

	// A good score on an unexpected entry is still a failure.
	if ok, _, _ := st.accept(strings.Repeat("a", 20), []string{"autre"}); ok {
		t.Error("unexpected entry accepted")
	}
}

func TestStressConfigDefaults(t *testing.T) {
	t.Parallel()
	st := builtinStressTester(t, StressConfig{})

	want := DefaultStressConfig()
	if st.cfg != want {
		t.Errorf("cfg = %+v, want defaults %+v", st.cfg, want)
	}
}
