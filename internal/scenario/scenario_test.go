package scenario

import (
	"context"
	"testing"

	"github.com/MrWong99/majordome/internal/catalog"
	"github.com/MrWong99/majordome/internal/correction"
	"github.com/MrWong99/majordome/internal/resolve"
)

func builtinCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.BuiltinCommands(), catalog.BuiltinSkills())
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func builtinResolver(t *testing.T) *resolve.Resolver {
	t.Helper()
	r, err := resolve.New(builtinCatalog(t), correction.New())
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestBuiltinCorpusFieldsPopulated(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)

	for _, c := range Builtin() {
		if c.Name == "" || c.Category == "" || c.Difficulty == "" {
			t.Errorf("case %+v missing metadata", c)
		}
		if c.VoiceInput == "" || len(c.Expected) == 0 {
			t.Errorf("case %q missing input or expectation", c.Name)
		}
		if seen[c.Name] {
			t.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
	}
}

func TestBuiltinCorpusReferencesOnlyCatalogEntries(t *testing.T) {
	t.Parallel()
	cat := builtinCatalog(t)

	for _, c := range Builtin() {
		for _, name := range c.Expected {
			if cat.Command(name) == nil && cat.Skill(name) == nil {
				t.Errorf("case %q expects %q, not in any catalog", c.Name, name)
			}
		}
	}
}

// The corpus is the regression baseline: every built-in scenario must pass
// against the built-in catalogs with the static dictionary alone.
func TestBuiltinCorpusPassesValidation(t *testing.T) {
	t.Parallel()
	h := New(builtinResolver(t), Builtin())

	rep, err := h.RunCycle(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range rep.Records() {
		if rec.Result != ResultPass {
			t.Errorf("%s: %s %q -> %s", rec.Scenario, rec.Result, rec.VoiceInput, rec.Details)
		}
	}
	if rep.PassRate != 100 {
		t.Errorf("PassRate = %.1f, want 100", rep.PassRate)
	}
}
