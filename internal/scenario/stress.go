package scenario

import (
	"context"
	"math/rand"
	"strings"

	"github.com/MrWong99/majordome/internal/catalog"
	"github.com/MrWong99/majordome/internal/correction"
	"github.com/MrWong99/majordome/internal/match"
	"github.com/MrWong99/majordome/internal/observe"
)

// sttMutations lists digraph confusions typical of French speech-to-text
// output. Variants are produced by substituting one side for the other.
var sttMutations = [][2]string{
	{"e", "é"}, {"é", "e"}, {"è", "e"}, {"ê", "e"},
	{"a", "à"}, {"à", "a"}, {"â", "a"},
	{"ou", "ou "}, {"oi", "oua"}, {"ai", "é"},
	{"c'est", "ses"}, {"c'est", "sait"},
	{"s", "ss"}, {"ss", "s"}, {"ph", "f"}, {"f", "ph"},
	{"qu", "k"}, {"k", "qu"},
	{"tion", "sion"}, {"sion", "tion"},
	{"en", "an"}, {"an", "en"},
	{"eau", "o"}, {"o", "eau"},
	{"eur", "eure"}, {"erre", "aire"},
	{"ch", "sh"}, {"ge", "je"}, {"je", "ge"},
}

// StressConfig tunes the noisy-variant stress run.
type StressConfig struct {
	// Seed seeds the variant PRNG; identical seeds reproduce identical runs.
	Seed int64

	// Variants is the number of distinct noisy variants kept per scenario.
	Variants int

	// Threshold is the relaxed acceptance score for a noisy variant.
	// Near-passes down to Threshold-0.05 are also accepted when the best
	// candidate is in the expected set.
	Threshold float64

	// MaxExamples caps the failure examples carried in the report.
	MaxExamples int
}

// DefaultStressConfig returns the reproducible baseline tuning.
func DefaultStressConfig() StressConfig {
	return StressConfig{Seed: 42, Variants: 3, Threshold: 0.55, MaxExamples: 20}
}

// StressFailure is one rejected noisy variant.
type StressFailure struct {
	Scenario string   `json:"scenario"`
	Original string   `json:"original"`
	Variant  string   `json:"variant"`
	Matched  string   `json:"matched"`
	Expected []string `json:"expected"`
	Score    float64  `json:"score"`
}

// StressReport summarises a stress run.
type StressReport struct {
	Total    int             `json:"total"`
	Passed   int             `json:"passed"`
	Rate     float64         `json:"rate"`
	Failures []StressFailure `json:"failed_examples"`
}

// StressTester injects synthetic STT noise into the corpus and checks that
// correction plus matching still recovers the expected entry. It bypasses
// arbitration on purpose: its matchers run at a relaxed cutoff so that
// near-miss candidates keep their names for the partial-acceptance tier.
type StressTester struct {
	corrector *correction.Corrector
	commands  *match.Matcher
	skills    *match.Matcher
	cases     []Case
	cfg       StressConfig
}

// NewStressTester builds a stress tester over the given catalog and
// corrector. Zero-valued config fields fall back to [DefaultStressConfig].
func NewStressTester(cat *catalog.Catalog, corr *correction.Corrector, cases []Case, cfg StressConfig) (*StressTester, error) {
	def := DefaultStressConfig()
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}
	if cfg.Variants == 0 {
		cfg.Variants = def.Variants
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = def.Threshold
	}
	if cfg.MaxExamples == 0 {
		cfg.MaxExamples = def.MaxExamples
	}

	relaxed := cfg.Threshold - 0.05
	commands, err := match.New(match.Commands(cat.Commands()), relaxed)
	if err != nil {
		return nil, err
	}
	skills, err := match.New(match.Skills(cat.Skills()), relaxed)
	if err != nil {
		return nil, err
	}
	return &StressTester{
		corrector: corr,
		commands:  commands,
		skills:    skills,
		cases:     cases,
		cfg:       cfg,
	}, nil
}

// Run generates noisy variants for every scenario and reports how many still
// resolve to an expected entry. The run is deterministic for a given seed.
func (st *StressTester) Run(ctx context.Context) StressReport {
	rng := rand.New(rand.NewSource(st.cfg.Seed))
	rep := StressReport{}

	for _, c := range st.cases {
		for _, variant := range st.variants(rng, c.VoiceInput) {
			rep.Total++
			if ok, matched, score := st.accept(variant, c.Expected); ok {
				rep.Passed++
			} else if len(rep.Failures) < st.cfg.MaxExamples {
				rep.Failures = append(rep.Failures, StressFailure{
					Scenario: c.Name,
					Original: c.VoiceInput,
					Variant:  variant,
					Matched:  matched,
					Expected: c.Expected,
					Score:    score,
				})
			}
		}
	}
	if rep.Total > 0 {
		rep.Rate = round1(float64(rep.Passed) / float64(rep.Total) * 100)
	}

	observe.Logger(ctx).Info("stress run finished",
		"variants", rep.Total, "passed", rep.Passed, "rate", rep.Rate)
	return rep
}

// variants produces up to cfg.Variants distinct noisy renditions of input:
// one or two digraph substitutions on the first occurrence, plus an
// occasional adjacent word swap on longer inputs.
func (st *StressTester) variants(rng *rand.Rand, input string) []string {
	var out []string
	words := strings.Fields(input)

	for attempt := 0; attempt < st.cfg.Variants*3 && len(out) < st.cfg.Variants; attempt++ {
		mutated := input
		for range rng.Intn(2) + 1 {
			m := sttMutations[rng.Intn(len(sttMutations))]
			if strings.Contains(mutated, m[0]) {
				mutated = strings.Replace(mutated, m[0], m[1], 1)
			}
		}
		if len(words) > 2 && rng.Float64() < 0.3 {
			idx := rng.Intn(len(words) - 1)
			w := append([]string(nil), words...)
			w[idx], w[idx+1] = w[idx+1], w[idx]
			mutated = strings.Join(w, " ")
		}
		if mutated != input && !contains(out, mutated) {
			out = append(out, mutated)
		}
	}
	return out
}

// accept corrects a variant and checks it against the expected set. A full
// pass needs an expected command or skill at or above the threshold; a
// near-pass accepts the overall best candidate within 0.05 below it.
func (st *StressTester) accept(variant string, expected []string) (ok bool, matched string, score float64) {
	corrected, _ := st.corrector.Correct(variant)

	cmd := st.commands.Match(corrected)
	if cmd.Matched() && contains(expected, cmd.Name) && cmd.Confidence >= st.cfg.Threshold {
		return true, cmd.Name, cmd.Confidence
	}
	skill := st.skills.Match(corrected)
	if skill.Matched() && contains(expected, skill.Name) && skill.Confidence >= st.cfg.Threshold {
		return true, skill.Name, skill.Confidence
	}

	best, bestScore := cmd.Name, cmd.Confidence
	if skill.Confidence > bestScore {
		best, bestScore = skill.Name, skill.Confidence
	}
	if best != "" && contains(expected, best) && bestScore >= st.cfg.Threshold-0.05 {
		return true, best, bestScore
	}
	return false, best, bestScore
}
