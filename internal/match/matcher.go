// Package match scores normalised voice input against trigger catalogs.
//
// Scores form a deliberate ladder: structural matches occupy four discrete
// tiers (1.00 exact, 0.95 template, 0.90 substring, 0.80 stripped template)
// that sit strictly above the continuous fuzzy range, which rarely exceeds
// ~0.75 for non-trivial phrases. Accidental character overlap can therefore
// never outrank a structural match.
package match

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/antzucaro/matchr"

	"github.com/MrWong99/majordome/internal/catalog"
)

// Score tiers of the matching ladder.
const (
	ScoreExact     = 1.00
	ScoreTemplate  = 0.95
	ScoreSubstring = 0.90
	ScoreStripped  = 0.80
)

// DefaultThreshold is the minimum confidence for a match to be reported.
const DefaultThreshold = 0.55

// Candidate is one named entry with its trigger templates, the minimal view
// the matcher needs of a catalog entry.
type Candidate struct {
	Name     string
	Triggers []string
}

// Commands adapts command catalog entries to matcher candidates.
func Commands(entries []catalog.CommandEntry) []Candidate {
	cands := make([]Candidate, len(entries))
	for i, e := range entries {
		cands[i] = Candidate{Name: e.Name, Triggers: e.Triggers}
	}
	return cands
}

// Skills adapts skill catalog entries to matcher candidates.
func Skills(entries []catalog.SkillEntry) []Candidate {
	cands := make([]Candidate, len(entries))
	for i, e := range entries {
		cands[i] = Candidate{Name: e.Name, Triggers: e.Triggers}
	}
	return cands
}

// trigger is one precompiled trigger template.
type trigger struct {
	raw string

	// Set for parameterised triggers only.
	pattern *regexp.Regexp
	params  []string
	fixed   string
}

type candidate struct {
	name     string
	triggers []trigger
}

// Matcher scores input text against a fixed candidate list. Patterns for
// parameterised triggers are compiled once at construction. Matcher is
// read-only afterwards and safe for concurrent use.
type Matcher struct {
	threshold  float64
	candidates []candidate
}

// New compiles the candidate list into a [Matcher]. threshold <= 0 falls
// back to [DefaultThreshold]. Candidates are assumed to have passed catalog
// validation; a template that still fails to compile is reported.
func New(cands []Candidate, threshold float64) (*Matcher, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	m := &Matcher{threshold: threshold}

	for _, c := range cands {
		cc := candidate{name: c.Name}
		for _, raw := range c.Triggers {
			t := trigger{raw: strings.ToLower(raw)}
			if params := catalog.Placeholders(raw); len(params) > 0 {
				re, err := compileTemplate(t.raw)
				if err != nil {
					return nil, fmt.Errorf("match: candidate %q trigger %q: %w", c.Name, raw, err)
				}
				t.pattern = re
				t.params = params
				t.fixed = strippedFixedPart(t.raw)
			}
			cc.triggers = append(cc.triggers, t)
		}
		m.candidates = append(m.candidates, cc)
	}
	return m, nil
}

// Threshold returns the configured minimum confidence.
func (m *Matcher) Threshold() float64 { return m.threshold }

// Match scores text against every candidate trigger and returns the single
// best result. Ties keep the earlier catalog entry. A best score below the
// threshold yields [KindNone] with the score preserved for diagnostics.
// text is expected to be normalised (lowercase, trimmed) already.
func (m *Matcher) Match(text string) Result {
	best := Result{Kind: KindNone}

	for _, c := range m.candidates {
		for _, t := range c.triggers {
			score, kind, params := scoreTrigger(t, text)
			if score > best.Confidence {
				best = Result{Name: c.name, Params: params, Confidence: score, Kind: kind}
			}
		}
	}

	if best.Confidence < m.threshold {
		return Result{Confidence: best.Confidence, Kind: KindNone}
	}
	return best
}

// scoreTrigger scores one trigger against the input.
func scoreTrigger(t trigger, text string) (float64, Kind, map[string]string) {
	if t.pattern != nil {
		if sub := t.pattern.FindStringSubmatch(text); sub != nil {
			params := make(map[string]string, len(t.params))
			for i, name := range t.params {
				params[name] = strings.TrimSpace(sub[i+1])
			}
			return ScoreTemplate, KindTemplate, params
		}
		// Fall back on the placeholder-stripped fixed part: if it appears
		// in the text and leaves a remainder, the first placeholder takes
		// the remainder wholesale.
		if t.fixed != "" && strings.Contains(text, t.fixed) {
			remainder := strings.Join(strings.Fields(strings.ReplaceAll(text, t.fixed, "")), " ")
			if remainder != "" {
				params := map[string]string{t.params[0]: remainder}
				return ScoreStripped, KindTemplate, params
			}
		}
		return 0, KindNone, nil
	}

	switch {
	case text == t.raw:
		return ScoreExact, KindExact, nil
	case strings.Contains(text, t.raw):
		return ScoreSubstring, KindSubstring, nil
	default:
		return Similarity(text, t.raw), KindFuzzy, nil
	}
}

// compileTemplate turns a trigger template into an anchored capturing
// pattern: literal parts are quoted, each placeholder becomes a greedy
// capture group.
func compileTemplate(tmpl string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	last := 0
	for _, loc := range placeholderLocations(tmpl) {
		b.WriteString(regexp.QuoteMeta(tmpl[last:loc[0]]))
		b.WriteString("(.+)")
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(tmpl[last:]))
	b.WriteString("$")
	return regexp.Compile(b.String())
}

var placeholderIndexRe = regexp.MustCompile(`\{\w+\}`)

func placeholderLocations(tmpl string) [][]int {
	return placeholderIndexRe.FindAllStringIndex(tmpl, -1)
}

// strippedFixedPart removes every placeholder from the template and trims
// the remains.
func strippedFixedPart(tmpl string) string {
	return strings.TrimSpace(placeholderIndexRe.ReplaceAllString(tmpl, ""))
}

// Similarity returns a normalised Levenshtein ratio in [0, 1]: identical
// strings score 1, entirely different strings approach 0. Both the distance
// and the length are counted in runes, so accented input scores the same as
// its ASCII form.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1
	}
	dist := matchr.Levenshtein(a, b)
	return 1 - float64(dist)/float64(maxLen)
}
