// Package correction normalises raw voice transcriptions before matching.
//
// Correction runs in up to three stages, applied in order:
//
//  1. Word-level dictionary substitution: each whitespace-separated token
//     that exactly equals a dictionary key is replaced.
//  2. Phrase-level substitution: multi-word dictionary keys are replaced
//     wherever they appear on word boundaries, in dictionary order.
//  3. Phonetic alignment (optional): remaining unknown words are aligned
//     against the catalog vocabulary, see [Aligner].
//
// Correction is idempotent: re-correcting already-correct text returns it
// unchanged. Substitution is word-for-word on boundaries, never a raw
// substring rewrite, so a key can not corrupt a longer word it happens to
// be a prefix of.
package correction

import "strings"

// Change records one applied correction for logging and metrics.
type Change struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`

	// Method is "dictionary", "learned" or "phonetic".
	Method string `json:"method"`
}

// Option is a functional option for configuring a [Corrector].
type Option func(*Corrector)

// WithLearned appends learned correction rules after the static table.
// A learned rule whose key collides with a static one overrides it.
func WithLearned(rules []Rule) Option {
	return func(c *Corrector) {
		c.learned = append(c.learned, rules...)
	}
}

// WithStatic replaces the built-in static table. Intended for tests.
func WithStatic(rules []Rule) Option {
	return func(c *Corrector) {
		c.static = rules
	}
}

// WithAligner attaches a phonetic [Aligner] as the final correction stage.
// When nil (the default), the phonetic stage is skipped entirely.
func WithAligner(a *Aligner) Option {
	return func(c *Corrector) {
		c.aligner = a
	}
}

// Corrector applies the correction dictionary to transcribed text.
// It is read-only after construction and safe for concurrent use.
type Corrector struct {
	static  []Rule
	learned []Rule
	aligner *Aligner

	// Derived at construction.
	words   map[string]wordRule
	phrases []Rule
}

type wordRule struct {
	right  string
	method string
}

// New builds a [Corrector] from the static table plus the supplied options.
func New(opts ...Option) *Corrector {
	c := &Corrector{static: StaticRules()}
	for _, o := range opts {
		o(c)
	}

	c.words = make(map[string]wordRule, len(c.static)+len(c.learned))
	index := func(rules []Rule, method string) {
		for _, r := range rules {
			wrong := strings.ToLower(strings.TrimSpace(r.Wrong))
			if wrong == "" || wrong == r.Right {
				continue
			}
			if strings.Contains(wrong, " ") {
				c.phrases = append(c.phrases, Rule{Wrong: wrong, Right: r.Right, Category: method})
				continue
			}
			c.words[wrong] = wordRule{right: r.Right, method: method}
		}
	}
	index(c.static, "dictionary")
	index(c.learned, "learned")
	return c
}

// Correct normalises text and returns the corrected form along with every
// change applied. Empty or whitespace-only input is returned unchanged.
func (c *Corrector) Correct(text string) (string, []Change) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return text, nil
	}

	var changes []Change

	// Stage 1: whole-word substitution.
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		if r, ok := c.words[tok]; ok {
			changes = append(changes, Change{Original: tok, Corrected: r.right, Method: r.method})
			tokens[i] = r.right
		}
	}
	text = strings.Join(tokens, " ")

	// Stage 2: multi-word keys, replaced on word boundaries in dictionary
	// order.
	for _, r := range c.phrases {
		replaced, n := replacePhrase(text, r.Wrong, r.Right)
		if n > 0 {
			changes = append(changes, Change{Original: r.Wrong, Corrected: r.Right, Method: r.Category})
			text = replaced
		}
	}

	// Stage 3: phonetic alignment of remaining unknown words.
	if c.aligner != nil {
		aligned, phonetic := c.aligner.Align(text)
		text = aligned
		changes = append(changes, phonetic...)
	}

	return text, changes
}

// replacePhrase replaces every word-boundary occurrence of wrong in text
// with right and reports how many it replaced. Both text and wrong are
// expected to be lowercase with single-space separators.
func replacePhrase(text, wrong, right string) (string, int) {
	var b strings.Builder
	count := 0
	for i := 0; i < len(text); {
		j := strings.Index(text[i:], wrong)
		if j < 0 {
			b.WriteString(text[i:])
			break
		}
		start := i + j
		end := start + len(wrong)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			b.WriteString(text[i:start])
			b.WriteString(right)
			i = end
			count++
		} else {
			b.WriteString(text[i : start+1])
			i = start + 1
		}
	}
	if count == 0 {
		return text, 0
	}
	return b.String(), count
}

func boundaryBefore(text string, i int) bool {
	return i == 0 || text[i-1] == ' '
}

func boundaryAfter(text string, i int) bool {
	return i == len(text) || text[i] == ' '
}
