package correction

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/MrWong99/majordome/internal/catalog"
)

const (
	defaultPhoneticThreshold = 0.70
	defaultFuzzyThreshold    = 0.85
)

// AlignerOption is a functional option for configuring an [Aligner].
type AlignerOption func(*Aligner)

// WithPhoneticThreshold sets the minimum Jaro-Winkler score required for a
// phonetically-matched vocabulary entry to be accepted. Default: 0.70.
func WithPhoneticThreshold(threshold float64) AlignerOption {
	return func(a *Aligner) {
		a.phoneticThreshold = threshold
	}
}

// WithFuzzyThreshold sets the minimum Jaro-Winkler score required when no
// phonetic code overlap exists. Default: 0.85.
func WithFuzzyThreshold(threshold float64) AlignerOption {
	return func(a *Aligner) {
		a.fuzzyThreshold = threshold
	}
}

// WithKnownWords marks words the aligner must never rewrite. Catalog trigger
// words go here so correct French input stays untouched.
func WithKnownWords(words []string) AlignerOption {
	return func(a *Aligner) {
		for _, w := range words {
			a.known[strings.ToLower(w)] = struct{}{}
		}
	}
}

// vocabEntry is one precomputed vocabulary entry.
type vocabEntry struct {
	name   string
	tokens []string
	codes  map[string]struct{}
}

// Aligner phonetically aligns unknown words against a fixed vocabulary of
// app names, site names and domain jargon. It combines Double Metaphone
// code overlap for candidate filtering with Jaro-Winkler similarity for
// ranking. Read-only after construction; safe for concurrent use.
type Aligner struct {
	phoneticThreshold float64
	fuzzyThreshold    float64
	entries           []vocabEntry
	known             map[string]struct{}
	maxWords          int
}

// NewAligner builds an [Aligner] over the given vocabulary. Vocabulary
// entries may contain several words ("lm studio"); the aligner tests n-gram
// windows up to the longest entry.
func NewAligner(vocab []string, opts ...AlignerOption) *Aligner {
	a := &Aligner{
		phoneticThreshold: defaultPhoneticThreshold,
		fuzzyThreshold:    defaultFuzzyThreshold,
		known:             make(map[string]struct{}),
	}
	for _, o := range opts {
		o(a)
	}

	a.maxWords = 1
	for _, v := range vocab {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		tokens := strings.Fields(v)
		a.entries = append(a.entries, vocabEntry{
			name:   v,
			tokens: tokens,
			codes:  codesForTokens(tokens),
		})
		if len(tokens) > a.maxWords {
			a.maxWords = len(tokens)
		}
		// Vocabulary words themselves are always known-good.
		for _, t := range tokens {
			a.known[t] = struct{}{}
		}
	}
	return a
}

// DefaultVocabulary returns the alignment vocabulary derived from the
// catalog alias tables plus the domain jargon the assistant cares about.
func DefaultVocabulary() []string {
	seen := make(map[string]struct{})
	var vocab []string
	add := func(w string) {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			vocab = append(vocab, w)
		}
	}
	for app := range catalog.AppPaths {
		add(app)
	}
	for site := range catalog.SiteAliases {
		add(site)
	}
	for _, w := range []string{
		"breakout", "sniper", "pipeline", "consensus", "cluster",
		"processus", "systeme", "telechargements", "documents",
		"capture", "volume", "bureau", "onglet",
	} {
		add(w)
	}
	return vocab
}

// Align rewrites unknown words of text that phonetically match a vocabulary
// entry. Words present in the known set are never touched. The scan prefers
// the longest n-gram window at each position so multi-word entries win over
// partial single-word matches.
func (a *Aligner) Align(text string) (string, []Change) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 || len(a.entries) == 0 {
		return text, nil
	}

	var output []string
	var changes []Change

	i := 0
	for i < len(tokens) {
		if _, ok := a.known[tokens[i]]; ok {
			output = append(output, tokens[i])
			i++
			continue
		}

		maxN := a.maxWords
		if i+maxN > len(tokens) {
			maxN = len(tokens) - i
		}

		matched := false
		for n := maxN; n >= 1; n-- {
			window := strings.Join(tokens[i:i+n], " ")
			entry, _, ok := a.match(window)
			if !ok || entry == window {
				continue
			}
			output = append(output, strings.Fields(entry)...)
			changes = append(changes, Change{Original: window, Corrected: entry, Method: "phonetic"})
			i += n
			matched = true
			break
		}
		if !matched {
			output = append(output, tokens[i])
			i++
		}
	}

	return strings.Join(output, " "), changes
}

// match finds the vocabulary entry most phonetically similar to word.
// Entries with Double Metaphone code overlap are preferred and accepted at
// the phonetic threshold; entries without overlap need to clear the higher
// fuzzy threshold.
func (a *Aligner) match(word string) (string, float64, bool) {
	wordTokens := strings.Fields(word)
	inputCodes := codesForTokens(wordTokens)

	var (
		bestName     string
		bestScore    float64
		bestPhonetic bool
	)

	for _, e := range a.entries {
		phonetic := codesOverlap(inputCodes, e.codes)
		score := bestJWScore(wordTokens, e.tokens, word, e.name)

		switch {
		case phonetic && score >= a.phoneticThreshold:
			if !bestPhonetic || score > bestScore {
				bestName, bestScore, bestPhonetic = e.name, score, true
			}
		case !phonetic && !bestPhonetic && score >= a.fuzzyThreshold && score > bestScore:
			bestName, bestScore = e.name, score
		}
	}

	if bestName == "" {
		return word, 0, false
	}
	return bestName, bestScore, true
}

// codesForTokens returns the union of the Double Metaphone codes of tokens.
// Empty codes are excluded.
func codesForTokens(tokens []string) map[string]struct{} {
	codes := make(map[string]struct{}, len(tokens)*2)
	for _, t := range tokens {
		p, s := matchr.DoubleMetaphone(t)
		if p != "" {
			codes[p] = struct{}{}
		}
		if s != "" {
			codes[s] = struct{}{}
		}
	}
	return codes
}

func codesOverlap(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}

// bestJWScore takes the highest Jaro-Winkler similarity across three
// comparison strategies: full strings, space-stripped strings, and the best
// pairwise token score.
func bestJWScore(inputTokens, entryTokens []string, inputFull, entryFull string) float64 {
	score := matchr.JaroWinkler(inputFull, entryFull, false)

	if len(inputTokens) > 1 || len(entryTokens) > 1 {
		concat1 := strings.Join(inputTokens, "")
		concat2 := strings.Join(entryTokens, "")
		if s := matchr.JaroWinkler(concat1, concat2, false); s > score {
			score = s
		}
	}

	for _, it := range inputTokens {
		for _, et := range entryTokens {
			if s := matchr.JaroWinkler(it, et, false); s > score {
				score = s
			}
		}
	}

	return score
}
