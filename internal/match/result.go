package match

// Kind classifies how a result was obtained.
type Kind string

const (
	// KindExact means the text equals a literal trigger.
	KindExact Kind = "exact"

	// KindTemplate means a parameterised trigger matched, either fully
	// anchored (0.95) or through its placeholder-stripped fixed part (0.80).
	KindTemplate Kind = "template"

	// KindSubstring means a literal trigger appears inside the text.
	KindSubstring Kind = "substring"

	// KindFuzzy means the best literal trigger cleared the threshold on
	// string similarity alone.
	KindFuzzy Kind = "fuzzy"

	// KindNone means no candidate reached the threshold.
	KindNone Kind = "none"
)

// Result is the outcome of matching one normalised input against a
// candidate list.
type Result struct {
	// Name is the matched candidate's name, empty when Kind is [KindNone].
	Name string

	// Params holds values extracted for trigger placeholders, keyed by
	// placeholder name. Nil for literal matches.
	Params map[string]string

	// Confidence is the match score in [0, 1]. When Kind is [KindNone] it
	// still carries the best score seen, for diagnostics.
	Confidence float64

	Kind Kind
}

// Matched reports whether the result selected a candidate.
func (r Result) Matched() bool { return r.Kind != KindNone }
