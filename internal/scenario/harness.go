package scenario

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrWong99/majordome/internal/observe"
	"github.com/MrWong99/majordome/internal/resolve"
)

// Result classifies the outcome of one scenario validation.
type Result string

const (
	ResultPass    Result = "pass"
	ResultPartial Result = "partial"
	ResultFail    Result = "fail"
)

// PartialScore is the confidence above which a wrong-but-plausible match is
// downgraded to partial instead of fail.
const PartialScore = 0.75

// Record is the outcome of validating a single scenario in a single cycle.
type Record struct {
	Cycle      int      `json:"cycle_number"`
	Scenario   string   `json:"scenario_name"`
	VoiceInput string   `json:"voice_input"`
	Matched    string   `json:"matched_name"`
	Kind       string   `json:"matched_kind"`
	Score      float64  `json:"match_score"`
	Expected   []string `json:"expected"`
	Result     Result   `json:"result"`
	Details    string   `json:"details"`
	ElapsedMS  float64  `json:"execution_time_ms"`
}

// CycleReport aggregates one full pass over the corpus.
type CycleReport struct {
	Cycle     int     `json:"cycle"`
	Total     int     `json:"total"`
	Passed    int     `json:"passed"`
	Failed    int     `json:"failed"`
	Partial   int     `json:"partial"`
	PassRate  float64 `json:"pass_rate"`
	AvgTimeMS float64 `json:"avg_time_ms"`

	records []Record
}

// Failure summarises all failing or partial runs of one scenario across a
// whole validation run.
type Failure struct {
	Count      int    `json:"count"`
	Details    string `json:"details"`
	VoiceInput string `json:"voice_input"`
}

// Summary is the roll-up over every cycle of a validation run.
type Summary struct {
	TotalCycles    int     `json:"total_cycles"`
	TotalTests     int     `json:"total_tests"`
	TotalPassed    int     `json:"total_passed"`
	TotalFailed    int     `json:"total_failed"`
	TotalPartial   int     `json:"total_partial"`
	GlobalPassRate float64 `json:"global_pass_rate"`
}

// Report is the full validation run output, serialised as the harness JSON
// report.
type Report struct {
	Summary  Summary             `json:"summary"`
	Failures map[string]*Failure `json:"failures"`
	Cycles   []CycleReport       `json:"cycles"`
}

// Recorder receives every validation record. Implementations must be safe
// for concurrent use: cycles may run in parallel.
type Recorder interface {
	Record(rec Record) error
}

// Option is a functional option for configuring a [Harness].
type Option func(*Harness)

// WithRecorder streams every validation record to rec.
func WithRecorder(rec Recorder) Option {
	return func(h *Harness) {
		h.recorder = rec
	}
}

// WithParallelism bounds the number of concurrently running cycles. Values
// below 1 are treated as 1.
func WithParallelism(n int) Option {
	return func(h *Harness) {
		if n >= 1 {
			h.parallelism = n
		}
	}
}

// WithMetrics attaches a metrics sink for per-scenario result counters.
func WithMetrics(m *observe.Metrics) Option {
	return func(h *Harness) {
		h.metrics = m
	}
}

// Harness replays a scenario corpus through a resolver and aggregates the
// outcomes. It is read-only after construction.
type Harness struct {
	resolver    *resolve.Resolver
	cases       []Case
	recorder    Recorder
	metrics     *observe.Metrics
	parallelism int
}

// New builds a harness over the given resolver and corpus.
func New(r *resolve.Resolver, cases []Case, opts ...Option) *Harness {
	h := &Harness{resolver: r, cases: cases, parallelism: 1}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Validate resolves one scenario and classifies the outcome. Cycle is only
// carried into the record for traceability.
func (h *Harness) Validate(ctx context.Context, c Case, cycle int) Record {
	start := time.Now()
	d := h.resolver.Resolve(ctx, c.VoiceInput)
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	rec := Record{
		Cycle:      cycle,
		Scenario:   c.Name,
		VoiceInput: c.VoiceInput,
		Matched:    d.Name,
		Kind:       string(d.Kind),
		Score:      d.Score,
		Expected:   c.Expected,
		ElapsedMS:  elapsed,
	}

	switch {
	case d.Kind != resolve.KindNone && contains(c.Expected, d.Name):
		rec.Result = ResultPass
		rec.Details = fmt.Sprintf("matched %s (%s, score %.2f)", d.Name, d.Kind, d.Score)
	case d.Kind != resolve.KindNone && d.Score >= PartialScore:
		rec.Result = ResultPartial
		rec.Details = fmt.Sprintf("matched %s instead of %v (score %.2f)", d.Name, c.Expected, d.Score)
	case d.Kind != resolve.KindNone:
		rec.Result = ResultFail
		rec.Details = fmt.Sprintf("wrong match %s, expected %v (score %.2f)", d.Name, c.Expected, d.Score)
	default:
		rec.Result = ResultFail
		rec.Details = fmt.Sprintf("no match, expected %v (best score %.2f)", c.Expected, d.Score)
	}

	if h.metrics != nil {
		h.metrics.RecordScenarioResult(ctx, string(rec.Result))
	}
	return rec
}

// RunCycle validates the whole corpus once.
func (h *Harness) RunCycle(ctx context.Context, cycle int) (CycleReport, error) {
	rep := CycleReport{Cycle: cycle, Total: len(h.cases)}

	var totalMS float64
	for _, c := range h.cases {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		rec := h.Validate(ctx, c, cycle)
		rep.records = append(rep.records, rec)
		totalMS += rec.ElapsedMS

		switch rec.Result {
		case ResultPass:
			rep.Passed++
		case ResultPartial:
			rep.Partial++
		default:
			rep.Failed++
		}

		if h.recorder != nil {
			if err := h.recorder.Record(rec); err != nil {
				return rep, fmt.Errorf("scenario: record cycle %d: %w", cycle, err)
			}
		}
	}

	if rep.Total > 0 {
		rep.PassRate = round1(float64(rep.Passed) / float64(rep.Total) * 100)
		rep.AvgTimeMS = round2(totalMS / float64(rep.Total))
	}
	return rep, nil
}

// Records returns the per-scenario records of a cycle. They are kept off the
// JSON report to keep it readable, but remain available programmatically.
func (r CycleReport) Records() []Record {
	return r.records
}

// Run validates the corpus n times and aggregates a [Report]. Cycles run
// concurrently up to the configured parallelism; the report is assembled in
// cycle order afterwards, so the output is deterministic regardless of
// scheduling.
func (h *Harness) Run(ctx context.Context, n int) (*Report, error) {
	log := observe.Logger(ctx)
	log.Info("starting validation run", "cycles", n, "scenarios", len(h.cases))

	cycles := make([]CycleReport, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.parallelism)
	for i := range n {
		g.Go(func() error {
			rep, err := h.RunCycle(gctx, i+1)
			if err != nil {
				return err
			}
			cycles[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Summary:  Summary{TotalCycles: n},
		Failures: make(map[string]*Failure),
		Cycles:   cycles,
	}
	for _, cyc := range cycles {
		report.Summary.TotalTests += cyc.Total
		report.Summary.TotalPassed += cyc.Passed
		report.Summary.TotalFailed += cyc.Failed
		report.Summary.TotalPartial += cyc.Partial

		for _, rec := range cyc.records {
			if rec.Result == ResultPass {
				continue
			}
			f := report.Failures[rec.Scenario]
			if f == nil {
				f = &Failure{Details: rec.Details, VoiceInput: rec.VoiceInput}
				report.Failures[rec.Scenario] = f
			}
			f.Count++
		}
	}
	if report.Summary.TotalTests > 0 {
		report.Summary.GlobalPassRate = round1(
			float64(report.Summary.TotalPassed) / float64(report.Summary.TotalTests) * 100)
	}

	log.Info("validation run finished",
		"pass_rate", report.Summary.GlobalPassRate,
		"failed", report.Summary.TotalFailed,
		"partial", report.Summary.TotalPartial)
	return report, nil
}

// FailingScenarios returns the failure keys in stable order for display.
func (r *Report) FailingScenarios() []string {
	names := make([]string, 0, len(r.Failures))
	for name := range r.Failures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func contains(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
