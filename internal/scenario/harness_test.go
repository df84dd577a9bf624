package scenario

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/MrWong99/majordome/internal/catalog"
	"github.com/MrWong99/majordome/internal/correction"
	"github.com/MrWong99/majordome/internal/resolve"
)

// memRecorder collects records in memory, safe for concurrent cycles.
type memRecorder struct {
	mu   sync.Mutex
	recs []Record
}

func (m *memRecorder) Record(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, rec)
	return nil
}

type failingRecorder struct{}

func (failingRecorder) Record(Record) error { return errors.New("disk full") }

func classifierResolver(t *testing.T) *resolve.Resolver {
	t.Helper()
	cat, err := catalog.New(
		[]catalog.CommandEntry{
			{Name: "cible", Triggers: []string{"ouvre la cible"}, Kind: catalog.ActionShell, Action: "x"},
			{Name: "fuzzcible", Triggers: []string{"abcdefwxyz"}, Kind: catalog.ActionShell, Action: "x"},
		},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	r, err := resolve.New(cat, correction.New())
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestValidateClassification(t *testing.T) {
	t.Parallel()
	h := New(classifierResolver(t), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		c    Case
		want Result
	}{
		{"expected match passes",
			Case{Name: "s1", VoiceInput: "ouvre la cible", Expected: []string{"cible"}},
			ResultPass},
		{"confident wrong match is partial",
			Case{Name: "s2", VoiceInput: "ouvre la cible", Expected: []string{"autre"}},
			ResultPartial},
		{"weak wrong match fails",
			// fuzzcible matches at 0.60, below the partial cutoff.
			Case{Name: "s3", VoiceInput: "abcdefghij", Expected: []string{"autre"}},
			ResultFail},
		{"no match fails",
			Case{Name: "s4", VoiceInput: "zzz yyy xxx", Expected: []string{"cible"}},
			ResultFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.Validate(ctx, tt.c, 1)
			if rec.Result != tt.want {
				t.Errorf("Validate() = %s (%s), want %s", rec.Result, rec.Details, tt.want)
			}
			if rec.Scenario != tt.c.Name || rec.Cycle != 1 {
				t.Errorf("record identity = %q cycle %d", rec.Scenario, rec.Cycle)
			}
		})
	}
}

func TestRunCycleAggregates(t *testing.T) {
	t.Parallel()
	cases := []Case{
		{Name: "p", VoiceInput: "ouvre la cible", Expected: []string{"cible"}},
		{Name: "q", VoiceInput: "ouvre la cible", Expected: []string{"autre"}},
		{Name: "r", VoiceInput: "zzz yyy xxx", Expected: []string{"cible"}},
	}
	h := New(classifierResolver(t), cases)

	rep, err := h.RunCycle(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Cycle != 3 || rep.Total != 3 || rep.Passed != 1 || rep.Partial != 1 || rep.Failed != 1 {
		t.Errorf("RunCycle() = %+v, want 1 pass, 1 partial, 1 fail of 3", rep)
	}
	if rep.PassRate != 33.3 {
		t.Errorf("PassRate = %.1f, want 33.3", rep.PassRate)
	}
	if got := len(rep.Records()); got != 3 {
		t.Errorf("len(Records()) = %d, want 3", got)
	}
}

func TestRunAggregatesAcrossCycles(t *testing.T) {
	t.Parallel()
	cases := []Case{
		{Name: "passe", VoiceInput: "ouvre la cible", Expected: []string{"cible"}},
		{Name: "rate", VoiceInput: "zzz yyy xxx", Expected: []string{"cible"}},
	}
	rec := &memRecorder{}
	h := New(classifierResolver(t), cases, WithParallelism(2), WithRecorder(rec))

	rep, err := h.Run(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}

	want := Summary{TotalCycles: 4, TotalTests: 8, TotalPassed: 4, TotalFailed: 4, GlobalPassRate: 50}
	if rep.Summary != want {
		t.Errorf("Summary = %+v, want %+v", rep.Summary, want)
	}
	if len(rep.Cycles) != 4 {
		t.Fatalf("len(Cycles) = %d, want 4", len(rep.Cycles))
	}
	for i, cyc := range rep.Cycles {
		if cyc.Cycle != i+1 {
			t.Errorf("Cycles[%d].Cycle = %d, want %d", i, cyc.Cycle, i+1)
		}
	}

	f := rep.Failures["rate"]
	if f == nil || f.Count != 4 || f.VoiceInput != "zzz yyy xxx" {
		t.Errorf("Failures[rate] = %+v, want count 4", f)
	}
	if _, ok := rep.Failures["passe"]; ok {
		t.Error("passing scenario listed in failures")
	}
	if got := len(rec.recs); got != 8 {
		t.Errorf("recorded %d records, want 8", got)
	}
	if got := rep.FailingScenarios(); len(got) != 1 || got[0] != "rate" {
		t.Errorf("FailingScenarios() = %v, want [rate]", got)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()
	cases := Builtin()[:10]
	newHarness := func() *Harness {
		return New(builtinResolver(t), cases, WithParallelism(4))
	}

	first, err := newHarness().Run(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	second, err := newHarness().Run(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if first.Summary != second.Summary {
		t.Errorf("summaries differ: %+v vs %+v", first.Summary, second.Summary)
	}
	if !reflect.DeepEqual(first.Failures, second.Failures) {
		t.Errorf("failure maps differ: %v vs %v", first.Failures, second.Failures)
	}
}

func TestRunPropagatesRecorderError(t *testing.T) {
	t.Parallel()
	cases := []Case{{Name: "p", VoiceInput: "ouvre la cible", Expected: []string{"cible"}}}
	h := New(classifierResolver(t), cases, WithRecorder(failingRecorder{}))

	if _, err := h.Run(context.Background(), 2); err == nil {
		t.Fatal("Run() = nil error, want recorder failure")
	}
}

func TestFileRecorderAppendsJSONL(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "records.jsonl")
	fr := NewFileRecorder(path)

	recs := []Record{
		{Cycle: 1, Scenario: "a", VoiceInput: "ouvre chrome", Result: ResultPass, Score: 1},
		{Cycle: 1, Scenario: "b", VoiceInput: "zzz", Result: ResultFail},
	}
	for _, rec := range recs {
		if err := fr.Record(rec); err != nil {
			t.Fatal(err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var got []Record
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec Record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("line %d: %v", len(got)+1, err)
		}
		got = append(got, rec)
	}
	if !reflect.DeepEqual(got, recs) {
		t.Errorf("read back %+v, want %+v", got, recs)
	}
}
