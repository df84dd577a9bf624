// Package resolve arbitrates between the command and skill matchers.
//
// Both matchers run independently on the same corrected text; a fixed
// precedence table then picks the winner. The skill-first bias exists
// because skills are multi-step and more specific than single commands, so
// a good skill match should not lose to a mediocre command match. The one
// exception: an exact literal command always wins.
package resolve

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/MrWong99/majordome/internal/catalog"
	"github.com/MrWong99/majordome/internal/correction"
	"github.com/MrWong99/majordome/internal/match"
	"github.com/MrWong99/majordome/internal/observe"
)

// Kind classifies an arbitration decision.
type Kind string

const (
	KindCommand Kind = "command"
	KindSkill   Kind = "skill"
	KindNone    Kind = "none"
)

// Thresholds are the arbitration cutoffs. They are empirical tuning values,
// kept as data rather than constants so they can be adjusted in config.
type Thresholds struct {
	// SkillStrong is the skill score above which a skill wins over any
	// non-exact command match.
	SkillStrong float64

	// Command is the command score above which a command wins when no
	// strong skill matched.
	Command float64

	// SkillWeak is the low-confidence skill fallback cutoff.
	SkillWeak float64
}

// DefaultThresholds returns the tuning the scenario corpus was calibrated
// against.
func DefaultThresholds() Thresholds {
	return Thresholds{SkillStrong: 0.65, Command: 0.60, SkillWeak: 0.55}
}

// Decision is the outcome of resolving one voice input.
type Decision struct {
	// Name is the selected catalog entry name, empty when Kind is KindNone.
	Name string `json:"name,omitempty"`

	// Score is the winning match score. For KindNone it carries the best
	// score either matcher saw, for diagnostics.
	Score float64 `json:"score"`

	Kind Kind `json:"kind"`

	// Params holds placeholder values extracted by a template match.
	Params map[string]string `json:"params,omitempty"`

	// NeedsConfirm is set when the selected entry is gated behind an
	// explicit confirmation. The caller must obtain affirmation before
	// handing the decision to the executor.
	NeedsConfirm bool `json:"needs_confirm,omitempty"`

	// Description is the selected entry's description, used by the
	// confirmation flow.
	Description string `json:"description,omitempty"`

	// Corrected is the normalised text the matchers actually saw.
	Corrected string `json:"corrected"`
}

// Option is a functional option for configuring a [Resolver].
type Option func(*Resolver)

// WithThresholds overrides the arbitration thresholds.
func WithThresholds(t Thresholds) Option {
	return func(r *Resolver) {
		r.thresholds = t
	}
}

// WithMatchThresholds overrides the per-matcher minimum confidences.
func WithMatchThresholds(command, skill float64) Option {
	return func(r *Resolver) {
		r.commandThreshold = command
		r.skillThreshold = skill
	}
}

// WithMetrics attaches a metrics sink. When nil (the default), nothing is
// recorded.
func WithMetrics(m *observe.Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

// Resolver turns raw voice input into a routing [Decision]. It is read-only
// after construction and safe for concurrent use.
type Resolver struct {
	corrector *correction.Corrector
	catalog   *catalog.Catalog
	commands  *match.Matcher
	skills    *match.Matcher

	thresholds       Thresholds
	commandThreshold float64
	skillThreshold   float64
	metrics          *observe.Metrics
}

// New builds a [Resolver] over the given catalog and corrector.
func New(cat *catalog.Catalog, corr *correction.Corrector, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		corrector:  corr,
		catalog:    cat,
		thresholds: DefaultThresholds(),
	}
	for _, o := range opts {
		o(r)
	}

	var err error
	if r.commands, err = match.New(match.Commands(cat.Commands()), r.commandThreshold); err != nil {
		return nil, err
	}
	if r.skills, err = match.New(match.Skills(cat.Skills()), r.skillThreshold); err != nil {
		return nil, err
	}
	return r, nil
}

// Resolve corrects text, runs both matchers and arbitrates. It never
// returns an error: malformed input degrades to a KindNone decision.
func (r *Resolver) Resolve(ctx context.Context, text string) Decision {
	ctx, span := observe.StartSpan(ctx, "majordome.resolve")
	defer span.End()
	start := time.Now()

	corrected, changes := r.corrector.Correct(text)
	if r.metrics != nil {
		for _, ch := range changes {
			r.metrics.RecordCorrection(ctx, ch.Method)
		}
	}

	cmd := r.commands.Match(corrected)
	skill := r.skills.Match(corrected)

	d := r.arbitrate(cmd, skill)
	d.Corrected = corrected

	span.SetAttributes(
		attribute.String("majordome.decision.kind", string(d.Kind)),
		attribute.String("majordome.decision.name", d.Name),
		attribute.Float64("majordome.decision.score", d.Score),
	)
	if r.metrics != nil {
		r.metrics.RecordDecision(ctx, string(d.Kind), time.Since(start).Seconds())
	}
	observe.Logger(ctx).Debug("resolved voice input",
		"corrected", corrected, "kind", d.Kind, "name", d.Name, "score", d.Score)

	return d
}

// arbitrate applies the precedence table, first satisfied rule wins:
//
//  1. strong skill + exact command: the command.
//  2. strong skill: the skill.
//  3. command above its cutoff: the command.
//  4. weak skill fallback: the skill.
//  5. no match, best score reported.
func (r *Resolver) arbitrate(cmd, skill match.Result) Decision {
	t := r.thresholds

	if skill.Matched() && skill.Confidence >= t.SkillStrong {
		if cmd.Matched() && cmd.Confidence == match.ScoreExact {
			return r.commandDecision(cmd)
		}
		return r.skillDecision(skill)
	}
	if cmd.Matched() && cmd.Confidence >= t.Command {
		return r.commandDecision(cmd)
	}
	if skill.Matched() && skill.Confidence >= t.SkillWeak {
		return r.skillDecision(skill)
	}

	best := cmd.Confidence
	if skill.Confidence > best {
		best = skill.Confidence
	}
	return Decision{Score: best, Kind: KindNone}
}

func (r *Resolver) commandDecision(res match.Result) Decision {
	d := Decision{
		Name:   res.Name,
		Score:  res.Confidence,
		Kind:   KindCommand,
		Params: res.Params,
	}
	if entry := r.catalog.Command(res.Name); entry != nil {
		d.NeedsConfirm = entry.Confirm
		d.Description = entry.Description
	}
	return d
}

func (r *Resolver) skillDecision(res match.Result) Decision {
	d := Decision{
		Name:  res.Name,
		Score: res.Confidence,
		Kind:  KindSkill,
	}
	if entry := r.catalog.Skill(res.Name); entry != nil {
		d.NeedsConfirm = entry.Confirm
		d.Description = entry.Description
	}
	return d
}
