// Command majordome is the entry point for the Majordome voice command
// resolution engine. It runs an interactive resolve loop by default; the
// -validate and -stress flags run the scenario harness instead.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MrWong99/majordome/internal/catalog"
	"github.com/MrWong99/majordome/internal/config"
	"github.com/MrWong99/majordome/internal/correction"
	"github.com/MrWong99/majordome/internal/correction/pgstore"
	"github.com/MrWong99/majordome/internal/observe"
	"github.com/MrWong99/majordome/internal/resolve"
	"github.com/MrWong99/majordome/internal/scenario"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	validate := flag.Bool("validate", false, "run the scenario validation cycles and exit")
	stress := flag.Bool("stress", false, "run the noisy-variant stress test and exit")
	cycles := flag.Int("cycles", 0, "override the number of validation cycles")
	reportPath := flag.String("report", "", "write the harness JSON report to this file instead of stdout")
	flag.Parse()

	// ── Load configuration ────────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		// The zero config is fully functional: built-in catalogs, static
		// dictionary, no persistence.
		cfg = &config.Config{}
		cfg.ApplyDefaults()
		fmt.Fprintf(os.Stderr, "majordome: config file %q not found, using defaults\n", *configPath)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "majordome: %v\n", err)
		return 1
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	slog.SetDefault(newLogger(cfg.Server.LogLevel))
	slog.Info("majordome starting",
		"version", version,
		"config", *configPath,
		"log_level", cfg.Server.LogLevel,
	)

	// ── Signal context ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ─────────────────────────────────────────────────────────────
	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceVersion: version})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()
	metrics := observe.DefaultMetrics()

	if cfg.Server.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.Server.MetricsAddr)
	}

	// ── Catalogs ──────────────────────────────────────────────────────────────
	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		slog.Error("failed to build catalog", "err", err)
		return 1
	}
	slog.Info("catalog loaded", "commands", len(cat.Commands()), "skills", len(cat.Skills()))

	// ── Corrector ─────────────────────────────────────────────────────────────
	corr, cleanup := buildCorrector(ctx, cfg.Correction, cat)
	defer cleanup()

	// ── Resolver ──────────────────────────────────────────────────────────────
	resolver, err := resolve.New(cat, corr,
		resolve.WithThresholds(resolve.Thresholds{
			SkillStrong: cfg.Arbitration.SkillStrong,
			Command:     cfg.Arbitration.Command,
			SkillWeak:   cfg.Arbitration.SkillWeak,
		}),
		resolve.WithMatchThresholds(cfg.Matcher.CommandThreshold, cfg.Matcher.SkillThreshold),
		resolve.WithMetrics(metrics),
	)
	if err != nil {
		slog.Error("failed to build resolver", "err", err)
		return 1
	}

	switch {
	case *validate:
		return runValidation(ctx, resolver, metrics, cfg.Harness, *cycles, *reportPath)
	case *stress:
		return runStress(ctx, cat, corr, cfg.Harness, *reportPath)
	default:
		return runInteractive(ctx, resolver, cat)
	}
}

// buildCatalog merges optional YAML overlay files over the built-in catalogs.
func buildCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	commands := catalog.BuiltinCommands()
	if cfg.CommandsFile != "" {
		extra, err := catalog.LoadCommandsFile(cfg.CommandsFile)
		if err != nil {
			return nil, err
		}
		commands = catalog.MergeCommands(commands, extra)
	}
	skills := catalog.BuiltinSkills()
	if cfg.SkillsFile != "" {
		extra, err := catalog.LoadSkillsFile(cfg.SkillsFile)
		if err != nil {
			return nil, err
		}
		skills = catalog.MergeSkills(skills, extra)
	}
	return catalog.New(commands, skills)
}

// buildCorrector assembles the correction pipeline: the static dictionary,
// learned rules from PostgreSQL when configured, and the phonetic aligner.
// An unreachable database degrades to static-only operation instead of
// failing startup. The returned cleanup closes the connection pool.
func buildCorrector(ctx context.Context, cfg config.CorrectionConfig, cat *catalog.Catalog) (*correction.Corrector, func()) {
	var opts []correction.Option
	cleanup := func() {}

	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			slog.Warn("learned corrections unavailable, running on static dictionary", "err", err)
		} else {
			cleanup = pool.Close
			store := pgstore.New(pool)
			if err := store.Migrate(ctx); err != nil {
				slog.Warn("learned corrections unavailable, running on static dictionary", "err", err)
			} else if rules, err := store.Snapshot(ctx); err != nil {
				slog.Warn("learned corrections unavailable, running on static dictionary", "err", err)
			} else {
				opts = append(opts, correction.WithLearned(rules))
				slog.Info("learned corrections loaded", "rules", len(rules))
			}
		}
	}

	if cfg.PhoneticEnabled() {
		aligner := correction.NewAligner(correction.DefaultVocabulary(),
			correction.WithPhoneticThreshold(cfg.PhoneticThreshold),
			correction.WithFuzzyThreshold(cfg.FuzzyThreshold),
			correction.WithKnownWords(triggerWords(cat)),
		)
		opts = append(opts, correction.WithAligner(aligner))
	}

	return correction.New(opts...), cleanup
}

// triggerWords collects every literal word appearing in catalog triggers.
// These are known-good French and must never be rewritten by the aligner.
func triggerWords(cat *catalog.Catalog) []string {
	seen := make(map[string]struct{})
	collect := func(triggers []string) {
		for _, trig := range triggers {
			for _, word := range strings.Fields(strings.ToLower(trig)) {
				if strings.ContainsRune(word, '{') {
					continue
				}
				seen[word] = struct{}{}
			}
		}
	}
	for _, cmd := range cat.Commands() {
		collect(cmd.Triggers)
	}
	for _, sk := range cat.Skills() {
		collect(sk.Triggers)
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	return words
}

func startMetricsServer(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		slog.Info("metrics endpoint listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server error", "err", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}

// ── Harness modes ─────────────────────────────────────────────────────────────

func runValidation(ctx context.Context, resolver *resolve.Resolver, metrics *observe.Metrics, cfg config.HarnessConfig, cyclesOverride int, reportPath string) int {
	opts := []scenario.Option{
		scenario.WithParallelism(cfg.Parallelism),
		scenario.WithMetrics(metrics),
	}
	if cfg.RecordFile != "" {
		opts = append(opts, scenario.WithRecorder(scenario.NewFileRecorder(cfg.RecordFile)))
	}
	h := scenario.New(resolver, scenario.Builtin(), opts...)

	cycles := cfg.Cycles
	if cyclesOverride > 0 {
		cycles = cyclesOverride
	}

	rep, err := h.Run(ctx, cycles)
	if err != nil {
		slog.Error("validation run failed", "err", err)
		return 1
	}
	if err := writeReport(rep, reportPath); err != nil {
		slog.Error("failed to write report", "err", err)
		return 1
	}

	fmt.Printf("cycles: %d  tests: %d  passed: %d  failed: %d  partial: %d  pass rate: %.1f%%\n",
		rep.Summary.TotalCycles, rep.Summary.TotalTests, rep.Summary.TotalPassed,
		rep.Summary.TotalFailed, rep.Summary.TotalPartial, rep.Summary.GlobalPassRate)
	for _, name := range rep.FailingScenarios() {
		f := rep.Failures[name]
		fmt.Printf("  FAIL %s (%d): %q -> %s\n", name, f.Count, f.VoiceInput, f.Details)
	}
	if rep.Summary.TotalFailed > 0 {
		return 1
	}
	return 0
}

func runStress(ctx context.Context, cat *catalog.Catalog, corr *correction.Corrector, cfg config.HarnessConfig, reportPath string) int {
	st, err := scenario.NewStressTester(cat, corr, scenario.Builtin(), scenario.StressConfig{
		Seed:      cfg.StressSeed,
		Variants:  cfg.StressVariants,
		Threshold: cfg.StressThreshold,
	})
	if err != nil {
		slog.Error("failed to build stress tester", "err", err)
		return 1
	}

	rep := st.Run(ctx)
	if err := writeReport(rep, reportPath); err != nil {
		slog.Error("failed to write report", "err", err)
		return 1
	}

	fmt.Printf("variants: %d  passed: %d  rate: %.1f%%\n", rep.Total, rep.Passed, rep.Rate)
	for _, f := range rep.Failures {
		fmt.Printf("  [%s] %q -> %q => %s (score %.2f)\n", f.Scenario, f.Original, f.Variant, f.Matched, f.Score)
	}
	return 0
}

func writeReport(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ── Interactive loop ──────────────────────────────────────────────────────────

// runInteractive reads voice transcriptions from stdin, one per line, and
// prints the routing decision for each. Confirmation-gated entries prompt
// before being reported as ready to run.
func runInteractive(ctx context.Context, resolver *resolve.Resolver, cat *catalog.Catalog) int {
	fmt.Println("majordome pret. Tapez une commande vocale, 'aide' pour la liste, 'stop' pour quitter.")

	sc := bufio.NewScanner(os.Stdin)
	for fmt.Print("> "); sc.Scan(); fmt.Print("> ") {
		if ctx.Err() != nil {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		d := resolver.Resolve(ctx, line)
		if d.Kind == resolve.KindNone {
			fmt.Printf("Commande non reconnue (meilleur score %.2f). Dites 'aide' pour la liste.\n", d.Score)
			continue
		}

		if d.NeedsConfirm && !confirm(sc, d.Description) {
			fmt.Println("Annule.")
			continue
		}

		switch {
		case d.Kind == resolve.KindCommand:
			entry := cat.Command(d.Name)
			switch entry.Kind {
			case catalog.ActionListCommands:
				fmt.Print(cat.FormatHelp())
			case catalog.ActionExit:
				fmt.Println("Au revoir.")
				return 0
			default:
				printDecision(d, string(entry.Kind), entry.Action)
			}
		case d.Kind == resolve.KindSkill:
			entry := cat.Skill(d.Name)
			printDecision(d, "skill", fmt.Sprintf("%d etapes", len(entry.Steps)))
		}
	}
	if err := sc.Err(); err != nil {
		slog.Error("stdin read error", "err", err)
		return 1
	}
	fmt.Println()
	return 0
}

// confirm prompts for a oui/non answer on the same scanner as the main loop.
func confirm(sc *bufio.Scanner, description string) bool {
	fmt.Printf("%s. Confirmer ? (oui/non) ", description)
	if !sc.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(sc.Text())) {
	case "oui", "o", "yes", "y":
		return true
	}
	return false
}

func printDecision(d resolve.Decision, kind, action string) {
	fmt.Printf("-> %s [%s] score %.2f: %s\n", d.Name, kind, d.Score, action)
	if len(d.Params) > 0 {
		for k, v := range d.Params {
			fmt.Printf("   %s = %q\n", k, v)
		}
	}
}

// ── Logger ────────────────────────────────────────────────────────────────────

func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
