package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path and returns a validated
// [Config] with defaults applied. It is a convenience wrapper around
// [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r, applies defaults, and
// validates the result. Useful in tests where configs are constructed from
// string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	cfg.ApplyDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Server.LogLevel != "" && !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}

	checkUnit := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s %.2f is out of range [0, 1]", name, v))
		}
	}
	checkUnit("matcher.command_threshold", cfg.Matcher.CommandThreshold)
	checkUnit("matcher.skill_threshold", cfg.Matcher.SkillThreshold)
	checkUnit("arbitration.skill_strong", cfg.Arbitration.SkillStrong)
	checkUnit("arbitration.command", cfg.Arbitration.Command)
	checkUnit("arbitration.skill_weak", cfg.Arbitration.SkillWeak)
	checkUnit("correction.phonetic_threshold", cfg.Correction.PhoneticThreshold)
	checkUnit("correction.fuzzy_threshold", cfg.Correction.FuzzyThreshold)
	checkUnit("harness.stress_threshold", cfg.Harness.StressThreshold)

	// A weak skill threshold above the strong one would make rule 4
	// unreachable; flag it rather than silently reorder.
	if cfg.Arbitration.SkillWeak > cfg.Arbitration.SkillStrong {
		errs = append(errs, fmt.Errorf("arbitration.skill_weak %.2f is above arbitration.skill_strong %.2f", cfg.Arbitration.SkillWeak, cfg.Arbitration.SkillStrong))
	}

	if cfg.Harness.Cycles < 1 {
		errs = append(errs, fmt.Errorf("harness.cycles %d must be at least 1", cfg.Harness.Cycles))
	}
	if cfg.Harness.Parallelism < 1 {
		errs = append(errs, fmt.Errorf("harness.parallelism %d must be at least 1", cfg.Harness.Parallelism))
	}
	if cfg.Harness.StressVariants < 1 {
		errs = append(errs, fmt.Errorf("harness.stress_variants %d must be at least 1", cfg.Harness.StressVariants))
	}

	return errors.Join(errs...)
}
