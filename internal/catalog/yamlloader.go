package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCommandsFile reads a YAML command overlay file. The file holds a
// top-level list of [CommandEntry]. Unknown fields are rejected so typos in
// hand-edited catalogs surface at startup.
func LoadCommandsFile(path string) ([]CommandEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open commands file %q: %w", path, err)
	}
	defer f.Close()

	entries, err := decodeList[CommandEntry](f)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse commands file %q: %w", path, err)
	}
	return entries, nil
}

// LoadSkillsFile reads a YAML skill overlay file holding a top-level list of
// [SkillEntry].
func LoadSkillsFile(path string) ([]SkillEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open skills file %q: %w", path, err)
	}
	defer f.Close()

	entries, err := decodeList[SkillEntry](f)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse skills file %q: %w", path, err)
	}
	return entries, nil
}

func decodeList[T any](r io.Reader) ([]T, error) {
	var entries []T
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return entries, nil
}

// MergeCommands overlays extra entries on top of base. An extra entry whose
// name matches a base entry replaces it in place; the rest are appended in
// file order.
func MergeCommands(base, extra []CommandEntry) []CommandEntry {
	merged := make([]CommandEntry, len(base))
	copy(merged, base)
	index := make(map[string]int, len(merged))
	for i, cmd := range merged {
		index[cmd.Name] = i
	}
	for _, cmd := range extra {
		if i, ok := index[cmd.Name]; ok {
			merged[i] = cmd
			continue
		}
		index[cmd.Name] = len(merged)
		merged = append(merged, cmd)
	}
	return merged
}

// MergeSkills overlays extra skill entries on top of base, by name.
func MergeSkills(base, extra []SkillEntry) []SkillEntry {
	merged := make([]SkillEntry, len(base))
	copy(merged, base)
	index := make(map[string]int, len(merged))
	for i, sk := range merged {
		index[sk.Name] = i
	}
	for _, sk := range extra {
		if i, ok := index[sk.Name]; ok {
			merged[i] = sk
			continue
		}
		index[sk.Name] = len(merged)
		merged = append(merged, sk)
	}
	return merged
}
