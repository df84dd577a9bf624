package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// placeholderRe matches a named placeholder such as {site} inside a trigger
// template or action template.
var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// New builds a validated [Catalog] from ordered command and skill entries.
// A malformed entry is an authoring defect: New reports it with the entry
// name and index rather than letting it surface mid-match.
func New(commands []CommandEntry, skills []SkillEntry) (*Catalog, error) {
	var errs []error

	namesSeen := make(map[string]int, len(commands)+len(skills))
	for i, cmd := range commands {
		prefix := fmt.Sprintf("commands[%d] (%s)", i, cmd.Name)
		if err := validateCommand(cmd); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
		if prev, ok := namesSeen[cmd.Name]; ok {
			errs = append(errs, fmt.Errorf("%s: name duplicates commands[%d]", prefix, prev))
		}
		namesSeen[cmd.Name] = i
	}

	skillNamesSeen := make(map[string]int, len(skills))
	for i, sk := range skills {
		prefix := fmt.Sprintf("skills[%d] (%s)", i, sk.Name)
		if err := validateSkill(sk); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
		if prev, ok := skillNamesSeen[sk.Name]; ok {
			errs = append(errs, fmt.Errorf("%s: name duplicates skills[%d]", prefix, prev))
		}
		skillNamesSeen[sk.Name] = i
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return &Catalog{commands: commands, skills: skills}, nil
}

// validateCommand checks a single command entry.
//
// Rules:
//   - Name and at least one trigger are required.
//   - Kind must be a recognised [ActionKind].
//   - Braces in every trigger must be balanced and non-nested.
//   - Every placeholder used in a trigger must be declared in Params.
func validateCommand(cmd CommandEntry) error {
	var errs []error

	if cmd.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if len(cmd.Triggers) == 0 {
		errs = append(errs, errors.New("at least one trigger is required"))
	}
	if !cmd.Kind.IsValid() {
		errs = append(errs, fmt.Errorf("kind %q is not a recognised action kind", cmd.Kind))
	}

	for i, trig := range cmd.Triggers {
		if strings.TrimSpace(trig) == "" {
			errs = append(errs, fmt.Errorf("trigger[%d] must not be empty", i))
			continue
		}
		if err := checkBraces(trig); err != nil {
			errs = append(errs, fmt.Errorf("trigger[%d] %q: %w", i, trig, err))
			continue
		}
		for _, name := range Placeholders(trig) {
			if !slices.Contains(cmd.Params, name) {
				errs = append(errs, fmt.Errorf("trigger[%d] %q: placeholder {%s} is not declared in params", i, trig, name))
			}
		}
	}

	return errors.Join(errs...)
}

// validateSkill checks a single skill entry. Skill triggers are literal
// phrases: any brace is a defect.
func validateSkill(sk SkillEntry) error {
	var errs []error

	if sk.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if len(sk.Triggers) == 0 {
		errs = append(errs, errors.New("at least one trigger is required"))
	}
	if len(sk.Steps) == 0 {
		errs = append(errs, errors.New("at least one step is required"))
	}

	for i, trig := range sk.Triggers {
		if strings.TrimSpace(trig) == "" {
			errs = append(errs, fmt.Errorf("trigger[%d] must not be empty", i))
		}
		if strings.ContainsAny(trig, "{}") {
			errs = append(errs, fmt.Errorf("trigger[%d] %q: skill triggers must be literal phrases", i, trig))
		}
	}
	for i, step := range sk.Steps {
		if !step.Kind.IsValid() {
			errs = append(errs, fmt.Errorf("step[%d]: kind %q is not a recognised action kind", i, step.Kind))
		}
	}

	return errors.Join(errs...)
}

// Placeholders returns the placeholder names of a trigger template in
// appearance order. Literal triggers return nil.
func Placeholders(trigger string) []string {
	matches := placeholderRe.FindAllStringSubmatch(trigger, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// checkBraces verifies that every { has a matching } with a word-character
// name in between, and that braces do not nest.
func checkBraces(trigger string) error {
	depth := 0
	for _, r := range trigger {
		switch r {
		case '{':
			depth++
			if depth > 1 {
				return errors.New("nested placeholder braces")
			}
		case '}':
			depth--
			if depth < 0 {
				return errors.New("unbalanced placeholder braces")
			}
		}
	}
	if depth != 0 {
		return errors.New("unbalanced placeholder braces")
	}
	// Braces balance; make sure each pair encloses a valid name ({} or
	// {a b} would slip past the depth check).
	stripped := placeholderRe.ReplaceAllString(trigger, "")
	if strings.ContainsAny(stripped, "{}") {
		return errors.New("placeholder name must be a single word")
	}
	return nil
}
