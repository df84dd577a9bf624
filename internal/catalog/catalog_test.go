package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestBuiltinCatalogsAreValid(t *testing.T) {
	t.Parallel()
	c, err := New(BuiltinCommands(), BuiltinSkills())
	if err != nil {
		t.Fatalf("New() with built-in catalogs returned error: %v", err)
	}
	if got := len(c.Commands()); got == 0 {
		t.Error("built-in command catalog is empty")
	}
	if got := len(c.Skills()); got != 15 {
		t.Errorf("len(Skills()) = %d, want 15", got)
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	t.Parallel()
	cmds := []CommandEntry{
		{Name: "ouvrir_chrome", Triggers: []string{"ouvre chrome"}, Kind: ActionAppOpen},
		{Name: "ouvrir_chrome", Triggers: []string{"lance chrome"}, Kind: ActionAppOpen},
	}
	_, err := New(cmds, nil)
	if err == nil {
		t.Fatal("New() accepted duplicate command names")
	}
	if !strings.Contains(err.Error(), "duplicates") {
		t.Errorf("error = %q, want mention of duplicates", err)
	}
}

func TestNewRejectsUndeclaredPlaceholder(t *testing.T) {
	t.Parallel()
	cmds := []CommandEntry{
		{Name: "aller_sur_site", Triggers: []string{"va sur {site}"}, Kind: ActionNavigate, Action: "{site}"},
	}
	_, err := New(cmds, nil)
	if err == nil {
		t.Fatal("New() accepted a trigger placeholder missing from params")
	}
	if !strings.Contains(err.Error(), "{site}") {
		t.Errorf("error = %q, want mention of {site}", err)
	}
}

func TestNewRejectsMalformedBraces(t *testing.T) {
	t.Parallel()
	for _, trig := range []string{"va sur {site", "va sur site}", "va {a{b}}", "va sur {}"} {
		cmds := []CommandEntry{
			{Name: "x", Triggers: []string{trig}, Kind: ActionNavigate, Action: "x", Params: []string{"site"}},
		}
		if _, err := New(cmds, nil); err == nil {
			t.Errorf("New() accepted malformed trigger %q", trig)
		}
	}
}

func TestNewRejectsSkillWithPlaceholder(t *testing.T) {
	t.Parallel()
	skills := []SkillEntry{
		{
			Name:     "mode_dev",
			Triggers: []string{"mode {quoi}"},
			Steps:    []Step{{Kind: ActionAppOpen, Action: "code"}},
		},
	}
	_, err := New(nil, skills)
	if err == nil {
		t.Fatal("New() accepted a skill trigger with a placeholder")
	}
}

func TestPlaceholders(t *testing.T) {
	t.Parallel()
	tests := []struct {
		trigger string
		want    []string
	}{
		{"va sur {site}", []string{"site"}},
		{"copie {src} vers {dst}", []string{"src", "dst"}},
		{"ouvre chrome", nil},
	}
	for _, tt := range tests {
		if got := Placeholders(tt.trigger); !slices.Equal(got, tt.want) {
			t.Errorf("Placeholders(%q) = %v, want %v", tt.trigger, got, tt.want)
		}
	}
}

func TestMergeCommandsOverridesByName(t *testing.T) {
	t.Parallel()
	base := []CommandEntry{
		{Name: "ouvrir_chrome", Triggers: []string{"ouvre chrome"}, Kind: ActionAppOpen, Action: "chrome"},
		{Name: "muet", Triggers: []string{"muet"}, Kind: ActionShell, Action: "..."},
	}
	extra := []CommandEntry{
		{Name: "ouvrir_chrome", Triggers: []string{"ouvre firefox"}, Kind: ActionAppOpen, Action: "firefox"},
		{Name: "ouvrir_slack", Triggers: []string{"ouvre slack"}, Kind: ActionAppOpen, Action: "slack"},
	}

	merged := MergeCommands(base, extra)
	if len(merged) != 3 {
		t.Fatalf("len(merged) = %d, want 3", len(merged))
	}
	if merged[0].Action != "firefox" {
		t.Errorf("merged[0].Action = %q, want override %q", merged[0].Action, "firefox")
	}
	if merged[2].Name != "ouvrir_slack" {
		t.Errorf("merged[2].Name = %q, want appended %q", merged[2].Name, "ouvrir_slack")
	}
	if base[0].Action != "chrome" {
		t.Error("MergeCommands mutated the base slice")
	}
}

func TestLoadCommandsFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "commands.yaml")
	content := `
- name: ouvrir_slack
  category: app
  description: Ouvrir Slack
  triggers:
    - ouvre slack
    - lance slack
  kind: app-open
  action: slack
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := LoadCommandsFile(path)
	if err != nil {
		t.Fatalf("LoadCommandsFile() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Kind != ActionAppOpen {
		t.Errorf("entries[0].Kind = %q, want %q", entries[0].Kind, ActionAppOpen)
	}
}

func TestLoadCommandsFileRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "commands.yaml")
	content := `
- name: ouvrir_slack
  triggers: [ouvre slack]
  kind: app-open
  action: slack
  tirggers: [typo]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCommandsFile(path); err == nil {
		t.Fatal("LoadCommandsFile() accepted a file with an unknown field")
	}
}

func TestResolveApp(t *testing.T) {
	t.Parallel()
	if got := ResolveApp("VSCode"); got != "code" {
		t.Errorf(`ResolveApp("VSCode") = %q, want "code"`, got)
	}
	if got := ResolveApp("figma"); got != "figma" {
		t.Errorf(`ResolveApp("figma") = %q, want passthrough "figma"`, got)
	}
}

func TestResolveSite(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"github", "https://github.com"},
		{"github.com", "https://github.com"},
		{"https://example.org", "https://example.org"},
		{"recettes de cuisine", "https://www.google.com/search?q=recettes+de+cuisine"},
	}
	for _, tt := range tests {
		if got := ResolveSite(tt.in); got != tt.want {
			t.Errorf("ResolveSite(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatHelpGroupsByCategory(t *testing.T) {
	t.Parallel()
	c, err := New(BuiltinCommands(), BuiltinSkills())
	if err != nil {
		t.Fatal(err)
	}
	help := c.FormatHelp()
	for _, want := range []string{"[navigation]", "[trading]", "[routine]", "ouvre chrome", "rapport du matin"} {
		if !strings.Contains(help, want) {
			t.Errorf("FormatHelp() output missing %q", want)
		}
	}
}
