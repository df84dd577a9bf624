// Package catalog defines the routing catalogs of the Majordome engine:
// single-action voice commands and multi-step skills (pipelines).
//
// Catalogs are built at process start from the built-in French tables
// ([BuiltinCommands], [BuiltinSkills]), optionally overlaid with entries from
// YAML files ([LoadCommandsFile], [LoadSkillsFile]), validated once, and
// never mutated during a session. All catalog methods are safe for
// concurrent use after construction.
package catalog

// ActionKind classifies what the external executor should do with a matched
// command. The engine never executes actions; it only routes.
type ActionKind string

const (
	// ActionAppOpen launches a desktop application by alias.
	ActionAppOpen ActionKind = "app-open"

	// ActionNavigate opens a URL (or site alias) in the browser.
	ActionNavigate ActionKind = "browser-navigate"

	// ActionSearch runs a web search for the extracted query.
	ActionSearch ActionKind = "browser-search"

	// ActionShell runs a shell/PowerShell one-liner.
	ActionShell ActionKind = "shell"

	// ActionScript launches a registered script by name.
	ActionScript ActionKind = "script"

	// ActionTool invokes a built-in assistant tool (system info, process
	// list, cluster status, ...).
	ActionTool ActionKind = "pipeline-tool"

	// ActionListCommands asks the assistant to speak/print its own help.
	ActionListCommands ActionKind = "list-commands"

	// ActionExit stops the assistant.
	ActionExit ActionKind = "exit"
)

// IsValid reports whether k is a recognised action kind.
func (k ActionKind) IsValid() bool {
	switch k {
	case ActionAppOpen, ActionNavigate, ActionSearch, ActionShell,
		ActionScript, ActionTool, ActionListCommands, ActionExit:
		return true
	}
	return false
}

// CommandEntry is a single pre-registered voice command.
type CommandEntry struct {
	// Name is the unique identifier referenced by scenarios and reports.
	Name string `yaml:"name" json:"name"`

	// Category groups commands for help output (navigation, fichiers, ...).
	Category string `yaml:"category" json:"category"`

	// Description is a short French description of the command.
	Description string `yaml:"description" json:"description"`

	// Triggers are the phrases that activate the command, in priority
	// order. A trigger may contain named placeholders like "va sur {site}".
	Triggers []string `yaml:"triggers" json:"triggers"`

	// Kind tells the executor how to interpret Action.
	Kind ActionKind `yaml:"kind" json:"kind"`

	// Action is the template the executor consumes; placeholders named in
	// Params are substituted with extracted values.
	Action string `yaml:"action" json:"action"`

	// Params lists the placeholder names referenced by Triggers and Action.
	Params []string `yaml:"params,omitempty" json:"params,omitempty"`

	// Confirm gates destructive actions behind an explicit confirmation.
	Confirm bool `yaml:"confirm,omitempty" json:"confirm,omitempty"`
}

// SkillEntry is a multi-step pipeline. Skills carry literal trigger phrases
// only, never placeholders, and their steps are opaque to the matcher.
type SkillEntry struct {
	// Name is the unique identifier referenced by scenarios and reports.
	Name string `yaml:"name" json:"name"`

	// Category groups skills for help output.
	Category string `yaml:"category" json:"category"`

	// Description is a short French description of the pipeline.
	Description string `yaml:"description" json:"description"`

	// Triggers are the literal phrases that activate the skill.
	Triggers []string `yaml:"triggers" json:"triggers"`

	// Steps are the ordered step descriptors handed to the executor.
	Steps []Step `yaml:"steps" json:"steps"`

	// Confirm gates the whole pipeline behind an explicit confirmation.
	Confirm bool `yaml:"confirm,omitempty" json:"confirm,omitempty"`
}

// Step is one executable step of a skill. The matcher never inspects steps;
// they exist so the executor receives the full pipeline on a match.
type Step struct {
	// Kind tells the executor how to interpret Action.
	Kind ActionKind `yaml:"kind" json:"kind"`

	// Action is the executor payload for this step.
	Action string `yaml:"action" json:"action"`
}

// Catalog is an immutable, ordered command and skill catalog. Construct with
// [New]; the constructor validates every entry and fails fast on authoring
// defects (trigger templates with unbalanced braces, duplicate names).
type Catalog struct {
	commands []CommandEntry
	skills   []SkillEntry
}

// Commands returns the ordered command entries. The returned slice must not
// be modified.
func (c *Catalog) Commands() []CommandEntry { return c.commands }

// Skills returns the ordered skill entries. The returned slice must not be
// modified.
func (c *Catalog) Skills() []SkillEntry { return c.skills }

// Command returns the command with the given name, or nil.
func (c *Catalog) Command(name string) *CommandEntry {
	for i := range c.commands {
		if c.commands[i].Name == name {
			return &c.commands[i]
		}
	}
	return nil
}

// Skill returns the skill with the given name, or nil.
func (c *Catalog) Skill(name string) *SkillEntry {
	for i := range c.skills {
		if c.skills[i].Name == name {
			return &c.skills[i]
		}
	}
	return nil
}
