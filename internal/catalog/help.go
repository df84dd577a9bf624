package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// FormatHelp renders a human-readable French listing of every command and
// skill, grouped by category. Categories are sorted alphabetically; entries
// keep their catalog order within a category.
func (c *Catalog) FormatHelp() string {
	var b strings.Builder
	b.WriteString("Commandes disponibles:\n")
	writeGroups(&b, groupCommands(c.commands))
	b.WriteString("\nSkills disponibles:\n")
	writeGroups(&b, groupSkills(c.skills))
	return b.String()
}

type helpLine struct {
	trigger     string
	description string
}

func groupCommands(cmds []CommandEntry) map[string][]helpLine {
	groups := make(map[string][]helpLine)
	for _, cmd := range cmds {
		cat := cmd.Category
		if cat == "" {
			cat = "divers"
		}
		groups[cat] = append(groups[cat], helpLine{
			trigger:     cmd.Triggers[0],
			description: cmd.Description,
		})
	}
	return groups
}

func groupSkills(skills []SkillEntry) map[string][]helpLine {
	groups := make(map[string][]helpLine)
	for _, sk := range skills {
		cat := sk.Category
		if cat == "" {
			cat = "divers"
		}
		groups[cat] = append(groups[cat], helpLine{
			trigger:     sk.Triggers[0],
			description: sk.Description,
		})
	}
	return groups
}

func writeGroups(b *strings.Builder, groups map[string][]helpLine) {
	cats := make([]string, 0, len(groups))
	for cat := range groups {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	for _, cat := range cats {
		fmt.Fprintf(b, "\n  [%s]\n", cat)
		for _, line := range groups[cat] {
			fmt.Fprintf(b, "    %-32s %s\n", `"`+line.trigger+`"`, line.description)
		}
	}
}
