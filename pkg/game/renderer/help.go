package renderer

import (
	"strings"

	"heightmap/pkg/engine/input"
)

// HelpWidth is the widest help line, in characters
const HelpWidth = 78

// keyLabels shortens binding codes for the help text
var keyLabels = map[string]string{
	" ":           "space",
	"arrow_up":    "up",
	"arrow_down":  "down",
	"arrow_left":  "left",
	"arrow_right": "right",
	"ctrl_c":      "^C",
	"escape":      "esc",
}

func keyLabel(code string) string {
	if l, ok := keyLabels[code]; ok {
		return l
	}
	return code
}

// HelpEntries returns one "KEY{codes} Action" markup entry per bound action
func HelpEntries() []string {
	byAction := input.GetBindingsByAction()

	entries := make([]string, 0, len(byAction))
	for _, act := range input.Actions() {
		codes := byAction[act]
		if len(codes) == 0 {
			continue
		}
		labels := make([]string, len(codes))
		for i, code := range codes {
			labels[i] = keyLabel(code)
		}
		entries = append(entries, "KEY{"+strings.Join(labels, "/")+"} "+input.ActionName(act))
	}
	return entries
}

// HelpLines packs the help entries into markup lines no wider than width
// once expanded. An entry wider than width gets a line of its own.
func HelpLines(width int) []string {
	var lines []string
	var line string
	for _, entry := range HelpEntries() {
		if line == "" {
			line = entry
			continue
		}
		if len(PlainText(line))+2+len(PlainText(entry)) > width {
			lines = append(lines, line)
			line = entry
			continue
		}
		line += "  " + entry
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
