package binding

import (
	"strings"
	"unicode"
)

// categoryLabels maps well-known command prefixes to display labels.
var categoryLabels = map[string]string{
	"workbench":     "Workbench",
	"editor":        "Editor",
	"git":           "Git",
	"terminal":      "Terminal",
	"debug":         "Debug",
	"search":        "Search",
	"explorer":      "Explorer",
	"notebook":      "Notebook",
	"extension":     "Extensions",
	"extensions":    "Extensions",
	"markdown":      "Markdown",
	"references":    "References",
	"settings":      "Settings",
	"view":          "View",
	"window":        "Window",
	"zen":           "Zen",
	"cursorundo":    "Cursor",
	"cursorredo":    "Cursor",
	"vim":           "Vim",
	"emmet":         "Emmet",
	"testing":       "Testing",
	"task":          "Tasks",
	"tasks":         "Tasks",
	"breadcrumbs":   "Breadcrumbs",
	"accessibility": "Accessibility",
}

// DeriveCategory derives a category label from a command identifier
// using the segment before the first dot. Unknown prefixes are
// title-cased as-is; an empty command yields "Other".
func DeriveCategory(command string) string {
	command = strings.TrimSpace(command)
	if command == "" {
		return "Other"
	}

	prefix := command
	if idx := strings.IndexByte(command, '.'); idx >= 0 {
		prefix = command[:idx]
	}
	prefix = strings.ToLower(prefix)

	if label, ok := categoryLabels[prefix]; ok {
		return label
	}
	return titleCase(prefix)
}

// CommandLabel derives a human-readable label from the final segment
// of a command identifier: "workbench.action.files.saveAll" becomes
// "Save All".
func CommandLabel(command string) string {
	command = strings.TrimSpace(command)
	if command == "" {
		return ""
	}

	seg := command
	if idx := strings.LastIndexByte(command, '.'); idx >= 0 {
		seg = command[idx+1:]
	}

	words := splitCamel(seg)
	for i, w := range words {
		words[i] = titleCase(w)
	}
	return strings.Join(words, " ")
}

// splitCamel splits an identifier on camelCase boundaries and on
// underscores or hyphens.
func splitCamel(s string) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for _, r := range s {
		switch {
		case r == '_' || r == '-':
			flush()
		case unicode.IsUpper(r) && len(cur) > 0 && !unicode.IsUpper(cur[len(cur)-1]):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()

	return words
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
