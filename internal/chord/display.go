package chord

import "strings"

// Profile selects how chords are rendered for display.
// Profile selection is an external input; the parser never chooses one.
type Profile int

const (
	// ProfileSymbol renders modifiers as macOS-style glyphs with no
	// separator: "cmd+shift+k" -> "⌘⇧K".
	ProfileSymbol Profile = iota

	// ProfileText renders modifiers as readable labels joined with
	// "+": "cmd+shift+k" -> "Cmd+Shift+K".
	ProfileText
)

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case ProfileSymbol:
		return "symbol"
	case ProfileText:
		return "text"
	default:
		return "unknown"
	}
}

// ProfileFromName returns the profile for a name (case-insensitive).
// Unrecognized names fall back to ProfileSymbol.
func ProfileFromName(name string) Profile {
	if strings.EqualFold(strings.TrimSpace(name), "text") {
		return ProfileText
	}
	return ProfileSymbol
}

// symbolMap maps modifier tokens to display glyphs.
var symbolMap = map[string]string{
	"cmd":    "⌘",
	"meta":   "⌘",
	"ctrl":   "⌃",
	"shift":  "⇧",
	"alt":    "⌥",
	"option": "⌥",
}

// textMap maps modifier tokens to readable labels.
var textMap = map[string]string{
	"cmd":    "Cmd",
	"meta":   "Meta",
	"ctrl":   "Ctrl",
	"shift":  "Shift",
	"alt":    "Alt",
	"option": "Option",
}

// displayOrder fixes the modifier rendering order regardless of how
// the source spelled the chord.
var displayOrder = []string{"ctrl", "alt", "option", "shift", "cmd", "meta"}

// Display renders a chord under the given profile. The base key is
// always uppercased.
func Display(c Chord, profile Profile) string {
	var parts []string
	for _, mod := range displayOrder {
		if !c.HasModifier(mod) {
			continue
		}
		if profile == ProfileText {
			parts = append(parts, textMap[mod])
		} else {
			parts = append(parts, symbolMap[mod])
		}
	}

	base := strings.ToUpper(c.BaseKey)
	if profile == ProfileText {
		parts = append(parts, base)
		return strings.Join(parts, "+")
	}
	return strings.Join(parts, "") + base
}

// DisplaySequence renders each chord in a sequence, space-separated.
func DisplaySequence(chords []Chord, profile Profile) string {
	parts := make([]string, len(chords))
	for i, c := range chords {
		parts[i] = Display(c, profile)
	}
	return strings.Join(parts, " ")
}
