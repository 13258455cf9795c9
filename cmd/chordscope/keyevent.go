package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// specialKeyNames maps the tcell keys the live view cares about to
// chord base-key tokens. Keys in the Ctrl-A..Ctrl-Z range must be
// listed here when they have a conventional name, because the control
// range check below would otherwise claim them.
var specialKeyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyEscape:     "escape",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pageup",
	tcell.KeyPgDn:       "pagedown",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
}

// chordFromEvent converts a terminal key event to a raw chord string
// in the same notation the keybindings file uses ("ctrl+shift+p").
// Returns "" for events that do not map to a chord.
func chordFromEvent(ev *tcell.EventKey) string {
	mods := ev.Modifiers()
	ctrl := mods&tcell.ModCtrl != 0

	var base string
	switch {
	case specialKeyNames[ev.Key()] != "":
		base = specialKeyNames[ev.Key()]
	case ev.Key() == tcell.KeyRune:
		base = strings.ToLower(string(ev.Rune()))
	case ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ:
		// Terminals fold ctrl+letter into a control character.
		base = string(rune('a' + ev.Key() - tcell.KeyCtrlA))
		ctrl = true
	default:
		name, ok := tcell.KeyNames[ev.Key()]
		if !ok {
			return ""
		}
		base = strings.ToLower(strings.TrimPrefix(name, "Ctrl-"))
	}
	if base == "" || base == " " {
		return ""
	}

	var parts []string
	if ctrl {
		parts = append(parts, "ctrl")
	}
	if mods&tcell.ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if mods&tcell.ModShift != 0 {
		parts = append(parts, "shift")
	}
	if mods&tcell.ModMeta != 0 {
		parts = append(parts, "cmd")
	}
	parts = append(parts, base)

	return strings.Join(parts, "+")
}
