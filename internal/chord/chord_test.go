package chord

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantMods []string
		wantBase string
	}{
		{
			name:     "single key",
			raw:      "k",
			wantMods: nil,
			wantBase: "k",
		},
		{
			name:     "one modifier",
			raw:      "cmd+k",
			wantMods: []string{"cmd"},
			wantBase: "k",
		},
		{
			name:     "two modifiers",
			raw:      "cmd+shift+k",
			wantMods: []string{"cmd", "shift"},
			wantBase: "k",
		},
		{
			name:     "uppercase input",
			raw:      "CMD+K",
			wantMods: []string{"cmd"},
			wantBase: "k",
		},
		{
			name:     "bare modifier name is a base key",
			raw:      "cmd",
			wantMods: nil,
			wantBase: "cmd",
		},
		{
			name:     "trailing modifier name is the base key",
			raw:      "ctrl+shift",
			wantMods: []string{"ctrl"},
			wantBase: "shift",
		},
		{
			name:     "unknown token accepted as base key",
			raw:      "ctrl+pause",
			wantMods: []string{"ctrl"},
			wantBase: "pause",
		},
		{
			name:     "duplicate modifiers collapse",
			raw:      "cmd+cmd+k",
			wantMods: []string{"cmd"},
			wantBase: "k",
		},
		{
			name:     "empty string",
			raw:      "",
			wantMods: nil,
			wantBase: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if !reflect.DeepEqual(got.Modifiers, tt.wantMods) {
				t.Errorf("Modifiers = %v, want %v", got.Modifiers, tt.wantMods)
			}
			if got.BaseKey != tt.wantBase {
				t.Errorf("BaseKey = %q, want %q", got.BaseKey, tt.wantBase)
			}
			if got.Raw != tt.raw {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.raw)
			}
		})
	}
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no modifiers", "k", "k"},
		{"sorted modifiers", "shift+cmd+k", "cmd+shift+k"},
		{"already sorted", "cmd+shift+k", "cmd+shift+k"},
		{"three modifiers", "shift+ctrl+alt+x", "alt+ctrl+shift+x"},
		{"bare modifier", "cmd", "cmd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.raw).CanonicalKey(); got != tt.want {
				t.Errorf("CanonicalKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanonicalKey_PermutationInvariant(t *testing.T) {
	a := Parse("shift+cmd+k").CanonicalKey()
	b := Parse("cmd+shift+k").CanonicalKey()
	if a != b {
		t.Errorf("permutations differ: %q vs %q", a, b)
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	a := Parse("CMD+K")
	b := Parse("cmd+k")
	if !reflect.DeepEqual(a.Modifiers, b.Modifiers) || a.BaseKey != b.BaseKey {
		t.Errorf("Parse(\"CMD+K\") = %+v, Parse(\"cmd+k\") = %+v", a, b)
	}
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		name     string
		seq      string
		wantLen  int
		wantKeys []string
	}{
		{"empty", "", 0, nil},
		{"whitespace only", "   ", 0, nil},
		{"single chord", "cmd+k", 1, []string{"cmd+k"}},
		{"two chords", "cmd+k cmd+s", 2, []string{"cmd+k", "cmd+s"}},
		{"extra whitespace", "  cmd+k   cmd+s  ", 2, []string{"cmd+k", "cmd+s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSequence(tt.seq)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantKeys != nil {
				keys := CanonicalSequence(got)
				if !reflect.DeepEqual(keys, tt.wantKeys) {
					t.Errorf("canonical keys = %v, want %v", keys, tt.wantKeys)
				}
			}
		})
	}
}

func TestHasModifier(t *testing.T) {
	c := Parse("cmd+shift+k")
	if !c.HasModifier("cmd") {
		t.Error("HasModifier(cmd) = false, want true")
	}
	if !c.HasModifier("SHIFT") {
		t.Error("HasModifier(SHIFT) = false, want true")
	}
	if c.HasModifier("ctrl") {
		t.Error("HasModifier(ctrl) = true, want false")
	}
}

func TestIsModifier(t *testing.T) {
	for _, mod := range []string{"cmd", "ctrl", "shift", "alt", "option", "meta", "CMD"} {
		if !IsModifier(mod) {
			t.Errorf("IsModifier(%q) = false, want true", mod)
		}
	}
	for _, tok := range []string{"k", "enter", "super", ""} {
		if IsModifier(tok) {
			t.Errorf("IsModifier(%q) = true, want false", tok)
		}
	}
}
