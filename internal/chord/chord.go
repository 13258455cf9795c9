package chord

import (
	"sort"
	"strings"
)

// Chord represents a single keypress: an unordered set of modifiers
// plus exactly one base key.
type Chord struct {
	// Modifiers are the recognized modifier tokens, lowercase,
	// deduplicated, in source order.
	Modifiers []string

	// BaseKey is the lowercase base key token. A chord always has
	// exactly one base key, even when the raw string consists of a
	// single modifier name ("cmd" alone is the base key "cmd").
	BaseKey string

	// Raw is the original chord substring as written in the source.
	Raw string
}

// modifierSet holds the recognized modifier tokens.
var modifierSet = map[string]bool{
	"cmd":    true,
	"ctrl":   true,
	"shift":  true,
	"alt":    true,
	"option": true,
	"meta":   true,
}

// IsModifier returns true if the token (case-insensitive) names a
// recognized modifier.
func IsModifier(token string) bool {
	return modifierSet[strings.ToLower(token)]
}

// Parse parses a raw chord string like "cmd+shift+k" into a Chord.
//
// Tokens are split on "+" and lowercased. A token counts as a modifier
// only when it names a known modifier AND is not the last token: the
// first non-modifier token (or the last token, when every preceding
// token is a modifier) becomes the base key. Unknown tokens are
// accepted as base-key material without error.
func Parse(raw string) Chord {
	c := Chord{Raw: raw}

	tokens := strings.Split(raw, "+")
	seen := make(map[string]bool, len(tokens))

	for i, tok := range tokens {
		tok = strings.ToLower(tok)
		if i < len(tokens)-1 && modifierSet[tok] {
			if !seen[tok] {
				seen[tok] = true
				c.Modifiers = append(c.Modifiers, tok)
			}
			continue
		}
		// First non-modifier token, or the final token.
		c.BaseKey = tok
		break
	}

	return c
}

// CanonicalKey returns the sole lookup key for a chord: modifiers
// sorted alphabetically, joined with "+", followed by the base key.
// "shift+cmd+k" and "cmd+shift+k" canonicalize identically.
func (c Chord) CanonicalKey() string {
	if len(c.Modifiers) == 0 {
		return c.BaseKey
	}

	mods := make([]string, len(c.Modifiers))
	copy(mods, c.Modifiers)
	sort.Strings(mods)

	return strings.Join(mods, "+") + "+" + c.BaseKey
}

// HasModifier returns true if the chord carries the given modifier.
func (c Chord) HasModifier(mod string) bool {
	mod = strings.ToLower(mod)
	for _, m := range c.Modifiers {
		if m == mod {
			return true
		}
	}
	return false
}

// Equals returns true if two chords have the same canonical key.
func (c Chord) Equals(other Chord) bool {
	return c.CanonicalKey() == other.CanonicalKey()
}

// CanonicalSequenceKey canonicalizes a raw chord string directly.
// Shorthand for Parse(raw).CanonicalKey().
func CanonicalSequenceKey(raw string) string {
	return Parse(raw).CanonicalKey()
}
