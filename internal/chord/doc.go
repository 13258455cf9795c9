// Package chord provides key chord parsing and normalization.
//
// A chord is a single keypress described as an unordered modifier set
// plus one base key. Chords are written as "+"-joined tokens
// ("cmd+shift+k"); sequences of chords are whitespace-separated
// ("cmd+k cmd+s").
//
// # Canonicalization
//
// CanonicalKey produces the only string used for tree and node lookup:
// modifiers sorted alphabetically, lowercase, joined with "+", then the
// base key. Permutations and case variants of the same chord therefore
// collide:
//
//	chord.Parse("SHIFT+cmd+K").CanonicalKey() == "cmd+shift+k"
//
// # Modifier grammar
//
// The recognized modifiers are cmd, ctrl, shift, alt, option and meta.
// A token only counts as a modifier when it is not the final token: a
// chord written as just "cmd" has the base key "cmd", because every
// chord has exactly one base key. Unknown tokens are accepted as base
// keys without error; the parser enforces no key vocabulary.
//
// # Display
//
// Display renders a chord under one of two profiles: ProfileSymbol
// ("⌘⇧K") and ProfileText ("Cmd+Shift+K"). Which profile to use is an
// external configuration input.
package chord
