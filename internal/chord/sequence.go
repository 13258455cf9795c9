package chord

import "strings"

// ParseSequence parses a whitespace-separated key sequence string like
// "cmd+k cmd+s" into an ordered chord list. The input is trimmed and
// split on runs of whitespace; an empty trimmed string yields a
// zero-length sequence.
func ParseSequence(seq string) []Chord {
	fields := strings.Fields(seq)
	if len(fields) == 0 {
		return nil
	}

	chords := make([]Chord, len(fields))
	for i, f := range fields {
		chords[i] = Parse(f)
	}
	return chords
}

// CanonicalSequence returns the canonical key of every chord in a
// sequence, in order.
func CanonicalSequence(chords []Chord) []string {
	keys := make([]string, len(chords))
	for i, c := range chords {
		keys[i] = c.CanonicalKey()
	}
	return keys
}
