package fuzzy

import (
	"strings"
	"unicode"
)

// Match holds the outcome of matching a query against one text.
type Match struct {
	// Cost is the match cost: 0 for an exact match, approaching 1 as
	// the match weakens.
	Cost float64

	// Positions are the rune indices of matched characters, for
	// downstream highlighting.
	Positions []int
}

// Score matches query against text case-insensitively and returns the
// match cost. ok is false when the query is not a subsequence of the
// text. An exact (case-folded) match costs 0; a substring match costs
// less than any scattered subsequence match.
func Score(query, text string) (Match, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || text == "" {
		return Match{}, false
	}

	lower := strings.ToLower(text)
	if lower == query {
		return Match{Cost: 0, Positions: seq(len([]rune(query)))}, true
	}

	qr := []rune(query)
	tr := []rune(lower)
	orig := []rune(text)

	if idx := runeIndex(tr, qr); idx >= 0 {
		return Match{Cost: substringCost(idx, len(qr), len(tr)), Positions: seqFrom(idx, len(qr))}, true
	}

	positions := subsequence(qr, tr)
	if positions == nil {
		return Match{}, false
	}
	return Match{Cost: subsequenceCost(positions, orig, len(qr)), Positions: positions}, true
}

// substringCost scores a contiguous match: earlier and longer relative
// to the text is cheaper.
func substringCost(idx, qlen, tlen int) float64 {
	cost := 0.05
	cost += 0.01 * float64(idx)
	cost += 0.15 * (1 - float64(qlen)/float64(tlen))
	return clamp(cost, 0.01, 0.3)
}

// subsequenceCost scores a scattered match by gap count, leading
// offset, and word-boundary hits, mirroring the weighting the palette
// search uses.
func subsequenceCost(positions []int, orig []rune, qlen int) float64 {
	cost := 0.4

	gaps := positions[len(positions)-1] - positions[0] - qlen + 1
	cost += 0.015 * float64(gaps)
	cost += 0.005 * float64(positions[0])

	for _, p := range positions {
		if isWordBoundary(orig, p) {
			cost -= 0.02
		}
	}

	return clamp(cost, 0.31, 0.95)
}

// subsequence finds query runes in text left to right. Returns nil
// when not every query rune is present in order.
func subsequence(query, text []rune) []int {
	positions := make([]int, 0, len(query))
	qi := 0
	for i := 0; i < len(text) && qi < len(query); i++ {
		if text[i] == query[qi] {
			positions = append(positions, i)
			qi++
		}
	}
	if qi != len(query) {
		return nil
	}
	return positions
}

// isWordBoundary reports whether the rune at idx starts a word:
// position 0, after space or punctuation, or a camelCase transition.
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}
	prev := runes[idx-1]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) || prev == '+' {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(runes[idx])
}

func runeIndex(text, sub []rune) int {
	if len(sub) == 0 || len(sub) > len(text) {
		return -1
	}
outer:
	for i := 0; i+len(sub) <= len(text); i++ {
		for j := range sub {
			if text[i+j] != sub[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}

func seq(n int) []int {
	return seqFrom(0, n)
}

func seqFrom(start, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
