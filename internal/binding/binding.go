package binding

import (
	"strings"

	"github.com/dshills/chordscope/internal/chord"
)

// Record is a raw keybinding record as delivered by the file-sync
// collaborator. Key and Command are required; When is optional.
type Record struct {
	// Key is the raw key sequence string, e.g. "cmd+k cmd+s".
	Key string

	// Command is the command identifier. A leading "-" marks the
	// binding as disabled.
	Command string

	// When is an optional context clause, e.g. "editorTextFocus".
	When string

	// SourceEditor identifies the editor the record came from.
	SourceEditor string
}

// Parsed is an immutable parsed keybinding. It is created once per
// valid record and replaced wholesale on the next parse; callers never
// patch individual fields.
type Parsed struct {
	// KeySequence is the ordered list of raw chord strings.
	KeySequence []string

	// Chords is the derived ordered chord list.
	Chords []chord.Chord

	// Command is the command identifier with any disable marker
	// stripped.
	Command string

	// Disabled is true when the raw command carried a leading "-".
	Disabled bool

	// When is the optional context clause.
	When string

	// SourceEditor identifies the source editor.
	SourceEditor string

	// Category is the derived category label, empty when derivation
	// is turned off.
	Category string

	// IsMultiChord is true when the sequence has more than one chord.
	IsMultiChord bool
}

// Options configures record parsing.
type Options struct {
	// DeriveCategories derives a category label from each command
	// identifier. Default: on.
	DeriveCategories bool
}

// DefaultOptions returns the default parse options.
func DefaultOptions() Options {
	return Options{DeriveCategories: true}
}

// FromRecord parses a single raw record into a Parsed binding.
// The record is assumed to have passed field validation.
func FromRecord(rec Record, opts Options) *Parsed {
	command := rec.Command
	disabled := false
	if strings.HasPrefix(command, "-") {
		command = command[1:]
		disabled = true
	}

	chords := chord.ParseSequence(rec.Key)
	seq := make([]string, len(chords))
	for i, c := range chords {
		seq[i] = c.Raw
	}

	p := &Parsed{
		KeySequence:  seq,
		Chords:       chords,
		Command:      command,
		Disabled:     disabled,
		When:         rec.When,
		SourceEditor: rec.SourceEditor,
		IsMultiChord: len(chords) > 1,
	}
	if opts.DeriveCategories {
		p.Category = DeriveCategory(command)
	}
	return p
}

// SequenceString returns the key sequence joined with single spaces.
func (p *Parsed) SequenceString() string {
	return strings.Join(p.KeySequence, " ")
}

// CanonicalSequence returns the canonical key of every chord in order.
func (p *Parsed) CanonicalSequence() []string {
	return chord.CanonicalSequence(p.Chords)
}

// DisplaySequence renders the binding's sequence under a profile.
func (p *Parsed) DisplaySequence(profile chord.Profile) string {
	return chord.DisplaySequence(p.Chords, profile)
}
