package binding

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/tidwall/gjson"
)

// Parse errors
var (
	// ErrNotSequence reports top-level content that is not a record
	// sequence. This is the only fatal, whole-batch parse failure.
	ErrNotSequence = errors.New("keybindings content is not a sequence of records")
)

// SkipReport describes a record excluded during parsing. Skips are
// recoverable: they are logged and reported, never raised.
type SkipReport struct {
	// Index is the record's position in the source sequence.
	Index int

	// Reason describes why the record was excluded.
	Reason string
}

// ParseRecords parses an ordered batch of raw records. Records missing
// a key or command are skipped and reported; the batch never aborts.
func ParseRecords(records []Record, opts Options) ([]*Parsed, []SkipReport) {
	parsed := make([]*Parsed, 0, len(records))
	var skipped []SkipReport

	for i, rec := range records {
		if reason := validateRecord(rec); reason != "" {
			skipped = append(skipped, SkipReport{Index: i, Reason: reason})
			slog.Warn("skipping keybinding record",
				"index", i, "reason", reason, "source", rec.SourceEditor)
			continue
		}
		parsed = append(parsed, FromRecord(rec, opts))
	}

	return parsed, skipped
}

func validateRecord(rec Record) string {
	if rec.Key == "" {
		return "missing key"
	}
	if rec.Command == "" {
		return "missing command"
	}
	return ""
}

// ParseBytes parses keybindings JSON content. The top level must be an
// array of record objects; anything else fails with ErrNotSequence.
// Minor syntactic noise such as trailing separators is tolerated.
// Per-record problems (missing or mistyped key/command) skip the
// record and continue.
func ParseBytes(data []byte, opts Options) ([]*Parsed, []SkipReport, error) {
	result := gjson.ParseBytes(data)
	if !result.IsArray() {
		return nil, nil, ErrNotSequence
	}

	parsed := make([]*Parsed, 0)
	var skipped []SkipReport

	index := 0
	result.ForEach(func(_, raw gjson.Result) bool {
		i := index
		index++

		rec, reason := recordFromJSON(raw)
		if reason != "" {
			skipped = append(skipped, SkipReport{Index: i, Reason: reason})
			slog.Warn("skipping keybinding record", "index", i, "reason", reason)
			return true
		}

		parsed = append(parsed, FromRecord(rec, opts))
		return true
	})

	return parsed, skipped, nil
}

// ParseFile reads and parses a keybindings file.
func ParseFile(path string, opts Options) ([]*Parsed, []SkipReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading keybindings file: %w", err)
	}

	parsed, skipped, err := ParseBytes(data, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return parsed, skipped, nil
}

// recordFromJSON extracts a Record from a JSON element, returning a
// non-empty skip reason when the element is unusable.
func recordFromJSON(raw gjson.Result) (Record, string) {
	if !raw.IsObject() {
		return Record{}, "record is not an object"
	}

	key := raw.Get("key")
	switch {
	case !key.Exists():
		return Record{}, "missing key"
	case key.Type != gjson.String:
		return Record{}, "key is not a string"
	}

	command := raw.Get("command")
	switch {
	case !command.Exists():
		return Record{}, "missing command"
	case command.Type != gjson.String:
		return Record{}, "command is not a string"
	}

	rec := Record{
		Key:     key.String(),
		Command: command.String(),
	}

	if when := raw.Get("when"); when.Exists() {
		if when.Type != gjson.String {
			return Record{}, "when is not a string"
		}
		rec.When = when.String()
	}
	if src := raw.Get("sourceEditor"); src.Exists() && src.Type == gjson.String {
		rec.SourceEditor = src.String()
	}

	return rec, ""
}
