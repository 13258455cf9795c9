// Package binding provides the parsed keybinding model.
//
// The package turns raw keybinding records (key sequence string +
// command + optional context clause) into immutable Parsed values that
// the prefix tree, live tracker, and search index consume. A parse
// replaces the whole collection; nothing patches a Parsed in place.
//
// # Input contract
//
// Records arrive either pre-extracted ([]Record via ParseRecords) or
// as keybindings JSON (ParseBytes/ParseFile). JSON content must be an
// array of objects at the top level — anything else fails with
// ErrNotSequence. A record missing key or command, or carrying the
// wrong types, is skipped, logged, and reported in the SkipReport
// list; it never aborts the batch.
//
// # Derived fields
//
// A raw command beginning with "-" parses to the unprefixed command
// with Disabled set. DeriveCategory maps the command's leading segment
// to a display label ("git.pull" -> "Git"); CommandLabel renders the
// trailing camelCase segment as words ("saveAll" -> "Save All").
//
// ExportJSON writes the parsed model back out as keybindings JSON,
// restoring disable markers so the output round trips.
package binding
