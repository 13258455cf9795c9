// Package search ranks parsed bindings with a weighted multi-field
// fuzzy index.
//
// Four field groups are scored with fixed relative weights: the key
// sequence string (highest), the command identifier and its derived
// label (equal, second), the category (medium), and the when clause
// (lowest). Queries shorter than two characters are ignored. Each
// result is annotated with the field groups that matched so a
// presentation layer can highlight them.
//
// Scores follow the core convention: 0 is an exact match and larger is
// weaker. A built index never fails a search; the worst case is zero
// results.
//
// The category and chord-count filters are pure views over the most
// recently indexed list and never touch the fuzzy engine.
package search
