package search

import (
	"sort"
	"strings"

	"github.com/dshills/chordscope/internal/binding"
	"github.com/dshills/chordscope/internal/fuzzy"
)

// MinQueryLength is the minimum query length; shorter queries are
// ignored and return no results.
const MinQueryLength = 2

// tolerance is the fixed fuzziness ceiling: field matches costing more
// are discarded.
const tolerance = 0.6

// Field weights. Higher weight means a match on that field ranks
// better; the key sequence dominates, command id and label tie, then
// category, then the when clause.
const (
	weightKey      = 1.0
	weightCommand  = 0.9
	weightLabel    = 0.9
	weightCategory = 0.6
	weightWhen     = 0.3
)

// FieldMatch flags which field groups contributed to a result, for
// downstream highlighting.
type FieldMatch struct {
	Key      bool
	Command  bool
	Category bool
}

// Result is one ranked search hit. Lower score is better; 0 denotes an
// exact match on the winning field.
type Result struct {
	Binding *binding.Parsed
	Score   float64
	Fields  FieldMatch

	// weight is the winning field's weight, kept for ranking: equal
	// scores (an exact key match and an exact when match both cost 0)
	// order by field importance.
	weight float64
}

// entry precomputes the searchable text of one binding.
type entry struct {
	binding  *binding.Parsed
	key      string
	command  string
	label    string
	category string
	when     string
}

// Index is a weighted multi-field fuzzy index over parsed bindings.
// Build replaces the whole index; Search and the filter views read the
// most recently indexed list.
type Index struct {
	bindings []*binding.Parsed
	entries  []entry
}

// NewIndex returns an empty index. Searching it yields no results
// until Build is called.
func NewIndex() *Index {
	return &Index{}
}

// Build indexes the binding list, replacing any previous contents.
func (ix *Index) Build(bindings []*binding.Parsed) {
	ix.bindings = bindings
	ix.entries = make([]entry, len(bindings))
	for i, b := range bindings {
		ix.entries[i] = entry{
			binding:  b,
			key:      b.SequenceString(),
			command:  b.Command,
			label:    binding.CommandLabel(b.Command),
			category: b.Category,
			when:     b.When,
		}
	}
}

// Search returns up to limit ranked results. An empty or too-short
// query, or an unbuilt index, returns nil. A limit of zero or less
// means no limit.
func (ix *Index) Search(query string, limit int) []Result {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinQueryLength || len(ix.entries) == 0 {
		return nil
	}

	results := make([]Result, 0, len(ix.entries))
	for i := range ix.entries {
		if r, ok := ix.entries[i].match(query); ok {
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		if results[i].weight != results[j].weight {
			return results[i].weight > results[j].weight
		}
		return results[i].Binding.Command < results[j].Binding.Command
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// match scores one entry across all fields, keeping the best weighted
// score and flagging every field group within tolerance.
func (e *entry) match(query string) (Result, bool) {
	r := Result{Binding: e.binding}
	matched := false
	best := 0.0

	score := func(text string, weight float64, flag *bool) {
		if text == "" {
			return
		}
		m, ok := fuzzy.Score(query, text)
		if !ok || m.Cost > tolerance {
			return
		}
		if flag != nil {
			*flag = true
		}
		weighted := m.Cost / weight
		if !matched || weighted < best || (weighted == best && weight > r.weight) {
			best = weighted
			r.weight = weight
		}
		matched = true
	}

	score(e.key, weightKey, &r.Fields.Key)
	score(e.command, weightCommand, &r.Fields.Command)
	score(e.label, weightLabel, &r.Fields.Command)
	score(e.category, weightCategory, &r.Fields.Category)
	score(e.when, weightWhen, nil)

	if !matched {
		return Result{}, false
	}
	r.Score = best
	return r, true
}

// FilterByCategory returns the indexed bindings in the given category
// (case-insensitive). Does not invoke the fuzzy engine.
func (ix *Index) FilterByCategory(category string) []*binding.Parsed {
	out := make([]*binding.Parsed, 0)
	for _, b := range ix.bindings {
		if strings.EqualFold(b.Category, category) {
			out = append(out, b)
		}
	}
	return out
}

// FilterMultiChord returns the indexed bindings with more than one
// chord.
func (ix *Index) FilterMultiChord() []*binding.Parsed {
	out := make([]*binding.Parsed, 0)
	for _, b := range ix.bindings {
		if b.IsMultiChord {
			out = append(out, b)
		}
	}
	return out
}

// FilterSingleChord returns the indexed bindings with exactly one
// chord.
func (ix *Index) FilterSingleChord() []*binding.Parsed {
	out := make([]*binding.Parsed, 0)
	for _, b := range ix.bindings {
		if !b.IsMultiChord && len(b.Chords) == 1 {
			out = append(out, b)
		}
	}
	return out
}

// Categories returns the sorted, deduplicated category labels of the
// indexed bindings. Empty categories are reported as "Other".
func (ix *Index) Categories() []string {
	seen := make(map[string]bool)
	for _, b := range ix.bindings {
		seen[categoryOrOther(b)] = true
	}

	cats := make([]string, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// CategoryCounts returns the number of indexed bindings per category.
func (ix *Index) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, b := range ix.bindings {
		counts[categoryOrOther(b)]++
	}
	return counts
}

func categoryOrOther(b *binding.Parsed) string {
	if b.Category == "" {
		return "Other"
	}
	return b.Category
}
