package fuzzy

import (
	"reflect"
	"testing"
)

func TestScore_Exact(t *testing.T) {
	m, ok := Score("git.pull", "git.pull")
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if m.Cost != 0 {
		t.Errorf("Cost = %v, want 0", m.Cost)
	}
}

func TestScore_ExactCaseInsensitive(t *testing.T) {
	m, ok := Score("Git.Pull", "git.pull")
	if !ok || m.Cost != 0 {
		t.Errorf("Score = (%+v, %v), want exact match", m, ok)
	}
}

func TestScore_Ordering(t *testing.T) {
	// exact < substring < subsequence
	exact, ok := Score("save", "save")
	if !ok {
		t.Fatal("exact failed")
	}
	sub, ok := Score("save", "files.saveAll")
	if !ok {
		t.Fatal("substring failed")
	}
	scattered, ok := Score("svl", "files.saveAll")
	if !ok {
		t.Fatal("subsequence failed")
	}

	if !(exact.Cost < sub.Cost) {
		t.Errorf("exact (%v) should cost less than substring (%v)", exact.Cost, sub.Cost)
	}
	if !(sub.Cost < scattered.Cost) {
		t.Errorf("substring (%v) should cost less than subsequence (%v)", sub.Cost, scattered.Cost)
	}
}

func TestScore_EarlierSubstringIsCheaper(t *testing.T) {
	early, _ := Score("git", "git.pull")
	late, _ := Score("pull", "workbench.git.pull")
	if !(early.Cost < late.Cost) {
		t.Errorf("early (%v) should cost less than late (%v)", early.Cost, late.Cost)
	}
}

func TestScore_NoMatch(t *testing.T) {
	tests := []struct {
		query string
		text  string
	}{
		{"xyz", "git.pull"},
		{"pullx", "git.pull"},
		{"", "git.pull"},
		{"git", ""},
		{"llup", "git.pull"}, // out of order
	}

	for _, tt := range tests {
		if _, ok := Score(tt.query, tt.text); ok {
			t.Errorf("Score(%q, %q) matched, want no match", tt.query, tt.text)
		}
	}
}

func TestScore_Positions(t *testing.T) {
	m, ok := Score("gp", "git.pull")
	if !ok {
		t.Fatal("no match")
	}
	if want := []int{0, 4}; !reflect.DeepEqual(m.Positions, want) {
		t.Errorf("Positions = %v, want %v", m.Positions, want)
	}
}

func TestScore_SubstringPositions(t *testing.T) {
	m, ok := Score("pull", "git.pull")
	if !ok {
		t.Fatal("no match")
	}
	if want := []int{4, 5, 6, 7}; !reflect.DeepEqual(m.Positions, want) {
		t.Errorf("Positions = %v, want %v", m.Positions, want)
	}
}

func TestScore_TighterSubsequenceIsCheaper(t *testing.T) {
	tight, _ := Score("fsa", "files.saveAll")
	loose, _ := Score("fll", "files.saveAll")
	if !(tight.Cost <= loose.Cost) {
		t.Errorf("tight (%v) should not cost more than loose (%v)", tight.Cost, loose.Cost)
	}
}
