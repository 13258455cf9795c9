package prefixtree

import (
	"sort"

	"github.com/dshills/chordscope/internal/binding"
	"github.com/dshills/chordscope/internal/chord"
)

// Node is one chord step in the prefix tree.
type Node struct {
	// Chord is the display form: the first raw chord string ever seen
	// for this node's canonical key.
	Chord string

	// CanonicalKey is the modifier-sorted lookup key for this step.
	CanonicalKey string

	// Children maps child canonical keys to child nodes.
	Children map[string]*Node

	// Bindings are the bindings whose full sequence terminates exactly
	// at this node. More than one entry with differing commands is the
	// conflict signal.
	Bindings []*binding.Parsed

	// FullPath is the ordered raw chord path from the root.
	FullPath []string
}

// Tree maps canonical first-chord keys to root nodes. A Tree is built
// fresh on every Build call and never mutated afterward.
type Tree map[string]*Node

// Stats summarizes a tree in one traversal.
type Stats struct {
	TotalNodes       int
	MaxDepth         int
	SingleChordCount int
	MultiChordCount  int
}

// Build constructs a prefix tree from parsed bindings. Bindings with
// an empty key sequence are skipped. Two bindings whose canonical
// chord sequences coincide accumulate at the same node.
func Build(bindings []*binding.Parsed) Tree {
	tree := make(Tree)

	for _, b := range bindings {
		if len(b.Chords) == 0 {
			// Nothing to index; empty sequences are a documented skip.
			continue
		}

		first := b.Chords[0]
		rootKey := first.CanonicalKey()
		root, ok := tree[rootKey]
		if !ok {
			root = &Node{
				Chord:        first.Raw,
				CanonicalKey: rootKey,
				Children:     make(map[string]*Node),
				FullPath:     []string{first.Raw},
			}
			tree[rootKey] = root
		}

		if len(b.Chords) == 1 {
			root.Bindings = append(root.Bindings, b)
			continue
		}

		node := root
		for _, c := range b.Chords[1:] {
			key := c.CanonicalKey()
			child, ok := node.Children[key]
			if !ok {
				// Extend the parent's first-seen path so every
				// segment keeps the spelling its node displays.
				path := make([]string, len(node.FullPath)+1)
				copy(path, node.FullPath)
				path[len(path)-1] = c.Raw

				child = &Node{
					Chord:        c.Raw,
					CanonicalKey: key,
					Children:     make(map[string]*Node),
					FullPath:     path,
				}
				node.Children[key] = child
			}
			node = child
		}
		node.Bindings = append(node.Bindings, b)
	}

	return tree
}

// Find descends the tree along the canonicalized query sequence. It
// returns (nil, false) on the first missing edge; there is no partial
// result.
func Find(tree Tree, sequence []string) (*Node, bool) {
	if len(sequence) == 0 {
		return nil, false
	}

	node, ok := tree[chord.Parse(sequence[0]).CanonicalKey()]
	if !ok {
		return nil, false
	}

	for _, raw := range sequence[1:] {
		child, ok := node.Children[chord.Parse(raw).CanonicalKey()]
		if !ok {
			return nil, false
		}
		node = child
	}

	return node, true
}

// Leaves collects every node carrying bindings, in pre-order. A node
// with both children and bindings still counts.
func Leaves(tree Tree) []*Node {
	var leaves []*Node
	walk(tree, func(n *Node, depth int) {
		if len(n.Bindings) > 0 {
			leaves = append(leaves, n)
		}
	})
	return leaves
}

// AtDepth returns all nodes at the given edge distance from their
// roots. Depth 0 is the root set.
func AtDepth(tree Tree, depth int) []*Node {
	if depth < 0 {
		return nil
	}

	var nodes []*Node
	walk(tree, func(n *Node, d int) {
		if d == depth {
			nodes = append(nodes, n)
		}
	})
	return nodes
}

// ComputeStats summarizes the tree in a single pre-order traversal.
// SingleChordCount counts bindings attached at depth 0;
// MultiChordCount counts bindings attached deeper.
func ComputeStats(tree Tree) Stats {
	var s Stats
	walk(tree, func(n *Node, depth int) {
		s.TotalNodes++
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		if depth == 0 {
			s.SingleChordCount += len(n.Bindings)
		} else {
			s.MultiChordCount += len(n.Bindings)
		}
	})
	return s
}

// Flatten reconstructs a binding list from the tree by concatenating
// every node's bindings in pre-order.
func Flatten(tree Tree) []*binding.Parsed {
	var out []*binding.Parsed
	walk(tree, func(n *Node, depth int) {
		out = append(out, n.Bindings...)
	})
	return out
}

// RootKeys returns the sorted canonical keys of the root set.
func RootKeys(tree Tree) []string {
	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ChildKeys returns a node's sorted child canonical keys.
func ChildKeys(n *Node) []string {
	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// walk runs fn over every node in pre-order. Sibling order follows
// sorted canonical keys so traversals are deterministic.
func walk(tree Tree, fn func(n *Node, depth int)) {
	for _, key := range RootKeys(tree) {
		walkNode(tree[key], 0, fn)
	}
}

func walkNode(n *Node, depth int, fn func(n *Node, depth int)) {
	fn(n, depth)
	for _, key := range ChildKeys(n) {
		walkNode(n.Children[key], depth+1, fn)
	}
}
