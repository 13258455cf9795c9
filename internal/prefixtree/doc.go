// Package prefixtree indexes multi-step chord sequences.
//
// The tree maps each binding's canonical chord sequence to a unique
// node; bindings whose sequences canonicalize identically accumulate
// on the same node, which is how conflicts surface (two or more
// bindings with differing commands on one node).
//
// Build is a pure function over its input: every call returns a fresh
// tree, and a rebuild is a full reconstruction. Expected input sizes
// are hundreds of bindings, so no incremental patching is attempted.
//
// Lookup is by canonical chord key only. A query that leaves the tree
// at any step returns not-found; there is no best-effort partial
// descent.
package prefixtree
