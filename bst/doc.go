// Package bst implements a generic unbalanced binary search tree that keeps
// key-value entries in lexicographic key order. The tree supports insertion,
// exact-match search, and lazy in-order iteration; there is no delete
// operation and no rebalancing.
//
// Duplicate keys are allowed and handled by a deliberate tie-break: an
// inserted key equal to an existing key always routes into the right
// subtree. Two things follow from that rule:
//   - in-order iteration yields equal keys in their insertion order, and
//   - Search returns the match nearest the root, which is the
//     earliest-inserted entry for that key.
//
// Key properties:
//   - Generic over any ordered key type and any value type
//   - O(h) insertion and search, where h is the tree height; the tree is
//     unbalanced, so sorted insertion degrades h to the entry count
//   - O(1) Len and Height observers
//   - Iteration walks with an explicit stack, so even a fully degenerate
//     chain is safe to traverse
//
// Basic usage:
//
//	t := bst.New[string, int]()
//	t.Insert("sword", 1)
//	t.Insert("axe", 2)
//	t.Insert("sword", 3) // kept, routed right of the first "sword"
//
//	if v, ok := t.Search("sword"); ok {
//	    fmt.Println(v) // 1, the earliest-inserted entry wins
//	}
//
//	for k, v := range t.All() {
//	    fmt.Println(k, v) // axe 2, sword 1, sword 3
//	}
//
// A Tree is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every operation, for example with one mutex per
// tree; no operation blocks, so each critical section is short.
package bst
