package bst

import (
	"cmp"
	"iter"
)

// node owns one entry and at most two children. Nodes never move or leave
// the tree once placed: there is no delete and no rotation.
type node[K cmp.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// Tree is an unbalanced binary search tree. The zero value is an empty tree
// ready for use.
type Tree[K cmp.Ordered, V any] struct {
	root   *node[K, V]
	size   int
	height int
}

// New creates an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Insert adds value under key. Keys compare with cmp.Compare: strictly
// smaller keys descend left and everything else descends right, equal keys
// included. A duplicate key therefore lands in the right subtree of its
// first occurrence rather than being merged or rejected.
func (t *Tree[K, V]) Insert(key K, value V) {
	n := &node[K, V]{key: key, value: value}
	if t.root == nil {
		t.root = n
		t.size = 1
		t.height = 1
		return
	}

	depth := 2
	cur := t.root
	for {
		if cmp.Compare(key, cur.key) < 0 {
			if cur.left == nil {
				cur.left = n
				break
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				break
			}
			cur = cur.right
		}
		depth++
	}

	t.size++
	if depth > t.height {
		t.height = depth
	}
}

// Search returns the value stored under key, or (zero, false) if the key is
// absent. When duplicates of key exist, the match nearest the root wins;
// given the right-biased insert rule that is the earliest-inserted entry.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	cur := t.root
	for cur != nil {
		switch c := cmp.Compare(key, cur.key); {
		case c == 0:
			return cur.value, true
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	var zero V
	return zero, false
}

// All returns an in-order iterator over the tree: ascending key order, with
// equal keys in insertion order. The sequence is lazy and restartable; each
// range starts over from the root and reflects the tree as iterated. The
// walk keeps an explicit stack, so a degenerate chain cannot exhaust the
// call stack.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]*node[K, V], 0, t.height)
		cur := t.root
		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.left
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur.key, cur.value) {
				return
			}
			cur = cur.right
		}
	}
}

// Keys returns an in-order iterator over keys.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an in-order iterator over values.
func (t *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of stored entries, duplicates included.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path, zero
// for an empty tree. Nodes never move after insertion, so the height is
// tracked as entries arrive and reads in O(1).
func (t *Tree[K, V]) Height() int {
	return t.height
}
