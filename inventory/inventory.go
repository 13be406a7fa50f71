// Package inventory maintains in-memory item catalogs. An Index keeps items
// ordered by name for exact lookups and in-order scans, and by rarity tier
// for range scans, with a bloom filter short-circuiting lookups of names
// that were never added. Unlike the raw containers underneath it, an Index
// serializes access internally and may be shared across goroutines.
//
// Iterators hold the Index read lock until their range ends, so nesting one
// range inside another over the same Index can deadlock once a writer is
// waiting; collect the outer sequence into a slice first when iterating
// twice.
package inventory

import (
	"iter"
	"sync"

	"github.com/google/btree"
	"github.com/willf/bloom"

	"github.com/perchik/armory/bst"
	"github.com/perchik/armory/item"
)

// tierEntry keys the secondary index: tier first, then name, then arrival
// stamp so duplicate names stay distinct entries.
type tierEntry struct {
	it  item.Item
	seq uint64
}

func tierLess(a, b tierEntry) bool {
	if a.it.Rarity != b.it.Rarity {
		return a.it.Rarity < b.it.Rarity
	}
	if a.it.Name != b.it.Name {
		return a.it.Name < b.it.Name
	}
	return a.seq < b.seq
}

// Index is an item catalog ordered by name and, secondarily, by rarity
// tier. Item names need not be unique; duplicates are kept and surface in
// insertion order among themselves. There is no way to remove an item,
// which is what makes the negative-lookup filter sound.
type Index struct {
	mu     sync.RWMutex
	byName *bst.Tree[string, item.Item]
	byTier *btree.BTreeG[tierEntry]
	filter *bloom.BloomFilter
	seq    uint64
}

// New creates an empty Index.
func New(opts ...Option) *Index {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Index{
		byName: bst.New[string, item.Item](),
		byTier: btree.NewG(2, tierLess),
		filter: bloom.NewWithEstimates(o.expectedItems, o.falsePositiveRate),
	}
}

// Add stores it in the catalog. An item whose name is already present is
// kept as an additional entry, not merged.
func (idx *Index) Add(it item.Item) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.byName.Insert(it.Name, it)
	idx.byTier.ReplaceOrInsert(tierEntry{it: it, seq: idx.seq})
	idx.seq++
	idx.filter.AddString(it.Name)
}

// AddAll stores every item in order.
func (idx *Index) AddAll(items []item.Item) {
	for _, it := range items {
		idx.Add(it)
	}
}

// Find returns the item stored under name, the earliest-added one when
// duplicates exist. The second return is false if no such item was ever
// added. Names that never entered the catalog are usually rejected by the
// bloom filter without touching the tree.
func (idx *Index) Find(name string) (item.Item, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if !idx.filter.TestString(name) {
		return item.Item{}, false
	}
	return idx.byName.Search(name)
}

// Contains reports whether an item named name was added.
func (idx *Index) Contains(name string) bool {
	_, ok := idx.Find(name)
	return ok
}

// All returns items in ascending name order, duplicates in insertion order.
// The Index read lock is held for the duration of the range.
func (idx *Index) All() iter.Seq[item.Item] {
	return func(yield func(item.Item) bool) {
		idx.mu.RLock()
		defer idx.mu.RUnlock()

		for _, it := range idx.byName.All() {
			if !yield(it) {
				return
			}
		}
	}
}

// Names returns item names in ascending order, duplicates included.
func (idx *Index) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		idx.mu.RLock()
		defer idx.mu.RUnlock()

		for name := range idx.byName.Keys() {
			if !yield(name) {
				return
			}
		}
	}
}

// ByRarity returns the items of a single tier, ordered by name.
func (idx *Index) ByRarity(r item.Rarity) iter.Seq[item.Item] {
	return idx.RarityRange(r, r)
}

// RarityRange returns the items whose tier lies in [lo, hi], ordered by
// tier and then by name.
func (idx *Index) RarityRange(lo, hi item.Rarity) iter.Seq[item.Item] {
	return func(yield func(item.Item) bool) {
		idx.mu.RLock()
		defer idx.mu.RUnlock()

		from := tierEntry{it: item.Item{Rarity: lo}}
		to := tierEntry{it: item.Item{Rarity: hi + 1}}
		idx.byTier.AscendRange(from, to, func(e tierEntry) bool {
			return yield(e.it)
		})
	}
}

// Len returns the number of stored items, duplicates included.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.byName.Len()
}
