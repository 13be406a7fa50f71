package inventory

import (
	"iter"

	"github.com/perchik/armory/item"
)

// Merge combines already-sorted item sequences, such as Index.All results
// from several catalogs, into one sequence in ascending name order. Each
// input must itself be sorted by name; equal names surface in argument
// order. The inputs are consumed lazily, one head at a time.
//
// Internally the merge runs a tournament. Bracket slots remember the loser
// of their game while winners play upward, so replacing the overall winner
// replays only the games on its path: O(log k) comparisons per yielded item
// for k inputs.
func Merge(seqs ...iter.Seq[item.Item]) iter.Seq[item.Item] {
	return func(yield func(item.Item) bool) {
		if len(seqs) == 0 {
			return
		}

		m := newMerger(seqs)
		defer m.close()

		for {
			it, ok := m.next()
			if !ok {
				return
			}
			if !yield(it) {
				return
			}
		}
	}
}

// contender is a value in play: the head of some input, tagged with the
// leaf position it came from. An exhausted input holds item.Max and leaf
// -1 so it loses every remaining game.
type contender struct {
	leaf int
	it   item.Item
}

// beats reports whether c wins the game against other: ascending name
// order, lower leaf position on ties so equal names keep argument order.
func (c contender) beats(other contender) bool {
	if c.it.Name != other.it.Name {
		return c.it.Name < other.it.Name
	}
	return c.leaf < other.leaf
}

// merger is a loser tree over k inputs. games[k..2k-1] are the leaves, one
// per input, holding that input's current head. games[1..k-1] form the
// bracket and hold the losers of their games; games[0] holds the overall
// winner.
type merger struct {
	k     int
	games []contender
	pulls []func() (item.Item, bool)
	stops []func()
}

func newMerger(seqs []iter.Seq[item.Item]) *merger {
	k := len(seqs)
	m := &merger{
		k:     k,
		games: make([]contender, k*2),
		pulls: make([]func() (item.Item, bool), k),
		stops: make([]func(), k),
	}

	for i, seq := range seqs {
		next, stop := iter.Pull(seq)
		m.pulls[i] = next
		m.stops[i] = stop
		m.advance(k + i)
	}

	winner := m.playGame(1)
	m.games[0] = m.games[winner]

	return m
}

// next removes and returns the smallest head across all inputs.
func (m *merger) next() (item.Item, bool) {
	w := m.games[0]
	if w.leaf == -1 {
		return item.Item{}, false
	}

	m.advance(w.leaf)
	m.replay(w.leaf)

	return w.it, true
}

// advance pulls the next head for the leaf at pos, or marks it exhausted.
func (m *merger) advance(pos int) {
	g := &m.games[pos]
	if it, ok := m.pulls[pos-m.k](); ok {
		g.it = it
		g.leaf = pos
		return
	}
	g.it = item.Max
	g.leaf = -1
}

// playGame finds the winner of the subtree rooted at pos, recording each
// game's loser on the way. pos must be >= 1 and < len(m.games).
func (m *merger) playGame(pos int) int {
	if pos >= m.k {
		return pos
	}

	left := m.playGame(2 * pos)
	right := m.playGame(2*pos + 1)

	winner, loser := left, right
	if m.games[right].beats(m.games[left]) {
		winner, loser = right, left
	}
	m.games[pos] = m.games[loser]

	return winner
}

// replay re-runs the games from the changed leaf at pos up to the root,
// swapping the travelling winner with a stored loser wherever the loser
// wins, and records the final winner at games[0].
func (m *merger) replay(pos int) {
	cur := m.games[pos]
	for n := pos / 2; n != 0; n /= 2 {
		if m.games[n].beats(cur) {
			m.games[n], cur = cur, m.games[n]
		}
	}
	m.games[0] = cur
}

func (m *merger) close() {
	for _, stop := range m.stops {
		stop()
	}
}
