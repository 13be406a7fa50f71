// Package quest provides a prioritized quest board. Quests are posted with
// a title and an urgency, and handed out most urgent first; quests of equal
// urgency come back in posting order. A board can optionally refuse reposts
// of a recently seen title for a configurable window.
//
// Example usage:
//
//	board := quest.NewBoard()
//
//	board.Post("Defend Village", 2)
//	board.Post("Attack Orcs", 1)
//	board.Post("Guard Gate", 2)
//
//	for q, ok := board.Next(); ok; q, ok = board.Next() {
//		fmt.Println(q.Title)
//	}
//
// A Board is safe for concurrent use.
package quest

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/perchik/armory/priority"
)

var (
	// ErrEmptyTitle is returned by Post when the title is empty.
	ErrEmptyTitle = errors.New("quest: empty title")

	// ErrDuplicatePost is returned by Post when the title was already
	// posted within the board's dedup window.
	ErrDuplicatePost = errors.New("quest: duplicate post")
)

// Quest is a posted quest. The ID is assigned by the board.
type Quest struct {
	ID       uuid.UUID
	Title    string
	Priority int
	PostedAt time.Time
}

// Board schedules quests by priority, highest first. Equal priorities are
// served in posting order.
type Board struct {
	mu     sync.Mutex
	queue  *priority.Queue[Quest, int]
	recent *cache.Cache
}

// NewBoard returns an empty board configured with the given options.
func NewBoard(opts ...Option) *Board {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Board{
		queue: priority.New[Quest, int](),
	}
	if o.dedupWindow > 0 {
		b.recent = cache.New(o.dedupWindow, o.dedupWindow)
	}
	return b
}

// Post adds a quest with the given title and priority and returns it with
// its assigned ID. Posting an empty title fails with ErrEmptyTitle. When
// the board has a dedup window, reposting a title seen within the window
// fails with ErrDuplicatePost.
func (b *Board) Post(title string, pri int) (Quest, error) {
	if title == "" {
		return Quest{}, ErrEmptyTitle
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.recent != nil {
		if _, seen := b.recent.Get(title); seen {
			return Quest{}, fmt.Errorf("%w: %q", ErrDuplicatePost, title)
		}
		b.recent.Set(title, struct{}{}, cache.DefaultExpiration)
	}

	q := Quest{
		ID:       uuid.New(),
		Title:    title,
		Priority: pri,
		PostedAt: time.Now(),
	}
	b.queue.Enqueue(q, pri)

	return q, nil
}

// Next removes and returns the most urgent quest. The second return value
// is false when the board is empty.
func (b *Board) Next() (Quest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.queue.Dequeue()
}

// Peek returns the most urgent quest without removing it. The second
// return value is false when the board is empty.
func (b *Board) Peek() (Quest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.queue.Peek()
}

// Len returns the number of pending quests.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.queue.Len()
}
