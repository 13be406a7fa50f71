package armory

import (
	"io"
	"iter"

	"github.com/perchik/armory/inventory"
	"github.com/perchik/armory/item"
	"github.com/perchik/armory/quest"
)

// Armory bundles an item inventory and a quest board behind one handle.
type Armory struct {
	items  *inventory.Index
	quests *quest.Board
}

// New creates an armory configured with the given options.
func New(opts ...Option) *Armory {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Armory{
		items: inventory.New(
			inventory.WithExpectedItems(o.expectedItems),
		),
		quests: quest.NewBoard(
			quest.WithDedupWindow(o.dedupWindow),
		),
	}
}

// StoreItem adds an item to the inventory. Duplicate names are kept.
func (a *Armory) StoreItem(it item.Item) {
	a.items.Add(it)
}

// LoadCatalog decodes a YAML item catalog from r and stores every entry.
// It returns the number of items stored.
func (a *Armory) LoadCatalog(r io.Reader) (int, error) {
	items, err := item.DecodeCatalog(r)
	if err != nil {
		return 0, err
	}
	a.items.AddAll(items)
	return len(items), nil
}

// FindItem returns the item with the given name, or false if absent.
func (a *Armory) FindItem(name string) (item.Item, bool) {
	return a.items.Find(name)
}

// Items iterates over the inventory in ascending name order.
func (a *Armory) Items() iter.Seq[item.Item] {
	return a.items.All()
}

// ItemsByRarity iterates over the items of the given rarity in ascending
// name order.
func (a *Armory) ItemsByRarity(r item.Rarity) iter.Seq[item.Item] {
	return a.items.ByRarity(r)
}

// ItemCount returns the number of stored items.
func (a *Armory) ItemCount() int {
	return a.items.Len()
}

// PostQuest adds a quest to the board and returns it with its assigned ID.
func (a *Armory) PostQuest(title string, pri int) (quest.Quest, error) {
	return a.quests.Post(title, pri)
}

// NextQuest removes and returns the most urgent quest, or false if the
// board is empty.
func (a *Armory) NextQuest() (quest.Quest, bool) {
	return a.quests.Next()
}

// PeekQuest returns the most urgent quest without removing it, or false if
// the board is empty.
func (a *Armory) PeekQuest() (quest.Quest, bool) {
	return a.quests.Peek()
}

// QuestCount returns the number of pending quests.
func (a *Armory) QuestCount() int {
	return a.quests.Len()
}
