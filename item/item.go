package item

import (
	"cmp"
	"fmt"
	"strings"
)

// Rarity classifies an item into a tier. Tiers are ordered, RarityCommon
// lowest, so contiguous spans of tiers can be scanned as a range.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = [...]string{"common", "uncommon", "rare", "epic", "legendary"}

func (r Rarity) String() string {
	if r < RarityCommon || r > RarityLegendary {
		return fmt.Sprintf("rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// ParseRarity parses a tier name, ignoring case.
func ParseRarity(s string) (Rarity, error) {
	name := strings.ToLower(s)
	for i := range rarityNames {
		if rarityNames[i] == name {
			return Rarity(i), nil
		}
	}
	return 0, fmt.Errorf("item: unknown rarity %q", s)
}

// Item is a named value with a rarity tier. Items order by Name alone; the
// tier is carried along but never consulted when comparing.
type Item struct {
	Name   string `yaml:"name"`
	Rarity Rarity `yaml:"rarity"`
}

// Less reports whether i orders before other, comparing names
// lexicographically.
func (i Item) Less(other Item) bool {
	return cmp.Compare(i.Name, other.Name) < 0
}

// Max is a sentinel item that orders after every well-formed item. Its name
// is the maximum Unicode code point (U+10FFFF).
var Max = Item{Name: "\U0010FFFF", Rarity: RarityLegendary}
