package item_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/perchik/armory/item"
)

func TestDecodeCatalog(t *testing.T) {
	const doc = `
items:
  - name: Iron Sword
    rarity: common
  - name: Phoenix Feather
    rarity: legendary
  - name: Oak Shield
    rarity: uncommon
`

	items, err := item.DecodeCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Entry order is preserved.
	assert.Equal(t, item.Item{Name: "Iron Sword", Rarity: item.RarityCommon}, items[0])
	assert.Equal(t, item.Item{Name: "Phoenix Feather", Rarity: item.RarityLegendary}, items[1])
	assert.Equal(t, item.Item{Name: "Oak Shield", Rarity: item.RarityUncommon}, items[2])
}

func TestDecodeCatalogEmptyInput(t *testing.T) {
	items, err := item.DecodeCatalog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDecodeCatalogMissingRarity(t *testing.T) {
	const doc = `
items:
  - name: Practice Sword
`

	// An absent rarity key is not an error; the entry lands on the lowest
	// tier.
	items, err := item.DecodeCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.Item{Name: "Practice Sword", Rarity: item.RarityCommon}, items[0])
}

func TestDecodeCatalogMissingName(t *testing.T) {
	const doc = `
items:
  - name: Iron Sword
    rarity: common
  - rarity: epic
`

	_, err := item.DecodeCatalog(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, item.ErrMissingName)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestDecodeCatalogUnknownRarity(t *testing.T) {
	const doc = `
items:
  - name: Iron Sword
    rarity: mythic
`

	_, err := item.DecodeCatalog(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown rarity")
}

func TestDecodeCatalogMalformedYAML(t *testing.T) {
	_, err := item.DecodeCatalog(strings.NewReader("items: ["))
	assert.Error(t, err)
}

func TestRarityMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(item.Item{Name: "Iron Sword", Rarity: item.RarityEpic})
	require.NoError(t, err)
	assert.Equal(t, "name: Iron Sword\nrarity: epic\n", string(out))
}
