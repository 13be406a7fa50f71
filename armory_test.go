package armory_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perchik/armory"
	"github.com/perchik/armory/item"
	"github.com/perchik/armory/quest"
)

func TestArmoryStoreAndFind(t *testing.T) {
	arm := armory.New()
	arm.StoreItem(item.Item{Name: "Iron Sword", Rarity: item.RarityCommon})
	arm.StoreItem(item.Item{Name: "Ash Bow", Rarity: item.RarityRare})

	got, ok := arm.FindItem("Ash Bow")
	require.True(t, ok)
	assert.Equal(t, item.RarityRare, got.Rarity)

	_, ok = arm.FindItem("Rusty Dagger")
	assert.False(t, ok)

	assert.Equal(t, 2, arm.ItemCount())
}

func TestArmoryLoadCatalog(t *testing.T) {
	const catalog = `
items:
  - name: Iron Sword
    rarity: common
  - name: Phoenix Feather
    rarity: legendary
`

	arm := armory.New()
	n, err := arm.LoadCatalog(strings.NewReader(catalog))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, arm.ItemCount())

	feather, ok := arm.FindItem("Phoenix Feather")
	require.True(t, ok)
	assert.Equal(t, item.RarityLegendary, feather.Rarity)
}

func TestArmoryLoadCatalogError(t *testing.T) {
	arm := armory.New()

	n, err := arm.LoadCatalog(strings.NewReader("items: ["))
	assert.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, arm.ItemCount())
}

func TestArmoryItemsByRarity(t *testing.T) {
	arm := armory.New()
	arm.StoreItem(item.Item{Name: "Iron Sword", Rarity: item.RarityCommon})
	arm.StoreItem(item.Item{Name: "Copper Ring", Rarity: item.RarityCommon})
	arm.StoreItem(item.Item{Name: "Ash Bow", Rarity: item.RarityRare})

	var commons []string
	for it := range arm.ItemsByRarity(item.RarityCommon) {
		commons = append(commons, it.Name)
	}
	assert.Equal(t, []string{"Copper Ring", "Iron Sword"}, commons)
}

func TestArmoryQuestFlow(t *testing.T) {
	arm := armory.New()

	for _, post := range []struct {
		title string
		pri   int
	}{
		{"Defend Village", 2},
		{"Attack Orcs", 1},
		{"Guard Gate", 2},
	} {
		_, err := arm.PostQuest(post.title, post.pri)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, arm.QuestCount())

	peeked, ok := arm.PeekQuest()
	require.True(t, ok)
	assert.Equal(t, "Defend Village", peeked.Title)
	assert.Equal(t, 3, arm.QuestCount())

	var titles []string
	for q, ok := arm.NextQuest(); ok; q, ok = arm.NextQuest() {
		titles = append(titles, q.Title)
	}
	assert.Equal(t, []string{"Defend Village", "Guard Gate", "Attack Orcs"}, titles)

	_, ok = arm.NextQuest()
	assert.False(t, ok)
}

func TestArmoryQuestValidation(t *testing.T) {
	arm := armory.New(armory.WithDedupWindow(50 * time.Millisecond))

	_, err := arm.PostQuest("", 1)
	assert.ErrorIs(t, err, quest.ErrEmptyTitle)

	_, err = arm.PostQuest("Defend Village", 2)
	require.NoError(t, err)
	_, err = arm.PostQuest("Defend Village", 2)
	assert.ErrorIs(t, err, quest.ErrDuplicatePost)
}

func TestArmoryOptions(t *testing.T) {
	arm := armory.New(armory.WithExpectedItems(4096))
	arm.StoreItem(item.Item{Name: "Iron Sword", Rarity: item.RarityCommon})

	_, ok := arm.FindItem("Iron Sword")
	assert.True(t, ok)
}
