package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseItem(t *testing.T) {
	item, err := ParseItem("")
	require.NoError(t, err)
	assert.Equal(t, None, item)

	for _, want := range Collectibles {
		got, err := ParseItem(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = ParseItem("shield")
	assert.Error(t, err)
}

func TestItem_IsCollectible(t *testing.T) {
	assert.False(t, None.IsCollectible())
	assert.True(t, Sword.IsCollectible())
	assert.True(t, Key.IsCollectible())
	assert.True(t, Treasure.IsCollectible())
	assert.False(t, Item("lamp").IsCollectible())
}

func TestSet_Empty(t *testing.T) {
	var s Set
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Items())
	for _, item := range Collectibles {
		assert.False(t, s.Has(item))
	}
}

func TestSet_AddNoneIgnored(t *testing.T) {
	var s Set
	s.Add(None)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(None))
}

func TestSet_AddIsPresenceOnly(t *testing.T) {
	var s Set
	s.Add(Key)
	s.Add(Key)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []Item{Key}, s.Items())
}

func TestSet_ItemsInSlotOrder(t *testing.T) {
	var s Set
	s.Add(Treasure)
	s.Add(Sword)
	assert.Equal(t, []Item{Sword, Treasure}, s.Items())
}

func TestPropertySetHasEveryAddedItem(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var s Set
		added := make(map[Item]bool)
		n := rapid.IntRange(0, 10).Draw(t, "n")
		for i := 0; i < n; i++ {
			item := rapid.SampledFrom(Collectibles).Draw(t, "item")
			s.Add(item)
			added[item] = true
		}
		for _, item := range Collectibles {
			if s.Has(item) != added[item] {
				t.Fatalf("Has(%q) = %v, want %v", item, s.Has(item), added[item])
			}
		}
		if s.Len() != len(added) {
			t.Fatalf("Len() = %d, want %d", s.Len(), len(added))
		}
	})
}
