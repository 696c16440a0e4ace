package world

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/eldara/internal/game/inventory"
	"github.com/cory-johannsen/eldara/internal/game/npc"
)

func TestBuild_EightRooms(t *testing.T) {
	zone := Build()
	assert.Equal(t, Forest, zone.StartRoom)
	assert.Equal(t,
		[]string{Forest, Ruins, Cave, Mountain, Valley, Lake, Village, HiddenRoom},
		zone.Order,
	)
	assert.Len(t, zone.Rooms, 8)
	for _, id := range zone.Order {
		room := zone.Rooms[id]
		assert.NotEmpty(t, room.Title, id)
		assert.NotEmpty(t, room.Description, id)
		assert.NotEmpty(t, room.Detail, id)
	}
}

func TestBuild_Adjacency(t *testing.T) {
	zone := Build()
	want := []struct {
		from string
		dir  Direction
		to   string
	}{
		{Village, East, Valley},
		{Village, South, Forest},
		{Valley, East, Lake},
		{Forest, East, Ruins},
		{Lake, South, Mountain},
		{Ruins, South, Cave},
		{Mountain, East, HiddenRoom},
	}
	edges := 0
	for _, w := range want {
		got, ok := zone.Rooms[w.from].Neighbor(w.dir)
		require.True(t, ok, "%s has no %s exit", w.from, w.dir)
		assert.Equal(t, w.to, got)

		back, ok := zone.Rooms[w.to].Neighbor(w.dir.Opposite())
		require.True(t, ok, "%s has no %s exit", w.to, w.dir.Opposite())
		assert.Equal(t, w.from, back)
	}
	for _, room := range zone.Rooms {
		edges += len(room.neighbors)
	}
	assert.Equal(t, 2*len(want), edges, "no adjacency beyond the fixed set")
}

func TestBuild_AdjacencyIsSymmetric(t *testing.T) {
	zone := Build()
	for id, room := range zone.Rooms {
		for dir, target := range room.neighbors {
			back, ok := zone.Rooms[target].Neighbor(dir.Opposite())
			assert.True(t, ok, "%s→%s→%s has no way back", id, dir, target)
			assert.Equal(t, id, back)
		}
	}
}

func TestBuild_MountainHidesEast(t *testing.T) {
	zone := Build()
	mountain := zone.Rooms[Mountain]
	assert.NotContains(t, mountain.ShownExits(), East)
	assert.Equal(t, []Direction{North}, mountain.ShownExits())

	target, ok := mountain.Neighbor(East)
	assert.True(t, ok)
	assert.Equal(t, HiddenRoom, target)

	to, ok := zone.Navigate(Mountain, East)
	require.True(t, ok)
	assert.Equal(t, HiddenRoom, to.ID)
}

func TestBuild_ShownExitsMatchAdjacencyElsewhere(t *testing.T) {
	zone := Build()
	for id, room := range zone.Rooms {
		if id == Mountain {
			continue
		}
		assert.Len(t, room.ShownExits(), len(room.neighbors), id)
	}
	assert.Equal(t, []Direction{East, South}, zone.Rooms[Village].ShownExits())
	assert.Equal(t, []Direction{North, East}, zone.Rooms[Forest].ShownExits())
}

func TestBuild_Contents(t *testing.T) {
	zone := Build()

	assert.Equal(t, inventory.Sword, zone.Rooms[Mountain].Item)
	assert.Equal(t, inventory.Treasure, zone.Rooms[HiddenRoom].Item)
	assert.True(t, zone.Rooms[HiddenRoom].Locked)

	villager := zone.Rooms[Village].Occupant
	require.NotNil(t, villager)
	assert.Equal(t, npc.Passive, villager.Kind)
	assert.Contains(t, villager.Dialogue, "Let me show you a map")
	assert.Contains(t, villager.Dialogue, "Mountain")

	monster := zone.Rooms[Cave].Occupant
	require.NotNil(t, monster)
	assert.Equal(t, npc.Hostile, monster.Kind)
	assert.False(t, monster.Defeated)

	for _, id := range []string{Forest, Ruins, Valley, Lake} {
		assert.Equal(t, inventory.None, zone.Rooms[id].Item, id)
		assert.Nil(t, zone.Rooms[id].Occupant, id)
	}
}

func TestBuild_IndependentWorlds(t *testing.T) {
	a := Build()
	b := Build()
	a.Rooms[Mountain].TakeItem()
	assert.Equal(t, inventory.Sword, b.Rooms[Mountain].Item)
}

func TestScripts_ExposesLookHooks(t *testing.T) {
	names, err := fs.Glob(Scripts(), "*.lua")
	require.NoError(t, err)
	assert.Equal(t, []string{"eldara.lua"}, names)

	src, err := fs.ReadFile(Scripts(), "eldara.lua")
	require.NoError(t, err)
	assert.Contains(t, string(src), "function on_look")
}
