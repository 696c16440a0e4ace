package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/eldara/internal/game/inventory"
	"github.com/cory-johannsen/eldara/internal/game/npc"
)

func TestDirection_IsStandard(t *testing.T) {
	for _, d := range StandardDirections {
		assert.True(t, d.IsStandard(), "expected %q to be standard", d)
	}
	assert.False(t, Direction("up").IsStandard())
	assert.False(t, Direction("n").IsStandard())
}

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, East, West.Opposite())
	assert.Equal(t, Direction(""), Direction("stairs").Opposite())
}

func TestPropertyOppositeIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.SampledFrom(StandardDirections).Draw(t, "dir")
		assert.Equal(t, d, d.Opposite().Opposite(), "opposite should be an involution for %q", d)
	})
}

func TestZone_Connect(t *testing.T) {
	zone := validTestZone()

	a := zone.Rooms["room_a"]
	b := zone.Rooms["room_b"]
	id, ok := a.Neighbor(North)
	assert.True(t, ok)
	assert.Equal(t, "room_b", id)
	id, ok = b.Neighbor(South)
	assert.True(t, ok)
	assert.Equal(t, "room_a", id)

	assert.Equal(t, []Direction{North}, a.ShownExits())
	assert.Equal(t, []Direction{South}, b.ShownExits())
}

func TestZone_Connect_Errors(t *testing.T) {
	zone := validTestZone()
	assert.Error(t, zone.Connect("room_a", Direction("up"), "room_b"))
	assert.Error(t, zone.Connect("missing", North, "room_b"))
	assert.Error(t, zone.Connect("room_a", North, "missing"))
}

func TestZone_AddRoom_Duplicate(t *testing.T) {
	zone := validTestZone()
	err := zone.AddRoom(NewRoom("room_a", "Again", "Dup.", ""))
	assert.Error(t, err)
}

func TestZone_HideExit(t *testing.T) {
	zone := validTestZone()
	require.NoError(t, zone.AddRoom(NewRoom("room_c", "Room C", "The third room.", "")))
	require.NoError(t, zone.Connect("room_a", East, "room_c"))
	require.NoError(t, zone.HideExit("room_a", East))

	a := zone.Rooms["room_a"]
	assert.Equal(t, []Direction{North}, a.ShownExits())

	id, ok := a.Neighbor(East)
	assert.True(t, ok, "hidden exit must still exist")
	assert.Equal(t, "room_c", id)

	to, ok := zone.Navigate("room_a", East)
	require.True(t, ok)
	assert.Equal(t, "room_c", to.ID)
	assert.NoError(t, zone.Validate())
}

func TestZone_HideExit_Errors(t *testing.T) {
	zone := validTestZone()
	assert.Error(t, zone.HideExit("missing", North))
	assert.Error(t, zone.HideExit("room_a", West))
}

func TestZone_Navigate(t *testing.T) {
	zone := validTestZone()

	room, ok := zone.Navigate("room_a", North)
	require.True(t, ok)
	assert.Equal(t, "room_b", room.ID)

	_, ok = zone.Navigate("room_a", West)
	assert.False(t, ok)

	_, ok = zone.Navigate("missing", North)
	assert.False(t, ok)
}

func TestRoom_TakeItem(t *testing.T) {
	room := NewRoom("r", "R", "A room.", "")
	room.Item = inventory.Sword
	assert.Equal(t, inventory.Sword, room.TakeItem())
	assert.Equal(t, inventory.None, room.Item)
	assert.Equal(t, inventory.None, room.TakeItem())
}

func TestZone_Validate_Valid(t *testing.T) {
	assert.NoError(t, validTestZone().Validate())
}

func TestZone_Validate_EmptyID(t *testing.T) {
	zone := validTestZone()
	zone.ID = ""
	assert.Error(t, zone.Validate())
}

func TestZone_Validate_EmptyName(t *testing.T) {
	zone := validTestZone()
	zone.Name = ""
	assert.Error(t, zone.Validate())
}

func TestZone_Validate_MissingStartRoom(t *testing.T) {
	zone := validTestZone()
	zone.StartRoom = "nonexistent"
	assert.Error(t, zone.Validate())
}

func TestZone_Validate_EmptyRoomTitle(t *testing.T) {
	zone := validTestZone()
	zone.Rooms["room_a"].Title = ""
	assert.Error(t, zone.Validate())
}

func TestZone_Validate_EmptyRoomDescription(t *testing.T) {
	zone := validTestZone()
	zone.Rooms["room_a"].Description = ""
	assert.Error(t, zone.Validate())
}

func TestZone_Validate_NoRooms(t *testing.T) {
	zone := NewZone("empty", "Empty")
	assert.Error(t, zone.Validate())
}

func TestZone_Validate_AsymmetricExit(t *testing.T) {
	zone := validTestZone()
	zone.Rooms["room_b"].neighbors = map[Direction]string{}
	zone.Rooms["room_b"].shown = nil
	assert.Error(t, zone.Validate())
}

func TestZone_Validate_ShownExitWithoutNeighbor(t *testing.T) {
	zone := validTestZone()
	zone.Rooms["room_a"].addPath(West)
	assert.Error(t, zone.Validate())
}

func TestZone_Validate_BadOccupant(t *testing.T) {
	zone := validTestZone()
	zone.Rooms["room_a"].Occupant = npc.New(npc.Kind("shy"), "ghost", "Boo.")
	assert.Error(t, zone.Validate())
}

// Property: every Connect sequence yields symmetric adjacency and shown exits
// that are a subset of the adjacency.
func TestPropertyConnectKeepsSymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		zone := genConnectedZone(t)
		if err := zone.Validate(); err != nil {
			t.Fatalf("generated zone invalid: %v", err)
		}
		for id, room := range zone.Rooms {
			for dir, target := range room.neighbors {
				back, ok := zone.Rooms[target].Neighbor(dir.Opposite())
				if !ok || back != id {
					t.Fatalf("room %q %s→%q has no matching exit back", id, dir, target)
				}
			}
		}
	})
}

// genConnectedZone links a chain of rooms through random unused directions.
func genConnectedZone(t *rapid.T) *Zone {
	numRooms := rapid.IntRange(2, 8).Draw(t, "num_rooms")
	zone := NewZone("gen", "Generated")
	ids := make([]string, numRooms)
	for i := range ids {
		ids[i] = string(rune('a'+i)) + "_room"
		if err := zone.AddRoom(NewRoom(ids[i], "Room "+ids[i], "Description of "+ids[i], "")); err != nil {
			t.Fatalf("add room: %v", err)
		}
	}
	zone.StartRoom = ids[0]

	for i := 0; i+1 < numRooms; i++ {
		from := zone.Rooms[ids[i]]
		to := zone.Rooms[ids[i+1]]
		var free []Direction
		for _, d := range StandardDirections {
			_, usedFrom := from.Neighbor(d)
			_, usedTo := to.Neighbor(d.Opposite())
			if !usedFrom && !usedTo {
				free = append(free, d)
			}
		}
		if len(free) == 0 {
			continue
		}
		dir := rapid.SampledFrom(free).Draw(t, "dir")
		if err := zone.Connect(ids[i], dir, ids[i+1]); err != nil {
			t.Fatalf("connect: %v", err)
		}
	}
	return zone
}

func validTestZone() *Zone {
	zone := NewZone("test", "Test Zone")
	zone.StartRoom = "room_a"
	if err := zone.AddRoom(NewRoom("room_a", "Room A", "The first room.", "A closer look at the first room.")); err != nil {
		panic(err)
	}
	if err := zone.AddRoom(NewRoom("room_b", "Room B", "The second room.", "")); err != nil {
		panic(err)
	}
	if err := zone.Connect("room_a", North, "room_b"); err != nil {
		panic(err)
	}
	return zone
}
