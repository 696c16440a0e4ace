// Package world provides the game world model: directions, rooms, and the
// zone that owns them.
package world

import (
	"fmt"

	"github.com/cory-johannsen/eldara/internal/game/inventory"
	"github.com/cory-johannsen/eldara/internal/game/npc"
)

// Direction represents one of the four compass directions.
type Direction string

// Compass directions.
const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
)

// StandardDirections contains the four directions in canonical order.
var StandardDirections = []Direction{North, East, South, West}

// IsStandard reports whether d is one of the four compass directions.
func (d Direction) IsStandard() bool {
	for _, sd := range StandardDirections {
		if d == sd {
			return true
		}
	}
	return false
}

// Opposite returns the opposite compass direction, or an empty string for
// anything that is not a standard direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return ""
	}
}

// Style holds presentation hints for a room title and text.
type Style struct {
	// Color is a 256-colour palette index. 0 means unstyled.
	Color int
	// Italic renders the title in italics.
	Italic bool
}

// Room represents a location in the game world.
//
// Neighbors are stored by room ID; the Zone owns every Room, so a cycle in
// the map never becomes a cycle of owning pointers.
type Room struct {
	// ID uniquely identifies this room within the zone.
	ID string
	// Title is the short display name of the room.
	Title string
	// Description is shown each time the room is rendered.
	Description string
	// Detail is the longer text shown by the look command.
	Detail string
	// Style holds colour hints for the renderer.
	Style Style
	// Item is the single item lying here, or inventory.None.
	Item inventory.Item
	// Occupant is the NPC living here, or nil.
	Occupant *npc.Occupant
	// Locked is inert metadata. Access to locked contents is gated by the
	// interpreter's key check, not by this flag.
	Locked bool

	neighbors map[Direction]string
	shown     []Direction
}

// NewRoom creates a room with no neighbors.
func NewRoom(id, title, description, detail string) *Room {
	return &Room{
		ID:          id,
		Title:       title,
		Description: description,
		Detail:      detail,
		neighbors:   make(map[Direction]string, len(StandardDirections)),
	}
}

// Neighbor returns the ID of the room in the given direction.
//
// Postcondition: Returns (id, true) if an adjacency exists, or ("", false) otherwise.
func (r *Room) Neighbor(dir Direction) (string, bool) {
	id, ok := r.neighbors[dir]
	return id, ok
}

// ShownExits returns the directions displayed to the player, in the order
// they were added.
//
// Postcondition: Every returned direction has a neighbor; the slice is a copy.
func (r *Room) ShownExits() []Direction {
	out := make([]Direction, len(r.shown))
	copy(out, r.shown)
	return out
}

// addPath appends dir to the displayed exits unless it is already shown.
func (r *Room) addPath(dir Direction) {
	for _, d := range r.shown {
		if d == dir {
			return
		}
	}
	r.shown = append(r.shown, dir)
}

// TakeItem removes and returns the room's item.
//
// Postcondition: r.Item is inventory.None.
func (r *Room) TakeItem() inventory.Item {
	item := r.Item
	r.Item = inventory.None
	return item
}

// Zone owns every room of the world.
type Zone struct {
	// ID uniquely identifies this zone.
	ID string
	// Name is the display name of the zone.
	Name string
	// StartRoom is the ID of the room the adventurer starts in.
	StartRoom string
	// Rooms contains all rooms in this zone, keyed by room ID.
	Rooms map[string]*Room
	// Order lists room IDs in declaration order.
	Order []string
}

// NewZone creates an empty zone.
func NewZone(id, name string) *Zone {
	return &Zone{
		ID:    id,
		Name:  name,
		Rooms: make(map[string]*Room),
	}
}

// AddRoom registers a room with the zone.
//
// Postcondition: Returns an error if a room with the same ID already exists.
func (z *Zone) AddRoom(r *Room) error {
	if _, exists := z.Rooms[r.ID]; exists {
		return fmt.Errorf("zone %q: duplicate room ID %q", z.ID, r.ID)
	}
	if r.neighbors == nil {
		r.neighbors = make(map[Direction]string, len(StandardDirections))
	}
	z.Rooms[r.ID] = r
	z.Order = append(z.Order, r.ID)
	return nil
}

// Connect joins two rooms in both directions and lists the new exit on each side.
//
// Precondition: dir must be a standard direction; both rooms must exist.
// Postcondition: from→dir→to and to→dir.Opposite()→from, and both exits are shown.
func (z *Zone) Connect(fromID string, dir Direction, toID string) error {
	if !dir.IsStandard() {
		return fmt.Errorf("zone %q: connect %q: unknown direction %q", z.ID, fromID, dir)
	}
	from, ok := z.Rooms[fromID]
	if !ok {
		return fmt.Errorf("zone %q: connect: unknown room %q", z.ID, fromID)
	}
	to, ok := z.Rooms[toID]
	if !ok {
		return fmt.Errorf("zone %q: connect: unknown room %q", z.ID, toID)
	}
	opposite := dir.Opposite()

	from.neighbors[dir] = to.ID
	from.addPath(dir)
	to.neighbors[opposite] = from.ID
	to.addPath(opposite)
	return nil
}

// HideExit rebuilds a room's displayed exits without dir. The adjacency
// itself is left in place, so movement in that direction still works.
//
// Postcondition: ShownExits lists north, south, west, east (minus dir) for
// every direction with a neighbor.
func (z *Zone) HideExit(roomID string, dir Direction) error {
	room, ok := z.Rooms[roomID]
	if !ok {
		return fmt.Errorf("zone %q: hide exit: unknown room %q", z.ID, roomID)
	}
	if _, ok := room.neighbors[dir]; !ok {
		return fmt.Errorf("zone %q: room %q: no %s exit to hide", z.ID, roomID, dir)
	}
	room.shown = room.shown[:0]
	for _, d := range []Direction{North, South, West, East} {
		if d == dir {
			continue
		}
		if _, ok := room.neighbors[d]; ok {
			room.addPath(d)
		}
	}
	return nil
}

// Navigate resolves movement from a room in a direction. Hidden exits are
// traversable.
//
// Postcondition: Returns (destination, true), or (nil, false) if there is no neighbor.
func (z *Zone) Navigate(fromID string, dir Direction) (*Room, bool) {
	from, ok := z.Rooms[fromID]
	if !ok {
		return nil, false
	}
	id, ok := from.Neighbor(dir)
	if !ok {
		return nil, false
	}
	to, ok := z.Rooms[id]
	return to, ok
}

// Validate checks zone invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (z *Zone) Validate() error {
	if z.ID == "" {
		return fmt.Errorf("zone ID must not be empty")
	}
	if z.Name == "" {
		return fmt.Errorf("zone %q: name must not be empty", z.ID)
	}
	if len(z.Rooms) == 0 {
		return fmt.Errorf("zone %q: must contain at least one room", z.ID)
	}
	if _, ok := z.Rooms[z.StartRoom]; !ok {
		return fmt.Errorf("zone %q: start_room %q not found in rooms", z.ID, z.StartRoom)
	}
	for _, id := range z.Order {
		room, ok := z.Rooms[id]
		if !ok {
			return fmt.Errorf("zone %q: ordered room %q not found in rooms", z.ID, id)
		}
		if room.ID != id {
			return fmt.Errorf("zone %q: room key %q does not match room ID %q", z.ID, id, room.ID)
		}
		if room.Title == "" {
			return fmt.Errorf("zone %q: room %q: title must not be empty", z.ID, id)
		}
		if room.Description == "" {
			return fmt.Errorf("zone %q: room %q: description must not be empty", z.ID, id)
		}
		if room.Item != inventory.None && !room.Item.IsCollectible() {
			return fmt.Errorf("zone %q: room %q: unknown item %q", z.ID, id, room.Item)
		}
		if room.Occupant != nil {
			if err := room.Occupant.Validate(); err != nil {
				return fmt.Errorf("zone %q: room %q: %w", z.ID, id, err)
			}
		}
		for dir, target := range room.neighbors {
			other, ok := z.Rooms[target]
			if !ok {
				return fmt.Errorf("zone %q: room %q: exit %q targets unknown room %q", z.ID, id, dir, target)
			}
			if back, ok := other.neighbors[dir.Opposite()]; !ok || back != id {
				return fmt.Errorf("zone %q: room %q: exit %q to %q has no matching %q exit back", z.ID, id, dir, target, dir.Opposite())
			}
		}
		for _, dir := range room.shown {
			if _, ok := room.neighbors[dir]; !ok {
				return fmt.Errorf("zone %q: room %q: shown exit %q has no neighbor", z.ID, id, dir)
			}
		}
	}
	if len(z.Order) != len(z.Rooms) {
		return fmt.Errorf("zone %q: %d rooms registered outside AddRoom", z.ID, len(z.Rooms)-len(z.Order))
	}
	return nil
}
