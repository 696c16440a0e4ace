// Package session tracks the adventurer's mutable state for one run.
package session

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/eldara/internal/game/inventory"
)

// Adventurer is the player's state: position, inventory, and progress.
type Adventurer struct {
	// UID identifies this run in logs.
	UID string
	// RoomID is the room the adventurer currently occupies.
	RoomID string
	// Inventory holds the collected items.
	Inventory inventory.Set
	// HasTreasure mirrors Inventory.Has(inventory.Treasure). It is set when the
	// treasure is added and never cleared.
	HasTreasure bool
	// Moves counts successful movements only.
	Moves int
}

// New creates an adventurer standing in startRoom with an empty inventory.
//
// Precondition: startRoom must be a valid room ID.
func New(startRoom string) *Adventurer {
	return &Adventurer{
		UID:    uuid.NewString(),
		RoomID: startRoom,
	}
}

// Has reports whether the adventurer carries item.
func (a *Adventurer) Has(item inventory.Item) bool {
	return a.Inventory.Has(item)
}

// AddItem puts item into the inventory.
//
// Postcondition: Has(item) for any collectible item; HasTreasure is set when item is the treasure.
func (a *Adventurer) AddItem(item inventory.Item) {
	a.Inventory.Add(item)
	if item == inventory.Treasure {
		a.HasTreasure = true
	}
}

// CanFight reports whether the adventurer is armed.
func (a *Adventurer) CanFight() bool {
	return a.Has(inventory.Sword)
}

// MoveTo relocates the adventurer and counts the move.
//
// Postcondition: RoomID == roomID and Moves is incremented by exactly one.
func (a *Adventurer) MoveTo(roomID string) {
	a.RoomID = roomID
	a.Moves++
}
