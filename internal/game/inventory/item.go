// Package inventory defines the collectible items and the adventurer's
// presence-only inventory set.
package inventory

import "fmt"

// Item identifies a collectible item. The zero value means no item.
type Item string

// Item constants. None marks an empty item slot.
const (
	None     Item = ""
	Sword    Item = "sword"
	Key      Item = "key"
	Treasure Item = "treasure"
)

// Collectibles lists every item an adventurer can carry, in slot order.
var Collectibles = []Item{Sword, Key, Treasure}

// slot returns the inventory index of a collectible item, or -1.
func (i Item) slot() int {
	switch i {
	case Sword:
		return 0
	case Key:
		return 1
	case Treasure:
		return 2
	default:
		return -1
	}
}

// IsCollectible reports whether i is one of the three carryable items.
func (i Item) IsCollectible() bool {
	return i.slot() >= 0
}

// ParseItem converts a content tag into an Item.
//
// Postcondition: Returns None for an empty tag, or an error for an unknown tag.
func ParseItem(tag string) (Item, error) {
	if tag == "" {
		return None, nil
	}
	item := Item(tag)
	if !item.IsCollectible() {
		return None, fmt.Errorf("unknown item %q", tag)
	}
	return item, nil
}
