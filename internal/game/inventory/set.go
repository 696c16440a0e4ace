package inventory

// Set records which collectibles are held. Items carry no quantity.
type Set struct {
	held [3]bool
}

// Add marks item as held. Adding None or an already-held item is a no-op.
//
// Postcondition: Has(item) is true for every collectible item.
func (s *Set) Add(item Item) {
	if idx := item.slot(); idx >= 0 {
		s.held[idx] = true
	}
}

// Has reports whether item is held. None is never held.
func (s *Set) Has(item Item) bool {
	idx := item.slot()
	return idx >= 0 && s.held[idx]
}

// Items returns the held items in slot order.
//
// Postcondition: Returns a non-nil slice; may be empty.
func (s *Set) Items() []Item {
	items := make([]Item, 0, len(s.held))
	for _, item := range Collectibles {
		if s.Has(item) {
			items = append(items, item)
		}
	}
	return items
}

// Len returns the number of held items.
func (s *Set) Len() int {
	n := 0
	for _, h := range s.held {
		if h {
			n++
		}
	}
	return n
}
