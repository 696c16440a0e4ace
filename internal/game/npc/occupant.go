// Package npc provides the non-player characters that occupy rooms.
package npc

import "fmt"

// Kind distinguishes conversational occupants from ones that must be fought.
type Kind string

// Occupant kinds.
const (
	Passive Kind = "passive"
	Hostile Kind = "hostile"
)

// Occupant is a non-player character owned by a single room.
type Occupant struct {
	// Kind is Passive (talk only) or Hostile (blocks until defeated).
	Kind Kind
	// Name is the short display name, e.g. "villager".
	Name string
	// Dialogue is shown when the adventurer talks to the occupant.
	Dialogue string
	// Defeated is set once a hostile occupant loses a fight. A defeated
	// occupant neither displays nor accepts talk or fight.
	Defeated bool
}

// New creates an undefeated occupant.
//
// Precondition: kind must be Passive or Hostile.
func New(kind Kind, name, dialogue string) *Occupant {
	return &Occupant{Kind: kind, Name: name, Dialogue: dialogue}
}

// Validate checks occupant invariants.
func (o *Occupant) Validate() error {
	if o.Kind != Passive && o.Kind != Hostile {
		return fmt.Errorf("occupant %q: kind must be passive or hostile, got %q", o.Name, o.Kind)
	}
	if o.Name == "" {
		return fmt.Errorf("occupant name must not be empty")
	}
	if o.Dialogue == "" {
		return fmt.Errorf("occupant %q: dialogue must not be empty", o.Name)
	}
	return nil
}

// Present reports whether the occupant is still in play.
func (o *Occupant) Present() bool {
	return o != nil && !o.Defeated
}

// CanFight reports whether the occupant is a hostile that has not been defeated.
func (o *Occupant) CanFight() bool {
	return o.Present() && o.Kind == Hostile
}

// Defeat marks a fightable occupant as defeated.
//
// Postcondition: Returns true if the occupant changed state; false if it was
// passive, absent, or already defeated.
func (o *Occupant) Defeat() bool {
	if !o.CanFight() {
		return false
	}
	o.Defeated = true
	return true
}
