// Package render formats game state as terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/cory-johannsen/eldara/internal/frontend/ansi"
	"github.com/cory-johannsen/eldara/internal/game/inventory"
	"github.com/cory-johannsen/eldara/internal/game/npc"
	"github.com/cory-johannsen/eldara/internal/game/world"
)

// Tone selects the styling of a one-line interpreter message.
type Tone int

// Message tones.
const (
	// Failure marks a refused or invalid action.
	Failure Tone = iota
	// Success marks a completed action.
	Success
	// Reward marks an item changing hands.
	Reward
	// Speech marks occupant dialogue.
	Speech
	// Motion marks a successful move.
	Motion
)

// Renderer turns rooms, messages, and banners into styled text.
type Renderer struct {
	style ansi.Styler
	width int
}

// New creates a Renderer.
//
// Precondition: wrapWidth >= 0; 0 disables word wrapping.
func New(color bool, wrapWidth int) *Renderer {
	return &Renderer{style: ansi.NewStyler(color), width: wrapWidth}
}

func (r *Renderer) wrap(s string) string {
	if r.width <= 0 {
		return s
	}
	return wordwrap.String(s, r.width)
}

func roomColor(room *world.Room) []string {
	if room.Style.Color == 0 {
		return nil
	}
	return []string{ansi.Color256(room.Style.Color)}
}

// Title returns the room's display name in its colour, bold, and italic when requested.
func (r *Renderer) Title(room *world.Room) string {
	codes := append(roomColor(room), ansi.Bold)
	if room.Style.Italic {
		codes = append(codes, ansi.Italic)
	}
	return r.style.Style(room.Title, codes...)
}

// Enter renders the short description shown at the top of each turn.
func (r *Renderer) Enter(room *world.Room) string {
	line := fmt.Sprintf("You are in %s. %s", r.Title(room), r.style.Style(room.Description, roomColor(room)...))
	return "\n" + r.wrap(line) + "\n" + r.Summary(room)
}

// Examine renders the long description produced by look.
func (r *Renderer) Examine(room *world.Room) string {
	var b strings.Builder
	b.WriteString("\nYou carefully examine ")
	b.WriteString(r.Title(room))
	b.WriteString(".\n")
	b.WriteString(r.wrap(r.style.Style(room.Detail, roomColor(room)...)))
	b.WriteString("\n")
	b.WriteString(r.Summary(room))
	return b.String()
}

// Revelation renders look text supplied by a room hook in place of Examine.
func (r *Renderer) Revelation(text string) string {
	return "\n" + r.wrap(r.style.Style(text, ansi.Bold, ansi.Cyan)) + "\n"
}

// Summary lists the displayed exits, a present occupant, and the room's item.
// Hidden exits are never listed.
//
// Postcondition: Each line ends in a newline; returns "" for an empty room with no shown exits.
func (r *Renderer) Summary(room *world.Room) string {
	var b strings.Builder

	if exits := room.ShownExits(); len(exits) > 0 {
		names := make([]string, len(exits))
		for i, d := range exits {
			names[i] = string(d)
			if r.style.Enabled() {
				names[i] = ansi.Yellow + names[i] + ansi.Cyan
			}
		}
		b.WriteString(r.style.Style("Available paths lead: "+strings.Join(names, ", ")+".", ansi.Cyan))
		b.WriteString("\n")
	}

	if occ := room.Occupant; occ.Present() {
		switch occ.Kind {
		case npc.Passive:
			b.WriteString(r.style.Stylef([]string{ansi.Bold, ansi.Cyan}, "There is a %s here you can talk to.", occ.Name))
			b.WriteString("\n")
		case npc.Hostile:
			b.WriteString(r.style.Stylef([]string{ansi.Bold, ansi.Red}, "A fearsome %s blocks your path!", occ.Name))
			b.WriteString("\n")
		}
	}

	switch room.Item {
	case inventory.Sword:
		b.WriteString(r.style.Style("There is a sword here that you can take.", ansi.Bold, ansi.Green))
		b.WriteString("\n")
	case inventory.Key:
		b.WriteString(r.style.Style("There is a key here that you can take.", ansi.Bold, ansi.Yellow))
		b.WriteString("\n")
	case inventory.Treasure:
		b.WriteString(r.style.Style("There is a treasure chest here!", ansi.Bold, ansi.Yellow))
		b.WriteString("\n")
	}

	return b.String()
}

// Message renders one interpreter response line in the given tone.
func (r *Renderer) Message(tone Tone, text string) string {
	var codes []string
	switch tone {
	case Failure:
		codes = []string{ansi.Bold, ansi.Red}
	case Success:
		codes = []string{ansi.Bold, ansi.Green}
	case Reward:
		codes = []string{ansi.Bold, ansi.Yellow}
	case Speech:
		codes = []string{ansi.Bold, ansi.Cyan}
	case Motion:
		codes = []string{ansi.Green}
	}
	return r.style.Style(text, codes...) + "\n"
}
