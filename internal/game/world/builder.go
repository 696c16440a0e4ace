package world

import (
	"embed"
	"fmt"
	"io/fs"
)

// Room IDs of the Eldara world.
const (
	Forest     = "forest"
	Ruins      = "ruins"
	Cave       = "cave"
	Mountain   = "mountain"
	Valley     = "valley"
	Lake       = "lake"
	Village    = "village"
	HiddenRoom = "hidden_room"
)

//go:embed content/eldara.yaml
var eldaraYAML []byte

//go:embed content/scripts/*.lua
var scripts embed.FS

// Build constructs the eight rooms of Eldara, wires their adjacency, places
// items and occupants, and hides the mountain's east exit from display.
//
// Postcondition: Returns a validated zone. Panics if the embedded content is
// invalid, which the package tests rule out.
func Build() *Zone {
	zone, err := LoadZoneFromBytes(eldaraYAML)
	if err != nil {
		panic(fmt.Sprintf("building eldara: %v", err))
	}
	return zone
}

// Scripts returns the Lua room hooks for the Eldara zone, rooted so that the
// script files sit at the top level.
func Scripts() fs.FS {
	sub, err := fs.Sub(scripts, "content/scripts")
	if err != nil {
		panic(fmt.Sprintf("eldara scripts: %v", err))
	}
	return sub
}
