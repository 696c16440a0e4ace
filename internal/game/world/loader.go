package world

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/eldara/internal/game/inventory"
	"github.com/cory-johannsen/eldara/internal/game/npc"
)

// yamlZoneFile is the top-level YAML structure for zone files.
type yamlZoneFile struct {
	Zone yamlZone `yaml:"zone"`
}

// yamlZone is the YAML representation of a zone.
type yamlZone struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	StartRoom   string           `yaml:"start_room"`
	Rooms       []yamlRoom       `yaml:"rooms"`
	Connections []yamlConnection `yaml:"connections"`
	HiddenExits []yamlHiddenExit `yaml:"hidden_exits"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	ID          string        `yaml:"id"`
	Title       string        `yaml:"title"`
	Color       int           `yaml:"color"`
	Italic      bool          `yaml:"italic"`
	Description string        `yaml:"description"`
	Detail      string        `yaml:"detail"`
	Item        string        `yaml:"item"`
	Locked      bool          `yaml:"locked"`
	Occupant    *yamlOccupant `yaml:"occupant"`
}

// yamlOccupant is the YAML representation of a room's NPC.
type yamlOccupant struct {
	Kind     string `yaml:"kind"`
	Name     string `yaml:"name"`
	Dialogue string `yaml:"dialogue"`
}

// yamlConnection joins two rooms in both directions.
type yamlConnection struct {
	From      string `yaml:"from"`
	Direction string `yaml:"direction"`
	To        string `yaml:"to"`
}

// yamlHiddenExit removes an existing exit from a room's displayed exits.
type yamlHiddenExit struct {
	Room      string `yaml:"room"`
	Direction string `yaml:"direction"`
}

// LoadZoneFromBytes parses and validates a zone from YAML bytes. Connections
// are applied in file order, then hidden exits.
//
// Precondition: data must be valid YAML conforming to the zone schema.
// Postcondition: Returns a validated Zone or a non-nil error.
func LoadZoneFromBytes(data []byte) (*Zone, error) {
	var file yamlZoneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing zone YAML: %w", err)
	}

	zone, err := convertYAMLZone(file.Zone)
	if err != nil {
		return nil, fmt.Errorf("building zone: %w", err)
	}
	if err := zone.Validate(); err != nil {
		return nil, fmt.Errorf("validating zone: %w", err)
	}

	return zone, nil
}

// convertYAMLZone converts the parsed YAML structures into domain types.
func convertYAMLZone(yz yamlZone) (*Zone, error) {
	zone := NewZone(yz.ID, yz.Name)
	zone.StartRoom = yz.StartRoom

	for _, yr := range yz.Rooms {
		room := NewRoom(yr.ID, yr.Title, strings.TrimSpace(yr.Description), strings.TrimSpace(yr.Detail))
		room.Style = Style{Color: yr.Color, Italic: yr.Italic}
		room.Locked = yr.Locked

		item, err := inventory.ParseItem(yr.Item)
		if err != nil {
			return nil, fmt.Errorf("room %q: %w", yr.ID, err)
		}
		room.Item = item

		if yo := yr.Occupant; yo != nil {
			room.Occupant = npc.New(npc.Kind(yo.Kind), yo.Name, strings.TrimRight(yo.Dialogue, "\n"))
		}
		if err := zone.AddRoom(room); err != nil {
			return nil, err
		}
	}

	for _, yc := range yz.Connections {
		if err := zone.Connect(yc.From, Direction(yc.Direction), yc.To); err != nil {
			return nil, err
		}
	}
	for _, yh := range yz.HiddenExits {
		if err := zone.HideExit(yh.Room, Direction(yh.Direction)); err != nil {
			return nil, err
		}
	}

	return zone, nil
}
