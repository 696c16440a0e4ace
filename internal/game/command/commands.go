// Package command provides the command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryMovement = "movement"
	CategoryWorld    = "world"
	CategoryCombat   = "combat"
	CategorySystem   = "system"
)

// Handler identifiers mapping commands to interpreter actions.
const (
	HandlerMove  = "move"
	HandlerLook  = "look"
	HandlerTalk  = "talk"
	HandlerFight = "fight"
	HandlerTake  = "take"
	HandlerHelp  = "help"
	HandlerQuit  = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name. For movement it is also the direction.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (movement, world, combat, system).
	Category string
	// Handler maps to the interpreter action.
	Handler string
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		// Movement commands
		{Name: "north", Aliases: []string{"n"}, Help: "Move north", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Move south", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Move east", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Move west", Category: CategoryMovement, Handler: HandlerMove},

		// World commands
		{Name: "look", Help: "Examine your surroundings", Category: CategoryWorld, Handler: HandlerLook},
		{Name: "take", Help: "Pick up items", Category: CategoryWorld, Handler: HandlerTake},
		{Name: "talk", Help: "Speak with characters", Category: CategoryWorld, Handler: HandlerTalk},

		// Combat commands
		{Name: "fight", Help: "Battle monsters", Category: CategoryCombat, Handler: HandlerFight},

		// System commands
		{Name: "help", Help: "Show commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Help: "Exit game", Category: CategorySystem, Handler: HandlerQuit},
	}
}
