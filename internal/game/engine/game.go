// Package engine implements the command interpreter: the turn state machine
// that applies one command line to the world and the adventurer.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/eldara/internal/frontend/render"
	"github.com/cory-johannsen/eldara/internal/game/command"
	"github.com/cory-johannsen/eldara/internal/game/inventory"
	"github.com/cory-johannsen/eldara/internal/game/session"
	"github.com/cory-johannsen/eldara/internal/game/world"
	"github.com/cory-johannsen/eldara/internal/scripting"
)

// Outcome describes how a turn left the session.
type Outcome int

// Turn outcomes.
const (
	// Continue keeps the session running.
	Continue Outcome = iota
	// Quit ends the session at the adventurer's request.
	Quit
	// Victory ends the session because the treasure is held.
	Victory
)

// Result is the effect of one command line.
type Result struct {
	// Output is the rendered response.
	Output string
	// Outcome is Continue unless the session has ended.
	Outcome Outcome
	// Looked is set when the command was look, which replaces the next
	// room render.
	Looked bool
}

// Terminal reports whether the session ends after this result.
func (r Result) Terminal() bool {
	return r.Outcome != Continue
}

// Game owns the world, the adventurer, and the collaborators needed to run turns.
// A Game is not safe for concurrent use.
type Game struct {
	zone     *world.Zone
	hero     *session.Adventurer
	registry *command.Registry
	scripts  *scripting.Manager
	render   *render.Renderer
	logger   *zap.Logger
}

// New creates a Game with the adventurer standing in the zone's start room.
//
// Precondition: zone, renderer, and logger must be non-nil; scripts may be nil,
// in which case look never consults room hooks.
// Postcondition: Returns a Game ready to execute commands.
func New(zone *world.Zone, scripts *scripting.Manager, renderer *render.Renderer, logger *zap.Logger) *Game {
	if zone == nil {
		panic("engine.New: zone must not be nil")
	}
	if renderer == nil {
		panic("engine.New: renderer must not be nil")
	}
	if logger == nil {
		panic("engine.New: logger must not be nil")
	}
	hero := session.New(zone.StartRoom)
	return &Game{
		zone:     zone,
		hero:     hero,
		registry: command.DefaultRegistry(),
		scripts:  scripts,
		render:   renderer,
		logger:   logger.With(zap.String("run", hero.UID)),
	}
}

// Adventurer returns the player state.
func (g *Game) Adventurer() *session.Adventurer {
	return g.hero
}

// Room returns the room the adventurer occupies.
func (g *Game) Room() *world.Room {
	return g.zone.Rooms[g.hero.RoomID]
}

// Execute applies one input line. Look, help, and quit are handled first;
// then a held treasure ends the game before any other command runs.
//
// Postcondition: Game-level failures are reported in Output, never as errors.
func (g *Game) Execute(line string) Result {
	parsed := g.registry.Parse(line)
	g.logger.Debug("command received",
		zap.String("input", parsed.Input),
		zap.Bool("known", parsed.Known()),
	)

	if parsed.Known() {
		switch parsed.Command.Handler {
		case command.HandlerLook:
			return Result{Output: g.look(), Looked: true}
		case command.HandlerHelp:
			return Result{Output: g.render.Menu(g.registry.Commands())}
		case command.HandlerQuit:
			g.logger.Info("adventurer quit", zap.Int("moves", g.hero.Moves))
			return Result{Output: g.render.Farewell(), Outcome: Quit}
		}
	}

	if g.hero.HasTreasure {
		g.logger.Info("treasure recovered", zap.Int("moves", g.hero.Moves))
		return Result{Output: g.render.Victory(g.hero.Moves), Outcome: Victory}
	}

	if !parsed.Known() {
		return g.say(render.Failure, "Unknown command. Try 'n', 'e', 's', or 'w'.")
	}

	switch parsed.Command.Handler {
	case command.HandlerTalk:
		return g.talk()
	case command.HandlerFight:
		return g.fight()
	case command.HandlerTake:
		return g.take()
	case command.HandlerMove:
		return g.move(world.Direction(parsed.Command.Name))
	default:
		return g.say(render.Failure, "Unknown command. Try 'n', 'e', 's', or 'w'.")
	}
}

func (g *Game) say(tone render.Tone, text string) Result {
	return Result{Output: g.render.Message(tone, text)}
}

func (g *Game) look() string {
	room := g.Room()
	if g.scripts != nil {
		held := make([]string, 0, g.hero.Inventory.Len())
		for _, item := range g.hero.Inventory.Items() {
			held = append(held, string(item))
		}
		if text, ok := g.scripts.LookOverride(g.zone.ID, room.ID, held); ok {
			return g.render.Revelation(text)
		}
	}
	return g.render.Examine(room)
}

func (g *Game) talk() Result {
	occ := g.Room().Occupant
	if !occ.Present() {
		return g.say(render.Failure, "There is no one here to talk to.")
	}
	return g.say(render.Speech, occ.Dialogue)
}

func (g *Game) fight() Result {
	room := g.Room()
	occ := room.Occupant
	if !occ.CanFight() {
		return g.say(render.Failure, "There is nothing to fight here.")
	}
	if !g.hero.CanFight() {
		return g.say(render.Failure, fmt.Sprintf("You need a sword to fight the %s!", occ.Name))
	}
	occ.Defeat()
	g.hero.AddItem(inventory.Key)
	g.logger.Info("occupant defeated",
		zap.String("room", room.ID),
		zap.String("occupant", occ.Name),
	)
	out := g.render.Message(render.Success, fmt.Sprintf("You defeat the %s with your sword!", occ.Name)) +
		g.render.Message(render.Reward, "You found a key!")
	return Result{Output: out}
}

func (g *Game) take() Result {
	room := g.Room()
	switch {
	case room.Item == inventory.None:
		return g.say(render.Failure, "There is nothing to take here.")
	case room.Item == inventory.Treasure && !g.hero.Has(inventory.Key):
		return g.say(render.Failure, "The chest is locked! You need a key.")
	}

	item := room.TakeItem()
	g.hero.AddItem(item)
	g.logger.Info("item taken",
		zap.String("room", room.ID),
		zap.String("item", string(item)),
	)
	switch item {
	case inventory.Sword:
		return g.say(render.Success, "You take the sword. Now you can fight monsters!")
	case inventory.Key:
		return g.say(render.Reward, "You take the key.")
	default:
		return g.say(render.Success, "You have taken the treasure!")
	}
}

func (g *Game) move(dir world.Direction) Result {
	from := g.hero.RoomID
	to, ok := g.zone.Navigate(from, dir)
	if !ok {
		return g.say(render.Failure, "You cannot go that way. Try another direction.")
	}
	g.hero.MoveTo(to.ID)
	g.logger.Info("adventurer moved",
		zap.String("from", from),
		zap.String("to", to.ID),
		zap.String("direction", string(dir)),
		zap.Int("moves", g.hero.Moves),
	)
	return g.say(render.Motion, fmt.Sprintf("You move %s.", dir))
}
