package game

import (
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/player"
)

// Command is an input to the game state machine
type Command interface {
	command()
}

// StartGame begins a session from the new_game state
type StartGame struct{}

// InitializePlayer registers the player for Slot and allocates their board
type InitializePlayer struct {
	Slot      model.Slot
	Kind      model.PlayerKind
	Name      string
	Width     int
	Height    int
	FleetSize int
}

// PlaceShips places Slot's fleet. Computer players may leave Locations empty
// to have a layout generated.
type PlaceShips struct {
	Slot      model.Slot
	Locations [][]model.Coordinate
}

// Turn has Slot attack the opponent. Target is used as-is for humans and
// ignored for computers.
type Turn struct {
	Slot   model.Slot
	Target model.Coordinate
}

// NewGame resets a finished game back to new_game
type NewGame struct{}

func (StartGame) command()        {}
func (InitializePlayer) command() {}
func (PlaceShips) command()       {}
func (Turn) command()             {}
func (NewGame) command()          {}

// Engine applies commands to games. It holds no game state of its own.
type Engine struct {
	behaviors *player.Registry
}

// NewEngine creates a new Engine
func NewEngine(behaviors *player.Registry) *Engine {
	return &Engine{behaviors: behaviors}
}

// Advance applies cmd to g and returns the state the game now expects.
// A command that is not valid in the current state is rejected with
// ErrUnexpectedCommand, or ErrNotPlayerTurn if only the slot is wrong.
// On any error g is left unchanged.
func (e *Engine) Advance(g *model.Game, cmd Command) (model.State, error) {
	var err error
	switch c := cmd.(type) {
	case StartGame:
		err = e.startGame(g)
	case InitializePlayer:
		err = e.initializePlayer(g, c)
	case PlaceShips:
		err = e.placeShips(g, c)
	case Turn:
		err = e.turn(g, c)
	case NewGame:
		err = e.newGame(g)
	default:
		err = model.ErrUnexpectedCommand
	}
	return g.State, err
}

// expect checks that g is waiting on slot in the given phase
func expect(g *model.Game, phase model.Phase, slot model.Slot) error {
	if g.State.Phase != phase {
		return model.ErrUnexpectedCommand
	}
	if g.State.Slot != slot {
		return model.ErrNotPlayerTurn
	}
	return nil
}

func (e *Engine) startGame(g *model.Game) error {
	if g.State.Phase != model.PhaseNewGame {
		return model.ErrUnexpectedCommand
	}
	g.Players = [2]*model.Player{}
	g.Attacks = nil
	g.State = model.AwaitingPlayer(model.SlotFirst)
	return nil
}

func (e *Engine) initializePlayer(g *model.Game, cmd InitializePlayer) error {
	if err := expect(g, model.PhaseAwaitingPlayer, cmd.Slot); err != nil {
		return err
	}
	p, err := model.NewPlayer(cmd.Kind, cmd.Name, cmd.Width, cmd.Height, cmd.FleetSize)
	if err != nil {
		return err
	}

	g.Players[cmd.Slot] = p
	if cmd.Slot == model.SlotFirst {
		g.State = model.AwaitingPlayer(model.SlotSecond)
	} else {
		g.State = model.PlacingFleet(model.SlotFirst)
	}
	return nil
}

func (e *Engine) placeShips(g *model.Game, cmd PlaceShips) error {
	if err := expect(g, model.PhasePlacingFleet, cmd.Slot); err != nil {
		return err
	}
	p := g.Player(cmd.Slot)

	locations := cmd.Locations
	if len(locations) == 0 && p.IsComputer() {
		behavior, err := e.behaviors.ForKind(p.Kind)
		if err != nil {
			return err
		}
		if locations, err = behavior.GenerateShipLocations(p.Board.Width, p.Board.Height); err != nil {
			return err
		}
	}
	if len(locations) == 0 {
		return model.ErrEmptyFleet
	}
	if err := p.Board.PlaceShips(locations); err != nil {
		return err
	}

	if cmd.Slot == model.SlotFirst {
		g.State = model.PlacingFleet(model.SlotSecond)
	} else {
		g.State = model.InTurn(model.SlotFirst)
	}
	return nil
}

func (e *Engine) turn(g *model.Game, cmd Turn) error {
	if err := expect(g, model.PhaseInTurn, cmd.Slot); err != nil {
		return err
	}
	attacker := g.Player(cmd.Slot)
	opponent := g.Opponent(cmd.Slot)

	behavior, err := e.behaviors.ForKind(attacker.Kind)
	if err != nil {
		return err
	}
	target, err := behavior.LaunchAttack(opponent.Board.View(), cmd.Target)
	if err != nil {
		return err
	}
	result, err := opponent.Board.ReceiveAttack(target)
	if err != nil {
		return err
	}

	g.Attacks = append(g.Attacks, model.AttackRecord{
		Attacker: cmd.Slot,
		Target:   target,
		Result:   result,
	})
	if opponent.Board.GameOver() {
		g.State = model.GameOver(cmd.Slot.Other())
	} else {
		g.State = model.InTurn(cmd.Slot.Other())
	}
	return nil
}

func (e *Engine) newGame(g *model.Game) error {
	if g.State.Phase != model.PhaseGameOver {
		return model.ErrUnexpectedCommand
	}
	g.Players = [2]*model.Player{}
	g.Attacks = nil
	g.State = model.NewGameState()
	return nil
}
