// Package player binds each player kind to its attack and fleet placement
// behaviour.
package player

import (
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/placement"
	"github.com/mcoot/battleship-go/internal/services/targeting"
)

// Behavior decides how a player attacks and lays out a fleet
type Behavior interface {
	// LaunchAttack picks the square to attack given the opponent's visible
	// board and the square requested by the caller, if any
	LaunchAttack(view model.BoardView, requested model.Coordinate) (model.Coordinate, error)
	// GenerateShipLocations returns a fleet layout, or nil if the layout
	// must be supplied from outside
	GenerateShipLocations(width, height int) ([][]model.Coordinate, error)
}

// Human passes the caller's choices through unchanged
type Human struct{}

// LaunchAttack returns the requested square
func (Human) LaunchAttack(_ model.BoardView, requested model.Coordinate) (model.Coordinate, error) {
	return requested, nil
}

// GenerateShipLocations returns nil; humans place their own ships
func (Human) GenerateShipLocations(_, _ int) ([][]model.Coordinate, error) {
	return nil, nil
}

// Computer uses the targeting engine and placement generator
type Computer struct {
	generator *placement.Generator
}

// NewComputer creates a Computer drawing placements from rnd
func NewComputer(rnd random.Random) *Computer {
	return &Computer{generator: placement.NewGenerator(rnd)}
}

// LaunchAttack ignores the requested square and picks its own target
func (c *Computer) LaunchAttack(view model.BoardView, _ model.Coordinate) (model.Coordinate, error) {
	return targeting.ChooseTarget(view)
}

// GenerateShipLocations lays out the default fleet at random
func (c *Computer) GenerateShipLocations(width, height int) ([][]model.Coordinate, error) {
	return c.generator.Generate(width, height)
}

// Registry resolves the behaviour for a player kind
type Registry struct {
	behaviors map[model.PlayerKind]Behavior
}

// NewRegistry creates a Registry with the human and computer behaviours
func NewRegistry(rnd random.Random) *Registry {
	return &Registry{
		behaviors: map[model.PlayerKind]Behavior{
			model.PlayerKindHuman:    Human{},
			model.PlayerKindComputer: NewComputer(rnd),
		},
	}
}

// ForKind returns the behaviour bound to kind
func (r *Registry) ForKind(kind model.PlayerKind) (Behavior, error) {
	b, ok := r.behaviors[kind]
	if !ok {
		return nil, model.ErrInvalidPlayerKind
	}
	return b, nil
}
