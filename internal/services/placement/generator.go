// Package placement generates random, non-overlapping fleet layouts for
// computer players.
package placement

import (
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// DefaultFleet is the fleet manifest every player places, in placement order
var DefaultFleet = []int{5, 4, 3, 3, 2}

// Orientation is the axis a ship extends along from its start square
type Orientation int

const (
	Horizontal Orientation = iota // Along X
	Vertical                      // Along Y
)

// Starts holds the valid start squares for each orientation
type Starts struct {
	Horizontal []model.Coordinate
	Vertical   []model.Coordinate
}

// For returns the starts for the given orientation
func (s Starts) For(o Orientation) []model.Coordinate {
	if o == Horizontal {
		return s.Horizontal
	}
	return s.Vertical
}

// Generator places fleets using a replaceable random source
type Generator struct {
	random random.Random
}

// NewGenerator creates a new Generator
func NewGenerator(rnd random.Random) *Generator {
	return &Generator{random: rnd}
}

// Generate lays out DefaultFleet on a width x height board
func (g *Generator) Generate(width, height int) ([][]model.Coordinate, error) {
	return g.GenerateFleet(width, height, DefaultFleet)
}

// GenerateFleet lays out ships of the given lengths, in order. For each ship
// an orientation is drawn first, then a start among that orientation's valid
// starts. If the drawn orientation has no room the other one is used.
func (g *Generator) GenerateFleet(width, height int, lengths []int) ([][]model.Coordinate, error) {
	reserved := make(map[model.Coordinate]bool)
	fleet := make([][]model.Coordinate, 0, len(lengths))

	for _, length := range lengths {
		if length < 1 {
			return nil, model.ErrInvalidLength
		}
		starts := ValidStarts(width, height, length, reserved)

		orientation := Orientation(g.random.Intn(2))
		candidates := starts.For(orientation)
		if len(candidates) == 0 {
			orientation = 1 - orientation
			candidates = starts.For(orientation)
		}
		if len(candidates) == 0 {
			return nil, model.ErrFleetDoesNotFit
		}

		start := candidates[g.random.Intn(len(candidates))]
		ship := Layout(start, length, orientation)
		for _, c := range ship {
			reserved[c] = true
		}
		fleet = append(fleet, ship)
	}

	return fleet, nil
}

// ValidStarts lists every start square from which a ship of the given length
// fits on the board without touching a reserved square. A start is offered
// only when start+length <= the board dimension along its axis.
func ValidStarts(width, height, length int, reserved map[model.Coordinate]bool) Starts {
	var starts Starts
	if length < 1 {
		return starts
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			start := model.Coordinate{X: x, Y: y}
			if x+length <= width && runIsFree(start, length, Horizontal, reserved) {
				starts.Horizontal = append(starts.Horizontal, start)
			}
			if y+length <= height && runIsFree(start, length, Vertical, reserved) {
				starts.Vertical = append(starts.Vertical, start)
			}
		}
	}
	return starts
}

func runIsFree(start model.Coordinate, length int, o Orientation, reserved map[model.Coordinate]bool) bool {
	for _, c := range Layout(start, length, o) {
		if reserved[c] {
			return false
		}
	}
	return true
}

// Layout returns the squares of a ship of the given length from start
func Layout(start model.Coordinate, length int, o Orientation) []model.Coordinate {
	coords := make([]model.Coordinate, length)
	for i := range coords {
		if o == Horizontal {
			coords[i] = start.Add(i, 0)
		} else {
			coords[i] = start.Add(0, i)
		}
	}
	return coords
}
