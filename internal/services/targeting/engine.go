// Package targeting picks the computer player's next attack from the
// opponent's visible board.
package targeting

import (
	"github.com/mcoot/battleship-go/internal/model"
)

// direction is a unit step on the board
type direction struct {
	dx, dy int
}

// Up, down, left, right
var directions = [4]direction{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// candidate is an optional coordinate
type candidate struct {
	coord model.Coordinate
	ok    bool
}

func (c *candidate) setOnce(coord model.Coordinate) {
	if !c.ok {
		c.coord = coord
		c.ok = true
	}
}

// ChooseTarget returns the square to attack next. Squares are scanned
// column by column (x ascending, then y ascending) and chosen by priority:
//
//  1. a square between two collinear hits
//  2. a square next to a hit
//  3. the most isolated square, by product of open runs in each direction
//  4. the first untouched square
//
// Within a category the first square in scan order wins. Sunk squares are
// not hits; once a ship goes down its neighbours stop attracting fire.
func ChooseTarget(view model.BoardView) (model.Coordinate, error) {
	var defaultGuess, isolated, oneHitFollowUp, multiHitFollowUp candidate
	bestIsolation := 1

	for x := 0; x < view.Width(); x++ {
		for y := 0; y < view.Height(); y++ {
			coord := model.Coordinate{X: x, Y: y}
			if view[x][y] != model.StatusUntouched {
				continue
			}
			defaultGuess.setOnce(coord)

			if hitNeighbour, onLine := followUp(view, coord); hitNeighbour {
				oneHitFollowUp.setOnce(coord)
				if onLine {
					multiHitFollowUp.setOnce(coord)
				}
				continue
			}

			if score := IsolationScore(view, coord); score > bestIsolation {
				bestIsolation = score
				isolated = candidate{coord: coord, ok: true}
			}
		}
	}

	for _, c := range []candidate{multiHitFollowUp, oneHitFollowUp, isolated, defaultGuess} {
		if c.ok {
			return c.coord, nil
		}
	}
	return model.Coordinate{}, model.ErrNoTargetAvailable
}

// followUp reports whether coord touches a hit square, and whether one of
// those hits continues in a straight line to a second hit.
func followUp(view model.BoardView, coord model.Coordinate) (hitNeighbour, onLine bool) {
	for _, d := range directions {
		if status, ok := view.Status(coord.Add(d.dx, d.dy)); !ok || status != model.StatusHit {
			continue
		}
		hitNeighbour = true
		if status, ok := view.Status(coord.Add(2*d.dx, 2*d.dy)); ok && status == model.StatusHit {
			onLine = true
		}
	}
	return hitNeighbour, onLine
}

// IsolationScore multiplies the lengths of the untouched runs starting at
// coord in each of the four directions. Each run counts coord itself, so
// the minimum score is 1. Off-board squares end a run.
func IsolationScore(view model.BoardView, coord model.Coordinate) int {
	score := 1
	for _, d := range directions {
		score *= runLength(view, coord, d)
	}
	return score
}

func runLength(view model.BoardView, start model.Coordinate, d direction) int {
	length := 1
	for next := start.Add(d.dx, d.dy); ; next = next.Add(d.dx, d.dy) {
		status, ok := view.Status(next)
		if !ok || status != model.StatusUntouched {
			return length
		}
		length++
	}
}
