package model

import "fmt"

// Coordinate identifies a square on a board
type Coordinate struct {
	X int `json:"x"` // Column, 0-indexed from the left
	Y int `json:"y"` // Row, 0-indexed from the top
}

// Add returns the coordinate offset by dx, dy
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
