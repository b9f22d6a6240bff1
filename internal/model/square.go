package model

// HitStatus is the attack lifecycle of a square
type HitStatus string

const (
	StatusUntouched HitStatus = "untouched"
	StatusHit       HitStatus = "hit"
	StatusMiss      HitStatus = "miss"
	StatusSunk      HitStatus = "sunk" // Every square of a fully damaged ship
)

// Square is one cell of a board
type Square struct {
	Status HitStatus `json:"status"`
	// ShipIndex points into the owning board's ship list; nil means open water
	ShipIndex *int `json:"ship_index,omitempty"`
}

// Occupant returns the index of the ship on this square, if any
func (s Square) Occupant() (int, bool) {
	if s.ShipIndex == nil {
		return 0, false
	}
	return *s.ShipIndex, true
}

// IsOccupied returns true if a ship sits on this square
func (s Square) IsOccupied() bool {
	return s.ShipIndex != nil
}

// IsUntouched returns true if the square has never been attacked
func (s Square) IsUntouched() bool {
	return s.Status == StatusUntouched
}
