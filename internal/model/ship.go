package model

// Ship is a sinkable unit occupying Length squares
type Ship struct {
	Length     int `json:"length"`
	HitCounter int `json:"hit_counter"`
}

// NewShip creates an undamaged ship of the given length
func NewShip(length int) (*Ship, error) {
	if length < 1 {
		return nil, ErrInvalidLength
	}
	return &Ship{Length: length}, nil
}

// Hit registers damage. It returns false once the ship is already sunk,
// in which case the counter is left unchanged.
func (s *Ship) Hit() bool {
	if s.HitCounter < s.Length {
		s.HitCounter++
		return true
	}
	return false
}

// IsSunk returns true once the ship has taken a hit on every square
func (s *Ship) IsSunk() bool {
	return s.HitCounter >= s.Length
}
