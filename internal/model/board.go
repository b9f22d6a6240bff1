package model

// Board is a player's grid of squares and the fleet placed on it
type Board struct {
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Squares [][]Square `json:"squares"` // Column-major: Squares[x][y]
	Ships   []*Ship    `json:"ships"`
}

// BoardView is the hit-status-only view of a board shown to its opponent.
// It is column-major like Board.Squares.
type BoardView [][]HitStatus

// NewBoard creates an empty board of the given dimensions
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidBoardSize
	}
	squares := make([][]Square, width)
	for x := range squares {
		squares[x] = make([]Square, height)
		for y := range squares[x] {
			squares[x][y] = Square{Status: StatusUntouched}
		}
	}
	return &Board{
		Width:   width,
		Height:  height,
		Squares: squares,
		Ships:   []*Ship{},
	}, nil
}

// InBounds returns true if the coordinate is on the board
func (b *Board) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Square returns the square at c. Out-of-range access is a programming
// error and panics; callers handling external input check InBounds first.
func (b *Board) Square(c Coordinate) Square {
	if !b.InBounds(c) {
		panic("board: coordinate " + c.String() + " out of range")
	}
	return b.Squares[c.X][c.Y]
}

// PlaceShip puts a new ship of len(coords) on the given squares
func (b *Board) PlaceShip(coords []Coordinate) (*Ship, error) {
	if err := b.validatePlacement(coords, nil); err != nil {
		return nil, err
	}
	return b.placeValidated(coords), nil
}

// PlaceShips places a whole fleet. Either every ship is placed or, on error,
// the board is left untouched.
func (b *Board) PlaceShips(fleet [][]Coordinate) error {
	reserved := make(map[Coordinate]bool)
	for _, coords := range fleet {
		if err := b.validatePlacement(coords, reserved); err != nil {
			return err
		}
	}
	for _, coords := range fleet {
		b.placeValidated(coords)
	}
	return nil
}

// validatePlacement checks coords against the board and, if non-nil, against
// squares reserved by earlier ships of the same fleet. Accepted coords are
// added to reserved.
func (b *Board) validatePlacement(coords []Coordinate, reserved map[Coordinate]bool) error {
	if len(coords) < 1 {
		return ErrInvalidLength
	}
	seen := make(map[Coordinate]bool, len(coords))
	for _, c := range coords {
		if !b.InBounds(c) {
			return ErrOutOfBounds
		}
		if seen[c] || reserved[c] || b.Squares[c.X][c.Y].IsOccupied() {
			return ErrOverlappingShip
		}
		seen[c] = true
	}
	for c := range seen {
		if reserved != nil {
			reserved[c] = true
		}
	}
	return nil
}

func (b *Board) placeValidated(coords []Coordinate) *Ship {
	ship := &Ship{Length: len(coords)}
	idx := len(b.Ships)
	for _, c := range coords {
		i := idx
		b.Squares[c.X][c.Y].ShipIndex = &i
	}
	b.Ships = append(b.Ships, ship)
	return ship
}

// ReceiveAttack resolves an attack on c and returns the resulting status of
// that square: hit, miss, or sunk if the attack finished off a ship.
func (b *Board) ReceiveAttack(c Coordinate) (HitStatus, error) {
	if b.GameOver() {
		return "", ErrGameAlreadyOver
	}
	if !b.InBounds(c) {
		return "", ErrOutOfBounds
	}
	square := &b.Squares[c.X][c.Y]
	if !square.IsUntouched() {
		return "", ErrSquareAlreadyAttacked
	}

	idx, occupied := square.Occupant()
	if !occupied {
		square.Status = StatusMiss
		return StatusMiss, nil
	}

	b.Ships[idx].Hit()
	square.Status = StatusHit
	b.promoteSunkSquares()
	return square.Status, nil
}

// promoteSunkSquares marks every hit square of a sunk ship as sunk
func (b *Board) promoteSunkSquares() {
	for x := range b.Squares {
		for y := range b.Squares[x] {
			sq := &b.Squares[x][y]
			idx, ok := sq.Occupant()
			if ok && sq.Status == StatusHit && b.Ships[idx].IsSunk() {
				sq.Status = StatusSunk
			}
		}
	}
}

// GameOver returns true when every ship on the board is sunk
func (b *Board) GameOver() bool {
	for _, ship := range b.Ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

// ShipCount returns the number of ships placed
func (b *Board) ShipCount() int {
	return len(b.Ships)
}

// SunkCount returns the number of ships sunk
func (b *Board) SunkCount() int {
	count := 0
	for _, ship := range b.Ships {
		if ship.IsSunk() {
			count++
		}
	}
	return count
}

// View returns the statuses of every square, hiding unsunk ship locations
func (b *Board) View() BoardView {
	view := make(BoardView, b.Width)
	for x := range b.Squares {
		view[x] = make([]HitStatus, b.Height)
		for y := range b.Squares[x] {
			view[x][y] = b.Squares[x][y].Status
		}
	}
	return view
}

// OwnerView returns a copy of every square including ship occupancy
func (b *Board) OwnerView() [][]Square {
	result := make([][]Square, b.Width)
	for x := range b.Squares {
		result[x] = make([]Square, b.Height)
		for y, sq := range b.Squares[x] {
			if idx, ok := sq.Occupant(); ok {
				sq.ShipIndex = &idx
			}
			result[x][y] = sq
		}
	}
	return result
}

// Width returns the number of columns in the view
func (v BoardView) Width() int {
	return len(v)
}

// Height returns the number of rows in the view
func (v BoardView) Height() int {
	if len(v) == 0 {
		return 0
	}
	return len(v[0])
}

// InBounds returns true if the coordinate is within the view
func (v BoardView) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < v.Width() && c.Y >= 0 && c.Y < v.Height()
}

// Status returns the status at c, or false if c is off the board
func (v BoardView) Status(c Coordinate) (HitStatus, bool) {
	if !v.InBounds(c) {
		return "", false
	}
	return v[c.X][c.Y], true
}
