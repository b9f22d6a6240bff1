package model

import "errors"

// Common errors used across the application
var (
	// Ship errors
	ErrInvalidLength = errors.New("ship length must be a positive integer")

	// Board errors
	ErrInvalidBoardSize      = errors.New("board dimensions must be positive")
	ErrOutOfBounds           = errors.New("coordinate is outside the board")
	ErrOverlappingShip       = errors.New("ship overlaps an occupied square")
	ErrGameAlreadyOver       = errors.New("all ships on this board are already sunk")
	ErrSquareAlreadyAttacked = errors.New("square has already been attacked")
	ErrEmptyFleet            = errors.New("fleet must contain at least one ship")

	// Player errors
	ErrInvalidPlayerKind = errors.New("invalid player kind")
	ErrInvalidSlot       = errors.New("invalid player slot")

	// Game errors
	ErrGameNotFound      = errors.New("game not found")
	ErrUnexpectedCommand = errors.New("command is not valid in the current phase")
	ErrNotPlayerTurn     = errors.New("not this player's turn")
	ErrGameNotOver       = errors.New("game is not over")

	// Computer player errors
	ErrNoTargetAvailable = errors.New("no untouched square left to target")
	ErrFleetDoesNotFit   = errors.New("fleet does not fit on the board")
)

// IsIgnorable reports whether err is an expected rejection of a stray attack,
// such as a repeated click or a click after the match has ended. Every other
// error is a real fault.
func IsIgnorable(err error) bool {
	return errors.Is(err, ErrGameAlreadyOver) || errors.Is(err, ErrSquareAlreadyAttacked)
}
