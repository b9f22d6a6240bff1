package model

import (
	"fmt"
	"time"
)

// GameID uniquely identifies a game session
type GameID string

// Slot identifies one of the two seats in a game
type Slot int

const (
	SlotFirst Slot = iota
	SlotSecond
)

// Other returns the opposing slot
func (s Slot) Other() Slot {
	if s == SlotFirst {
		return SlotSecond
	}
	return SlotFirst
}

// IsValid returns true for the two known slots
func (s Slot) IsValid() bool {
	return s == SlotFirst || s == SlotSecond
}

func (s Slot) String() string {
	switch s {
	case SlotFirst:
		return "first"
	case SlotSecond:
		return "second"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// ParseSlot converts "first"/"second" (or "1"/"2") into a Slot
func ParseSlot(s string) (Slot, error) {
	switch s {
	case "first", "1":
		return SlotFirst, nil
	case "second", "2":
		return SlotSecond, nil
	default:
		return 0, ErrInvalidSlot
	}
}

// Phase is the stage of the game's state machine
type Phase string

const (
	PhaseNewGame        Phase = "new_game"
	PhaseAwaitingPlayer Phase = "awaiting_player" // Slot: player to register next
	PhasePlacingFleet   Phase = "placing_fleet"   // Slot: player to place next
	PhaseInTurn         Phase = "in_turn"         // Slot: player to attack next
	PhaseGameOver       Phase = "game_over"       // Slot: player who lost every ship
)

// State is what the game expects next. Slot is meaningful for every phase
// except PhaseNewGame.
type State struct {
	Phase Phase `json:"phase"`
	Slot  Slot  `json:"slot"`
}

// NewGameState is the initial state
func NewGameState() State {
	return State{Phase: PhaseNewGame}
}

// AwaitingPlayer is the state waiting for the given slot to register
func AwaitingPlayer(slot Slot) State {
	return State{Phase: PhaseAwaitingPlayer, Slot: slot}
}

// PlacingFleet is the state waiting for the given slot to place ships
func PlacingFleet(slot Slot) State {
	return State{Phase: PhasePlacingFleet, Slot: slot}
}

// InTurn is the state waiting for the given slot to attack
func InTurn(slot Slot) State {
	return State{Phase: PhaseInTurn, Slot: slot}
}

// GameOver is the terminal state naming the losing slot
func GameOver(loser Slot) State {
	return State{Phase: PhaseGameOver, Slot: loser}
}

func (s State) String() string {
	if s.Phase == PhaseNewGame {
		return string(s.Phase)
	}
	return fmt.Sprintf("%s(%s)", s.Phase, s.Slot)
}

// AttackRecord is one resolved attack
type AttackRecord struct {
	Attacker Slot       `json:"attacker"`
	Target   Coordinate `json:"target"`
	Result   HitStatus  `json:"result"`
}

// Game is a single match between two players
type Game struct {
	ID      GameID         `json:"id"`
	State   State          `json:"state"`
	Players [2]*Player     `json:"players"`
	Attacks []AttackRecord `json:"attacks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Player returns the player in the given slot, or nil if not registered
func (g *Game) Player(slot Slot) *Player {
	if !slot.IsValid() {
		return nil
	}
	return g.Players[slot]
}

// Opponent returns the player facing the given slot
func (g *Game) Opponent(slot Slot) *Player {
	return g.Player(slot.Other())
}

// IsOver returns true once a player has lost every ship
func (g *Game) IsOver() bool {
	return g.State.Phase == PhaseGameOver
}

// Loser returns the slot that lost, if the game is over
func (g *Game) Loser() (Slot, bool) {
	if !g.IsOver() {
		return 0, false
	}
	return g.State.Slot, true
}

// Winner returns the slot that won, if the game is over
func (g *Game) Winner() (Slot, bool) {
	loser, ok := g.Loser()
	if !ok {
		return 0, false
	}
	return loser.Other(), true
}

// TurnCount returns the number of attacks resolved so far
func (g *Game) TurnCount() int {
	return len(g.Attacks)
}

// GameSummary is a lightweight record of a finished game
type GameSummary struct {
	ID          GameID                    `json:"id"`
	Winner      Slot                      `json:"winner"`
	WinnerName  string                    `json:"winner_name"`
	Loser       Slot                      `json:"loser"`
	LoserName   string                    `json:"loser_name"`
	Turns       int                       `json:"turns"`
	Players     map[Slot]PlayerMatchStats `json:"players"`
	CompletedAt time.Time                 `json:"completed_at"`
}

// PlayerMatchStats are the attack statistics of one player in a match
type PlayerMatchStats struct {
	Name      string     `json:"name"`
	Kind      PlayerKind `json:"kind"`
	Shots     int        `json:"shots"`
	Hits      int        `json:"hits"` // Attacks resulting in hit or sunk
	ShipsSunk int        `json:"ships_sunk"`
	Accuracy  float64    `json:"accuracy"`
}
