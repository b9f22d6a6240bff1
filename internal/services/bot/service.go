package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/game"
	"github.com/mcoot/battleship-go/internal/services/placement"
)

// MaxBotIterations is a safety limit for the ProcessComputerActions loop
const MaxBotIterations = 10000

// ActionType represents the type of action a computer player took
type ActionType string

const (
	ActionPlaceFleet ActionType = "place_fleet"
	ActionAttack     ActionType = "attack"
	ActionGameOver   ActionType = "game_over"
)

// Action represents a single step taken during ProcessComputerActions
type Action struct {
	Type   ActionType       `json:"type"`
	Slot   model.Slot       `json:"slot"`
	Target model.Coordinate `json:"target"`
	Result model.HitStatus  `json:"result,omitempty"`
	State  model.State      `json:"state"`
}

// Service plays the moves of computer players
type Service struct {
	gameController game.ControllerInterface
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(gameController game.ControllerInterface, logger *slog.Logger) *Service {
	return &Service{
		gameController: gameController,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// AddComputerPlayer registers a computer player in the given slot, named
// after its seat, with the default fleet size
func (s *Service) AddComputerPlayer(ctx context.Context, gameID model.GameID, slot model.Slot, width, height int) (model.State, error) {
	name := fmt.Sprintf("Computer %d", int(slot)+1)
	state, err := s.gameController.InitializePlayer(ctx, gameID, slot, model.PlayerKindComputer, name, width, height, len(placement.DefaultFleet))
	if err != nil {
		return state, err
	}

	s.logger.Info("computer player added",
		slog.String("game_id", string(gameID)),
		slog.String("slot", slot.String()),
		slog.String("name", name),
	)
	return state, nil
}

// ProcessComputerActions performs moves for as long as the game is waiting on
// a computer player. It stops when a human must act or the game is over and
// returns every action taken.
func (s *Service) ProcessComputerActions(ctx context.Context, gameID model.GameID) ([]Action, error) {
	var actions []Action

	for range MaxBotIterations {
		if err := ctx.Err(); err != nil {
			return actions, err
		}

		g, err := s.gameController.GetGame(ctx, gameID)
		if err != nil {
			return actions, err
		}

		if g.IsOver() {
			if len(actions) > 0 {
				actions = append(actions, Action{Type: ActionGameOver, Slot: g.State.Slot, State: g.State})
			}
			return actions, nil
		}

		switch g.State.Phase {
		case model.PhasePlacingFleet, model.PhaseInTurn:
		default:
			return actions, nil // Waiting on registration
		}

		slot := g.State.Slot
		if p := g.Player(slot); p == nil || !p.IsComputer() {
			return actions, nil // Human's move
		}

		if g.State.Phase == model.PhasePlacingFleet {
			state, err := s.gameController.PlaceShips(ctx, gameID, slot, nil)
			if err != nil {
				return actions, err
			}
			actions = append(actions, Action{Type: ActionPlaceFleet, Slot: slot, State: state})
			continue
		}

		result, err := s.gameController.Turn(ctx, gameID, slot, model.Coordinate{})
		if err != nil {
			return actions, err
		}
		actions = append(actions, Action{
			Type:   ActionAttack,
			Slot:   slot,
			Target: result.Attack.Target,
			Result: result.Attack.Result,
			State:  result.State,
		})
	}

	s.logger.Warn("computer action limit reached",
		slog.String("game_id", string(gameID)),
		slog.Int("actions", len(actions)),
	)
	return actions, nil
}
