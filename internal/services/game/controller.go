package game

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/battleship-go/internal/dependencies/clock"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/summary"
	"github.com/mcoot/battleship-go/internal/storage"
)

// TurnResult describes a resolved attack and what the game expects next
type TurnResult struct {
	Attack model.AttackRecord `json:"attack"`
	State  model.State        `json:"state"`
}

// Controller runs games held in storage through the Engine
type Controller struct {
	storage storage.Storage
	engine  *Engine
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	engine *Engine,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		engine:  engine,
		clock:   clock,
		logger:  logger.With(slog.String("component", "game-controller")),
	}
}

// StartGame creates a game and starts it, leaving it awaiting the first player
func (c *Controller) StartGame(ctx context.Context) (*model.Game, error) {
	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(uuid.NewString()),
		State:     model.NewGameState(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := c.engine.Advance(game, StartGame{}); err != nil {
		return nil, err
	}
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("game_id", string(game.ID)),
		slog.String("state", game.State.String()),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// DeleteGame discards a game session
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}
	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// InitializePlayer registers the player for a slot
func (c *Controller) InitializePlayer(
	ctx context.Context,
	gameID model.GameID,
	slot model.Slot,
	kind model.PlayerKind,
	name string,
	width, height, fleetSize int,
) (model.State, error) {
	cmd := InitializePlayer{
		Slot:      slot,
		Kind:      kind,
		Name:      name,
		Width:     width,
		Height:    height,
		FleetSize: fleetSize,
	}
	state, _, err := c.apply(ctx, gameID, cmd)
	if err != nil {
		return state, err
	}

	c.logger.Info("player initialized",
		slog.String("game_id", string(gameID)),
		slog.String("slot", slot.String()),
		slog.String("kind", string(kind)),
		slog.String("name", name),
		slog.Int("width", width),
		slog.Int("height", height),
	)
	return state, nil
}

// PlaceShips places a slot's fleet. Computer players may pass no locations
// to have a fleet generated.
func (c *Controller) PlaceShips(ctx context.Context, gameID model.GameID, slot model.Slot, locations [][]model.Coordinate) (model.State, error) {
	state, game, err := c.apply(ctx, gameID, PlaceShips{Slot: slot, Locations: locations})
	if err != nil {
		return state, err
	}

	c.logger.Info("fleet placed",
		slog.String("game_id", string(gameID)),
		slog.String("slot", slot.String()),
		slog.Int("ships", game.Player(slot).Board.ShipCount()),
	)
	return state, nil
}

// Turn has the slot attack its opponent. Target is ignored for computer players.
func (c *Controller) Turn(ctx context.Context, gameID model.GameID, slot model.Slot, target model.Coordinate) (*TurnResult, error) {
	state, game, err := c.apply(ctx, gameID, Turn{Slot: slot, Target: target})
	if err != nil {
		return nil, err
	}

	attack := game.Attacks[len(game.Attacks)-1]
	c.logger.Debug("attack resolved",
		slog.String("game_id", string(gameID)),
		slog.String("attacker", slot.String()),
		slog.String("target", attack.Target.String()),
		slog.String("result", string(attack.Result)),
	)
	if game.IsOver() {
		winner, _ := game.Winner()
		c.logger.Info("game over",
			slog.String("game_id", string(gameID)),
			slog.String("winner", winner.String()),
			slog.Int("turns", game.TurnCount()),
		)
	}

	return &TurnResult{Attack: attack, State: state}, nil
}

// NewGame resets a finished game and starts it again under the same ID
func (c *Controller) NewGame(ctx context.Context, gameID model.GameID) (model.State, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return model.State{}, err
	}
	if game.State.Phase != model.PhaseGameOver {
		return game.State, model.ErrUnexpectedCommand
	}

	// Reset on a copy so a failure part way leaves the stored game intact
	next := *game
	if _, err := c.engine.Advance(&next, NewGame{}); err != nil {
		return game.State, err
	}
	if _, err := c.engine.Advance(&next, StartGame{}); err != nil {
		return game.State, err
	}
	next.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, &next); err != nil {
		return game.State, err
	}

	c.logger.Info("game restarted", slog.String("game_id", string(gameID)))
	return next.State, nil
}

// CreateGameSummary summarises a finished game
func (c *Controller) CreateGameSummary(ctx context.Context, gameID model.GameID) (*model.GameSummary, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return summary.Summarize(game)
}

// apply loads a game, advances it and saves it back
func (c *Controller) apply(ctx context.Context, gameID model.GameID, cmd Command) (model.State, *model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return model.State{}, nil, err
	}

	state, err := c.engine.Advance(game, cmd)
	if err != nil {
		return state, game, err
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
		return state, game, err
	}
	return state, game, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	StartGame(ctx context.Context) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	InitializePlayer(ctx context.Context, gameID model.GameID, slot model.Slot, kind model.PlayerKind, name string, width, height, fleetSize int) (model.State, error)
	PlaceShips(ctx context.Context, gameID model.GameID, slot model.Slot, locations [][]model.Coordinate) (model.State, error)
	Turn(ctx context.Context, gameID model.GameID, slot model.Slot, target model.Coordinate) (*TurnResult, error)
	NewGame(ctx context.Context, gameID model.GameID) (model.State, error)
	CreateGameSummary(ctx context.Context, gameID model.GameID) (*model.GameSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)
