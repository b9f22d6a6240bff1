package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/player"
	"github.com/mcoot/battleship-go/internal/storage/memory"
	"github.com/mcoot/battleship-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	engine := NewEngine(player.NewRegistry(s.random))
	s.controller = NewController(s.storage, engine, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// readyGame starts a two-human game with one ship each, awaiting the first attack
func (s *ControllerSuite) readyGame() model.GameID {
	game, err := s.controller.StartGame(s.ctx)
	s.Require().NoError(err)

	_, err = s.controller.InitializePlayer(s.ctx, game.ID, model.SlotFirst, model.PlayerKindHuman, "Alice", 20, 20, 1)
	s.Require().NoError(err)
	_, err = s.controller.InitializePlayer(s.ctx, game.ID, model.SlotSecond, model.PlayerKindHuman, "Bob", 20, 20, 1)
	s.Require().NoError(err)

	_, err = s.controller.PlaceShips(s.ctx, game.ID, model.SlotFirst, [][]model.Coordinate{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	})
	s.Require().NoError(err)
	_, err = s.controller.PlaceShips(s.ctx, game.ID, model.SlotSecond, [][]model.Coordinate{
		{{X: 7, Y: 7}},
	})
	s.Require().NoError(err)

	return game.ID
}

// StartGame tests

func (s *ControllerSuite) TestStartGameSavesGame() {
	game, err := s.controller.StartGame(s.ctx)
	s.Require().NoError(err)

	s.NotEmpty(game.ID)
	s.Equal(model.AwaitingPlayer(model.SlotFirst), game.State)
	s.Equal(s.clock.Now(), game.CreatedAt)

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Same(game, stored)
}

func (s *ControllerSuite) TestStartGameUsesDistinctIDs() {
	first, err := s.controller.StartGame(s.ctx)
	s.Require().NoError(err)
	second, err := s.controller.StartGame(s.ctx)
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)
}

// InitializePlayer tests

func (s *ControllerSuite) TestInitializePlayerAdvancesState() {
	game, err := s.controller.StartGame(s.ctx)
	s.Require().NoError(err)

	state, err := s.controller.InitializePlayer(s.ctx, game.ID, model.SlotFirst, model.PlayerKindHuman, "Alice", 20, 20, 5)
	s.Require().NoError(err)
	s.Equal(model.AwaitingPlayer(model.SlotSecond), state)

	stored, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("Alice", stored.Player(model.SlotFirst).Name)
	s.Equal(5, stored.Player(model.SlotFirst).FleetSize)
}

func (s *ControllerSuite) TestInitializePlayerUnknownGame() {
	_, err := s.controller.InitializePlayer(s.ctx, "missing", model.SlotFirst, model.PlayerKindHuman, "Alice", 20, 20, 5)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestInitializePlayerWrongSlot() {
	game, err := s.controller.StartGame(s.ctx)
	s.Require().NoError(err)

	state, err := s.controller.InitializePlayer(s.ctx, game.ID, model.SlotSecond, model.PlayerKindHuman, "Bob", 20, 20, 5)
	s.ErrorIs(err, model.ErrNotPlayerTurn)
	s.Equal(model.AwaitingPlayer(model.SlotFirst), state)
}

// PlaceShips tests

func (s *ControllerSuite) TestPlaceShipsStampsUpdatedAt() {
	game, err := s.controller.StartGame(s.ctx)
	s.Require().NoError(err)
	_, err = s.controller.InitializePlayer(s.ctx, game.ID, model.SlotFirst, model.PlayerKindComputer, "HAL", 10, 10, 5)
	s.Require().NoError(err)
	_, err = s.controller.InitializePlayer(s.ctx, game.ID, model.SlotSecond, model.PlayerKindHuman, "Bob", 10, 10, 5)
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	state, err := s.controller.PlaceShips(s.ctx, game.ID, model.SlotFirst, nil)
	s.Require().NoError(err)
	s.Equal(model.PlacingFleet(model.SlotSecond), state)

	stored, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(5, stored.Player(model.SlotFirst).Board.ShipCount())
	s.Equal(s.clock.Now(), stored.UpdatedAt)
	s.True(stored.UpdatedAt.After(stored.CreatedAt))
}

// Turn tests

func (s *ControllerSuite) TestTurnReturnsAttack() {
	gameID := s.readyGame()

	result, err := s.controller.Turn(s.ctx, gameID, model.SlotFirst, model.Coordinate{X: 3, Y: 3})
	s.Require().NoError(err)

	s.Equal(model.Coordinate{X: 3, Y: 3}, result.Attack.Target)
	s.Equal(model.StatusMiss, result.Attack.Result)
	s.Equal(model.SlotFirst, result.Attack.Attacker)
	s.Equal(model.InTurn(model.SlotSecond), result.State)
}

func (s *ControllerSuite) TestTurnOutOfOrder() {
	gameID := s.readyGame()

	_, err := s.controller.Turn(s.ctx, gameID, model.SlotSecond, model.Coordinate{X: 0, Y: 0})
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

func (s *ControllerSuite) TestTurnEndsGame() {
	gameID := s.readyGame()

	result, err := s.controller.Turn(s.ctx, gameID, model.SlotFirst, model.Coordinate{X: 7, Y: 7})
	s.Require().NoError(err)

	s.Equal(model.StatusSunk, result.Attack.Result)
	s.Equal(model.GameOver(model.SlotSecond), result.State)

	_, err = s.controller.Turn(s.ctx, gameID, model.SlotSecond, model.Coordinate{X: 0, Y: 0})
	s.ErrorIs(err, model.ErrUnexpectedCommand)
}

// NewGame tests

func (s *ControllerSuite) TestNewGameRestartsFinishedGame() {
	gameID := s.readyGame()
	_, err := s.controller.Turn(s.ctx, gameID, model.SlotFirst, model.Coordinate{X: 7, Y: 7})
	s.Require().NoError(err)

	state, err := s.controller.NewGame(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(model.AwaitingPlayer(model.SlotFirst), state)

	stored, err := s.controller.GetGame(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(gameID, stored.ID)
	s.Nil(stored.Player(model.SlotFirst))
	s.Empty(stored.Attacks)
}

func (s *ControllerSuite) TestNewGameMidMatchRejected() {
	gameID := s.readyGame()

	state, err := s.controller.NewGame(s.ctx, gameID)
	s.ErrorIs(err, model.ErrUnexpectedCommand)
	s.Equal(model.InTurn(model.SlotFirst), state)

	stored, err := s.controller.GetGame(s.ctx, gameID)
	s.Require().NoError(err)
	s.NotNil(stored.Player(model.SlotFirst))
}

// DeleteGame tests

func (s *ControllerSuite) TestDeleteGame() {
	gameID := s.readyGame()

	s.Require().NoError(s.controller.DeleteGame(s.ctx, gameID))

	_, err := s.controller.GetGame(s.ctx, gameID)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestDeleteUnknownGame() {
	err := s.controller.DeleteGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// CreateGameSummary tests

func (s *ControllerSuite) TestCreateGameSummary() {
	gameID := s.readyGame()
	_, err := s.controller.Turn(s.ctx, gameID, model.SlotFirst, model.Coordinate{X: 5, Y: 5})
	s.Require().NoError(err)
	_, err = s.controller.Turn(s.ctx, gameID, model.SlotSecond, model.Coordinate{X: 0, Y: 0})
	s.Require().NoError(err)
	_, err = s.controller.Turn(s.ctx, gameID, model.SlotFirst, model.Coordinate{X: 7, Y: 7})
	s.Require().NoError(err)

	sum, err := s.controller.CreateGameSummary(s.ctx, gameID)
	s.Require().NoError(err)

	s.Equal(model.SlotFirst, sum.Winner)
	s.Equal("Alice", sum.WinnerName)
	s.Equal("Bob", sum.LoserName)
	s.Equal(3, sum.Turns)
	s.Equal(2, sum.Players[model.SlotFirst].Shots)
	s.Equal(1, sum.Players[model.SlotSecond].Hits)
}

func (s *ControllerSuite) TestCreateGameSummaryBeforeGameOver() {
	gameID := s.readyGame()

	_, err := s.controller.CreateGameSummary(s.ctx, gameID)
	s.ErrorIs(err, model.ErrGameNotOver)
}
