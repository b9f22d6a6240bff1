package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/bot"
	"github.com/mcoot/battleship-go/internal/services/game"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: two humans play a full match on 20x20 boards
func (s *IntegrationSuite) TestHumanMatchFlow() {
	gc := s.app.GameController

	// Step 1: Start and register both players
	g, err := gc.StartGame(s.ctx)
	s.Require().NoError(err)
	_, err = gc.InitializePlayer(s.ctx, g.ID, model.SlotFirst, model.PlayerKindHuman, "Alice", 20, 20, 1)
	s.Require().NoError(err)
	_, err = gc.InitializePlayer(s.ctx, g.ID, model.SlotSecond, model.PlayerKindHuman, "Bob", 20, 20, 1)
	s.Require().NoError(err)

	// Step 2: Place fleets
	aliceShip := []model.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	_, err = gc.PlaceShips(s.ctx, g.ID, model.SlotFirst, [][]model.Coordinate{aliceShip})
	s.Require().NoError(err)
	state, err := gc.PlaceShips(s.ctx, g.ID, model.SlotSecond, [][]model.Coordinate{
		{{X: 15, Y: 15}, {X: 15, Y: 16}},
	})
	s.Require().NoError(err)
	s.Equal(model.InTurn(model.SlotFirst), state)

	// Step 3: Alternate turns; Alice misses while Bob walks along her ship
	misses := []model.Coordinate{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 10, Y: 12}}
	var result *game.TurnResult
	for i := range aliceShip {
		_, err = gc.Turn(s.ctx, g.ID, model.SlotFirst, misses[i])
		s.Require().NoError(err)
		r, err := gc.Turn(s.ctx, g.ID, model.SlotSecond, aliceShip[i])
		s.Require().NoError(err)
		result = r
	}

	// Step 4: Game over with every square of Alice's ship sunk
	s.Equal(model.GameOver(model.SlotFirst), result.State)
	stored, err := gc.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	for _, c := range aliceShip {
		s.Equal(model.StatusSunk, stored.Player(model.SlotFirst).Board.Square(c).Status)
	}

	// Step 5: Summary
	sum, err := gc.CreateGameSummary(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(model.SlotSecond, sum.Winner)
	s.Equal("Bob", sum.WinnerName)
	s.Equal(6, sum.Turns)
	s.InDelta(1.0, sum.Players[model.SlotSecond].Accuracy, 1e-9)
	s.InDelta(0.0, sum.Players[model.SlotFirst].Accuracy, 1e-9)
}

// Test: two computer players finish a match with no outside input
func (s *IntegrationSuite) TestComputerMatchFlow() {
	g, err := s.app.GameController.StartGame(s.ctx)
	s.Require().NoError(err)
	_, err = s.app.BotService.AddComputerPlayer(s.ctx, g.ID, model.SlotFirst, 10, 10)
	s.Require().NoError(err)
	_, err = s.app.BotService.AddComputerPlayer(s.ctx, g.ID, model.SlotSecond, 10, 10)
	s.Require().NoError(err)

	actions, err := s.app.BotService.ProcessComputerActions(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Require().NotEmpty(actions)
	s.Equal(bot.ActionGameOver, actions[len(actions)-1].Type)

	sum, err := s.app.GameController.CreateGameSummary(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(5, sum.Players[sum.Winner].ShipsSunk)
	s.Less(sum.Players[sum.Loser].ShipsSunk, 5)
}

// Test: a finished game can be replayed under the same ID
func (s *IntegrationSuite) TestReplayAfterGameOver() {
	g, err := s.app.GameController.StartGame(s.ctx)
	s.Require().NoError(err)
	_, err = s.app.BotService.AddComputerPlayer(s.ctx, g.ID, model.SlotFirst, 10, 10)
	s.Require().NoError(err)
	_, err = s.app.BotService.AddComputerPlayer(s.ctx, g.ID, model.SlotSecond, 10, 10)
	s.Require().NoError(err)
	_, err = s.app.BotService.ProcessComputerActions(s.ctx, g.ID)
	s.Require().NoError(err)

	state, err := s.app.GameController.NewGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(model.AwaitingPlayer(model.SlotFirst), state)

	ids, err := s.app.Storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.GameID{g.ID}, ids)
}

// Test: the production factory wires a seeded source
func (s *IntegrationSuite) TestNewSeeded() {
	app := New(Config{Seed: 7, Seeded: true})
	s.NotNil(app.GameController)
	s.NotNil(app.BotService)

	first := New(Config{Seed: 7, Seeded: true}).Random.Intn(1000)
	s.Equal(first, app.Random.Intn(1000))
}
