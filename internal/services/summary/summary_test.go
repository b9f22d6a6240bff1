package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/battleship-go/internal/model"
)

func newFinishedGame(t *testing.T) *model.Game {
	t.Helper()

	alice, err := model.NewPlayer(model.PlayerKindHuman, "Alice", 5, 5, 1)
	require.NoError(t, err)
	bob, err := model.NewPlayer(model.PlayerKindComputer, "Bob", 5, 5, 1)
	require.NoError(t, err)
	_, err = alice.Board.PlaceShip([]model.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.NoError(t, err)
	_, err = bob.Board.PlaceShip([]model.Coordinate{{X: 4, Y: 4}})
	require.NoError(t, err)
	_, err = bob.Board.ReceiveAttack(model.Coordinate{X: 4, Y: 4})
	require.NoError(t, err)

	return &model.Game{
		ID:      "game-1",
		State:   model.GameOver(model.SlotSecond),
		Players: [2]*model.Player{alice, bob},
		Attacks: []model.AttackRecord{
			{Attacker: model.SlotFirst, Target: model.Coordinate{X: 2, Y: 2}, Result: model.StatusMiss},
			{Attacker: model.SlotSecond, Target: model.Coordinate{X: 0, Y: 0}, Result: model.StatusHit},
			{Attacker: model.SlotFirst, Target: model.Coordinate{X: 4, Y: 4}, Result: model.StatusSunk},
		},
		UpdatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSummarizeFinishedGame(t *testing.T) {
	g := newFinishedGame(t)

	sum, err := Summarize(g)
	require.NoError(t, err)

	assert.Equal(t, model.GameID("game-1"), sum.ID)
	assert.Equal(t, model.SlotFirst, sum.Winner)
	assert.Equal(t, "Alice", sum.WinnerName)
	assert.Equal(t, model.SlotSecond, sum.Loser)
	assert.Equal(t, "Bob", sum.LoserName)
	assert.Equal(t, 3, sum.Turns)
	assert.Equal(t, g.UpdatedAt, sum.CompletedAt)

	alice := sum.Players[model.SlotFirst]
	assert.Equal(t, 2, alice.Shots)
	assert.Equal(t, 1, alice.Hits)
	assert.Equal(t, 1, alice.ShipsSunk)
	assert.InDelta(t, 0.5, alice.Accuracy, 1e-9)

	bob := sum.Players[model.SlotSecond]
	assert.Equal(t, model.PlayerKindComputer, bob.Kind)
	assert.Equal(t, 1, bob.Shots)
	assert.Equal(t, 1, bob.Hits)
	assert.Equal(t, 0, bob.ShipsSunk)
}

func TestSummarizeRejectsUnfinishedGame(t *testing.T) {
	g := newFinishedGame(t)
	g.State = model.InTurn(model.SlotFirst)

	_, err := Summarize(g)
	assert.ErrorIs(t, err, model.ErrGameNotOver)
}
