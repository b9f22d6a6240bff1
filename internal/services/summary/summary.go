// Package summary reports the outcome of finished games.
package summary

import (
	"github.com/mcoot/battleship-go/internal/model"
)

// Summarize builds the record of a finished game
func Summarize(g *model.Game) (*model.GameSummary, error) {
	loser, ok := g.Loser()
	if !ok {
		return nil, model.ErrGameNotOver
	}
	winner := loser.Other()

	players := make(map[model.Slot]model.PlayerMatchStats, 2)
	for _, slot := range []model.Slot{model.SlotFirst, model.SlotSecond} {
		players[slot] = PlayerStats(g, slot)
	}

	return &model.GameSummary{
		ID:          g.ID,
		Winner:      winner,
		WinnerName:  players[winner].Name,
		Loser:       loser,
		LoserName:   players[loser].Name,
		Turns:       g.TurnCount(),
		Players:     players,
		CompletedAt: g.UpdatedAt,
	}, nil
}

// PlayerStats counts the attacks made by the player in slot
func PlayerStats(g *model.Game, slot model.Slot) model.PlayerMatchStats {
	var stats model.PlayerMatchStats
	if p := g.Player(slot); p != nil {
		stats.Name = p.Name
		stats.Kind = p.Kind
	}
	if opp := g.Opponent(slot); opp != nil {
		stats.ShipsSunk = opp.Board.SunkCount()
	}

	for _, a := range g.Attacks {
		if a.Attacker != slot {
			continue
		}
		stats.Shots++
		if a.Result == model.StatusHit || a.Result == model.StatusSunk {
			stats.Hits++
		}
	}
	if stats.Shots > 0 {
		stats.Accuracy = float64(stats.Hits) / float64(stats.Shots)
	}
	return stats
}
