package storage

import (
	"context"

	"github.com/mcoot/battleship-go/internal/model"
)

// Storage keeps the live game sessions addressed by ID
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGames(ctx context.Context) ([]model.GameID, error)
}
