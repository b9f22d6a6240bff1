package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/dependencies/clock"
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/services/bot"
	"github.com/mcoot/battleship-go/internal/services/game"
	"github.com/mcoot/battleship-go/internal/services/player"
	"github.com/mcoot/battleship-go/internal/storage"
	"github.com/mcoot/battleship-go/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Behaviors      *player.Registry
	Engine         *game.Engine
	GameController *game.Controller
	BotService     *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed makes computer players reproducible when Seeded is set.
	// Otherwise crypto/rand is used.
	Seed   uint64
	Seeded bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var rnd random.Random = random.New()
	if cfg.Seeded {
		rnd = random.NewSeeded(cfg.Seed)
	}

	return newWithDependencies(memory.New(), clock.New(), rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	behaviors := player.NewRegistry(rnd)
	engine := game.NewEngine(behaviors)
	gameController := game.NewController(store, engine, clk, logger)
	botService := bot.NewService(gameController, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Behaviors:      behaviors,
		Engine:         engine,
		GameController: gameController,
		BotService:     botService,
	}
}
