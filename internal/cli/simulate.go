package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/battleship-go/internal/model"
)

func newSimulateCmd() *cobra.Command {
	var games, parallel int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play computer-vs-computer matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("games must be at least 1")
			}
			if parallel < 1 {
				return fmt.Errorf("parallel must be at least 1")
			}

			report, err := simulate(cmd.Context(), games, parallel)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(report)
			return nil
		},
	}

	cmd.Flags().IntVarP(&games, "games", "n", 1, "Number of matches to play")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "Matches to play at once")

	return cmd
}

// simulate plays the requested number of matches, each in its own app so
// seeded runs stay reproducible regardless of scheduling
func simulate(ctx context.Context, games, parallel int) (SimulationReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	summaries := make([]*model.GameSummary, games)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)
	for i := range games {
		group.Go(func() error {
			sum, err := simulateOne(ctx, uint64(i))
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			summaries[i] = sum
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return SimulationReport{}, err
	}

	report := SimulationReport{Games: summaries}
	totalTurns := 0
	for _, s := range summaries {
		if s.Winner == model.SlotFirst {
			report.FirstWins++
		} else {
			report.SecondWins++
		}
		totalTurns += s.Turns
	}
	report.AverageTurns = float64(totalTurns) / float64(games)
	return report, nil
}

func simulateOne(ctx context.Context, offset uint64) (*model.GameSummary, error) {
	app := newApp(offset)

	g, err := app.GameController.StartGame(ctx)
	if err != nil {
		return nil, err
	}
	for _, slot := range []model.Slot{model.SlotFirst, model.SlotSecond} {
		if _, err := app.BotService.AddComputerPlayer(ctx, g.ID, slot, cfg.Width, cfg.Height); err != nil {
			return nil, err
		}
	}
	if _, err := app.BotService.ProcessComputerActions(ctx, g.ID); err != nil {
		return nil, err
	}

	return app.GameController.CreateGameSummary(ctx, g.ID)
}
