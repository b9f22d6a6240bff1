package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/factory"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/bot"
	"github.com/mcoot/battleship-go/internal/services/placement"
)

func newPlayCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play against the computer, reading attacks as \"x,y\" lines",
		Long: `play starts a match against the computer. Your fleet is placed at random.
Each line read from stdin is one attack, written as "x,y" or "x y".
The match ends when either fleet is sunk or input runs out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return play(ctx, newApp(0), name, bufio.NewScanner(cmd.InOrStdin()), out)
		},
	}

	cmd.Flags().StringVar(&name, "name", "Player", "Your player name")

	return cmd
}

func play(ctx context.Context, app *factory.App, name string, in *bufio.Scanner, out *Output) error {
	gc := app.GameController

	g, err := gc.StartGame(ctx)
	if err != nil {
		return err
	}
	if _, err := gc.InitializePlayer(ctx, g.ID, model.SlotFirst, model.PlayerKindHuman, name, cfg.Width, cfg.Height, len(placement.DefaultFleet)); err != nil {
		return err
	}
	if _, err := app.BotService.AddComputerPlayer(ctx, g.ID, model.SlotSecond, cfg.Width, cfg.Height); err != nil {
		return err
	}

	fleet, err := placement.NewGenerator(app.Random).Generate(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	if _, err := gc.PlaceShips(ctx, g.ID, model.SlotFirst, fleet); err != nil {
		return err
	}
	if err := reportComputerActions(ctx, app, g.ID, out); err != nil {
		return err
	}

	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		target, err := parseCoordinate(line)
		if err != nil {
			out.PrintError(err)
			continue
		}

		result, err := gc.Turn(ctx, g.ID, model.SlotFirst, target)
		if err != nil {
			if model.IsIgnorable(err) || errors.Is(err, model.ErrOutOfBounds) {
				out.PrintError(err)
				continue
			}
			return err
		}
		out.Print(MoveReport{Player: name, Target: result.Attack.Target, Result: result.Attack.Result})

		if err := reportComputerActions(ctx, app, g.ID, out); err != nil {
			return err
		}
		if g, err = gc.GetGame(ctx, g.ID); err != nil {
			return err
		}
		if g.IsOver() {
			sum, err := gc.CreateGameSummary(ctx, g.ID)
			if err != nil {
				return err
			}
			out.Print(sum)
			return nil
		}
	}
	return in.Err()
}

// reportComputerActions lets the computer move and prints its attacks
func reportComputerActions(ctx context.Context, app *factory.App, gameID model.GameID, out *Output) error {
	actions, err := app.BotService.ProcessComputerActions(ctx, gameID)
	if err != nil {
		return err
	}

	g, err := app.GameController.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	for _, a := range actions {
		if a.Type != bot.ActionAttack {
			continue
		}
		out.Print(MoveReport{Player: g.Player(a.Slot).Name, Target: a.Target, Result: a.Result})
	}
	return nil
}

// parseCoordinate reads "x,y" or "x y"
func parseCoordinate(s string) (model.Coordinate, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return model.Coordinate{}, fmt.Errorf("invalid coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return model.Coordinate{X: x, Y: y}, nil
}
