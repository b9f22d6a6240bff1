package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/services/placement"
)

func newFleetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fleet",
		Short: "Print a randomly generated fleet layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp(0)

			ships, err := placement.NewGenerator(app.Random).Generate(cfg.Width, cfg.Height)
			if err != nil {
				return err
			}

			layout := FleetLayout{Width: cfg.Width, Height: cfg.Height}
			for _, coords := range ships {
				layout.Ships = append(layout.Ships, ShipLayout{Length: len(coords), Coordinates: coords})
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(layout)
			return nil
		},
	}
}
