package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/battleship-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SimulationReport:
		o.printSimulationReport(v)
	case FleetLayout:
		o.printFleetLayout(v)
	case MoveReport:
		o.printMoveReport(v)
	case *model.GameSummary:
		o.printSummary(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SimulationReport is the result of the simulate command
type SimulationReport struct {
	Games        []*model.GameSummary `json:"games"`
	FirstWins    int                  `json:"first_wins"`
	SecondWins   int                  `json:"second_wins"`
	AverageTurns float64              `json:"average_turns"`
}

// FleetLayout is the result of the fleet command
type FleetLayout struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Ships  []ShipLayout `json:"ships"`
}

// ShipLayout is one ship of a FleetLayout
type ShipLayout struct {
	Length      int                `json:"length"`
	Coordinates []model.Coordinate `json:"coordinates"`
}

// MoveReport describes one attack during play
type MoveReport struct {
	Player string           `json:"player"`
	Target model.Coordinate `json:"target"`
	Result model.HitStatus  `json:"result"`
}

func (o *Output) printSimulationReport(r SimulationReport) {
	for _, s := range r.Games {
		o.printSummary(s)
	}
	fmt.Fprintf(o.out, "\nGames: %d\n", len(r.Games))
	fmt.Fprintf(o.out, "First player wins: %d\n", r.FirstWins)
	fmt.Fprintf(o.out, "Second player wins: %d\n", r.SecondWins)
	fmt.Fprintf(o.out, "Average turns: %.1f\n", r.AverageTurns)
}

func (o *Output) printSummary(s *model.GameSummary) {
	fmt.Fprintf(o.out, "Game %s: %s (%s) beat %s in %d turns\n",
		s.ID, s.WinnerName, s.Winner, s.LoserName, s.Turns)
	for _, slot := range []model.Slot{model.SlotFirst, model.SlotSecond} {
		p, ok := s.Players[slot]
		if !ok {
			continue
		}
		fmt.Fprintf(o.out, "  %s: %d shots, %d hits, %d ships sunk, %.0f%% accuracy\n",
			p.Name, p.Shots, p.Hits, p.ShipsSunk, p.Accuracy*100)
	}
}

func (o *Output) printFleetLayout(f FleetLayout) {
	fmt.Fprintf(o.out, "Board: %dx%d\n", f.Width, f.Height)
	for i, ship := range f.Ships {
		coords := make([]string, len(ship.Coordinates))
		for j, c := range ship.Coordinates {
			coords[j] = c.String()
		}
		fmt.Fprintf(o.out, "Ship %d (length %d): %s\n", i+1, ship.Length, strings.Join(coords, " "))
	}
}

func (o *Output) printMoveReport(m MoveReport) {
	fmt.Fprintf(o.out, "%s attacked %s: %s\n", m.Player, m.Target, m.Result)
}
