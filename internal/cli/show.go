package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/forecounter/internal/domain"
	"github.com/aalvaropc/forecounter/internal/usecase"
)

func showCmd(opts *rootOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show",
		Short: "Print the active round and its scorecard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			return printRound(cmd.OutOrStdout(), s.ctrl, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

// roundView is the JSON shape of `show --format json`.
type roundView struct {
	CurrentHole    int          `json:"currentHole"`
	CurrentStrokes int          `json:"currentStrokes"`
	TotalStrokes   int          `json:"totalStrokes"`
	Round          domain.Round `json:"round"`
}

func printRound(w io.Writer, ctrl *usecase.RoundController, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(roundView{
			CurrentHole:    ctrl.CurrentHoleNumber(),
			CurrentStrokes: ctrl.CurrentStrokes(),
			TotalStrokes:   ctrl.TotalStrokes(),
			Round:          ctrl.Round(),
		})
	case "pretty", "":
		printPrettyRound(w, ctrl)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyRound(w io.Writer, ctrl *usecase.RoundController) {
	round := ctrl.Round()

	fmt.Fprintf(w, "Started: %s\n", round.StartedAt.Local().Format(time.RFC3339))
	printHoleLine(w, ctrl)
	fmt.Fprintln(w)
	printScorecard(w, round)
}

func printHoleLine(w io.Writer, ctrl *usecase.RoundController) {
	fmt.Fprintf(w, "Hole %d of %d: %d strokes (total %d)\n",
		ctrl.CurrentHoleNumber(), domain.MaxHoles, ctrl.CurrentStrokes(), ctrl.TotalStrokes())
}

func printScorecard(w io.Writer, round domain.Round) {
	for _, h := range round.Holes {
		fmt.Fprintf(w, "  Hole %-3d %3d\n", h.HoleNumber, h.Strokes)
	}
	fmt.Fprintf(w, "  %-8s %3d\n", "Total", round.TotalStrokes())
}
