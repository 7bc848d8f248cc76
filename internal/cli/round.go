package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/forecounter/internal/usecase"
)

// controllerCmd builds a command that applies one controller operation and
// prints the resulting hole line.
func controllerCmd(opts *rootOptions, use, short string, op func(*usecase.RoundController)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			op(s.ctrl)

			w := cmd.OutOrStdout()
			if s.ctrl.ShowSummary() {
				fmt.Fprintf(w, "Round complete: %d strokes\n\n", s.ctrl.TotalStrokes())
				printScorecard(w, s.ctrl.Round())
				return nil
			}
			printHoleLine(w, s.ctrl)
			return nil
		},
	}
}

func strokeCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "stroke",
		Short: "Add or remove a stroke on the current hole",
	}

	c.AddCommand(
		controllerCmd(opts, "add", "Add a stroke to the current hole",
			(*usecase.RoundController).IncrementStroke),
		controllerCmd(opts, "remove", "Remove a stroke from the current hole (never below zero)",
			(*usecase.RoundController).DecrementStroke),
	)
	return c
}

func nextCmd(opts *rootOptions) *cobra.Command {
	return controllerCmd(opts, "next", "Move to the next hole (after hole 18, show the scorecard)",
		(*usecase.RoundController).AdvanceHole)
}

func newRoundCmd(opts *rootOptions) *cobra.Command {
	return controllerCmd(opts, "new", "Discard the active round and start a new one",
		(*usecase.RoundController).NewRound)
}

func clearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the saved active round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			s.store.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Active round cleared")
			return nil
		},
	}
}
