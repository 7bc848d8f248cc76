package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/forecounter/internal/usecase/query"
)

func queryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "query <jsonpath>",
		Short:   "Evaluate a JSONPath expression against the active round",
		Example: "  forecounter query '$.holes[?(@.strokes > 4)].holeNumber'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			out, err := query.Evaluate(s.ctrl.Round(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
