package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/forecounter/internal/infra/logger"
	"github.com/aalvaropc/forecounter/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", userMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "forecounter",
		Short:         "ForeCounter: count golf strokes hole by hole",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			return tui.Run(tui.Deps{
				Controller: s.ctrl,
				Backend:    string(s.cfg.Store.Backend),
				LogPath:    logger.Path(),
				Logger:     s.log,
				Debug:      s.cfg.Logging.Debug,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.home, "home", "", "data home (default $FORECOUNTER_HOME or the user config dir)")
	cmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "store backend: file|bolt|sqlite|memory")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to <home>/logs/forecounter.log")

	cmd.AddCommand(
		showCmd(opts),
		strokeCmd(opts),
		nextCmd(opts),
		newRoundCmd(opts),
		clearCmd(opts),
		queryCmd(opts),
		initCmd(opts),
		versionCmd(),
	)
	return cmd
}
