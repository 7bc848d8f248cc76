package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/forecounter/internal/infra/config"
	"github.com/aalvaropc/forecounter/internal/infra/fshome"
	"github.com/aalvaropc/forecounter/internal/usecase"
)

func initCmd(opts *rootOptions) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create the data home with a default forecounter.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, err := config.ResolveHome(opts.home)
			if err != nil {
				return err
			}

			uc := usecase.NewInitHome(fshome.NewInitializer())
			if err := uc.Execute(home, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized ForeCounter home at %s\n", home)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite existing forecounter.yaml")
	return c
}
