package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dseza/portal/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:    "seed",
	Short:  "Fill empty content tables with the seed data",
	PreRun: loadConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := daemon.Seed(&cfg)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d news and %d resources\n", res.News, res.Resources)

		return err
	},
}
