package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dseza/portal/internal/config"
)

func init() { //nolint: gochecknoinits
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "Dump as JSON, the format of the environment override")

	configCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(configCmd)
}

var (
	dumpJSON bool

	configCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "config",
		Short: "Inspect the configuration",
	}

	dumpCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "dump",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.ReadConfig(configPath)
			if err != nil {
				return err
			}

			dump := config.DumpConfig
			if dumpJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&c)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
)
