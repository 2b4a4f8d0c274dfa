package app

import (
	"github.com/spf13/cobra"

	"github.com/dseza/portal/internal/config"
	"github.com/dseza/portal/internal/daemon"
	"github.com/dseza/portal/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(
		&browseStatic,
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)

	rootCmd.AddCommand(startCmd)
}

var (
	configPath string // Path to the configuration directory

	cfg          config.Config
	devMode      bool
	browseStatic bool

	startCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:    "start",
		Short:  "Start the portal web service",
		PreRun: loadConfig,
		RunE: func(_ *cobra.Command, _ []string) error {
			if browseStatic {
				cfg.Webserver.BrowseStatic = true
			}

			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)

// loadConfig reads the configuration and initializes logging. Failing here
// means the process cannot run at all.
func loadConfig(_ *cobra.Command, _ []string) {
	var err error

	if cfg, err = config.ReadConfig(configPath); err != nil {
		panic(err)
	}

	if devMode {
		cfg.DevMode = true
	}

	if err = logger.Init(cfg.Log); err != nil {
		panic(err)
	}
}
