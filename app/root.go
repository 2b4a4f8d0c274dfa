// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "portal",
	Short: "DSEZA portal serves the Da Nang hi-tech park and industrial zones website",
	Long: `DSEZA portal serves the public website of the Da Nang hi-tech park and
industrial zones authority: navigation with mega menus, the news section
with its category filter and the media resources section.`,
	Args: cobra.OnlyValidArgs,
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "Directory holding main.toml")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable dev mode")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
