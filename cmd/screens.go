package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/restodesk/internal/api"
	"github.com/zjrosen/restodesk/internal/presentation"
	"github.com/zjrosen/restodesk/internal/screens"
)

var screensJSON bool

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List the master screens and whether the session can open them",
	Long: `List every master screen with its tenant scope, and whether the configured
session ids are enough to open it.

Examples:
  restodesk screens
  restodesk screens --json | jq '.[] | select(.available) | .name'`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		list := presentation.FromEntries(screens.New().List(), api.SessionFromConfig(cfg.Session), cfg)
		f := presentation.NewFormatter(cmd.OutOrStdout())
		if screensJSON {
			return f.FormatJSON(list)
		}
		return f.FormatScreens(list)
	},
}

func init() {
	screensCmd.Flags().BoolVar(&screensJSON, "json", false, "print JSON")
	rootCmd.AddCommand(screensCmd)
}
