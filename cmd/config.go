package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/config"
	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/schedule"
	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage nhlemea configuration",
	Long:  "View or edit your local configuration settings (like saved highlight and star teams).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false

		if cmd.Flags().Changed("set-highlight") {
			value, _ := cmd.Flags().GetString("set-highlight")
			cfg.HighlightTeams = schedule.SplitTeams(value)
			changed = true
		}
		if cmd.Flags().Changed("set-star") {
			value, _ := cmd.Flags().GetString("set-star")
			cfg.StarTeams = schedule.SplitTeams(value)
			changed = true
		}
		if cmd.Flags().Changed("accent") {
			value, _ := cmd.Flags().GetString("accent")
			cfg.AccentColor = value
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved.")
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-highlight", "", "Save a default comma-separated highlight list")
	configCmd.Flags().String("set-star", "", "Save a default comma-separated star list")
	configCmd.Flags().String("accent", "", "Save a terminal accent color (ANSI number or hex)")
}
