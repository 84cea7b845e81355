package cmd

import (
	"github.com/spf13/cobra"

	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to pick teams to highlight or star, choose the layout, and generate the report interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
