package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/exporter"
	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/schedule"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the Europe-friendly games to an ICS file",
	Long: `Export the filtered viewing schedule as an iCalendar file so the games
can be imported into a regular calendar app, without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		star, _ := cmd.Flags().GetString("star")
		regional, _ := cmd.Flags().GetBool("regional")
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")

		// Ensure it has .ics suffix
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		settings := schedule.DefaultSettings()
		settings.InputPath = input

		opts := schedule.Options{
			StarTeams:    schedule.SplitTeams(star),
			MarkRegional: regional,
		}

		games, err := schedule.LoadGames(settings, opts)
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}

		if len(games) == 0 {
			return fmt.Errorf("no games found in the viewing window")
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(games, settings, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d games to %s\n", len(games), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("star", "s", "", "Comma-separated team substrings to note as starred matchups")
	exportCmd.Flags().BoolP("regional", "r", false, "Note games involving a Canadian franchise")
	exportCmd.Flags().StringP("input", "i", schedule.DefaultInputPath, "Schedule CSV to read")
	exportCmd.Flags().StringP("output", "o", "europe-friendly-games.ics", "Output file path")
}
