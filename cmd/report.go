package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/config"
	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/report"
	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/schedule"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the Europe-friendly games report",
	Long: `Read the season schedule CSV, keep the games starting between 13:00 and
22:59 Paris time, and write the annotated Markdown report. Saved highlight and
star lists from 'nhlemea config' are used when the flags are not given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		highlight, _ := cmd.Flags().GetString("highlight")
		star, _ := cmd.Flags().GetString("star")
		weekend, _ := cmd.Flags().GetBool("weekend")
		regional, _ := cmd.Flags().GetBool("regional")
		calendar, _ := cmd.Flags().GetBool("calendar")
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")

		settings := schedule.DefaultSettings()
		settings.InputPath = input
		settings.OutputPath = output

		opts := schedule.Options{
			HighlightTeams: schedule.SplitTeams(highlight),
			StarTeams:      schedule.SplitTeams(star),
			MarkWeekend:    weekend,
			MarkRegional:   regional,
		}
		applySavedDefaults(cmd, &opts)

		games, err := schedule.LoadGames(settings, opts)
		if err != nil {
			return err
		}

		var doc string
		if calendar {
			doc = report.RenderCalendar(games, settings, opts)
		} else {
			doc = report.RenderList(games, settings, opts)
		}

		if err := os.WriteFile(settings.OutputPath, []byte(doc), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		fmt.Println(doc)
		return nil
	},
}

// applySavedDefaults fills in team lists and display toggles from
// ~/.nhlemea.json for any option the user did not pass explicitly.
func applySavedDefaults(cmd *cobra.Command, opts *schedule.Options) {
	cfg, err := config.Load()
	if err != nil || cfg == nil {
		return
	}

	if !cmd.Flags().Changed("highlight") && len(cfg.HighlightTeams) > 0 {
		opts.HighlightTeams = cfg.HighlightTeams
	}
	if !cmd.Flags().Changed("star") && len(cfg.StarTeams) > 0 {
		opts.StarTeams = cfg.StarTeams
	}
	if !cmd.Flags().Changed("weekend") && cfg.MarkWeekend {
		opts.MarkWeekend = true
	}
	if !cmd.Flags().Changed("regional") && cfg.MarkRegional {
		opts.MarkRegional = true
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringP("highlight", "H", "", "Comma-separated team substrings to highlight in bold (e.g. \"Winnipeg Jets,leafs\")")
	reportCmd.Flags().StringP("star", "s", "", "Comma-separated team substrings to mark with a star")
	reportCmd.Flags().BoolP("weekend", "w", false, "Italicize games falling on Friday or Saturday (Paris time)")
	reportCmd.Flags().BoolP("regional", "r", false, "Flag games involving a Canadian franchise")
	reportCmd.Flags().BoolP("calendar", "c", false, "Render a monthly calendar grid instead of a flat list")
	reportCmd.Flags().StringP("input", "i", schedule.DefaultInputPath, "Schedule CSV to read")
	reportCmd.Flags().StringP("output", "o", schedule.DefaultOutputPath, "Report file to write")
}
