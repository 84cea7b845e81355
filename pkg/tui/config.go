package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/config"
	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/schedule"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Saved Highlight Teams", "highlight"),
						huh.NewOption("Set Saved Star Teams", "star"),
						huh.NewOption("Set Display Toggles", "toggles"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "highlight" {
			err = runSetSavedTeamsTUI(cfg, "highlight")
		} else if action == "star" {
			err = runSetSavedTeamsTUI(cfg, "star")
		} else if action == "toggles" {
			err = runSetTogglesTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.nhlemea.json) ---"))
			if len(cfg.HighlightTeams) == 0 {
				fmt.Println("Highlight Teams: Not set")
			} else {
				fmt.Printf("Highlight Teams: %s\n", strings.Join(cfg.HighlightTeams, ", "))
			}
			if len(cfg.StarTeams) == 0 {
				fmt.Println("Star Teams: Not set")
			} else {
				fmt.Printf("Star Teams: %s\n", strings.Join(cfg.StarTeams, ", "))
			}
			fmt.Printf("Mark Weekend: %t\n", cfg.MarkWeekend)
			fmt.Printf("Mark Regional: %t\n", cfg.MarkRegional)
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

// runSetSavedTeamsTUI edits one of the saved team lists. Teams are offered
// from the current schedule when it is readable, otherwise entered by hand.
func runSetSavedTeamsTUI(cfg *config.AppConfig, which string) error {
	existing := cfg.HighlightTeams
	title := "Select your default highlight teams"
	if which == "star" {
		existing = cfg.StarTeams
		title = "Select your default star teams"
	}

	teams, err := loadTeamNames(schedule.DefaultSettings())
	if err != nil || len(teams) == 0 {
		// No schedule on hand; fall back to free-form entry
		var input string
		inputForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(title).
					Description("Comma-separated team name substrings, e.g. \"Winnipeg Jets, leafs\"").
					Value(&input),
			),
		).WithTheme(GetTheme())

		if err := inputForm.Run(); err != nil {
			return err
		}

		return saveTeamList(cfg, which, schedule.SplitTeams(input))
	}

	existingMap := make(map[string]bool)
	for _, t := range existing {
		existingMap[t] = true
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(title).
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(teamOptions(teams, existingMap)...).
				Value(&selected).
				Filterable(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	return saveTeamList(cfg, which, selected)
}

func saveTeamList(cfg *config.AppConfig, which string, teams []string) error {
	if which == "star" {
		cfg.StarTeams = teams
	} else {
		cfg.HighlightTeams = teams
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved %d %s teams.\n", len(teams), which)))
	return nil
}

func runSetTogglesTUI(cfg *config.AppConfig) error {
	markWeekend := cfg.MarkWeekend
	markRegional := cfg.MarkRegional

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Italicize Friday and Saturday games by default?").
				Value(&markWeekend),

			huh.NewConfirm().
				Title("Flag Canadian franchise games by default?").
				Value(&markRegional),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.MarkWeekend = markWeekend
	cfg.MarkRegional = markRegional

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Display toggles saved.\n"))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for nhlemea").
				Description("Select a curated style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Ice Blue", colorBlock("39")), "39"),
					huh.NewOption(fmt.Sprintf("%s Goal-Light Red", colorBlock("196")), "196"),
					huh.NewOption(fmt.Sprintf("%s Rink-Board White", colorBlock("255")), "255"),
					huh.NewOption(fmt.Sprintf("%s Forum Purple", colorBlock("99")), "99"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}
