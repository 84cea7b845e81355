package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/config"
	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/exporter"
	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/report"
	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/schedule"
)

// RunReportTUI runs the interactive flow for picking teams and generating the report
func RunReportTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the Europe-friendly NHL schedule builder!"))

	cfg, _ := config.Load()
	settings := schedule.DefaultSettings()

	teams, err := loadTeamNames(settings)
	if err != nil {
		return err
	}

	if len(teams) == 0 {
		fmt.Println(errorStyle.Render("No games found in the viewing window!"))
		return nil
	}

	var highlightTeams, starTeams []string
	var markWeekend, markRegional, calendarLayout bool
	var outputFile string

	savedHighlight := make(map[string]bool)
	savedStar := make(map[string]bool)
	if cfg != nil {
		for _, t := range cfg.HighlightTeams {
			savedHighlight[t] = true
		}
		for _, t := range cfg.StarTeams {
			savedStar[t] = true
		}
		markWeekend = cfg.MarkWeekend
		markRegional = cfg.MarkRegional
	}

	reportForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select teams to highlight in bold").
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(teamOptions(teams, savedHighlight)...).
				Value(&highlightTeams).
				Filterable(true).
				Height(12),

			huh.NewMultiSelect[string]().
				Title("Select teams to mark with a star").
				Description("Space = toggle, Enter = confirm").
				Options(teamOptions(teams, savedStar)...).
				Value(&starTeams).
				Filterable(true).
				Height(12),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Italicize Friday and Saturday games?").
				Value(&markWeekend),

			huh.NewConfirm().
				Title("Flag games involving Canadian franchises?").
				Value(&markRegional),

			huh.NewConfirm().
				Title("Render as a monthly calendar grid?").
				Value(&calendarLayout),

			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	// Defaults
	outputFile = settings.OutputPath

	if err := reportForm.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".md") {
		outputFile += ".md"
	}
	settings.OutputPath = outputFile

	opts := schedule.Options{
		HighlightTeams: highlightTeams,
		StarTeams:      starTeams,
		MarkWeekend:    markWeekend,
		MarkRegional:   markRegional,
	}

	var games []schedule.Game
	var loadErr error

	_ = spinner.New().
		Title("Filtering the season schedule...").
		Action(func() {
			games, loadErr = schedule.LoadGames(settings, opts)
		}).
		Run()

	if loadErr != nil {
		return loadErr
	}

	var doc string
	if calendarLayout {
		doc = report.RenderCalendar(games, settings, opts)
	} else {
		doc = report.RenderList(games, settings, opts)
	}

	if err := os.WriteFile(settings.OutputPath, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Println(doc)
	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Wrote %d games to %s", len(games), settings.OutputPath)))

	return offerToSaveDefaults(cfg, opts)
}

// RunExportTUI runs the interactive flow for exporting the viewing schedule to ICS
func RunExportTUI() error {
	settings := schedule.DefaultSettings()

	teams, err := loadTeamNames(settings)
	if err != nil {
		return err
	}

	if len(teams) == 0 {
		fmt.Println(errorStyle.Render("No games found in the viewing window!"))
		return nil
	}

	var starTeams []string
	var markRegional bool
	var outputFile string

	exportForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select teams to note as starred matchups").
				Description("Space = toggle, Enter = confirm").
				Options(teamOptions(teams, nil)...).
				Value(&starTeams).
				Filterable(true).
				Height(12),

			huh.NewConfirm().
				Title("Note games involving Canadian franchises?").
				Value(&markRegional),

			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	// Defaults
	outputFile = "europe-friendly-games.ics"

	if err := exportForm.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	opts := schedule.Options{
		StarTeams:    starTeams,
		MarkRegional: markRegional,
	}

	var games []schedule.Game
	var loadErr error

	_ = spinner.New().
		Title("Filtering the season schedule...").
		Action(func() {
			games, loadErr = schedule.LoadGames(settings, opts)
		}).
		Run()

	if loadErr != nil {
		return loadErr
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(games, settings, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d games to %s", len(games), outputFile)))
	return nil
}

// loadTeamNames parses the schedule once without annotations to discover which
// teams actually appear in the viewing window.
func loadTeamNames(settings schedule.Settings) ([]string, error) {
	var games []schedule.Game
	var err error

	_ = spinner.New().
		Title("Reading the season schedule...").
		Action(func() {
			games, err = schedule.LoadGames(settings, schedule.Options{})
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	seen := make(map[string]bool)
	var teams []string
	for _, g := range games {
		for _, name := range []string{g.AwayTeam, g.HomeTeam} {
			if !seen[name] {
				seen[name] = true
				teams = append(teams, name)
			}
		}
	}

	sort.Strings(teams)
	return teams, nil
}

func teamOptions(teams []string, selected map[string]bool) []huh.Option[string] {
	var options []huh.Option[string]
	for _, name := range teams {
		opt := huh.NewOption(name, name)
		if selected[name] {
			opt = opt.Selected(true)
		}
		options = append(options, opt)
	}
	return options
}

// offerToSaveDefaults asks whether the chosen annotations should become the
// saved defaults for future plain 'nhlemea report' runs.
func offerToSaveDefaults(cfg *config.AppConfig, opts schedule.Options) error {
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	var save bool
	confirmForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save these selections as your defaults?").
				Value(&save),
		),
	).WithTheme(GetTheme())

	if err := confirmForm.Run(); err != nil {
		return err
	}

	if !save {
		return nil
	}

	cfg.HighlightTeams = opts.HighlightTeams
	cfg.StarTeams = opts.StarTeams
	cfg.MarkWeekend = opts.MarkWeekend
	cfg.MarkRegional = opts.MarkRegional

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("✅ Defaults saved.\n"))
	return nil
}
