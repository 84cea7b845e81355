package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// datetimeLayout matches the published schedule format, e.g. "10/08/2025 7:00 PM"
const datetimeLayout = "1/2/2006 3:04 PM"

// LoadGames reads the schedule CSV at s.InputPath and returns the filtered,
// annotated games in file order.
func LoadGames(s Settings, opts Options) ([]Game, error) {
	f, err := os.Open(s.InputPath)
	if err != nil {
		return nil, fmt.Errorf("could not open schedule file: %w", err)
	}
	defer f.Close()

	return ParseGames(f, s, opts)
}

// ParseGames parses schedule CSV data from r. The first row is a header and is
// skipped. Rows that are blank, truncated, or fail to parse are dropped
// silently; the source table contains placeholder rows and that is expected.
func ParseGames(r io.Reader, s Settings, opts Options) ([]Game, error) {
	source, err := time.LoadLocation(s.SourceZone)
	if err != nil {
		return nil, fmt.Errorf("could not load source timezone %q: %w", s.SourceZone, err)
	}
	target, err := time.LoadLocation(s.TargetZone)
	if err != nil {
		return nil, fmt.Errorf("could not load target timezone %q: %w", s.TargetZone, err)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading schedule CSV: %w", err)
	}

	var games []Game
	for i, row := range records {
		if i == 0 {
			continue // header row
		}
		game, ok := parseRow(row, source, target, s, opts)
		if !ok {
			continue
		}
		games = append(games, game)
	}

	return games, nil
}

// parseRow converts one CSV row into a Game. The boolean is false for rows
// that are malformed or whose converted start falls outside the viewing
// window; both are discarded the same way, never reported as errors.
func parseRow(row []string, source, target *time.Location, s Settings, opts Options) (Game, bool) {
	if len(row) < 6 {
		return Game{}, false
	}

	// Columns A, C, D, F: date, local time, away team, home team
	dateStr := strings.TrimSpace(row[0])
	timeStr := strings.TrimSpace(row[2])
	awayTeam := strings.TrimSpace(row[3])
	homeTeam := strings.TrimSpace(row[5])

	if dateStr == "" || timeStr == "" || awayTeam == "" || homeTeam == "" {
		return Game{}, false
	}

	sourceTime, err := time.ParseInLocation(datetimeLayout, dateStr+" "+timeStr, source)
	if err != nil {
		return Game{}, false
	}

	targetTime := sourceTime.In(target)
	if targetTime.Hour() < s.WindowStartHour || targetTime.Hour() > s.WindowEndHour {
		return Game{}, false
	}

	weekday := targetTime.Weekday()

	return Game{
		SourceTime:  sourceTime,
		TargetTime:  targetTime,
		AwayTeam:    awayTeam,
		HomeTeam:    homeTeam,
		Highlighted: matchesAnyTerm(awayTeam, homeTeam, opts.HighlightTeams),
		Starred:     matchesAnyTerm(awayTeam, homeTeam, opts.StarTeams),
		Weekend:     opts.MarkWeekend && (weekday == time.Friday || weekday == time.Saturday),
		Regional:    opts.MarkRegional && involvesRegionalTeam(awayTeam, homeTeam, s.RegionalTeams),
	}, true
}

// matchesAnyTerm reports whether any term appears in either team name under
// Unicode case folding, so "leafs" matches "Toronto Maple Leafs".
func matchesAnyTerm(awayTeam, homeTeam string, terms []string) bool {
	if len(terms) == 0 {
		return false
	}

	fold := cases.Fold()
	away := fold.String(awayTeam)
	home := fold.String(homeTeam)

	for _, term := range terms {
		t := fold.String(term)
		if strings.Contains(away, t) || strings.Contains(home, t) {
			return true
		}
	}
	return false
}

// involvesRegionalTeam matches the fixed franchise list case-sensitively.
// The asymmetry with matchesAnyTerm is deliberate and locked in by tests.
func involvesRegionalTeam(awayTeam, homeTeam string, teams []string) bool {
	for _, team := range teams {
		if strings.Contains(awayTeam, team) || strings.Contains(homeTeam, team) {
			return true
		}
	}
	return false
}

// SplitTeams turns a comma-separated flag value like "Winnipeg Jets, leafs"
// into a list of trimmed, non-empty terms.
func SplitTeams(value string) []string {
	var teams []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		teams = append(teams, part)
	}
	return teams
}
