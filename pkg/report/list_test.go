package report

import (
	"strings"
	"testing"
	"time"

	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/schedule"
)

func parisTime(t *testing.T, year int, month time.Month, day, hour, minute int) time.Time {
	t.Helper()

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("could not load Europe/Paris: %v", err)
	}
	return time.Date(year, month, day, hour, minute, 0, 0, paris)
}

func TestRenderListFullDocument(t *testing.T) {
	games := []schedule.Game{
		{
			TargetTime: parisTime(t, 2025, time.October, 8, 19, 0),
			AwayTeam:   "Team A",
			HomeTeam:   "Team B",
		},
		{
			TargetTime:  parisTime(t, 2025, time.October, 10, 20, 0),
			AwayTeam:    "Winnipeg Jets",
			HomeTeam:    "Team B",
			Highlighted: true,
		},
	}

	opts := schedule.Options{HighlightTeams: []string{"Jets"}}
	doc := RenderList(games, schedule.DefaultSettings(), opts)

	want := "# Europe-Friendly NHL Games (2025/2026)\n\n" +
		"*Games starting at or before 22:00 Paris time (all times in 24-hour format)*\n\n" +
		"**Total games found: 2**\n\n" +
		"**Jets games (highlighted): 1**\n\n" +
		"---\n\n" +
		"- 2025-10-08 at 19:00 - Team A @ Team B\n" +
		"- **2025-10-10 at 20:00 - Winnipeg Jets @ Team B**\n"

	if doc != want {
		t.Errorf("unexpected document.\nGot:\n%s\nExpected:\n%s", doc, want)
	}
}

func TestRenderListStarredCountLine(t *testing.T) {
	games := []schedule.Game{
		{
			TargetTime: parisTime(t, 2025, time.October, 8, 19, 0),
			AwayTeam:   "Montreal Canadiens",
			HomeTeam:   "Team B",
			Starred:    true,
		},
	}

	opts := schedule.Options{StarTeams: []string{"Canadiens"}}
	doc := RenderList(games, schedule.DefaultSettings(), opts)

	if !strings.Contains(doc, "**Canadiens games (starred): 1**") {
		t.Errorf("expected starred count line, got:\n%s", doc)
	}
	if strings.Contains(doc, "(highlighted)") {
		t.Errorf("did not expect a highlighted count line, got:\n%s", doc)
	}
}

func TestRenderListCountLineNeedsAMatch(t *testing.T) {
	games := []schedule.Game{
		{
			TargetTime: parisTime(t, 2025, time.October, 8, 19, 0),
			AwayTeam:   "Team A",
			HomeTeam:   "Team B",
		},
	}

	// A supplied list with zero matches must not produce a count line.
	opts := schedule.Options{HighlightTeams: []string{"Jets"}}
	doc := RenderList(games, schedule.DefaultSettings(), opts)

	if strings.Contains(doc, "(highlighted)") {
		t.Errorf("expected no highlighted count line without matches, got:\n%s", doc)
	}
}

func TestRenderListEmpty(t *testing.T) {
	doc := RenderList(nil, schedule.DefaultSettings(), schedule.Options{})

	want := "# Europe-Friendly NHL Games (2025/2026)\n\n" +
		"No games found starting at or before 22:00 Paris time."
	if doc != want {
		t.Errorf("unexpected empty document.\nGot:\n%q\nExpected:\n%q", doc, want)
	}
}

func TestRenderListDeterministic(t *testing.T) {
	games := []schedule.Game{
		{
			TargetTime: parisTime(t, 2025, time.October, 8, 19, 0),
			AwayTeam:   "Team A",
			HomeTeam:   "Team B",
		},
	}

	opts := schedule.Options{}
	settings := schedule.DefaultSettings()

	if RenderList(games, settings, opts) != RenderList(games, settings, opts) {
		t.Errorf("expected identical output across runs on identical input")
	}
}
