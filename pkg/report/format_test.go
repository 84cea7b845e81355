package report

import (
	"testing"
	"time"

	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/schedule"
)

func testGame(t *testing.T) schedule.Game {
	t.Helper()

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("could not load Europe/Paris: %v", err)
	}
	return schedule.Game{
		TargetTime: time.Date(2025, 10, 8, 19, 0, 0, 0, paris),
		AwayTeam:   "Team A",
		HomeTeam:   "Team B",
	}
}

func TestFormatGameLinePlain(t *testing.T) {
	g := testGame(t)

	if got := FormatGameLine(g, true); got != "2025-10-08 at 19:00 - Team A @ Team B" {
		t.Errorf("unexpected dated line: %q", got)
	}
	if got := FormatGameLine(g, false); got != "19:00 - Team A @ Team B" {
		t.Errorf("unexpected dateless line: %q", got)
	}
}

func TestFormatGameLineHighlighted(t *testing.T) {
	g := testGame(t)
	g.Highlighted = true

	if got := FormatGameLine(g, true); got != "**2025-10-08 at 19:00 - Team A @ Team B**" {
		t.Errorf("unexpected highlighted line: %q", got)
	}
}

func TestFormatGameLineStarredAndRegional(t *testing.T) {
	g := testGame(t)
	g.Starred = true
	g.Regional = true

	// Star glyph first, then the flag, both inside the bold wrapper.
	want := "**⭐ 🇨🇦 19:00 - Team A @ Team B**"
	if got := FormatGameLine(g, false); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatGameLineWeekendOnly(t *testing.T) {
	g := testGame(t)
	g.Weekend = true

	// Weekend alone wraps in italics without any bold.
	want := "*2025-10-08 at 19:00 - Team A @ Team B*"
	if got := FormatGameLine(g, true); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatGameLineWeekendKeepsPrefixOutsideItalics(t *testing.T) {
	g := testGame(t)
	g.Starred = true
	g.Weekend = true

	want := "**⭐ *19:00 - Team A @ Team B***"
	if got := FormatGameLine(g, false); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
