package report

import (
	"fmt"
	"strings"

	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/schedule"
)

// RenderList produces the chronological bulleted layout. Games are emitted in
// the order they were parsed, which follows the source table's chronology.
func RenderList(games []schedule.Game, s schedule.Settings, opts schedule.Options) string {
	if len(games) == 0 {
		return emptyDocument(s)
	}

	var b strings.Builder
	writeHeader(&b, games, s, opts)

	for _, g := range games {
		b.WriteString("- " + FormatGameLine(g, true) + "\n")
	}

	return b.String()
}

// emptyDocument is the fixed no-results form: just the title and one sentence.
func emptyDocument(s schedule.Settings) string {
	return fmt.Sprintf("# Europe-Friendly NHL Games (%s)\n\nNo games found starting at or before %d:00 %s time.",
		s.Season, s.WindowEndHour, s.TargetLabel)
}

// writeHeader emits the title, window subtitle, total count, the conditional
// highlighted/starred count lines, and the separator. Count lines only appear
// when the corresponding team list was supplied and matched at least once.
func writeHeader(b *strings.Builder, games []schedule.Game, s schedule.Settings, opts schedule.Options) {
	fmt.Fprintf(b, "# Europe-Friendly NHL Games (%s)\n\n", s.Season)
	fmt.Fprintf(b, "*Games starting at or before %d:00 %s time (all times in 24-hour format)*\n\n",
		s.WindowEndHour, s.TargetLabel)
	fmt.Fprintf(b, "**Total games found: %d**\n\n", len(games))

	if len(opts.HighlightTeams) > 0 {
		if n := countGames(games, func(g schedule.Game) bool { return g.Highlighted }); n > 0 {
			fmt.Fprintf(b, "**%s games (highlighted): %d**\n\n", strings.Join(opts.HighlightTeams, ", "), n)
		}
	}

	if len(opts.StarTeams) > 0 {
		if n := countGames(games, func(g schedule.Game) bool { return g.Starred }); n > 0 {
			fmt.Fprintf(b, "**%s games (starred): %d**\n\n", strings.Join(opts.StarTeams, ", "), n)
		}
	}

	b.WriteString("---\n\n")
}

func countGames(games []schedule.Game, match func(schedule.Game) bool) int {
	n := 0
	for _, g := range games {
		if match(g) {
			n++
		}
	}
	return n
}
