package report

import (
	"fmt"

	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/schedule"
)

const (
	starGlyph     = "⭐"
	regionalGlyph = "🇨🇦"
)

// FormatGameLine renders the single-line Markdown representation of one game.
// Both layouts share this so the decoration rules live in exactly one place.
//
// Weekend emphasis wraps only the base text; the glyph prefix stays outside
// the italics but inside the bold wrapper.
func FormatGameLine(g schedule.Game, includeDate bool) string {
	var text string
	if includeDate {
		text = fmt.Sprintf("%s at %s - %s @ %s",
			g.TargetTime.Format("2006-01-02"),
			g.TargetTime.Format("15:04"),
			g.AwayTeam, g.HomeTeam)
	} else {
		text = fmt.Sprintf("%s - %s @ %s",
			g.TargetTime.Format("15:04"),
			g.AwayTeam, g.HomeTeam)
	}

	if g.Weekend {
		text = "*" + text + "*"
	}

	var prefix string
	if g.Starred {
		prefix += starGlyph + " "
	}
	if g.Regional {
		prefix += regionalGlyph + " "
	}

	line := prefix + text
	if g.Starred || g.Highlighted {
		line = "**" + line + "**"
	}
	return line
}
