package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/schedule"
)

type monthKey struct {
	year  int
	month time.Month
}

// RenderCalendar produces the month-by-month grid layout. The header block is
// the same as the list layout; months appear in ascending chronological order
// regardless of source order.
func RenderCalendar(games []schedule.Game, s schedule.Settings, opts schedule.Options) string {
	if len(games) == 0 {
		return emptyDocument(s)
	}

	var b strings.Builder
	writeHeader(&b, games, s, opts)

	byMonth := make(map[monthKey][]schedule.Game)
	var keys []monthKey
	for _, g := range games {
		k := monthKey{g.TargetTime.Year(), g.TargetTime.Month()}
		if _, seen := byMonth[k]; !seen {
			keys = append(keys, k)
		}
		byMonth[k] = append(byMonth[k], g)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	for _, k := range keys {
		writeMonthGrid(&b, k.year, k.month, byMonth[k])
	}

	return b.String()
}

// writeMonthGrid renders one month as a Monday-first Markdown table. Cells
// outside the month are empty; a day with games shows the bold day number
// followed by one formatted line per game.
func writeMonthGrid(b *strings.Builder, year int, month time.Month, games []schedule.Game) {
	fmt.Fprintf(b, "## %s %d\n\n", month, year)
	b.WriteString("| Mon | Tue | Wed | Thu | Fri | Sat | Sun |\n")
	b.WriteString("|-----|-----|-----|-----|-----|-----|-----|\n")

	byDay := make(map[int][]schedule.Game)
	for _, g := range games {
		day := g.TargetTime.Day()
		byDay[day] = append(byDay[day], g)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Shift so the grid starts on the Monday at or before the 1st.
	offset := (int(first.Weekday()) + 6) % 7

	day := 1 - offset
	for day <= daysInMonth {
		b.WriteString("|")
		for i := 0; i < 7; i++ {
			b.WriteString(" " + dayCell(day, daysInMonth, byDay) + " |")
			day++
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func dayCell(day, daysInMonth int, byDay map[int][]schedule.Game) string {
	if day < 1 || day > daysInMonth {
		return ""
	}

	dayGames := byDay[day]
	if len(dayGames) == 0 {
		return strconv.Itoa(day)
	}

	parts := make([]string, 0, len(dayGames)+1)
	parts = append(parts, fmt.Sprintf("**%d**", day))
	for _, g := range dayGames {
		parts = append(parts, FormatGameLine(g, false))
	}
	return strings.Join(parts, "<br>")
}
