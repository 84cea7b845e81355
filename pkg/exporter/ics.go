package exporter

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/phrawzty/nhl-emea-friendly-schedule/pkg/schedule"
)

// gameDuration blocks out a regulation game plus intermissions.
const gameDuration = 3 * time.Hour

// GenerateICS serializes the filtered games as an iCalendar document so the
// viewing schedule can be imported into a regular calendar app.
func GenerateICS(games []schedule.Game, s schedule.Settings, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for i, g := range games {
		event := cal.AddEvent(fmt.Sprintf("%s-%d", g.TargetTime.Format("20060102T150405Z"), i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(g.TargetTime)
		event.SetEndAt(g.TargetTime.Add(gameDuration))
		event.SetSummary(fmt.Sprintf("%s @ %s", g.AwayTeam, g.HomeTeam))

		description := fmt.Sprintf("Puck drop: %s %s time (%s in New York)",
			g.TargetTime.Format("15:04"), s.TargetLabel, g.SourceTime.Format("15:04"))
		if g.Starred {
			description += "\nStarred matchup"
		}
		if g.Regional {
			description += "\nCanadian franchise game"
		}
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}
