package schedule

import "time"

// Game represents a single scheduled matchup after timezone conversion
// and flag annotation. All flags are computed once at parse time.
type Game struct {
	SourceTime time.Time // Published start in the source zone (New York)
	TargetTime time.Time // Converted start in the target zone; the display/sort key
	AwayTeam   string
	HomeTeam   string

	Highlighted bool // A highlight term matched either team
	Starred     bool // A star term matched either team
	Weekend     bool // Starts on Friday or Saturday in the target zone
	Regional    bool // Involves one of the Canadian franchises
}

// Options are the per-invocation annotation inputs supplied by the user.
type Options struct {
	HighlightTeams []string
	StarTeams      []string
	MarkWeekend    bool
	MarkRegional   bool
}
