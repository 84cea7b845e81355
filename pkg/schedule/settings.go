package schedule

// Default locations and conversion targets. The schedule CSV is published with
// New York wall-clock times; the report shows everything in Paris time.
const (
	DefaultInputPath  = "nhl-schedule.csv"
	DefaultOutputPath = "europe-friendly-games.md"
	DefaultSourceZone = "America/New_York"
	DefaultTargetZone = "Europe/Paris"
)

// Settings gathers everything that used to be hardcoded so tests (and flags)
// can override individual values.
type Settings struct {
	InputPath  string
	OutputPath string

	SourceZone  string // IANA name of the zone the CSV times are published in
	TargetZone  string // IANA name of the zone the report is rendered in
	TargetLabel string // Human name of the target zone used in headings

	Season string // Rendered in the report title, e.g. "2025/2026"

	// Games are kept iff their target-zone hour falls in
	// [WindowStartHour, WindowEndHour], inclusive on both ends.
	WindowStartHour int
	WindowEndHour   int

	// RegionalTeams is matched case-sensitively against team names when the
	// regional option is on.
	RegionalTeams []string
}

// DefaultSettings returns the stock configuration: the seven Canadian
// franchises and a 13:00-22:59 Paris viewing window.
func DefaultSettings() Settings {
	return Settings{
		InputPath:       DefaultInputPath,
		OutputPath:      DefaultOutputPath,
		SourceZone:      DefaultSourceZone,
		TargetZone:      DefaultTargetZone,
		TargetLabel:     "Paris",
		Season:          "2025/2026",
		WindowStartHour: 13,
		WindowEndHour:   22,
		RegionalTeams: []string{
			"Calgary Flames",
			"Edmonton Oilers",
			"Montreal Canadiens",
			"Ottawa Senators",
			"Toronto Maple Leafs",
			"Vancouver Canucks",
			"Winnipeg Jets",
		},
	}
}
