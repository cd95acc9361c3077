package standings

import "strconv"

// DefaultPlayoffSpots is the number of teams per conference that qualify
// for the playoffs when a tournament format does not say otherwise.
const DefaultPlayoffSpots = 7

// Entry is a ranked record annotated for display.
type Entry struct {
	Rank      int  `json:"rank"`
	Qualified bool `json:"qualified"`
	TeamRecord
	Pct                 string `json:"win_percentage"`
	Diff                int    `json:"point_differential"`
	DifferentialDisplay string `json:"differential_display"`
}

// Seed annotates an already ranked conference. The first spots entries are
// qualified; spots <= 0 means DefaultPlayoffSpots. Order is preserved.
func Seed(ranked []TeamRecord, spots int) []Entry {
	if spots <= 0 {
		spots = DefaultPlayoffSpots
	}

	entries := make([]Entry, len(ranked))
	for i, r := range ranked {
		entries[i] = Entry{
			Rank:                i + 1,
			Qualified:           i < spots,
			TeamRecord:          r,
			Pct:                 FormatWinPercentage(r),
			Diff:                r.PointDifferential(),
			DifferentialDisplay: FormatDifferential(r.PointDifferential()),
		}
	}
	return entries
}

// FormatWinPercentage renders the win percentage with three decimals, e.g. "0.667".
func FormatWinPercentage(r TeamRecord) string {
	return strconv.FormatFloat(r.WinPercentage(), 'f', 3, 64)
}

// FormatDifferential prefixes positive differentials with "+".
func FormatDifferential(diff int) string {
	if diff > 0 {
		return "+" + strconv.Itoa(diff)
	}
	return strconv.Itoa(diff)
}
