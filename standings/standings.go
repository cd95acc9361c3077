package standings

import "github.com/Dosada05/tournament-standings/models"

type Options struct {
	// PlayoffSpots per conference; <= 0 uses DefaultPlayoffSpots.
	PlayoffSpots int
	// Conferences to report, in order. Empty means models.Conferences.
	Conferences []models.Conference
}

type ConferenceStandings struct {
	Conference models.Conference `json:"conference"`
	Teams      []Entry           `json:"teams"`
}

type Standings struct {
	Conferences []ConferenceStandings `json:"conferences"`
	Issues      []Issue               `json:"issues,omitempty"`
}

// Compute runs the whole pipeline over one snapshot. It never fails:
// anything it had to default or skip is listed in Standings.Issues.
func Compute(groups []models.Group, matches []models.Match, opts Options) Standings {
	conferences := opts.Conferences
	if len(conferences) == 0 {
		conferences = models.Conferences
	}

	records, issues := Aggregate(groups, matches)

	result := Standings{
		Conferences: make([]ConferenceStandings, 0, len(conferences)),
		Issues:      issues,
	}
	for _, c := range conferences {
		result.Conferences = append(result.Conferences, ConferenceStandings{
			Conference: c,
			Teams:      Seed(Rank(records, c), opts.PlayoffSpots),
		})
	}
	return result
}

// Conference returns the table of one conference.
func (s Standings) Conference(c models.Conference) (ConferenceStandings, bool) {
	for _, cs := range s.Conferences {
		if cs.Conference == c {
			return cs, true
		}
	}
	return ConferenceStandings{}, false
}
