package standings

import "github.com/Dosada05/tournament-standings/models"

func group(id, name string, conference models.Conference, teamIDs ...string) models.Group {
	g := models.Group{ID: id, Name: name, Conference: conference}
	for _, t := range teamIDs {
		g.Teams = append(g.Teams, models.Team{ID: t, Name: "Team " + t})
	}
	return g
}

func played(id string, round models.RoundType, home, visitor string, homeScore, visitorScore int) models.Match {
	return models.Match{
		ID:      id,
		Round:   round,
		Home:    models.TeamRef{ID: home, Name: "Team " + home},
		Visitor: models.TeamRef{ID: visitor, Name: "Team " + visitor},
		Score:   &models.Score{Home: homeScore, Visitor: visitorScore},
	}
}

func recordByID(records []TeamRecord, id string) (TeamRecord, bool) {
	for _, r := range records {
		if r.TeamID == id {
			return r, true
		}
	}
	return TeamRecord{}, false
}

func teamIDs(records []TeamRecord) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.TeamID
	}
	return ids
}
