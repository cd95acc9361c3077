package standings

import (
	"fmt"

	"github.com/Dosada05/tournament-standings/models"
)

// Aggregate builds one TeamRecord per team found in groups and folds every
// scored regular-round match into it. Records come back in group order, then
// member order. Matches that cannot be attributed to two grouped teams are
// skipped and reported as issues.
func Aggregate(groups []models.Group, matches []models.Match) ([]TeamRecord, []Issue) {
	records := make([]TeamRecord, 0)
	index := make(map[string]int)
	var issues []Issue

	for _, g := range groups {
		conference := g.Conference
		if !conference.IsValid() {
			issues = append(issues, Issue{
				Kind:    IssueConferenceFallback,
				Subject: g.ID,
				Detail:  fmt.Sprintf("group %q has conference %q, using %s", g.Name, g.Conference, models.DefaultConference),
			})
			conference = models.DefaultConference
		}

		for _, t := range g.Teams {
			if t.ID == "" {
				issues = append(issues, Issue{
					Kind:    IssueMissingTeamRef,
					Subject: g.ID,
					Detail:  fmt.Sprintf("group %q lists a team without id", g.Name),
				})
				continue
			}
			if i, ok := index[t.ID]; ok {
				issues = append(issues, Issue{
					Kind:    IssueDuplicateTeam,
					Subject: g.ID,
					Detail:  fmt.Sprintf("team %s already counted in division %q", t.ID, records[i].Division),
				})
				continue
			}
			index[t.ID] = len(records)
			records = append(records, TeamRecord{
				TeamID:     t.ID,
				TeamName:   t.Name,
				Conference: conference,
				Division:   g.Name,
			})
		}
	}

	for _, m := range matches {
		if m.Round != models.RoundRegular || m.Score == nil {
			continue
		}
		if m.Home.ID == "" || m.Visitor.ID == "" {
			issues = append(issues, Issue{
				Kind:    IssueMissingTeamRef,
				Subject: m.ID,
				Detail:  "match is missing a home or visitor team",
			})
			continue
		}
		if m.Home.ID == m.Visitor.ID {
			issues = append(issues, Issue{
				Kind:    IssueSelfMatch,
				Subject: m.ID,
				Detail:  fmt.Sprintf("team %s is both home and visitor", m.Home.ID),
			})
			continue
		}
		hi, homeOK := index[m.Home.ID]
		vi, visitorOK := index[m.Visitor.ID]
		if !homeOK || !visitorOK {
			issues = append(issues, Issue{
				Kind:    IssueUngroupedTeam,
				Subject: m.ID,
				Detail:  fmt.Sprintf("match %s vs %s references a team outside every group", m.Home.ID, m.Visitor.ID),
			})
			continue
		}

		applyResult(&records[hi], &records[vi], *m.Score)
	}

	return records, issues
}

func applyResult(home, visitor *TeamRecord, score models.Score) {
	home.PointsFor += score.Home
	home.PointsAgainst += score.Visitor
	visitor.PointsFor += score.Visitor
	visitor.PointsAgainst += score.Home

	switch {
	case score.Home > score.Visitor:
		home.Wins++
		visitor.Losses++
	case score.Home < score.Visitor:
		home.Losses++
		visitor.Wins++
	default:
		home.Ties++
		visitor.Ties++
	}
}
