package schedule

import "github.com/Dosada05/tournament-standings/models"

type NFLGenerator struct{}

func NewNFLGenerator() Generator {
	return &NFLGenerator{}
}

func (g *NFLGenerator) Name() string {
	return string(models.TournamentTypeNFL)
}

// Generate creates the division games (every pair inside a group once) and
// then the cross-division games: teams holding the same position in two
// different groups meet once, the earlier group hosting.
func (g *NFLGenerator) Generate(params GenerateParams) ([]*models.Match, error) {
	if err := validateGroups(params); err != nil {
		return nil, err
	}

	tournamentID := params.Tournament.ID
	groups := params.Groups
	matches := intraGroupMatches(tournamentID, groups)

	for pos := 0; pos < params.Tournament.Format.MaxTeamsPerGroup; pos++ {
		for a := 0; a < len(groups); a++ {
			for b := a + 1; b < len(groups); b++ {
				matches = append(matches, regularMatch(tournamentID, groups[a].Teams[pos], groups[b].Teams[pos]))
			}
		}
	}

	return matches, nil
}
