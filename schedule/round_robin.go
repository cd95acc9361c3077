package schedule

import "github.com/Dosada05/tournament-standings/models"

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() Generator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) Name() string {
	return string(models.TournamentTypeRoundRobin)
}

// Generate creates a single round robin inside each group.
func (g *RoundRobinGenerator) Generate(params GenerateParams) ([]*models.Match, error) {
	if err := validateGroups(params); err != nil {
		return nil, err
	}
	return intraGroupMatches(params.Tournament.ID, params.Groups), nil
}
