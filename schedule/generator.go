package schedule

import (
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-standings/models"
)

var (
	ErrUnsupportedFormat  = errors.New("tournament format not supported")
	ErrGroupCountMismatch = errors.New("tournament does not have the required number of groups")
	ErrGroupIncomplete    = errors.New("group is not complete")
)

type GenerateParams struct {
	Tournament *models.Tournament
	Groups     []models.Group
}

// Generator produces the unplayed regular-season matches of a tournament.
type Generator interface {
	Generate(params GenerateParams) ([]*models.Match, error)
	Name() string
}

// ForType returns the generator for a tournament type.
func ForType(t models.TournamentType) (Generator, error) {
	switch t {
	case models.TournamentTypeNFL:
		return NewNFLGenerator(), nil
	case models.TournamentTypeRoundRobin:
		return NewRoundRobinGenerator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, t)
	}
}

// validateGroups checks the groups against the tournament format before any
// match is created.
func validateGroups(params GenerateParams) error {
	format := params.Tournament.Format
	if len(params.Groups) != format.NumberOfGroups {
		return fmt.Errorf("%w: has %d groups, needs %d", ErrGroupCountMismatch, len(params.Groups), format.NumberOfGroups)
	}
	for _, g := range params.Groups {
		if len(g.Teams) != format.MaxTeamsPerGroup {
			return fmt.Errorf("%w: group %q has %d teams, needs %d", ErrGroupIncomplete, g.Name, len(g.Teams), format.MaxTeamsPerGroup)
		}
	}
	return nil
}

func regularMatch(tournamentID string, home, visitor models.Team) *models.Match {
	return &models.Match{
		TournamentID: tournamentID,
		Home:         home.Ref(),
		Visitor:      visitor.Ref(),
		Round:        models.RoundRegular,
	}
}

// intraGroupMatches pairs every team of a group with every other team once.
// The team listed first is home.
func intraGroupMatches(tournamentID string, groups []models.Group) []*models.Match {
	matches := make([]*models.Match, 0)
	for _, g := range groups {
		for i := 0; i < len(g.Teams); i++ {
			for j := i + 1; j < len(g.Teams); j++ {
				matches = append(matches, regularMatch(tournamentID, g.Teams[i], g.Teams[j]))
			}
		}
	}
	return matches
}
