package standings

import "github.com/Dosada05/tournament-standings/models"

// TeamRecord is the regular-season line of one team.
type TeamRecord struct {
	TeamID        string            `json:"team_id"`
	TeamName      string            `json:"team_name"`
	Conference    models.Conference `json:"conference"`
	Division      string            `json:"division"`
	Wins          int               `json:"wins"`
	Losses        int               `json:"losses"`
	Ties          int               `json:"ties"`
	PointsFor     int               `json:"points_for"`
	PointsAgainst int               `json:"points_against"`
}

func (r TeamRecord) GamesPlayed() int {
	return r.Wins + r.Losses + r.Ties
}

// WinPercentage is (wins + ties/2) / games, and 0 for a team without games.
func (r TeamRecord) WinPercentage() float64 {
	games := r.GamesPlayed()
	if games == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(games)
}

func (r TeamRecord) PointDifferential() int {
	return r.PointsFor - r.PointsAgainst
}

// winFraction returns the win percentage as an exact fraction so that
// records can be compared without floating point rounding.
func (r TeamRecord) winFraction() (num, den int) {
	games := r.GamesPlayed()
	if games == 0 {
		return 0, 1
	}
	return 2*r.Wins + r.Ties, 2 * games
}
