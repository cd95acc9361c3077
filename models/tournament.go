package models

import "time"

// TournamentType selects how the regular season is scheduled.
type TournamentType string

const (
	TournamentTypeNFL        TournamentType = "NFL"
	TournamentTypeRoundRobin TournamentType = "ROUND_ROBIN"
)

func (t TournamentType) IsValid() bool {
	return t == TournamentTypeNFL || t == TournamentTypeRoundRobin
}

// TournamentFormat describes the group layout and playoff size of a tournament.
type TournamentFormat struct {
	NumberOfGroups         int            `json:"number_of_groups" db:"number_of_groups"`
	MaxTeamsPerGroup       int            `json:"max_teams_per_group" db:"max_teams_per_group"`
	MaxGroupsPerConference int            `json:"max_groups_per_conference" db:"max_groups_per_conference"`
	Type                   TournamentType `json:"type" db:"type"`
	// PlayoffSpots is the number of qualified teams per conference. Zero means the default.
	PlayoffSpots int `json:"playoff_spots" db:"playoff_spots"`
}

// DefaultTournamentFormat is the NFL layout: 8 divisions of 4 teams, 4 per conference.
func DefaultTournamentFormat() TournamentFormat {
	return TournamentFormat{
		NumberOfGroups:         8,
		MaxTeamsPerGroup:       4,
		MaxGroupsPerConference: 4,
		Type:                   TournamentTypeNFL,
	}
}

type Tournament struct {
	ID        string           `json:"id" db:"id"`
	Name      string           `json:"name" db:"name"`
	Year      int              `json:"year" db:"year"`
	Finished  bool             `json:"finished" db:"finished"`
	Format    TournamentFormat `json:"format" db:"-"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
