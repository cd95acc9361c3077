package models

import "time"

// Conference is the top-level partition of a league. Standings are ranked per conference.
type Conference string

const (
	ConferenceAFC Conference = "AFC"
	ConferenceNFC Conference = "NFC"
)

// DefaultConference is used for groups stored without a recognised conference.
const DefaultConference = ConferenceAFC

// Conferences lists every conference in display order.
var Conferences = []Conference{ConferenceAFC, ConferenceNFC}

func (c Conference) IsValid() bool {
	switch c {
	case ConferenceAFC, ConferenceNFC:
		return true
	default:
		return false
	}
}

// Group is a division: a named set of teams inside one conference of a tournament.
type Group struct {
	ID           string     `json:"id" db:"id"`
	TournamentID string     `json:"tournament_id" db:"tournament_id"`
	Name         string     `json:"name" db:"name"`
	Region       string     `json:"region" db:"region"`
	Conference   Conference `json:"conference" db:"conference"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`

	Teams []Team `json:"teams" db:"-"`
}

func (g Group) HasTeam(teamID string) bool {
	for _, t := range g.Teams {
		if t.ID == teamID {
			return true
		}
	}
	return false
}
