package models

import "time"

// RoundType tags the phase a match belongs to. Only RoundRegular feeds standings.
type RoundType string

const (
	RoundRegular       RoundType = "regular"
	RoundQuarterfinals RoundType = "quarterfinals"
	RoundSemifinals    RoundType = "semifinals"
	RoundFinal         RoundType = "final"
)

func (r RoundType) IsValid() bool {
	switch r {
	case RoundRegular, RoundQuarterfinals, RoundSemifinals, RoundFinal:
		return true
	default:
		return false
	}
}

// MatchFilter values accepted by the match listing (?showMatches=).
type MatchFilter string

const (
	MatchFilterAll     MatchFilter = ""
	MatchFilterPlayed  MatchFilter = "played"
	MatchFilterPending MatchFilter = "pending"
)

func (f MatchFilter) IsValid() bool {
	switch f {
	case MatchFilterAll, MatchFilterPlayed, MatchFilterPending:
		return true
	default:
		return false
	}
}

type Score struct {
	Home    int `json:"home"`
	Visitor int `json:"visitor"`
}

func (s Score) IsTie() bool {
	return s.Home == s.Visitor
}

type Match struct {
	ID           string    `json:"id" db:"id"`
	TournamentID string    `json:"tournament_id" db:"tournament_id"`
	Home         TeamRef   `json:"home"`
	Visitor      TeamRef   `json:"visitor"`
	Round        RoundType `json:"round" db:"round"`
	Score        *Score    `json:"score,omitempty"`

	// Bracket progression links are stored and returned as-is.
	WinnerNextMatchID *string `json:"winner_next_match_id,omitempty" db:"winner_next_match_id"`
	LoserNextMatchID  *string `json:"loser_next_match_id,omitempty" db:"loser_next_match_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (m Match) IsPlayed() bool {
	return m.Score != nil
}
