package schedule

import (
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-standings/models"
)

// DefaultMaxScore bounds each side of a reported score.
const DefaultMaxScore = 10

var (
	ErrScoreOutOfRange = errors.New("invalid score: out of range")
	ErrTieNotAllowed   = errors.New("invalid score: tie not allowed in playoff rounds")
	ErrInvalidRound    = errors.New("invalid score: unknown round")
)

// ValidateScore checks a reported score for a match of the given round.
// maxScore <= 0 uses DefaultMaxScore.
func ValidateScore(score models.Score, round models.RoundType, maxScore int) error {
	if maxScore <= 0 {
		maxScore = DefaultMaxScore
	}
	if !round.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRound, round)
	}
	if score.Home < 0 || score.Home > maxScore || score.Visitor < 0 || score.Visitor > maxScore {
		return fmt.Errorf("%w: each side must be between 0 and %d", ErrScoreOutOfRange, maxScore)
	}
	if round != models.RoundRegular && score.IsTie() {
		return ErrTieNotAllowed
	}
	return nil
}
