package handlers

import (
	"context"
	"io"

	"github.com/Dosada05/tournament-standings/models"
	"github.com/Dosada05/tournament-standings/services"
	"github.com/Dosada05/tournament-standings/standings"
)

type stubMatchService struct {
	listFilter models.MatchFilter
	matches    []models.Match
	updated    *models.Score
	err        error
}

func (s *stubMatchService) ListMatches(_ context.Context, _ string, filter models.MatchFilter) ([]models.Match, error) {
	s.listFilter = filter
	return s.matches, s.err
}

func (s *stubMatchService) GetMatch(_ context.Context, tournamentID, matchID string) (*models.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Match{ID: matchID, TournamentID: tournamentID, Round: models.RoundRegular}, nil
}

func (s *stubMatchService) UpdateScore(_ context.Context, tournamentID, matchID string, score models.Score) (*models.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updated = &score
	return &models.Match{ID: matchID, TournamentID: tournamentID, Round: models.RoundRegular, Score: &score}, nil
}

func (s *stubMatchService) GenerateRegularSeason(_ context.Context, tournamentID string) ([]*models.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*models.Match{{ID: "m1", TournamentID: tournamentID, Round: models.RoundRegular}}, nil
}

type stubStandingsService struct {
	result *standings.Standings
	err    error
}

func (s *stubStandingsService) GetStandings(context.Context, string) (*standings.Standings, error) {
	return s.result, s.err
}

type stubAuthService struct {
	err error
}

func (s *stubAuthService) Login(_ context.Context, input services.LoginInput) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return input.Username, nil
}

type stubTeamService struct {
	services.TeamService
	uploadedType string
	uploadedBody string
	err          error
}

func (s *stubTeamService) UploadTeamLogo(_ context.Context, id string, file io.Reader, contentType string) (*models.Team, error) {
	if s.err != nil {
		return nil, s.err
	}
	body, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	s.uploadedType = contentType
	s.uploadedBody = string(body)
	url := "https://cdn.test/logo.png"
	return &models.Team{ID: id, Name: "Bears", LogoURL: &url}, nil
}
