package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/tournament-standings/models"
	"github.com/Dosada05/tournament-standings/repositories"
)

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	GetTournamentByID(ctx context.Context, id string) (*models.Tournament, error)
	ListTournaments(ctx context.Context) ([]*models.Tournament, error)
	UpdateTournament(ctx context.Context, id string, input UpdateTournamentInput) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id string) error
}

type CreateTournamentInput struct {
	Name   string                   `json:"name"`
	Year   int                      `json:"year"`
	Format *models.TournamentFormat `json:"format,omitempty"`
}

type UpdateTournamentInput struct {
	Name     *string                  `json:"name,omitempty"`
	Year     *int                     `json:"year,omitempty"`
	Finished *bool                    `json:"finished,omitempty"`
	Format   *models.TournamentFormat `json:"format,omitempty"`
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
}

func NewTournamentService(tournamentRepo repositories.TournamentRepository) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTournamentNameRequired
	}
	if input.Year <= 0 {
		return nil, ErrTournamentInvalidYear
	}

	format := models.DefaultTournamentFormat()
	if input.Format != nil {
		format = *input.Format
	}
	if err := validateFormat(format); err != nil {
		return nil, err
	}

	tournament := &models.Tournament{
		Name:   name,
		Year:   input.Year,
		Format: format,
	}
	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentNameConflict) {
			return nil, ErrTournamentNameConflict
		}
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return tournament, nil
}

func (s *tournamentService) GetTournamentByID(ctx context.Context, id string) (*models.Tournament, error) {
	return getTournament(ctx, s.tournamentRepo, id)
}

func (s *tournamentService) ListTournaments(ctx context.Context) ([]*models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *tournamentService) UpdateTournament(ctx context.Context, id string, input UpdateTournamentInput) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrTournamentNameRequired
		}
		tournament.Name = name
	}
	if input.Year != nil {
		if *input.Year <= 0 {
			return nil, ErrTournamentInvalidYear
		}
		tournament.Year = *input.Year
	}
	if input.Finished != nil {
		tournament.Finished = *input.Finished
	}
	if input.Format != nil {
		if err := validateFormat(*input.Format); err != nil {
			return nil, err
		}
		tournament.Format = *input.Format
	}

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTournamentNotFound):
			return nil, ErrTournamentNotFound
		case errors.Is(err, repositories.ErrTournamentNameConflict):
			return nil, ErrTournamentNameConflict
		}
		return nil, fmt.Errorf("failed to update tournament %s: %w", id, err)
	}
	return tournament, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id string) error {
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to delete tournament %s: %w", id, err)
	}
	return nil
}

func validateFormat(f models.TournamentFormat) error {
	switch {
	case !f.Type.IsValid():
		return fmt.Errorf("%w: unknown type %q", ErrTournamentInvalidFormat, f.Type)
	case f.NumberOfGroups <= 0:
		return fmt.Errorf("%w: number_of_groups must be positive", ErrTournamentInvalidFormat)
	case f.MaxTeamsPerGroup < 2:
		return fmt.Errorf("%w: max_teams_per_group must be at least 2", ErrTournamentInvalidFormat)
	case f.MaxGroupsPerConference <= 0:
		return fmt.Errorf("%w: max_groups_per_conference must be positive", ErrTournamentInvalidFormat)
	case f.NumberOfGroups > f.MaxGroupsPerConference*len(models.Conferences):
		return fmt.Errorf("%w: %d groups do not fit into %d conferences of %d", ErrTournamentInvalidFormat,
			f.NumberOfGroups, len(models.Conferences), f.MaxGroupsPerConference)
	case f.PlayoffSpots < 0:
		return fmt.Errorf("%w: playoff_spots must not be negative", ErrTournamentInvalidFormat)
	}
	return nil
}
