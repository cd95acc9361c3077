package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/Dosada05/tournament-standings/models"
	"github.com/Dosada05/tournament-standings/repositories"
	"github.com/Dosada05/tournament-standings/storage"
	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var allowedLogoTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

type TeamService interface {
	CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	GetTeamByID(ctx context.Context, id string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]*models.Team, error)
	SearchTeams(ctx context.Context, query string) ([]*models.Team, error)
	UpdateTeam(ctx context.Context, id string, input UpdateTeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, id string) error
	UploadTeamLogo(ctx context.Context, id string, file io.Reader, contentType string) (*models.Team, error)
}

type CreateTeamInput struct {
	Name string `json:"name"`
}

type UpdateTeamInput struct {
	Name string `json:"name"`
}

type teamService struct {
	teamRepo repositories.TeamRepository
	uploader storage.FileUploader
	logger   *slog.Logger
}

func NewTeamService(teamRepo repositories.TeamRepository, uploader storage.FileUploader, logger *slog.Logger) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		uploader: uploader,
		logger:   logger,
	}
}

func (s *teamService) CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{Name: name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id string) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team by id %s: %w", id, err)
	}
	s.populateLogoURL(team)
	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context) ([]*models.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	for _, team := range teams {
		s.populateLogoURL(team)
	}
	return teams, nil
}

// SearchTeams returns teams whose names fuzzily match query, closest first.
func (s *teamService) SearchTeams(ctx context.Context, query string) ([]*models.Team, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListTeams(ctx)
	}

	teams, err := s.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(teams))
	for i, team := range teams {
		names[i] = team.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	result := make([]*models.Team, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, teams[rank.OriginalIndex])
	}
	return result, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id string, input UpdateTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Name = name

	if err := s.teamRepo.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to update team %s: %w", id, err)
	}
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id string) error {
	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamInUse):
			return ErrTeamInUse
		}
		return fmt.Errorf("failed to delete team %s: %w", id, err)
	}

	if team.LogoKey != nil {
		s.deleteLogo(ctx, *team.LogoKey)
	}
	return nil
}

func (s *teamService) UploadTeamLogo(ctx context.Context, id string, file io.Reader, contentType string) (*models.Team, error) {
	if s.uploader == nil {
		return nil, ErrStorageUnavailable
	}
	ext, ok := allowedLogoTypes[contentType]
	if !ok {
		return nil, ErrInvalidLogo
	}

	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("logos/teams/%s/%s%s", team.ID, uuid.NewString(), ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		if errors.Is(err, storage.ErrUploaderDisabled) {
			return nil, ErrStorageUnavailable
		}
		return nil, fmt.Errorf("failed to upload logo for team %s: %w", id, err)
	}

	if err := s.teamRepo.UpdateLogoKey(ctx, team.ID, &key); err != nil {
		s.deleteLogo(ctx, key)
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to save logo key for team %s: %w", id, err)
	}

	if team.LogoKey != nil && *team.LogoKey != key {
		s.deleteLogo(ctx, *team.LogoKey)
	}

	team.LogoKey = &key
	s.populateLogoURL(team)
	return team, nil
}

func (s *teamService) populateLogoURL(team *models.Team) {
	if team == nil || team.LogoKey == nil || *team.LogoKey == "" || s.uploader == nil {
		return
	}
	url := s.uploader.GetPublicURL(*team.LogoKey)
	if url != "" {
		team.LogoURL = &url
	}
}

func (s *teamService) deleteLogo(ctx context.Context, key string) {
	if s.uploader == nil {
		return
	}
	if err := s.uploader.Delete(ctx, key); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "Failed to delete team logo", slog.String("key", key), slog.Any("error", err))
	}
}
