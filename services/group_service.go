package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/tournament-standings/models"
	"github.com/Dosada05/tournament-standings/repositories"
)

type GroupService interface {
	CreateGroup(ctx context.Context, tournamentID string, input CreateGroupInput) (*models.Group, error)
	GetGroup(ctx context.Context, tournamentID, groupID string) (*models.Group, error)
	ListGroups(ctx context.Context, tournamentID string) ([]models.Group, error)
	AddTeam(ctx context.Context, tournamentID, groupID, teamID string) (*models.Group, error)
	RemoveTeam(ctx context.Context, tournamentID, groupID, teamID string) error
}

type CreateGroupInput struct {
	Name       string            `json:"name"`
	Region     string            `json:"region"`
	Conference models.Conference `json:"conference"`
}

type groupService struct {
	groupRepo      repositories.GroupRepository
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
}

func NewGroupService(
	groupRepo repositories.GroupRepository,
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
) GroupService {
	return &groupService{
		groupRepo:      groupRepo,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, tournamentID string, input CreateGroupInput) (*models.Group, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrGroupNameRequired
	}
	conference := models.Conference(strings.ToUpper(strings.TrimSpace(string(input.Conference))))
	if !conference.IsValid() {
		return nil, ErrInvalidConference
	}

	tournament, err := getTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups of tournament %s: %w", tournamentID, err)
	}
	if len(groups) >= tournament.Format.NumberOfGroups {
		return nil, fmt.Errorf("%w (%d)", ErrTooManyGroups, tournament.Format.NumberOfGroups)
	}
	inConference := 0
	for _, g := range groups {
		if g.Conference == conference {
			inConference++
		}
	}
	if inConference >= tournament.Format.MaxGroupsPerConference {
		return nil, fmt.Errorf("%w (%s: %d)", ErrConferenceFull, conference, tournament.Format.MaxGroupsPerConference)
	}

	group := &models.Group{
		TournamentID: tournamentID,
		Name:         name,
		Region:       strings.TrimSpace(input.Region),
		Conference:   conference,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		switch {
		case errors.Is(err, repositories.ErrGroupNameConflict):
			return nil, ErrGroupNameConflict
		case errors.Is(err, repositories.ErrGroupTournamentInvalid):
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

func (s *groupService) GetGroup(ctx context.Context, tournamentID, groupID string) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group by id %s: %w", groupID, err)
	}
	if group.TournamentID != tournamentID {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

func (s *groupService) ListGroups(ctx context.Context, tournamentID string) ([]models.Group, error) {
	if _, err := getTournament(ctx, s.tournamentRepo, tournamentID); err != nil {
		return nil, err
	}
	groups, err := s.groupRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups of tournament %s: %w", tournamentID, err)
	}
	return groups, nil
}

func (s *groupService) AddTeam(ctx context.Context, tournamentID, groupID, teamID string) (*models.Group, error) {
	tournament, err := getTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return nil, err
	}
	group, err := s.GetGroup(ctx, tournamentID, groupID)
	if err != nil {
		return nil, err
	}
	if group.HasTeam(teamID) {
		return nil, ErrTeamAlreadyGrouped
	}
	if len(group.Teams) >= tournament.Format.MaxTeamsPerGroup {
		return nil, fmt.Errorf("%w (%d)", ErrGroupFull, tournament.Format.MaxTeamsPerGroup)
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team by id %s: %w", teamID, err)
	}

	if err := s.groupRepo.AddTeam(ctx, tournamentID, groupID, teamID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamAlreadyGrouped):
			return nil, ErrTeamAlreadyGrouped
		case errors.Is(err, repositories.ErrGroupTeamInvalid):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrGroupNotFound):
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to add team %s to group %s: %w", teamID, groupID, err)
	}

	group.Teams = append(group.Teams, *team)
	return group, nil
}

func (s *groupService) RemoveTeam(ctx context.Context, tournamentID, groupID, teamID string) error {
	if _, err := s.GetGroup(ctx, tournamentID, groupID); err != nil {
		return err
	}
	if err := s.groupRepo.RemoveTeam(ctx, groupID, teamID); err != nil {
		if errors.Is(err, repositories.ErrGroupTeamNotFound) {
			return ErrGroupTeamNotFound
		}
		return fmt.Errorf("failed to remove team %s from group %s: %w", teamID, groupID, err)
	}
	return nil
}
