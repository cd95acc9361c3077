package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-standings/models"
	"github.com/Dosada05/tournament-standings/realtime"
	"github.com/Dosada05/tournament-standings/repositories"
	"github.com/Dosada05/tournament-standings/schedule"
)

type MatchService interface {
	ListMatches(ctx context.Context, tournamentID string, filter models.MatchFilter) ([]models.Match, error)
	GetMatch(ctx context.Context, tournamentID, matchID string) (*models.Match, error)
	UpdateScore(ctx context.Context, tournamentID, matchID string, score models.Score) (*models.Match, error)
	GenerateRegularSeason(ctx context.Context, tournamentID string) ([]*models.Match, error)
}

type matchService struct {
	tournamentRepo   repositories.TournamentRepository
	groupRepo        repositories.GroupRepository
	matchRepo        repositories.MatchRepository
	standingsService StandingsService
	broadcaster      Broadcaster
	maxScore         int
	logger           *slog.Logger
}

func NewMatchService(
	tournamentRepo repositories.TournamentRepository,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	standingsService StandingsService,
	broadcaster Broadcaster,
	maxScore int,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		tournamentRepo:   tournamentRepo,
		groupRepo:        groupRepo,
		matchRepo:        matchRepo,
		standingsService: standingsService,
		broadcaster:      broadcaster,
		maxScore:         maxScore,
		logger:           logger,
	}
}

func (s *matchService) ListMatches(ctx context.Context, tournamentID string, filter models.MatchFilter) ([]models.Match, error) {
	if !filter.IsValid() {
		return nil, ErrInvalidMatchFilter
	}
	if _, err := getTournament(ctx, s.tournamentRepo, tournamentID); err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of tournament %s: %w", tournamentID, err)
	}
	return matches, nil
}

func (s *matchService) GetMatch(ctx context.Context, tournamentID, matchID string) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by id %s: %w", matchID, err)
	}
	if match.TournamentID != tournamentID {
		return nil, ErrMatchNotFound
	}
	return match, nil
}

// UpdateScore records the result of a match and pushes the new score and
// the recomputed standings to the tournament room.
func (s *matchService) UpdateScore(ctx context.Context, tournamentID, matchID string, score models.Score) (*models.Match, error) {
	match, err := s.GetMatch(ctx, tournamentID, matchID)
	if err != nil {
		return nil, err
	}
	if match.Home.ID == "" || match.Visitor.ID == "" {
		return nil, fmt.Errorf("%w: match teams are not decided yet", ErrInvalidScore)
	}
	if err := schedule.ValidateScore(score, match.Round, s.maxScore); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScore, err)
	}

	if err := s.matchRepo.UpdateScore(ctx, matchID, score); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update score of match %s: %w", matchID, err)
	}
	match.Score = &score

	s.publish(ctx, tournamentID, match)
	return match, nil
}

func (s *matchService) publish(ctx context.Context, tournamentID string, match *models.Match) {
	if s.broadcaster == nil {
		return
	}
	room := realtime.TournamentRoom(tournamentID)
	s.broadcaster.BroadcastToRoom(room, realtime.Message{
		Type:    realtime.MessageMatchScoreUpdated,
		Payload: match,
		RoomID:  room,
	})

	if match.Round != models.RoundRegular || s.standingsService == nil {
		return
	}
	table, err := s.standingsService.GetStandings(ctx, tournamentID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to recompute standings after score update",
			slog.String("tournament_id", tournamentID), slog.String("match_id", match.ID), slog.Any("error", err))
		return
	}
	s.broadcaster.BroadcastToRoom(room, realtime.Message{
		Type:    realtime.MessageStandingsUpdated,
		Payload: table,
		RoomID:  room,
	})
}

// GenerateRegularSeason creates every regular-season match of a tournament
// once its groups are complete. It refuses to run twice.
func (s *matchService) GenerateRegularSeason(ctx context.Context, tournamentID string) ([]*models.Match, error) {
	tournament, err := getTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return nil, err
	}

	existing, err := s.matchRepo.CountByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches of tournament %s: %w", tournamentID, err)
	}
	if existing > 0 {
		return nil, ErrMatchesAlreadyCreated
	}

	groups, err := s.groupRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups of tournament %s: %w", tournamentID, err)
	}

	generator, err := schedule.ForType(tournament.Format.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTournamentInvalidFormat, err)
	}
	matches, err := generator.Generate(schedule.GenerateParams{Tournament: tournament, Groups: groups})
	if err != nil {
		if errors.Is(err, schedule.ErrGroupCountMismatch) || errors.Is(err, schedule.ErrGroupIncomplete) {
			return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("failed to generate %s schedule: %w", generator.Name(), err)
	}

	if err := s.matchRepo.CreateMany(ctx, matches); err != nil {
		if errors.Is(err, repositories.ErrMatchTournamentInvalid) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to save generated matches: %w", err)
	}

	s.logger.InfoContext(ctx, "Regular season generated",
		slog.String("tournament_id", tournamentID),
		slog.String("generator", generator.Name()),
		slog.Int("matches", len(matches)),
	)
	return matches, nil
}
