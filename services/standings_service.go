package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-standings/models"
	"github.com/Dosada05/tournament-standings/repositories"
	"github.com/Dosada05/tournament-standings/standings"
	"golang.org/x/sync/errgroup"
)

type StandingsService interface {
	GetStandings(ctx context.Context, tournamentID string) (*standings.Standings, error)
}

type standingsService struct {
	tournamentRepo repositories.TournamentRepository
	groupRepo      repositories.GroupRepository
	matchRepo      repositories.MatchRepository
	logger         *slog.Logger
}

func NewStandingsService(
	tournamentRepo repositories.TournamentRepository,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	logger *slog.Logger,
) StandingsService {
	return &standingsService{
		tournamentRepo: tournamentRepo,
		groupRepo:      groupRepo,
		matchRepo:      matchRepo,
		logger:         logger,
	}
}

func (s *standingsService) GetStandings(ctx context.Context, tournamentID string) (*standings.Standings, error) {
	tournament, err := getTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return nil, err
	}

	var (
		groups  []models.Group
		matches []models.Match
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = s.groupRepo.ListByTournament(gctx, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to load groups: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByTournament(gctx, tournamentID, models.MatchFilterPlayed)
		if err != nil {
			return fmt.Errorf("failed to load matches: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load standings snapshot for tournament %s: %w", tournamentID, err)
	}

	result := standings.Compute(groups, matches, standings.Options{
		PlayoffSpots: tournament.Format.PlayoffSpots,
	})

	for _, issue := range result.Issues {
		s.logger.WarnContext(ctx, "Standings input issue",
			slog.String("tournament_id", tournamentID),
			slog.String("kind", string(issue.Kind)),
			slog.String("subject", issue.Subject),
			slog.String("detail", issue.Detail),
		)
	}

	return &result, nil
}
