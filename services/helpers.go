package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-standings/models"
	"github.com/Dosada05/tournament-standings/repositories"
)

// Broadcaster pushes a message to every subscriber of a room.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

func getTournament(ctx context.Context, repo repositories.TournamentRepository, id string) (*models.Tournament, error) {
	tournament, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament by id %s: %w", id, err)
	}
	return tournament, nil
}
