package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/tournament-standings/models"
	"github.com/google/uuid"
)

var (
	ErrMatchNotFound          = errors.New("match not found")
	ErrMatchTournamentInvalid = errors.New("match tournament conflict or invalid")
)

type MatchRepository interface {
	CreateMany(ctx context.Context, matches []*models.Match) error
	GetByID(ctx context.Context, id string) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID string, filter models.MatchFilter) ([]models.Match, error)
	CountByTournament(ctx context.Context, tournamentID string) (int, error)
	UpdateScore(ctx context.Context, id string, score models.Score) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `
	id, tournament_id,
	home_team_id, home_team_name, visitor_team_id, visitor_team_name,
	round, home_score, visitor_score,
	winner_next_match_id, loser_next_match_id, created_at`

func scanMatch(row interface{ Scan(...interface{}) error }) (*models.Match, error) {
	var (
		m                       models.Match
		homeID, visitorID       sql.NullString
		homeScore, visitorScore sql.NullInt64
		winnerNext, loserNext   sql.NullString
	)
	err := row.Scan(
		&m.ID, &m.TournamentID,
		&homeID, &m.Home.Name, &visitorID, &m.Visitor.Name,
		&m.Round, &homeScore, &visitorScore,
		&winnerNext, &loserNext, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Home.ID = homeID.String
	m.Visitor.ID = visitorID.String
	if homeScore.Valid && visitorScore.Valid {
		m.Score = &models.Score{Home: int(homeScore.Int64), Visitor: int(visitorScore.Int64)}
	}
	if winnerNext.Valid {
		m.WinnerNextMatchID = &winnerNext.String
	}
	if loserNext.Valid {
		m.LoserNextMatchID = &loserNext.String
	}
	return &m, nil
}

// CreateMany inserts all matches in one transaction.
func (r *postgresMatchRepository) CreateMany(ctx context.Context, matches []*models.Match) (err error) {
	if len(matches) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("CreateMany failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO matches (
			id, tournament_id, home_team_id, home_team_name, visitor_team_id, visitor_team_name,
			round, home_score, visitor_score, winner_next_match_id, loser_next_match_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`)
	if err != nil {
		return fmt.Errorf("CreateMany failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, m := range matches {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		var homeScore, visitorScore *int
		if m.Score != nil {
			homeScore, visitorScore = &m.Score.Home, &m.Score.Visitor
		}
		err = stmt.QueryRowContext(ctx,
			m.ID, m.TournamentID, nullableString(m.Home.ID), m.Home.Name, nullableString(m.Visitor.ID), m.Visitor.Name,
			m.Round, homeScore, visitorScore, m.WinnerNextMatchID, m.LoserNextMatchID,
		).Scan(&m.CreatedAt)
		if err != nil {
			err = r.handleMatchError(err)
			return fmt.Errorf("CreateMany failed for %s vs %s: %w", m.Home.ID, m.Visitor.ID, err)
		}
	}
	return nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	m, err := scanMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID string, filter models.MatchFilter) ([]models.Match, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = $1`)

	switch filter {
	case models.MatchFilterPlayed:
		queryBuilder.WriteString(" AND home_score IS NOT NULL AND visitor_score IS NOT NULL")
	case models.MatchFilterPending:
		queryBuilder.WriteString(" AND (home_score IS NULL OR visitor_score IS NULL)")
	}
	queryBuilder.WriteString(" ORDER BY created_at ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) CountByTournament(ctx context.Context, tournamentID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches WHERE tournament_id = $1`, tournamentID).Scan(&count)
	return count, err
}

func (r *postgresMatchRepository) UpdateScore(ctx context.Context, id string, score models.Score) error {
	query := `UPDATE matches SET home_score = $1, visitor_score = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, score.Home, score.Visitor, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := asPQError(err); ok {
		if pqErr.Code == pqForeignKeyViolation && pqErr.Constraint == "matches_tournament_id_fkey" {
			return ErrMatchTournamentInvalid
		}
	}
	return err
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
