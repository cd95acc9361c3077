package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/tournament-standings/models"
	"github.com/google/uuid"
)

var (
	ErrGroupNotFound          = errors.New("group not found")
	ErrGroupNameConflict      = errors.New("group name already exists in this tournament")
	ErrGroupTournamentInvalid = errors.New("group tournament conflict or invalid")
	ErrGroupTeamNotFound      = errors.New("team is not a member of this group")
	ErrGroupTeamInvalid       = errors.New("group team reference invalid")
	ErrTeamAlreadyGrouped     = errors.New("team already belongs to a group of this tournament")
)

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id string) (*models.Group, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]models.Group, error)
	AddTeam(ctx context.Context, tournamentID, groupID, teamID string) error
	RemoveTeam(ctx context.Context, groupID, teamID string) error
}

type postgresGroupRepository struct {
	db *sql.DB
}

func NewPostgresGroupRepository(db *sql.DB) GroupRepository {
	return &postgresGroupRepository{db: db}
}

func (r *postgresGroupRepository) Create(ctx context.Context, g *models.Group) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	query := `
		INSERT INTO groups (id, tournament_id, name, region, conference)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, g.ID, g.TournamentID, g.Name, g.Region, g.Conference).Scan(&g.CreatedAt)
	if err != nil {
		return r.handleGroupError(err)
	}
	if g.Teams == nil {
		g.Teams = []models.Team{}
	}
	return nil
}

func (r *postgresGroupRepository) GetByID(ctx context.Context, id string) (*models.Group, error) {
	query := `
		SELECT id, tournament_id, name, region, conference, created_at
		FROM groups
		WHERE id = $1`

	g := &models.Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.TournamentID, &g.Name, &g.Region, &g.Conference, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	members, err := r.listMembers(ctx, `WHERE gt.group_id = $1`, id)
	if err != nil {
		return nil, err
	}
	g.Teams = members[g.ID]
	if g.Teams == nil {
		g.Teams = []models.Team{}
	}
	return g, nil
}

// ListByTournament returns the groups of a tournament in creation order,
// each with its members in the order they were added.
func (r *postgresGroupRepository) ListByTournament(ctx context.Context, tournamentID string) ([]models.Group, error) {
	query := `
		SELECT id, tournament_id, name, region, conference, created_at
		FROM groups
		WHERE tournament_id = $1
		ORDER BY created_at ASC, name ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]models.Group, 0)
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.TournamentID, &g.Name, &g.Region, &g.Conference, &g.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	members, err := r.listMembers(ctx, `WHERE gt.tournament_id = $1`, tournamentID)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		groups[i].Teams = members[groups[i].ID]
		if groups[i].Teams == nil {
			groups[i].Teams = []models.Team{}
		}
	}
	return groups, nil
}

func (r *postgresGroupRepository) listMembers(ctx context.Context, where string, arg string) (map[string][]models.Team, error) {
	query := `
		SELECT gt.group_id, t.id, t.name, t.logo_key, t.created_at
		FROM group_teams gt
		JOIN teams t ON t.id = gt.team_id
		` + where + `
		ORDER BY gt.position ASC`

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make(map[string][]models.Team)
	for rows.Next() {
		var groupID string
		var t models.Team
		if err := rows.Scan(&groupID, &t.ID, &t.Name, &t.LogoKey, &t.CreatedAt); err != nil {
			return nil, err
		}
		members[groupID] = append(members[groupID], t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *postgresGroupRepository) AddTeam(ctx context.Context, tournamentID, groupID, teamID string) error {
	query := `INSERT INTO group_teams (group_id, team_id, tournament_id) VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, groupID, teamID, tournamentID)
	return r.handleGroupError(err)
}

func (r *postgresGroupRepository) RemoveTeam(ctx context.Context, groupID, teamID string) error {
	query := `DELETE FROM group_teams WHERE group_id = $1 AND team_id = $2`

	result, err := r.db.ExecContext(ctx, query, groupID, teamID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGroupTeamNotFound)
}

func (r *postgresGroupRepository) handleGroupError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := asPQError(err); ok {
		switch pqErr.Code {
		case pqUniqueViolation:
			switch pqErr.Constraint {
			case "groups_tournament_id_name_key":
				return ErrGroupNameConflict
			case "group_teams_tournament_id_team_id_key", "group_teams_pkey":
				return ErrTeamAlreadyGrouped
			}
		case pqForeignKeyViolation:
			switch pqErr.Constraint {
			case "groups_tournament_id_fkey":
				return ErrGroupTournamentInvalid
			case "group_teams_group_id_fkey":
				return ErrGroupNotFound
			case "group_teams_team_id_fkey":
				return ErrGroupTeamInvalid
			}
		}
	}
	return err
}
