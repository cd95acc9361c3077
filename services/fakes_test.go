package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/Dosada05/tournament-standings/models"
	"github.com/Dosada05/tournament-standings/repositories"
	"github.com/Dosada05/tournament-standings/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTeamRepo struct {
	mu    sync.Mutex
	seq   int
	teams []*models.Team
	inUse map[string]bool
}

func (r *fakeTeamRepo) Create(_ context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.teams {
		if t.Name == team.Name {
			return repositories.ErrTeamNameConflict
		}
	}
	r.seq++
	team.ID = fmt.Sprintf("team-%d", r.seq)
	cp := *team
	r.teams = append(r.teams, &cp)
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id string) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.teams {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (r *fakeTeamRepo) List(_ context.Context) ([]*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Team, 0, len(r.teams))
	for _, t := range r.teams {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.teams {
		if t.ID != team.ID && t.Name == team.Name {
			return repositories.ErrTeamNameConflict
		}
	}
	for _, t := range r.teams {
		if t.ID == team.ID {
			t.Name = team.Name
			return nil
		}
	}
	return repositories.ErrTeamNotFound
}

func (r *fakeTeamRepo) UpdateLogoKey(_ context.Context, id string, logoKey *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.teams {
		if t.ID == id {
			t.LogoKey = logoKey
			return nil
		}
	}
	return repositories.ErrTeamNotFound
}

func (r *fakeTeamRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inUse[id] {
		return repositories.ErrTeamInUse
	}
	for i, t := range r.teams {
		if t.ID == id {
			r.teams = append(r.teams[:i], r.teams[i+1:]...)
			return nil
		}
	}
	return repositories.ErrTeamNotFound
}

type fakeTournamentRepo struct {
	tournaments map[string]*models.Tournament
	err         error
}

func newFakeTournamentRepo(ts ...*models.Tournament) *fakeTournamentRepo {
	r := &fakeTournamentRepo{tournaments: make(map[string]*models.Tournament)}
	for _, t := range ts {
		r.tournaments[t.ID] = t
	}
	return r
}

func (r *fakeTournamentRepo) Create(_ context.Context, t *models.Tournament) error {
	for _, existing := range r.tournaments {
		if existing.Name == t.Name && existing.Year == t.Year {
			return repositories.ErrTournamentNameConflict
		}
	}
	t.ID = fmt.Sprintf("tournament-%d", len(r.tournaments)+1)
	cp := *t
	r.tournaments[t.ID] = &cp
	return nil
}

func (r *fakeTournamentRepo) GetByID(_ context.Context, id string) (*models.Tournament, error) {
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTournamentRepo) List(_ context.Context) ([]*models.Tournament, error) {
	out := make([]*models.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTournamentRepo) Update(_ context.Context, t *models.Tournament) error {
	if _, ok := r.tournaments[t.ID]; !ok {
		return repositories.ErrTournamentNotFound
	}
	cp := *t
	r.tournaments[t.ID] = &cp
	return nil
}

func (r *fakeTournamentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tournaments[id]; !ok {
		return repositories.ErrTournamentNotFound
	}
	delete(r.tournaments, id)
	return nil
}

type fakeGroupRepo struct {
	mu     sync.Mutex
	teams  *fakeTeamRepo
	groups []*models.Group
	err    error
}

func (r *fakeGroupRepo) Create(_ context.Context, g *models.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.groups {
		if existing.TournamentID == g.TournamentID && existing.Name == g.Name {
			return repositories.ErrGroupNameConflict
		}
	}
	g.ID = fmt.Sprintf("group-%d", len(r.groups)+1)
	g.Teams = []models.Team{}
	cp := *g
	r.groups = append(r.groups, &cp)
	return nil
}

func (r *fakeGroupRepo) GetByID(_ context.Context, id string) (*models.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.groups {
		if g.ID == id {
			cp := *g
			cp.Teams = append([]models.Team{}, g.Teams...)
			return &cp, nil
		}
	}
	return nil, repositories.ErrGroupNotFound
}

func (r *fakeGroupRepo) ListByTournament(_ context.Context, tournamentID string) ([]models.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.Group, 0)
	for _, g := range r.groups {
		if g.TournamentID == tournamentID {
			cp := *g
			cp.Teams = append([]models.Team{}, g.Teams...)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r *fakeGroupRepo) AddTeam(ctx context.Context, tournamentID, groupID, teamID string) error {
	team, err := r.teams.GetByID(ctx, teamID)
	if err != nil {
		return repositories.ErrGroupTeamInvalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.groups {
		if g.TournamentID == tournamentID && g.HasTeam(teamID) {
			return repositories.ErrTeamAlreadyGrouped
		}
	}
	for _, g := range r.groups {
		if g.ID == groupID {
			g.Teams = append(g.Teams, *team)
			return nil
		}
	}
	return repositories.ErrGroupNotFound
}

func (r *fakeGroupRepo) RemoveTeam(_ context.Context, groupID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.groups {
		if g.ID != groupID {
			continue
		}
		for i, t := range g.Teams {
			if t.ID == teamID {
				g.Teams = append(g.Teams[:i], g.Teams[i+1:]...)
				return nil
			}
		}
	}
	return repositories.ErrGroupTeamNotFound
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	matches []*models.Match
	err     error
}

func (r *fakeMatchRepo) CreateMany(_ context.Context, matches []*models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range matches {
		m.ID = fmt.Sprintf("match-%d", len(r.matches)+1)
		cp := *m
		r.matches = append(r.matches, &cp)
	}
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id string) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.matches {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) ListByTournament(_ context.Context, tournamentID string, filter models.MatchFilter) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.Match, 0)
	for _, m := range r.matches {
		if m.TournamentID != tournamentID {
			continue
		}
		if filter == models.MatchFilterPlayed && !m.IsPlayed() || filter == models.MatchFilterPending && m.IsPlayed() {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMatchRepo) CountByTournament(_ context.Context, tournamentID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.matches {
		if m.TournamentID == tournamentID {
			n++
		}
	}
	return n, nil
}

func (r *fakeMatchRepo) UpdateScore(_ context.Context, id string, score models.Score) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.matches {
		if m.ID == id {
			s := score
			m.Score = &s
			return nil
		}
	}
	return repositories.ErrMatchNotFound
}

type fakeUploader struct {
	uploaded map[string]string
	deleted  []string
	err      error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploaded: make(map[string]string)}
}

func (u *fakeUploader) Upload(_ context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	if _, err := io.ReadAll(reader); err != nil {
		return nil, err
	}
	u.uploaded[key] = contentType
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	u.deleted = append(u.deleted, key)
	delete(u.uploaded, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.test/" + key
}

type fakeBroadcaster struct {
	mu       sync.Mutex
	rooms    []string
	messages []interface{}
}

func (b *fakeBroadcaster) BroadcastToRoom(roomID string, message interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rooms = append(b.rooms, roomID)
	b.messages = append(b.messages, message)
}

// nflTournament returns a tournament with two groups of two teams per
// conference, all teams already grouped.
func nflTournament(teamRepo *fakeTeamRepo, groupRepo *fakeGroupRepo) *models.Tournament {
	ctx := context.Background()
	t := &models.Tournament{
		ID:   "t1",
		Name: "League",
		Year: 2024,
		Format: models.TournamentFormat{
			NumberOfGroups:         4,
			MaxTeamsPerGroup:       2,
			MaxGroupsPerConference: 2,
			Type:                   models.TournamentTypeNFL,
		},
	}
	layout := []struct {
		name       string
		conference models.Conference
	}{
		{"East", models.ConferenceAFC},
		{"West", models.ConferenceAFC},
		{"North", models.ConferenceNFC},
		{"South", models.ConferenceNFC},
	}
	for _, l := range layout {
		g := &models.Group{TournamentID: t.ID, Name: l.name, Conference: l.conference}
		_ = groupRepo.Create(ctx, g)
		for i := 1; i <= 2; i++ {
			team := &models.Team{Name: fmt.Sprintf("%s %d", l.name, i)}
			_ = teamRepo.Create(ctx, team)
			_ = groupRepo.AddTeam(ctx, t.ID, g.ID, team.ID)
		}
	}
	return t
}
