package schedule

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Dosada05/tournament-standings/models"
)

func buildGroups(numGroups, teamsPerGroup int) []models.Group {
	groups := make([]models.Group, numGroups)
	for g := range groups {
		groups[g] = models.Group{ID: fmt.Sprintf("g%d", g), Name: fmt.Sprintf("Division %d", g)}
		for t := 0; t < teamsPerGroup; t++ {
			id := fmt.Sprintf("g%d-t%d", g, t)
			groups[g].Teams = append(groups[g].Teams, models.Team{ID: id, Name: "Team " + id})
		}
	}
	return groups
}

func tournamentWith(format models.TournamentFormat) *models.Tournament {
	return &models.Tournament{ID: "tour-1", Name: "League", Format: format}
}

func TestForType(t *testing.T) {
	tests := []struct {
		typ     models.TournamentType
		want    string
		wantErr bool
	}{
		{models.TournamentTypeNFL, "NFL", false},
		{models.TournamentTypeRoundRobin, "ROUND_ROBIN", false},
		{"KNOCKOUT", "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			gen, err := ForType(tt.typ)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gen.Name() != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, gen.Name())
			}
		})
	}
}

func TestNFLGeneratorCounts(t *testing.T) {
	tournament := tournamentWith(models.DefaultTournamentFormat())
	matches, err := NewNFLGenerator().Generate(GenerateParams{Tournament: tournament, Groups: buildGroups(8, 4)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// 8 groups * C(4,2) division games + 4 positions * C(8,2) cross games.
	if want := 8*6 + 4*28; len(matches) != want {
		t.Fatalf("expected %d matches, got %d", want, len(matches))
	}

	games := make(map[string]int)
	for _, m := range matches {
		if m.Round != models.RoundRegular {
			t.Fatalf("expected regular round, got %s", m.Round)
		}
		if m.Score != nil {
			t.Fatal("expected unplayed match")
		}
		if m.TournamentID != "tour-1" {
			t.Fatalf("expected tournament id tour-1, got %s", m.TournamentID)
		}
		if m.Home.ID == m.Visitor.ID {
			t.Fatalf("team %s scheduled against itself", m.Home.ID)
		}
		games[m.Home.ID]++
		games[m.Visitor.ID]++
	}
	for id, n := range games {
		if n != 3+7 {
			t.Fatalf("expected 10 games for %s, got %d", id, n)
		}
	}
}

func TestNFLGeneratorCrossDivisionPairsSamePosition(t *testing.T) {
	format := models.TournamentFormat{NumberOfGroups: 2, MaxTeamsPerGroup: 2, Type: models.TournamentTypeNFL}
	matches, err := NewNFLGenerator().Generate(GenerateParams{Tournament: tournamentWith(format), Groups: buildGroups(2, 2)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := [][2]string{
		{"g0-t0", "g0-t1"},
		{"g1-t0", "g1-t1"},
		{"g0-t0", "g1-t0"},
		{"g0-t1", "g1-t1"},
	}
	if len(matches) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(matches))
	}
	for i, m := range matches {
		if m.Home.ID != want[i][0] || m.Visitor.ID != want[i][1] {
			t.Fatalf("match %d: expected %s vs %s, got %s vs %s", i, want[i][0], want[i][1], m.Home.ID, m.Visitor.ID)
		}
	}
}

func TestRoundRobinGeneratorOnlyIntraGroup(t *testing.T) {
	format := models.TournamentFormat{NumberOfGroups: 3, MaxTeamsPerGroup: 5, Type: models.TournamentTypeRoundRobin}
	groups := buildGroups(3, 5)
	matches, err := NewRoundRobinGenerator().Generate(GenerateParams{Tournament: tournamentWith(format), Groups: groups})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if want := 3 * 10; len(matches) != want {
		t.Fatalf("expected %d matches, got %d", want, len(matches))
	}

	groupOf := make(map[string]string)
	for _, g := range groups {
		for _, team := range g.Teams {
			groupOf[team.ID] = g.ID
		}
	}
	for _, m := range matches {
		if groupOf[m.Home.ID] != groupOf[m.Visitor.ID] {
			t.Fatalf("expected intra-group match, got %s vs %s", m.Home.ID, m.Visitor.ID)
		}
	}
}

func TestGenerateValidatesGroups(t *testing.T) {
	format := models.DefaultTournamentFormat()

	tests := []struct {
		name   string
		groups []models.Group
		want   error
	}{
		{"too few groups", buildGroups(7, 4), ErrGroupCountMismatch},
		{"too many groups", buildGroups(9, 4), ErrGroupCountMismatch},
		{"incomplete group", func() []models.Group {
			groups := buildGroups(8, 4)
			groups[3].Teams = groups[3].Teams[:3]
			return groups
		}(), ErrGroupIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, gen := range []Generator{NewNFLGenerator(), NewRoundRobinGenerator()} {
				_, err := gen.Generate(GenerateParams{Tournament: tournamentWith(format), Groups: tt.groups})
				if !errors.Is(err, tt.want) {
					t.Fatalf("%s: expected %v, got %v", gen.Name(), tt.want, err)
				}
			}
		})
	}
}
