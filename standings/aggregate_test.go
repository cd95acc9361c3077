package standings

import (
	"reflect"
	"testing"

	"github.com/Dosada05/tournament-standings/models"
)

func TestAggregateSingleResult(t *testing.T) {
	groups := []models.Group{group("g1", "Division X", models.ConferenceAFC, "T1", "T2")}
	matches := []models.Match{played("m1", models.RoundRegular, "T1", "T2", 3, 1)}

	records, issues := Aggregate(groups, matches)
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}

	want := []TeamRecord{
		{TeamID: "T1", TeamName: "Team T1", Conference: models.ConferenceAFC, Division: "Division X", Wins: 1, PointsFor: 3, PointsAgainst: 1},
		{TeamID: "T2", TeamName: "Team T2", Conference: models.ConferenceAFC, Division: "Division X", Losses: 1, PointsFor: 1, PointsAgainst: 3},
	}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("expected %+v, got %+v", want, records)
	}
}

func TestAggregateTie(t *testing.T) {
	groups := []models.Group{group("g1", "North", models.ConferenceNFC, "A", "B")}
	matches := []models.Match{played("m1", models.RoundRegular, "A", "B", 17, 17)}

	records, _ := Aggregate(groups, matches)
	for _, id := range []string{"A", "B"} {
		r, _ := recordByID(records, id)
		if r.Ties != 1 || r.Wins != 0 || r.Losses != 0 {
			t.Fatalf("expected %s to have one tie, got %+v", id, r)
		}
		if r.PointsFor != 17 || r.PointsAgainst != 17 {
			t.Fatalf("expected %s points 17-17, got %d-%d", id, r.PointsFor, r.PointsAgainst)
		}
	}
}

func TestAggregateTeamWithoutGames(t *testing.T) {
	groups := []models.Group{group("g1", "South", models.ConferenceAFC, "A", "B", "C")}
	matches := []models.Match{played("m1", models.RoundRegular, "A", "B", 10, 7)}

	records, _ := Aggregate(groups, matches)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	c, ok := recordByID(records, "C")
	if !ok {
		t.Fatal("expected record for team without games")
	}
	if c.GamesPlayed() != 0 || c.PointsFor != 0 || c.PointsAgainst != 0 {
		t.Fatalf("expected empty record, got %+v", c)
	}
}

func TestAggregateIgnoresNonRegularAndUnscoredMatches(t *testing.T) {
	groups := []models.Group{group("g1", "East", models.ConferenceAFC, "A", "B")}
	pending := models.Match{
		ID:      "m0",
		Round:   models.RoundRegular,
		Home:    models.TeamRef{ID: "A"},
		Visitor: models.TeamRef{ID: "B"},
	}
	matches := []models.Match{
		pending,
		played("m1", models.RoundQuarterfinals, "A", "B", 21, 3),
		played("m2", models.RoundSemifinals, "B", "A", 14, 10),
		played("m3", models.RoundFinal, "A", "B", 7, 6),
	}

	records, issues := Aggregate(groups, matches)
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
	for _, r := range records {
		if r.GamesPlayed() != 0 || r.PointsFor != 0 || r.PointsAgainst != 0 {
			t.Fatalf("expected untouched record, got %+v", r)
		}
	}
}

func TestAggregateSkipsMalformedMatches(t *testing.T) {
	groups := []models.Group{group("g1", "West", models.ConferenceNFC, "A", "B")}
	missingHome := played("m1", models.RoundRegular, "", "B", 3, 0)
	matches := []models.Match{
		missingHome,
		played("m2", models.RoundRegular, "A", "Z", 3, 0),
		played("m3", models.RoundRegular, "A", "A", 3, 0),
		played("m4", models.RoundRegular, "A", "B", 24, 20),
	}

	records, issues := Aggregate(groups, matches)

	gotKinds := make([]IssueKind, len(issues))
	for i, is := range issues {
		gotKinds[i] = is.Kind
	}
	wantKinds := []IssueKind{IssueMissingTeamRef, IssueUngroupedTeam, IssueSelfMatch}
	if !reflect.DeepEqual(gotKinds, wantKinds) {
		t.Fatalf("expected issues %v, got %v", wantKinds, gotKinds)
	}
	if issues[1].Subject != "m2" {
		t.Fatalf("expected issue subject m2, got %q", issues[1].Subject)
	}

	a, _ := recordByID(records, "A")
	if a.Wins != 1 || a.GamesPlayed() != 1 || a.PointsFor != 24 || a.PointsAgainst != 20 {
		t.Fatalf("expected only the valid match to count for A, got %+v", a)
	}
	b, _ := recordByID(records, "B")
	if b.Losses != 1 || b.GamesPlayed() != 1 || b.PointsFor != 20 {
		t.Fatalf("expected only the valid match to count for B, got %+v", b)
	}
}

func TestAggregateConferenceFallback(t *testing.T) {
	groups := []models.Group{
		group("g1", "Unassigned", "", "A"),
		group("g2", "Typo", "XFC", "B"),
	}

	records, issues := Aggregate(groups, nil)
	for _, r := range records {
		if r.Conference != models.DefaultConference {
			t.Fatalf("expected fallback conference %s, got %s", models.DefaultConference, r.Conference)
		}
	}
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	for i, subject := range []string{"g1", "g2"} {
		if issues[i].Kind != IssueConferenceFallback || issues[i].Subject != subject {
			t.Fatalf("expected fallback issue for %s, got %+v", subject, issues[i])
		}
	}
}

func TestAggregateDuplicateTeamKeepsFirstGroup(t *testing.T) {
	groups := []models.Group{
		group("g1", "North", models.ConferenceAFC, "A"),
		group("g2", "South", models.ConferenceNFC, "A", "B"),
	}

	records, issues := Aggregate(groups, nil)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	a, _ := recordByID(records, "A")
	if a.Division != "North" || a.Conference != models.ConferenceAFC {
		t.Fatalf("expected A to stay in North/AFC, got %s/%s", a.Division, a.Conference)
	}
	if len(issues) != 1 || issues[0].Kind != IssueDuplicateTeam {
		t.Fatalf("expected one duplicate issue, got %v", issues)
	}
}

func TestAggregateMatchOrderDoesNotMatter(t *testing.T) {
	groups := []models.Group{group("g1", "North", models.ConferenceAFC, "A", "B", "C")}
	matches := []models.Match{
		played("m1", models.RoundRegular, "A", "B", 10, 3),
		played("m2", models.RoundRegular, "B", "C", 7, 7),
		played("m3", models.RoundRegular, "C", "A", 21, 14),
		played("m4", models.RoundRegular, "A", "C", 0, 3),
	}
	reversed := make([]models.Match, len(matches))
	for i, m := range matches {
		reversed[len(matches)-1-i] = m
	}

	forward, _ := Aggregate(groups, matches)
	backward, _ := Aggregate(groups, reversed)
	if !reflect.DeepEqual(forward, backward) {
		t.Fatalf("expected identical records, got %+v and %+v", forward, backward)
	}
}

func TestAggregateGamesPlayedMatchesParticipation(t *testing.T) {
	groups := []models.Group{
		group("g1", "North", models.ConferenceAFC, "A", "B"),
		group("g2", "East", models.ConferenceNFC, "C", "D"),
	}
	matches := []models.Match{
		played("m1", models.RoundRegular, "A", "B", 10, 3),
		played("m2", models.RoundRegular, "A", "C", 3, 3),
		played("m3", models.RoundRegular, "D", "A", 0, 9),
		played("m4", models.RoundRegular, "C", "B", 12, 13),
		played("m5", models.RoundFinal, "A", "D", 12, 13),
	}

	records, _ := Aggregate(groups, matches)
	want := map[string]int{"A": 3, "B": 2, "C": 2, "D": 1}
	for id, games := range want {
		r, _ := recordByID(records, id)
		if r.GamesPlayed() != games {
			t.Fatalf("expected %s to have %d games, got %d", id, games, r.GamesPlayed())
		}
	}
}
