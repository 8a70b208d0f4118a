package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/vats-app/vats-api/internal/domain/roster"
	"github.com/vats-app/vats-api/internal/domain/score"
	"github.com/vats-app/vats-api/internal/domain/sport"
	"github.com/vats-app/vats-api/internal/infrastructure/repository/memory"
)

func newSeededLeaderboardService() *LeaderboardService {
	return NewLeaderboardService(
		memory.NewDirectory(memory.SeedUsers()),
		memory.NewRosterRepository(memory.SeedSelections()),
		memory.NewScoreRepository(memory.SeedScores()),
		nil,
		nil,
	)
}

func TestLeaderboardService_Compute_Football(t *testing.T) {
	svc := newSeededLeaderboardService()

	board, err := svc.Compute(t.Context(), sport.Football)
	if err != nil {
		t.Fatalf("compute football failed: %v", err)
	}

	if board.Sport != sport.Football {
		t.Fatalf("unexpected sport: %s", board.Sport)
	}
	if board.Disabled {
		t.Fatal("football must not be disabled")
	}
	if len(board.UserScores) != 3 {
		t.Fatalf("unexpected row count: %d", len(board.UserScores))
	}

	// user-002: ohio-state 140 + michigan 45. user-001: alabama 65 +
	// georgia 55 + perk 5. user-003 has no football picks but still rows.
	first, second, third := board.UserScores[0], board.UserScores[1], board.UserScores[2]
	if first.UserID != "user-002" || first.TotalPoints != 185 {
		t.Fatalf("unexpected leader: %s with %d", first.UserID, first.TotalPoints)
	}
	if second.UserID != "user-001" || second.TotalPoints != 125 {
		t.Fatalf("unexpected runner-up: %s with %d", second.UserID, second.TotalPoints)
	}
	if second.PerkAdjustment != 5 {
		t.Fatalf("perk not applied: %d", second.PerkAdjustment)
	}
	if third.UserID != "user-003" || third.TotalPoints != 0 {
		t.Fatalf("unexpected last row: %s with %d", third.UserID, third.TotalPoints)
	}
	if len(third.Teams) != 0 {
		t.Fatalf("user without picks for the sport must have no teams: %+v", third.Teams)
	}

	if first.Name != "Sam Carter" {
		t.Fatalf("unexpected display name: %s", first.Name)
	}
	if len(first.Teams) != 2 {
		t.Fatalf("unexpected team count: %d", len(first.Teams))
	}
	if first.Teams[0].SchoolName != "Ohio State" || first.Teams[0].Conference != "Big Ten" {
		t.Fatalf("team metadata not resolved: %+v", first.Teams[0])
	}
	if first.SportPoints != nil {
		t.Fatal("single-sport rows must not carry per-sport subtotals")
	}
}

func TestLeaderboardService_Compute_Overall(t *testing.T) {
	svc := newSeededLeaderboardService()

	board, err := svc.Compute(t.Context(), sport.Overall)
	if err != nil {
		t.Fatalf("compute overall failed: %v", err)
	}

	if board.Sport != sport.Overall {
		t.Fatalf("unexpected sport: %s", board.Sport)
	}
	if len(board.UserScores) != 3 {
		t.Fatalf("unexpected row count: %d", len(board.UserScores))
	}

	// user-001: football 125 + mbb 100 + wbb 140 + baseball 115 = 480.
	// user-002: football 185 + mbb 110 + softball 155 = 450.
	// user-003: wbb 115 - 5 = 110.
	first := board.UserScores[0]
	if first.UserID != "user-001" || first.TotalPoints != 480 {
		t.Fatalf("unexpected overall leader: %s with %d", first.UserID, first.TotalPoints)
	}
	if first.SportPoints[sport.Football] != 125 {
		t.Fatalf("unexpected football subtotal: %d", first.SportPoints[sport.Football])
	}
	if first.SportPoints[sport.Softball] != 0 {
		t.Fatalf("sport without picks must subtotal 0, got %d", first.SportPoints[sport.Softball])
	}
	if len(first.Teams) != 0 {
		t.Fatal("overall rows must not carry team breakdowns")
	}

	second := board.UserScores[1]
	if second.UserID != "user-002" || second.TotalPoints != 450 {
		t.Fatalf("unexpected second row: %s with %d", second.UserID, second.TotalPoints)
	}

	third := board.UserScores[2]
	if third.UserID != "user-003" || third.TotalPoints != 110 {
		t.Fatalf("unexpected third row: %s with %d", third.UserID, third.TotalPoints)
	}
	if third.SportPoints[sport.WomensBasketball] != 110 {
		t.Fatalf("perk must be folded into the sport subtotal, got %d", third.SportPoints[sport.WomensBasketball])
	}
}

func TestLeaderboardService_Compute_UnknownSport(t *testing.T) {
	svc := newSeededLeaderboardService()

	_, err := svc.Compute(t.Context(), "curling")
	if !errors.Is(err, ErrSportNotConfigured) {
		t.Fatalf("expected ErrSportNotConfigured, got %v", err)
	}
}

func TestLeaderboardService_Compute_DisabledSport(t *testing.T) {
	sports := sport.ApplyInactive(sport.Config(), []string{sport.Baseball})
	svc := NewLeaderboardService(
		memory.NewDirectory(memory.SeedUsers()),
		memory.NewRosterRepository(memory.SeedSelections()),
		memory.NewScoreRepository(memory.SeedScores()),
		nil,
		sports,
	)

	board, err := svc.Compute(t.Context(), sport.Baseball)
	if err != nil {
		t.Fatalf("disabled sport must not error: %v", err)
	}
	if !board.Disabled {
		t.Fatal("expected disabled leaderboard")
	}
	if board.Message == "" {
		t.Fatal("disabled leaderboard must carry a message")
	}
	if len(board.UserScores) != 0 {
		t.Fatalf("disabled leaderboard must have no rows: %+v", board.UserScores)
	}
}

func TestLeaderboardService_Compute_SnapshotPointsWin(t *testing.T) {
	regular := 99
	rosterRepo := memory.NewRosterRepository([]roster.Selection{
		{
			UserID: "user-001",
			Picks: []roster.Pick{
				{TeamID: "alabama", Sport: sport.Football, RegularSeasonPoints: &regular},
			},
		},
	})
	svc := NewLeaderboardService(
		memory.NewDirectory(memory.SeedUsers()),
		rosterRepo,
		memory.NewScoreRepository(memory.SeedScores()),
		nil,
		nil,
	)

	board, err := svc.Compute(t.Context(), sport.Football)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	team := board.UserScores[0].Teams[0]
	// The snapshot's 99 beats the stored 55; the postseason field stays
	// nil in the snapshot so the stored 10 fills it.
	if team.RegularSeasonPoints != 99 {
		t.Fatalf("snapshot points must win, got %d", team.RegularSeasonPoints)
	}
	if team.PostseasonPoints != 10 {
		t.Fatalf("nil snapshot field must fall back to the store, got %d", team.PostseasonPoints)
	}
	if team.TotalPoints != 109 {
		t.Fatalf("unexpected total: %d", team.TotalPoints)
	}
}

func TestLeaderboardService_Compute_NilPicksSkipsRow(t *testing.T) {
	rosterRepo := memory.NewRosterRepository([]roster.Selection{
		{UserID: "user-001"},
		{UserID: "user-002", Picks: []roster.Pick{}},
	})
	svc := NewLeaderboardService(
		memory.NewDirectory(memory.SeedUsers()),
		rosterRepo,
		memory.NewScoreRepository(nil),
		nil,
		nil,
	)

	board, err := svc.Compute(t.Context(), sport.Football)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	// user-001 never made a pick; user-002 has an empty-but-present list.
	if len(board.UserScores) != 1 {
		t.Fatalf("unexpected row count: %d", len(board.UserScores))
	}
	if board.UserScores[0].UserID != "user-002" {
		t.Fatalf("unexpected row: %s", board.UserScores[0].UserID)
	}
}

func TestLeaderboardService_Compute_UnknownUserFallsBackToID(t *testing.T) {
	rosterRepo := memory.NewRosterRepository([]roster.Selection{
		{UserID: "ghost-user", Picks: []roster.Pick{{TeamID: "alabama", Sport: sport.Football}}},
	})
	svc := NewLeaderboardService(
		memory.NewDirectory(memory.SeedUsers()),
		rosterRepo,
		memory.NewScoreRepository(memory.SeedScores()),
		nil,
		nil,
	)

	board, err := svc.Compute(t.Context(), sport.Football)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if board.UserScores[0].Name != "ghost-user" {
		t.Fatalf("display name must fall back to the raw id, got %q", board.UserScores[0].Name)
	}
}

func TestLeaderboardService_Compute_MetaFallsBackToCatalog(t *testing.T) {
	rosterRepo := memory.NewRosterRepository([]roster.Selection{
		{UserID: "user-001", Picks: []roster.Pick{{TeamID: "tennessee", Sport: sport.Football}}},
	})
	svc := NewLeaderboardService(
		memory.NewDirectory(memory.SeedUsers()),
		rosterRepo,
		memory.NewScoreRepository(nil),
		nil,
		nil,
	)

	board, err := svc.Compute(t.Context(), sport.Football)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	team := board.UserScores[0].Teams[0]
	if team.SchoolName != "Tennessee" || team.Conference != "SEC" {
		t.Fatalf("catalog fallback not applied: %+v", team)
	}
}

func TestLeaderboardService_Compute_ScoreStoreFailure(t *testing.T) {
	svc := NewLeaderboardService(
		memory.NewDirectory(memory.SeedUsers()),
		memory.NewRosterRepository(memory.SeedSelections()),
		failingScoreRepo{},
		nil,
		nil,
	)

	if _, err := svc.Compute(t.Context(), sport.Football); err == nil {
		t.Fatal("expected score store failure to propagate")
	}
	if _, err := svc.ComputeOverall(t.Context()); err == nil {
		t.Fatal("expected overall aggregation to abort on the first failure")
	}
}

func TestLeaderboardService_ComputeOverall_StableTies(t *testing.T) {
	rosterRepo := memory.NewRosterRepository([]roster.Selection{
		{UserID: "user-001", Picks: []roster.Pick{}},
		{UserID: "user-002", Picks: []roster.Pick{}},
		{UserID: "user-003", Picks: []roster.Pick{}},
	})
	svc := NewLeaderboardService(
		memory.NewDirectory(memory.SeedUsers()),
		rosterRepo,
		memory.NewScoreRepository(nil),
		nil,
		nil,
	)

	first, err := svc.ComputeOverall(t.Context())
	if err != nil {
		t.Fatalf("compute overall failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := svc.ComputeOverall(t.Context())
		if err != nil {
			t.Fatalf("compute overall failed: %v", err)
		}
		for j := range first.UserScores {
			if again.UserScores[j].UserID != first.UserScores[j].UserID {
				t.Fatalf("tie order must be stable across runs: %+v vs %+v", first.UserScores, again.UserScores)
			}
		}
	}
}

type failingScoreRepo struct{}

func (failingScoreRepo) Scan(context.Context, string) ([]score.TeamScore, error) {
	return nil, errors.New("score store down")
}

func (failingScoreRepo) Get(context.Context, string, string) (score.TeamScore, bool, error) {
	return score.TeamScore{}, false, errors.New("score store down")
}

func (failingScoreRepo) Upsert(context.Context, score.TeamScore) error {
	return errors.New("score store down")
}
