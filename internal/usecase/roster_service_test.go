package usecase

import (
	"errors"
	"testing"

	"github.com/vats-app/vats-api/internal/domain/roster"
	"github.com/vats-app/vats-api/internal/domain/sport"
	"github.com/vats-app/vats-api/internal/infrastructure/repository/memory"
)

func TestRosterService_GetSelections_MissingUser(t *testing.T) {
	svc := NewRosterService(memory.NewRosterRepository(nil))

	view, err := svc.GetSelections(t.Context(), "user-404", sport.Football)
	if err != nil {
		t.Fatalf("missing user must not error: %v", err)
	}
	if view.UserID != "user-404" || view.Sport != sport.Football {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Picks == nil || len(view.Picks) != 0 {
		t.Fatalf("missing user must get an empty pick list, got %+v", view.Picks)
	}
}

func TestRosterService_GetSelections_InvalidInput(t *testing.T) {
	svc := NewRosterService(memory.NewRosterRepository(nil))

	if _, err := svc.GetSelections(t.Context(), "  ", sport.Football); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.GetSelections(t.Context(), "user-1", "curling"); !errors.Is(err, ErrSportNotConfigured) {
		t.Fatalf("expected ErrSportNotConfigured, got %v", err)
	}
	if _, err := svc.GetSelections(t.Context(), "user-1", sport.Overall); !errors.Is(err, ErrSportNotConfigured) {
		t.Fatalf("overall must not be selectable, got %v", err)
	}
}

func TestRosterService_SaveSelections_ReplacesSportOnly(t *testing.T) {
	repo := memory.NewRosterRepository(memory.SeedSelections())
	svc := NewRosterService(repo)

	view, err := svc.SaveSelections(t.Context(), SaveSelectionsInput{
		UserID: "user-001",
		Sport:  sport.Football,
		Picks:  []roster.Pick{{TeamID: " michigan "}},
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(view.Picks) != 1 || view.Picks[0].TeamID != "michigan" {
		t.Fatalf("team ids must be trimmed, got %+v", view.Picks)
	}
	if view.Picks[0].Sport != sport.Football {
		t.Fatalf("saved picks must be tagged with the sport, got %q", view.Picks[0].Sport)
	}
	if view.PerkAdjustment != 5 {
		t.Fatalf("existing perk must survive a save, got %d", view.PerkAdjustment)
	}

	stored, exists, err := repo.GetByUser(t.Context(), "user-001")
	if err != nil || !exists {
		t.Fatalf("stored selection missing: %v", err)
	}
	if got := stored.PicksForSport(sport.Football); len(got) != 1 || got[0].TeamID != "michigan" {
		t.Fatalf("football picks not replaced: %+v", got)
	}
	if got := stored.PicksForSport(sport.MensBasketball); len(got) != 1 || got[0].TeamID != "kansas" {
		t.Fatalf("other sports must be untouched: %+v", got)
	}
}

func TestRosterService_SaveSelections_NewUser(t *testing.T) {
	repo := memory.NewRosterRepository(nil)
	svc := NewRosterService(repo)

	view, err := svc.SaveSelections(t.Context(), SaveSelectionsInput{
		UserID: "user-new",
		Sport:  sport.Baseball,
		Picks:  []roster.Pick{{TeamID: "lsu"}},
	})
	if err != nil {
		t.Fatalf("save for new user failed: %v", err)
	}
	if view.PerkAdjustment != 0 {
		t.Fatalf("new user must have no perk, got %d", view.PerkAdjustment)
	}

	if _, exists, _ := repo.GetByUser(t.Context(), "user-new"); !exists {
		t.Fatal("selection record not created")
	}
}

func TestRosterService_SaveSelections_Invalid(t *testing.T) {
	svc := NewRosterService(memory.NewRosterRepository(nil))

	tooMany := make([]roster.Pick, roster.SlotCount+1)
	for i := range tooMany {
		tooMany[i] = roster.Pick{TeamID: "team"}
	}

	tests := []struct {
		name  string
		input SaveSelectionsInput
	}{
		{"blank user", SaveSelectionsInput{UserID: " ", Sport: sport.Football}},
		{"unknown sport", SaveSelectionsInput{UserID: "user-1", Sport: "curling"}},
		{"overall sport", SaveSelectionsInput{UserID: "user-1", Sport: sport.Overall}},
		{"too many picks", SaveSelectionsInput{UserID: "user-1", Sport: sport.Football, Picks: tooMany}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.SaveSelections(t.Context(), tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRosterService_SavePerkAdjustment(t *testing.T) {
	repo := memory.NewRosterRepository(nil)
	svc := NewRosterService(repo)

	if err := svc.SavePerkAdjustment(t.Context(), "user-001", sport.Football, -10); err != nil {
		t.Fatalf("perk save failed: %v", err)
	}

	stored, exists, err := repo.GetByUser(t.Context(), "user-001")
	if err != nil || !exists {
		t.Fatalf("perk record missing: %v", err)
	}
	if got := stored.PerkAdjustment(sport.Football); got != -10 {
		t.Fatalf("unexpected perk: %d", got)
	}

	// Saving again overwrites rather than accumulates.
	if err := svc.SavePerkAdjustment(t.Context(), "user-001", sport.Football, 3); err != nil {
		t.Fatalf("perk overwrite failed: %v", err)
	}
	stored, _, _ = repo.GetByUser(t.Context(), "user-001")
	if got := stored.PerkAdjustment(sport.Football); got != 3 {
		t.Fatalf("perk must overwrite, got %d", got)
	}
}

func TestRosterService_SavePerkAdjustment_Invalid(t *testing.T) {
	svc := NewRosterService(memory.NewRosterRepository(nil))

	if err := svc.SavePerkAdjustment(t.Context(), "", sport.Football, 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := svc.SavePerkAdjustment(t.Context(), "user-1", sport.Overall, 1); !errors.Is(err, ErrSportNotConfigured) {
		t.Fatalf("expected ErrSportNotConfigured, got %v", err)
	}
}
