package roster

import (
	"testing"

	"github.com/vats-app/vats-api/internal/domain/sport"
)

func TestSelection_PicksForSport(t *testing.T) {
	sel := Selection{
		UserID: "user-1",
		Picks: []Pick{
			{TeamID: "alabama", Sport: sport.Football},
			{TeamID: "kansas", Sport: sport.MensBasketball},
			{TeamID: "georgia", Sport: sport.Football},
		},
	}

	picks := sel.PicksForSport(sport.Football)
	if len(picks) != 2 {
		t.Fatalf("unexpected pick count: %d", len(picks))
	}
	if picks[0].TeamID != "alabama" || picks[1].TeamID != "georgia" {
		t.Fatalf("slot order not preserved: %+v", picks)
	}
}

func TestSelection_PicksForSport_NilPicks(t *testing.T) {
	sel := Selection{UserID: "user-1"}
	if picks := sel.PicksForSport(sport.Football); picks != nil {
		t.Fatalf("expected nil picks, got %+v", picks)
	}
}

func TestSelection_ReplaceSport(t *testing.T) {
	sel := Selection{
		UserID: "user-1",
		Picks: []Pick{
			{TeamID: "alabama", Sport: sport.Football},
			{TeamID: "kansas", Sport: sport.MensBasketball},
		},
	}

	sel.ReplaceSport(sport.Football, []Pick{
		{TeamID: "michigan", Sport: sport.Football},
	})

	if len(sel.Picks) != 2 {
		t.Fatalf("unexpected pick count after replace: %d", len(sel.Picks))
	}
	if got := sel.PicksForSport(sport.MensBasketball); len(got) != 1 || got[0].TeamID != "kansas" {
		t.Fatalf("other sport picks must be untouched: %+v", got)
	}
	if got := sel.PicksForSport(sport.Football); len(got) != 1 || got[0].TeamID != "michigan" {
		t.Fatalf("football picks not replaced: %+v", got)
	}
}

func TestSelection_PerkAdjustment(t *testing.T) {
	sel := Selection{PerkAdjustments: map[string]int{sport.Football: 5}}
	if got := sel.PerkAdjustment(sport.Football); got != 5 {
		t.Fatalf("unexpected perk: %d", got)
	}
	if got := sel.PerkAdjustment(sport.Baseball); got != 0 {
		t.Fatalf("missing sport must default to 0, got %d", got)
	}

	var empty Selection
	if got := empty.PerkAdjustment(sport.Football); got != 0 {
		t.Fatalf("nil map must default to 0, got %d", got)
	}
}

func TestValidateSportPicks(t *testing.T) {
	if err := ValidateSportPicks(sport.Football, []Pick{{TeamID: "alabama"}}); err != nil {
		t.Fatalf("valid picks rejected: %v", err)
	}

	if err := ValidateSportPicks("overall", nil); err == nil {
		t.Fatal("expected error for untracked sport")
	}

	tooMany := make([]Pick, SlotCount+1)
	for i := range tooMany {
		tooMany[i] = Pick{TeamID: "team"}
	}
	if err := ValidateSportPicks(sport.Football, tooMany); err == nil {
		t.Fatal("expected error for too many picks")
	}

	if err := ValidateSportPicks(sport.Football, []Pick{{TeamID: "duke", Sport: sport.MensBasketball}}); err == nil {
		t.Fatal("expected error for pick tagged with another sport")
	}

	if err := ValidateSportPicks(sport.Football, []Pick{{}}); err == nil {
		t.Fatal("expected error for pick with no team id or school name")
	}

	if err := ValidateSportPicks(sport.Football, []Pick{{SchoolName: "Alabama"}}); err != nil {
		t.Fatalf("school-name-only pick rejected: %v", err)
	}
}
