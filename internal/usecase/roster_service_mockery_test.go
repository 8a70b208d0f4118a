package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/vats-app/vats-api/internal/domain/roster"
	rostermock "github.com/vats-app/vats-api/internal/mocks/domain/roster"
)

func TestRosterService_GetSelections_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	rosterRepo := rostermock.NewRepository(t)
	service := NewRosterService(rosterRepo)

	rosterRepo.
		On("GetByUser", mock.Anything, "user-9").
		Return(roster.Selection{
			UserID: "user-9",
			Picks: []roster.Pick{
				{Sport: "football", TeamID: "michigan"},
				{Sport: "mens-basketball", TeamID: "kansas"},
			},
			PerkAdjustments: map[string]int{"football": 5},
		}, true, nil).
		Once()

	view, err := service.GetSelections(context.Background(), "user-9", "football")
	if err != nil {
		t.Fatalf("get selections: %v", err)
	}
	if len(view.Picks) != 1 || view.Picks[0].TeamID != "michigan" {
		t.Fatalf("unexpected picks: %+v", view.Picks)
	}
	if view.PerkAdjustment != 5 {
		t.Fatalf("unexpected perk adjustment: %d", view.PerkAdjustment)
	}
}

func TestRosterService_GetSelections_RepoErrorUsingMockery(t *testing.T) {
	t.Parallel()

	rosterRepo := rostermock.NewRepository(t)
	service := NewRosterService(rosterRepo)

	repoErr := errors.New("connection reset")
	rosterRepo.
		On("GetByUser", mock.Anything, "user-9").
		Return(roster.Selection{}, false, repoErr).
		Once()

	_, err := service.GetSelections(context.Background(), "user-9", "football")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestRosterService_SaveSelections_ReplacesOnlyTargetSportUsingMockery(t *testing.T) {
	t.Parallel()

	rosterRepo := rostermock.NewRepository(t)
	service := NewRosterService(rosterRepo)

	rosterRepo.
		On("GetByUser", mock.Anything, "user-9").
		Return(roster.Selection{
			UserID: "user-9",
			Picks:  []roster.Pick{{Sport: "mens-basketball", TeamID: "kansas"}},
		}, true, nil).
		Once()
	rosterRepo.
		On("Upsert", mock.Anything, mock.MatchedBy(func(sel roster.Selection) bool {
			if sel.UserID != "user-9" {
				return false
			}
			football := 0
			basketball := 0
			for _, p := range sel.Picks {
				switch p.Sport {
				case "football":
					football++
				case "mens-basketball":
					basketball++
				}
			}
			return football == 2 && basketball == 1
		})).
		Return(nil).
		Once()

	view, err := service.SaveSelections(context.Background(), SaveSelectionsInput{
		UserID: "user-9",
		Sport:  "football",
		Picks: []roster.Pick{
			{TeamID: "michigan"},
			{TeamID: "ohio-state"},
		},
	})
	if err != nil {
		t.Fatalf("save selections: %v", err)
	}
	if len(view.Picks) != 2 {
		t.Fatalf("unexpected saved pick count: %d", len(view.Picks))
	}
}
