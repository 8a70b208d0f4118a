package usecase

import (
	"testing"

	"github.com/vats-app/vats-api/internal/domain/sport"
)

func TestSportService_ListConfig(t *testing.T) {
	svc := NewSportService(nil)

	sports, err := svc.ListConfig(t.Context())
	if err != nil {
		t.Fatalf("list config failed: %v", err)
	}
	if len(sports) != 6 {
		t.Fatalf("unexpected sport count: %d", len(sports))
	}

	// Mutating the returned slice must not leak into the service.
	sports[0].StandingsActive = false
	again, _ := svc.ListConfig(t.Context())
	if !again[0].StandingsActive {
		t.Fatal("returned config must be a copy")
	}
}

func TestSportService_ListConfig_InactiveApplied(t *testing.T) {
	svc := NewSportService(sport.ApplyInactive(sport.Config(), []string{sport.Softball}))

	sports, err := svc.ListConfig(t.Context())
	if err != nil {
		t.Fatalf("list config failed: %v", err)
	}
	for _, s := range sports {
		if s.ID == sport.Softball && s.StandingsActive {
			t.Fatal("softball should be inactive")
		}
		if s.ID == sport.Football && !s.StandingsActive {
			t.Fatal("football should stay active")
		}
	}
}
