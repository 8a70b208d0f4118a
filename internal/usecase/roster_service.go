package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/vats-app/vats-api/internal/domain/roster"
	"github.com/vats-app/vats-api/internal/domain/sport"
)

// SelectionView is one user's roster for one sport plus their perk
// correction for it.
type SelectionView struct {
	UserID         string
	Sport          string
	Picks          []roster.Pick
	PerkAdjustment int
}

type SaveSelectionsInput struct {
	UserID string
	Sport  string
	Picks  []roster.Pick
}

// RosterService manages team selections. Saves are whole-list replace per
// sport; no delete operation exists.
type RosterService struct {
	rosterRepo roster.Repository
}

func NewRosterService(rosterRepo roster.Repository) *RosterService {
	return &RosterService{rosterRepo: rosterRepo}
}

func (s *RosterService) GetSelections(ctx context.Context, userID, sportID string) (SelectionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetSelections")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return SelectionView{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if !sport.IsTracked(sportID) {
		return SelectionView{}, fmt.Errorf("%w: unknown sport %q", ErrSportNotConfigured, sportID)
	}

	sel, exists, err := s.rosterRepo.GetByUser(ctx, userID)
	if err != nil {
		return SelectionView{}, fmt.Errorf("get selections user=%s: %w", userID, err)
	}
	if !exists {
		return SelectionView{
			UserID: userID,
			Sport:  sportID,
			Picks:  []roster.Pick{},
		}, nil
	}

	return SelectionView{
		UserID:         userID,
		Sport:          sportID,
		Picks:          sel.PicksForSport(sportID),
		PerkAdjustment: sel.PerkAdjustment(sportID),
	}, nil
}

func (s *RosterService) SaveSelections(ctx context.Context, input SaveSelectionsInput) (SelectionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SaveSelections")
	defer span.End()

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return SelectionView{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := roster.ValidateSportPicks(input.Sport, input.Picks); err != nil {
		return SelectionView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	picks := make([]roster.Pick, 0, len(input.Picks))
	for _, p := range input.Picks {
		p.Sport = input.Sport
		p.TeamID = strings.TrimSpace(p.TeamID)
		picks = append(picks, p)
	}

	sel, exists, err := s.rosterRepo.GetByUser(ctx, userID)
	if err != nil {
		return SelectionView{}, fmt.Errorf("get selections before save user=%s: %w", userID, err)
	}
	if !exists {
		sel = roster.Selection{UserID: userID}
	}
	sel.ReplaceSport(input.Sport, picks)

	if err := s.rosterRepo.Upsert(ctx, sel); err != nil {
		return SelectionView{}, fmt.Errorf("save selections user=%s sport=%s: %w", userID, input.Sport, err)
	}

	return SelectionView{
		UserID:         userID,
		Sport:          input.Sport,
		Picks:          picks,
		PerkAdjustment: sel.PerkAdjustment(input.Sport),
	}, nil
}

// SavePerkAdjustment records a manual per-sport score correction for a user.
func (s *RosterService) SavePerkAdjustment(ctx context.Context, userID, sportID string, delta int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SavePerkAdjustment")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if !sport.IsTracked(sportID) {
		return fmt.Errorf("%w: unknown sport %q", ErrSportNotConfigured, sportID)
	}

	sel, exists, err := s.rosterRepo.GetByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("get selections before perk save user=%s: %w", userID, err)
	}
	if !exists {
		sel = roster.Selection{UserID: userID}
	}
	if sel.PerkAdjustments == nil {
		sel.PerkAdjustments = make(map[string]int)
	}
	sel.PerkAdjustments[sportID] = delta

	if err := s.rosterRepo.Upsert(ctx, sel); err != nil {
		return fmt.Errorf("save perk adjustment user=%s sport=%s: %w", userID, sportID, err)
	}

	return nil
}
