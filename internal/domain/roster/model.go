package roster

import (
	"fmt"
	"strings"

	"github.com/vats-app/vats-api/internal/domain/sport"
)

// SlotCount is the fixed number of team-pick positions per sport.
const SlotCount = 8

// Pick is one roster slot: a chosen team plus the metadata and point values
// snapshotted at selection time. Point fields are nil when the snapshot
// carried no value; resolution then falls back to the score store.
type Pick struct {
	TeamID              string
	Sport               string
	SchoolName          string
	Conference          string
	RegularSeasonPoints *int
	PostseasonPoints    *int
}

// Selection is one user's saved picks across all sports, plus manual perk
// corrections keyed by sport id. Saving a sport replaces that sport's picks
// wholesale; selection records are never deleted in-band.
type Selection struct {
	UserID          string
	Picks           []Pick
	PerkAdjustments map[string]int
}

// PerkAdjustment returns the perk correction for sportID, defaulting to 0.
func (s Selection) PerkAdjustment(sportID string) int {
	if s.PerkAdjustments == nil {
		return 0
	}

	return s.PerkAdjustments[sportID]
}

// PicksForSport filters the pick list to one sport, keeping slot order.
func (s Selection) PicksForSport(sportID string) []Pick {
	if s.Picks == nil {
		return nil
	}

	out := make([]Pick, 0, SlotCount)
	for _, p := range s.Picks {
		if p.Sport == sportID {
			out = append(out, p)
		}
	}

	return out
}

// ReplaceSport swaps the picks for one sport, keeping other sports untouched.
func (s *Selection) ReplaceSport(sportID string, picks []Pick) {
	kept := make([]Pick, 0, len(s.Picks)+len(picks))
	for _, p := range s.Picks {
		if p.Sport != sportID {
			kept = append(kept, p)
		}
	}
	s.Picks = append(kept, picks...)
}

// ValidateSportPicks checks a whole-list replace payload for one sport.
func ValidateSportPicks(sportID string, picks []Pick) error {
	if !sport.IsTracked(sportID) {
		return fmt.Errorf("sport %q is not a tracked sport", sportID)
	}
	if len(picks) > SlotCount {
		return fmt.Errorf("got %d picks, max is %d", len(picks), SlotCount)
	}
	for i, p := range picks {
		if p.Sport != "" && p.Sport != sportID {
			return fmt.Errorf("pick %d is for sport %q, expected %q", i, p.Sport, sportID)
		}
		if strings.TrimSpace(p.TeamID) == "" && strings.TrimSpace(p.SchoolName) == "" {
			return fmt.Errorf("pick %d has neither team id nor school name", i)
		}
	}

	return nil
}
