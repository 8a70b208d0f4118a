package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vats-app/vats-api/internal/domain/roster"
)

type RosterRepository struct {
	mu    sync.RWMutex
	items map[string]roster.Selection
}

func NewRosterRepository(selections []roster.Selection) *RosterRepository {
	items := make(map[string]roster.Selection, len(selections))
	for _, sel := range selections {
		items[sel.UserID] = cloneSelection(sel)
	}
	return &RosterRepository{items: items}
}

func (r *RosterRepository) GetByUser(_ context.Context, userID string) (roster.Selection, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sel, ok := r.items[userID]
	if !ok {
		return roster.Selection{}, false, nil
	}

	return cloneSelection(sel), true, nil
}

func (r *RosterRepository) ScanAll(_ context.Context) ([]roster.Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Selection, 0, len(r.items))
	for _, sel := range r.items {
		out = append(out, cloneSelection(sel))
	}
	// Deterministic order; ranking ties keep their encounter order.
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })

	return out, nil
}

func (r *RosterRepository) Upsert(_ context.Context, selection roster.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[selection.UserID] = cloneSelection(selection)
	return nil
}

func cloneSelection(sel roster.Selection) roster.Selection {
	copied := sel
	if sel.Picks != nil {
		copied.Picks = make([]roster.Pick, len(sel.Picks))
		for i, pick := range sel.Picks {
			copied.Picks[i] = clonePick(pick)
		}
	}
	if sel.PerkAdjustments != nil {
		copied.PerkAdjustments = make(map[string]int, len(sel.PerkAdjustments))
		for k, v := range sel.PerkAdjustments {
			copied.PerkAdjustments[k] = v
		}
	}
	return copied
}

func clonePick(pick roster.Pick) roster.Pick {
	copied := pick
	if pick.RegularSeasonPoints != nil {
		v := *pick.RegularSeasonPoints
		copied.RegularSeasonPoints = &v
	}
	if pick.PostseasonPoints != nil {
		v := *pick.PostseasonPoints
		copied.PostseasonPoints = &v
	}
	return copied
}
