package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vats-app/vats-api/internal/domain/score"
)

type ScoreRepository struct {
	mu    sync.RWMutex
	items map[string]score.TeamScore
}

func NewScoreRepository(scores []score.TeamScore) *ScoreRepository {
	items := make(map[string]score.TeamScore, len(scores))
	for _, item := range scores {
		items[scoreKey(item.TeamID, item.Sport)] = item
	}
	return &ScoreRepository{items: items}
}

func (r *ScoreRepository) Scan(_ context.Context, sportFilter string) ([]score.TeamScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]score.TeamScore, 0, len(r.items))
	for _, item := range r.items {
		if sportFilter != "" && item.Sport != sportFilter {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sport != out[j].Sport {
			return out[i].Sport < out[j].Sport
		}
		return out[i].TeamID < out[j].TeamID
	})

	return out, nil
}

func (r *ScoreRepository) Get(_ context.Context, teamID, sportID string) (score.TeamScore, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[scoreKey(teamID, sportID)]
	if !ok {
		return score.TeamScore{}, false, nil
	}

	return item, true, nil
}

func (r *ScoreRepository) Upsert(_ context.Context, item score.TeamScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[scoreKey(item.TeamID, item.Sport)] = item
	return nil
}

func scoreKey(teamID, sportID string) string {
	return teamID + "::" + sportID
}
