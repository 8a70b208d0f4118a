// Package cache wraps the persistence repositories with a read-through TTL
// cache. Writes go straight to the next layer and invalidate the keys they
// touch.
package cache

import (
	"context"

	"github.com/vats-app/vats-api/internal/domain/roster"
	"github.com/vats-app/vats-api/internal/domain/score"
	basecache "github.com/vats-app/vats-api/internal/platform/cache"
)

const (
	selectionByUserPrefix = "selection:user:"
	selectionScanKey      = "selection:scan"
	scoreScanPrefix       = "score:scan:"
	scoreByKeyPrefix      = "score:key:"
)

type RosterRepository struct {
	next  roster.Repository
	cache *basecache.Store
}

func NewRosterRepository(next roster.Repository, cache *basecache.Store) *RosterRepository {
	return &RosterRepository{next: next, cache: cache}
}

func (r *RosterRepository) GetByUser(ctx context.Context, userID string) (roster.Selection, bool, error) {
	key := selectionByUserPrefix + userID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return cachedSelection{value: cloneSelection(item), exists: exists}, nil
	})
	if err != nil {
		return roster.Selection{}, false, err
	}

	cached, _ := v.(cachedSelection)
	return cloneSelection(cached.value), cached.exists, nil
}

func (r *RosterRepository) ScanAll(ctx context.Context) ([]roster.Selection, error) {
	v, err := r.cache.GetOrLoad(ctx, selectionScanKey, func(ctx context.Context) (any, error) {
		items, err := r.next.ScanAll(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]roster.Selection, 0, len(items))
		for _, item := range items {
			out = append(out, cloneSelection(item))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]roster.Selection)
	out := make([]roster.Selection, 0, len(items))
	for _, item := range items {
		out = append(out, cloneSelection(item))
	}
	return out, nil
}

func (r *RosterRepository) Upsert(ctx context.Context, selection roster.Selection) error {
	if err := r.next.Upsert(ctx, selection); err != nil {
		return err
	}
	r.cache.Delete(ctx, selectionByUserPrefix+selection.UserID)
	r.cache.Delete(ctx, selectionScanKey)
	return nil
}

type cachedSelection struct {
	value  roster.Selection
	exists bool
}

func cloneSelection(sel roster.Selection) roster.Selection {
	out := sel
	if sel.Picks != nil {
		out.Picks = append([]roster.Pick(nil), sel.Picks...)
	}
	if sel.PerkAdjustments != nil {
		out.PerkAdjustments = make(map[string]int, len(sel.PerkAdjustments))
		for k, v := range sel.PerkAdjustments {
			out.PerkAdjustments[k] = v
		}
	}
	return out
}

type ScoreRepository struct {
	next  score.Repository
	cache *basecache.Store
}

func NewScoreRepository(next score.Repository, cache *basecache.Store) *ScoreRepository {
	return &ScoreRepository{next: next, cache: cache}
}

func (r *ScoreRepository) Scan(ctx context.Context, sportFilter string) ([]score.TeamScore, error) {
	key := scoreScanPrefix + sportFilter
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.Scan(ctx, sportFilter)
		if err != nil {
			return nil, err
		}
		return append([]score.TeamScore(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]score.TeamScore)
	return append([]score.TeamScore(nil), items...), nil
}

func (r *ScoreRepository) Get(ctx context.Context, teamID, sportID string) (score.TeamScore, bool, error) {
	key := scoreByKeyPrefix + teamID + ":" + sportID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.Get(ctx, teamID, sportID)
		if err != nil {
			return nil, err
		}
		return cachedTeamScore{value: item, exists: exists}, nil
	})
	if err != nil {
		return score.TeamScore{}, false, err
	}

	cached, _ := v.(cachedTeamScore)
	return cached.value, cached.exists, nil
}

func (r *ScoreRepository) Upsert(ctx context.Context, item score.TeamScore) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, scoreByKeyPrefix+item.TeamID+":"+item.Sport)
	r.cache.DeletePrefix(ctx, scoreScanPrefix)
	return nil
}

type cachedTeamScore struct {
	value  score.TeamScore
	exists bool
}
