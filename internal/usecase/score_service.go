package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/vats-app/vats-api/internal/domain/score"
	"github.com/vats-app/vats-api/internal/domain/sport"
	"github.com/vats-app/vats-api/internal/domain/teammeta"
	idgen "github.com/vats-app/vats-api/internal/platform/id"
)

const defaultImportWorkers = 4

// UpsertScoreInput carries one admin score entry. For football, Achievements
// may replace the raw point fields; the points are then derived from the
// scoring rules. Other sports always use the raw points.
type UpsertScoreInput struct {
	TeamID              string
	Sport               string
	SchoolName          string
	Conference          string
	RegularSeasonPoints int
	PostseasonPoints    int
	Achievements        *score.FootballAchievements
}

// ImportResult summarizes one bulk score import run.
type ImportResult struct {
	RunID        string
	Total        int
	SuccessCount int
	FailedCount  int
	Failures     []ImportFailure
}

type ImportFailure struct {
	TeamID  string
	Sport   string
	Message string
}

// ScoreService maintains admin-entered team scores.
type ScoreService struct {
	scoreRepo     score.Repository
	catalog       *teammeta.Catalog
	idGenerator   idgen.Generator
	importWorkers int
}

func NewScoreService(scoreRepo score.Repository, catalog *teammeta.Catalog, idGenerator idgen.Generator) *ScoreService {
	if catalog == nil {
		catalog = teammeta.Default()
	}
	if idGenerator == nil {
		idGenerator = idgen.NewRandomGenerator()
	}

	return &ScoreService{
		scoreRepo:     scoreRepo,
		catalog:       catalog,
		idGenerator:   idGenerator,
		importWorkers: defaultImportWorkers,
	}
}

func (s *ScoreService) ListScores(ctx context.Context, sportID string) ([]score.TeamScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.ListScores")
	defer span.End()

	sportID = strings.TrimSpace(sportID)
	if sportID != "" && !sport.IsTracked(sportID) {
		return nil, fmt.Errorf("%w: unknown sport %q", ErrSportNotConfigured, sportID)
	}

	items, err := s.scoreRepo.Scan(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("scan team scores sport=%q: %w", sportID, err)
	}

	return items, nil
}

func (s *ScoreService) GetScore(ctx context.Context, teamID, sportID string) (score.TeamScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.GetScore")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return score.TeamScore{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if !sport.IsTracked(sportID) {
		return score.TeamScore{}, fmt.Errorf("%w: unknown sport %q", ErrSportNotConfigured, sportID)
	}

	item, exists, err := s.scoreRepo.Get(ctx, teamID, sportID)
	if err != nil {
		return score.TeamScore{}, fmt.Errorf("get team score team=%s sport=%s: %w", teamID, sportID, err)
	}
	if !exists {
		return score.TeamScore{}, fmt.Errorf("%w: team=%s sport=%s", ErrNotFound, teamID, sportID)
	}

	return item, nil
}

func (s *ScoreService) UpsertScore(ctx context.Context, input UpsertScoreInput) (score.TeamScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.UpsertScore")
	defer span.End()

	item, err := s.buildScore(input)
	if err != nil {
		return score.TeamScore{}, err
	}

	if err := s.scoreRepo.Upsert(ctx, item); err != nil {
		return score.TeamScore{}, fmt.Errorf("upsert team score team=%s sport=%s: %w", item.TeamID, item.Sport, err)
	}

	return item, nil
}

// ImportScores runs a bulk admin import on a bounded worker pool. Rows fail
// independently; a bad row never aborts the run.
func (s *ScoreService) ImportScores(ctx context.Context, rows []UpsertScoreInput) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.ImportScores")
	defer span.End()

	runID, err := s.idGenerator.NewID()
	if err != nil {
		return ImportResult{}, fmt.Errorf("generate import run id: %w", err)
	}

	result := ImportResult{
		RunID: runID,
		Total: len(rows),
	}
	if len(rows) == 0 {
		return result, nil
	}

	workers, err := ants.NewPool(s.importWorkers)
	if err != nil {
		return ImportResult{}, fmt.Errorf("create import pool: %w", err)
	}
	defer workers.Release()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, row := range rows {
		row := row
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()

			_, upsertErr := s.UpsertScore(ctx, row)

			mu.Lock()
			defer mu.Unlock()
			if upsertErr != nil {
				result.FailedCount++
				result.Failures = append(result.Failures, ImportFailure{
					TeamID:  row.TeamID,
					Sport:   row.Sport,
					Message: upsertErr.Error(),
				})
				return
			}
			result.SuccessCount++
		}); err != nil {
			wg.Done()
			return ImportResult{}, fmt.Errorf("submit import row team=%s: %w", row.TeamID, err)
		}
	}
	wg.Wait()

	return result, nil
}

func (s *ScoreService) buildScore(input UpsertScoreInput) (score.TeamScore, error) {
	item := score.TeamScore{
		TeamID:              strings.TrimSpace(input.TeamID),
		Sport:               strings.TrimSpace(input.Sport),
		SchoolName:          strings.TrimSpace(input.SchoolName),
		Conference:          strings.TrimSpace(input.Conference),
		RegularSeasonPoints: input.RegularSeasonPoints,
		PostseasonPoints:    input.PostseasonPoints,
	}

	if input.Achievements != nil {
		if item.Sport != sport.Football {
			return score.TeamScore{}, fmt.Errorf("%w: achievements are only valid for football", ErrInvalidInput)
		}
		item.RegularSeasonPoints = input.Achievements.RegularSeasonPoints()
		item.PostseasonPoints = input.Achievements.PostseasonPoints()
	}

	if item.SchoolName == "" || item.Conference == "" {
		if meta, ok := s.catalog.ByID(item.TeamID); ok {
			if item.SchoolName == "" {
				item.SchoolName = meta.SchoolName
			}
			if item.Conference == "" {
				item.Conference = meta.Conference
			}
		}
	}

	if err := item.Validate(); err != nil {
		return score.TeamScore{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return item, nil
}
