package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/vats-app/vats-api/internal/domain/roster"
	"github.com/vats-app/vats-api/internal/domain/score"
	"github.com/vats-app/vats-api/internal/domain/sport"
	"github.com/vats-app/vats-api/internal/domain/teammeta"
	"github.com/vats-app/vats-api/internal/domain/user"
)

// TeamResult is one resolved roster slot on a leaderboard row.
type TeamResult struct {
	TeamID              string
	SchoolName          string
	Conference          string
	RegularSeasonPoints int
	PostseasonPoints    int
	TotalPoints         int
}

// UserScore is one leaderboard row. SportPoints is populated only on the
// overall view; Teams is populated only on single-sport views.
type UserScore struct {
	UserID         string
	Username       string
	Name           string
	TotalPoints    int
	PerkAdjustment int
	SportPoints    map[string]int
	Teams          []TeamResult
}

// Leaderboard is the aggregated result for one requested sport. Disabled is
// a distinct outcome from "no data yet": the sport exists but its standings
// are administratively switched off.
type Leaderboard struct {
	Sport      string
	Disabled   bool
	Message    string
	UserScores []UserScore
}

type LeaderboardService struct {
	directory  user.Directory
	rosterRepo roster.Repository
	scoreRepo  score.Repository
	catalog    *teammeta.Catalog
	sports     []sport.Sport
}

func NewLeaderboardService(
	directory user.Directory,
	rosterRepo roster.Repository,
	scoreRepo score.Repository,
	catalog *teammeta.Catalog,
	sports []sport.Sport,
) *LeaderboardService {
	if catalog == nil {
		catalog = teammeta.Default()
	}
	if len(sports) == 0 {
		sports = sport.Config()
	}

	return &LeaderboardService{
		directory:  directory,
		rosterRepo: rosterRepo,
		scoreRepo:  scoreRepo,
		catalog:    catalog,
		sports:     sports,
	}
}

// Sports returns the configuration the service validates against.
func (s *LeaderboardService) Sports() []sport.Sport {
	return append([]sport.Sport(nil), s.sports...)
}

// Compute builds the ranked leaderboard for one sport, or delegates to
// ComputeOverall for the synthetic overall entry.
func (s *LeaderboardService) Compute(ctx context.Context, sportID string) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Compute")
	defer span.End()

	cfg, ok := s.lookupSport(sportID)
	if !ok {
		return Leaderboard{}, fmt.Errorf("%w: unknown sport %q", ErrSportNotConfigured, sportID)
	}
	if !cfg.StandingsActive {
		return disabledLeaderboard(cfg), nil
	}
	if cfg.ID == sport.Overall {
		return s.ComputeOverall(ctx)
	}

	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("list users for leaderboard: %w", err)
	}
	selections, err := s.rosterRepo.ScanAll(ctx)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("scan selections for leaderboard: %w", err)
	}
	scores, err := s.scoreRepo.Scan(ctx, cfg.ID)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("scan team scores for leaderboard sport=%s: %w", cfg.ID, err)
	}

	userByID := indexUsers(users)
	pool := newScorePool(scores)

	rows := make([]UserScore, 0, len(selections))
	for _, sel := range selections {
		// A record without a selections list never made a pick; it gets no
		// row. A record with picks that all fail to resolve still does.
		if sel.Picks == nil {
			continue
		}

		teams := s.resolveTeams(sel.PicksForSport(cfg.ID), pool)
		teamPoints := 0
		for _, t := range teams {
			teamPoints += t.TotalPoints
		}
		perk := sel.PerkAdjustment(cfg.ID)

		u := userByID[sel.UserID]
		if u.ID == "" {
			u.ID = sel.UserID
		}
		rows = append(rows, UserScore{
			UserID:         sel.UserID,
			Username:       u.Username,
			Name:           user.DisplayName(u),
			TotalPoints:    teamPoints + perk,
			PerkAdjustment: perk,
			Teams:          teams,
		})
	}

	sortUserScores(rows)

	return Leaderboard{Sport: cfg.ID, UserScores: rows}, nil
}

// ComputeOverall builds the combined ranking across every tracked sport.
// Per-team breakdowns are intentionally omitted; only per-sport subtotals
// (perk included) and the grand total are exposed.
func (s *LeaderboardService) ComputeOverall(ctx context.Context) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.ComputeOverall")
	defer span.End()

	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("list users for overall leaderboard: %w", err)
	}
	selections, err := s.rosterRepo.ScanAll(ctx)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("scan selections for overall leaderboard: %w", err)
	}

	tracked := s.trackedSports()
	poolBySport, err := s.fetchScorePools(ctx, tracked)
	if err != nil {
		return Leaderboard{}, err
	}

	userByID := indexUsers(users)
	rows := make([]UserScore, 0, len(selections))
	for _, sel := range selections {
		if sel.Picks == nil {
			continue
		}

		sportPoints := make(map[string]int, len(tracked))
		total := 0
		for _, sp := range tracked {
			teams := s.resolveTeams(sel.PicksForSport(sp.ID), poolBySport[sp.ID])
			points := sel.PerkAdjustment(sp.ID)
			for _, t := range teams {
				points += t.TotalPoints
			}
			sportPoints[sp.ID] = points
			total += points
		}

		u := userByID[sel.UserID]
		if u.ID == "" {
			u.ID = sel.UserID
		}
		rows = append(rows, UserScore{
			UserID:      sel.UserID,
			Username:    u.Username,
			Name:        user.DisplayName(u),
			TotalPoints: total,
			SportPoints: sportPoints,
			Teams:       []TeamResult{},
		})
	}

	sortUserScores(rows)

	return Leaderboard{Sport: sport.Overall, UserScores: rows}, nil
}

// fetchScorePools loads each tracked sport's score set concurrently. The
// first failure aborts the whole operation; no partial aggregation.
func (s *LeaderboardService) fetchScorePools(ctx context.Context, tracked []sport.Sport) (map[string]*scorePool, error) {
	if len(tracked) == 0 {
		return map[string]*scorePool{}, nil
	}

	workers, err := ants.NewPool(len(tracked))
	if err != nil {
		return nil, fmt.Errorf("create score fetch pool: %w", err)
	}
	defer workers.Release()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
		pools    = make(map[string]*scorePool, len(tracked))
	)
	for _, sp := range tracked {
		sp := sp
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()

			scores, scanErr := s.scoreRepo.Scan(ctx, sp.ID)

			mu.Lock()
			defer mu.Unlock()
			if scanErr != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("scan team scores for overall sport=%s: %w", sp.ID, scanErr)
				}
				return
			}
			pools[sp.ID] = newScorePool(scores)
		}); err != nil {
			wg.Done()
			return nil, fmt.Errorf("submit score fetch sport=%s: %w", sp.ID, err)
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return pools, nil
}

// resolveTeams turns raw picks into enriched results. Picks without a team id
// are skipped silently; everything else resolves best-effort rather than
// failing the row.
func (s *LeaderboardService) resolveTeams(picks []roster.Pick, pool *scorePool) []TeamResult {
	out := make([]TeamResult, 0, len(picks))
	for _, pick := range picks {
		if strings.TrimSpace(pick.TeamID) == "" {
			continue
		}

		rec, hasRec := pool.byID(pick.TeamID)

		regular := rec.RegularSeasonPoints
		postseason := rec.PostseasonPoints
		// The selection snapshot wins over the score store when both carry
		// a value. Backwards on its face, but shipped clients depend on it.
		if pick.RegularSeasonPoints != nil {
			regular = *pick.RegularSeasonPoints
		}
		if pick.PostseasonPoints != nil {
			postseason = *pick.PostseasonPoints
		}

		result := TeamResult{
			TeamID:              pick.TeamID,
			RegularSeasonPoints: regular,
			PostseasonPoints:    postseason,
			TotalPoints:         regular + postseason,
		}
		result.SchoolName, result.Conference = s.resolveMeta(pick, rec, hasRec, pool)
		out = append(out, result)
	}

	return out
}

// resolveMeta fills school/conference from the score record, then from a
// school-name match against the sport's known teams, then from the static
// catalog, then from the raw pick.
func (s *LeaderboardService) resolveMeta(pick roster.Pick, rec score.TeamScore, hasRec bool, pool *scorePool) (string, string) {
	schoolName := strings.TrimSpace(pick.SchoolName)
	conference := strings.TrimSpace(pick.Conference)

	if hasRec {
		if v := strings.TrimSpace(rec.SchoolName); v != "" {
			schoolName = v
		}
		if v := strings.TrimSpace(rec.Conference); v != "" {
			conference = v
		}
	} else if bySchool, ok := pool.bySchool(pick.SchoolName); ok {
		if v := strings.TrimSpace(bySchool.SchoolName); v != "" {
			schoolName = v
		}
		if v := strings.TrimSpace(bySchool.Conference); v != "" {
			conference = v
		}
	}

	if conference == "" {
		if meta, ok := s.catalog.ByID(pick.TeamID); ok {
			conference = meta.Conference
			if schoolName == "" {
				schoolName = meta.SchoolName
			}
		} else if meta, ok := s.catalog.BySchoolName(schoolName); ok {
			conference = meta.Conference
		}
	}

	if schoolName == "" {
		schoolName = pick.TeamID
	}
	if conference == "" {
		conference = "Unknown"
	}

	return schoolName, conference
}

func (s *LeaderboardService) lookupSport(id string) (sport.Sport, bool) {
	id = strings.TrimSpace(id)
	for _, sp := range s.sports {
		if sp.ID == id {
			return sp, true
		}
	}

	return sport.Sport{}, false
}

func (s *LeaderboardService) trackedSports() []sport.Sport {
	out := make([]sport.Sport, 0, len(s.sports))
	for _, sp := range s.sports {
		if sp.ID == sport.Overall {
			continue
		}
		out = append(out, sp)
	}

	return out
}

func disabledLeaderboard(cfg sport.Sport) Leaderboard {
	return Leaderboard{
		Sport:      cfg.ID,
		Disabled:   true,
		Message:    fmt.Sprintf("%s standings are not active yet", cfg.DisplayName),
		UserScores: []UserScore{},
	}
}

// sortUserScores ranks descending by total. The sort must stay stable: ties
// keep their encounter order.
func sortUserScores(rows []UserScore) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPoints > rows[j].TotalPoints
	})
}

func indexUsers(users []user.User) map[string]user.User {
	out := make(map[string]user.User, len(users))
	for _, u := range users {
		out[u.ID] = u
	}

	return out
}

// scorePool indexes one sport's score records by team id and, for legacy
// records that predate team ids, by school name.
type scorePool struct {
	byTeamID     map[string]score.TeamScore
	bySchoolName map[string]score.TeamScore
}

func newScorePool(scores []score.TeamScore) *scorePool {
	p := &scorePool{
		byTeamID:     make(map[string]score.TeamScore, len(scores)),
		bySchoolName: make(map[string]score.TeamScore, len(scores)),
	}
	for _, rec := range scores {
		if rec.TeamID != "" {
			p.byTeamID[rec.TeamID] = rec
		}
		if key := schoolKey(rec.SchoolName); key != "" {
			p.bySchoolName[key] = rec
		}
	}

	return p
}

func (p *scorePool) byID(teamID string) (score.TeamScore, bool) {
	if p == nil {
		return score.TeamScore{}, false
	}
	rec, ok := p.byTeamID[teamID]
	return rec, ok
}

func (p *scorePool) bySchool(schoolName string) (score.TeamScore, bool) {
	if p == nil {
		return score.TeamScore{}, false
	}
	rec, ok := p.bySchoolName[schoolKey(schoolName)]
	return rec, ok
}

func schoolKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
