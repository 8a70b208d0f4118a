package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vats-app/vats-api/internal/domain/score"
	qb "github.com/vats-app/vats-api/internal/platform/querybuilder"
)

type ScoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) Scan(ctx context.Context, sportFilter string) ([]score.TeamScore, error) {
	builder := teamScoreBaseSelectBuilder()
	if sportFilter != "" {
		builder = builder.Where(
			qb.Eq("sport", sportFilter),
			qb.IsNull("deleted_at"),
		)
	} else {
		builder = builder.Where(qb.IsNull("deleted_at"))
	}

	query, args, err := builder.OrderBy("sport", "team_id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build scan team scores query: %w", err)
	}

	var rows []teamScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("scan team scores: %w", err)
	}

	out := make([]score.TeamScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamScoreFromRow(row))
	}

	return out, nil
}

func (r *ScoreRepository) Get(ctx context.Context, teamID, sportID string) (score.TeamScore, bool, error) {
	query, args, err := teamScoreBaseSelectBuilder().
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("sport", sportID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return score.TeamScore{}, false, fmt.Errorf("build get team score query: %w", err)
	}

	var row teamScoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return score.TeamScore{}, false, nil
		}
		return score.TeamScore{}, false, fmt.Errorf("get team score: %w", err)
	}

	return teamScoreFromRow(row), true, nil
}

func (r *ScoreRepository) Upsert(ctx context.Context, item score.TeamScore) error {
	insertModel := teamScoreInsertModel{
		TeamID:              item.TeamID,
		Sport:               item.Sport,
		SchoolName:          item.SchoolName,
		Conference:          item.Conference,
		RegularSeasonPoints: item.RegularSeasonPoints,
		PostseasonPoints:    item.PostseasonPoints,
	}

	query, args, err := qb.InsertModel("team_scores", insertModel, `ON CONFLICT (team_id, sport) WHERE deleted_at IS NULL
DO UPDATE SET
    school_name = EXCLUDED.school_name,
    conference = EXCLUDED.conference,
    regular_season_points = EXCLUDED.regular_season_points,
    postseason_points = EXCLUDED.postseason_points,
    updated_at = now(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build team score upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team score: %w", err)
	}

	return nil
}

func teamScoreBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("team_scores")
}
