package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vats-app/vats-api/internal/domain/roster"
	qb "github.com/vats-app/vats-api/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) GetByUser(ctx context.Context, userID string) (roster.Selection, bool, error) {
	query, args, err := selectionBaseSelectBuilder().
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return roster.Selection{}, false, fmt.Errorf("build get selection query: %w", err)
	}

	var row selectionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Selection{}, false, nil
		}
		return roster.Selection{}, false, fmt.Errorf("get selection: %w", err)
	}

	sel, err := selectionFromRow(row)
	if err != nil {
		return roster.Selection{}, false, fmt.Errorf("decode selection row: %w", err)
	}

	return sel, true, nil
}

func (r *RosterRepository) ScanAll(ctx context.Context) ([]roster.Selection, error) {
	query, args, err := selectionBaseSelectBuilder().
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build scan selections query: %w", err)
	}

	var rows []selectionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("scan selections: %w", err)
	}

	out := make([]roster.Selection, 0, len(rows))
	for _, row := range rows {
		sel, err := selectionFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("decode selection row: %w", err)
		}
		out = append(out, sel)
	}

	return out, nil
}

func (r *RosterRepository) Upsert(ctx context.Context, selection roster.Selection) error {
	insertModel, err := selectionToInsertModel(selection)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}

	query, args, err := qb.InsertModel("selections", insertModel, `ON CONFLICT (user_id) WHERE deleted_at IS NULL
DO UPDATE SET
    picks = EXCLUDED.picks,
    perk_adjustments = EXCLUDED.perk_adjustments,
    updated_at = now(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build selection upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert selection: %w", err)
	}

	return nil
}

func selectionBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("selections")
}
