package postgres

import (
	"time"

	"github.com/vats-app/vats-api/internal/domain/score"
)

type teamScoreTableModel struct {
	ID                  int64      `db:"id"`
	TeamID              string     `db:"team_id"`
	Sport               string     `db:"sport"`
	SchoolName          string     `db:"school_name"`
	Conference          string     `db:"conference"`
	RegularSeasonPoints int        `db:"regular_season_points"`
	PostseasonPoints    int        `db:"postseason_points"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
	DeletedAt           *time.Time `db:"deleted_at"`
}

type teamScoreInsertModel struct {
	TeamID              string `db:"team_id"`
	Sport               string `db:"sport"`
	SchoolName          string `db:"school_name"`
	Conference          string `db:"conference"`
	RegularSeasonPoints int    `db:"regular_season_points"`
	PostseasonPoints    int    `db:"postseason_points"`
}

func teamScoreFromRow(row teamScoreTableModel) score.TeamScore {
	return score.TeamScore{
		TeamID:              row.TeamID,
		Sport:               row.Sport,
		SchoolName:          row.SchoolName,
		Conference:          row.Conference,
		RegularSeasonPoints: row.RegularSeasonPoints,
		PostseasonPoints:    row.PostseasonPoints,
	}
}
