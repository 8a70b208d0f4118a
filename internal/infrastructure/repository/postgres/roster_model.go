package postgres

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/vats-app/vats-api/internal/domain/roster"
)

type selectionTableModel struct {
	ID              int64      `db:"id"`
	UserID          string     `db:"user_id"`
	Picks           []byte     `db:"picks"`
	PerkAdjustments []byte     `db:"perk_adjustments"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

type selectionInsertModel struct {
	UserID          string `db:"user_id"`
	Picks           []byte `db:"picks"`
	PerkAdjustments []byte `db:"perk_adjustments"`
}

type pickDocument struct {
	TeamID              string `json:"teamId"`
	Sport               string `json:"sport"`
	SchoolName          string `json:"schoolName,omitempty"`
	Conference          string `json:"conference,omitempty"`
	RegularSeasonPoints *int   `json:"regularSeasonPoints,omitempty"`
	PostseasonPoints    *int   `json:"postseasonPoints,omitempty"`
}

func selectionFromRow(row selectionTableModel) (roster.Selection, error) {
	sel := roster.Selection{UserID: row.UserID}

	if len(row.Picks) > 0 {
		var docs []pickDocument
		if err := sonic.Unmarshal(row.Picks, &docs); err != nil {
			return roster.Selection{}, err
		}
		if docs != nil {
			sel.Picks = make([]roster.Pick, len(docs))
			for i, doc := range docs {
				sel.Picks[i] = roster.Pick{
					TeamID:              doc.TeamID,
					Sport:               doc.Sport,
					SchoolName:          doc.SchoolName,
					Conference:          doc.Conference,
					RegularSeasonPoints: doc.RegularSeasonPoints,
					PostseasonPoints:    doc.PostseasonPoints,
				}
			}
		}
	}

	if len(row.PerkAdjustments) > 0 {
		if err := sonic.Unmarshal(row.PerkAdjustments, &sel.PerkAdjustments); err != nil {
			return roster.Selection{}, err
		}
	}

	return sel, nil
}

func selectionToInsertModel(sel roster.Selection) (selectionInsertModel, error) {
	docs := make([]pickDocument, len(sel.Picks))
	for i, p := range sel.Picks {
		docs[i] = pickDocument{
			TeamID:              p.TeamID,
			Sport:               p.Sport,
			SchoolName:          p.SchoolName,
			Conference:          p.Conference,
			RegularSeasonPoints: p.RegularSeasonPoints,
			PostseasonPoints:    p.PostseasonPoints,
		}
	}

	picks, err := sonic.Marshal(docs)
	if err != nil {
		return selectionInsertModel{}, err
	}

	perks := sel.PerkAdjustments
	if perks == nil {
		perks = map[string]int{}
	}
	perksJSON, err := sonic.Marshal(perks)
	if err != nil {
		return selectionInsertModel{}, err
	}

	return selectionInsertModel{
		UserID:          sel.UserID,
		Picks:           picks,
		PerkAdjustments: perksJSON,
	}, nil
}
