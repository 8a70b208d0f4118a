package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vats-app/vats-api/internal/usecase"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	sportID := strings.TrimSpace(r.PathValue("sport"))
	board, err := h.leaderboardService.Compute(ctx, sportID)
	if err != nil {
		if errors.Is(err, usecase.ErrSportNotConfigured) {
			h.logger.WarnContext(ctx, "leaderboard for unknown sport requested", "sport", sportID)
			writeErrorWithData(ctx, w, err, map[string]any{
				"sportsConfig": sportsToDTO(h.leaderboardService.Sports()),
			})
			return
		}
		h.logger.ErrorContext(ctx, "compute leaderboard failed", "sport", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(board))
}

type leaderboardDTO struct {
	Sport      string         `json:"sport"`
	Disabled   bool           `json:"disabled,omitempty"`
	Message    string         `json:"message,omitempty"`
	UserScores []userScoreDTO `json:"userScores"`
}

type userScoreDTO struct {
	UserID         string          `json:"userId"`
	Username       string          `json:"username,omitempty"`
	Name           string          `json:"name"`
	TotalPoints    int             `json:"totalPoints"`
	PerkAdjustment int             `json:"perkAdjustment"`
	SportPoints    map[string]int  `json:"sportPoints,omitempty"`
	Teams          []teamResultDTO `json:"teams"`
}

type teamResultDTO struct {
	TeamID              string `json:"teamId"`
	SchoolName          string `json:"schoolName"`
	Conference          string `json:"conference"`
	RegularSeasonPoints int    `json:"regularSeasonPoints"`
	PostseasonPoints    int    `json:"postseasonPoints"`
	TotalPoints         int    `json:"totalPoints"`
}

func leaderboardToDTO(board usecase.Leaderboard) leaderboardDTO {
	rows := make([]userScoreDTO, 0, len(board.UserScores))
	for _, row := range board.UserScores {
		teams := make([]teamResultDTO, 0, len(row.Teams))
		for _, team := range row.Teams {
			teams = append(teams, teamResultDTO{
				TeamID:              team.TeamID,
				SchoolName:          team.SchoolName,
				Conference:          team.Conference,
				RegularSeasonPoints: team.RegularSeasonPoints,
				PostseasonPoints:    team.PostseasonPoints,
				TotalPoints:         team.TotalPoints,
			})
		}
		rows = append(rows, userScoreDTO{
			UserID:         row.UserID,
			Username:       row.Username,
			Name:           row.Name,
			TotalPoints:    row.TotalPoints,
			PerkAdjustment: row.PerkAdjustment,
			SportPoints:    row.SportPoints,
			Teams:          teams,
		})
	}

	return leaderboardDTO{
		Sport:      board.Sport,
		Disabled:   board.Disabled,
		Message:    board.Message,
		UserScores: rows,
	}
}
