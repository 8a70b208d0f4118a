package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/vats-app/vats-api/internal/domain/score"
	"github.com/vats-app/vats-api/internal/usecase"
)

func (h *Handler) ListScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScores")
	defer span.End()

	sportID := strings.TrimSpace(r.PathValue("sport"))
	items, err := h.scoreService.ListScores(ctx, sportID)
	if err != nil {
		h.logger.WarnContext(ctx, "list scores failed", "sport", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamScoreDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamScoreToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) UpsertScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertScore")
	defer span.End()

	var req upsertScoreRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.scoreService.UpsertScore(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "upsert score failed", "team_id", req.TeamID, "sport", req.Sport, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamScoreToDTO(item))
}

func (h *Handler) ImportScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportScores")
	defer span.End()

	var req importScoresRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows := make([]usecase.UpsertScoreInput, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, row.toInput())
	}

	result, err := h.scoreService.ImportScores(ctx, rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "import scores failed", "rows", len(rows), "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "score import finished",
		"run_id", result.RunID,
		"total", result.Total,
		"succeeded", result.SuccessCount,
		"failed", result.FailedCount,
	)

	writeSuccess(ctx, w, http.StatusOK, importResultToDTO(result))
}

type upsertScoreRequest struct {
	TeamID              string                  `json:"teamId" validate:"required"`
	Sport               string                  `json:"sport" validate:"required"`
	SchoolName          string                  `json:"schoolName,omitempty"`
	Conference          string                  `json:"conference,omitempty"`
	RegularSeasonPoints int                     `json:"regularSeasonPoints"`
	PostseasonPoints    int                     `json:"postseasonPoints"`
	Achievements        *footballAchievementsDTO `json:"achievements,omitempty"`
}

func (r upsertScoreRequest) toInput() usecase.UpsertScoreInput {
	input := usecase.UpsertScoreInput{
		TeamID:              r.TeamID,
		Sport:               r.Sport,
		SchoolName:          r.SchoolName,
		Conference:          r.Conference,
		RegularSeasonPoints: r.RegularSeasonPoints,
		PostseasonPoints:    r.PostseasonPoints,
	}
	if r.Achievements != nil {
		input.Achievements = &score.FootballAchievements{
			Wins:                  r.Achievements.Wins,
			RegularSeasonChampion: r.Achievements.RegularSeasonChampion,
			ConferenceChampion:    r.Achievements.ConferenceChampion,
			CFPAppearance:         r.Achievements.CFPAppearance,
			BowlWin:               r.Achievements.BowlWin,
			CFPWins:               r.Achievements.CFPWins,
			CFPSemiFinalWin:       r.Achievements.CFPSemiFinalWin,
			CFPChampion:           r.Achievements.CFPChampion,
		}
	}
	return input
}

type importScoresRequest struct {
	Rows []upsertScoreRequest `json:"rows" validate:"required,min=1,dive"`
}

type footballAchievementsDTO struct {
	Wins                  int  `json:"wins" validate:"min=0"`
	RegularSeasonChampion bool `json:"regularSeasonChampion"`
	ConferenceChampion    bool `json:"conferenceChampion"`
	CFPAppearance         bool `json:"cfpAppearance"`
	BowlWin               bool `json:"bowlWin"`
	CFPWins               int  `json:"cfpWins" validate:"min=0"`
	CFPSemiFinalWin       bool `json:"cfpSemiFinalWin"`
	CFPChampion           bool `json:"cfpChampion"`
}

type teamScoreDTO struct {
	TeamID              string `json:"teamId"`
	Sport               string `json:"sport"`
	SchoolName          string `json:"schoolName"`
	Conference          string `json:"conference"`
	RegularSeasonPoints int    `json:"regularSeasonPoints"`
	PostseasonPoints    int    `json:"postseasonPoints"`
	TotalPoints         int    `json:"totalPoints"`
}

func teamScoreToDTO(item score.TeamScore) teamScoreDTO {
	return teamScoreDTO{
		TeamID:              item.TeamID,
		Sport:               item.Sport,
		SchoolName:          item.SchoolName,
		Conference:          item.Conference,
		RegularSeasonPoints: item.RegularSeasonPoints,
		PostseasonPoints:    item.PostseasonPoints,
		TotalPoints:         item.TotalPoints(),
	}
}

type importResultDTO struct {
	RunID        string             `json:"runId"`
	Total        int                `json:"total"`
	SuccessCount int                `json:"successCount"`
	FailedCount  int                `json:"failedCount"`
	Failures     []importFailureDTO `json:"failures,omitempty"`
}

type importFailureDTO struct {
	TeamID  string `json:"teamId"`
	Sport   string `json:"sport"`
	Message string `json:"message"`
}

func importResultToDTO(result usecase.ImportResult) importResultDTO {
	failures := make([]importFailureDTO, 0, len(result.Failures))
	for _, f := range result.Failures {
		failures = append(failures, importFailureDTO{
			TeamID:  f.TeamID,
			Sport:   f.Sport,
			Message: f.Message,
		})
	}

	return importResultDTO{
		RunID:        result.RunID,
		Total:        result.Total,
		SuccessCount: result.SuccessCount,
		FailedCount:  result.FailedCount,
		Failures:     failures,
	}
}
