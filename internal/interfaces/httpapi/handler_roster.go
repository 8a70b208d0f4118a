package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/vats-app/vats-api/internal/domain/roster"
	"github.com/vats-app/vats-api/internal/usecase"
)

func (h *Handler) GetMySelections(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMySelections")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	sportID := strings.TrimSpace(r.PathValue("sport"))
	view, err := h.rosterService.GetSelections(ctx, principal.UserID, sportID)
	if err != nil {
		h.logger.WarnContext(ctx, "get selections failed", "sport", sportID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, selectionViewToDTO(view))
}

func (h *Handler) SaveMySelections(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMySelections")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	sportID := strings.TrimSpace(r.PathValue("sport"))
	var req saveSelectionsRequest
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

	picks := make([]roster.Pick, 0, len(req.Picks))
	for _, p := range req.Picks {
		picks = append(picks, roster.Pick{
			TeamID:              p.TeamID,
			Sport:               p.Sport,
			SchoolName:          p.SchoolName,
			Conference:          p.Conference,
			RegularSeasonPoints: p.RegularSeasonPoints,
			PostseasonPoints:    p.PostseasonPoints,
		})
	}

	view, err := h.rosterService.SaveSelections(ctx, usecase.SaveSelectionsInput{
		UserID: principal.UserID,
		Sport:  sportID,
		Picks:  picks,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save selections failed", "sport", sportID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, selectionViewToDTO(view))
}

func (h *Handler) SavePerkAdjustment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SavePerkAdjustment")
	defer span.End()

	var req savePerkAdjustmentRequest
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

	if err := h.rosterService.SavePerkAdjustment(ctx, req.UserID, req.Sport, req.Delta); err != nil {
		h.logger.WarnContext(ctx, "save perk adjustment failed", "sport", req.Sport, "user_id", req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "saved"})
}

type saveSelectionsRequest struct {
	Picks []pickDTO `json:"picks" validate:"required,max=8,dive"`
}

type savePerkAdjustmentRequest struct {
	UserID string `json:"userId" validate:"required"`
	Sport  string `json:"sport" validate:"required"`
	Delta  int    `json:"delta"`
}

type pickDTO struct {
	TeamID              string `json:"teamId"`
	Sport               string `json:"sport"`
	SchoolName          string `json:"schoolName,omitempty"`
	Conference          string `json:"conference,omitempty"`
	RegularSeasonPoints *int   `json:"regularSeasonPoints,omitempty"`
	PostseasonPoints    *int   `json:"postseasonPoints,omitempty"`
}

type selectionViewDTO struct {
	UserID         string    `json:"userId"`
	Sport          string    `json:"sport"`
	Picks          []pickDTO `json:"picks"`
	PerkAdjustment int       `json:"perkAdjustment"`
}

func selectionViewToDTO(view usecase.SelectionView) selectionViewDTO {
	picks := make([]pickDTO, 0, len(view.Picks))
	for _, p := range view.Picks {
		picks = append(picks, pickDTO{
			TeamID:              p.TeamID,
			Sport:               p.Sport,
			SchoolName:          p.SchoolName,
			Conference:          p.Conference,
			RegularSeasonPoints: p.RegularSeasonPoints,
			PostseasonPoints:    p.PostseasonPoints,
		})
	}

	return selectionViewDTO{
		UserID:         view.UserID,
		Sport:          view.Sport,
		Picks:          picks,
		PerkAdjustment: view.PerkAdjustment,
	}
}
