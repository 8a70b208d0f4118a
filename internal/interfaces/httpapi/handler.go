package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vats-app/vats-api/internal/domain/sport"
	"github.com/vats-app/vats-api/internal/usecase"
)

type Handler struct {
	leaderboardService *usecase.LeaderboardService
	rosterService      *usecase.RosterService
	scoreService       *usecase.ScoreService
	sportService       *usecase.SportService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	leaderboardService *usecase.LeaderboardService,
	rosterService *usecase.RosterService,
	scoreService *usecase.ScoreService,
	sportService *usecase.SportService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		leaderboardService: leaderboardService,
		rosterService:      rosterService,
		scoreService:       scoreService,
		sportService:       sportService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	sports, err := h.sportService.ListConfig(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list sports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sportsToDTO(sports))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type sportDTO struct {
	Sport           string `json:"sport"`
	DisplayName     string `json:"displayName"`
	StandingsActive bool   `json:"standingsActive"`
}

func sportsToDTO(sports []sport.Sport) []sportDTO {
	out := make([]sportDTO, 0, len(sports))
	for _, s := range sports {
		out = append(out, sportDTO{
			Sport:           s.ID,
			DisplayName:     s.DisplayName,
			StandingsActive: s.StandingsActive,
		})
	}
	return out
}
