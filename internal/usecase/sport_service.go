package usecase

import (
	"context"

	"github.com/vats-app/vats-api/internal/domain/sport"
)

// SportService exposes the static sport configuration to the API layer.
type SportService struct {
	sports []sport.Sport
}

func NewSportService(sports []sport.Sport) *SportService {
	if len(sports) == 0 {
		sports = sport.Config()
	}

	return &SportService{sports: sports}
}

func (s *SportService) ListConfig(ctx context.Context) ([]sport.Sport, error) {
	_, span := startUsecaseSpan(ctx, "usecase.SportService.ListConfig")
	defer span.End()

	return append([]sport.Sport(nil), s.sports...), nil
}
