package score

import "context"

// Repository describes team score persistence needs from use cases.
// Scan with an empty sportFilter returns every sport's scores.
type Repository interface {
	Scan(ctx context.Context, sportFilter string) ([]TeamScore, error)
	Get(ctx context.Context, teamID, sportID string) (TeamScore, bool, error)
	Upsert(ctx context.Context, item TeamScore) error
}
