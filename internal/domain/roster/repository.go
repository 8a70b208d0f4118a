package roster

import "context"

// Repository describes selection persistence needs from use cases.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (Selection, bool, error)
	ScanAll(ctx context.Context) ([]Selection, error)
	Upsert(ctx context.Context, selection Selection) error
}
