package user

import "context"

// Directory describes the external identity directory consumed by use cases.
// Users are owned by the directory service; this side only reads them.
type Directory interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, userID string) (User, bool, error)
}
