package memory

import (
	"context"
	"sync"

	"github.com/vats-app/vats-api/internal/domain/user"
)

// Directory is an in-process user directory for local runs and tests.
type Directory struct {
	mu     sync.RWMutex
	items  map[string]user.User
	orders []string
}

func NewDirectory(users []user.User) *Directory {
	items := make(map[string]user.User, len(users))
	orders := make([]string, 0, len(users))
	for _, u := range users {
		items[u.ID] = u
		orders = append(orders, u.ID)
	}
	return &Directory{items: items, orders: orders}
}

func (d *Directory) ListUsers(_ context.Context) ([]user.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]user.User, 0, len(d.orders))
	for _, id := range d.orders {
		out = append(out, d.items[id])
	}

	return out, nil
}

func (d *Directory) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.items[userID]
	if !ok {
		return user.User{}, false, nil
	}

	return u, true, nil
}
