package external

import (
	"context"
	"fmt"
	"sync"

	"agri-auction/internal/biddingerrors"
	"agri-auction/internal/models"
)

// MemoryDirectory is a UserDirectory backed by a map
type MemoryDirectory struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryDirectory creates a directory seeded with users
func NewMemoryDirectory(users ...models.User) *MemoryDirectory {
	d := &MemoryDirectory{users: make(map[string]models.User)}
	for _, u := range users {
		d.users[u.UserID] = u
	}
	return d
}

// AddUser inserts or replaces a user
func (d *MemoryDirectory) AddUser(user models.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[user.UserID] = user
}

func (d *MemoryDirectory) GetUser(ctx context.Context, userID string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[userID]
	if !ok {
		return models.User{}, fmt.Errorf("get user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	return u, nil
}
