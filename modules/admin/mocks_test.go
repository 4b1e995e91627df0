package admin_test

import (
	"context"
	"sync"
	"time"

	"github.com/leadvane/leadvane/modules/admin"
)

// mockStorage is an in-memory Storage keyed by normalized email.
type mockStorage struct {
	mu         sync.Mutex
	users      map[string]*admin.User
	lastLogins map[int64]time.Time

	getUserErr error
	updateErr  error
}

func newMockStorage(users ...*admin.User) *mockStorage {
	m := &mockStorage{
		users:      make(map[string]*admin.User),
		lastLogins: make(map[int64]time.Time),
	}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *mockStorage) GetUserByEmail(_ context.Context, email string) (*admin.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getUserErr != nil {
		return nil, m.getUserErr
	}
	u, ok := m.users[email]
	if !ok {
		return nil, admin.ErrUserNotFound
	}
	return u, nil
}

func (m *mockStorage) UpdateLastLogin(_ context.Context, userID int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateErr != nil {
		return m.updateErr
	}
	m.lastLogins[userID] = at
	return nil
}

func (m *mockStorage) lastLogin(userID int64) (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	at, ok := m.lastLogins[userID]
	return at, ok
}
