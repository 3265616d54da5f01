package service

import (
	"context"
	"sync"

	"github.com/sociograph/sociograph/internal/models"
)

// mockFollowRepo records calls and returns configured responses.
type mockFollowRepo struct {
	mu    sync.Mutex
	calls []string

	insert func(ctx context.Context, followerID, followeeID models.UserID) error
	delete func(ctx context.Context, followerID, followeeID models.UserID) error
}

func (m *mockFollowRepo) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockFollowRepo) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockFollowRepo) Insert(ctx context.Context, followerID, followeeID models.UserID) error {
	m.record("Insert")
	if m.insert == nil {
		return nil
	}
	return m.insert(ctx, followerID, followeeID)
}

func (m *mockFollowRepo) Delete(ctx context.Context, followerID, followeeID models.UserID) error {
	m.record("Delete")
	if m.delete == nil {
		return nil
	}
	return m.delete(ctx, followerID, followeeID)
}

// mockFollowLister records calls and returns configured responses.
type mockFollowLister struct {
	mu    sync.Mutex
	calls int

	list func(ctx context.Context) ([]models.Follow, error)
}

func (m *mockFollowLister) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockFollowLister) List(ctx context.Context) ([]models.Follow, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.list == nil {
		return nil, nil
	}
	return m.list(ctx)
}
