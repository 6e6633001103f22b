package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ykvlv/pomodoro-bot/internal/domain"
)

var ErrStoreClosed = errors.New("store closed")

// MemoryRepo keeps timers in a process-local map. A deleted user keeps its
// key with a nil value, exactly like the chat host's brain.
type MemoryRepo struct {
	mu     sync.RWMutex
	users  map[string]*domain.Timer
	closed bool
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]*domain.Timer)}
}

func (m *MemoryRepo) Get(ctx context.Context, user string) (*domain.Timer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrStoreClosed
	}
	t := m.users[user]
	if t == nil {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *MemoryRepo) Set(ctx context.Context, user string, t *domain.Timer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStoreClosed
	}
	if t == nil {
		m.users[user] = nil
		return nil
	}
	cp := *t
	cp.User = user
	m.users[user] = &cp
	return nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]domain.Timer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrStoreClosed
	}
	var res []domain.Timer
	for _, t := range m.users {
		if t != nil {
			res = append(res, *t)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].User < res[j].User })
	return res, nil
}

func (m *MemoryRepo) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
