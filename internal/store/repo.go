package store

import (
	"context"

	"github.com/ykvlv/pomodoro-bot/internal/domain"
)

// Repo holds at most one timer record per user.
//
// Get returns (nil, nil) when the user has no record. Set with a nil timer
// deletes the record; readers never see a difference between a deleted and
// a never-written user. List returns every non-nil record.
type Repo interface {
	Get(ctx context.Context, user string) (*domain.Timer, error)
	Set(ctx context.Context, user string, t *domain.Timer) error
	List(ctx context.Context) ([]domain.Timer, error)
	Close() error
}
