package pomodoro

import (
	"context"

	"github.com/ykvlv/pomodoro-bot/internal/domain"
)

// Remaining pairs a user with the minutes left in their session.
type Remaining struct {
	User    string
	Minutes int
}

// Remaining returns the minutes left in user's session, or ErrNotFound when
// the user has no active session.
func (s *Service) Remaining(ctx context.Context, user string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	t, err := s.repo.Get(ctx, user)
	if err != nil {
		return 0, err
	}
	if !domain.IsActive(t, now) {
		return 0, ErrNotFound
	}
	return t.Remaining(now), nil
}

// RemainingAll lists every stored session ordered by user, including ones
// that are due but not yet collected by the poller. Malformed records are
// skipped.
func (s *Service) RemainingAll(ctx context.Context) ([]Remaining, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	res := make([]Remaining, 0, len(timers))
	for i := range timers {
		if !domain.IsWellFormed(&timers[i]) {
			continue
		}
		res = append(res, Remaining{User: timers[i].User, Minutes: timers[i].Remaining(now)})
	}
	return res, nil
}
