package pomodoro

import (
	"context"

	"go.uber.org/zap"

	"github.com/ykvlv/pomodoro-bot/internal/domain"
)

// wake is the poller callback for the wake scheduled with generation gen.
func (s *Service) wake(gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cycleTimeout)
	defer cancel()

	s.mu.Lock()
	if !s.poller.claim(gen) {
		s.mu.Unlock()
		return
	}
	done, left, err := s.cycle(ctx)
	switch {
	case err != nil:
		s.log.Error("poll cycle failed", zap.Error(err))
		s.poller.Arm()
	case left > 0:
		s.poller.Arm()
	default:
		s.log.Debug("no pomodoros left, poller idle")
	}
	s.mu.Unlock()

	s.deliver(ctx, done)
}

// cycle completes expired records, discards malformed ones and returns how
// many records remain. It runs with mu held.
func (s *Service) cycle(ctx context.Context) ([]completion, int, error) {
	timers, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	now := s.clock.Now()
	var done []completion
	for i := range timers {
		t := &timers[i]
		switch {
		case !domain.IsWellFormed(t):
			s.log.Warn("discarding malformed pomodoro", zap.String("user", t.User))
			if err := s.repo.Set(ctx, t.User, nil); err != nil {
				s.log.Error("discard failed", zap.String("user", t.User), zap.Error(err))
			}
		case domain.IsExpired(t, now):
			c, err := s.complete(ctx, t.User)
			if err != nil {
				s.log.Error("complete failed", zap.String("user", t.User), zap.Error(err))
				continue
			}
			if c != nil {
				done = append(done, *c)
			}
		}
	}

	left, err := s.repo.List(ctx)
	if err != nil {
		return done, 0, err
	}
	return done, len(left), nil
}
