// Package pomodoro tracks one countdown timer per user, expires timers with a
// demand-driven poller and answers remaining-time queries.
package pomodoro

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ykvlv/pomodoro-bot/internal/domain"
	"github.com/ykvlv/pomodoro-bot/internal/store"
)

// CompletedText is delivered to a session's notify target when it expires.
const CompletedText = "Pomodoro completed!"

const (
	defaultPollInterval = time.Second
	defaultCycleTimeout = 5 * time.Second
)

var (
	ErrAlreadyActive = errors.New("pomodoro already started")
	ErrNotFound      = errors.New("pomodoro not found")
)

// Notifier delivers text to a host addressing token.
type Notifier interface {
	Notify(ctx context.Context, target, text string) error
}

// Service is the session manager. Every store access, query and poll cycle
// runs under mu, so read-modify-write sequences never interleave.
type Service struct {
	mu sync.Mutex

	repo           store.Repo
	notifier       Notifier
	log            *zap.Logger
	clock          Clock
	pollInterval   time.Duration
	cycleTimeout   time.Duration
	defaultMinutes float64

	poller *Poller
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithPollInterval sets the delay between poll cycles.
func WithPollInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// WithDefaultMinutes sets the length used when Start gets no positive length.
func WithDefaultMinutes(m float64) Option {
	return func(s *Service) {
		if m > 0 {
			s.defaultMinutes = m
		}
	}
}

// New creates a Service over repo. The poller starts Idle.
func New(repo store.Repo, notifier Notifier, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		repo:           repo,
		notifier:       notifier,
		log:            log,
		clock:          SystemClock,
		pollInterval:   defaultPollInterval,
		cycleTimeout:   defaultCycleTimeout,
		defaultMinutes: domain.DefaultMinutes,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.poller = newPoller(s.clock, s.pollInterval, s.wake)
	return s
}

// Start creates a session for user unless one is already active.
// A minutes value <= 0 selects the default length.
func (s *Service) Start(ctx context.Context, user, target string, minutes float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	cur, err := s.repo.Get(ctx, user)
	if err != nil {
		return err
	}
	if domain.IsActive(cur, now) {
		return ErrAlreadyActive
	}
	if minutes <= 0 {
		minutes = s.defaultMinutes
	}

	t := &domain.Timer{
		User:          user,
		StartedAt:     now,
		LengthMinutes: minutes,
		NotifyTarget:  target,
	}
	if err := s.repo.Set(ctx, user, t); err != nil {
		return err
	}
	s.log.Info("pomodoro started",
		zap.String("user", user),
		zap.Float64("length_minutes", minutes),
		zap.Duration("length", domain.ToSpan(minutes)),
	)

	if s.poller.State() == Idle {
		s.poller.Arm()
	}
	return nil
}

// Stop deletes the user's session. Stopping a user without one is a no-op.
func (s *Service) Stop(ctx context.Context, user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Set(ctx, user, nil)
}

// StopActive deletes the user's session if it is still running and reports
// whether it did. An expired record is left for the poller to complete.
func (s *Service) StopActive(ctx context.Context, user string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.repo.Get(ctx, user)
	if err != nil {
		return false, err
	}
	if !domain.IsActive(t, s.clock.Now()) {
		return false, nil
	}
	if err := s.repo.Set(ctx, user, nil); err != nil {
		return false, err
	}
	return true, nil
}

// Complete deletes the user's session and, when there was one, notifies its
// target with CompletedText.
func (s *Service) Complete(ctx context.Context, user string) error {
	s.mu.Lock()
	n, err := s.complete(ctx, user)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if n != nil {
		s.deliver(ctx, []completion{*n})
	}
	return nil
}

// Active reports whether user has a running session.
func (s *Service) Active(ctx context.Context, user string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.repo.Get(ctx, user)
	if err != nil {
		return false, err
	}
	return domain.IsActive(t, s.clock.Now()), nil
}

// Resume arms the poller when the store already holds records, e.g. ones
// persisted before a restart.
func (s *Service) Resume(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	timers, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(timers) > 0 && s.poller.State() == Idle {
		s.log.Info("resuming pomodoros", zap.Int("count", len(timers)))
		s.poller.Arm()
	}
	return nil
}

// Shutdown cancels any pending poll. Sessions stay in the store.
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.poller.Cancel()
}

// PollerState reports whether a poll cycle is scheduled.
func (s *Service) PollerState() PollerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poller.State()
}

type completion struct {
	user   string
	target string
}

// complete runs with mu held.
func (s *Service) complete(ctx context.Context, user string) (*completion, error) {
	t, err := s.repo.Get(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info("pomodoro completed", zap.String("user", user))
	if err := s.repo.Set(ctx, user, nil); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return &completion{user: user, target: t.NotifyTarget}, nil
}

// deliver runs without mu; delivery is best effort.
func (s *Service) deliver(ctx context.Context, done []completion) {
	for _, c := range done {
		if err := s.notifier.Notify(ctx, c.target, CompletedText); err != nil {
			s.log.Warn("completion notify failed", zap.String("user", c.user), zap.Error(err))
		}
	}
}
