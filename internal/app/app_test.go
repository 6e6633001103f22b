package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/ykvlv/pomodoro-bot/internal/config"
	"github.com/ykvlv/pomodoro-bot/internal/pomodoro"
	"github.com/ykvlv/pomodoro-bot/internal/store"
	"github.com/ykvlv/pomodoro-bot/internal/testutil"
)

func TestNew_RequiresToken(t *testing.T) {
	_, err := New(config.Config{}, zaptest.NewLogger(t))
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	healthMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStoreOptions(t *testing.T) {
	opts := StoreOptions(config.Config{
		Store:       "redis",
		DBPath:      "/tmp/x.db",
		RedisAddr:   "cache:6379",
		RedisDB:     2,
		RedisPrefix: "p:",
	})
	assert.Equal(t, store.BackendRedis, opts.Backend)
	assert.Equal(t, "/tmp/x.db", opts.DBPath)
	assert.Equal(t, store.RedisConfig{Addr: "cache:6379", DB: 2, Prefix: "p:"}, opts.Redis)
}

func TestSessions_ResumeAfterRestart(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		Store:          "sqlite",
		DBPath:         filepath.Join(t.TempDir(), "pomodoro.db"),
		PollInterval:   time.Second,
		DefaultMinutes: 25,
	}

	repo, err := OpenStore(ctx, cfg)
	require.NoError(t, err)
	first := NewSessions(cfg, repo, &testutil.RecordingNotifier{}, zaptest.NewLogger(t))
	require.NoError(t, first.Start(ctx, "alice", "1:1", 0.0001))
	first.Shutdown()
	require.NoError(t, repo.Close())

	repo, err = OpenStore(ctx, cfg)
	require.NoError(t, err)
	defer repo.Close()

	notifier := &testutil.RecordingNotifier{}
	second := NewSessions(cfg, repo, notifier, zap.NewNop())
	defer second.Shutdown()
	require.NoError(t, second.Resume(ctx))
	assert.Equal(t, pomodoro.Armed, second.PollerState())

	require.Eventually(t, func() bool { return len(notifier.Calls()) == 1 }, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, "1:1", notifier.Calls()[0].Target)
}
