package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ykvlv/pomodoro-bot/internal/app"
	"github.com/ykvlv/pomodoro-bot/internal/config"
	"github.com/ykvlv/pomodoro-bot/internal/domain"
)

func TestPrintStatus(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{Store: "sqlite", DBPath: filepath.Join(t.TempDir(), "pomodoro.db")}

	var out bytes.Buffer
	require.NoError(t, printStatus(ctx, cfg, zap.NewNop(), &out))
	assert.Equal(t, "There is no started a pomodoro\n", out.String())

	repo, err := app.OpenStore(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, "alice", &domain.Timer{
		StartedAt:     time.Now().Add(time.Minute),
		LengthMinutes: 10,
	}))
	require.NoError(t, repo.Close())

	out.Reset()
	require.NoError(t, printStatus(ctx, cfg, zap.NewNop(), &out))
	assert.Equal(t, "There are still 11 minutes remaining in alice's pomodoro\n", out.String())
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := newRootCmd(config.Config{}, zap.NewNop())

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "status"}, names)
}
