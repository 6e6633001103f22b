package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ykvlv/pomodoro-bot/internal/app"
	"github.com/ykvlv/pomodoro-bot/internal/config"
	"github.com/ykvlv/pomodoro-bot/internal/telegram"
)

// silentNotifier drops notifications; status never runs a poll cycle.
type silentNotifier struct{}

func (silentNotifier) Notify(context.Context, string, string) error { return nil }

func printStatus(ctx context.Context, cfg config.Config, log *zap.Logger, w io.Writer) error {
	repo, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer repo.Close()

	list, err := app.NewSessions(cfg, repo, silentNotifier{}, log).RemainingAll(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, telegram.FormatAll(list))
	return err
}
