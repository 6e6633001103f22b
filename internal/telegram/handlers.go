package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ykvlv/pomodoro-bot/internal/domain"
	"github.com/ykvlv/pomodoro-bot/internal/pomodoro"
)

func (r *Router) handleStart(ctx context.Context, m *tgbotapi.Message, user string, args []string) {
	// An unparsable or oversized length falls through as 0, which the service treats as default.
	minutes, _ := domain.ParseMinutes(args[0])

	err := r.sessions.Start(ctx, user, encodeTarget(m.Chat.ID, m.MessageID), minutes)
	switch {
	case errors.Is(err, pomodoro.ErrAlreadyActive):
		r.sendText(m.Chat.ID, alreadyStartedText)
	case err != nil:
		r.log.Error("start pomodoro failed", zap.String("user", user), zap.Error(err))
		r.sendText(m.Chat.ID, storeErrorText)
	default:
		r.sendText(m.Chat.ID, startedText)
	}
}

func (r *Router) handleStop(ctx context.Context, m *tgbotapi.Message, user string, _ []string) {
	stopped, err := r.sessions.StopActive(ctx, user)
	if err != nil {
		r.log.Error("stop pomodoro failed", zap.String("user", user), zap.Error(err))
		r.sendText(m.Chat.ID, storeErrorText)
		return
	}
	if !stopped {
		r.sendText(m.Chat.ID, notStartedText)
		return
	}
	r.sendText(m.Chat.ID, stoppedText)
}

func (r *Router) handleSelf(ctx context.Context, m *tgbotapi.Message, user string, _ []string) {
	minutes, err := r.sessions.Remaining(ctx, user)
	switch {
	case errors.Is(err, pomodoro.ErrNotFound):
		r.sendText(m.Chat.ID, notStartedText)
	case err != nil:
		r.log.Error("read pomodoro failed", zap.String("user", user), zap.Error(err))
		r.sendText(m.Chat.ID, storeErrorText)
	default:
		r.sendText(m.Chat.ID, fmt.Sprintf(remainingSelfFmt, clampMinutes(minutes)))
	}
}

func (r *Router) handleOther(ctx context.Context, m *tgbotapi.Message, _ string, args []string) {
	name := args[0]
	minutes, err := r.sessions.Remaining(ctx, name)
	switch {
	case errors.Is(err, pomodoro.ErrNotFound):
		r.sendText(m.Chat.ID, fmt.Sprintf(notStartedFmt, name))
	case err != nil:
		r.log.Error("read pomodoro failed", zap.String("user", name), zap.Error(err))
		r.sendText(m.Chat.ID, storeErrorText)
	default:
		r.sendText(m.Chat.ID, fmt.Sprintf(remainingOtherFmt, clampMinutes(minutes), name))
	}
}

func (r *Router) handleAll(ctx context.Context, m *tgbotapi.Message, _ string, _ []string) {
	list, err := r.sessions.RemainingAll(ctx)
	if err != nil {
		r.log.Error("list pomodoros failed", zap.Error(err))
		r.sendText(m.Chat.ID, storeErrorText)
		return
	}
	r.sendText(m.Chat.ID, FormatAll(list))
}
