package telegram

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ykvlv/pomodoro-bot/internal/pomodoro"
)

// Sessions is the pomodoro service as seen by the chat commands.
type Sessions interface {
	Start(ctx context.Context, user, target string, minutes float64) error
	StopActive(ctx context.Context, user string) (bool, error)
	Remaining(ctx context.Context, user string) (int, error)
	RemainingAll(ctx context.Context) ([]pomodoro.Remaining, error)
}

type handlerFunc func(r *Router, ctx context.Context, m *tgbotapi.Message, user string, args []string)

type command struct {
	pattern *regexp.Regexp
	handle  handlerFunc
}

var mentionRe = regexp.MustCompile(`@\w+`)

// Commands are tried in order; the first match wins.
var commands = []command{
	{regexp.MustCompile(`(?i)^start pomodoro(?:\s+([\d.]+))?$`), (*Router).handleStart},
	{regexp.MustCompile(`(?i)^stop pomodoro$`), (*Router).handleStop},
	{regexp.MustCompile(`(?i)^all pomodoros\?$`), (*Router).handleAll},
	{regexp.MustCompile(`(?i)^pomodoro\?$`), (*Router).handleSelf},
	{regexp.MustCompile(`(?i)^pomodoro ([\w-]+)\?$`), (*Router).handleOther},
}

// Router wires Telegram updates to pomodoro commands.
type Router struct {
	bot      Bot
	log      *zap.Logger
	sessions Sessions
}

// NewRouter creates a new Telegram router.
func NewRouter(bot Bot, log *zap.Logger, sessions Sessions) *Router {
	return &Router{bot: bot, log: log, sessions: sessions}
}

// HandleUpdate routes a single update to the matching command. Anything
// that is not a pomodoro command is ignored.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return
	}
	text := normalize(msg.Text)
	for _, c := range commands {
		m := c.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		c.handle(r, ctx, msg, userName(msg.From), m[1:])
		return
	}
}

// normalize strips a leading slash and bot mentions like "@pomodoro_bot".
func normalize(text string) string {
	text = strings.TrimPrefix(strings.TrimSpace(text), "/")
	text = mentionRe.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// userName is the session key of a Telegram user.
func userName(u *tgbotapi.User) string {
	if u.UserName != "" {
		return u.UserName
	}
	return strconv.FormatInt(u.ID, 10)
}

func (r *Router) sendText(chatID int64, text string) {
	if _, err := r.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		r.log.Warn("send failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}
