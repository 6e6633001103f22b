package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot is the part of *tgbotapi.BotAPI the bot uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier delivers pomodoro notifications as replies to the message that
// started the session. It satisfies pomodoro.Notifier.
type Notifier struct {
	bot Bot
}

func NewNotifier(bot Bot) *Notifier {
	return &Notifier{bot: bot}
}

func (n *Notifier) Notify(_ context.Context, target, text string) error {
	chatID, messageID, err := decodeTarget(target)
	if err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = messageID
	_, err = n.bot.Send(msg)
	return err
}
