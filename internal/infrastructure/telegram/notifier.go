package telegram

import (
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Nekta161/autosalon/pkg/errors"
)

// Notifier sends a formatted text message to the staff alert channel.
type Notifier interface {
	Send(text string) error
}

// BotNotifier delivers staff alerts to a fixed Telegram chat. The HTTP
// client carries a timeout so a slow Telegram API cannot stall callers
// indefinitely.
type BotNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewBotNotifier(token string, chatID int64) (*BotNotifier, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, errors.ExternalService("Failed to initialize Telegram bot", err)
	}

	return &BotNotifier{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (n *BotNotifier) Send(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return errors.ExternalService("Failed to send Telegram message", err)
	}
	return nil
}

// NoopNotifier stands in when no bot token is configured, so deployments
// without Telegram keep working with alerts disabled.
type NoopNotifier struct{}

func (NoopNotifier) Send(string) error {
	return nil
}
