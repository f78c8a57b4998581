// Package notify delivers the user-facing notifications raised by telemetry
// events. The desktop builds showed native toasts; the server build pushes
// the same messages to a Telegram chat when a bot token is configured.
package notify

import (
	"fmt"
	"os"
	"strconv"
	"time"

	logrus "github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"truck_companion/internal/models"
)

// Telegram sends trip/fine notifications through a bot. A nil *Telegram is
// a valid no-op notifier, so callers never need to branch on configuration.
type Telegram struct {
	bot  *telebot.Bot
	chat *telebot.Chat
}

// NewTelegramFromEnv builds the notifier from BOT_TOKEN and NOTIFY_CHAT_ID.
// Returns (nil, nil) when either is unset: notifications simply stay off.
func NewTelegramFromEnv() (*Telegram, error) {
	token := os.Getenv("BOT_TOKEN")
	chatID := os.Getenv("NOTIFY_CHAT_ID")
	if token == "" || chatID == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("NOTIFY_CHAT_ID must be a numeric chat id: %w", err)
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}

	return &Telegram{bot: b, chat: &telebot.Chat{ID: id}}, nil
}

func (t *Telegram) send(msg string) {
	if t == nil {
		return
	}
	if _, err := t.bot.Send(t.chat, msg); err != nil {
		logrus.WithError(err).Warn("notify: telegram send failed")
	}
}

// TripCompleted announces a finished delivery.
func (t *Telegram) TripCompleted(trip models.Trip) {
	t.send(fmt.Sprintf("🚚 Trip finished!\n%s → %s (%d km)", trip.Source, trip.Destination, trip.DistanceKM))
}

// FineIssued announces a new fine.
func (t *Telegram) FineIssued(fine models.Fine) {
	t.send(fmt.Sprintf("🚔 Fine received!\n-€ %.0f: %s", fine.Amount, fine.Type))
}
