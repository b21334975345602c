package telegram

import (
	"context"
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/davonjagah/JagahVA/commands"
	"github.com/davonjagah/JagahVA/config"
)

// Bot wraps the Telegram client and forwards authorized messages to the
// command handler. An empty allow-list lets every sender through; with the
// allow-list set, messages from anyone else are dropped.
type Bot struct {
	api           *tgbotapi.BotAPI
	handler       *commands.Handler
	allowedUserID string
	logger        *log.Logger
}

func NewBot(cfg *config.Config, handler *commands.Handler, logger *log.Logger) (*Bot, error) {
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("telegram: TELEGRAM_BOT_TOKEN is required")
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}

	logger.Printf("telegram bot authorized as @%s", api.Self.UserName)
	return &Bot{
		api:           api,
		handler:       handler,
		allowedUserID: cfg.AllowedUserID,
		logger:        logger,
	}, nil
}

// StartPolling runs the long-poll loop until ctx is cancelled.
func (b *Bot) StartPolling(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			b.HandleUpdate(ctx, &update)
		}
	}
}

// HandleUpdate processes one update, whether it arrived by polling or via
// the webhook endpoint.
func (b *Bot) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	userID := strconv.FormatInt(update.Message.From.ID, 10)
	if b.allowedUserID != "" && userID != b.allowedUserID {
		b.logger.Printf("unauthorized message from %s", userID)
		return
	}

	b.logger.Printf("received message from %s: %s", userID, update.Message.Text)

	reply := b.handler.Dispatch(ctx, userID, update.Message.Text)
	if reply == "" {
		return
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, reply)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Printf("error sending reply to %s: %v", userID, err)
	}
}
