package commands

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the Telegram user a command runs for.
type Sender struct {
	TelegramID int64
	UserName   string
}

type Command interface {
	CanHandle(command string) bool
	Handle(ctx context.Context, arguments string, sender Sender, chatID int64) []tgbotapi.Chattable
}
