package handlers

import (
	"context"

	"proposal_governance_system/internal/tg_bot/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type CommandHandler interface {
	Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable
}

type communityVoteBotCommandHandler struct {
	logger   *zap.SugaredLogger
	commands []commands.Command
}

func NewCommunityVoteBotCommandHandler(logger *zap.SugaredLogger, commands []commands.Command) CommandHandler {
	return &communityVoteBotCommandHandler{
		logger:   logger,
		commands: commands,
	}
}

func (h *communityVoteBotCommandHandler) Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable {
	message := update.Message
	if message == nil || message.From == nil {
		h.logger.Debug("skipping update without a message")
		return []tgbotapi.Chattable{}
	}

	chatID := message.Chat.ID
	if !message.IsCommand() {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Send /start to see what I can do.")}
	}

	sender := commands.Sender{
		TelegramID: message.From.ID,
		UserName:   message.From.UserName,
	}

	command := message.Command()
	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			h.logger.Infow("handling command", "command", command, "telegram_id", sender.TelegramID)
			return handler.Handle(ctx, message.CommandArguments(), sender, chatID)
		}
	}

	h.logger.Warnw("received unknown command", "command", command)
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Unknown command. Send /start to see what I can do.")}
}
