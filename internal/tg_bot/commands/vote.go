package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"proposal_governance_system/internal/governance"
	"proposal_governance_system/internal/services"
	tgbot "proposal_governance_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	voteCommandName  = "vote"
	voteCommandUsage = "/vote <id> <approve|reject|abstain> <reasoning>"
)

type voteCommand struct {
	voteService services.VoteService
	logger      *zap.SugaredLogger
}

func NewVoteCommand(voteService services.VoteService, logger *zap.SugaredLogger) Command {
	return &voteCommand{
		voteService: voteService,
		logger:      logger,
	}
}

func (c *voteCommand) CanHandle(command string) bool {
	return command == voteCommandName
}

func (c *voteCommand) Handle(ctx context.Context, arguments string, sender Sender, chatID int64) []tgbotapi.Chattable {
	fields := strings.Fields(arguments)
	if len(fields) < 2 {
		return []tgbotapi.Chattable{tgbot.UsageMessage(chatID, voteCommandUsage)}
	}

	choice, err := governance.ParseChoice(fields[1])
	if err != nil {
		return []tgbotapi.Chattable{tgbot.UsageMessage(chatID, voteCommandUsage)}
	}

	result, err := c.voteService.Submit(ctx, services.VoteSubmission{
		ProposalID: fields[0],
		Voter:      governance.Community{SessionKey: tgbot.SessionKey(sender.TelegramID)},
		Choice:     choice,
		Reasoning:  strings.Join(fields[2:], " "),
	})
	switch {
	case errors.Is(err, governance.ErrInvalidAbstention):
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "An abstention must name a conflict of interest, insufficient information or that the proposal is outside your expertise. Please vote again.")}
	case errors.Is(err, governance.ErrNotFound):
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Proposal not found.")}
	case errors.Is(err, governance.ErrStateConflict):
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Voting on this proposal is closed.")}
	case err != nil:
		c.logger.Errorw("failed to submit vote", "error", err, "proposal_id", fields[0], "telegram_id", sender.TelegramID)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	text := fmt.Sprintf(
		"Your %s vote is recorded.\nCommunity so far: %d approve, %d reject, %d abstain.",
		choice,
		result.Summary.Community.Approve,
		result.Summary.Community.Reject,
		result.Summary.Community.Abstain,
	)
	if result.ConsensusReached {
		text += "\nThe executive panel has already reached consensus on this proposal."
	}

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, text)}
}
