package commands

import (
	"context"
	"fmt"
	"strings"

	"proposal_governance_system/internal"
	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/db/repositories"
	tgbot "proposal_governance_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const pendingProposalsCommandName = "pending_proposals"

type pendingProposalsCommand struct {
	proposalRepository repositories.ProposalRepository
	logger             *zap.SugaredLogger
}

func NewPendingProposalsCommand(proposalRepository repositories.ProposalRepository, logger *zap.SugaredLogger) Command {
	return &pendingProposalsCommand{
		proposalRepository: proposalRepository,
		logger:             logger,
	}
}

func (c *pendingProposalsCommand) CanHandle(command string) bool {
	return command == pendingProposalsCommandName
}

func (c *pendingProposalsCommand) Handle(ctx context.Context, _ string, _ Sender, chatID int64) []tgbotapi.Chattable {
	proposals, err := c.proposalRepository.GetManyByStatus(ctx, models.ProposalStatusVoting)
	if err != nil {
		c.logger.Errorw("failed to get proposals", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	if len(proposals) == 0 {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "No proposals are open for voting.")}
	}

	var text strings.Builder
	for _, proposal := range proposals {
		text.WriteString(fmt.Sprintf("%s\n", proposal.Subject))
		text.WriteString(fmt.Sprintf("ID: %s\n", proposal.ID))
		text.WriteString(fmt.Sprintf("Phase: %s\n", proposal.VotingPhase))
		if proposal.DeadlinesInitialized() {
			text.WriteString(fmt.Sprintf("Voting closes: %s\n", internal.FormatDateTime(proposal.CommunityDeadline)))
		}
		text.WriteString("\n")
	}

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, strings.TrimSpace(text.String()))}
}
