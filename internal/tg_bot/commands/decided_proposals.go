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

const (
	decidedProposalsCommandName = "decided_proposals"
	decidedProposalsLimit       = 10
)

type decidedProposalsCommand struct {
	proposalRepository repositories.ProposalRepository
	logger             *zap.SugaredLogger
}

func NewDecidedProposalsCommand(proposalRepository repositories.ProposalRepository, logger *zap.SugaredLogger) Command {
	return &decidedProposalsCommand{
		proposalRepository: proposalRepository,
		logger:             logger,
	}
}

func (c *decidedProposalsCommand) CanHandle(command string) bool {
	return command == decidedProposalsCommandName
}

func (c *decidedProposalsCommand) Handle(ctx context.Context, _ string, _ Sender, chatID int64) []tgbotapi.Chattable {
	proposals, err := c.proposalRepository.GetManyByStatus(
		ctx,
		models.ProposalStatusApproved,
		models.ProposalStatusRejected,
		models.ProposalStatusRejectedWithFeedback,
	)
	if err != nil {
		c.logger.Errorw("failed to get proposals", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	if len(proposals) == 0 {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "No proposals have been decided yet.")}
	}

	if len(proposals) > decidedProposalsLimit {
		proposals = proposals[len(proposals)-decidedProposalsLimit:]
	}

	var text strings.Builder
	for _, proposal := range proposals {
		text.WriteString(fmt.Sprintf("%s: %s (%s)\n", proposal.Subject, proposal.Status, internal.Format(proposal.UpdatedAt)))
	}

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, strings.TrimSpace(text.String()))}
}
