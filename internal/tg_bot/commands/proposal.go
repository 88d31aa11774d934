package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"proposal_governance_system/internal"
	"proposal_governance_system/internal/db/repositories"
	"proposal_governance_system/internal/governance"
	"proposal_governance_system/internal/services"
	tgbot "proposal_governance_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	proposalCommandName  = "proposal"
	proposalCommandUsage = "/proposal <id>"
)

type proposalCommand struct {
	proposalRepository repositories.ProposalRepository
	voteService        services.VoteService
	decisionService    services.DecisionService
	logger             *zap.SugaredLogger
}

func NewProposalCommand(
	proposalRepository repositories.ProposalRepository,
	voteService services.VoteService,
	decisionService services.DecisionService,
	logger *zap.SugaredLogger,
) Command {
	return &proposalCommand{
		proposalRepository: proposalRepository,
		voteService:        voteService,
		decisionService:    decisionService,
		logger:             logger,
	}
}

func (c *proposalCommand) CanHandle(command string) bool {
	return command == proposalCommandName
}

func (c *proposalCommand) Handle(ctx context.Context, arguments string, _ Sender, chatID int64) []tgbotapi.Chattable {
	proposalID := strings.TrimSpace(arguments)
	if proposalID == "" {
		return []tgbotapi.Chattable{tgbot.UsageMessage(chatID, proposalCommandUsage)}
	}

	proposal, err := c.proposalRepository.GetOne(ctx, proposalID)
	if errors.Is(err, governance.ErrNotFound) {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Proposal not found.")}
	} else if err != nil {
		c.logger.Errorw("failed to get proposal", "error", err, "proposal_id", proposalID)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	summary, err := c.voteService.Summary(ctx, proposal.ID)
	if err != nil {
		c.logger.Errorw("failed to get vote summary", "error", err, "proposal_id", proposal.ID)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("%s\n\n", proposal.Subject))
	if proposal.Description != "" {
		text.WriteString(fmt.Sprintf("%s\n\n", proposal.Description))
	}
	if proposal.Rationale != "" {
		text.WriteString(fmt.Sprintf("Rationale: %s\n", proposal.Rationale))
	}
	if proposal.UseCase != "" {
		text.WriteString(fmt.Sprintf("Use case: %s\n", proposal.UseCase))
	}
	text.WriteString(fmt.Sprintf("Proposed by: %s\n", proposal.ProposedBy))
	text.WriteString(fmt.Sprintf("Status: %s", proposal.Status))
	if proposal.IsVoting() {
		text.WriteString(fmt.Sprintf(" (%s phase)", proposal.VotingPhase))
	}
	text.WriteString("\n")
	if proposal.IsVoting() && proposal.DeadlinesInitialized() {
		text.WriteString(fmt.Sprintf("Voting closes: %s\n", internal.FormatDateTime(proposal.CommunityDeadline)))
	}

	text.WriteString(fmt.Sprintf(
		"\nExecutives: %d approve, %d reject, %d abstain, %d of %d voted\n",
		summary.Executive.Approve,
		summary.Executive.Reject,
		summary.Executive.Abstain,
		summary.Executive.Voted,
		governance.ExecutiveCount(),
	))
	text.WriteString(fmt.Sprintf(
		"Community: %d approve, %d reject, %d abstain\n",
		summary.Community.Approve,
		summary.Community.Reject,
		summary.Community.Abstain,
	))
	text.WriteString(fmt.Sprintf("Weighted score: %d to %d\n", summary.Weighted.Approve, summary.Weighted.Reject))

	if !proposal.IsVoting() {
		report, err := c.decisionService.GetDecision(ctx, proposal.ID)
		if err == nil {
			text.WriteString(fmt.Sprintf("\nDecision: %s by %s\n%s", report.Decision, report.DecisionMethod, report.Reasoning))
		} else if !errors.Is(err, governance.ErrNotFound) {
			c.logger.Errorw("failed to get decision", "error", err, "proposal_id", proposal.ID)
		}
	}

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, strings.TrimSpace(text.String()))}
}
