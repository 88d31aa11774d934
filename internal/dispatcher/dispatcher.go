// Package dispatcher hands terminal decisions to the downstream collaborators and
// announces them on the configured channels.
package dispatcher

import (
	"context"
	"fmt"

	"proposal_governance_system/internal/governance"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Outcome struct {
	ProposalID string                    `json:"proposal_id"`
	Subject    string                    `json:"subject,omitempty"`
	Decision   governance.Decision       `json:"decision"`
	Method     governance.DecisionMethod `json:"decision_method"`
	Reasoning  string                    `json:"reasoning"`
}

type Dispatcher interface {
	Dispatch(ctx context.Context, outcome Outcome) error
}

// Notifier announces a decision; its failures never fail a dispatch.
type Notifier interface {
	Notify(ctx context.Context, outcome Outcome) error
}

type Chain struct {
	collaborator Dispatcher
	notifiers    []Notifier
	logger       *zap.SugaredLogger
}

func NewChain(collaborator Dispatcher, logger *zap.SugaredLogger, notifiers ...Notifier) *Chain {
	return &Chain{
		collaborator: collaborator,
		notifiers:    notifiers,
		logger:       logger,
	}
}

func (c *Chain) Dispatch(ctx context.Context, outcome Outcome) error {
	if c.collaborator != nil {
		if err := c.collaborator.Dispatch(ctx, outcome); err != nil {
			return err
		}
	}

	for _, notifier := range c.notifiers {
		if err := notifier.Notify(ctx, outcome); err != nil {
			c.logger.Warnw("failed to send decision notification", "error", err, "proposal_id", outcome.ProposalID)
		}
	}

	return nil
}

// Noop accepts every outcome; used when no collaborator endpoint is configured.
type Noop struct{}

func (Noop) Dispatch(context.Context, Outcome) error {
	return nil
}

var titleCaser = cases.Title(language.English)

func summary(outcome Outcome) string {
	subject := outcome.Subject
	if subject == "" {
		subject = outcome.ProposalID
	}

	return fmt.Sprintf(
		"Proposal %s: %s (%s)\n\n%s",
		subject,
		titleCaser.String(outcome.Decision.String()),
		outcome.Method,
		outcome.Reasoning,
	)
}
