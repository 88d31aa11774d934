package services

import (
	"context"
	"fmt"
	"time"

	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/db/repositories"
	"proposal_governance_system/internal/dispatcher"
	"proposal_governance_system/internal/governance"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// redispatchGrace keeps a sweep from re-sending a report that another sweep has
// just created and is still dispatching.
const redispatchGrace = time.Minute

type decisionService struct {
	proposals  repositories.ProposalRepository
	votes      repositories.VoteRepository
	reports    repositories.DecisionReportRepository
	dispatcher dispatcher.Dispatcher
	clock      governance.Clock
	logger     *zap.SugaredLogger
}

type DecisionService interface {
	// Finalize resolves the proposal and writes its decision report. It reports
	// false when the proposal had already been decided.
	Finalize(ctx context.Context, proposal *models.Proposal) (*models.DecisionReport, bool, error)
	// Redispatch retries reports whose dispatch failed and returns how many succeeded.
	Redispatch(ctx context.Context) (int, error)
	GetDecision(ctx context.Context, proposalID string) (*models.DecisionReport, error)
}

func NewDecisionService(
	proposals repositories.ProposalRepository,
	votes repositories.VoteRepository,
	reports repositories.DecisionReportRepository,
	dispatcher dispatcher.Dispatcher,
	clock governance.Clock,
	logger *zap.SugaredLogger,
) DecisionService {
	return &decisionService{
		proposals:  proposals,
		votes:      votes,
		reports:    reports,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger,
	}
}

func (s *decisionService) Finalize(ctx context.Context, proposal *models.Proposal) (*models.DecisionReport, bool, error) {
	votes, err := s.votes.GetManyByProposal(ctx, proposal.ID)
	if err != nil {
		return nil, false, err
	}

	ballots, invalid := models.Ballots(votes)
	for _, vote := range invalid {
		s.logger.Warnw("excluding unreadable vote from decision", "proposal_id", proposal.ID, "vote_id", vote.ID)
	}

	resolution := governance.Resolve(ballots)
	report := &models.DecisionReport{
		ProposalID:     proposal.ID,
		Decision:       resolution.Decision,
		DecisionMethod: resolution.Method,
		Reasoning:      resolution.Reasoning,
		ApproveScore:   resolution.Tally.Weighted.Approve,
		RejectScore:    resolution.Tally.Weighted.Reject,
		Votes:          models.Snapshot(votes),
		CreatedAt:      s.clock.Now(),
	}

	created, err := s.reports.Finalize(ctx, report)
	if err != nil {
		s.logger.Errorw("failed to write decision report", "error", err, "proposal_id", proposal.ID)
		return nil, false, err
	}
	if !created {
		return nil, false, nil
	}

	s.logger.Infow("proposal decided",
		"proposal_id", proposal.ID,
		"decision", report.Decision,
		"method", report.DecisionMethod,
		"approve_score", report.ApproveScore,
		"reject_score", report.RejectScore,
	)

	if err := s.dispatch(ctx, report, proposal.Subject); err != nil {
		return report, true, err
	}

	return report, true, nil
}

func (s *decisionService) Redispatch(ctx context.Context) (int, error) {
	reports, err := s.reports.GetManyUndispatched(ctx, s.clock.Now().Add(-redispatchGrace))
	if err != nil {
		return 0, err
	}

	var (
		errs       error
		dispatched int
	)
	for _, report := range reports {
		subject := ""
		if proposal, err := s.proposals.GetOne(ctx, report.ProposalID); err == nil {
			subject = proposal.Subject
		}

		if err := s.dispatch(ctx, report, subject); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		dispatched++
	}

	return dispatched, errs
}

func (s *decisionService) GetDecision(ctx context.Context, proposalID string) (*models.DecisionReport, error) {
	return s.reports.GetOneByProposal(ctx, proposalID)
}

func (s *decisionService) dispatch(ctx context.Context, report *models.DecisionReport, subject string) error {
	outcome := dispatcher.Outcome{
		ProposalID: report.ProposalID,
		Subject:    subject,
		Decision:   report.Decision,
		Method:     report.DecisionMethod,
		Reasoning:  report.Reasoning,
	}

	if err := s.dispatcher.Dispatch(ctx, outcome); err != nil {
		s.logger.Errorw("failed to dispatch decision", "error", err, "proposal_id", report.ProposalID)
		return fmt.Errorf("dispatch decision for proposal %s: %w", report.ProposalID, err)
	}

	if err := s.reports.MarkDispatched(ctx, report.ID, s.clock.Now()); err != nil {
		s.logger.Errorw("failed to mark decision dispatched", "error", err, "proposal_id", report.ProposalID)
		return err
	}

	return nil
}
