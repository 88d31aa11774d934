package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/db/repositories"
	"proposal_governance_system/internal/governance"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type SweepPass string

func (p SweepPass) String() string {
	return string(p)
}

const (
	PassCheckAll              SweepPass = "check_all"
	PassTriggerExecutiveVotes SweepPass = "trigger_executive_votes"
	PassCheckPhaseTransitions SweepPass = "check_phase_transitions"
	PassFinalizeVoting        SweepPass = "finalize_voting"
)

func ParseSweepPass(value string) (SweepPass, error) {
	switch pass := SweepPass(value); pass {
	case "":
		return PassCheckAll, nil
	case PassCheckAll, PassTriggerExecutiveVotes, PassCheckPhaseTransitions, PassFinalizeVoting:
		return pass, nil
	}
	return "", fmt.Errorf("%q: %w", value, governance.ErrUnknownSweepPass)
}

type SweepResult struct {
	Pass                    SweepPass `json:"pass"`
	DeadlinesInitialized    int       `json:"deadlines_initialized"`
	ExecutivePolls          int       `json:"executive_polls"`
	ExecutiveVotesCollected int       `json:"executive_votes_collected"`
	PhaseTransitions        int       `json:"phase_transitions"`
	Finalized               int       `json:"finalized"`
	Redispatched            int       `json:"redispatched"`
	Errors                  []string  `json:"errors"`
}

type Windows struct {
	Executive time.Duration
	Community time.Duration
}

type phaseService struct {
	proposals repositories.ProposalRepository
	votes     VoteService
	polls     PollService
	decisions DecisionService
	clock     governance.Clock
	windows   Windows
	logger    *zap.SugaredLogger
}

type PhaseService interface {
	Sweep(ctx context.Context, pass SweepPass) (SweepResult, error)
}

func NewPhaseService(
	proposals repositories.ProposalRepository,
	votes VoteService,
	polls PollService,
	decisions DecisionService,
	clock governance.Clock,
	windows Windows,
	logger *zap.SugaredLogger,
) PhaseService {
	return &phaseService{
		proposals: proposals,
		votes:     votes,
		polls:     polls,
		decisions: decisions,
		clock:     clock,
		windows:   windows,
		logger:    logger,
	}
}

// Sweep runs one scheduler pass over every proposal that is open for voting. A failure
// on one proposal is recorded and the pass moves on.
func (s *phaseService) Sweep(ctx context.Context, pass SweepPass) (SweepResult, error) {
	if _, err := ParseSweepPass(pass.String()); err != nil {
		return SweepResult{}, err
	}
	if pass == "" {
		pass = PassCheckAll
	}

	result := SweepResult{Pass: pass, Errors: []string{}}
	var errs error

	steps := map[SweepPass][]func(context.Context, *SweepResult) error{
		PassCheckAll:              {s.bootstrap, s.nudgeExecutives, s.advancePhases, s.finalize},
		PassTriggerExecutiveVotes: {s.nudgeExecutives},
		PassCheckPhaseTransitions: {s.bootstrap, s.advancePhases},
		PassFinalizeVoting:        {s.finalize},
	}[pass]

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			errs = multierr.Append(errs, err)
			break
		}
		errs = multierr.Append(errs, step(ctx, &result))
	}

	for _, err := range multierr.Errors(errs) {
		result.Errors = append(result.Errors, err.Error())
	}
	if errs != nil {
		s.logger.Warnw("sweep finished with errors", "pass", pass, "errors", len(result.Errors))
	}
	s.logger.Infow("sweep finished",
		"pass", pass,
		"deadlines_initialized", result.DeadlinesInitialized,
		"executive_polls", result.ExecutivePolls,
		"phase_transitions", result.PhaseTransitions,
		"finalized", result.Finalized,
		"redispatched", result.Redispatched,
	)

	return result, nil
}

func (s *phaseService) voting(ctx context.Context) ([]*models.Proposal, error) {
	return s.proposals.GetManyByStatus(ctx, models.ProposalStatusVoting)
}

func (s *phaseService) bootstrap(ctx context.Context, result *SweepResult) error {
	proposals, err := s.voting(ctx)
	if err != nil {
		return err
	}

	var errs error
	for _, proposal := range proposals {
		if proposal.VotingPhase != models.VotingPhaseExecutive || proposal.DeadlinesInitialized() {
			continue
		}

		now := s.clock.Now()
		ok, err := s.proposals.InitializeDeadlines(ctx, proposal.ID, now, now.Add(s.windows.Executive), now.Add(s.windows.Community))
		if err != nil {
			errs = multierr.Append(errs, proposalError(proposal, err))
			continue
		}
		if ok {
			result.DeadlinesInitialized++
			s.logger.Infow("voting window opened", "proposal_id", proposal.ID, "executive_deadline", now.Add(s.windows.Executive))
		}
	}

	return errs
}

func (s *phaseService) nudgeExecutives(ctx context.Context, result *SweepResult) error {
	proposals, err := s.voting(ctx)
	if err != nil {
		return err
	}

	var errs error
	for _, proposal := range proposals {
		if proposal.VotingPhase != models.VotingPhaseExecutive {
			continue
		}

		tally, err := s.votes.Tally(ctx, proposal.ID)
		if err != nil {
			errs = multierr.Append(errs, proposalError(proposal, err))
			continue
		}
		if tally.AllExecutivesVoted() || tally.ConsensusReached() {
			continue
		}

		outstanding := make([]string, 0, len(tally.Outstanding))
		for _, id := range tally.Outstanding {
			outstanding = append(outstanding, id.String())
		}

		poll, err := s.polls.Poll(ctx, proposal.ID, outstanding)
		if errors.Is(err, governance.ErrStateConflict) {
			continue
		} else if err != nil {
			errs = multierr.Append(errs, proposalError(proposal, err))
			continue
		}

		result.ExecutivePolls++
		result.ExecutiveVotesCollected += poll.VotesCollected
		for _, message := range poll.Errors {
			errs = multierr.Append(errs, fmt.Errorf("proposal %s: %s", proposal.ID, message))
		}
	}

	return errs
}

func (s *phaseService) advancePhases(ctx context.Context, result *SweepResult) error {
	proposals, err := s.voting(ctx)
	if err != nil {
		return err
	}

	var errs error
	for _, proposal := range proposals {
		if proposal.VotingPhase != models.VotingPhaseExecutive || !proposal.DeadlinesInitialized() {
			continue
		}

		due := s.clock.Now().After(proposal.ExecutiveDeadline)
		if !due {
			tally, err := s.votes.Tally(ctx, proposal.ID)
			if err != nil {
				errs = multierr.Append(errs, proposalError(proposal, err))
				continue
			}
			due = tally.AllExecutivesVoted()
		}
		if !due {
			continue
		}

		ok, err := s.proposals.AdvancePhase(ctx, proposal.ID, models.VotingPhaseExecutive, models.VotingPhaseCommunity)
		if err != nil {
			errs = multierr.Append(errs, proposalError(proposal, err))
			continue
		}
		if ok {
			result.PhaseTransitions++
			s.logger.Infow("voting phase advanced", "proposal_id", proposal.ID, "from", models.VotingPhaseExecutive, "to", models.VotingPhaseCommunity)
		}
	}

	return errs
}

func (s *phaseService) finalize(ctx context.Context, result *SweepResult) error {
	proposals, err := s.voting(ctx)
	if err != nil {
		return err
	}

	var errs error
	now := s.clock.Now()
	for _, proposal := range proposals {
		phase := proposal.VotingPhase

		expired := proposal.DeadlinesInitialized() &&
			((phase == models.VotingPhaseCommunity && now.After(proposal.CommunityDeadline)) ||
				(phase == models.VotingPhaseExecutive && now.After(proposal.ExecutiveDeadline)))
		if expired {
			ok, err := s.proposals.AdvancePhase(ctx, proposal.ID, phase, models.VotingPhaseFinalCount)
			if err != nil {
				errs = multierr.Append(errs, proposalError(proposal, err))
				continue
			}
			if ok {
				result.PhaseTransitions++
				s.logger.Infow("voting phase advanced", "proposal_id", proposal.ID, "from", phase, "to", models.VotingPhaseFinalCount)
				phase = models.VotingPhaseFinalCount
			}
		}

		if phase != models.VotingPhaseFinalCount {
			continue
		}

		_, created, err := s.decisions.Finalize(ctx, proposal)
		if created {
			result.Finalized++
		}
		if err != nil {
			errs = multierr.Append(errs, proposalError(proposal, err))
		}
	}

	redispatched, err := s.decisions.Redispatch(ctx)
	result.Redispatched += redispatched

	return multierr.Append(errs, err)
}

func proposalError(proposal *models.Proposal, err error) error {
	return fmt.Errorf("proposal %s: %w", proposal.ID, err)
}
