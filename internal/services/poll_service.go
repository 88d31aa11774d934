package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/db/repositories"
	"proposal_governance_system/internal/governance"
	"proposal_governance_system/internal/reasoning"

	"go.uber.org/zap"
)

type PolledVote struct {
	Executive governance.ExecutiveID `json:"executive"`
	Vote      governance.Choice      `json:"vote"`
	Reasoning string                 `json:"reasoning"`
	Coerced   bool                   `json:"coerced,omitempty"`
}

type PollResult struct {
	VotesCollected   int                   `json:"votes_collected"`
	Votes            []PolledVote          `json:"votes"`
	Errors           []string              `json:"errors"`
	FinalStatus      models.ProposalStatus `json:"final_status"`
	ConsensusReached bool                  `json:"consensus_reached"`
}

type PollOptions struct {
	Delay      time.Duration
	Timeout    time.Duration
	Abstention governance.AbstentionPolicy
	Coercion   governance.CoercionPolicy
	Reasoning  reasoning.Options
}

type pollService struct {
	proposals repositories.ProposalRepository
	votes     VoteService
	client    reasoning.Client
	options   PollOptions
	logger    *zap.SugaredLogger
}

type PollService interface {
	// Poll asks the given executives, or every executive that has not voted yet,
	// for a vote and records the answers until the panel reaches consensus.
	Poll(ctx context.Context, proposalID string, targets []string) (PollResult, error)
}

func NewPollService(
	proposals repositories.ProposalRepository,
	votes VoteService,
	client reasoning.Client,
	options PollOptions,
	logger *zap.SugaredLogger,
) PollService {
	if options.Abstention == nil {
		options.Abstention = governance.DefaultAbstentionPolicy
	}
	if options.Coercion == nil {
		options.Coercion = governance.DefaultCoercionPolicy
	}

	return &pollService{
		proposals: proposals,
		votes:     votes,
		client:    client,
		options:   options,
		logger:    logger,
	}
}

func (s *pollService) Poll(ctx context.Context, proposalID string, targets []string) (PollResult, error) {
	proposal, err := s.proposals.GetOne(ctx, proposalID)
	if err != nil {
		return PollResult{}, err
	}
	if !proposal.IsVoting() {
		return PollResult{}, governance.ErrProposalNotVoting
	}

	tally, err := s.votes.Tally(ctx, proposal.ID)
	if err != nil {
		return PollResult{}, err
	}

	executives, err := s.targets(tally, targets)
	if err != nil {
		return PollResult{}, err
	}

	result := PollResult{
		Votes:            []PolledVote{},
		Errors:           []string{},
		FinalStatus:      proposal.Status,
		ConsensusReached: tally.ConsensusReached(),
	}
	if result.ConsensusReached {
		return result, nil
	}

	closed := false
	for i, id := range executives {
		if i > 0 {
			if err := reasoning.SleepWithContext(ctx, s.options.Delay); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", id, err))
				break
			}
		}

		vote, err := s.evaluate(ctx, id, proposal)
		if err != nil {
			s.logger.Errorw("failed to get executive evaluation", "error", err, "proposal_id", proposal.ID, "executive", id)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", id, err))
			continue
		}

		recorded, err := s.votes.Submit(ctx, VoteSubmission{
			ProposalID: proposal.ID,
			Voter:      governance.Executive{ID: id},
			Choice:     vote.Vote,
			Reasoning:  vote.Reasoning,
		})
		if errors.Is(err, governance.ErrStateConflict) {
			closed = true
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", id, err))
			break
		} else if err != nil {
			s.logger.Errorw("failed to record executive vote", "error", err, "proposal_id", proposal.ID, "executive", id)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", id, err))
			continue
		}

		result.Votes = append(result.Votes, vote)
		result.VotesCollected++
		result.FinalStatus = recorded.Status
		result.ConsensusReached = recorded.ConsensusReached

		if recorded.ConsensusReached {
			break
		}
	}

	if closed {
		if current, err := s.proposals.GetOne(ctx, proposal.ID); err == nil {
			result.FinalStatus = current.Status
		}
	}

	return result, nil
}

func (s *pollService) targets(tally governance.Tally, requested []string) ([]governance.ExecutiveID, error) {
	if len(requested) == 0 {
		return tally.Outstanding, nil
	}

	seen := make(map[governance.ExecutiveID]bool, len(requested))
	targets := make([]governance.ExecutiveID, 0, len(requested))
	for _, value := range requested {
		id, err := governance.ParseExecutiveID(value)
		if err != nil {
			return nil, fmt.Errorf("unknown executive %q: %w", value, err)
		}
		if seen[id] || tally.HasExecutiveVoted(id) {
			continue
		}
		seen[id] = true
		targets = append(targets, id)
	}

	return targets, nil
}

func (s *pollService) evaluate(ctx context.Context, id governance.ExecutiveID, proposal *models.Proposal) (PolledVote, error) {
	profile, ok := governance.Profile(id)
	if !ok {
		return PolledVote{}, governance.ErrInvalidVoter
	}

	callCtx := ctx
	if s.options.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.options.Timeout)
		defer cancel()
	}

	reply, err := s.client.Respond(callCtx, evaluationPrompt(profile, proposal), s.options.Reasoning)
	if err != nil {
		if !errors.Is(err, governance.ErrProvider) {
			err = fmt.Errorf("%w: %w", governance.ErrProvider, err)
		}
		return PolledVote{}, err
	}

	choice, text, ok := parseEvaluation(reply)
	if !ok {
		s.logger.Warnw("could not read executive evaluation", "proposal_id", proposal.ID, "executive", id)
		return PolledVote{Executive: id, Vote: governance.ChoiceReject, Reasoning: automatedAnalysisFailed}, nil
	}

	vote := PolledVote{Executive: id, Vote: choice, Reasoning: text}
	if choice == governance.ChoiceAbstain && !s.options.Abstention(text) {
		vote.Vote = s.options.Coercion(text)
		vote.Coerced = true
		s.logger.Infow("coerced unjustified abstention", "proposal_id", proposal.ID, "executive", id, "vote", vote.Vote)
	}

	return vote, nil
}
