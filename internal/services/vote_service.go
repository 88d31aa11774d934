package services

import (
	"context"

	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/db/repositories"
	"proposal_governance_system/internal/governance"

	"go.uber.org/zap"
)

type VoteSubmission struct {
	ProposalID string
	Voter      governance.Voter
	Choice     governance.Choice
	Reasoning  string
}

type ExecutiveSummary struct {
	Approve     int                      `json:"approve"`
	Reject      int                      `json:"reject"`
	Abstain     int                      `json:"abstain"`
	Voted       int                      `json:"voted"`
	Outstanding []governance.ExecutiveID `json:"outstanding"`
}

type VoteSummary struct {
	Executive ExecutiveSummary         `json:"executive"`
	Community governance.ChoiceCount   `json:"community"`
	Weighted  governance.WeightedScore `json:"weighted"`
}

func NewVoteSummary(tally governance.Tally) VoteSummary {
	outstanding := tally.Outstanding
	if outstanding == nil {
		outstanding = []governance.ExecutiveID{}
	}

	return VoteSummary{
		Executive: ExecutiveSummary{
			Approve:     tally.Executive.Approve,
			Reject:      tally.Executive.Reject,
			Abstain:     tally.Executive.Abstain,
			Voted:       len(tally.Voted),
			Outstanding: outstanding,
		},
		Community: tally.Community,
		Weighted:  tally.Weighted,
	}
}

type VoteResult struct {
	VoteRecorded     bool                  `json:"vote_recorded"`
	ConsensusReached bool                  `json:"consensus_reached"`
	Status           models.ProposalStatus `json:"status"`
	Summary          VoteSummary           `json:"vote_summary"`
}

type voteService struct {
	proposals repositories.ProposalRepository
	votes     repositories.VoteRepository
	clock     governance.Clock
	policy    governance.AbstentionPolicy
	logger    *zap.SugaredLogger
}

type VoteService interface {
	// Submit validates and records a ballot, replacing the voter's previous one.
	Submit(ctx context.Context, submission VoteSubmission) (VoteResult, error)
	Tally(ctx context.Context, proposalID string) (governance.Tally, error)
	Summary(ctx context.Context, proposalID string) (VoteSummary, error)
}

func NewVoteService(
	proposals repositories.ProposalRepository,
	votes repositories.VoteRepository,
	clock governance.Clock,
	policy governance.AbstentionPolicy,
	logger *zap.SugaredLogger,
) VoteService {
	if policy == nil {
		policy = governance.DefaultAbstentionPolicy
	}

	return &voteService{
		proposals: proposals,
		votes:     votes,
		clock:     clock,
		policy:    policy,
		logger:    logger,
	}
}

func (s *voteService) Submit(ctx context.Context, submission VoteSubmission) (VoteResult, error) {
	if err := governance.ValidateBallot(submission.Voter, submission.Choice, submission.Reasoning, s.policy); err != nil {
		return VoteResult{}, err
	}

	proposal, err := s.proposals.GetOne(ctx, submission.ProposalID)
	if err != nil {
		return VoteResult{}, err
	}
	if !proposal.IsVoting() {
		return VoteResult{}, governance.ErrProposalNotVoting
	}

	vote := models.NewVote(proposal.ID, submission.Voter, submission.Choice, submission.Reasoning, s.clock.Now())
	if _, err := s.votes.Upsert(ctx, vote); err != nil {
		s.logger.Errorw("failed to record vote", "error", err, "proposal_id", proposal.ID, "voter", submission.Voter.Key())
		return VoteResult{}, err
	}

	tally, err := s.Tally(ctx, proposal.ID)
	if err != nil {
		return VoteResult{}, err
	}

	return VoteResult{
		VoteRecorded:     true,
		ConsensusReached: tally.ConsensusReached(),
		Status:           proposal.Status,
		Summary:          NewVoteSummary(tally),
	}, nil
}

func (s *voteService) Tally(ctx context.Context, proposalID string) (governance.Tally, error) {
	votes, err := s.votes.GetManyByProposal(ctx, proposalID)
	if err != nil {
		return governance.Tally{}, err
	}

	ballots, invalid := models.Ballots(votes)
	for _, vote := range invalid {
		s.logger.Warnw("skipping unreadable vote", "proposal_id", proposalID, "vote_id", vote.ID)
	}

	return governance.Count(ballots), nil
}

func (s *voteService) Summary(ctx context.Context, proposalID string) (VoteSummary, error) {
	if _, err := s.proposals.GetOne(ctx, proposalID); err != nil {
		return VoteSummary{}, err
	}

	tally, err := s.Tally(ctx, proposalID)
	if err != nil {
		return VoteSummary{}, err
	}

	return NewVoteSummary(tally), nil
}
