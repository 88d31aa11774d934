package services

import (
	"context"
	"errors"
	"testing"

	"proposal_governance_system/internal/db/models"
	mock_repositories "proposal_governance_system/internal/db/repositories/mocks"
	"proposal_governance_system/internal/governance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestVoteService_SubmitRecordsAndTallies(t *testing.T) {
	h := newHarness(t)
	proposal := h.proposal(t)

	h.vote(t, proposal.ID, executive(governance.ExecutiveCTO), governance.ChoiceApprove, "Sound design.")
	result := h.vote(t, proposal.ID, community("telegram:1"), governance.ChoiceReject, "Too broad.")

	assert.True(t, result.VoteRecorded)
	assert.False(t, result.ConsensusReached)
	assert.Equal(t, models.ProposalStatusVoting, result.Status)
	assert.Equal(t, 1, result.Summary.Executive.Approve)
	assert.Equal(t, 1, result.Summary.Executive.Voted)
	assert.Len(t, result.Summary.Executive.Outstanding, 4)
	assert.Equal(t, 1, result.Summary.Community.Reject)
	assert.Equal(t, governance.WeightedScore{Approve: 10, Reject: 1}, result.Summary.Weighted)
}

func TestVoteService_SubmitSameVoterKeepsLatest(t *testing.T) {
	h := newHarness(t)
	proposal := h.proposal(t)

	h.vote(t, proposal.ID, community("telegram:7"), governance.ChoiceApprove, "")
	result := h.vote(t, proposal.ID, community("telegram:7"), governance.ChoiceReject, "Changed my mind.")

	assert.Equal(t, governance.ChoiceCount{Reject: 1}, result.Summary.Community)

	votes, err := h.store.Votes().GetManyByProposal(context.Background(), proposal.ID)
	require.NoError(t, err)
	assert.Len(t, votes, 1)
}

func TestVoteService_SubmitConsensusReached(t *testing.T) {
	h := newHarness(t)
	proposal := h.proposal(t)

	h.vote(t, proposal.ID, executive(governance.ExecutiveCSO), governance.ChoiceReject, "Off strategy.")
	h.vote(t, proposal.ID, executive(governance.ExecutiveCTO), governance.ChoiceReject, "Security risk.")
	result := h.vote(t, proposal.ID, executive(governance.ExecutiveCOO), governance.ChoiceReject, "No support capacity.")

	assert.True(t, result.ConsensusReached)
}

func TestVoteService_SubmitRejectsNakedAbstention(t *testing.T) {
	h := newHarness(t)
	proposal := h.proposal(t)

	_, err := h.votes.Submit(context.Background(), VoteSubmission{
		ProposalID: proposal.ID,
		Voter:      executive(governance.ExecutiveCIO),
		Choice:     governance.ChoiceAbstain,
		Reasoning:  "I would rather not say.",
	})
	assert.ErrorIs(t, err, governance.ErrInvalidAbstention)
	assert.ErrorIs(t, err, governance.ErrValidation)

	votes, err := h.store.Votes().GetManyByProposal(context.Background(), proposal.ID)
	require.NoError(t, err)
	assert.Empty(t, votes)
}

func TestVoteService_SubmitJustifiedAbstention(t *testing.T) {
	h := newHarness(t)
	proposal := h.proposal(t)

	result := h.vote(t, proposal.ID, executive(governance.ExecutiveCAO), governance.ChoiceAbstain, "I have a conflict of interest with the vendor.")

	assert.Equal(t, 1, result.Summary.Executive.Abstain)
	assert.Equal(t, governance.WeightedScore{}, result.Summary.Weighted)
}

func TestVoteService_SubmitValidationErrors(t *testing.T) {
	h := newHarness(t)
	proposal := h.proposal(t)

	tests := []struct {
		name   string
		voter  governance.Voter
		choice governance.Choice
		want   error
	}{
		{"unknown executive", executive("ceo"), governance.ChoiceApprove, governance.ErrInvalidVoter},
		{"missing voter", nil, governance.ChoiceApprove, governance.ErrInvalidVoter},
		{"missing session key", community(" "), governance.ChoiceApprove, governance.ErrMissingSessionKey},
		{"unknown choice", community("telegram:1"), governance.Choice("maybe"), governance.ErrInvalidVote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.votes.Submit(context.Background(), VoteSubmission{
				ProposalID: proposal.ID,
				Voter:      tt.voter,
				Choice:     tt.choice,
			})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVoteService_SubmitUnknownProposal(t *testing.T) {
	h := newHarness(t)

	_, err := h.votes.Submit(context.Background(), VoteSubmission{
		ProposalID: "a5d1e0c4-3b8e-4c6f-9a3e-1f2b3c4d5e6f",
		Voter:      community("telegram:1"),
		Choice:     governance.ChoiceApprove,
	})
	assert.ErrorIs(t, err, governance.ErrNotFound)
}

func TestVoteService_SubmitClosedProposal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proposalRepo := mock_repositories.NewMockProposalRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)

	proposalRepo.EXPECT().GetOne(gomock.Any(), "p1").Return(&models.Proposal{
		ID:          "p1",
		Status:      models.ProposalStatusApproved,
		VotingPhase: models.VotingPhaseClosed,
	}, nil)

	service := NewVoteService(proposalRepo, voteRepo, governance.SystemClock{}, nil, zap.NewNop().Sugar())

	_, err := service.Submit(context.Background(), VoteSubmission{
		ProposalID: "p1",
		Voter:      community("telegram:1"),
		Choice:     governance.ChoiceApprove,
	})
	assert.ErrorIs(t, err, governance.ErrStateConflict)
}

func TestVoteService_SubmitPersistenceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proposalRepo := mock_repositories.NewMockProposalRepository(ctrl)
	voteRepo := mock_repositories.NewMockVoteRepository(ctrl)

	proposalRepo.EXPECT().GetOne(gomock.Any(), "p1").Return(&models.Proposal{ID: "p1", Status: models.ProposalStatusVoting}, nil)
	voteRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, governance.Persistence("upsert vote", errors.New("connection reset")))

	service := NewVoteService(proposalRepo, voteRepo, governance.SystemClock{}, nil, zap.NewNop().Sugar())

	_, err := service.Submit(context.Background(), VoteSubmission{
		ProposalID: "p1",
		Voter:      executive(governance.ExecutiveCTO),
		Choice:     governance.ChoiceApprove,
	})
	assert.ErrorIs(t, err, governance.ErrPersistence)
}

func TestVoteService_SummaryUnknownProposal(t *testing.T) {
	h := newHarness(t)

	_, err := h.votes.Summary(context.Background(), "missing")
	assert.ErrorIs(t, err, governance.ErrNotFound)
}
