package governance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func executiveBallots(choices ...Choice) []Ballot {
	ids := ExecutiveIDs()
	ballots := make([]Ballot, 0, len(choices))
	for i, choice := range choices {
		ballots = append(ballots, Ballot{Voter: Executive{ID: ids[i]}, Choice: choice})
	}
	return ballots
}

func communityBallots(approve, reject int) []Ballot {
	var ballots []Ballot
	for i := 0; i < approve; i++ {
		ballots = append(ballots, Ballot{Voter: Community{SessionKey: fmt.Sprintf("approve-%d", i)}, Choice: ChoiceApprove})
	}
	for i := 0; i < reject; i++ {
		ballots = append(ballots, Ballot{Voter: Community{SessionKey: fmt.Sprintf("reject-%d", i)}, Choice: ChoiceReject})
	}
	return ballots
}

func TestResolve_ExecutiveConsensusIgnoresCommunity(t *testing.T) {
	ballots := executiveBallots(ChoiceApprove, ChoiceApprove, ChoiceApprove, ChoiceReject, ChoiceAbstain)
	ballots = append(ballots, communityBallots(0, 40)...)

	resolution := Resolve(ballots)

	assert.Equal(t, DecisionApproved, resolution.Decision)
	assert.Equal(t, MethodExecutiveConsensus, resolution.Method)
	assert.Contains(t, resolution.Reasoning, "3 of 5 executives approved")
}

func TestResolve_ExecutiveRejection(t *testing.T) {
	ballots := executiveBallots(ChoiceReject, ChoiceReject, ChoiceReject)
	ballots = append(ballots, communityBallots(25, 0)...)

	resolution := Resolve(ballots)

	assert.Equal(t, DecisionRejected, resolution.Decision)
	assert.Equal(t, MethodExecutiveRejection, resolution.Method)
}

func TestResolve_CommunitySupermajorityApproved(t *testing.T) {
	resolution := Resolve(communityBallots(7, 3))

	assert.Equal(t, DecisionApproved, resolution.Decision)
	assert.Equal(t, MethodCommunitySupermajority, resolution.Method)
}

func TestResolve_CommunitySupermajorityExactThreshold(t *testing.T) {
	resolution := Resolve(communityBallots(3, 2))

	assert.Equal(t, DecisionApproved, resolution.Decision)
	assert.Equal(t, MethodCommunitySupermajority, resolution.Method)
}

func TestResolve_CommunitySupermajorityBelowThreshold(t *testing.T) {
	resolution := Resolve(communityBallots(5, 4))

	assert.Equal(t, DecisionRejected, resolution.Decision)
	assert.Equal(t, MethodCommunitySupermajority, resolution.Method)
}

func TestResolve_NoVotesRejectedByDefault(t *testing.T) {
	resolution := Resolve(nil)

	assert.Equal(t, DecisionRejected, resolution.Decision)
	assert.Equal(t, MethodCommunitySupermajority, resolution.Method)
}

func TestResolve_OnlyCommunityAbstentions(t *testing.T) {
	ballots := []Ballot{
		{Voter: Community{SessionKey: "a"}, Choice: ChoiceAbstain},
		{Voter: Community{SessionKey: "b"}, Choice: ChoiceAbstain},
	}

	resolution := Resolve(ballots)

	assert.Equal(t, DecisionRejected, resolution.Decision)
	assert.Equal(t, MethodCommunitySupermajority, resolution.Method)
}

func TestResolve_CoercedAbstentionCompletesExecutiveRejection(t *testing.T) {
	// approve, approve, reject, reject and an unjustified abstention coerced to reject.
	ballots := executiveBallots(ChoiceApprove, ChoiceApprove, ChoiceReject, ChoiceReject, ChoiceReject)
	ballots = append(ballots, communityBallots(4, 1)...)

	resolution := Resolve(ballots)

	assert.Equal(t, DecisionRejected, resolution.Decision)
	assert.Equal(t, MethodExecutiveRejection, resolution.Method)
	assert.Equal(t, 24, resolution.Tally.Weighted.Approve)
	assert.Equal(t, 31, resolution.Tally.Weighted.Reject)
}

func TestResolve_WeightedScoreSplitPanel(t *testing.T) {
	ballots := executiveBallots(ChoiceApprove, ChoiceApprove, ChoiceReject, ChoiceReject)
	ballots = append(ballots, communityBallots(4, 1)...)

	resolution := Resolve(ballots)

	assert.Equal(t, DecisionApproved, resolution.Decision)
	assert.Equal(t, MethodWeightedScore, resolution.Method)
	assert.Equal(t, 24, resolution.Tally.Weighted.Approve)
	assert.Equal(t, 21, resolution.Tally.Weighted.Reject)
}

func TestResolve_WeightedScoreAbstentionsCarryNoWeight(t *testing.T) {
	ballots := executiveBallots(ChoiceApprove, ChoiceReject, ChoiceAbstain, ChoiceAbstain)
	ballots = append(ballots, communityBallots(1, 3)...)

	resolution := Resolve(ballots)

	assert.Equal(t, DecisionRejected, resolution.Decision)
	assert.Equal(t, MethodWeightedScore, resolution.Method)
	assert.Equal(t, 11, resolution.Tally.Weighted.Approve)
	assert.Equal(t, 13, resolution.Tally.Weighted.Reject)
}

func TestResolve_TieBreakerCommunityTieRejects(t *testing.T) {
	ballots := executiveBallots(ChoiceApprove, ChoiceReject, ChoiceAbstain, ChoiceAbstain, ChoiceAbstain)
	ballots = append(ballots, communityBallots(2, 2)...)

	resolution := Resolve(ballots)

	assert.Equal(t, DecisionRejected, resolution.Decision)
	assert.Equal(t, MethodTieBreaker, resolution.Method)
	assert.Equal(t, 12, resolution.Tally.Weighted.Approve)
	assert.Equal(t, 12, resolution.Tally.Weighted.Reject)
	assert.Contains(t, resolution.Reasoning, "Community tie defaults to rejection.")
}

func TestResolve_TieBreakerOnlyAbstainingExecutives(t *testing.T) {
	ballots := executiveBallots(ChoiceAbstain)

	resolution := Resolve(ballots)

	assert.Equal(t, DecisionRejected, resolution.Decision)
	assert.Equal(t, MethodTieBreaker, resolution.Method)
}

func TestResolve_WeightedScoreCommunityOutweighsSplitPanel(t *testing.T) {
	ballots := executiveBallots(ChoiceApprove, ChoiceApprove, ChoiceReject, ChoiceReject)
	ballots = append(ballots, communityBallots(4, 15)...)

	resolution := Resolve(ballots)

	assert.Equal(t, DecisionRejected, resolution.Decision)
	assert.Equal(t, MethodWeightedScore, resolution.Method)
	assert.Equal(t, 24, resolution.Tally.Weighted.Approve)
	assert.Equal(t, 35, resolution.Tally.Weighted.Reject)
}

func TestCount_DuplicateExecutiveCountedOnce(t *testing.T) {
	ballots := []Ballot{
		{Voter: Executive{ID: ExecutiveCTO}, Choice: ChoiceApprove},
		{Voter: Executive{ID: ExecutiveCTO}, Choice: ChoiceReject},
	}

	tally := Count(ballots)

	assert.Equal(t, 1, tally.Executive.Total())
	assert.Equal(t, []ExecutiveID{ExecutiveCTO}, tally.Voted)
	assert.Len(t, tally.Outstanding, 4)
}

func TestTally_ConsensusReached(t *testing.T) {
	assert.True(t, Count(executiveBallots(ChoiceReject, ChoiceReject, ChoiceReject)).ConsensusReached())
	assert.False(t, Count(executiveBallots(ChoiceReject, ChoiceReject, ChoiceApprove, ChoiceApprove)).ConsensusReached())
}
