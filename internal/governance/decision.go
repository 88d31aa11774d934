package governance

import (
	"fmt"
	"strings"
)

type Decision string

func (d Decision) String() string {
	return string(d)
}

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

type DecisionMethod string

func (m DecisionMethod) String() string {
	return string(m)
}

const (
	MethodExecutiveConsensus     DecisionMethod = "executive_consensus"
	MethodExecutiveRejection     DecisionMethod = "executive_rejection"
	MethodCommunitySupermajority DecisionMethod = "community_supermajority"
	MethodWeightedScore          DecisionMethod = "weighted_score"
	MethodTieBreaker             DecisionMethod = "tie_breaker"
)

// CommunitySupermajority is the approval share community votes need when no executive voted.
const CommunitySupermajority = 0.60

type Resolution struct {
	Decision  Decision
	Method    DecisionMethod
	Reasoning string
	Tally     Tally
}

// Resolve applies the decision rules in priority order. Strong executive signal
// short-circuits community votes; the weighted score only settles split panels.
func Resolve(ballots []Ballot) Resolution {
	tally := Count(ballots)
	resolution := Resolution{Tally: tally}

	switch {
	case tally.Executive.Approve >= ExecutiveQuorum:
		resolution.Decision = DecisionApproved
		resolution.Method = MethodExecutiveConsensus
		resolution.Reasoning = fmt.Sprintf(
			"Executive consensus: %d of %d executives approved.",
			tally.Executive.Approve, ExecutiveCount(),
		)
	case tally.Executive.Reject >= ExecutiveQuorum:
		resolution.Decision = DecisionRejected
		resolution.Method = MethodExecutiveRejection
		resolution.Reasoning = fmt.Sprintf(
			"Executive rejection: %d of %d executives rejected.",
			tally.Executive.Reject, ExecutiveCount(),
		)
	case tally.Executive.Total() == 0:
		resolution.Method = MethodCommunitySupermajority
		resolution.Decision, resolution.Reasoning = resolveBySupermajority(tally.Community)
	case tally.Weighted.Approve != tally.Weighted.Reject:
		resolution.Method = MethodWeightedScore
		resolution.Decision = DecisionRejected
		if tally.Weighted.Approve > tally.Weighted.Reject {
			resolution.Decision = DecisionApproved
		}
		resolution.Reasoning = fmt.Sprintf(
			"Weighted score: %d approve vs %d reject (executive x%d, community x%d).",
			tally.Weighted.Approve, tally.Weighted.Reject, ExecutiveWeight, CommunityWeight,
		)
	default:
		resolution.Method = MethodTieBreaker
		resolution.Decision = DecisionRejected
		if tally.Community.Approve > tally.Community.Reject {
			resolution.Decision = DecisionApproved
		}
		resolution.Reasoning = fmt.Sprintf(
			"Weighted score tied at %d; community tie-break %d approve vs %d reject.",
			tally.Weighted.Approve, tally.Community.Approve, tally.Community.Reject,
		)
		if tally.Community.Approve == tally.Community.Reject {
			resolution.Reasoning += " Community tie defaults to rejection."
		}
	}

	resolution.Reasoning = strings.Join([]string{resolution.Reasoning, summarize(tally)}, " ")
	return resolution
}

func resolveBySupermajority(community ChoiceCount) (Decision, string) {
	decisive := community.Approve + community.Reject
	if decisive == 0 {
		return DecisionRejected, "No executive or community votes were cast; rejected by default."
	}

	share := float64(community.Approve) / float64(decisive)
	reasoning := fmt.Sprintf(
		"No executive voted; community approval %.0f%% against a %.0f%% supermajority.",
		share*100, CommunitySupermajority*100,
	)
	if share >= CommunitySupermajority {
		return DecisionApproved, reasoning
	}
	return DecisionRejected, reasoning
}

func summarize(tally Tally) string {
	return fmt.Sprintf(
		"Executives: %d approve, %d reject, %d abstain. Community: %d approve, %d reject, %d abstain.",
		tally.Executive.Approve, tally.Executive.Reject, tally.Executive.Abstain,
		tally.Community.Approve, tally.Community.Reject, tally.Community.Abstain,
	)
}
