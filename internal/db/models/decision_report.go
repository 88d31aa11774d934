package models

import (
	"time"

	"proposal_governance_system/internal/governance"
)

// VoteSnapshot freezes one ballot as it was counted.
type VoteSnapshot struct {
	VoterType governance.VoterType `json:"voter_type"`
	VoterID   string               `json:"voter_id"`
	Vote      governance.Choice    `json:"vote"`
	Weight    int                  `json:"weight"`
	Reasoning string               `json:"reasoning,omitempty"`
	CastAt    time.Time            `json:"cast_at"`
}

type DecisionReport struct {
	ID             string                    `json:"id" pg:",pk,type:uuid"`
	ProposalID     string                    `json:"proposal_id" pg:",notnull,unique,type:uuid"`
	Decision       governance.Decision       `json:"decision" pg:",notnull"`
	DecisionMethod governance.DecisionMethod `json:"decision_method" pg:",notnull"`
	Reasoning      string                    `json:"reasoning" pg:",notnull"`
	ApproveScore   int                       `json:"approve_score" pg:",use_zero,notnull"`
	RejectScore    int                       `json:"reject_score" pg:",use_zero,notnull"`
	Votes          []VoteSnapshot            `json:"votes" pg:",type:jsonb"`
	CreatedAt      time.Time                 `json:"created_at" pg:",notnull"`
	DispatchedAt   time.Time                 `json:"dispatched_at"`
}

// Status is the proposal status that goes with this decision.
func (r *DecisionReport) Status() ProposalStatus {
	if r.Decision == governance.DecisionApproved {
		return ProposalStatusApproved
	}
	return ProposalStatusRejected
}

func (r *DecisionReport) Dispatched() bool {
	return !r.DispatchedAt.IsZero()
}

func Snapshot(votes []*Vote) []VoteSnapshot {
	snapshot := make([]VoteSnapshot, 0, len(votes))
	for _, vote := range votes {
		weight := governance.CommunityWeight
		if vote.VoterType == governance.VoterTypeExecutive {
			weight = governance.ExecutiveWeight
		}
		if vote.Vote == governance.ChoiceAbstain {
			weight = 0
		}
		snapshot = append(snapshot, VoteSnapshot{
			VoterType: vote.VoterType,
			VoterID:   vote.VoterID,
			Vote:      vote.Vote,
			Weight:    weight,
			Reasoning: vote.Reasoning,
			CastAt:    vote.CastAt,
		})
	}
	return snapshot
}
