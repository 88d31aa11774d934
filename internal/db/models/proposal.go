package models

import "time"

type (
	ProposalStatus string
	VotingPhase    string
)

func (p ProposalStatus) String() string {
	return string(p)
}

func (p VotingPhase) String() string {
	return string(p)
}

const (
	ProposalStatusDraft                ProposalStatus = "draft"
	ProposalStatusVoting               ProposalStatus = "voting"
	ProposalStatusApproved             ProposalStatus = "approved"
	ProposalStatusRejected             ProposalStatus = "rejected"
	ProposalStatusRejectedWithFeedback ProposalStatus = "rejected_with_feedback"

	VotingPhaseExecutive  VotingPhase = "executive"
	VotingPhaseCommunity  VotingPhase = "community"
	VotingPhaseFinalCount VotingPhase = "final_count"
	VotingPhaseClosed     VotingPhase = "closed"
)

var phaseOrder = map[VotingPhase]int{
	VotingPhaseExecutive:  0,
	VotingPhaseCommunity:  1,
	VotingPhaseFinalCount: 2,
	VotingPhaseClosed:     3,
}

// Rank orders phases; an unknown phase ranks below executive.
func (p VotingPhase) Rank() int {
	rank, ok := phaseOrder[p]
	if !ok {
		return -1
	}
	return rank
}

// Precedes reports whether moving from p to next is a forward transition.
func (p VotingPhase) Precedes(next VotingPhase) bool {
	return p.Rank() >= 0 && next.Rank() > p.Rank()
}

type Proposal struct {
	ID                string         `json:"id" pg:",pk,type:uuid"`
	Subject           string         `json:"subject" pg:",notnull"`
	Description       string         `json:"description"`
	Rationale         string         `json:"rationale"`
	UseCase           string         `json:"use_case"`
	ProposedBy        string         `json:"proposed_by" pg:",notnull"`
	Status            ProposalStatus `json:"status" pg:",notnull,default:'draft'"`
	VotingPhase       VotingPhase    `json:"voting_phase" pg:",notnull,default:'executive'"`
	VotingStartedAt   time.Time      `json:"voting_started_at"`
	ExecutiveDeadline time.Time      `json:"executive_deadline"`
	CommunityDeadline time.Time      `json:"community_deadline"`
	CreatedAt         time.Time      `json:"created_at" pg:"default:now()"`
	UpdatedAt         time.Time      `json:"updated_at" pg:"default:now()"`
}

func (p *Proposal) IsVoting() bool {
	return p.Status == ProposalStatusVoting
}

func (p *Proposal) DeadlinesInitialized() bool {
	return !p.ExecutiveDeadline.IsZero()
}
