package models

import (
	"time"

	"proposal_governance_system/internal/governance"
)

type Vote struct {
	ID         string               `json:"id" pg:",pk,type:uuid"`
	ProposalID string               `json:"proposal_id" pg:",notnull,type:uuid"`
	VoterType  governance.VoterType `json:"voter_type" pg:",notnull"`
	VoterID    string               `json:"voter_id" pg:",notnull"`
	Vote       governance.Choice    `json:"vote" pg:",notnull"`
	Reasoning  string               `json:"reasoning"`
	CastAt     time.Time            `json:"cast_at" pg:",notnull"`
	UpdatedAt  time.Time            `json:"updated_at" pg:",notnull"`
}

func NewVote(proposalID string, voter governance.Voter, choice governance.Choice, reasoning string, castAt time.Time) *Vote {
	return &Vote{
		ProposalID: proposalID,
		VoterType:  voter.Type(),
		VoterID:    voter.Key(),
		Vote:       choice,
		Reasoning:  reasoning,
		CastAt:     castAt,
		UpdatedAt:  castAt,
	}
}

func (v *Vote) Voter() (governance.Voter, error) {
	return governance.ParseVoter(v.VoterType.String(), v.VoterID)
}

// Ballots converts ledger rows for the decision engine. Rows with an unparseable voter
// are skipped and returned separately.
func Ballots(votes []*Vote) ([]governance.Ballot, []*Vote) {
	ballots := make([]governance.Ballot, 0, len(votes))
	var invalid []*Vote

	for _, vote := range votes {
		voter, err := vote.Voter()
		if err != nil || !vote.Vote.Valid() {
			invalid = append(invalid, vote)
			continue
		}
		ballots = append(ballots, governance.Ballot{
			Voter:     voter,
			Choice:    vote.Vote,
			Reasoning: vote.Reasoning,
		})
	}

	return ballots, invalid
}
