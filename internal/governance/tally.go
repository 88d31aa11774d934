package governance

// ExecutiveQuorum is the same-direction executive count that decides a proposal outright.
const ExecutiveQuorum = 3

// Ballot is one validated ledger entry as the decision engine sees it.
type Ballot struct {
	Voter     Voter
	Choice    Choice
	Reasoning string
}

type ChoiceCount struct {
	Approve int `json:"approve"`
	Reject  int `json:"reject"`
	Abstain int `json:"abstain"`
}

func (c ChoiceCount) Total() int {
	return c.Approve + c.Reject + c.Abstain
}

func (c *ChoiceCount) add(choice Choice) {
	switch choice {
	case ChoiceApprove:
		c.Approve++
	case ChoiceReject:
		c.Reject++
	case ChoiceAbstain:
		c.Abstain++
	}
}

type WeightedScore struct {
	Approve int `json:"approve"`
	Reject  int `json:"reject"`
}

type Tally struct {
	Executive   ChoiceCount   `json:"executive"`
	Community   ChoiceCount   `json:"community"`
	Weighted    WeightedScore `json:"weighted"`
	Voted       []ExecutiveID `json:"executives_voted"`
	Outstanding []ExecutiveID `json:"executives_outstanding"`
}

func Count(ballots []Ballot) Tally {
	var tally Tally
	voted := make(map[ExecutiveID]bool)

	for _, ballot := range ballots {
		switch v := ballot.Voter.(type) {
		case Executive:
			if voted[v.ID] {
				continue
			}
			voted[v.ID] = true
			tally.Executive.add(ballot.Choice)
		case Community:
			tally.Community.add(ballot.Choice)
		}
	}

	for _, id := range ExecutiveIDs() {
		if voted[id] {
			tally.Voted = append(tally.Voted, id)
		} else {
			tally.Outstanding = append(tally.Outstanding, id)
		}
	}

	tally.Weighted = WeightedScore{
		Approve: ExecutiveWeight*tally.Executive.Approve + CommunityWeight*tally.Community.Approve,
		Reject:  ExecutiveWeight*tally.Executive.Reject + CommunityWeight*tally.Community.Reject,
	}

	return tally
}

// ConsensusReached reports whether the executive vote alone already settles the outcome.
func (t Tally) ConsensusReached() bool {
	return t.Executive.Approve >= ExecutiveQuorum || t.Executive.Reject >= ExecutiveQuorum
}

func (t Tally) AllExecutivesVoted() bool {
	return len(t.Outstanding) == 0
}

func (t Tally) HasExecutiveVoted(id ExecutiveID) bool {
	for _, voted := range t.Voted {
		if voted == id {
			return true
		}
	}
	return false
}
