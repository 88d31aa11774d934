package governance

import "strings"

type Choice string

func (c Choice) String() string {
	return string(c)
}

const (
	ChoiceApprove Choice = "approve"
	ChoiceReject  Choice = "reject"
	ChoiceAbstain Choice = "abstain"
)

func ParseChoice(value string) (Choice, error) {
	choice := Choice(strings.ToLower(strings.TrimSpace(value)))
	if !choice.Valid() {
		return "", ErrInvalidVote
	}
	return choice, nil
}

func (c Choice) Valid() bool {
	switch c {
	case ChoiceApprove, ChoiceReject, ChoiceAbstain:
		return true
	}
	return false
}

// ValidateBallot applies the ledger rules to a vote before it may be stored.
func ValidateBallot(voter Voter, choice Choice, reasoning string, policy AbstentionPolicy) error {
	if voter == nil {
		return ErrInvalidVoter
	}
	if err := ValidateVoter(voter); err != nil {
		return err
	}
	if !choice.Valid() {
		return ErrInvalidVote
	}
	if choice == ChoiceAbstain {
		if policy == nil {
			policy = DefaultAbstentionPolicy
		}
		if !policy(reasoning) {
			return ErrInvalidAbstention
		}
	}
	return nil
}
