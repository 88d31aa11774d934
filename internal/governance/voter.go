package governance

import (
	"fmt"
	"strings"
)

type VoterType string

func (t VoterType) String() string {
	return string(t)
}

const (
	VoterTypeExecutive VoterType = "executive"
	VoterTypeCommunity VoterType = "community"
)

const (
	ExecutiveWeight = 10
	CommunityWeight = 1
)

// Voter is either an Executive or a Community ballot. The set is closed: only this
// package can add variants.
type Voter interface {
	Type() VoterType
	// Key is the identity half of the (proposal_id, voter) uniqueness key.
	Key() string
	Weight() int
	isVoter()
}

type Executive struct {
	ID ExecutiveID
}

func (Executive) Type() VoterType {
	return VoterTypeExecutive
}

func (e Executive) Key() string {
	return e.ID.String()
}

func (Executive) Weight() int {
	return ExecutiveWeight
}

func (Executive) isVoter() {}

type Community struct {
	SessionKey string
}

func (Community) Type() VoterType {
	return VoterTypeCommunity
}

func (c Community) Key() string {
	return c.SessionKey
}

func (Community) Weight() int {
	return CommunityWeight
}

func (Community) isVoter() {}

// ParseVoter builds a voter from its persisted or wire form. For community voters the
// id is the session key.
func ParseVoter(voterType, id string) (Voter, error) {
	switch VoterType(strings.ToLower(strings.TrimSpace(voterType))) {
	case VoterTypeExecutive:
		executiveID, err := ParseExecutiveID(id)
		if err != nil {
			return nil, fmt.Errorf("unknown executive %q: %w", id, err)
		}
		return Executive{ID: executiveID}, nil
	case VoterTypeCommunity:
		sessionKey := strings.TrimSpace(id)
		if sessionKey == "" {
			return nil, ErrMissingSessionKey
		}
		return Community{SessionKey: sessionKey}, nil
	default:
		return nil, fmt.Errorf("unknown voter type %q: %w", voterType, ErrInvalidVoter)
	}
}

// ValidateVoter checks a voter that was constructed directly rather than parsed.
func ValidateVoter(voter Voter) error {
	switch v := voter.(type) {
	case Executive:
		if _, ok := Profile(v.ID); !ok {
			return fmt.Errorf("unknown executive %q: %w", v.ID, ErrInvalidVoter)
		}
		return nil
	case Community:
		if strings.TrimSpace(v.SessionKey) == "" {
			return ErrMissingSessionKey
		}
		return nil
	default:
		return ErrInvalidVoter
	}
}
