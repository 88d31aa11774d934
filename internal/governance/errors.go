package governance

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrStateConflict = errors.New("state conflict")
	ErrProvider      = errors.New("reasoning provider error")
	ErrPersistence   = errors.New("persistence error")

	ErrInvalidVoter       = fmt.Errorf("%w: invalid voter", ErrValidation)
	ErrInvalidVote        = fmt.Errorf("%w: vote must be approve, reject or abstain", ErrValidation)
	ErrMissingSessionKey  = fmt.Errorf("%w: community votes require a session key", ErrValidation)
	ErrInvalidAbstention  = fmt.Errorf("%w: abstention requires a conflict of interest, insufficient information or outside expertise justification", ErrValidation)
	ErrProposalNotFound   = fmt.Errorf("proposal %w", ErrNotFound)
	ErrDecisionNotFound   = fmt.Errorf("decision report %w", ErrNotFound)
	ErrProposalNotVoting  = fmt.Errorf("%w: proposal is not open for voting", ErrStateConflict)
	ErrPhaseRegression    = fmt.Errorf("%w: voting phase can only move forward", ErrStateConflict)
	ErrUnknownSweepPass   = fmt.Errorf("%w: unknown sweep pass", ErrValidation)
	ErrNoReasoningOutcome = fmt.Errorf("%w: empty reply", ErrProvider)
)

// Persistence wraps a store failure so callers can tell it is safe to retry.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}
