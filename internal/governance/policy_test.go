package governance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyJustification_CanonicalClasses(t *testing.T) {
	class, ok := ClassifyJustification("I have a Conflict of Interest with the vendor.")
	assert.True(t, ok)
	assert.Equal(t, JustificationConflictOfInterest, class)

	class, ok = ClassifyJustification("There is insufficient information about the rollout.")
	assert.True(t, ok)
	assert.Equal(t, JustificationInsufficientInformation, class)

	class, ok = ClassifyJustification("Smart contract auditing is outside my expertise.")
	assert.True(t, ok)
	assert.Equal(t, JustificationOutsideExpertise, class)
}

func TestDefaultAbstentionPolicy_RejectsNakedAbstention(t *testing.T) {
	assert.False(t, DefaultAbstentionPolicy("need more time"))
	assert.False(t, DefaultAbstentionPolicy(""))
}

func TestDefaultCoercionPolicy_ApprovalLanguageWins(t *testing.T) {
	assert.Equal(t, ChoiceApprove, DefaultCoercionPolicy("This looks beneficial and I would support it."))
}

func TestDefaultCoercionPolicy_AmbiguityRejects(t *testing.T) {
	assert.Equal(t, ChoiceReject, DefaultCoercionPolicy("need more time"))
	assert.Equal(t, ChoiceReject, DefaultCoercionPolicy("It is valuable but the risk is a concern."))
	assert.Equal(t, ChoiceReject, DefaultCoercionPolicy(""))
}

func TestDefaultCoercionPolicy_NegatedApprovalIsNotApproval(t *testing.T) {
	assert.Equal(t, ChoiceReject, DefaultCoercionPolicy("I do not support this."))
	assert.Equal(t, ChoiceReject, DefaultCoercionPolicy("I disapprove."))
}

func TestValidateBallot_AbstentionNeedsJustification(t *testing.T) {
	voter := Executive{ID: ExecutiveCTO}

	assert.ErrorIs(t, ValidateBallot(voter, ChoiceAbstain, "need more time", nil), ErrInvalidAbstention)
	assert.NoError(t, ValidateBallot(voter, ChoiceAbstain, "insufficient information", nil))
	assert.NoError(t, ValidateBallot(voter, ChoiceAbstain, "anything", func(string) bool { return true }))
}

func TestValidateBallot_InvalidInputs(t *testing.T) {
	assert.ErrorIs(t, ValidateBallot(nil, ChoiceApprove, "", nil), ErrInvalidVoter)
	assert.ErrorIs(t, ValidateBallot(Executive{ID: "ceo"}, ChoiceApprove, "", nil), ErrInvalidVoter)
	assert.ErrorIs(t, ValidateBallot(Community{}, ChoiceApprove, "", nil), ErrMissingSessionKey)
	assert.ErrorIs(t, ValidateBallot(Community{SessionKey: "s"}, Choice("maybe"), "", nil), ErrInvalidVote)
	assert.ErrorIs(t, ValidateBallot(Community{SessionKey: "s"}, Choice("maybe"), "", nil), ErrValidation)
}
