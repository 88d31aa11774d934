package governance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVoter_Executive(t *testing.T) {
	voter, err := ParseVoter("Executive", " CTO ")
	require.NoError(t, err)

	assert.Equal(t, Executive{ID: ExecutiveCTO}, voter)
	assert.Equal(t, ExecutiveWeight, voter.Weight())
	assert.Equal(t, "cto", voter.Key())
}

func TestParseVoter_Community(t *testing.T) {
	voter, err := ParseVoter("community", "session-1")
	require.NoError(t, err)

	assert.Equal(t, Community{SessionKey: "session-1"}, voter)
	assert.Equal(t, CommunityWeight, voter.Weight())
}

func TestParseVoter_Errors(t *testing.T) {
	_, err := ParseVoter("executive", "ceo")
	assert.ErrorIs(t, err, ErrInvalidVoter)

	_, err = ParseVoter("community", "  ")
	assert.ErrorIs(t, err, ErrMissingSessionKey)

	_, err = ParseVoter("board", "x")
	assert.ErrorIs(t, err, ErrInvalidVoter)
}

func TestExecutives_FixedPanel(t *testing.T) {
	assert.Equal(t, 5, ExecutiveCount())
	assert.Equal(t, []ExecutiveID{ExecutiveCSO, ExecutiveCTO, ExecutiveCIO, ExecutiveCAO, ExecutiveCOO}, ExecutiveIDs())

	profile, ok := Profile(ExecutiveCTO)
	require.True(t, ok)
	assert.Equal(t, "Chief Technology Officer", profile.CapitalizedTitle())
}
