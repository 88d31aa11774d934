package services

import (
	"strings"
	"testing"

	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/governance"

	"github.com/stretchr/testify/assert"
)

func TestParseEvaluation(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		choice    governance.Choice
		reasoning string
		ok        bool
	}{
		{
			name:      "bare json",
			reply:     `{"vote": "approve", "reasoning": "Low risk."}`,
			choice:    governance.ChoiceApprove,
			reasoning: "Low risk.",
			ok:        true,
		},
		{
			name:      "fenced json after prose",
			reply:     "Here is my evaluation.\n```json\n{\"vote\": \"Reject\", \"reasoning\": \"Needs a {scoped} role.\"}\n```",
			choice:    governance.ChoiceReject,
			reasoning: "Needs a {scoped} role.",
			ok:        true,
		},
		{
			name:      "json embedded in text",
			reply:     `My answer: {"vote": "abstain", "reasoning": "Conflict of interest."} Thanks.`,
			choice:    governance.ChoiceAbstain,
			reasoning: "Conflict of interest.",
			ok:        true,
		},
		{
			name:      "line form",
			reply:     "VOTE: APPROVE\nREASONING: The use case is well defined.",
			choice:    governance.ChoiceApprove,
			reasoning: "The use case is well defined.",
			ok:        true,
		},
		{
			name:  "json with unknown vote",
			reply: `{"vote": "maybe", "reasoning": "Unsure."}`,
			ok:    false,
		},
		{
			name:  "free text",
			reply: "It depends on many factors.",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice, reasoning, ok := parseEvaluation(tt.reply)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.choice, choice)
				assert.Equal(t, tt.reasoning, reasoning)
			}
		})
	}
}

func TestEvaluationPrompt_NamesRoleAndPolicy(t *testing.T) {
	profile, _ := governance.Profile(governance.ExecutiveCTO)
	prompt := evaluationPrompt(profile, &models.Proposal{Subject: "vpn-access", ProposedBy: "it"})

	assert.Contains(t, prompt, "Chief Technology Officer")
	assert.Contains(t, prompt, "vpn-access")
	assert.Contains(t, prompt, "conflict of interest")
	assert.True(t, strings.Contains(prompt, "(none given)"))
}
