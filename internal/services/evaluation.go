package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/governance"
)

const automatedAnalysisFailed = "Automated analysis failed: the evaluation could not be read, so the proposal is rejected by default."

var (
	fencedJSON    = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	voteLine      = regexp.MustCompile(`(?im)^\s*\**\s*vote\s*\**\s*:\s*\**\s*([a-z]+)`)
	reasoningLine = regexp.MustCompile(`(?is)\breasoning\s*\**\s*:\s*(.+)`)
)

type evaluation struct {
	Vote      string `json:"vote"`
	Reasoning string `json:"reasoning"`
}

func evaluationPrompt(profile governance.ExecutiveProfile, proposal *models.Proposal) string {
	return fmt.Sprintf(`You are the %s of the organisation. You weigh every proposal through %s.

Proposal
Subject: %s
Proposed by: %s
Description: %s
Rationale: %s
Use case: %s

Voting policy
You must decide. Vote "approve" or "reject". You may vote "abstain" only when you have a conflict of interest, when there is insufficient information to judge, or when the proposal is outside your expertise, and you must name that reason in your reasoning. Any other abstention is not accepted.

Reply with a single JSON object and nothing else:
{"vote": "approve" | "reject" | "abstain", "reasoning": "<two to four sentences>"}`,
		profile.CapitalizedTitle(),
		profile.Focus,
		proposal.Subject,
		proposal.ProposedBy,
		orNone(proposal.Description),
		orNone(proposal.Rationale),
		orNone(proposal.UseCase),
	)
}

func orNone(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(none given)"
	}
	return value
}

// parseEvaluation reads a vote from a model reply. It returns false when no vote
// could be extracted.
func parseEvaluation(reply string) (governance.Choice, string, bool) {
	if raw, ok := firstJSONObject(reply); ok {
		var e evaluation
		if err := json.Unmarshal([]byte(raw), &e); err == nil {
			if choice, ok := normalizeChoice(e.Vote); ok {
				return choice, strings.TrimSpace(e.Reasoning), true
			}
		}
	}

	if match := voteLine.FindStringSubmatch(reply); match != nil {
		if choice, ok := normalizeChoice(match[1]); ok {
			reasoning := ""
			if r := reasoningLine.FindStringSubmatch(reply); r != nil {
				reasoning = strings.TrimSpace(r[1])
			}
			return choice, reasoning, true
		}
	}

	return "", "", false
}

func firstJSONObject(reply string) (string, bool) {
	if match := fencedJSON.FindStringSubmatch(reply); match != nil {
		return match[1], true
	}

	start := strings.Index(reply, "{")
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(reply); i++ {
		c := reply[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return reply[start : i+1], true
			}
		}
	}

	return "", false
}

func normalizeChoice(value string) (governance.Choice, bool) {
	switch strings.ToLower(strings.Trim(strings.TrimSpace(value), `."'*`)) {
	case "approve", "approved", "approval", "yes":
		return governance.ChoiceApprove, true
	case "reject", "rejected", "rejection", "no":
		return governance.ChoiceReject, true
	case "abstain", "abstained", "abstention":
		return governance.ChoiceAbstain, true
	}
	return "", false
}
