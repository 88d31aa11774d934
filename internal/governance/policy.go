package governance

import "strings"

type JustificationClass string

const (
	JustificationConflictOfInterest      JustificationClass = "conflict_of_interest"
	JustificationInsufficientInformation JustificationClass = "insufficient_information"
	JustificationOutsideExpertise        JustificationClass = "outside_expertise"
)

// AbstentionPolicy reports whether the reasoning justifies an abstention.
type AbstentionPolicy func(reasoning string) bool

// CoercionPolicy turns an unjustified abstention into approve or reject.
type CoercionPolicy func(reasoning string) Choice

var justificationPhrases = map[JustificationClass][]string{
	JustificationConflictOfInterest: {
		"conflict of interest",
		"conflicts of interest",
		"conflicted",
	},
	JustificationInsufficientInformation: {
		"insufficient information",
		"not enough information",
		"lack of information",
		"lacks information",
		"insufficient detail",
		"insufficient data",
	},
	JustificationOutsideExpertise: {
		"outside my expertise",
		"outside of my expertise",
		"outside expertise",
		"outside my area of expertise",
		"beyond my expertise",
		"not my area of expertise",
	},
}

var justificationOrder = []JustificationClass{
	JustificationConflictOfInterest,
	JustificationInsufficientInformation,
	JustificationOutsideExpertise,
}

// ClassifyJustification returns the first canonical class the reasoning matches.
func ClassifyJustification(reasoning string) (JustificationClass, bool) {
	text := strings.ToLower(reasoning)
	for _, class := range justificationOrder {
		for _, phrase := range justificationPhrases[class] {
			if strings.Contains(text, phrase) {
				return class, true
			}
		}
	}
	return "", false
}

func DefaultAbstentionPolicy(reasoning string) bool {
	_, ok := ClassifyJustification(reasoning)
	return ok
}

var (
	approvalCues = []string{
		"approve",
		"in favor",
		"in favour",
		"support",
		"beneficial",
		"recommend",
		"valuable",
		"worthwhile",
		"positive",
		"good idea",
	}
	rejectionCues = []string{
		"reject",
		"against",
		"oppose",
		"not support",
		"don't support",
		"do not support",
		"not recommend",
		"concern",
		"risk",
		"unclear",
		"need more time",
		"disapprove",
	}
	// Rejection phrases that contain an approval cue as a substring.
	negatedApprovalCues = []string{
		"not support",
		"don't support",
		"do not support",
		"not recommend",
		"disapprove",
	}
)

// DefaultCoercionPolicy approves only when approval language outweighs rejection
// language. Ambiguity resolves to reject, never abstain.
func DefaultCoercionPolicy(reasoning string) Choice {
	text := strings.ToLower(reasoning)

	rejections := countCues(text, rejectionCues)
	approvals := countCues(text, approvalCues) - countCues(text, negatedApprovalCues)

	if approvals > rejections {
		return ChoiceApprove
	}
	return ChoiceReject
}

func countCues(text string, cues []string) int {
	count := 0
	for _, cue := range cues {
		count += strings.Count(text, cue)
	}
	return count
}
