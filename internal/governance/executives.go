package governance

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ExecutiveID string

func (e ExecutiveID) String() string {
	return string(e)
}

const (
	ExecutiveCSO ExecutiveID = "cso"
	ExecutiveCTO ExecutiveID = "cto"
	ExecutiveCIO ExecutiveID = "cio"
	ExecutiveCAO ExecutiveID = "cao"
	ExecutiveCOO ExecutiveID = "coo"
)

// ExecutiveProfile describes the role an executive plays when it evaluates a proposal.
type ExecutiveProfile struct {
	ID    ExecutiveID
	Title string
	Focus string
}

var executivePanel = []ExecutiveProfile{
	{
		ID:    ExecutiveCSO,
		Title: "chief strategy officer",
		Focus: "long-term strategic fit, ecosystem growth and alignment with the mission",
	},
	{
		ID:    ExecutiveCTO,
		Title: "chief technology officer",
		Focus: "technical feasibility, architecture, security and maintenance cost",
	},
	{
		ID:    ExecutiveCIO,
		Title: "chief information officer",
		Focus: "data flows, integrations, information security and operational visibility",
	},
	{
		ID:    ExecutiveCAO,
		Title: "chief analytics officer",
		Focus: "measurable impact, expected usage and evidence behind the stated use case",
	},
	{
		ID:    ExecutiveCOO,
		Title: "chief operations officer",
		Focus: "day-to-day operations, resourcing, rollout risk and support burden",
	},
}

// Executives returns the fixed panel in its canonical order.
func Executives() []ExecutiveProfile {
	panel := make([]ExecutiveProfile, len(executivePanel))
	copy(panel, executivePanel)
	return panel
}

func ExecutiveIDs() []ExecutiveID {
	ids := make([]ExecutiveID, 0, len(executivePanel))
	for _, profile := range executivePanel {
		ids = append(ids, profile.ID)
	}
	return ids
}

func ExecutiveCount() int {
	return len(executivePanel)
}

func ParseExecutiveID(value string) (ExecutiveID, error) {
	id := ExecutiveID(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := Profile(id); !ok {
		return "", ErrInvalidVoter
	}
	return id, nil
}

func Profile(id ExecutiveID) (ExecutiveProfile, bool) {
	for _, profile := range executivePanel {
		if profile.ID == id {
			return profile, true
		}
	}
	return ExecutiveProfile{}, false
}

// CapitalizedTitle returns the title as it is shown to people, e.g. "Chief Technology Officer".
func (p ExecutiveProfile) CapitalizedTitle() string {
	return cases.Title(language.English).String(p.Title)
}
