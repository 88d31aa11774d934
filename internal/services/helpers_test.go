package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/db/repositories/memory"
	"proposal_governance_system/internal/dispatcher"
	"proposal_governance_system/internal/governance"
	"proposal_governance_system/internal/reasoning"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var sweepStart = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// scriptedClient answers each executive with a fixed reply, matched on the role title
// in the prompt.
type scriptedClient struct {
	mu      sync.Mutex
	replies map[governance.ExecutiveID]string
	errs    map[governance.ExecutiveID]error
	calls   []governance.ExecutiveID
}

func (c *scriptedClient) Respond(_ context.Context, prompt string, _ reasoning.Options) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, profile := range governance.Executives() {
		if !strings.Contains(prompt, profile.CapitalizedTitle()) {
			continue
		}
		c.calls = append(c.calls, profile.ID)
		if err := c.errs[profile.ID]; err != nil {
			return "", err
		}
		if reply, ok := c.replies[profile.ID]; ok {
			return reply, nil
		}
		return `{"vote": "reject", "reasoning": "No reply was scripted."}`, nil
	}

	return "", errors.New("prompt names no executive")
}

func (c *scriptedClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

type recordingDispatcher struct {
	mu       sync.Mutex
	outcomes []dispatcher.Outcome
	failures int
}

func (d *recordingDispatcher) Dispatch(_ context.Context, outcome dispatcher.Outcome) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.failures > 0 {
		d.failures--
		return errors.New("collaborator unavailable")
	}
	d.outcomes = append(d.outcomes, outcome)
	return nil
}

func (d *recordingDispatcher) dispatched() []dispatcher.Outcome {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]dispatcher.Outcome(nil), d.outcomes...)
}

type harness struct {
	store      *memory.Store
	clock      *governance.FixedClock
	client     *scriptedClient
	dispatcher *recordingDispatcher
	votes      VoteService
	polls      PollService
	decisions  DecisionService
	phases     PhaseService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	logger := zap.NewNop().Sugar()
	store := memory.NewStore()
	clock := &governance.FixedClock{At: sweepStart}
	client := &scriptedClient{
		replies: map[governance.ExecutiveID]string{},
		errs:    map[governance.ExecutiveID]error{},
	}
	collaborator := &recordingDispatcher{}

	votes := NewVoteService(store.Proposals(), store.Votes(), clock, nil, logger)
	polls := NewPollService(store.Proposals(), votes, client, PollOptions{Timeout: time.Second}, logger)
	decisions := NewDecisionService(store.Proposals(), store.Votes(), store.Reports(), collaborator, clock, logger)
	phases := NewPhaseService(store.Proposals(), votes, polls, decisions, clock, Windows{
		Executive: time.Hour,
		Community: 25 * time.Hour,
	}, logger)

	return &harness{
		store:      store,
		clock:      clock,
		client:     client,
		dispatcher: collaborator,
		votes:      votes,
		polls:      polls,
		decisions:  decisions,
		phases:     phases,
	}
}

func (h *harness) proposal(t *testing.T) *models.Proposal {
	t.Helper()

	proposal, err := h.store.Proposals().Create(context.Background(), &models.Proposal{
		Subject:     "analytics-warehouse",
		Description: "Grant the analytics team read access to the warehouse.",
		Rationale:   "Weekly reporting is blocked on manual exports.",
		UseCase:     "Dashboards for the operations review.",
		ProposedBy:  "data-guild",
		Status:      models.ProposalStatusVoting,
		VotingPhase: models.VotingPhaseExecutive,
		CreatedAt:   sweepStart,
	})
	require.NoError(t, err)
	return proposal
}

func (h *harness) vote(t *testing.T, proposalID string, voter governance.Voter, choice governance.Choice, reasoning string) VoteResult {
	t.Helper()

	result, err := h.votes.Submit(context.Background(), VoteSubmission{
		ProposalID: proposalID,
		Voter:      voter,
		Choice:     choice,
		Reasoning:  reasoning,
	})
	require.NoError(t, err)
	return result
}

func (h *harness) reload(t *testing.T, proposalID string) *models.Proposal {
	t.Helper()

	proposal, err := h.store.Proposals().GetOne(context.Background(), proposalID)
	require.NoError(t, err)
	return proposal
}

func executive(id governance.ExecutiveID) governance.Voter {
	return governance.Executive{ID: id}
}

func community(key string) governance.Voter {
	return governance.Community{SessionKey: key}
}
