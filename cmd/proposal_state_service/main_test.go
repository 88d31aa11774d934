package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/db/repositories/memory"
	"proposal_governance_system/internal/dispatcher"
	"proposal_governance_system/internal/governance"
	"proposal_governance_system/internal/reasoning"
	"proposal_governance_system/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingPhases struct{}

func (failingPhases) Sweep(context.Context, services.SweepPass) (services.SweepResult, error) {
	return services.SweepResult{}, errors.New("store unavailable")
}

type silentClient struct{}

func (silentClient) Respond(context.Context, string, reasoning.Options) (string, error) {
	return `{"vote": "reject", "reasoning": "Too broad."}`, nil
}

func TestNewScheduler_InvalidCron(t *testing.T) {
	_, err := newScheduler("every day at noon", func() {})
	assert.Error(t, err)
}

func TestNewScheduler_ValidCron(t *testing.T) {
	s, err := newScheduler("*/5 * * * *", func() {})
	require.NoError(t, err)
	assert.Len(t, s.Jobs(), 1)
}

func TestRunSweep_ErrorIsLogged(t *testing.T) {
	result := runSweep(context.Background(), failingPhases{}, services.PassCheckAll, zap.NewNop().Sugar())
	assert.Equal(t, services.SweepResult{}, result)
}

func TestRunSweep_FinalizesExpiredProposals(t *testing.T) {
	logger := zap.NewNop().Sugar()
	store := memory.NewStore()
	clock := &governance.FixedClock{At: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}

	votes := services.NewVoteService(store.Proposals(), store.Votes(), clock, nil, logger)
	polls := services.NewPollService(store.Proposals(), votes, silentClient{}, services.PollOptions{}, logger)
	decisions := services.NewDecisionService(store.Proposals(), store.Votes(), store.Reports(), dispatcher.Noop{}, clock, logger)
	phases := services.NewPhaseService(store.Proposals(), votes, polls, decisions, clock, services.Windows{
		Executive: time.Hour,
		Community: 25 * time.Hour,
	}, logger)

	proposal, err := store.Proposals().Create(context.Background(), &models.Proposal{
		Subject:    "billing-export",
		ProposedBy: "finance",
		Status:     models.ProposalStatusVoting,
	})
	require.NoError(t, err)

	first := runSweep(context.Background(), phases, services.PassCheckAll, logger)
	assert.Equal(t, 1, first.DeadlinesInitialized)
	assert.Equal(t, 3, first.ExecutiveVotesCollected)

	clock.Advance(26 * time.Hour)
	second := runSweep(context.Background(), phases, services.PassCheckAll, logger)
	assert.Equal(t, 1, second.Finalized)

	found, err := store.Proposals().GetOne(context.Background(), proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusRejected, found.Status)
}
