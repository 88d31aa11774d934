// Package memory keeps the proposal ledger in process memory with the same
// conditional-write semantics as the go-pg repositories.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/db/repositories"
	"proposal_governance_system/internal/governance"

	"github.com/google/uuid"
)

type voteKey struct {
	proposalID string
	voterType  governance.VoterType
	voterID    string
}

type Store struct {
	mu        sync.Mutex
	proposals map[string]*models.Proposal
	votes     map[voteKey]*models.Vote
	reports   map[string]*models.DecisionReport
}

func NewStore() *Store {
	return &Store{
		proposals: make(map[string]*models.Proposal),
		votes:     make(map[voteKey]*models.Vote),
		reports:   make(map[string]*models.DecisionReport),
	}
}

func (s *Store) Proposals() repositories.ProposalRepository {
	return &proposalRepository{s}
}

func (s *Store) Votes() repositories.VoteRepository {
	return &voteRepository{s}
}

func (s *Store) Reports() repositories.DecisionReportRepository {
	return &decisionReportRepository{s}
}

type proposalRepository struct {
	*Store
}

func (r *proposalRepository) Create(_ context.Context, request *models.Proposal) (*models.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	proposal := *request
	if proposal.ID == "" {
		proposal.ID = uuid.NewString()
	}
	if proposal.Status == "" {
		proposal.Status = models.ProposalStatusDraft
	}
	if proposal.VotingPhase == "" {
		proposal.VotingPhase = models.VotingPhaseExecutive
	}
	if proposal.CreatedAt.IsZero() {
		proposal.CreatedAt = time.Now().UTC()
	}
	if proposal.UpdatedAt.IsZero() {
		proposal.UpdatedAt = proposal.CreatedAt
	}
	if _, ok := r.proposals[proposal.ID]; ok {
		return nil, governance.Persistence("create proposal", errDuplicateKey)
	}

	r.proposals[proposal.ID] = &proposal
	created := proposal
	return &created, nil
}

func (r *proposalRepository) GetOne(_ context.Context, proposalID string) (*models.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	proposal, ok := r.proposals[proposalID]
	if !ok {
		return nil, governance.ErrProposalNotFound
	}

	found := *proposal
	return &found, nil
}

func (r *proposalRepository) GetManyByStatus(_ context.Context, status ...models.ProposalStatus) ([]*models.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[models.ProposalStatus]bool, len(status))
	for _, s := range status {
		wanted[s] = true
	}

	proposals := make([]*models.Proposal, 0)
	for _, proposal := range r.proposals {
		if wanted[proposal.Status] {
			found := *proposal
			proposals = append(proposals, &found)
		}
	}
	sort.Slice(proposals, func(i, j int) bool {
		if proposals[i].CreatedAt.Equal(proposals[j].CreatedAt) {
			return proposals[i].ID < proposals[j].ID
		}
		return proposals[i].CreatedAt.Before(proposals[j].CreatedAt)
	})

	return proposals, nil
}

func (r *proposalRepository) InitializeDeadlines(
	_ context.Context,
	proposalID string,
	startedAt, executiveDeadline, communityDeadline time.Time,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	proposal, ok := r.proposals[proposalID]
	if !ok || !proposal.IsVoting() || proposal.VotingPhase != models.VotingPhaseExecutive || proposal.DeadlinesInitialized() {
		return false, nil
	}

	proposal.VotingStartedAt = startedAt
	proposal.ExecutiveDeadline = executiveDeadline
	proposal.CommunityDeadline = communityDeadline
	proposal.UpdatedAt = startedAt
	return true, nil
}

func (r *proposalRepository) AdvancePhase(_ context.Context, proposalID string, from, to models.VotingPhase) (bool, error) {
	if !from.Precedes(to) {
		return false, governance.ErrPhaseRegression
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	proposal, ok := r.proposals[proposalID]
	if !ok || !proposal.IsVoting() || proposal.VotingPhase != from {
		return false, nil
	}

	proposal.VotingPhase = to
	proposal.UpdatedAt = time.Now().UTC()
	return true, nil
}

type voteRepository struct {
	*Store
}

func (r *voteRepository) Upsert(_ context.Context, request *models.Vote) (*models.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := voteKey{request.ProposalID, request.VoterType, request.VoterID}
	vote := *request

	if existing, ok := r.votes[key]; ok {
		vote.ID = existing.ID
	} else if vote.ID == "" {
		vote.ID = uuid.NewString()
	}

	r.votes[key] = &vote
	stored := vote
	return &stored, nil
}

func (r *voteRepository) GetManyByProposal(_ context.Context, proposalID string) ([]*models.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	votes := make([]*models.Vote, 0)
	for key, vote := range r.votes {
		if key.proposalID == proposalID {
			found := *vote
			votes = append(votes, &found)
		}
	}
	sort.Slice(votes, func(i, j int) bool {
		if votes[i].CastAt.Equal(votes[j].CastAt) {
			return votes[i].ID < votes[j].ID
		}
		return votes[i].CastAt.Before(votes[j].CastAt)
	})

	return votes, nil
}

type decisionReportRepository struct {
	*Store
}

func (r *decisionReportRepository) Finalize(_ context.Context, report *models.DecisionReport) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reports[report.ProposalID]; ok {
		return false, nil
	}

	proposal, ok := r.proposals[report.ProposalID]
	if !ok {
		return false, governance.Persistence("finalize proposal", errMissingProposal)
	}
	if !proposal.IsVoting() {
		return false, nil
	}

	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	stored := *report
	stored.Votes = append([]models.VoteSnapshot(nil), report.Votes...)
	r.reports[report.ProposalID] = &stored

	proposal.Status = report.Status()
	proposal.VotingPhase = models.VotingPhaseClosed
	proposal.UpdatedAt = report.CreatedAt

	return true, nil
}

func (r *decisionReportRepository) GetOneByProposal(_ context.Context, proposalID string) (*models.DecisionReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report, ok := r.reports[proposalID]
	if !ok {
		return nil, governance.ErrDecisionNotFound
	}

	found := *report
	return &found, nil
}

func (r *decisionReportRepository) GetManyUndispatched(_ context.Context, createdBefore time.Time) ([]*models.DecisionReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reports := make([]*models.DecisionReport, 0)
	for _, report := range r.reports {
		if !report.Dispatched() && report.CreatedAt.Before(createdBefore) {
			found := *report
			reports = append(reports, &found)
		}
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})

	return reports, nil
}

func (r *decisionReportRepository) MarkDispatched(_ context.Context, reportID string, dispatchedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, report := range r.reports {
		if report.ID == reportID && !report.Dispatched() {
			report.DispatchedAt = dispatchedAt
		}
	}

	return nil
}
