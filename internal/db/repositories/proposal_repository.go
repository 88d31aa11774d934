package repositories

import (
	"context"
	"errors"
	"time"

	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/governance"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type proposalRepository struct {
	repository
}

//go:generate mockgen -source=proposal_repository.go -destination=mocks/proposal_repository.go -package=mock_repositories

type ProposalRepository interface {
	Create(ctx context.Context, request *models.Proposal) (*models.Proposal, error)
	GetOne(ctx context.Context, proposalID string) (*models.Proposal, error)
	GetManyByStatus(ctx context.Context, status ...models.ProposalStatus) ([]*models.Proposal, error)
	// InitializeDeadlines stamps the voting window once; it reports false when the
	// deadlines were already set or the proposal left the executive phase.
	InitializeDeadlines(ctx context.Context, proposalID string, startedAt, executiveDeadline, communityDeadline time.Time) (bool, error)
	// AdvancePhase moves a voting proposal from one phase to the next and reports false
	// when the proposal is no longer in the expected phase.
	AdvancePhase(ctx context.Context, proposalID string, from, to models.VotingPhase) (bool, error)
}

func NewProposalRepository(db *pg.DB) ProposalRepository {
	return &proposalRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *proposalRepository) Create(ctx context.Context, request *models.Proposal) (*models.Proposal, error) {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, governance.Persistence("create proposal", err)
	}

	return r.GetOne(ctx, request.ID)
}

func (r *proposalRepository) GetOne(ctx context.Context, proposalID string) (*models.Proposal, error) {
	if _, err := uuid.Parse(proposalID); err != nil {
		return nil, governance.ErrProposalNotFound
	}

	proposal := &models.Proposal{}

	err := r.db.ModelContext(ctx, proposal).
		Where("id = ?", proposalID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, governance.ErrProposalNotFound
	} else if err != nil {
		return nil, governance.Persistence("get proposal", err)
	}

	return proposal, nil
}

func (r *proposalRepository) GetManyByStatus(ctx context.Context, status ...models.ProposalStatus) ([]*models.Proposal, error) {
	proposals := make([]*models.Proposal, 0)

	err := r.db.ModelContext(ctx, &proposals).
		WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			for _, s := range status {
				q = q.WhereOr("status = ?", s)
			}
			return q, nil
		}).
		OrderExpr("created_at ASC").
		Select()
	if err != nil {
		return nil, governance.Persistence("list proposals", err)
	}

	return proposals, nil
}

func (r *proposalRepository) InitializeDeadlines(
	ctx context.Context,
	proposalID string,
	startedAt, executiveDeadline, communityDeadline time.Time,
) (bool, error) {
	result, err := r.db.ModelContext(ctx, (*models.Proposal)(nil)).
		Set("voting_started_at = ?", startedAt).
		Set("executive_deadline = ?", executiveDeadline).
		Set("community_deadline = ?", communityDeadline).
		Set("updated_at = ?", startedAt).
		Where("id = ?", proposalID).
		Where("status = ?", models.ProposalStatusVoting).
		Where("voting_phase = ?", models.VotingPhaseExecutive).
		Where("executive_deadline IS NULL").
		Update()
	if err != nil {
		return false, governance.Persistence("initialize deadlines", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *proposalRepository) AdvancePhase(ctx context.Context, proposalID string, from, to models.VotingPhase) (bool, error) {
	if !from.Precedes(to) {
		return false, governance.ErrPhaseRegression
	}

	result, err := r.db.ModelContext(ctx, (*models.Proposal)(nil)).
		Set("voting_phase = ?", to).
		Set("updated_at = now()").
		Where("id = ?", proposalID).
		Where("status = ?", models.ProposalStatusVoting).
		Where("voting_phase = ?", from).
		Update()
	if err != nil {
		return false, governance.Persistence("advance phase", err)
	}

	return result.RowsAffected() == 1, nil
}
