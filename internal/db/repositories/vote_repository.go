package repositories

import (
	"context"

	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/governance"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type voteRepository struct {
	repository
}

//go:generate mockgen -source=vote_repository.go -destination=mocks/vote_repository.go -package=mock_repositories

type VoteRepository interface {
	// Upsert stores the vote under its (proposal, voter type, voter id) key, replacing
	// the previous choice of the same voter.
	Upsert(ctx context.Context, request *models.Vote) (*models.Vote, error)
	GetManyByProposal(ctx context.Context, proposalID string) ([]*models.Vote, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voteRepository) Upsert(ctx context.Context, request *models.Vote) (*models.Vote, error) {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	vote := *request

	_, err := r.db.ModelContext(ctx, &vote).
		OnConflict("(proposal_id, voter_type, voter_id) DO UPDATE").
		Set("vote = EXCLUDED.vote").
		Set("reasoning = EXCLUDED.reasoning").
		Set("cast_at = EXCLUDED.cast_at").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Insert()
	if err != nil {
		return nil, governance.Persistence("upsert vote", err)
	}

	return &vote, nil
}

func (r *voteRepository) GetManyByProposal(ctx context.Context, proposalID string) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.ModelContext(ctx, &votes).
		Where("proposal_id = ?", proposalID).
		OrderExpr("cast_at ASC").
		Select()
	if err != nil {
		return nil, governance.Persistence("list votes", err)
	}

	return votes, nil
}
