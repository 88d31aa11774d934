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

var errProposalAlreadyClosed = errors.New("proposal already closed")

type decisionReportRepository struct {
	repository
}

//go:generate mockgen -source=decision_report_repository.go -destination=mocks/decision_report_repository.go -package=mock_repositories

type DecisionReportRepository interface {
	// Finalize inserts the report and closes the proposal in one transaction. It
	// reports false, writing nothing, when a report already exists for the proposal.
	Finalize(ctx context.Context, report *models.DecisionReport) (bool, error)
	GetOneByProposal(ctx context.Context, proposalID string) (*models.DecisionReport, error)
	// GetManyUndispatched lists reports created before the cutoff whose dispatch has
	// not succeeded yet.
	GetManyUndispatched(ctx context.Context, createdBefore time.Time) ([]*models.DecisionReport, error)
	MarkDispatched(ctx context.Context, reportID string, dispatchedAt time.Time) error
}

func NewDecisionReportRepository(db *pg.DB) DecisionReportRepository {
	return &decisionReportRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *decisionReportRepository) Finalize(ctx context.Context, report *models.DecisionReport) (bool, error) {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}

	created := false

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		result, err := tx.ModelContext(ctx, report).
			OnConflict("(proposal_id) DO NOTHING").
			Insert()
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return nil
		}

		result, err = tx.ModelContext(ctx, (*models.Proposal)(nil)).
			Set("status = ?", report.Status()).
			Set("voting_phase = ?", models.VotingPhaseClosed).
			Set("updated_at = ?", report.CreatedAt).
			Where("id = ?", report.ProposalID).
			Where("status = ?", models.ProposalStatusVoting).
			Update()
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return errProposalAlreadyClosed
		}

		created = true
		return nil
	})
	if errors.Is(err, errProposalAlreadyClosed) {
		return false, nil
	} else if err != nil {
		return false, governance.Persistence("finalize proposal", err)
	}

	return created, nil
}

func (r *decisionReportRepository) GetOneByProposal(ctx context.Context, proposalID string) (*models.DecisionReport, error) {
	if _, err := uuid.Parse(proposalID); err != nil {
		return nil, governance.ErrDecisionNotFound
	}

	report := &models.DecisionReport{}

	err := r.db.ModelContext(ctx, report).
		Where("proposal_id = ?", proposalID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, governance.ErrDecisionNotFound
	} else if err != nil {
		return nil, governance.Persistence("get decision report", err)
	}

	return report, nil
}

func (r *decisionReportRepository) GetManyUndispatched(ctx context.Context, createdBefore time.Time) ([]*models.DecisionReport, error) {
	reports := make([]*models.DecisionReport, 0)

	err := r.db.ModelContext(ctx, &reports).
		Where("dispatched_at IS NULL").
		Where("created_at < ?", createdBefore).
		OrderExpr("created_at ASC").
		Select()
	if err != nil {
		return nil, governance.Persistence("list undispatched decision reports", err)
	}

	return reports, nil
}

func (r *decisionReportRepository) MarkDispatched(ctx context.Context, reportID string, dispatchedAt time.Time) error {
	_, err := r.db.ModelContext(ctx, (*models.DecisionReport)(nil)).
		Set("dispatched_at = ?", dispatchedAt).
		Where("id = ?", reportID).
		Where("dispatched_at IS NULL").
		Update()
	if err != nil {
		return governance.Persistence("mark decision dispatched", err)
	}

	return nil
}
