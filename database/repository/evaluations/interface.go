package evaluationsRepo

import (
	"context"
	"time"

	"branchaudit/config"
	"branchaudit/database/docstore"
	"branchaudit/models"
)

type StaffEvaluationRepository interface {
	Create(ctx context.Context, eval *models.StaffEvaluation) (string, error)
	GetByID(ctx context.Context, id string) (*models.StaffEvaluation, error)
	// Listings are ordered by createdAt, newest first.
	GetByBranch(ctx context.Context, branch string) ([]models.StaffEvaluation, error)
	GetByEmpCode(ctx context.Context, empCode string) ([]models.StaffEvaluation, error)
	GetByStaffName(ctx context.Context, name string) ([]models.StaffEvaluation, error)
}

type docEvaluationRepo struct {
	store docstore.Store
	coll  string
	now   func() time.Time
}

// NewStaffEvaluationRepo returns a StaffEvaluationRepository backed by the given record store.
func NewStaffEvaluationRepo(ctx context.Context, store docstore.Store) StaffEvaluationRepository {
	return NewStaffEvaluationRepoWithClock(ctx, store, time.Now)
}

// NewStaffEvaluationRepoWithClock is NewStaffEvaluationRepo with a custom createdAt source.
func NewStaffEvaluationRepoWithClock(ctx context.Context, store docstore.Store, now func() time.Time) StaffEvaluationRepository {
	repo := &docEvaluationRepo{store: store, now: now, coll: config.StaffEvaluationsCollection}
	repo.ensureIndexes(ctx)
	return repo
}
