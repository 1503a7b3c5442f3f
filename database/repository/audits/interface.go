package auditsRepo

import (
	"context"
	"time"

	"branchaudit/config"
	"branchaudit/database/docstore"
	"branchaudit/models"
)

type UnitAuditRepository interface {
	Create(ctx context.Context, audit *models.UnitAudit) (string, error)
	GetByID(ctx context.Context, id string) (*models.UnitAudit, error)
	// GetByBranch lists a branch's audits newest first; a blank date matches every day.
	GetByBranch(ctx context.Context, branch, date string) ([]models.UnitAudit, error)
	GetLatestByBranch(ctx context.Context, branch string) (*models.UnitAudit, error)
}

type docRecordRepo struct {
	store docstore.Store
	coll  string
	now   func() time.Time
}

// NewUnitAuditRepo returns a UnitAuditRepository backed by the given record store.
func NewUnitAuditRepo(ctx context.Context, store docstore.Store) UnitAuditRepository {
	return NewUnitAuditRepoWithClock(ctx, store, time.Now)
}

// NewUnitAuditRepoWithClock is NewUnitAuditRepo with a custom timestamp source.
func NewUnitAuditRepoWithClock(ctx context.Context, store docstore.Store, now func() time.Time) UnitAuditRepository {
	repo := &docRecordRepo{store: store, now: now, coll: config.UnitAuditsCollection}
	repo.ensureIndexes(ctx)
	return repo
}
