package auditsRepo

import (
	"context"

	"branchaudit/database/docstore"
	"branchaudit/models"
	"branchaudit/services/errs"
)

func (r *docRecordRepo) GetByBranch(ctx context.Context, branch, date string) ([]models.UnitAudit, error) {
	filters := []docstore.Filter{docstore.Eq("branch", branch)}
	if date != "" {
		filters = append(filters, docstore.Eq("date", date))
	}
	audits, err := docstore.FindAll[models.UnitAudit](ctx, r.store, r.coll, docstore.Query{
		Filters:     filters,
		OrderByDesc: "timestamp",
	})
	if err != nil {
		return nil, errs.Store("list unit audits", err)
	}
	return audits, nil
}

func (r *docRecordRepo) GetLatestByBranch(ctx context.Context, branch string) (*models.UnitAudit, error) {
	audit, ok, err := docstore.FindOne[models.UnitAudit](ctx, r.store, r.coll, docstore.Query{
		Filters:     []docstore.Filter{docstore.Eq("branch", branch)},
		OrderByDesc: "timestamp",
	})
	if err != nil {
		return nil, errs.Store("latest unit audit", err)
	}
	if !ok {
		return nil, errs.ErrNotFound
	}
	return audit, nil
}
