package evaluationsRepo

import (
	"context"

	"branchaudit/database/docstore"
	"branchaudit/models"
	"branchaudit/services/errs"
)

func (r *docEvaluationRepo) findNewestFirst(ctx context.Context, op, field, value string) ([]models.StaffEvaluation, error) {
	evals, err := docstore.FindAll[models.StaffEvaluation](ctx, r.store, r.coll, docstore.Query{
		Filters:     []docstore.Filter{docstore.Eq(field, value)},
		OrderByDesc: "createdAt",
	})
	if err != nil {
		return nil, errs.Store(op, err)
	}
	return evals, nil
}

func (r *docEvaluationRepo) GetByBranch(ctx context.Context, branch string) ([]models.StaffEvaluation, error) {
	return r.findNewestFirst(ctx, "list branch evaluations", "selection.branch", branch)
}

func (r *docEvaluationRepo) GetByEmpCode(ctx context.Context, empCode string) ([]models.StaffEvaluation, error) {
	return r.findNewestFirst(ctx, "list employee evaluations", "empCode", empCode)
}

func (r *docEvaluationRepo) GetByStaffName(ctx context.Context, name string) ([]models.StaffEvaluation, error) {
	return r.findNewestFirst(ctx, "list staff name evaluations", "staffName", name)
}
