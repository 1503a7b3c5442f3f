package evaluationsRepo

import (
	"context"

	"branchaudit/database/docstore"
	"branchaudit/models"
	"branchaudit/services/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (r *docEvaluationRepo) ensureIndexes(ctx context.Context) {
	idx, ok := r.store.(docstore.Indexer)
	if !ok {
		return
	}
	indexes := [][]string{
		{"id"},
		{"empCode", "selection.date"},
		{"staffName", "selection.date"},
		{"selection.branch", "createdAt"},
	}
	for _, fields := range indexes {
		if err := idx.EnsureIndex(ctx, r.coll, fields...); err != nil {
			zap.L().Warn("failed to create staff evaluation index", zap.Strings("fields", fields), zap.Error(err))
		}
	}
}

// Create inserts a new staff evaluation and returns its ID.
func (r *docEvaluationRepo) Create(ctx context.Context, eval *models.StaffEvaluation) (string, error) {
	eval.ID = uuid.New().String()
	eval.CreatedAt = r.now().UTC()

	if err := r.store.Insert(ctx, r.coll, eval.ID, eval); err != nil {
		return "", errs.Store("insert staff evaluation", err)
	}
	return eval.ID, nil
}

// GetByID returns a staff evaluation by its ID.
func (r *docEvaluationRepo) GetByID(ctx context.Context, id string) (*models.StaffEvaluation, error) {
	eval, ok, err := docstore.FindOne[models.StaffEvaluation](ctx, r.store, r.coll, docstore.Query{
		Filters: []docstore.Filter{docstore.Eq("id", id)},
	})
	if err != nil {
		return nil, errs.Store("get staff evaluation", err)
	}
	if !ok {
		return nil, errs.ErrNotFound
	}
	return eval, nil
}
