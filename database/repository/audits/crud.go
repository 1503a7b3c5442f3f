package auditsRepo

import (
	"context"

	"branchaudit/database/docstore"
	"branchaudit/models"
	"branchaudit/services/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *docRecordRepo) ensureIndexes(ctx context.Context) {
	idx, ok := r.store.(docstore.Indexer)
	if !ok {
		return
	}
	for _, fields := range [][]string{{"id"}, {"branch", "date"}, {"branch", "timestamp"}} {
		if err := idx.EnsureIndex(ctx, r.coll, fields...); err != nil {
			zap.L().Warn("failed to create unit audit index", zap.Strings("fields", fields), zap.Error(err))
		}
	}
}

// Create inserts a new unit audit and returns its ID.
// The ID and timestamp are always assigned here.
func (r *docRecordRepo) Create(ctx context.Context, audit *models.UnitAudit) (string, error) {
	audit.ID = uuid.New().String()
	audit.Timestamp = r.now().UTC()

	if err := r.store.Insert(ctx, r.coll, audit.ID, audit); err != nil {
		return "", errs.Store("insert unit audit", err)
	}
	return audit.ID, nil
}

// GetByID returns a unit audit by its ID.
func (r *docRecordRepo) GetByID(ctx context.Context, id string) (*models.UnitAudit, error) {
	audit, ok, err := docstore.FindOne[models.UnitAudit](ctx, r.store, r.coll, docstore.Query{
		Filters: []docstore.Filter{docstore.Eq("id", id)},
	})
	if err != nil {
		return nil, errs.Store("get unit audit", err)
	}
	if !ok {
		return nil, errs.ErrNotFound
	}
	return audit, nil
}
