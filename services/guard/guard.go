// Package guard checks, immediately before an insert, whether a record
// already exists for a uniqueness key.
//
// The check and the insert are two separate store calls, so two sessions
// submitting the same key at the same moment can both pass. That race is
// accepted: audits are entered sequentially by one auditor per branch.
package guard

import (
	"context"
	"strings"

	"branchaudit/config"
	"branchaudit/database/docstore"
	"branchaudit/services/errs"
	"branchaudit/utils/dates"

	"go.uber.org/zap"
)

// Key identifies the at-most-one record for a subject on a day.
type Key struct {
	Collection string
	Filters    []docstore.Filter
	Kind       string
	Subject    string
	Date       string
}

// UnitAuditKey is branch + normalized date in unitAudits.
func UnitAuditKey(branch, date string) Key {
	branch = strings.TrimSpace(branch)
	date = dates.Normalize(date)
	return Key{
		Collection: config.UnitAuditsCollection,
		Filters:    []docstore.Filter{docstore.Eq("branch", branch), docstore.Eq("date", date)},
		Kind:       "unit audit",
		Subject:    branch,
		Date:       date,
	}
}

// StaffEvaluationKey is employee code + normalized date in staffEvaluations.
// The staff name stands in when no code was recorded.
func StaffEvaluationKey(empCode, staffName, date string) Key {
	date = dates.Normalize(date)
	field, subject := "empCode", strings.TrimSpace(empCode)
	if subject == "" {
		field, subject = "staffName", strings.TrimSpace(staffName)
	}
	return Key{
		Collection: config.StaffEvaluationsCollection,
		Filters:    []docstore.Filter{docstore.Eq(field, subject), docstore.Eq("selection.date", date)},
		Kind:       "staff evaluation",
		Subject:    subject,
		Date:       date,
	}
}

// Guard runs uniqueness queries against the record store.
type Guard struct {
	Store  docstore.Store
	Logger *zap.Logger
}

// New returns a Guard; a nil logger disables logging.
func New(store docstore.Store, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{Store: store, Logger: logger}
}

// Exists reports whether at least one record matches key.
func (g *Guard) Exists(ctx context.Context, key Key) (bool, error) {
	docs, err := g.Store.Find(ctx, key.Collection, docstore.Query{Filters: key.Filters, Limit: 1})
	if err != nil {
		return false, errs.Store("uniqueness check", err)
	}
	return len(docs) > 0, nil
}

// Check returns a *errs.ConflictError when key is taken, a *errs.StoreError
// when the query fails, and nil when the insert may proceed.
func (g *Guard) Check(ctx context.Context, key Key) error {
	exists, err := g.Exists(ctx, key)
	if err != nil {
		g.Logger.Error("uniqueness check failed",
			zap.String("kind", key.Kind), zap.String("subject", key.Subject), zap.String("date", key.Date), zap.Error(err))
		return err
	}
	if exists {
		g.Logger.Info("duplicate submission rejected",
			zap.String("kind", key.Kind), zap.String("subject", key.Subject), zap.String("date", key.Date))
		return &errs.ConflictError{Kind: key.Kind, Key: key.Subject, Date: key.Date}
	}
	return nil
}
