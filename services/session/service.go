package session

import (
	"context"
	"time"

	"branchaudit/services/audit"
	"branchaudit/services/evaluation"

	"go.uber.org/zap"
)

// Manager loads, edits and submits stored sessions.
type Manager struct {
	Store       Store
	Audits      audit.AuditService
	Evaluations evaluation.EvaluationService
	Logger      *zap.Logger
	Now         func() time.Time
}

func NewManager(store Store, audits audit.AuditService, evaluations evaluation.EvaluationService, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{Store: store, Audits: audits, Evaluations: evaluations, Logger: logger, Now: time.Now}
}

func (m *Manager) Create(ctx context.Context, kind Kind) (*FormSession, error) {
	if !kind.Valid() {
		return nil, invalid("unknown session kind %q", kind)
	}
	s := New(kind, m.Now().UTC())
	if err := m.Store.Save(ctx, s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *Manager) Get(ctx context.Context, id string) (*FormSession, error) {
	return m.Store.Get(ctx, id)
}

// Update applies actions to the stored session and saves the result. Nothing
// is saved when any action is rejected.
func (m *Manager) Update(ctx context.Context, id string, actions []Action) (*FormSession, error) {
	current, err := m.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := ApplyAll(*current, actions)
	if err != nil {
		return nil, err
	}
	next.LastUpdatedAt = m.Now().UTC()
	if err := m.Store.Save(ctx, next); err != nil {
		return nil, err
	}
	return &next, nil
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.Store.Delete(ctx, id)
}

// Submit hands the session to the matching service. The session survives a
// failed submission so the user can correct it.
func (m *Manager) Submit(ctx context.Context, id string) (any, error) {
	s, err := m.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var record any
	switch s.Kind {
	case KindUnitAudit:
		record, err = m.Audits.Submit(ctx, s.ToUnitAuditSubmission())
	case KindStaffEvaluation:
		record, err = m.Evaluations.Submit(ctx, s.ToStaffEvaluationSubmission())
	default:
		err = invalid("unknown session kind %q", s.Kind)
	}
	if err != nil {
		return nil, err
	}

	if err := m.Store.Delete(ctx, id); err != nil {
		m.Logger.Warn("failed to delete submitted session", zap.String("session", id), zap.Error(err))
	}
	return record, nil
}

