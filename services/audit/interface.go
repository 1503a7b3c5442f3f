package audit

import (
	"context"

	auditsRepo "branchaudit/database/repository/audits"
	"branchaudit/models"
	"branchaudit/services/aggregate"
	"branchaudit/services/guard"

	"go.uber.org/zap"
)

type AuditService interface {
	// Submission
	Submit(ctx context.Context, sub models.UnitAuditSubmission) (*models.UnitAudit, error)
	Preview(sub models.UnitAuditSubmission) Preview

	// Queries
	Exists(ctx context.Context, branch, date string) (bool, error)
	Get(ctx context.Context, id string) (*models.UnitAudit, error)
	List(ctx context.Context, branch, date string) ([]models.UnitAudit, error)
	Latest(ctx context.Context, branch string) (*models.UnitAudit, error)
	Summary(ctx context.Context, branch, from, to string) (*aggregate.AuditSummary, error)
}

// DefaultAuditService is the production implementation.
type DefaultAuditService struct {
	Repo   auditsRepo.UnitAuditRepository
	Guard  *guard.Guard
	Logger *zap.Logger
}

func NewDefaultAuditService(repo auditsRepo.UnitAuditRepository, g *guard.Guard, logger *zap.Logger) *DefaultAuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAuditService{Repo: repo, Guard: g, Logger: logger}
}

// Preview is the score a submission would receive, computed without I/O.
type Preview struct {
	ScoreOutOf100  int                   `json:"scoreOutOf100"`
	ScoreBreakdown models.ScoreBreakdown `json:"scoreBreakdown"`
	Problems       []string              `json:"problems,omitempty"`
}
