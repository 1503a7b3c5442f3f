package evaluation

import (
	"context"

	evaluationsRepo "branchaudit/database/repository/evaluations"
	"branchaudit/models"
	"branchaudit/services/aggregate"
	"branchaudit/services/guard"
	"branchaudit/services/scoring"

	"go.uber.org/zap"
)

type EvaluationService interface {
	Submit(ctx context.Context, sub models.StaffEvaluationSubmission) (*models.StaffEvaluation, error)
	Preview(ratings map[string]string) scoring.StaffScore

	Exists(ctx context.Context, empCode, staffName, date string) (bool, error)
	Get(ctx context.Context, id string) (*models.StaffEvaluation, error)
	ListByBranch(ctx context.Context, branch, from, to string) ([]models.StaffEvaluation, error)
	EmployeeHistory(ctx context.Context, empCode, staffName string) ([]models.StaffEvaluation, error)
	Latest(ctx context.Context, empCode, staffName string) (*models.StaffEvaluation, error)
	BranchReport(ctx context.Context, branch, from, to string) (*aggregate.BranchReport, error)
}

type DefaultEvaluationService struct {
	Repo   evaluationsRepo.StaffEvaluationRepository
	Guard  *guard.Guard
	Cache  ReportCache
	Logger *zap.Logger
}

// NewDefaultEvaluationService wires the service; a nil cache disables report caching.
func NewDefaultEvaluationService(repo evaluationsRepo.StaffEvaluationRepository, g *guard.Guard, cache ReportCache, logger *zap.Logger) *DefaultEvaluationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NopReportCache{}
	}
	return &DefaultEvaluationService{Repo: repo, Guard: g, Cache: cache, Logger: logger}
}
