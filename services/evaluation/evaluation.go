package evaluation

import (
	"context"
	"sort"
	"strings"

	"branchaudit/models"
	"branchaudit/services/aggregate"
	"branchaudit/services/errs"
	"branchaudit/services/guard"
	"branchaudit/services/scoring"
	"branchaudit/utils/dates"

	"go.uber.org/zap"
)

func build(sub models.StaffEvaluationSubmission) *models.StaffEvaluation {
	ratings := make(map[string]string, len(sub.Ratings))
	for k, v := range sub.Ratings {
		if v = strings.TrimSpace(v); v != "" {
			ratings[k] = v
		}
	}
	score := scoring.ScoreStaff(ratings)
	e := &models.StaffEvaluation{
		StaffName:   strings.TrimSpace(sub.StaffName),
		EmpCode:     strings.TrimSpace(sub.EmpCode),
		Designation: strings.TrimSpace(sub.Designation),
		Ratings:     ratings,
		TotalMarks:  score.TotalMarks,
		Grade:       score.Grade,
		Selection: models.Selection{
			Branch:  strings.TrimSpace(sub.Selection.Branch),
			City:    strings.TrimSpace(sub.Selection.City),
			Auditor: strings.TrimSpace(sub.Selection.Auditor),
			Date:    dates.Normalize(sub.Selection.Date),
		},
	}
	if score.OK {
		s := score.Score
		e.ScoreOutOf100 = &s
	}
	return e
}

// Submit validates, scores and stores an evaluation, then drops any cached
// report for the branch.
func (s *DefaultEvaluationService) Submit(ctx context.Context, sub models.StaffEvaluationSubmission) (*models.StaffEvaluation, error) {
	if err := validate(sub); err != nil {
		return nil, err
	}
	e := build(sub)

	if err := s.Guard.Check(ctx, guard.StaffEvaluationKey(e.EmpCode, e.StaffName, e.Selection.Date)); err != nil {
		return nil, err
	}
	if _, err := s.Repo.Create(ctx, e); err != nil {
		s.Logger.Error("failed to save staff evaluation",
			zap.String("staff", e.StaffName), zap.String("empCode", e.EmpCode), zap.Error(err))
		return nil, err
	}
	s.Logger.Info("staff evaluation saved",
		zap.String("id", e.ID), zap.String("staff", e.StaffName), zap.String("branch", e.Selection.Branch),
		zap.String("date", e.Selection.Date), zap.String("grade", e.Grade))

	if err := s.Cache.InvalidateBranch(ctx, e.Selection.Branch); err != nil {
		s.Logger.Warn("failed to invalidate branch reports", zap.String("branch", e.Selection.Branch), zap.Error(err))
	}
	return e, nil
}

func (s *DefaultEvaluationService) Preview(ratings map[string]string) scoring.StaffScore {
	return scoring.ScoreStaff(ratings)
}

func requireEmployee(v *errs.Validation, empCode, staffName string) {
	if strings.TrimSpace(empCode) == "" && strings.TrimSpace(staffName) == "" {
		v.Add("empCode or staff name is required")
	}
}

func (s *DefaultEvaluationService) Exists(ctx context.Context, empCode, staffName, date string) (bool, error) {
	var v errs.Validation
	requireEmployee(&v, empCode, staffName)
	v.Date("date", date)
	if err := v.Err(); err != nil {
		return false, err
	}
	return s.Guard.Exists(ctx, guard.StaffEvaluationKey(empCode, staffName, date))
}

func (s *DefaultEvaluationService) Get(ctx context.Context, id string) (*models.StaffEvaluation, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListByBranch returns the branch's evaluations within [from, to], newest first.
func (s *DefaultEvaluationService) ListByBranch(ctx context.Context, branch, from, to string) ([]models.StaffEvaluation, error) {
	if err := validateRange(branch, from, to); err != nil {
		return nil, err
	}
	evals, err := s.Repo.GetByBranch(ctx, strings.TrimSpace(branch))
	if err != nil {
		return nil, err
	}
	return aggregate.FilterRange(aggregate.Dedupe(evals), from, to), nil
}

// EmployeeHistory merges lookups by code and by name, newest first.
func (s *DefaultEvaluationService) EmployeeHistory(ctx context.Context, empCode, staffName string) ([]models.StaffEvaluation, error) {
	var v errs.Validation
	requireEmployee(&v, empCode, staffName)
	if err := v.Err(); err != nil {
		return nil, err
	}

	var merged []models.StaffEvaluation
	if code := strings.TrimSpace(empCode); code != "" {
		byCode, err := s.Repo.GetByEmpCode(ctx, code)
		if err != nil {
			return nil, err
		}
		merged = append(merged, byCode...)
	}
	if name := strings.TrimSpace(staffName); name != "" {
		byName, err := s.Repo.GetByStaffName(ctx, name)
		if err != nil {
			return nil, err
		}
		merged = append(merged, byName...)
	}
	merged = aggregate.Dedupe(merged)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}

func (s *DefaultEvaluationService) Latest(ctx context.Context, empCode, staffName string) (*models.StaffEvaluation, error) {
	history, err := s.EmployeeHistory(ctx, empCode, staffName)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, errs.ErrNotFound
	}
	return &history[0], nil
}

// BranchReport aggregates a branch over [from, to], served from cache when present.
func (s *DefaultEvaluationService) BranchReport(ctx context.Context, branch, from, to string) (*aggregate.BranchReport, error) {
	if err := validateRange(branch, from, to); err != nil {
		return nil, err
	}
	branch = strings.TrimSpace(branch)
	nFrom, nTo := dates.Normalize(from), dates.Normalize(to)

	cached, err := s.Cache.Get(ctx, branch, nFrom, nTo)
	if err != nil {
		s.Logger.Warn("report cache read failed", zap.String("branch", branch), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	evals, err := s.Repo.GetByBranch(ctx, branch)
	if err != nil {
		return nil, err
	}
	report := aggregate.BuildBranchReport(branch, nFrom, nTo, evals)
	if err := s.Cache.Set(ctx, &report); err != nil {
		s.Logger.Warn("report cache write failed", zap.String("branch", branch), zap.Error(err))
	}
	return &report, nil
}

func validateRange(branch, from, to string) error {
	var v errs.Validation
	v.Require("branch", branch)
	v.Range(from, to)
	return v.Err()
}
