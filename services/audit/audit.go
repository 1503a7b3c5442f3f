package audit

import (
	"context"
	"strings"

	"branchaudit/models"
	"branchaudit/services/aggregate"
	"branchaudit/services/errs"
	"branchaudit/services/guard"
	"branchaudit/services/scoring"
	"branchaudit/utils/dates"

	"go.uber.org/zap"
)

func trimAnswers(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = strings.TrimSpace(v)
	}
	return out
}

// build resolves remarks and scores a validated submission.
func build(sub models.UnitAuditSubmission) *models.UnitAudit {
	obs := scoring.ResolveRemark(scoring.ObservationOptions, sub.Observations)
	maint := scoring.ResolveRemark(scoring.MaintenanceOptions, sub.Maintenance)
	plan := scoring.ResolveRemark(scoring.ActionPlanOptions, sub.ActionPlan)

	a := &models.UnitAudit{
		Branch:       strings.TrimSpace(sub.Branch),
		City:         strings.TrimSpace(sub.City),
		Auditor:      strings.TrimSpace(sub.Auditor),
		Date:         dates.Normalize(sub.Date),
		Kitchen:      trimAnswers(sub.Kitchen),
		Hygiene:      trimAnswers(sub.Hygiene),
		FoodSafety:   trimAnswers(sub.FoodSafety),
		Observations: obs.Text(),
		Maintenance:  maint.Text(),
		ActionPlan:   plan.Text(),
	}
	a.ScoreOutOf100, a.ScoreBreakdown = scoring.ScoreUnitAudit(a.Kitchen, a.Hygiene, a.FoodSafety, obs, maint)
	return a
}

// Submit validates, scores and stores a unit audit. Validation errors never
// reach the store, and nothing is written when the branch already has an
// audit for that date.
func (s *DefaultAuditService) Submit(ctx context.Context, sub models.UnitAuditSubmission) (*models.UnitAudit, error) {
	if err := validate(sub); err != nil {
		return nil, err
	}
	a := build(sub)

	if err := s.Guard.Check(ctx, guard.UnitAuditKey(a.Branch, a.Date)); err != nil {
		return nil, err
	}

	if _, err := s.Repo.Create(ctx, a); err != nil {
		s.Logger.Error("failed to save unit audit", zap.String("branch", a.Branch), zap.String("date", a.Date), zap.Error(err))
		return nil, err
	}
	s.Logger.Info("unit audit saved",
		zap.String("id", a.ID), zap.String("branch", a.Branch), zap.String("date", a.Date), zap.Int("score", a.ScoreOutOf100))
	return a, nil
}

// Preview scores whatever has been filled in so far.
func (s *DefaultAuditService) Preview(sub models.UnitAuditSubmission) Preview {
	a := build(sub)
	p := Preview{ScoreOutOf100: a.ScoreOutOf100, ScoreBreakdown: a.ScoreBreakdown}
	if err := validate(sub); err != nil {
		p.Problems = err.(*errs.ValidationError).Messages
	}
	return p
}

func (s *DefaultAuditService) Exists(ctx context.Context, branch, date string) (bool, error) {
	if err := requireBranchAndDate(branch, date); err != nil {
		return false, err
	}
	return s.Guard.Exists(ctx, guard.UnitAuditKey(branch, date))
}

func (s *DefaultAuditService) Get(ctx context.Context, id string) (*models.UnitAudit, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns a branch's audits newest first, optionally for a single date.
func (s *DefaultAuditService) List(ctx context.Context, branch, date string) ([]models.UnitAudit, error) {
	var v errs.Validation
	v.Require("branch", branch)
	if strings.TrimSpace(date) != "" && !dates.Valid(date) {
		v.Add("date is missing or invalid")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return s.Repo.GetByBranch(ctx, strings.TrimSpace(branch), dates.Normalize(date))
}

func (s *DefaultAuditService) Latest(ctx context.Context, branch string) (*models.UnitAudit, error) {
	var v errs.Validation
	v.Require("branch", branch)
	if err := v.Err(); err != nil {
		return nil, err
	}
	return s.Repo.GetLatestByBranch(ctx, strings.TrimSpace(branch))
}

func (s *DefaultAuditService) Summary(ctx context.Context, branch, from, to string) (*aggregate.AuditSummary, error) {
	if err := validateRange(branch, from, to); err != nil {
		return nil, err
	}
	audits, err := s.Repo.GetByBranch(ctx, strings.TrimSpace(branch), "")
	if err != nil {
		return nil, err
	}
	summary := aggregate.SummarizeAudits(strings.TrimSpace(branch), from, to, audits)
	return &summary, nil
}

func requireBranchAndDate(branch, date string) error {
	var v errs.Validation
	v.Require("branch", branch)
	v.Date("date", date)
	return v.Err()
}

func validateRange(branch, from, to string) error {
	var v errs.Validation
	v.Require("branch", branch)
	v.Range(from, to)
	return v.Err()
}
