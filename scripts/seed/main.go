package main

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"branchaudit/config"
	"branchaudit/database"
	auditsRepo "branchaudit/database/repository/audits"
	evaluationsRepo "branchaudit/database/repository/evaluations"
	"branchaudit/models"
	"branchaudit/services/audit"
	"branchaudit/services/errs"
	"branchaudit/services/evaluation"
	"branchaudit/services/guard"
	"branchaudit/services/scoring"
	"branchaudit/utils"
	"branchaudit/utils/dates"

	"go.uber.org/zap"
)

type branch struct {
	Name, City string
	Staff      []staff
}

type staff struct {
	Name, Code, Designation string
}

var branches = []branch{
	{"Koramangala", "Bengaluru", []staff{{"Asha Rao", "KR01", "Steward"}, {"Vikram S", "KR02", "Chef"}, {"Meena K", "", "Cashier"}}},
	{"Indiranagar", "Bengaluru", []staff{{"Ravi Kumar", "IN01", "Captain"}, {"Farah Ali", "IN02", "Steward"}}},
	{"Bandra West", "Mumbai", []staff{{"Neha Joshi", "BW01", "Chef"}, {"Arjun Mehta", "BW02", "Steward"}}},
}

var auditors = []string{"Priya", "Sanjay", "Lakshmi"}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// answer is "Yes" with probability p.
func answer(rng *rand.Rand, p float64) string {
	if rng.Float64() < p {
		return models.AnswerYes
	}
	return models.AnswerNo
}

func remark(rng *rand.Rand, opts scoring.RemarkOptions) models.RemarkInput {
	if rng.Float64() < 0.6 {
		return models.RemarkInput{Preset: opts.NoIssue}
	}
	return models.RemarkInput{Preset: pick(rng, opts.Presets)}
}

func unitAudit(rng *rand.Rand, b branch, date string) models.UnitAuditSubmission {
	p := 0.6 + rng.Float64()*0.4
	sub := models.UnitAuditSubmission{
		Branch: b.Name, City: b.City, Auditor: pick(rng, auditors), Date: date,
		Kitchen: map[string]string{}, Hygiene: map[string]string{}, FoodSafety: map[string]string{},
		Observations: remark(rng, scoring.ObservationOptions),
		Maintenance:  remark(rng, scoring.MaintenanceOptions),
		ActionPlan:   remark(rng, scoring.ActionPlanOptions),
	}
	for _, item := range scoring.ChecklistItems[scoring.CategoryKitchen] {
		sub.Kitchen[item] = answer(rng, p)
	}
	for _, item := range scoring.ChecklistItems[scoring.CategoryHygiene] {
		sub.Hygiene[item] = answer(rng, p)
	}
	for _, item := range scoring.ChecklistItems[scoring.CategoryFoodSafety] {
		sub.FoodSafety[item] = answer(rng, p)
	}
	return sub
}

func staffEvaluation(rng *rand.Rand, b branch, s staff, date string) models.StaffEvaluationSubmission {
	ratings := map[string]string{}
	for _, param := range scoring.StaffParameters {
		ratings[param] = pick(rng, models.RatingLevels)
	}
	return models.StaffEvaluationSubmission{
		StaffName: s.Name, EmpCode: s.Code, Designation: s.Designation, Ratings: ratings,
		Selection: models.Selection{Branch: b.Name, City: b.City, Auditor: pick(rng, auditors), Date: date},
	}
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := database.InitStore(ctx)
	if err != nil {
		logger.Sugar().Fatalf("seed: failed to initialize record store: %v", err)
	}
	defer store.Close(context.Background())

	g := guard.New(store, logger.Named("guard"))
	audits := audit.NewDefaultAuditService(auditsRepo.NewUnitAuditRepo(ctx, store), g, logger.Named("audit"))
	evals := evaluation.NewDefaultEvaluationService(evaluationsRepo.NewStaffEvaluationRepo(ctx, store), g, nil, logger.Named("evaluation"))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	const days = 30
	created, skipped := 0, 0
	record := func(err error) {
		var conflict *errs.ConflictError
		switch {
		case err == nil:
			created++
		case errors.As(err, &conflict):
			skipped++
		default:
			logger.Sugar().Fatalf("seed: %v", err)
		}
	}

	today := time.Now()
	for i := days - 1; i >= 0; i-- {
		date := dates.Normalize(today.AddDate(0, 0, -i))
		for _, b := range branches {
			// Roughly two audits and one evaluation per employee each week.
			if rng.Float64() < 0.3 {
				_, err := audits.Submit(ctx, unitAudit(rng, b, date))
				record(err)
			}
			for _, s := range b.Staff {
				if rng.Float64() < 0.15 {
					_, err := evals.Submit(ctx, staffEvaluation(rng, b, s, date))
					record(err)
				}
			}
		}
	}
	logger.Info("seed: done", zap.Int("created", created), zap.Int("skippedExisting", skipped), zap.Int("days", days))
}
