package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"branchaudit/database/docstore"
	auditsRepo "branchaudit/database/repository/audits"
	"branchaudit/models"
	"branchaudit/services/errs"
	"branchaudit/services/guard"
	"branchaudit/services/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) (*DefaultAuditService, *docstore.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	clock := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	repo := auditsRepo.NewUnitAuditRepoWithClock(ctx, store, func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	})
	logger := zaptest.NewLogger(t)
	return NewDefaultAuditService(repo, guard.New(store, logger), logger), store
}

func allAnswered(answer string) (map[string]string, map[string]string, map[string]string) {
	fill := func(category string) map[string]string {
		m := map[string]string{}
		for _, item := range scoring.ChecklistItems[category] {
			m[item] = answer
		}
		return m
	}
	return fill(scoring.CategoryKitchen), fill(scoring.CategoryHygiene), fill(scoring.CategoryFoodSafety)
}

func validSubmission() models.UnitAuditSubmission {
	k, h, f := allAnswered(models.AnswerYes)
	return models.UnitAuditSubmission{
		Branch:       "Koramangala",
		City:         "Bengaluru",
		Auditor:      "Priya",
		Date:         "2024-03-15",
		Kitchen:      k,
		Hygiene:      h,
		FoodSafety:   f,
		Observations: models.RemarkInput{Preset: scoring.ObservationOptions.NoIssue},
		Maintenance:  models.RemarkInput{Preset: scoring.MaintenanceOptions.NoIssue},
		ActionPlan:   models.RemarkInput{Preset: scoring.ActionPlanOptions.NoIssue},
	}
}

func TestSubmit_ScoresAndStores(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	a, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "15/03/2024", a.Date)
	assert.Equal(t, 100, a.ScoreOutOf100)
	assert.Equal(t, 78+11+11, a.ScoreBreakdown.TotalBeforeClamp)
	assert.Equal(t, "No issues observed", a.Observations)
	assert.Equal(t, 1, store.Len("unitAudits"))

	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ScoreOutOf100, got.ScoreOutOf100)
}

func TestSubmit_DuplicateSameDay(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	again := validSubmission()
	again.Date = "15/3/2024"
	_, err = svc.Submit(ctx, again)
	var conflict *errs.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "Koramangala", conflict.Key)
	assert.Equal(t, "15/03/2024", conflict.Date)
	assert.Equal(t, 1, store.Len("unitAudits"))

	nextDay := validSubmission()
	nextDay.Date = "16/03/2024"
	_, err = svc.Submit(ctx, nextDay)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len("unitAudits"))
}

func TestSubmit_ValidationWritesNothing(t *testing.T) {
	svc, store := newTestService(t)

	sub := validSubmission()
	sub.Branch = " "
	sub.Date = "31/02/2024"
	delete(sub.Kitchen, scoring.ChecklistItems[scoring.CategoryKitchen][0])
	sub.Hygiene["Mopping done"] = models.AnswerYes
	sub.Observations = models.RemarkInput{Preset: scoring.OtherManual}
	sub.Maintenance = models.RemarkInput{}
	sub.ActionPlan = models.RemarkInput{Preset: "Call the landlord"}

	_, err := svc.Submit(context.Background(), sub)
	var verr *errs.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "branch is required")
	assert.Contains(t, verr.Messages, "date is missing or invalid")
	assert.Contains(t, verr.Messages, `Kitchen: "Cooking area clean" must be answered`)
	assert.Contains(t, verr.Messages, `Hygiene: unknown checklist item "Mopping done"`)
	assert.Contains(t, verr.Messages, `Observations: details are required when "Other (manual)" is selected`)
	assert.Contains(t, verr.Messages, "Maintenance: select an option or enter details")
	assert.Contains(t, verr.Messages, `Action plan: unknown option "Call the landlord"`)
	assert.Equal(t, 0, store.Len("unitAudits"))
}

func TestSubmit_ManualRemarksAndClamp(t *testing.T) {
	svc, _ := newTestService(t)
	sub := validSubmission()
	k, h, f := allAnswered(models.AnswerNo)
	sub.Kitchen, sub.Hygiene, sub.FoodSafety = k, h, f
	sub.Observations = models.RemarkInput{Manual: "Grease on the floor"}
	sub.Maintenance = models.RemarkInput{Preset: "Plumbing issue"}

	a, err := svc.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, 0, a.ScoreOutOf100)
	assert.Equal(t, -22, a.ScoreBreakdown.TotalBeforeClamp)
	assert.Equal(t, "Grease on the floor", a.Observations)
	assert.Equal(t, "Plumbing issue", a.Maintenance)
}

func TestPreview_ReportsProblemsWithoutWriting(t *testing.T) {
	svc, store := newTestService(t)
	sub := validSubmission()
	sub.Auditor = ""

	p := svc.Preview(sub)
	assert.Equal(t, 100, p.ScoreOutOf100)
	assert.Equal(t, []string{"auditor is required"}, p.Problems)
	assert.Equal(t, 0, store.Len("unitAudits"))
}

func TestQueries(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)
	sub := validSubmission()
	sub.Date = "20/03/2024"
	sub.Observations = models.RemarkInput{Preset: "Pest activity noticed"}
	second, err := svc.Submit(ctx, sub)
	require.NoError(t, err)

	exists, err := svc.Exists(ctx, "Koramangala", "2024-03-15")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = svc.Exists(ctx, "Koramangala", "16/03/2024")
	require.NoError(t, err)
	assert.False(t, exists)

	list, err := svc.List(ctx, "Koramangala", "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	day, err := svc.List(ctx, "Koramangala", "15/03/2024")
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, first.ID, day[0].ID)

	latest, err := svc.Latest(ctx, "Koramangala")
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	summary, err := svc.Summary(ctx, "Koramangala", "01/03/2024", "31/03/2024")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 100, summary.Highest)
	assert.Equal(t, 78, summary.Lowest)
	assert.Equal(t, first.ID, summary.Audits[0].ID)
}

func TestQueries_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Exists(ctx, "", "")
	var verr *errs.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Messages, 2)

	_, err = svc.List(ctx, "Koramangala", "not a date")
	assert.True(t, errors.As(err, &verr))

	_, err = svc.Summary(ctx, "Koramangala", "20/03/2024", "01/03/2024")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"from date must not be after to date"}, verr.Messages)

	_, err = svc.Latest(ctx, "Nowhere")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
