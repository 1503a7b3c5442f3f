package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"branchaudit/database/docstore"
	auditsRepo "branchaudit/database/repository/audits"
	evaluationsRepo "branchaudit/database/repository/evaluations"
	"branchaudit/models"
	"branchaudit/services/audit"
	"branchaudit/services/errs"
	"branchaudit/services/evaluation"
	"branchaudit/services/guard"
	"branchaudit/services/scoring"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var start = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func TestApply_DoesNotMutateInput(t *testing.T) {
	s := New(KindUnitAudit, start)
	s, err := Apply(s, Action{Type: ActionSetChecklist, Category: scoring.CategoryKitchen, Item: "Cooking area clean", Value: "Yes"})
	require.NoError(t, err)

	next, err := Apply(s, Action{Type: ActionSetChecklist, Category: scoring.CategoryKitchen, Item: "Cooking area clean", Value: "No"})
	require.NoError(t, err)
	assert.Equal(t, "Yes", s.Checklist[scoring.CategoryKitchen]["Cooking area clean"])
	assert.Equal(t, "No", next.Checklist[scoring.CategoryKitchen]["Cooking area clean"])

	rated, err := Apply(s, Action{Type: ActionSetRating, Item: "Teamwork", Value: "Good"})
	require.NoError(t, err)
	assert.Empty(t, s.Ratings)
	assert.Equal(t, "Good", rated.Ratings["Teamwork"])
}

func TestApply_Transitions(t *testing.T) {
	s, err := ApplyAll(New(KindStaffEvaluation, start), []Action{
		{Type: ActionSelectBranch, Value: " Koramangala "},
		{Type: ActionSetCity, Value: "Bengaluru"},
		{Type: ActionSetAuditor, Value: "Priya"},
		{Type: ActionSetDate, Value: "2024-03-15"},
		{Type: ActionSetStaff, Field: "staffName", Value: "Asha"},
		{Type: ActionSetStaff, Field: "empCode", Value: "E01"},
		{Type: ActionSetStaff, Field: "designation", Value: "Steward"},
		{Type: ActionSetRating, Item: "Punctuality", Value: "Excellent"},
		{Type: ActionSetRatingRemark, Item: "Punctuality", Value: "Always early"},
		{Type: ActionSetFilter, Field: "from", Value: "1/3/2024"},
		{Type: ActionSetRemark, Field: "observations", Preset: scoring.OtherManual, Manual: "Loose tiles"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.Selection{Branch: "Koramangala", City: "Bengaluru", Auditor: "Priya", Date: "15/03/2024"}, s.Selection)
	assert.Equal(t, StaffDraft{StaffName: "Asha", EmpCode: "E01", Designation: "Steward"}, s.Staff)
	assert.Equal(t, "Always early", s.Ratings["Punctuality_remarks"])
	assert.Equal(t, "01/03/2024", s.Filter.From)
	assert.Equal(t, models.RemarkInput{Preset: scoring.OtherManual, Manual: "Loose tiles"}, s.Remarks["observations"])

	cleared, err := Apply(s, Action{Type: ActionSetRating, Item: "Punctuality", Value: ""})
	require.NoError(t, err)
	assert.NotContains(t, cleared.Ratings, "Punctuality")

	reset, err := Apply(s, Action{Type: ActionReset})
	require.NoError(t, err)
	assert.Equal(t, s.ID, reset.ID)
	assert.Equal(t, KindStaffEvaluation, reset.Kind)
	assert.Empty(t, reset.Ratings)
	assert.Empty(t, reset.Selection.Branch)
}

func TestApply_Rejects(t *testing.T) {
	s := New(KindUnitAudit, start)
	cases := []Action{
		{Type: "teleport"},
		{Type: ActionSetDate, Value: "31/02/2024"},
		{Type: ActionSetChecklist, Category: scoring.CategoryKitchen, Item: "Mopping done", Value: "Yes"},
		{Type: ActionSetChecklist, Category: scoring.CategoryKitchen, Item: "Cooking area clean", Value: "Maybe"},
		{Type: ActionSetRemark, Field: "weather"},
		{Type: ActionSetStaff, Field: "salary", Value: "1"},
		{Type: ActionSetRating, Item: "Attitude", Value: "Good"},
		{Type: ActionSetRating, Item: "Teamwork", Value: "Superb"},
		{Type: ActionSetFilter, Field: "to", Value: "someday"},
	}
	for _, a := range cases {
		_, err := Apply(s, a)
		var verr *errs.ValidationError
		assert.True(t, errors.As(err, &verr), "action %+v", a)
	}

	_, err := ApplyAll(s, []Action{{Type: ActionSetCity, Value: "Pune"}, {Type: "teleport"}})
	assert.Error(t, err)
}

func TestToSubmissions(t *testing.T) {
	s, err := ApplyAll(New(KindUnitAudit, start), []Action{
		{Type: ActionSelectBranch, Value: "Koramangala"},
		{Type: ActionSetChecklist, Category: scoring.CategoryHygiene, Item: "Washrooms clean", Value: "Yes"},
		{Type: ActionSetRemark, Field: "maintenance", Preset: "Plumbing issue"},
	})
	require.NoError(t, err)

	sub := s.ToUnitAuditSubmission()
	assert.Equal(t, "Koramangala", sub.Branch)
	assert.Equal(t, map[string]string{"Washrooms clean": "Yes"}, sub.Hygiene)
	assert.Nil(t, sub.Kitchen)
	assert.Equal(t, "Plumbing issue", sub.Maintenance.Preset)

	sub.Hygiene["Washrooms clean"] = "No"
	assert.Equal(t, "Yes", s.Checklist[scoring.CategoryHygiene]["Washrooms clean"])
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStore(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	s := New(KindUnitAudit, start)
	s.Selection.Branch = "Koramangala"
	require.NoError(t, store.Save(ctx, s))
	assert.Equal(t, time.Hour, mr.TTL(FormSessionPrefix+s.ID))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Koramangala", got.Selection.Branch)

	mr.FastForward(2 * time.Hour)
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, store.Save(ctx, s))
	require.NoError(t, store.Delete(ctx, s.ID))
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func newManager(t *testing.T) (*Manager, *docstore.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	sessions, _ := newRedisStore(t)
	records := docstore.NewMemoryStore()
	logger := zaptest.NewLogger(t)
	g := guard.New(records, logger)
	audits := audit.NewDefaultAuditService(auditsRepo.NewUnitAuditRepo(ctx, records), g, logger)
	evals := evaluation.NewDefaultEvaluationService(evaluationsRepo.NewStaffEvaluationRepo(ctx, records), g, nil, logger)
	m := NewManager(sessions, audits, evals, logger)
	m.Now = func() time.Time { return start }
	return m, records
}

func TestManager_SubmitEvaluation(t *testing.T) {
	m, records := newManager(t)
	ctx := context.Background()

	s, err := m.Create(ctx, KindStaffEvaluation)
	require.NoError(t, err)

	actions := []Action{
		{Type: ActionSelectBranch, Value: "Koramangala"},
		{Type: ActionSetCity, Value: "Bengaluru"},
		{Type: ActionSetAuditor, Value: "Priya"},
		{Type: ActionSetDate, Value: "15/03/2024"},
		{Type: ActionSetStaff, Field: "staffName", Value: "Asha"},
		{Type: ActionSetStaff, Field: "designation", Value: "Steward"},
	}
	for _, p := range scoring.StaffParameters[:4] {
		actions = append(actions, Action{Type: ActionSetRating, Item: p, Value: "Good"})
	}
	_, err = m.Update(ctx, s.ID, actions)
	require.NoError(t, err)

	// One parameter is still unrated: the submission fails and the session stays.
	_, err = m.Submit(ctx, s.ID)
	assert.True(t, errors.As(err, new(*errs.ValidationError)))
	_, err = m.Get(ctx, s.ID)
	require.NoError(t, err)

	_, err = m.Update(ctx, s.ID, []Action{{Type: ActionSetRating, Item: scoring.StaffParameters[4], Value: "Excellent"}})
	require.NoError(t, err)
	record, err := m.Submit(ctx, s.ID)
	require.NoError(t, err)
	e, ok := record.(*models.StaffEvaluation)
	require.True(t, ok)
	assert.Equal(t, 84, *e.ScoreOutOf100)
	assert.Equal(t, 1, records.Len("staffEvaluations"))

	_, err = m.Get(ctx, s.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestManager_UpdateRejectedLeavesSessionUnchanged(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	s, err := m.Create(ctx, KindUnitAudit)
	require.NoError(t, err)
	_, err = m.Update(ctx, s.ID, []Action{{Type: ActionSetCity, Value: "Pune"}, {Type: ActionSetDate, Value: "nope"}})
	require.Error(t, err)

	got, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Selection.City)

	_, err = m.Create(ctx, Kind("survey"))
	assert.Error(t, err)
	_, err = m.Update(ctx, "missing", nil)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
