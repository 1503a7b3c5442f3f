package auditsRepo

import (
	"context"
	"testing"
	"time"

	"branchaudit/database/docstore"
	"branchaudit/models"
	"branchaudit/services/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steppingClock() func() time.Time {
	t := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func TestUnitAuditRepo_CreateAndQuery(t *testing.T) {
	ctx := context.Background()
	repo := NewUnitAuditRepoWithClock(ctx, docstore.NewMemoryStore(), steppingClock())

	first := &models.UnitAudit{Branch: "Koramangala", Date: "01/06/2024", ScoreOutOf100: 70}
	id, err := repo.Create(ctx, first)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, first.ID)
	assert.False(t, first.Timestamp.IsZero())

	second := &models.UnitAudit{Branch: "Koramangala", Date: "02/06/2024", ScoreOutOf100: 90}
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.UnitAudit{Branch: "Indiranagar", Date: "01/06/2024"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 70, got.ScoreOutOf100)

	all, err := repo.GetByBranch(ctx, "Koramangala", "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	day, err := repo.GetByBranch(ctx, "Koramangala", "01/06/2024")
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, id, day[0].ID)

	latest, err := repo.GetLatestByBranch(ctx, "Koramangala")
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestUnitAuditRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUnitAuditRepo(ctx, docstore.NewMemoryStore())

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = repo.GetLatestByBranch(ctx, "Nowhere")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
