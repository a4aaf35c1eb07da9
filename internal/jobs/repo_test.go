package jobs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahil9505/JobFinder/pkg/database"
	"github.com/Sahil9505/JobFinder/pkg/models"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()

	db, err := database.Open(database.Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(db))
	return NewRepo(db)
}

func TestRepoCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	job := models.Job{
		ID:       uuid.NewString(),
		Title:    "Backend Developer",
		Company:  "Razorpay",
		Location: "Bangalore",
		City:     "Bangalore",
		Type:     models.JobTypeJob,
		Salary:   "₹12 LPA – ₹18 LPA",
		Skills:   []string{"Go", "PostgreSQL"},
	}
	require.NoError(t, repo.Create(ctx, job))

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, job.Title, got.Title)
	assert.Equal(t, job.City, got.City)
	assert.Equal(t, "India", got.Country, "country defaults to India")
	assert.Equal(t, "internal", got.ApplyType)
	assert.Equal(t, job.Skills, got.Skills)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRepoGetMissing(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetByID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepoListAndDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for _, title := range []string{"A", "B", "C"} {
		id := uuid.NewString()
		ids = append(ids, id)
		require.NoError(t, repo.Create(ctx, models.Job{
			ID: id, Title: title, Company: "Acme", Location: "Pune",
			Type: models.JobTypeJob,
		}))
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	deleted, err := repo.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.False(t, deleted, "second delete finds nothing")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSeedIfEmpty(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	n, err := SeedIfEmpty(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, len(seedJobs), n)

	// idempotent: a populated table is left alone
	n, err = SeedIfEmpty(ctx, repo)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seedJobs), count)
}
