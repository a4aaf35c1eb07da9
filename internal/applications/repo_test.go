package applications

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahil9505/JobFinder/internal/auth"
	"github.com/Sahil9505/JobFinder/internal/jobs"
	"github.com/Sahil9505/JobFinder/pkg/database"
	"github.com/Sahil9505/JobFinder/pkg/models"
)

type testFixture struct {
	repo   *Repo
	userID string
	jobID  string
}

func newTestFixture(t *testing.T) testFixture {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(database.Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))

	userID := uuid.NewString()
	require.NoError(t, auth.NewRepo(db).CreateUser(ctx, auth.User{
		ID: userID, Name: "Asha", Email: "asha@example.com",
		PasswordHash: "x", Role: "user",
	}))

	jobID := uuid.NewString()
	require.NoError(t, jobs.NewRepo(db).Create(ctx, models.Job{
		ID: jobID, Title: "Backend Developer", Company: "Razorpay",
		Location: "Bangalore", Type: models.JobTypeJob,
	}))

	return testFixture{repo: NewRepo(db), userID: userID, jobID: jobID}
}

func newApplication(f testFixture) models.Application {
	return models.Application{
		ID:       uuid.NewString(),
		UserID:   f.userID,
		JobID:    f.jobID,
		FullName: "Asha K",
		Email:    "asha@example.com",
		Skills:   []string{"Go"},
		Status:   models.ApplicationApplied,
	}
}

func TestApplyAndList(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	app := newApplication(f)
	require.NoError(t, f.repo.Create(ctx, app))

	got, err := f.repo.GetByUserAndJob(ctx, f.userID, f.jobID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, app.ID, got.ID)
	assert.Equal(t, models.ApplicationApplied, got.Status)

	list, err := f.repo.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Backend Developer", list[0].JobTitle)
	assert.Equal(t, "Razorpay", list[0].JobCompany)
	assert.Equal(t, []string{"Go"}, list[0].Skills)
}

func TestDuplicateActiveApplicationRejected(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Create(ctx, newApplication(f)))

	err := f.repo.Create(ctx, newApplication(f))
	assert.Error(t, err, "one active application per user per job")
}

func TestCancelAndReapply(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	app := newApplication(f)
	app.ResumeURL = "/uploads/resumes/original.pdf"
	require.NoError(t, f.repo.Create(ctx, app))

	require.NoError(t, f.repo.Cancel(ctx, app.ID))
	assert.Error(t, f.repo.Cancel(ctx, app.ID), "cancel is only valid while active")

	got, err := f.repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationCancelled, got.Status)

	// reapply reuses the row; empty resume keeps the old upload
	app.FullName = "Asha Kumar"
	app.ResumeURL = ""
	require.NoError(t, f.repo.Reapply(ctx, app))

	list, err := f.repo.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.ApplicationApplied, list[0].Status)
	assert.Equal(t, "Asha Kumar", list[0].FullName)
	assert.Equal(t, "/uploads/resumes/original.pdf", list[0].ResumeURL)
}

func TestReapplyRequiresCancelled(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	app := newApplication(f)
	require.NoError(t, f.repo.Create(ctx, app))

	assert.Error(t, f.repo.Reapply(ctx, app))
}
