package db

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"taskman/internal/core/domain"
)

func newTestRepository(t *testing.T) *TaskRepository {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	// A second pooled connection would see its own empty memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, ApplySchema(context.Background(), db))

	return NewTaskRepository(db)
}

func intPtr(value int) *int { return &value }

func strPtr(value string) *string { return &value }

func boolPtr(value bool) *bool { return &value }

func datePtr(value time.Time) *time.Time { return &value }

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	repo := newTestRepository(t)

	before := time.Now().UTC().Add(-time.Second)
	created, err := repo.Create(context.Background(), domain.CreateTaskInput{
		Title:    "Buy milk",
		Priority: intPtr(domain.DefaultPriority),
	})
	require.NoError(t, err)

	require.NotZero(t, created.ID)
	require.Equal(t, "Buy milk", created.Title)
	require.Nil(t, created.Description)
	require.False(t, created.Done)
	require.NotNil(t, created.Priority)
	require.Equal(t, 3, *created.Priority)
	require.Nil(t, created.DueDate)
	require.False(t, created.CreatedAt.Before(before))
}

func TestGetReturnsCreatedTask(t *testing.T) {
	repo := newTestRepository(t)

	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(context.Background(), domain.CreateTaskInput{
		Title:       "Ship release",
		Description: strPtr("cut the tag"),
		Done:        true,
		Priority:    intPtr(1),
		DueDate:     datePtr(dueDate),
	})
	require.NoError(t, err)

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)

	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "Ship release", got.Title)
	require.Equal(t, "cut the tag", *got.Description)
	require.True(t, got.Done)
	require.Equal(t, 1, *got.Priority)
	require.Equal(t, "2026-09-15", got.DueDate.Format("2006-01-02"))
}

func TestGetMissingTaskReturnsNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), 999)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestListFiltersAreCombined(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seed := []domain.CreateTaskInput{
		{Title: "Buy milk", Priority: intPtr(3)},
		{Title: "Buy bread", Description: strPtr("whole grain"), Done: true, Priority: intPtr(3)},
		{Title: "Call plumber", Description: strPtr("kitchen sink, buy parts"), Done: true, Priority: intPtr(1)},
	}
	for _, input := range seed {
		_, err := repo.Create(ctx, input)
		require.NoError(t, err)
	}

	// Substring match covers title OR description.
	got, err := repo.List(ctx, domain.TaskFilter{Query: "buy", Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Call plumber", got[0].Title)

	// Case matters.
	got, err = repo.List(ctx, domain.TaskFilter{Query: "Buy", Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = repo.List(ctx, domain.TaskFilter{Done: boolPtr(true), Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = repo.List(ctx, domain.TaskFilter{Done: boolPtr(true), Priority: intPtr(3), Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Buy bread", got[0].Title)

	got, err = repo.List(ctx, domain.TaskFilter{Query: "Buy", Done: boolPtr(true), Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Buy bread", got[0].Title)
}

func TestListOrdersByIDAndPaginates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three", "four"} {
		_, err := repo.Create(ctx, domain.CreateTaskInput{Title: title, Priority: intPtr(3)})
		require.NoError(t, err)
	}

	got, err := repo.List(ctx, domain.TaskFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "two", got[0].Title)
	require.Equal(t, "three", got[1].Title)
	require.Less(t, got[0].ID, got[1].ID)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CreateTaskInput{
		Title:       "Water plants",
		Description: strPtr("balcony only"),
		Priority:    intPtr(2),
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, domain.UpdateTaskInput{Done: boolPtr(true)})
	require.NoError(t, err)

	require.True(t, updated.Done)
	require.Equal(t, "Water plants", updated.Title)
	require.Equal(t, "balcony only", *updated.Description)
	require.Equal(t, 2, *updated.Priority)
	require.Nil(t, updated.DueDate)
	require.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestUpdateClearsNullableFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	dueDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, domain.CreateTaskInput{
		Title:       "Review PR",
		Description: strPtr("the big one"),
		Priority:    intPtr(4),
		DueDate:     datePtr(dueDate),
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, domain.UpdateTaskInput{
		DescriptionSet: true,
		PrioritySet:    true,
		DueDateSet:     true,
	})
	require.NoError(t, err)

	require.Nil(t, updated.Description)
	require.Nil(t, updated.Priority)
	require.Nil(t, updated.DueDate)
	require.Equal(t, "Review PR", updated.Title)
}

func TestUpdateMissingTaskReturnsNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Update(context.Background(), 42, domain.UpdateTaskInput{Done: boolPtr(true)})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CreateTaskInput{Title: "Throw away", Priority: intPtr(3)})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrTaskNotFound)

	_, err = repo.Get(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}
