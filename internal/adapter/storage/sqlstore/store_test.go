package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/mariepimienta/task-app/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	store, err := New(db)
	require.NoError(t, err)
	return store
}

func TestStore_Ping(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Ping(context.Background()))
}

func TestStore_TasksRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2024, time.January, 8, 10, 30, 0, 0, time.UTC)
	tasks := []domain.Task{
		{
			ID:            "task_1",
			Title:         "Buy milk",
			DayOfWeek:     domain.Monday,
			TimeOfDay:     domain.AM,
			Order:         0,
			CreatedAt:     created,
			UpdatedAt:     created,
			WeekStartDate: "2024-01-08",
		},
		{
			ID:            "task_2",
			Title:         "Coworking spaces",
			Completed:     true,
			DayOfWeek:     domain.Monday,
			TimeOfDay:     domain.PM,
			ParentTaskID:  "task_1",
			Order:         1,
			CreatedAt:     created,
			UpdatedAt:     created,
			WeekStartDate: "2024-01-08",
		},
	}

	require.NoError(t, store.SaveTasks(ctx, tasks))

	got, err := store.GetTasks(ctx)
	require.NoError(t, err)
	require.Equal(t, tasks, got)
}

func TestStore_GetTasks_EmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	tasks, err := store.GetTasks(context.Background())

	require.NoError(t, err)
	require.NotNil(t, tasks)
	require.Empty(t, tasks)
}

func TestStore_SaveTasks_OverwritesWholeCollection(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTasks(ctx, []domain.Task{{ID: "task_old", Title: "old"}}))
	require.NoError(t, store.SaveTasks(ctx, []domain.Task{{ID: "task_new", Title: "new"}}))

	got, err := store.GetTasks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "task_new", got[0].ID)
}

func TestStore_SaveTasks_NilBecomesEmptyList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTasks(ctx, []domain.Task{{ID: "task_1"}}))
	require.NoError(t, store.SaveTasks(ctx, nil))

	got, err := store.GetTasks(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestStore_GetSettings_DefaultsWhenUnset(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings(context.Background())

	require.NoError(t, err)
	require.Equal(t, domain.DefaultSettings(), settings)
}

func TestStore_SettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	settings := domain.AppSettings{
		WakeUpTime:              "5am",
		ShowTasks:               true,
		GoogleCalendarConnected: true,
		GoogleCalendarTokens: &domain.GoogleCalendarTokens{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiryDate:   1704672000000,
		},
	}

	require.NoError(t, store.SaveSettings(ctx, settings))

	got, err := store.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, settings, got)
}

func TestStore_CalendarEventsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	start := time.Date(2024, time.January, 10, 14, 0, 0, 0, time.UTC)
	events := []domain.CalendarEvent{
		{
			ID:        "evt_1",
			Title:     "Standup",
			StartTime: start,
			EndTime:   start.Add(30 * time.Minute),
			Source:    domain.CalendarSourceGoogle,
			Visible:   true,
		},
	}

	require.NoError(t, store.SaveCalendarEvents(ctx, events))

	got, err := store.GetCalendarEvents(ctx)
	require.NoError(t, err)
	require.Equal(t, events, got)
}

func TestStore_GetBlob_RejectsNewerSchemaVersion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		`INSERT INTO planner_blobs (blob_key, schema_version, data) VALUES (?, ?, ?)`,
		keyTasks, schemaVersion+1, "[]")
	require.NoError(t, err)

	_, err = store.GetTasks(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "newer than supported")
}

func TestStore_GetBlob_RejectsMalformedData(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		`INSERT INTO planner_blobs (blob_key, schema_version, data) VALUES (?, ?, ?)`,
		keyTasks, schemaVersion, "{not json")
	require.NoError(t, err)

	_, err = store.GetTasks(ctx)
	require.Error(t, err)
}
