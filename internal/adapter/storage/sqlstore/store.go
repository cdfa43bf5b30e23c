package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mariepimienta/task-app/internal/core/domain"
	"github.com/mariepimienta/task-app/internal/core/ports"
)

// Fixed blob keys of the persisted layout.
const (
	keyTasks          = "tasks"
	keySettings       = "settings"
	keyCalendarEvents = "calendarEvents"
)

// schemaVersion tags every written blob so a future layout change can
// migrate on read. Version 1 is the camelCase JSON array/object layout
// shared with the clients.
const schemaVersion = 1

const mysqlSchema = `
CREATE TABLE IF NOT EXISTS planner_blobs (
  blob_key VARCHAR(64) PRIMARY KEY,
  schema_version INT NOT NULL,
  data MEDIUMTEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
);`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS planner_blobs (
  blob_key TEXT PRIMARY KEY,
  schema_version INTEGER NOT NULL,
  data TEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Store persists the three planner collections as JSON blobs in a
// single key/value table.
type Store struct {
	db *sqlx.DB
}

var _ ports.Storage = (*Store)(nil)

// New creates the blob table if needed and returns the store.
func New(db *sqlx.DB) (*Store, error) {
	schema := mysqlSchema
	if db.DriverName() == "sqlite3" {
		schema = sqliteSchema
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create planner_blobs table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type blobRow struct {
	SchemaVersion int    `db:"schema_version"`
	Data          string `db:"data"`
}

func (s *Store) getBlob(ctx context.Context, key string, out any) (bool, error) {
	var row blobRow
	err := s.db.GetContext(ctx, &row,
		"SELECT schema_version, data FROM planner_blobs WHERE blob_key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if row.SchemaVersion > schemaVersion {
		return false, fmt.Errorf("blob %q has schema version %d, newer than supported %d",
			key, row.SchemaVersion, schemaVersion)
	}
	if err := json.Unmarshal([]byte(row.Data), out); err != nil {
		return false, fmt.Errorf("decode blob %q: %w", key, err)
	}
	return true, nil
}

func (s *Store) setBlob(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode blob %q: %w", key, err)
	}

	query := `INSERT INTO planner_blobs (blob_key, schema_version, data) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE schema_version = VALUES(schema_version), data = VALUES(data)`
	if s.db.DriverName() == "sqlite3" {
		query = `INSERT INTO planner_blobs (blob_key, schema_version, data) VALUES (?, ?, ?)
ON CONFLICT(blob_key) DO UPDATE SET schema_version = excluded.schema_version, data = excluded.data`
	}
	_, err = s.db.ExecContext(ctx, query, key, schemaVersion, string(data))
	return err
}

func (s *Store) GetTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if _, err := s.getBlob(ctx, keyTasks, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (s *Store) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return s.setBlob(ctx, keyTasks, tasks)
}

func (s *Store) GetSettings(ctx context.Context) (domain.AppSettings, error) {
	settings := domain.DefaultSettings()
	if _, err := s.getBlob(ctx, keySettings, &settings); err != nil {
		return domain.AppSettings{}, err
	}
	return settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	return s.setBlob(ctx, keySettings, settings)
}

func (s *Store) GetCalendarEvents(ctx context.Context) ([]domain.CalendarEvent, error) {
	var events []domain.CalendarEvent
	if _, err := s.getBlob(ctx, keyCalendarEvents, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.CalendarEvent{}
	}
	return events, nil
}

func (s *Store) SaveCalendarEvents(ctx context.Context, events []domain.CalendarEvent) error {
	if events == nil {
		events = []domain.CalendarEvent{}
	}
	return s.setBlob(ctx, keyCalendarEvents, events)
}
