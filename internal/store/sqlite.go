package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/brandloom/brandloom/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS journeys (
			journey_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			saved_at DATETIME NOT NULL,
			payload TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_journeys_saved_at ON journeys(saved_at)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// CreateJourney stores a new snapshot under a fresh id.
func (s *SQLiteStore) CreateJourney(ctx context.Context, name, payload string) (string, error) {
	id := "j_" + uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO journeys (journey_id, name, saved_at, payload) VALUES (?, ?, ?, ?)`,
		id, name, time.Now().UTC(), payload,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create journey: %w", err)
	}
	return id, nil
}

// UpdateJourney overwrites an existing snapshot in place.
func (s *SQLiteStore) UpdateJourney(ctx context.Context, id, name, payload string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE journeys SET name = ?, saved_at = ?, payload = ? WHERE journey_id = ?`,
		name, time.Now().UTC(), payload, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update journey: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update journey: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("journey %s not found", id)
	}
	return nil
}

// GetJourney returns the snapshot, or nil when the id is unknown.
func (s *SQLiteStore) GetJourney(ctx context.Context, id string) (*domain.Journey, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT journey_id, name, saved_at, payload FROM journeys WHERE journey_id = ?`, id)

	var j domain.Journey
	if err := row.Scan(&j.ID, &j.Name, &j.SavedAt, &j.Payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get journey: %w", err)
	}
	return &j, nil
}

// ListJourneys returns all snapshots ordered by savedAt descending.
func (s *SQLiteStore) ListJourneys(ctx context.Context) ([]domain.JourneyListItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT journey_id, name, saved_at FROM journeys ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list journeys: %w", err)
	}
	defer rows.Close()

	items := []domain.JourneyListItem{}
	for rows.Next() {
		var it domain.JourneyListItem
		if err := rows.Scan(&it.ID, &it.Name, &it.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journey: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)
