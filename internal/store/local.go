package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
)

var _ Store = (*LocalStore)(nil)

// LocalStore keeps layout snapshots in a single SQLite file.
type LocalStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
	logger *zap.Logger
}

// NewLocalStore opens the snapshot database at path, creating the file and
// its directory when missing.
func NewLocalStore(path string, logger *zap.Logger) (*LocalStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		// NORMAL is safe under WAL and much faster than FULL.
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			logger.Debug("pragma failed", zap.String("pragma", pragma), zap.Error(err))
		}
	}

	s := &LocalStore{db: db, dbPath: path, logger: logger}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("snapshot store ready", zap.String("path", path))
	return s, nil
}

// initialize creates the required tables.
func (s *LocalStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		taken_at INTEGER NOT NULL -- unix seconds
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_taken_at ON snapshots(taken_at);

	CREATE TABLE IF NOT EXISTS monitors (
		snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		monitor_id TEXT NOT NULL,
		pos_x INTEGER NOT NULL, -- raw unsigned 32-bit pattern
		pos_y INTEGER NOT NULL, -- raw unsigned 32-bit pattern
		width INTEGER NOT NULL DEFAULT 0,
		height INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (snapshot_id, monitor_id)
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *LocalStore) Path() string {
	return s.dbPath
}

// ListSnapshots returns every stored snapshot in insertion order.
func (s *LocalStore) ListSnapshots(ctx context.Context) ([]SnapshotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, taken_at FROM snapshots ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []SnapshotInfo
	for rows.Next() {
		var (
			id      string
			takenAt int64
		)
		if err := rows.Scan(&id, &takenAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snaps = append(snaps, SnapshotInfo{ID: id, TakenAt: time.Unix(takenAt, 0)})
	}
	return snaps, rows.Err()
}

// ReadMonitors returns the monitor entries of one snapshot in recorded
// order, with coordinates already reinterpreted as signed values.
func (s *LocalStore) ReadMonitors(ctx context.Context, snapshotID string) ([]align.Monitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT monitor_id, pos_x, pos_y, width, height
		 FROM monitors
		 WHERE snapshot_id = ?
		 ORDER BY rowid`,
		snapshotID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read monitors: %w", err)
	}
	defer rows.Close()

	var monitors []align.Monitor
	for rows.Next() {
		var (
			id            string
			rawX, rawY    int64
			width, height int64
		)
		if err := rows.Scan(&id, &rawX, &rawY, &width, &height); err != nil {
			return nil, fmt.Errorf("failed to scan monitor row: %w", err)
		}
		monitors = append(monitors, align.Monitor{
			ID:     id,
			X:      signedCoord(rawX),
			Y:      signedCoord(rawY),
			Width:  uint32(width),
			Height: uint32(height),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if monitors == nil {
		// Distinguish an unknown snapshot from an empty one.
		var n int
		if err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM snapshots WHERE id = ?`, snapshotID).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to check snapshot: %w", err)
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, snapshotID)
		}
	}
	return monitors, nil
}

// WriteField sets one monitor's coordinate on one axis. Each call is a
// single atomic field update; the monitor row must already exist.
func (s *LocalStore) WriteField(ctx context.Context, snapshotID, monitorID string, axis align.Axis, value int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	column := "pos_x"
	if axis == align.AxisY {
		column = "pos_y"
	}
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE monitors SET %s = ? WHERE snapshot_id = ? AND monitor_id = ?`, column),
		rawCoord(value), snapshotID, monitorID,
	)
	if err != nil {
		return fmt.Errorf("failed to write %s of %s: %w", column, monitorID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to confirm write: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s in snapshot %s", ErrMonitorNotFound, monitorID, snapshotID)
	}
	s.logger.Debug("field written",
		zap.String("snapshot", snapshotID),
		zap.String("monitor", monitorID),
		zap.String("axis", string(axis)),
		zap.Int32("value", value))
	return nil
}

// ImportSnapshot records a new snapshot and returns its generated id.
func (s *LocalStore) ImportSnapshot(ctx context.Context, takenAt time.Time, monitors []align.Monitor) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to start import transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, taken_at) VALUES (?, ?)`,
		id, takenAt.Unix(),
	); err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}
	for _, m := range monitors {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO monitors (snapshot_id, monitor_id, pos_x, pos_y, width, height)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, m.ID, rawCoord(m.X), rawCoord(m.Y), int64(m.Width), int64(m.Height),
		); err != nil {
			return "", fmt.Errorf("failed to insert monitor %s: %w", m.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit import: %w", err)
	}

	s.logger.Debug("snapshot imported",
		zap.String("id", id),
		zap.Time("taken_at", takenAt),
		zap.Int("monitors", len(monitors)))
	return id, nil
}
