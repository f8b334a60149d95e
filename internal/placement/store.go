// Package placement persists window geometry across sessions so a
// restored window reopens where it was closed. The chrome layer itself
// keeps geometry in memory only; this store is the application-side
// complement that seeds and drains it.
package placement

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite

	"github.com/bnema/chromeless/internal/chrome"
)

const schema = `
CREATE TABLE IF NOT EXISTS window_placement (
	role       TEXT PRIMARY KEY,
	x          INTEGER NOT NULL,
	y          INTEGER NOT NULL,
	width      INTEGER NOT NULL,
	height     INTEGER NOT NULL,
	maximized  INTEGER NOT NULL DEFAULT 0,
	updated_at TIMESTAMP NOT NULL
);`

// ErrNotFound is returned when a role has no stored placement.
var ErrNotFound = errors.New("placement: no stored geometry for role")

// Record is one window's stored placement. Role identifies the window
// across runs ("main", "settings", ...).
type Record struct {
	Role      string
	Bounds    chrome.Bounds
	Maximized bool
	UpdatedAt time.Time
}

// Store persists window placements in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the placement database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("placement database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create placement directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open placement database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to placement database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize placement schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save upserts the placement for a role. Zero-area bounds are rejected
// so a crashed window cannot poison the next start.
func (s *Store) Save(ctx context.Context, rec Record) error {
	if rec.Role == "" {
		return fmt.Errorf("placement role cannot be empty")
	}
	if rec.Bounds.Empty() {
		return fmt.Errorf("refusing to save empty bounds for role %q", rec.Role)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO window_placement (role, x, y, width, height, maximized, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(role) DO UPDATE SET
			x = excluded.x, y = excluded.y,
			width = excluded.width, height = excluded.height,
			maximized = excluded.maximized,
			updated_at = excluded.updated_at`,
		rec.Role, rec.Bounds.X, rec.Bounds.Y, rec.Bounds.Width, rec.Bounds.Height,
		boolToInt(rec.Maximized), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save placement for role %q: %w", rec.Role, err)
	}
	return nil
}

// Load returns the stored placement for a role.
func (s *Store) Load(ctx context.Context, role string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT x, y, width, height, maximized, updated_at
		FROM window_placement WHERE role = ?`, role)

	rec := Record{Role: role}
	var maximized int
	err := row.Scan(&rec.Bounds.X, &rec.Bounds.Y, &rec.Bounds.Width, &rec.Bounds.Height,
		&maximized, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("role %q: %w", role, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to load placement for role %q: %w", role, err)
	}
	rec.Maximized = maximized != 0
	return rec, nil
}

// Delete removes the stored placement for a role. Unknown roles are a
// no-op.
func (s *Store) Delete(ctx context.Context, role string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM window_placement WHERE role = ?`, role); err != nil {
		return fmt.Errorf("failed to delete placement for role %q: %w", role, err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
