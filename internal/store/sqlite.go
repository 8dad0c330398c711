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
	_ "modernc.org/sqlite"

	"github.com/danieljhkim/tileplan/internal/grid"
)

// SQLite keeps the quadrant ledger in a single SQLite database file. A
// quadrant counts as generated when its generation id is set; rows with a
// NULL generation exist only as placeholders and are ignored.
type SQLite struct {
	db *sql.DB
	mu sync.RWMutex
}

// OpenSQLite opens (creating if needed) the quadrant database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS quadrants (
		quadrant_x INTEGER NOT NULL,
		quadrant_y INTEGER NOT NULL,
		generation TEXT,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (quadrant_x, quadrant_y)
	);
	CREATE INDEX IF NOT EXISTS idx_quadrants_generation ON quadrants(generation);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create quadrants table: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) IsGenerated(ctx context.Context, p grid.Point) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM quadrants WHERE quadrant_x = ? AND quadrant_y = ? AND generation IS NOT NULL",
		p.X, p.Y,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to query quadrant %s: %w", p, err)
	}
	return n > 0, nil
}

func (s *SQLite) GeneratedInRange(ctx context.Context, bounds grid.RectBounds) (grid.PointSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT quadrant_x, quadrant_y FROM quadrants
		 WHERE generation IS NOT NULL
		   AND quadrant_x BETWEEN ? AND ?
		   AND quadrant_y BETWEEN ? AND ?`,
		bounds.TopLeft.X, bounds.BottomRight.X,
		bounds.TopLeft.Y, bounds.BottomRight.Y,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query range %s: %w", bounds, err)
	}
	defer rows.Close()
	return scanPoints(rows)
}

func (s *SQLite) AllGenerated(ctx context.Context) (grid.PointSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT quadrant_x, quadrant_y FROM quadrants WHERE generation IS NOT NULL")
	if err != nil {
		return nil, fmt.Errorf("failed to query generated quadrants: %w", err)
	}
	defer rows.Close()
	return scanPoints(rows)
}

// MarkGenerated records every point under one fresh generation id, so a
// whole executed step shares a single id. Re-marking an existing quadrant
// moves it to the new generation.
func (s *SQLite) MarkGenerated(ctx context.Context, points []grid.Point) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := newGenerationID()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO quadrants (quadrant_x, quadrant_y, generation, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(quadrant_x, quadrant_y)
		 DO UPDATE SET generation = excluded.generation, updated_at = excluded.updated_at`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, p.X, p.Y, id, now); err != nil {
			return "", fmt.Errorf("failed to mark quadrant %s: %w", p, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit generation %s: %w", id, err)
	}
	return id, nil
}

func scanPoints(rows *sql.Rows) (grid.PointSet, error) {
	found := grid.PointSet{}
	for rows.Next() {
		var p grid.Point
		if err := rows.Scan(&p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("failed to scan quadrant row: %w", err)
		}
		found.Add(p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quadrant rows: %w", err)
	}
	return found, nil
}

func newGenerationID() string {
	return uuid.NewString()
}
