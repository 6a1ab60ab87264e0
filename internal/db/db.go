// Package db provides PostgreSQL storage for review schedule articles and
// batch generation runs.
package db

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the tables and indexes when they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// CreateRun creates a new generation run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, sourcePath, sourceHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO generation_runs (source_path, source_hash, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		sourcePath, sourceHash, RunStatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a generation run as finished with its final counts
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string, counts RunCounts) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE generation_runs
		 SET status = $1, generated = $2, rejected = $3, failed = $4, completed_at = NOW()
		 WHERE id = $5`,
		status, counts.Generated, counts.Rejected, counts.Failed, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}
	return nil
}

// GetRun retrieves a generation run by ID
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, source_path, source_hash, status, generated, rejected, failed, created_at, completed_at
		 FROM generation_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.SourcePath, &run.SourceHash, &run.Status,
		&run.Generated, &run.Rejected, &run.Failed, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves the most recent generation runs
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, source_path, source_hash, status, generated, rejected, failed, created_at, completed_at
		 FROM generation_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.SourcePath, &run.SourceHash, &run.Status,
			&run.Generated, &run.Rejected, &run.Failed, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
