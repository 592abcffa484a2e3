// Package db provides PostgreSQL storage for scoring runs and results.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/grammar-scorer/internal/types"
)

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

// Run is a stored scoring run.
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Kind        string     `json:"kind"` // "score" or "batch"
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CreateRun creates a new scoring run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, kind string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO scoring_runs (kind, status)
		 VALUES ($1, 'running')
		 RETURNING id`,
		kind,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a scoring run as completed
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE scoring_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveResult stores one scored item for a run. Metrics are stored as JSONB so
// ad-hoc queries can reach individual sub-metrics.
func (db *DB) SaveResult(ctx context.Context, runID uuid.UUID, identifier string, result *types.ScoreResult, bundle *types.MetricBundle) error {
	metricsJSON, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO scoring_results (run_id, identifier, score, grade, error_count, word_count, metrics)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (run_id, identifier) DO UPDATE
		 SET score = $3, grade = $4, error_count = $5, word_count = $6, metrics = $7, created_at = NOW()`,
		runID, identifier, result.Score, string(result.Grade), result.ErrorCount, result.WordCount, metricsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save result %s: %w", identifier, err)
	}
	return nil
}

// SaveFailure stores one failed item for a run.
func (db *DB) SaveFailure(ctx context.Context, runID uuid.UUID, failure *types.FailureRecord) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO scoring_failures (run_id, identifier, stage, message)
		 VALUES ($1, $2, $3, $4)`,
		runID, failure.Identifier, string(failure.Stage), failure.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to save failure %s: %w", failure.Identifier, err)
	}
	return nil
}

// GetRun retrieves a scoring run by ID
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, kind, status, created_at, completed_at
		 FROM scoring_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Kind, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// GetResults retrieves all stored results for a run, ordered by identifier.
func (db *DB) GetResults(ctx context.Context, runID uuid.UUID) ([]StoredResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT identifier, score, grade, error_count, word_count, metrics
		 FROM scoring_results WHERE run_id = $1 ORDER BY identifier`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []StoredResult
	for rows.Next() {
		var r StoredResult
		if err := rows.Scan(&r.Identifier, &r.Score, &r.Grade, &r.ErrorCount, &r.WordCount, &r.Metrics); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}
	return results, nil
}

// StoredResult is one row of the scoring_results table.
type StoredResult struct {
	Identifier string          `json:"identifier"`
	Score      float64         `json:"score"`
	Grade      string          `json:"grade"`
	ErrorCount int             `json:"error_count"`
	WordCount  int             `json:"word_count"`
	Metrics    json.RawMessage `json:"metrics"`
}
