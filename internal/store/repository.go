package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Chinmay4285/Stock-Comparer/internal/analyzer"
)

// ErrSnapshotNotFound indicates no stored analysis exists for a ticker.
var ErrSnapshotNotFound = errors.New("analysis snapshot not found")

// Repository persists analysis outcomes. The engine itself holds no
// state; persistence is purely an outer-layer concern used by the API
// history endpoint and the watchlist scheduler.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new snapshot repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Snapshot is one stored analysis outcome
type Snapshot struct {
	Ticker     string            `json:"ticker"`
	Kind       analyzer.Kind     `json:"kind"`
	AnalyzedAt time.Time         `json:"analyzed_at"`
	Outcome    *analyzer.Outcome `json:"outcome"`
}

// EnsureSchema creates the snapshot table if it does not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id          BIGSERIAL PRIMARY KEY,
			ticker      TEXT        NOT NULL,
			kind        TEXT        NOT NULL,
			analyzed_at TIMESTAMPTZ NOT NULL,
			outcome     JSONB       NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_analysis_snapshots_ticker
			ON analysis_snapshots (ticker, analyzed_at DESC);
	`

	if _, err := r.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure snapshot schema: %w", err)
	}
	return nil
}

// Save stores one analysis outcome
func (r *Repository) Save(ctx context.Context, outcome *analyzer.Outcome) error {
	payload, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}

	const query = `
		INSERT INTO analysis_snapshots (ticker, kind, analyzed_at, outcome)
		VALUES ($1, $2, $3, $4)
	`

	_, err = r.pool.Exec(ctx, query,
		outcome.Ticker, string(outcome.Kind), outcome.AnalyzedAt, payload)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Latest returns the most recent snapshot for a ticker
func (r *Repository) Latest(ctx context.Context, ticker string) (*Snapshot, error) {
	const query = `
		SELECT ticker, kind, analyzed_at, outcome
		FROM analysis_snapshots
		WHERE ticker = $1
		ORDER BY analyzed_at DESC
		LIMIT 1
	`

	snapshot, err := scanSnapshot(r.pool.QueryRow(ctx, query, ticker))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, ticker)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest snapshot: %w", err)
	}

	return snapshot, nil
}

// History returns up to limit snapshots for a ticker, newest first
func (r *Repository) History(ctx context.Context, ticker string, limit int) ([]*Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}

	const query = `
		SELECT ticker, kind, analyzed_at, outcome
		FROM analysis_snapshots
		WHERE ticker = $1
		ORDER BY analyzed_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, ticker, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot history: %w", err)
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	var snapshot Snapshot
	var kind string
	var payload []byte

	if err := row.Scan(&snapshot.Ticker, &kind, &snapshot.AnalyzedAt, &payload); err != nil {
		return nil, err
	}

	snapshot.Kind = analyzer.Kind(kind)
	if err := json.Unmarshal(payload, &snapshot.Outcome); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outcome: %w", err)
	}

	return &snapshot, nil
}
