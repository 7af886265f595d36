// Package storage provides SQLite-based persistence for comparison runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pathlab/internal/bench"
	"github.com/vovakirdan/pathlab/internal/grid"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunSummary is one stored comparison run.
type RunSummary struct {
	ID              string
	Seed            uint64
	Rows            int
	Cols            int
	WallProbability float64
	Start           grid.Cell
	Destination     grid.Cell
	Reachable       int
	BestEdges       int // -1 when the destination was unreachable
	CreatedAt       time.Time
}

// ResultEntry is one strategy's outcome within a stored run.
type ResultEntry struct {
	RunID     string
	Position  int
	Strategy  string
	Found     bool
	Movements int
	Work      int
	Expanded  int
	Optimal   bool
	Elapsed   time.Duration
}

// StrategyStats aggregates every stored result of one strategy.
type StrategyStats struct {
	Strategy     string
	Runs         int
	Found        int
	Optimal      int
	AvgWork      float64
	AvgMovements float64 // over runs that found a path
	AvgElapsed   time.Duration
	LastRun      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL DEFAULT 0,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			wall_probability REAL NOT NULL DEFAULT 0,
			start_row INTEGER NOT NULL,
			start_col INTEGER NOT NULL,
			dest_row INTEGER NOT NULL,
			dest_col INTEGER NOT NULL,
			reachable INTEGER NOT NULL,
			best_edges INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS run_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			strategy TEXT NOT NULL,
			found INTEGER NOT NULL,
			movements INTEGER NOT NULL,
			work INTEGER NOT NULL,
			expanded INTEGER NOT NULL,
			optimal INTEGER NOT NULL,
			elapsed_ns INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_run_results_run ON run_results(run_id, position);
		CREATE INDEX IF NOT EXISTS idx_run_results_strategy ON run_results(strategy);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReport records a comparison run and every strategy row in one
// transaction. Returns the generated run ID.
func (s *Store) SaveReport(ctx context.Context, r *bench.Report) (string, error) {
	if r == nil || r.Grid == nil {
		return "", errors.New("storage: cannot save empty report")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs
		 (id, seed, rows, cols, wall_probability, start_row, start_col, dest_row, dest_col, reachable, best_edges, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		int64(r.Seed), // stored bit-for-bit; SQLite has no unsigned type
		r.Grid.Rows(),
		r.Grid.Cols(),
		r.WallProbability,
		r.Start.Row, r.Start.Col,
		r.Destination.Row, r.Destination.Col,
		r.Reachable,
		r.BestEdges,
		createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	for i, row := range r.Results {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO run_results
			 (run_id, position, strategy, found, movements, work, expanded, optimal, elapsed_ns)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id,
			i,
			row.Strategy.String(),
			row.Result.Found(),
			row.Movements(),
			row.Result.Work,
			len(row.Result.Expanded),
			row.Optimal,
			row.Elapsed.Nanoseconds(),
		)
		if err != nil {
			return "", fmt.Errorf("storage: cannot save result %s: %w", row.Strategy, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// Ensure Store implements ReportSaver
var _ bench.ReportSaver = (*Store)(nil)

const runColumns = `id, seed, rows, cols, wall_probability, start_row, start_col,
	dest_row, dest_col, reachable, best_edges, created_at`

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a single run. Returns nil if it does not exist.
func (s *Store) RunByID(ctx context.Context, id string) (*RunSummary, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// RunResults retrieves the strategy rows of one run in report order.
func (s *Store) RunResults(ctx context.Context, runID string) ([]ResultEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, position, strategy, found, movements, work, expanded, optimal, elapsed_ns
		 FROM run_results
		 WHERE run_id = ?
		 ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var (
			e         ResultEntry
			elapsedNs int64
		)
		if err := rows.Scan(&e.RunID, &e.Position, &e.Strategy, &e.Found, &e.Movements,
			&e.Work, &e.Expanded, &e.Optimal, &elapsedNs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Elapsed = time.Duration(elapsedNs)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// StrategyStats retrieves aggregated statistics for every strategy that
// has been run, sorted by strategy name.
func (s *Store) StrategyStats(ctx context.Context) ([]StrategyStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.strategy,
		        COUNT(*),
		        SUM(r.found),
		        SUM(r.optimal),
		        AVG(r.work),
		        COALESCE(AVG(CASE WHEN r.found THEN r.movements END), 0),
		        AVG(r.elapsed_ns),
		        MAX(u.created_at)
		 FROM run_results r
		 JOIN runs u ON u.id = r.run_id
		 GROUP BY r.strategy
		 ORDER BY r.strategy`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get strategy stats: %w", err)
	}
	defer rows.Close()

	var stats []StrategyStats
	for rows.Next() {
		var (
			st         StrategyStats
			avgElapsed float64
			lastRun    any
		)
		if err := rows.Scan(&st.Strategy, &st.Runs, &st.Found, &st.Optimal,
			&st.AvgWork, &st.AvgMovements, &avgElapsed, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.AvgElapsed = time.Duration(avgElapsed)
		st.LastRun = parseTimestamp(lastRun)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// DeleteRun removes a run and its results.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM run_results WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete results: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// Prune keeps the newest keep runs and deletes the rest.
// Returns the number of runs removed.
func (s *Store) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM runs ORDER BY created_at DESC, rowid DESC LIMIT -1 OFFSET ?`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query old runs: %w", err)
	}
	var stale []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stale = append(stale, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for _, id := range stale {
		if err := s.DeleteRun(ctx, id); err != nil {
			return 0, err
		}
	}
	return len(stale), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunSummary, error) {
	var (
		run       RunSummary
		seed      int64
		createdAt any
	)
	err := sc.Scan(
		&run.ID,
		&seed,
		&run.Rows,
		&run.Cols,
		&run.WallProbability,
		&run.Start.Row, &run.Start.Col,
		&run.Destination.Row, &run.Destination.Col,
		&run.Reachable,
		&run.BestEdges,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return run, err
	}
	if err != nil {
		return run, fmt.Errorf("storage: cannot scan run: %w", err)
	}
	run.Seed = uint64(seed)
	run.CreatedAt = parseTimestamp(createdAt)
	return run, nil
}

// parseTimestamp handles both time.Time and string datetimes.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
