package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/digital-land/harmonise-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/digital-land/harmonise-cli/internal/core/domain"
	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RunStore = (*Store)(nil)

// Store is the SQLite-backed run-history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if necessary) the history database. If path is
// empty, defaults to ~/.harmonise/history.db.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".harmonise", "history.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// WAL mode for better concurrency between a run and a history query.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CreateRun records a run before processing begins, so issue rows written
// during the run can reference it.
func (s *Store) CreateRun(ctx context.Context, run domain.Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, input_path, output_path, schema_path, rows, issues, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.InputPath, run.OutputPath, run.SchemaPath,
		run.Rows, run.Issues, run.StartedAt.UTC(), run.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// FinishRun records the final counts and duration for a run.
func (s *Store) FinishRun(ctx context.Context, runID string, rows, issues int, duration time.Duration) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE runs SET rows = ?, issues = ?, duration_ms = ? WHERE id = ?
	`, rows, issues, duration.Milliseconds(), runID)
	if err != nil {
		return fmt.Errorf("updating run: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("run %s: %w", runID, domain.ErrNotFound)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input_path, output_path, schema_path, rows, issues, started_at, duration_ms
		FROM runs ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		var run domain.Run
		var durationMS int64
		if err := rows.Scan(&run.ID, &run.InputPath, &run.OutputPath, &run.SchemaPath,
			&run.Rows, &run.Issues, &run.StartedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunIssues returns the issues recorded for a run, in insertion order.
func (s *Store) RunIssues(ctx context.Context, runID string) ([]domain.Issue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT row_number, field, datatype, value
		FROM run_issues WHERE run_id = ? ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying issues: %w", err)
	}
	defer rows.Close()

	var issues []domain.Issue
	for rows.Next() {
		var issue domain.Issue
		if err := rows.Scan(&issue.RowNumber, &issue.Field, &issue.Datatype, &issue.Value); err != nil {
			return nil, fmt.Errorf("scanning issue: %w", err)
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}

// IssueWriter returns an issue sink appending to the given run. The run
// must already exist via CreateRun.
func (s *Store) IssueWriter(runID string) driven.IssueWriter {
	return &issueWriter{store: s, runID: runID}
}

// issueWriter implements driven.IssueWriter over the run_issues table.
type issueWriter struct {
	store *Store
	runID string
}

var _ driven.IssueWriter = (*issueWriter)(nil)

// Write appends one issue record.
func (w *issueWriter) Write(issue domain.Issue) error {
	_, err := w.store.db.Exec(`
		INSERT INTO run_issues (run_id, row_number, field, datatype, value)
		VALUES (?, ?, ?, ?, ?)
	`, w.runID, issue.RowNumber, issue.Field, issue.Datatype, issue.Value)
	if err != nil {
		return fmt.Errorf("inserting issue: %w", err)
	}
	return nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}
