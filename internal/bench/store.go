package bench

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store keeps benchmark run history in a SQLite database.
type Store struct {
	db *sql.DB
}

// Run is one recorded benchmark execution.
type Run struct {
	Seq        int64
	Solver     string
	InputSHA   string
	Answer     string
	Runs       int
	Mean       time.Duration
	RecordedAt time.Time
}

// Open creates or opens the history database at the given path.
// Idempotent: the schema is applied on every open.
//
// The database is configured with WAL mode, NORMAL synchronous mode,
// a 5-second busy timeout and a single-connection pool (SQLite allows
// one writer at a time).
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends a run to the history and returns its seq.
func (s *Store) Record(run Run) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (solver, input_sha, answer, runs, mean_ns, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Solver, run.InputSHA, run.Answer, run.Runs,
		run.Mean.Nanoseconds(), run.RecordedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	return res.LastInsertId()
}

// Baseline returns the earliest recorded run for a solver/input pair,
// or nil when none exists.
func (s *Store) Baseline(solver, inputSHA string) (*Run, error) {
	rows, err := s.history(solver, inputSHA, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// History returns all recorded runs for a solver/input pair in seq
// order, oldest first.
func (s *Store) History(solver, inputSHA string) ([]Run, error) {
	return s.history(solver, inputSHA, 0)
}

func (s *Store) history(solver, inputSHA string, limit int) ([]Run, error) {
	query := `SELECT seq, solver, input_sha, answer, runs, mean_ns, recorded_at
	          FROM runs WHERE solver = ? AND input_sha = ?
	          ORDER BY seq ASC`
	args := []any{solver, inputSHA}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var meanNs int64
		var recordedAt string
		if err := rows.Scan(&r.Seq, &r.Solver, &r.InputSHA, &r.Answer, &r.Runs, &meanNs, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Mean = time.Duration(meanNs)
		if ts, err := time.Parse(time.RFC3339Nano, recordedAt); err == nil {
			r.RecordedAt = ts
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return runs, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}
