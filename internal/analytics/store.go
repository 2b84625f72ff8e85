package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/osse101/StudyGarden_Go/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS review_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	outcome TEXT NOT NULL,
	streak INTEGER NOT NULL,
	lifetime_correct INTEGER NOT NULL,
	grants TEXT NOT NULL,
	coins_granted INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_review_log_outcome ON review_log(outcome);
`

// ReviewRecord is one appended review-log row.
type ReviewRecord struct {
	Outcome         domain.Outcome
	Streak          int
	LifetimeCorrect int
	Grants          []domain.Grant
	CreatedAt       time.Time
}

// Summary aggregates the review log.
type Summary struct {
	Reviews      int `json:"reviews"`
	Correct      int `json:"correct"`
	CoinsGranted int `json:"coins_granted"`
}

// Store is the append-only review log backed by a local SQLite file.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the review log database at the given path.
// Use ":memory:" for an ephemeral log in tests.
func NewStore(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// A single local writer; more connections just contend for the file lock.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply analytics schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordReview appends one review to the log.
func (s *Store) RecordReview(ctx context.Context, rec ReviewRecord) error {
	grants, err := json.Marshal(rec.Grants)
	if err != nil {
		return fmt.Errorf("marshal grants: %w", err)
	}

	coins := 0
	for _, g := range rec.Grants {
		if g.Kind == domain.ResourceCoin {
			coins += g.Amount
		}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO review_log (outcome, streak, lifetime_correct, grants, coins_granted, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(rec.Outcome), rec.Streak, rec.LifetimeCorrect, string(grants), coins, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert review record: %w", err)
	}
	return nil
}

// Summarize returns totals over the whole review log.
func (s *Store) Summarize(ctx context.Context) (*Summary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(coins_granted), 0)
		FROM review_log`,
		string(domain.OutcomeCorrect))

	var sum Summary
	if err := row.Scan(&sum.Reviews, &sum.Correct, &sum.CoinsGranted); err != nil {
		return nil, fmt.Errorf("summarize review log: %w", err)
	}
	return &sum, nil
}
