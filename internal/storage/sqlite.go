// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-mines/internal/mines"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for game history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// GameResult is one finished session.
type GameResult struct {
	ID        string
	Kind      string // difficulty kind name, "beginner" .. "custom"
	Label     string
	Width     int
	Height    int
	Mines     int
	Outcome   string // "won" or "lost"
	Seconds   int
	CreatedAt time.Time
}

// Won reports whether the game was won.
func (r GameResult) Won() bool { return r.Outcome == mines.Won.String() }

// ResultFromSession captures a finished session. The ID is left empty and
// assigned on save.
func ResultFromSession(s *mines.Session) GameResult {
	d := s.Difficulty()
	return GameResult{
		Kind:    d.Kind().String(),
		Label:   d.Label(),
		Width:   d.Width(),
		Height:  d.Height(),
		Mines:   d.MineCount(),
		Outcome: s.Outcome().String(),
		Seconds: s.Elapsed(),
	}
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

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			label TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			seconds INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_kind ON games(kind);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);
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

// SaveResult records a finished game and returns its generated ID.
func (s *Store) SaveResult(r GameResult) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	_, err := s.db.Exec(
		`INSERT INTO games (id, kind, label, width, height, mines, outcome, seconds, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Kind, r.Label, r.Width, r.Height, r.Mines, r.Outcome, r.Seconds,
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r.ID, nil
}

// RecentResults returns the most recent games, newest first.
func (s *Store) RecentResults(limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, kind, label, width, height, mines, outcome, seconds, created_at
		 FROM games
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var r GameResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Kind, &r.Label, &r.Width, &r.Height, &r.Mines,
			&r.Outcome, &r.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearResults deletes the history of one difficulty kind.
func (s *Store) ClearResults(kind string) error {
	_, err := s.db.Exec("DELETE FROM games WHERE kind = ?", kind)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for one difficulty kind.
type Stats struct {
	Kind        string
	Played      int
	Won         int
	Lost        int
	BestSeconds int // fastest win, 0 without wins
	AvgSeconds  float64
	LastPlayed  time.Time
}

// WinRate returns the share of games won in [0, 1].
func (st Stats) WinRate() float64 {
	if st.Played == 0 {
		return 0
	}
	return float64(st.Won) / float64(st.Played)
}

// Stats retrieves aggregated statistics for a difficulty kind.
func (s *Store) Stats(kind string) (*Stats, error) {
	st := &Stats{Kind: kind}

	var best sql.NullInt64
	var avg sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN outcome = 'won' THEN seconds END),
		        AVG(CASE WHEN outcome = 'won' THEN seconds END)
		 FROM games WHERE kind = ?`,
		kind,
	).Scan(&st.Played, &st.Won, &best, &avg)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.Lost = st.Played - st.Won
	st.BestSeconds = int(best.Int64)
	st.AvgSeconds = avg.Float64

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM games WHERE kind = ? ORDER BY created_at DESC LIMIT 1`,
		kind,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		st.LastPlayed = parseTime(lastPlayed)
	}

	return st, nil
}

// AllStats retrieves statistics for every difficulty kind, in menu order.
// Kinds never played are included with zero counts.
func (s *Store) AllStats() ([]*Stats, error) {
	var out []*Stats
	for _, k := range mines.Kinds() {
		st, err := s.Stats(k.String())
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// parseTime handles both time.Time and string column values.
func parseTime(v any) time.Time {
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
