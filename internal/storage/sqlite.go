// Package storage keeps the history of finished simulation runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run sources.
const (
	SourceTUI = "tui"
	SourceSSH = "ssh"
	SourceSim = "sim"
)

const timeLayout = "2006-01-02 15:04:05"

// ErrRunNotFound is returned by Run for an unknown run ID.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded simulation session.
type Run struct {
	ID      string // UUID, assigned by SaveRun when empty
	GameID  string
	Source  string // SourceTUI, SourceSSH or SourceSim
	ArenaW  float64
	ArenaH  float64
	Ticks   uint64
	Left    int // Contacts by side
	Right   int
	Top     int
	Bottom  int
	Inside  int
	Digest  uint64 // Final snapshot hash
	Created time.Time
}

// Contacts returns the number of contacts of any side.
func (r Run) Contacts() int {
	return r.Left + r.Right + r.Top + r.Bottom + r.Inside
}

// Summary aggregates the stored runs of one game.
type Summary struct {
	GameID     string
	Runs       int
	TotalTicks int64
	MaxTicks   int64
	Contacts   int64
	LastPlayed time.Time
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
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			source TEXT NOT NULL,
			arena_w REAL NOT NULL,
			arena_h REAL NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			contacts_left INTEGER NOT NULL DEFAULT 0,
			contacts_right INTEGER NOT NULL DEFAULT 0,
			contacts_top INTEGER NOT NULL DEFAULT 0,
			contacts_bottom INTEGER NOT NULL DEFAULT 0,
			contacts_inside INTEGER NOT NULL DEFAULT 0,
			digest TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// SaveRun records a run and returns its ID. An empty ID gets a fresh UUID
// and a zero Created time is set to now.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Created.IsZero() {
		r.Created = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, game_id, source, arena_w, arena_h, ticks,
		  contacts_left, contacts_right, contacts_top, contacts_bottom, contacts_inside,
		  digest, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Source, r.ArenaW, r.ArenaH, int64(r.Ticks), //#nosec G115 -- tick counts fit in int64
		r.Left, r.Right, r.Top, r.Bottom, r.Inside,
		formatDigest(r.Digest), r.Created.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, game_id, source, arena_w, arena_h, ticks,
	contacts_left, contacts_right, contacts_top, contacts_bottom, contacts_inside,
	digest, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r         Run
		ticks     int64
		digest    string
		createdAt any
	)
	if err := sc.Scan(
		&r.ID, &r.GameID, &r.Source, &r.ArenaW, &r.ArenaH, &ticks,
		&r.Left, &r.Right, &r.Top, &r.Bottom, &r.Inside,
		&digest, &createdAt,
	); err != nil {
		return Run{}, err
	}

	r.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
	if d, err := parseDigest(digest); err == nil {
		r.Digest = d
	}
	r.Created = parseTime(createdAt)
	return r, nil
}

// Run retrieves a run by its ID.
func (s *Store) Run(id string) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return r, nil
}

// RecentRuns retrieves the most recent runs, newest first. An empty gameID
// matches every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, seq DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// CountRuns returns the number of stored runs for a game.
func (s *Store) CountRuns(gameID string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE game_id = ?", gameID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// DeleteRuns removes every run of a game.
func (s *Store) DeleteRuns(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot delete runs: %w", err)
	}
	return nil
}

// Summarize aggregates the runs of a game. A game with no runs yields a
// zero Summary.
func (s *Store) Summarize(gameID string) (Summary, error) {
	sum := Summary{GameID: gameID}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(MAX(ticks), 0),
		        COALESCE(SUM(contacts_left + contacts_right + contacts_top + contacts_bottom + contacts_inside), 0),
		        MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&sum.Runs, &sum.TotalTicks, &sum.MaxTicks, &sum.Contacts, &lastPlayed)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}

	sum.LastPlayed = parseTime(lastPlayed)
	return sum, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Digests are stored as hex text: SQLite integers are signed.
func formatDigest(d uint64) string {
	return fmt.Sprintf("%016x", d)
}

func parseDigest(s string) (uint64, error) {
	return strconv.ParseUint(s, 16, 64)
}
