package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mlipski/penplot/internal/monitor"
	_ "modernc.org/sqlite"
)

// Store persists usage snapshots in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the snapshot database.
func NewStore(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &Store{db: db}, nil
}

// Record stores one snapshot row per usage reading.
func (s *Store) Record(usages []monitor.Usage) error {
	for _, u := range usages {
		if _, err := s.db.Exec(insertSQL, u.Label, u.Travel, u.Ink); err != nil {
			return fmt.Errorf("record %s: %w", u.Label, err)
		}
	}

	// Cleanup old records
	s.db.Exec(cleanupSQL)

	return nil
}

// Summary returns per-label totals from each label's most recent snapshot.
func (s *Store) Summary() ([]LabelSummary, error) {
	rows, err := s.db.Query(summarySQL)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	defer rows.Close()

	var out []LabelSummary
	for rows.Next() {
		var ls LabelSummary
		if err := rows.Scan(&ls.Label, &ls.Travel, &ls.Ink, &ls.Snapshots); err != nil {
			return nil, fmt.Errorf("summary scan: %w", err)
		}
		out = append(out, ls)
	}
	return out, rows.Err()
}

// Recent returns the last n snapshot rows, newest first.
func (s *Store) Recent(n int) ([]Snapshot, error) {
	rows, err := s.db.Query(recentSQL, n)
	if err != nil {
		return nil, fmt.Errorf("recent: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.Label, &snap.Travel, &snap.Ink, &snap.TakenAt); err != nil {
			return nil, fmt.Errorf("recent scan: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DBPath resolves the snapshot database path.
func DBPath(configPath string) string {
	if p := os.Getenv("PENPLOT_DB_PATH"); p != "" {
		return p
	}
	if configPath != "" {
		return configPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", "penplot", "history.db")
}
