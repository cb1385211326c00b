package analytics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides database operations for analytics.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the analytics database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create analytics dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;"); err != nil {
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			visitor_id TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			browser TEXT NOT NULL,
			device TEXT NOT NULL,
			path TEXT NOT NULL,
			referrer TEXT,
			bot INTEGER NOT NULL DEFAULT 0,
			timestamp DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);
		CREATE INDEX IF NOT EXISTS idx_visits_visitor_id ON visits(visitor_id);
		CREATE INDEX IF NOT EXISTS idx_visits_path ON visits(path);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// GetSetting retrieves a setting value by key. Returns "" if not found.
func (s *Store) GetSetting(key string) (string, error) {
	var val string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&val)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetSetting stores a setting value by key.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

// RecordVisit inserts a single visit.
func (s *Store) RecordVisit(v Visit) error {
	bot := 0
	if v.Bot {
		bot = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO visits (visitor_id, ip_hash, browser, device, path, referrer, bot, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.VisitorID, v.IPHash, v.Browser, v.Device, v.Path, v.Referrer, bot,
		v.Timestamp.UTC().Format(time.RFC3339),
	)
	return err
}

// Stats aggregates visits over the last `days` days. Bot traffic shows up
// only in BotViews; every other number counts human visits.
func (s *Store) Stats(days int) (Stats, error) {
	since := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
	stats := Stats{Period: fmt.Sprintf("%dd", days)}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT visitor_id) FROM visits WHERE bot = 0 AND timestamp >= ?`, since,
	).Scan(&stats.TotalViews, &stats.UniqueVisitors)
	if err != nil {
		return Stats{}, err
	}
	err = s.db.QueryRow(
		`SELECT COUNT(*) FROM visits WHERE bot = 1 AND timestamp >= ?`, since,
	).Scan(&stats.BotViews)
	if err != nil {
		return Stats{}, err
	}

	rows, err := s.db.Query(
		`SELECT path, COUNT(*) AS views FROM visits WHERE bot = 0 AND timestamp >= ?
		 GROUP BY path ORDER BY views DESC LIMIT 10`, since,
	)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var p PageStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			return Stats{}, err
		}
		stats.TopPages = append(stats.TopPages, p)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	dayRows, err := s.db.Query(
		`SELECT substr(timestamp, 1, 10) AS day, COUNT(*) FROM visits WHERE bot = 0 AND timestamp >= ?
		 GROUP BY day ORDER BY day`, since,
	)
	if err != nil {
		return Stats{}, err
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var d DailyView
		if err := dayRows.Scan(&d.Date, &d.Views); err != nil {
			return Stats{}, err
		}
		stats.DailyViews = append(stats.DailyViews, d)
	}
	return stats, dayRows.Err()
}

// DeleteOlderThan removes visits past the retention window.
func (s *Store) DeleteOlderThan(days int) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
	_, err := s.db.Exec(`DELETE FROM visits WHERE timestamp < ?`, cutoff)
	return err
}

// StartCleanupScheduler prunes old visits every interval. The returned
// function stops the scheduler.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				_ = s.DeleteOlderThan(retentionDays)
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}
