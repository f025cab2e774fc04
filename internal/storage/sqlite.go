// Package storage provides SQLite-based persistence for scores, level
// records and per-player statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultBestTime is the best time of a level nobody has completed yet.
const DefaultBestTime = 9999

// seededLevels get a level_stats row as soon as the database is created.
var seededLevels = []int{1, 2, 3}

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished game.
type ScoreEntry struct {
	ID        int64
	Name      string
	Score     int
	Level     int
	PlayTime  int // Seconds
	CreatedAt time.Time
}

// LevelStat holds the aggregate record of one level.
type LevelStat struct {
	Level          int
	CompletedTimes int
	BestTime       int // Seconds, DefaultBestTime when never completed
}

// PlayerStat holds the lifetime totals of one player.
type PlayerStat struct {
	Name           string
	Deaths         int
	CoinsCollected int
	EnemiesKilled  int
	GamesPlayed    int
	PlayTime       int // Seconds
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

	// A single connection serializes writers from concurrent SSH sessions.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			play_time INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_players_top ON players(score DESC, play_time ASC);

		CREATE TABLE IF NOT EXISTS level_stats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_number INTEGER NOT NULL UNIQUE,
			completed_times INTEGER DEFAULT 0,
			best_time INTEGER DEFAULT 9999
		);

		CREATE TABLE IF NOT EXISTS player_stats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT NOT NULL UNIQUE,
			total_deaths INTEGER DEFAULT 0,
			total_coins_collected INTEGER DEFAULT 0,
			total_enemies_killed INTEGER DEFAULT 0,
			total_games_played INTEGER DEFAULT 0,
			total_playtime INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	for _, level := range seededLevels {
		if _, err := s.db.Exec(
			"INSERT OR IGNORE INTO level_stats (level_number) VALUES (?)",
			level,
		); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(name string, score, level, playTime int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO players (name, score, level, play_time) VALUES (?, ?, ?, ?)",
		name, score, level, playTime,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N games.
// Results are ordered by score descending, ties broken by shorter play time.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, level, play_time, created_at
		 FROM players
		 ORDER BY score DESC, play_time ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Level, &e.PlayTime, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score ever recorded.
// Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM players").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// IncrementLevelCompletions counts one more completion of the level.
func (s *Store) IncrementLevelCompletions(level int) error {
	_, err := s.db.Exec(
		`INSERT INTO level_stats (level_number, completed_times) VALUES (?, 1)
		 ON CONFLICT(level_number) DO UPDATE SET completed_times = completed_times + 1`,
		level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update level %d completions: %w", level, err)
	}
	return nil
}

// UpdateLevelBestTime keeps the smaller of the stored and the given time.
func (s *Store) UpdateLevelBestTime(level, secs int) error {
	_, err := s.db.Exec(
		`INSERT INTO level_stats (level_number, best_time) VALUES (?, ?)
		 ON CONFLICT(level_number) DO UPDATE SET best_time = MIN(best_time, excluded.best_time)`,
		level, secs,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update level %d best time: %w", level, err)
	}
	return nil
}

// LevelStats returns the record of one level.
// A level without a row reports zero completions and the default best time.
func (s *Store) LevelStats(level int) (LevelStat, error) {
	stat := LevelStat{Level: level}
	err := s.db.QueryRow(
		"SELECT completed_times, best_time FROM level_stats WHERE level_number = ?",
		level,
	).Scan(&stat.CompletedTimes, &stat.BestTime)

	if errors.Is(err, sql.ErrNoRows) {
		stat.BestTime = DefaultBestTime
		return stat, nil
	}
	if err != nil {
		return LevelStat{}, fmt.Errorf("storage: cannot query level stats: %w", err)
	}
	return stat, nil
}

// AllLevelStats returns the records of every known level, by level number.
func (s *Store) AllLevelStats() ([]LevelStat, error) {
	rows, err := s.db.Query(
		`SELECT level_number, completed_times, best_time
		 FROM level_stats
		 ORDER BY level_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStat
	for rows.Next() {
		var st LevelStat
		if err := rows.Scan(&st.Level, &st.CompletedTimes, &st.BestTime); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// Player statistic columns. Only these names are ever formatted into SQL.
const (
	colDeaths      = "total_deaths"
	colCoins       = "total_coins_collected"
	colKills       = "total_enemies_killed"
	colGamesPlayed = "total_games_played"
	colPlaytime    = "total_playtime"
)

// AddDeath counts one death for the player.
func (s *Store) AddDeath(name string) error {
	return s.bumpPlayerStat(name, colDeaths, 1)
}

// AddCoins adds collected coins to the player's total.
func (s *Store) AddCoins(name string, count int) error {
	return s.bumpPlayerStat(name, colCoins, count)
}

// AddKills adds defeated enemies to the player's total.
func (s *Store) AddKills(name string, count int) error {
	return s.bumpPlayerStat(name, colKills, count)
}

// IncrementGamesPlayed counts one more started game for the player.
func (s *Store) IncrementGamesPlayed(name string) error {
	return s.bumpPlayerStat(name, colGamesPlayed, 1)
}

// AddPlaytime adds seconds of play to the player's total.
func (s *Store) AddPlaytime(name string, secs int) error {
	return s.bumpPlayerStat(name, colPlaytime, secs)
}

// bumpPlayerStat creates the player's row if needed and adds n to column.
func (s *Store) bumpPlayerStat(name, column string, n int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT OR IGNORE INTO player_stats (player_name) VALUES (?)", name); err != nil {
		return fmt.Errorf("storage: cannot create player stats: %w", err)
	}

	query := fmt.Sprintf(
		`UPDATE player_stats
		 SET %s = %s + ?, updated_at = CURRENT_TIMESTAMP
		 WHERE player_name = ?`,
		column, column,
	)
	if _, err := tx.Exec(query, n, name); err != nil {
		return fmt.Errorf("storage: cannot update %s: %w", column, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit player stats: %w", err)
	}
	return nil
}

// PlayerStats returns the totals of one player.
// An unknown player has all-zero totals.
func (s *Store) PlayerStats(name string) (PlayerStat, error) {
	stat := PlayerStat{Name: name}
	err := s.db.QueryRow(
		`SELECT total_deaths, total_coins_collected, total_enemies_killed,
		        total_games_played, total_playtime
		 FROM player_stats
		 WHERE player_name = ?`,
		name,
	).Scan(&stat.Deaths, &stat.CoinsCollected, &stat.EnemiesKilled, &stat.GamesPlayed, &stat.PlayTime)

	if errors.Is(err, sql.ErrNoRows) {
		return stat, nil
	}
	if err != nil {
		return PlayerStat{}, fmt.Errorf("storage: cannot query player stats: %w", err)
	}
	return stat, nil
}

// AllPlayerStats returns every player's totals, most games played first.
func (s *Store) AllPlayerStats() ([]PlayerStat, error) {
	rows, err := s.db.Query(
		`SELECT player_name, total_deaths, total_coins_collected,
		        total_enemies_killed, total_games_played, total_playtime
		 FROM player_stats
		 ORDER BY total_games_played DESC, player_name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player stats: %w", err)
	}
	defer rows.Close()

	var stats []PlayerStat
	for rows.Next() {
		var st PlayerStat
		if err := rows.Scan(&st.Name, &st.Deaths, &st.CoinsCollected, &st.EnemiesKilled, &st.GamesPlayed, &st.PlayTime); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearAll deletes every score and player total and resets level records.
func (s *Store) ClearAll() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmts := []string{
		"DELETE FROM players",
		"UPDATE level_stats SET completed_times = 0, best_time = 9999",
		"DELETE FROM player_stats",
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("storage: cannot clear stats: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
