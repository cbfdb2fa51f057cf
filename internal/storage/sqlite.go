// Package storage provides SQLite-based persistence for finished matches.
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
)

// ErrInvalidMatch is returned by SaveMatch for a result missing required fields.
var ErrInvalidMatch = errors.New("storage: invalid match")

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchResult is one finished human-versus-computer match.
type MatchResult struct {
	ID            int64
	MatchID       string // generated when empty
	BoardID       string
	Player        string
	HumanScore    int
	ComputerScore int
	Winner        string // "human", "computer" or "draw"
	Moves         int    // accepted human moves
	Duration      int    // Duration in seconds
	CreatedAt     time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			board_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			human_score INTEGER NOT NULL DEFAULT 0,
			computer_score INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_board_id ON matches(board_id);
		CREATE INDEX IF NOT EXISTS idx_matches_top ON matches(board_id, human_score DESC);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchResult) (int64, error) {
	if m.BoardID == "" || m.Winner == "" {
		return 0, fmt.Errorf("%w: board and winner are required", ErrInvalidMatch)
	}
	if m.MatchID == "" {
		m.MatchID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, board_id, player, human_score, computer_score, winner, moves, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID,
		m.BoardID,
		m.Player,
		m.HumanScore,
		m.ComputerScore,
		m.Winner,
		m.Moves,
		m.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const matchColumns = `id, match_id, board_id, player, human_score, computer_score,
		winner, moves, duration_secs, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(r rowScanner) (MatchResult, error) {
	var m MatchResult
	var createdAt any
	err := r.Scan(
		&m.ID,
		&m.MatchID,
		&m.BoardID,
		&m.Player,
		&m.HumanScore,
		&m.ComputerScore,
		&m.Winner,
		&m.Moves,
		&m.Duration,
		&createdAt,
	)
	m.CreatedAt = parseTime(createdAt)
	return m, err
}

// parseTime handles both time.Time and string datetimes.
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

func (s *Store) queryMatches(query string, args ...any) ([]MatchResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// MatchByID retrieves a match by its match ID. Returns nil if none exists.
func (s *Store) MatchByID(matchID string) (*MatchResult, error) {
	m, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the newest matches on a board, or on every board
// when boardID is empty.
func (s *Store) RecentMatches(boardID string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryMatches(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE ? = '' OR board_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		boardID, boardID, limit,
	)
}

// TopScores retrieves the top N human scores for the given board.
// Results are ordered by score descending, earlier matches first on ties.
func (s *Store) TopScores(boardID string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryMatches(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE board_id = ?
		 ORDER BY human_score DESC, id ASC
		 LIMIT ?`,
		boardID, limit,
	)
}

// HighScore returns the highest human score for the given board.
// Returns 0 if no matches exist.
func (s *Store) HighScore(boardID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(human_score) FROM matches WHERE board_id = ?",
		boardID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearBoard deletes all matches for the given board.
func (s *Store) ClearBoard(boardID string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE board_id = ?", boardID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// BoardStats contains aggregated statistics for a board.
type BoardStats struct {
	BoardID      string
	Played       int
	HumanWins    int
	ComputerWins int
	Draws        int
	HighScore    int
	AvgScore     float64
	LastPlayed   time.Time
}

const statsColumns = `COUNT(*),
		COALESCE(SUM(winner = 'human'), 0),
		COALESCE(SUM(winner = 'computer'), 0),
		COALESCE(SUM(winner = 'draw'), 0),
		COALESCE(MAX(human_score), 0),
		COALESCE(AVG(human_score), 0),
		MAX(created_at)`

// GetBoardStats retrieves aggregated statistics for a specific board.
func (s *Store) GetBoardStats(boardID string) (*BoardStats, error) {
	stats := &BoardStats{BoardID: boardID}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT `+statsColumns+` FROM matches WHERE board_id = ?`,
		boardID,
	).Scan(&stats.Played, &stats.HumanWins, &stats.ComputerWins, &stats.Draws,
		&stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllBoardsStats retrieves statistics for every board that has been played.
func (s *Store) GetAllBoardsStats() (map[string]*BoardStats, error) {
	rows, err := s.db.Query(
		`SELECT board_id, ` + statsColumns + `
		 FROM matches
		 GROUP BY board_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all boards stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*BoardStats)
	for rows.Next() {
		var bs BoardStats
		var lastPlayed any
		if err := rows.Scan(&bs.BoardID, &bs.Played, &bs.HumanWins, &bs.ComputerWins, &bs.Draws,
			&bs.HighScore, &bs.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		bs.LastPlayed = parseTime(lastPlayed)
		stats[bs.BoardID] = &bs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
