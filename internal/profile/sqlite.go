package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists profiles in a SQLite database. The mapping keeps its
// document semantics: Save replaces every row inside one transaction, so the
// commit is the atomic replace.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a SQLite database at path and
// ensures the schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// migrate creates the profiles table if it does not exist.
func (s *SQLiteStore) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS profiles (
			username          TEXT PRIMARY KEY,
			favorite_mood     TEXT NOT NULL DEFAULT '',
			favorite_activity TEXT NOT NULL DEFAULT '',
			listening_history TEXT NOT NULL DEFAULT '[]',
			playlists         TEXT NOT NULL DEFAULT '[]',
			likes             INTEGER NOT NULL DEFAULT 0
		)
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating profiles table: %w", err)
	}
	return nil
}

// Load reads every stored profile.
func (s *SQLiteStore) Load(ctx context.Context) (Map, error) {
	query := `
		SELECT username, favorite_mood, favorite_activity, listening_history, playlists, likes
		FROM profiles
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(Map)
	for rows.Next() {
		var (
			username     string
			p            Profile
			historyJSON  string
			playlistJSON string
		)
		if err := rows.Scan(&username, &p.FavoriteMood, &p.FavoriteActivity, &historyJSON, &playlistJSON, &p.Likes); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		if err := json.Unmarshal([]byte(historyJSON), &p.History); err != nil {
			return nil, fmt.Errorf("parsing history for %q: %w", username, err)
		}
		if err := json.Unmarshal([]byte(playlistJSON), &p.Playlist); err != nil {
			return nil, fmt.Errorf("parsing playlist for %q: %w", username, err)
		}
		p.normalize()
		profiles[username] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profile rows: %w", err)
	}
	if err := profiles.Validate(); err != nil {
		return nil, fmt.Errorf("validating stored profiles: %w", err)
	}

	return profiles, nil
}

// Save replaces all stored profiles in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, profiles Map) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
		return fmt.Errorf("clearing profiles: %w", err)
	}

	insert := `
		INSERT INTO profiles (username, favorite_mood, favorite_activity, listening_history, playlists, likes)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, username := range profiles.Usernames() {
		p := profiles[username]
		historyJSON, err := json.Marshal(p.History)
		if err != nil {
			return fmt.Errorf("encoding history for %q: %w", username, err)
		}
		playlistJSON, err := json.Marshal(p.Playlist)
		if err != nil {
			return fmt.Errorf("encoding playlist for %q: %w", username, err)
		}
		if _, err := tx.ExecContext(ctx, insert,
			username,
			p.FavoriteMood,
			p.FavoriteActivity,
			string(historyJSON),
			string(playlistJSON),
			p.Likes,
		); err != nil {
			return fmt.Errorf("inserting profile for %q: %w", username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing profiles: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
