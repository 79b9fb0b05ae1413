package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists profiles in PostgreSQL, with the same
// whole-document semantics as the other stores: Save replaces every row in
// one transaction.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to databaseURL, verifies the connection and
// ensures the schema exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// migrate creates the profiles table if it does not exist.
func (s *PostgresStore) migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS profiles (
			username          TEXT PRIMARY KEY,
			favorite_mood     TEXT NOT NULL DEFAULT '',
			favorite_activity TEXT NOT NULL DEFAULT '',
			listening_history JSONB NOT NULL DEFAULT '[]',
			playlists         JSONB NOT NULL DEFAULT '[]',
			likes             INTEGER NOT NULL DEFAULT 0
		)
	`
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("creating profiles table: %w", err)
	}
	return nil
}

// Load reads every stored profile.
func (s *PostgresStore) Load(ctx context.Context) (Map, error) {
	query := `
		SELECT username, favorite_mood, favorite_activity, listening_history, playlists, likes
		FROM profiles
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(Map)
	for rows.Next() {
		var (
			username     string
			p            Profile
			historyJSON  []byte
			playlistJSON []byte
		)
		if err := rows.Scan(&username, &p.FavoriteMood, &p.FavoriteActivity, &historyJSON, &playlistJSON, &p.Likes); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		if err := json.Unmarshal(historyJSON, &p.History); err != nil {
			return nil, fmt.Errorf("parsing history for %q: %w", username, err)
		}
		if err := json.Unmarshal(playlistJSON, &p.Playlist); err != nil {
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

// profileRows holds one column slice per profiles table column, aligned by
// index, in sorted username order. History and playlist documents are
// JSON-encoded for the JSONB columns.
type profileRows struct {
	usernames  []string
	moods      []string
	activities []string
	histories  []string
	playlists  []string
	likes      []int
}

// newProfileRows flattens profiles into aligned column slices.
func newProfileRows(profiles Map) (*profileRows, error) {
	usernames := profiles.Usernames()
	rows := &profileRows{
		usernames:  usernames,
		moods:      make([]string, len(usernames)),
		activities: make([]string, len(usernames)),
		histories:  make([]string, len(usernames)),
		playlists:  make([]string, len(usernames)),
		likes:      make([]int, len(usernames)),
	}
	for i, username := range usernames {
		p := profiles[username]
		historyJSON, err := json.Marshal(p.History)
		if err != nil {
			return nil, fmt.Errorf("encoding history for %q: %w", username, err)
		}
		playlistJSON, err := json.Marshal(p.Playlist)
		if err != nil {
			return nil, fmt.Errorf("encoding playlist for %q: %w", username, err)
		}
		rows.moods[i] = p.FavoriteMood
		rows.activities[i] = p.FavoriteActivity
		rows.histories[i] = string(historyJSON)
		rows.playlists[i] = string(playlistJSON)
		rows.likes[i] = p.Likes
	}
	return rows, nil
}

// Save replaces all stored profiles in one transaction: delete everything,
// then insert the whole mapping with a single batch over unnested arrays.
func (s *PostgresStore) Save(ctx context.Context, profiles Map) error {
	rows, err := newProfileRows(profiles)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM profiles`); err != nil {
		return fmt.Errorf("clearing profiles: %w", err)
	}

	if len(rows.usernames) > 0 {
		insert := `
			INSERT INTO profiles (username, favorite_mood, favorite_activity, listening_history, playlists, likes)
			SELECT * FROM unnest($1::text[], $2::text[], $3::text[], $4::jsonb[], $5::jsonb[], $6::int[])
		`
		if _, err := tx.Exec(ctx, insert,
			rows.usernames,
			rows.moods,
			rows.activities,
			rows.histories,
			rows.playlists,
			rows.likes,
		); err != nil {
			return fmt.Errorf("batch inserting profiles: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing profiles: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

var _ Store = (*PostgresStore)(nil)
