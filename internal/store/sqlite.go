// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded sql/*.sql migrations (idempotent, recorded in _migrations).
//   - Saving and loading per-player saved games.
//
// The same *sql.DB also carries the daily_results table used by daily.Store.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

// SQLite is a Store over a migrated SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at path and
// applies pending migrations.
func OpenSQLite(path string) (*SQLite, error) {
	// Ensure directory exists for ./data/kluro.db, etc.
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(db, migrations); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// DB exposes the handle for other tables in the same database.
func (s *SQLite) DB() *sql.DB { return s.db }

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Save(ctx context.Context, playerID string, sv Saved) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO saved_games (player_id, last_played_date, game_state, started_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(player_id) DO UPDATE SET
            last_played_date = excluded.last_played_date,
            game_state       = excluded.game_state,
            started_at       = excluded.started_at,
            updated_at       = excluded.updated_at`,
		playerID, sv.LastPlayedDate, sv.GameState,
		sv.StartedAt.UTC().Format(time.RFC3339Nano), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", playerID, err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, playerID string) (Saved, error) {
	var sv Saved
	var started string
	err := s.db.QueryRowContext(ctx,
		`SELECT last_played_date, game_state, started_at FROM saved_games WHERE player_id=?`,
		playerID,
	).Scan(&sv.LastPlayedDate, &sv.GameState, &started)
	if errors.Is(err, sql.ErrNoRows) {
		return Saved{}, ErrNotFound
	}
	if err != nil {
		return Saved{}, fmt.Errorf("load game %s: %w", playerID, err)
	}
	sv.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
	return sv, nil
}

// migrate applies the sql/*.sql files of fsys in lexical order.
//
// Each file runs in its own transaction together with its _migrations row,
// so a failed file leaves nothing half applied.
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}
