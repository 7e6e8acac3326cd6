package daily

import (
	"context"
	"database/sql"
)

// Result is one player's finished daily puzzle.
type Result struct {
	PlayerID  string `json:"playerId"`
	Date      string `json:"date"`
	DayIndex  int    `json:"dayIndex"`
	Guesses   int    `json:"guesses"`
	Won       bool   `json:"won"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Store records finished daily games in the daily_results table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) AlreadyPlayed(ctx context.Context, playerID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE player_id=? AND date=?",
		playerID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult stores r. A second result for the same player and date is ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(player_id, date, day_index, guesses, won, elapsed_ms)
		VALUES(?,?,?,?,?,?)`, r.PlayerID, r.Date, r.DayIndex, r.Guesses, r.Won, r.ElapsedMs,
	)
	return err
}

type LBRow struct {
	PlayerID  string `json:"playerId"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Leaderboard lists winners for date: fewest guesses, then fastest.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_id, guesses, elapsed_ms
		FROM daily_results
		WHERE date=? AND won=1
		ORDER BY guesses ASC, elapsed_ms ASC, created_at ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LBRow{}
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.PlayerID, &r.Guesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
