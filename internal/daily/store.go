package daily

import (
	"context"
	"database/sql"
)

// Result is one user's recorded daily solve.
type Result struct {
	UserID     string `json:"userId"`
	Date       string `json:"date"`
	GameNumber int    `json:"gameNumber"`
	WordIndex  int    `json:"wordIndex"`
	Guesses    int    `json:"guesses"`
	Solved     bool   `json:"solved"`
}

// Store persists daily solve results.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether the user has a recorded daily solve for date.
func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_solves WHERE user_id=? AND date=?`,
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records a daily solve. One row per user per date; later
// inserts for the same key are ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	solved := 0
	if r.Solved {
		solved = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_solves(user_id, date, game_number, word_index, guesses, solved)
		 VALUES(?,?,?,?,?,?)`,
		r.UserID, r.Date, r.GameNumber, r.WordIndex, r.Guesses, solved,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID  string `json:"userId"`
	Guesses int    `json:"guesses"`
	Solved  bool   `json:"solved"`
}

// Leaderboard returns the top results for a date, fewest guesses first,
// solved before unsolved.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, guesses, solved
		 FROM daily_solves
		 WHERE date=?
		 ORDER BY solved DESC, guesses ASC, created_at ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LBRow
	for rows.Next() {
		var r LBRow
		var solved int
		if err := rows.Scan(&r.UserID, &r.Guesses, &solved); err != nil {
			return nil, err
		}
		r.Solved = solved == 1
		out = append(out, r)
	}
	return out, rows.Err()
}
