package storage

import (
	"fmt"
	"time"
)

// Level attempt outcomes as stored in level_results.outcome.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// LevelResult is one recorded level attempt.
type LevelResult struct {
	ID        int64
	PackID    string
	Level     int // zero-based
	Outcome   string
	Coins     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Won reports whether the attempt cleared the level.
func (r LevelResult) Won() bool {
	return r.Outcome == OutcomeWon
}

// BestTime is the fastest winning attempt of one level.
type BestTime struct {
	Level    int
	Duration time.Duration
	Wins     int
	Attempts int
}

// SaveLevelResult records a decided level attempt.
// Returns the ID of the inserted record.
func (s *Store) SaveLevelResult(r LevelResult) (int64, error) {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return 0, fmt.Errorf("storage: invalid outcome %q", r.Outcome)
	}

	res, err := s.db.Exec(
		`INSERT INTO level_results (pack_id, level, outcome, coins, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		r.PackID, r.Level, r.Outcome, r.Coins, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LevelResults retrieves the most recent attempts for a pack, newest first.
func (s *Store) LevelResults(packID string, limit int) ([]LevelResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, pack_id, level, outcome, coins, duration_ms, created_at
		 FROM level_results
		 WHERE pack_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level results: %w", err)
	}
	defer rows.Close()

	var results []LevelResult
	for rows.Next() {
		var r LevelResult
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.PackID, &r.Level, &r.Outcome, &r.Coins, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestTimes returns, per level of a pack, the fastest win along with win
// and attempt counts. Levels never won are included with a zero duration.
func (s *Store) BestTimes(packID string) ([]BestTime, error) {
	rows, err := s.db.Query(
		`SELECT level,
		        COALESCE(MIN(CASE WHEN outcome = 'won' THEN duration_ms END), 0),
		        SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END),
		        COUNT(*)
		 FROM level_results
		 WHERE pack_id = ?
		 GROUP BY level
		 ORDER BY level`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	defer rows.Close()

	var best []BestTime
	for rows.Next() {
		var b BestTime
		var durationMS int64
		if err := rows.Scan(&b.Level, &durationMS, &b.Wins, &b.Attempts); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		b.Duration = time.Duration(durationMS) * time.Millisecond
		best = append(best, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return best, nil
}
