package storage

import (
	"database/sql"
	"fmt"

	"github.com/pable/go-snooker-metrics/internal/model"
)

// ReplaceDataset replaces the stored snapshot with the given relations in a
// single transaction. The dataset is immutable once loaded, so a reload is
// all-or-nothing rather than incremental.
func (db *DB) ReplaceDataset(rel model.Relations) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"scores", "matches", "tournaments", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	pStmt, err := tx.Prepare("INSERT INTO players(name, country) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer pStmt.Close()
	for _, p := range rel.Players {
		if _, err := pStmt.Exec(p.Name, p.Country); err != nil {
			return fmt.Errorf("insert player %q: %w", p.Name, err)
		}
	}

	tStmt, err := tx.Prepare(`
		INSERT INTO tournaments(id, name, year, status, category, city, country)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer tStmt.Close()
	for _, t := range rel.Tournaments {
		if _, err := tStmt.Exec(t.ID, t.Name, t.Year, t.Status, t.Category, t.City, t.Country); err != nil {
			return fmt.Errorf("insert tournament %d: %w", t.ID, err)
		}
	}

	mStmt, err := tx.Prepare(`
		INSERT INTO matches(id, tournament_id, stage, player1, player2, score1, score2)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer mStmt.Close()
	for _, m := range rel.Matches {
		if _, err := mStmt.Exec(m.ID, m.TournamentID, m.Stage, m.Player1, m.Player2, m.Score1, m.Score2); err != nil {
			return fmt.Errorf("insert match %d: %w", m.ID, err)
		}
	}

	sStmt, err := tx.Prepare(`
		INSERT INTO scores(match_id, frame, slot, points, break_value)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer sStmt.Close()
	for _, s := range rel.Scores {
		var brk any
		if s.HasBreak {
			brk = s.Break
		}
		if _, err := sStmt.Exec(s.MatchID, s.Frame, s.Slot, s.Points, brk); err != nil {
			return fmt.Errorf("insert score match=%d frame=%d slot=%d: %w", s.MatchID, s.Frame, s.Slot, err)
		}
	}

	return tx.Commit()
}

// LoadRelations reads the full snapshot into memory. Reports never query
// the database row by row; they work off this immutable in-memory copy.
func (db *DB) LoadRelations() (model.Relations, error) {
	var rel model.Relations

	rows, err := db.conn.Query("SELECT name, country FROM players ORDER BY name")
	if err != nil {
		return rel, err
	}
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.Name, &p.Country); err != nil {
			rows.Close()
			return rel, err
		}
		rel.Players = append(rel.Players, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return rel, err
	}

	rows, err = db.conn.Query("SELECT id, name, year, status, category, city, country FROM tournaments ORDER BY id")
	if err != nil {
		return rel, err
	}
	for rows.Next() {
		var t model.Tournament
		if err := rows.Scan(&t.ID, &t.Name, &t.Year, &t.Status, &t.Category, &t.City, &t.Country); err != nil {
			rows.Close()
			return rel, err
		}
		rel.Tournaments = append(rel.Tournaments, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return rel, err
	}

	rows, err = db.conn.Query("SELECT id, tournament_id, stage, player1, player2, score1, score2 FROM matches ORDER BY id")
	if err != nil {
		return rel, err
	}
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.ID, &m.TournamentID, &m.Stage, &m.Player1, &m.Player2, &m.Score1, &m.Score2); err != nil {
			rows.Close()
			return rel, err
		}
		rel.Matches = append(rel.Matches, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return rel, err
	}

	rows, err = db.conn.Query("SELECT match_id, frame, slot, points, break_value FROM scores ORDER BY match_id, frame, slot")
	if err != nil {
		return rel, err
	}
	for rows.Next() {
		var s model.FrameScore
		var brk sql.NullInt64
		if err := rows.Scan(&s.MatchID, &s.Frame, &s.Slot, &s.Points, &brk); err != nil {
			rows.Close()
			return rel, err
		}
		if brk.Valid {
			s.Break = int(brk.Int64)
			s.HasBreak = true
		}
		rel.Scores = append(rel.Scores, s)
	}
	rows.Close()
	return rel, rows.Err()
}

// GetOverview returns summary counts for the stored snapshot.
func (db *DB) GetOverview() (model.DatasetOverview, error) {
	var ov model.DatasetOverview
	err := db.conn.QueryRow(`
		SELECT (SELECT COUNT(1) FROM players),
		       (SELECT COUNT(1) FROM tournaments),
		       (SELECT COUNT(1) FROM matches),
		       (SELECT COUNT(1) FROM scores),
		       (SELECT COUNT(1) FROM scores WHERE break_value IS NOT NULL),
		       (SELECT COALESCE(MIN(year), 0) FROM tournaments),
		       (SELECT COALESCE(MAX(year), 0) FROM tournaments)`).
		Scan(&ov.Players, &ov.Tournaments, &ov.Matches, &ov.Frames, &ov.Breaks, &ov.FirstYear, &ov.LastYear)
	return ov, err
}

// QueryRaw runs an arbitrary query and returns column names and stringified
// rows, for the sql command.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			switch x := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(x)
			default:
				row[i] = fmt.Sprintf("%v", x)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}
