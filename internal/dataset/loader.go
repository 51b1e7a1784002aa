// Package dataset reads the four base relations (players, tournaments,
// matches, scores) from external files into memory. The snapshot is static;
// there is no incremental loading.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pable/go-snooker-metrics/internal/model"
)

// File names expected inside a CSV dataset directory. The XLSX path expects
// sheets with the same base names.
const (
	playersName     = "players"
	tournamentsName = "tournaments"
	matchesName     = "matches"
	scoresName      = "scores"
)

// ReadDir loads a dataset from a directory of four CSV files
// (players.csv, tournaments.csv, ...), each with a header row. Fields are
// located by header name, not position.
func ReadDir(dir string) (model.Relations, error) {
	var b builder
	for _, name := range []string{playersName, tournamentsName, matchesName, scoresName} {
		path := filepath.Join(dir, name+".csv")
		if err := readCSV(path, name, b.handler(name)); err != nil {
			return b.rel, err
		}
	}
	if err := Validate(b.rel); err != nil {
		return b.rel, err
	}
	return b.rel, nil
}

// builder accumulates relation rows from header-indexed records; both the
// CSV and XLSX readers feed it.
type builder struct {
	rel model.Relations
}

func (b *builder) handler(relation string) func(record) error {
	switch relation {
	case playersName:
		return b.player
	case tournamentsName:
		return b.tournament
	case matchesName:
		return b.match
	default:
		return b.score
	}
}

func (b *builder) player(rec record) error {
	name := rec.str("name")
	if name == "" {
		return fmt.Errorf("player with empty name")
	}
	b.rel.Players = append(b.rel.Players, model.Player{
		Name:    name,
		Country: rec.str("country"),
	})
	return nil
}

func (b *builder) tournament(rec record) error {
	id, err := rec.num("id")
	if err != nil {
		return err
	}
	year, err := rec.num("year")
	if err != nil {
		return err
	}
	b.rel.Tournaments = append(b.rel.Tournaments, model.Tournament{
		ID:       id,
		Name:     rec.str("name"),
		Year:     year,
		Status:   rec.str("status"),
		Category: rec.str("category"),
		City:     rec.str("city"),
		Country:  rec.str("country"),
	})
	return nil
}

func (b *builder) match(rec record) error {
	id, err := rec.num("id")
	if err != nil {
		return err
	}
	tid, err := rec.num("tournament_id")
	if err != nil {
		return err
	}
	s1, err := rec.num("score1")
	if err != nil {
		return err
	}
	s2, err := rec.num("score2")
	if err != nil {
		return err
	}
	b.rel.Matches = append(b.rel.Matches, model.Match{
		ID:           id,
		TournamentID: tid,
		Stage:        rec.str("stage"),
		Player1:      rec.str("player1"),
		Player2:      rec.str("player2"),
		Score1:       s1,
		Score2:       s2,
	})
	return nil
}

func (b *builder) score(rec record) error {
	mid, err := rec.num("match_id")
	if err != nil {
		return err
	}
	frame, err := rec.num("frame")
	if err != nil {
		return err
	}
	slot, err := rec.num("slot")
	if err != nil {
		return err
	}
	points, err := rec.num("points")
	if err != nil {
		return err
	}
	s := model.FrameScore{MatchID: mid, Frame: frame, Slot: slot, Points: points}
	if raw := rec.str("break"); raw != "" {
		brk, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("field break: invalid integer %q", raw)
		}
		s.Break = brk
		s.HasBreak = true
	}
	b.rel.Scores = append(b.rel.Scores, s)
	return nil
}

// record is one input row indexed by lower-cased header name.
type record struct {
	header map[string]int
	fields []string
}

func (r record) str(name string) string {
	i, ok := r.header[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r record) num(name string) (int, error) {
	raw := r.str(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("field %s: invalid integer %q", name, raw)
	}
	return n, nil
}

func newHeader(row []string) map[string]int {
	header := make(map[string]int, len(row))
	for i, h := range row {
		header[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return header
}

// requiredColumns lists the headers each relation's builder reads. A file
// missing one of them would otherwise load with silently blank fields.
var requiredColumns = map[string][]string{
	playersName:     {"name", "country"},
	tournamentsName: {"id", "name", "year", "status", "category", "city", "country"},
	matchesName:     {"id", "tournament_id", "stage", "player1", "player2", "score1", "score2"},
	scoresName:      {"match_id", "frame", "slot", "points", "break"},
}

func checkHeader(relation string, header map[string]int) error {
	var missing []string
	for _, col := range requiredColumns[relation] {
		if _, ok := header[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("header missing column(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

func readCSV(path, relation string, each func(record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	headerRow, err := r.Read()
	if err != nil {
		return fmt.Errorf("%s: read header: %w", filepath.Base(path), err)
	}
	header := newHeader(headerRow)
	if err := checkHeader(relation, header); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	line := 1
	for {
		fields, err := r.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("%s: line %d: %w", filepath.Base(path), line, err)
		}
		if err := each(record{header: header, fields: fields}); err != nil {
			return fmt.Errorf("%s: line %d: %w", filepath.Base(path), line, err)
		}
	}
}

// Validate checks the structural invariants of the score relation: slots
// are 1 or 2, points are non-negative, breaks lie in [50,147], and no
// frame contains more than one maximum break.
func Validate(rel model.Relations) error {
	type frameKey struct{ match, frame int }
	maxSeen := make(map[frameKey]bool)

	for _, s := range rel.Scores {
		if s.Slot != 1 && s.Slot != 2 {
			return fmt.Errorf("score match=%d frame=%d: invalid slot %d", s.MatchID, s.Frame, s.Slot)
		}
		if s.Points < 0 {
			return fmt.Errorf("score match=%d frame=%d slot=%d: negative points %d", s.MatchID, s.Frame, s.Slot, s.Points)
		}
		if !s.HasBreak {
			continue
		}
		if s.Break < 50 || s.Break > 147 {
			return fmt.Errorf("score match=%d frame=%d slot=%d: break %d outside [50,147]", s.MatchID, s.Frame, s.Slot, s.Break)
		}
		if s.Break == 147 {
			fk := frameKey{s.MatchID, s.Frame}
			if maxSeen[fk] {
				return fmt.Errorf("score match=%d frame=%d: more than one maximum break", s.MatchID, s.Frame)
			}
			maxSeen[fk] = true
		}
	}
	return nil
}
