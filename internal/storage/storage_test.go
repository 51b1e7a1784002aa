package storage

import (
	"testing"

	"github.com/pable/go-snooker-metrics/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleRelations() model.Relations {
	return model.Relations{
		Players: []model.Player{
			{Name: "Ann", Country: "England"},
			{Name: "Bob", Country: "Scotland"},
		},
		Tournaments: []model.Tournament{
			{ID: 1, Name: "World Championship", Year: 1999, Status: "Professional", Category: "Ranking", City: "Sheffield", Country: "England"},
			{ID: 2, Name: "Masters", Year: 2000, Status: "Professional", Category: "Invitational", City: "London", Country: "England"},
		},
		Matches: []model.Match{
			{ID: 10, TournamentID: 1, Stage: "Final", Player1: "Ann", Player2: "Bob", Score1: 18, Score2: 12},
			{ID: 11, TournamentID: 2, Stage: "Round 1", Player1: "Bob", Player2: "Ann", Score1: 6, Score2: 3},
		},
		Scores: []model.FrameScore{
			{MatchID: 10, Frame: 1, Slot: 1, Points: 75, Break: 62, HasBreak: true},
			{MatchID: 10, Frame: 1, Slot: 2, Points: 30},
		},
	}
}

func TestReplaceDatasetRoundtrip(t *testing.T) {
	db := openMemDB(t)

	if err := db.ReplaceDataset(sampleRelations()); err != nil {
		t.Fatalf("ReplaceDataset: %v", err)
	}

	rel, err := db.LoadRelations()
	if err != nil {
		t.Fatalf("LoadRelations: %v", err)
	}

	if len(rel.Players) != 2 || len(rel.Tournaments) != 2 || len(rel.Matches) != 2 || len(rel.Scores) != 2 {
		t.Fatalf("wrong relation sizes: %d/%d/%d/%d",
			len(rel.Players), len(rel.Tournaments), len(rel.Matches), len(rel.Scores))
	}
	if rel.Matches[0].Stage != "Final" || rel.Matches[0].Score1 != 18 {
		t.Errorf("match 10 round-tripped wrong: %+v", rel.Matches[0])
	}
	if !rel.Scores[0].HasBreak || rel.Scores[0].Break != 62 {
		t.Errorf("expected break 62 preserved, got %+v", rel.Scores[0])
	}
	if rel.Scores[1].HasBreak {
		t.Errorf("NULL break column came back set: %+v", rel.Scores[1])
	}
}

// A reload replaces the previous snapshot entirely.
func TestReplaceDatasetReplaces(t *testing.T) {
	db := openMemDB(t)

	if err := db.ReplaceDataset(sampleRelations()); err != nil {
		t.Fatalf("first ReplaceDataset: %v", err)
	}

	smaller := model.Relations{
		Players:     []model.Player{{Name: "Cid", Country: "Wales"}},
		Tournaments: []model.Tournament{{ID: 5, Name: "Welsh Open", Year: 2001, Status: "Professional", Category: "Ranking"}},
		Matches:     []model.Match{{ID: 50, TournamentID: 5, Stage: "Final", Player1: "Cid", Player2: "Ann", Score1: 9, Score2: 2}},
	}
	if err := db.ReplaceDataset(smaller); err != nil {
		t.Fatalf("second ReplaceDataset: %v", err)
	}

	rel, err := db.LoadRelations()
	if err != nil {
		t.Fatalf("LoadRelations: %v", err)
	}
	if len(rel.Players) != 1 || rel.Players[0].Name != "Cid" {
		t.Errorf("old players survived the reload: %+v", rel.Players)
	}
	if len(rel.Matches) != 1 || rel.Matches[0].ID != 50 {
		t.Errorf("old matches survived the reload: %+v", rel.Matches)
	}
}

func TestGetOverview(t *testing.T) {
	db := openMemDB(t)

	if err := db.ReplaceDataset(sampleRelations()); err != nil {
		t.Fatalf("ReplaceDataset: %v", err)
	}

	ov, err := db.GetOverview()
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if ov.Players != 2 || ov.Tournaments != 2 || ov.Matches != 2 || ov.Frames != 2 {
		t.Errorf("wrong counts: %+v", ov)
	}
	if ov.Breaks != 1 {
		t.Errorf("expected 1 break (NULL excluded), got %d", ov.Breaks)
	}
	if ov.FirstYear != 1999 || ov.LastYear != 2000 {
		t.Errorf("wrong year span: %d-%d", ov.FirstYear, ov.LastYear)
	}
}

func TestQueryRaw(t *testing.T) {
	db := openMemDB(t)

	if err := db.ReplaceDataset(sampleRelations()); err != nil {
		t.Fatalf("ReplaceDataset: %v", err)
	}

	cols, rows, err := db.QueryRaw("SELECT name, country FROM players ORDER BY name")
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if len(cols) != 2 || cols[0] != "name" {
		t.Errorf("wrong columns: %v", cols)
	}
	if len(rows) != 2 || rows[0][0] != "Ann" || rows[1][1] != "Scotland" {
		t.Errorf("wrong rows: %v", rows)
	}
}

// Stage values must compare byte-for-byte in SQL too.
func TestStageComparisonCaseSensitive(t *testing.T) {
	db := openMemDB(t)

	rel := sampleRelations()
	rel.Matches = append(rel.Matches, model.Match{
		ID: 12, TournamentID: 1, Stage: "final", Player1: "Ann", Player2: "Bob", Score1: 5, Score2: 1,
	})
	if err := db.ReplaceDataset(rel); err != nil {
		t.Fatalf("ReplaceDataset: %v", err)
	}

	_, rows, err := db.QueryRaw("SELECT id FROM matches WHERE stage = 'Final'")
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected exactly one 'Final' match, got %d", len(rows))
	}
}
