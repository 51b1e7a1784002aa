package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixtureCSV = map[string]string{
	"players.csv": `name,country
Ann,England
Bob,Scotland
`,
	"tournaments.csv": `id,name,year,status,category,city,country
1,World Championship,1999,Professional,Ranking,Sheffield,England
`,
	"matches.csv": `id,tournament_id,stage,player1,player2,score1,score2
10,1,Final,Ann,Bob,18,12
`,
	"scores.csv": `match_id,frame,slot,points,break
10,1,1,75,62
10,1,2,30,
10,2,1,147,147
`,
}

func writeFixture(t *testing.T, override map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range fixtureCSV {
		if o, ok := override[name]; ok {
			content = o
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestReadDir(t *testing.T) {
	rel, err := ReadDir(writeFixture(t, nil))
	require.NoError(t, err)

	require.Len(t, rel.Players, 2)
	assert.Equal(t, "Ann", rel.Players[0].Name)
	assert.Equal(t, "England", rel.Players[0].Country)

	require.Len(t, rel.Tournaments, 1)
	assert.Equal(t, 1999, rel.Tournaments[0].Year)
	assert.Equal(t, "Professional", rel.Tournaments[0].Status)

	require.Len(t, rel.Matches, 1)
	assert.Equal(t, "Final", rel.Matches[0].Stage)
	assert.Equal(t, 18, rel.Matches[0].Score1)

	require.Len(t, rel.Scores, 3)
	assert.True(t, rel.Scores[0].HasBreak)
	assert.Equal(t, 62, rel.Scores[0].Break)
	assert.False(t, rel.Scores[1].HasBreak, "empty break column must stay unset")
	assert.Equal(t, 147, rel.Scores[2].Break)
}

// Columns are located by header name, so reordering them must not matter.
func TestReadDirHeaderOrderIndependent(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"players.csv": "country,name\nEngland,Ann\nScotland,Bob\n",
	})
	rel, err := ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "Ann", rel.Players[0].Name)
	assert.Equal(t, "England", rel.Players[0].Country)
}

func TestReadDirErrorsCarryLineNumbers(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"matches.csv": "id,tournament_id,stage,player1,player2,score1,score2\n10,1,Final,Ann,Bob,18,twelve\n",
	})
	_, err := ReadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matches.csv")
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "score2")
}

// A file missing a column the builder reads must fail at the header, not
// load rows with silently blank fields.
func TestReadDirMissingColumn(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"players.csv": "name\nAnn\nBob\n",
	})
	_, err := ReadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "players.csv")
	assert.Contains(t, err.Error(), "country")
}

func TestReadWorkbookMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")

	f := excelize.NewFile()
	sheetRows := map[string][][]any{
		"players":     {{"name"}, {"Ann"}}, // country column dropped
		"tournaments": {{"id", "name", "year", "status", "category", "city", "country"}},
		"matches":     {{"id", "tournament_id", "stage", "player1", "player2", "score1", "score2"}},
		"scores":      {{"match_id", "frame", "slot", "points", "break"}},
	}
	for sheet, rows := range sheetRows {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(sheet, cell, &row))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ReadWorkbook(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "country")
}

func TestReadDirMissingFile(t *testing.T) {
	dir := writeFixture(t, nil)
	require.NoError(t, os.Remove(filepath.Join(dir, "scores.csv")))
	_, err := ReadDir(dir)
	assert.Error(t, err)
}

func TestValidateRejectsBadScores(t *testing.T) {
	cases := map[string]string{
		"invalid slot": `match_id,frame,slot,points,break
10,1,3,50,
`,
		"negative points": `match_id,frame,slot,points,break
10,1,1,-5,
`,
		"break out of range": `match_id,frame,slot,points,break
10,1,1,40,148
`,
		"break below 50": `match_id,frame,slot,points,break
10,1,1,40,49
`,
		"two maximums in one frame": `match_id,frame,slot,points,break
10,1,1,147,147
10,1,2,147,147
`,
	}
	for name, scores := range cases {
		t.Run(name, func(t *testing.T) {
			dir := writeFixture(t, map[string]string{"scores.csv": scores})
			_, err := ReadDir(dir)
			assert.Error(t, err)
		})
	}
}

func TestReadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xlsx")

	f := excelize.NewFile()
	sheetRows := map[string][][]any{
		"players": {
			{"name", "country"},
			{"Ann", "England"},
			{"Bob", "Scotland"},
		},
		"tournaments": {
			{"id", "name", "year", "status", "category", "city", "country"},
			{1, "World Championship", 1999, "Professional", "Ranking", "Sheffield", "England"},
		},
		"matches": {
			{"id", "tournament_id", "stage", "player1", "player2", "score1", "score2"},
			{10, 1, "Final", "Ann", "Bob", 18, 12},
		},
		"scores": {
			{"match_id", "frame", "slot", "points", "break"},
			{10, 1, 1, 75, 62},
			{10, 1, 2, 30, ""},
		},
	}
	for sheet, rows := range sheetRows {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(sheet, cell, &row))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rel, err := ReadWorkbook(path)
	require.NoError(t, err)

	require.Len(t, rel.Players, 2)
	require.Len(t, rel.Matches, 1)
	assert.Equal(t, 18, rel.Matches[0].Score1)
	require.Len(t, rel.Scores, 2)
	assert.True(t, rel.Scores[0].HasBreak)
	assert.False(t, rel.Scores[1].HasBreak)
}

func TestReadWorkbookMissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ReadWorkbook(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing sheet")
}
