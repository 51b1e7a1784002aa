package stats

import (
	"sort"

	"github.com/pable/go-snooker-metrics/internal/engine"
	"github.com/pable/go-snooker-metrics/internal/model"
)

// finals returns professional matches decided at the Final stage. The
// stage comparison is exact: lower-case variants in the source data label
// different stages and must not count as titles.
func finals(views []model.MatchView) []model.MatchView {
	return engine.Filter(professional(views), func(v model.MatchView) bool {
		return model.IsFinal(v.Stage) && !v.Draw
	})
}

// Titles counts tournament titles per player. The most recent title is the
// win with the highest year; two titles in the same year are broken by the
// alphabetically first tournament name.
func Titles(views []model.MatchView) []model.TitleRow {
	groups := engine.GroupBy(finals(views), func(v model.MatchView) string { return v.Winner })

	var rows []model.TitleRow
	for player, wins := range groups {
		last := wins[0]
		for _, w := range wins[1:] {
			switch {
			case w.Year > last.Year:
				last = w
			case w.Year == last.Year && w.Tournament < last.Tournament:
				last = w
			}
		}
		rows = append(rows, model.TitleRow{
			Player:         player,
			Titles:         len(wins),
			LastYear:       last.Year,
			LastTournament: last.Tournament,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Titles != rows[j].Titles {
			return rows[i].Titles > rows[j].Titles
		}
		if rows[i].LastYear != rows[j].LastYear {
			return rows[i].LastYear > rows[j].LastYear
		}
		return rows[i].Player < rows[j].Player
	})
	return rows
}

// TripleCrownTitles pivots Final-stage wins at the three Triple Crown
// events into one column per event plus a total. Players with no Triple
// Crown title are omitted; events a listed player never won are zero-filled.
func TripleCrownTitles(views []model.MatchView) []model.TripleCrownRow {
	pivoted := engine.Pivot(finals(views),
		func(v model.MatchView) string { return v.Winner },
		func(v model.MatchView) string { return v.Tournament },
		model.TripleCrown,
	)

	rows := make([]model.TripleCrownRow, 0, len(pivoted))
	for player, counts := range pivoted {
		total := 0
		for _, c := range counts {
			total += c
		}
		rows = append(rows, model.TripleCrownRow{Player: player, Counts: counts, Total: total})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		// World titles outrank Masters outrank UK on equal totals.
		for c := range model.TripleCrown {
			if rows[i].Counts[c] != rows[j].Counts[c] {
				return rows[i].Counts[c] > rows[j].Counts[c]
			}
		}
		return rows[i].Player < rows[j].Player
	})
	return rows
}
