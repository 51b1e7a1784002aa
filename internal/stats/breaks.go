package stats

import (
	"sort"

	"github.com/pable/go-snooker-metrics/internal/engine"
	"github.com/pable/go-snooker-metrics/internal/model"
)

const (
	centuryBreak = 100
	maximumBreak = 147
)

// breakEntry resolves a frame-score break to its player and tournament.
type breakEntry struct {
	player     string
	tournament string
	year       int
	value      int
	frame      int
}

// resolveBreaks joins frame scores to their match view and drops entries
// without a break or outside professional tournaments. Scores referencing
// an unknown match belong to a snapshot view.Build already rejected, so
// they cannot occur here; the guard keeps the join total regardless.
func resolveBreaks(scores []model.FrameScore, idx map[int]model.MatchView) []breakEntry {
	var out []breakEntry
	for _, s := range scores {
		if !s.HasBreak {
			continue
		}
		v, ok := idx[s.MatchID]
		if !ok || !v.Professional() {
			continue
		}
		out = append(out, breakEntry{
			player:     v.PlayerBySlot(s.Slot),
			tournament: v.Tournament,
			year:       v.Year,
			value:      s.Break,
			frame:      s.Frame,
		})
	}
	return out
}

// TopBreaks returns the top breaks per tournament edition, ranked by break
// value descending (ties by player then frame order) and cut at topN.
func TopBreaks(scores []model.FrameScore, idx map[int]model.MatchView, topN int) []model.BreakRow {
	type key struct {
		tournament string
		year       int
	}
	ranked := engine.RankWithinPartition(resolveBreaks(scores, idx),
		func(b breakEntry) key { return key{b.tournament, b.year} },
		func(a, b breakEntry) bool {
			if a.value != b.value {
				return a.value > b.value
			}
			if a.player != b.player {
				return a.player < b.player
			}
			return a.frame < b.frame
		},
	)

	var rows []model.BreakRow
	for k, part := range ranked {
		for _, r := range part {
			if r.Rank > topN {
				break
			}
			rows = append(rows, model.BreakRow{
				Rank:       r.Rank,
				Player:     r.Row.player,
				Tournament: k.tournament,
				Year:       k.year,
				Break:      r.Row.value,
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		if rows[i].Tournament != rows[j].Tournament {
			return rows[i].Tournament < rows[j].Tournament
		}
		return rows[i].Rank < rows[j].Rank
	})
	return rows
}

// CenturiesByYear counts century breaks per calendar year and decorates
// each year with the trailing 5-year running average (current year
// included) and the running maximum over the years so far.
func CenturiesByYear(scores []model.FrameScore, idx map[int]model.MatchView) []model.CenturyYearRow {
	counts := make(map[int]int)
	for _, b := range resolveBreaks(scores, idx) {
		if b.value >= centuryBreak {
			counts[b.year]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	vals := make([]float64, len(years))
	for i, y := range years {
		vals[i] = float64(counts[y])
	}
	rolling := engine.RunningAvg(vals, 5)
	runMax := engine.RunningMax(vals, 0)

	rows := make([]model.CenturyYearRow, len(years))
	for i, y := range years {
		rows[i] = model.CenturyYearRow{
			Year:       y,
			Centuries:  counts[y],
			Rolling5:   engine.Round3(rolling[i]),
			RunningMax: int(runMax[i]),
		}
	}
	return rows
}

// MaximumBreaks counts 147s per player with the years of their first and
// last, ordered by count descending then name.
func MaximumBreaks(scores []model.FrameScore, idx map[int]model.MatchView) []model.MaximumBreakRow {
	maximums := engine.Filter(resolveBreaks(scores, idx), func(b breakEntry) bool {
		return b.value == maximumBreak
	})
	groups := engine.GroupBy(maximums, func(b breakEntry) string { return b.player })

	var rows []model.MaximumBreakRow
	for player, entries := range groups {
		first, last := entries[0].year, entries[0].year
		for _, e := range entries[1:] {
			if e.year < first {
				first = e.year
			}
			if e.year > last {
				last = e.year
			}
		}
		rows = append(rows, model.MaximumBreakRow{
			Player:    player,
			Count:     len(entries),
			FirstYear: first,
			LastYear:  last,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Player < rows[j].Player
	})
	return rows
}
