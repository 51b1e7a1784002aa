package stats

import (
	"sort"

	"github.com/pable/go-snooker-metrics/internal/model"
)

// TournamentsEntered counts distinct professional tournament editions each
// player appeared in, in either role. Flattening to appearances first means
// a player is counted once per edition no matter how many matches they
// played there.
func TournamentsEntered(views []model.MatchView) []model.EnteredRow {
	type edition struct {
		player     string
		tournament string
		year       int
	}
	seen := make(map[edition]bool)
	type span struct {
		entered     int
		first, last int
	}
	spans := make(map[string]*span)

	for _, a := range Flatten(professional(views)) {
		e := edition{a.Player, a.View.Tournament, a.View.Year}
		if seen[e] {
			continue
		}
		seen[e] = true
		s := spans[a.Player]
		if s == nil {
			s = &span{first: e.year, last: e.year}
			spans[a.Player] = s
		}
		s.entered++
		if e.year < s.first {
			s.first = e.year
		}
		if e.year > s.last {
			s.last = e.year
		}
	}

	rows := make([]model.EnteredRow, 0, len(spans))
	for player, s := range spans {
		rows = append(rows, model.EnteredRow{
			Player:    player,
			Entered:   s.entered,
			FirstYear: s.first,
			LastYear:  s.last,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Entered != rows[j].Entered {
			return rows[i].Entered > rows[j].Entered
		}
		return rows[i].Player < rows[j].Player
	})
	return rows
}
