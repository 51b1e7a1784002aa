package stats

import (
	"sort"

	"github.com/pable/go-snooker-metrics/internal/engine"
	"github.com/pable/go-snooker-metrics/internal/model"
)

// TripleCrownWorstDefeats finds, for each player and each Triple Crown
// event (pooled across every year of that event), the loss with the widest
// frame margin. Ties on margin are broken by earliest year, then opponent
// name, so re-runs are stable.
func TripleCrownWorstDefeats(views []model.MatchView) []model.WorstDefeatRow {
	tc := make(map[string]bool, len(model.TripleCrown))
	for _, name := range model.TripleCrown {
		tc[name] = true
	}

	losses := engine.Filter(professional(views), func(v model.MatchView) bool {
		return tc[v.Tournament] && !v.Draw
	})

	type key struct{ player, tournament string }
	ranked := engine.RankWithinPartition(losses,
		func(v model.MatchView) key { return key{v.Loser, v.Tournament} },
		func(a, b model.MatchView) bool {
			if a.Margin() != b.Margin() {
				return a.Margin() > b.Margin()
			}
			if a.Year != b.Year {
				return a.Year < b.Year
			}
			return a.Winner < b.Winner
		},
	)

	var rows []model.WorstDefeatRow
	for k, part := range ranked {
		worst := part[0].Row // rank 1 = widest margin
		rows = append(rows, model.WorstDefeatRow{
			Player:      k.player,
			Tournament:  k.tournament,
			Year:        worst.Year,
			Opponent:    worst.Winner,
			WinnerScore: worst.WinnerScore,
			LoserScore:  worst.LoserScore,
			Margin:      worst.Margin(),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Player != rows[j].Player {
			return rows[i].Player < rows[j].Player
		}
		return rows[i].Tournament < rows[j].Tournament
	})
	return rows
}
