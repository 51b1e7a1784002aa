package stats

import (
	"fmt"
	"sort"

	"github.com/pable/go-snooker-metrics/internal/engine"
	"github.com/pable/go-snooker-metrics/internal/model"
)

// DefaultMinDeciders is the sample floor for deciding-frame records.
const DefaultMinDeciders = 30

// Deciders computes each player's record in matches that went to a deciding
// frame (frame margin of exactly one). Players with fewer than minDeciders
// such matches are dropped.
func Deciders(views []model.MatchView, minDeciders int) ([]model.DeciderRow, error) {
	decided := engine.Filter(professional(views), func(v model.MatchView) bool {
		return !v.Draw && v.Margin() == 1
	})

	groups := engine.MinSample(engine.GroupBy(Flatten(decided), func(a Appearance) string {
		return a.Player
	}), minDeciders)

	var rows []model.DeciderRow
	for player, apps := range groups {
		won := engine.CountWhere(apps, func(a Appearance) bool { return a.Won })
		pct, err := engine.Percent(won, len(apps))
		if err != nil {
			return nil, fmt.Errorf("decider record for %s: %w", player, err)
		}
		rows = append(rows, model.DeciderRow{
			Player:   player,
			Deciders: len(apps),
			Won:      won,
			WinPct:   pct,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].WinPct != rows[j].WinPct {
			return rows[i].WinPct > rows[j].WinPct
		}
		if rows[i].Deciders != rows[j].Deciders {
			return rows[i].Deciders > rows[j].Deciders
		}
		return rows[i].Player < rows[j].Player
	})
	return rows, nil
}
