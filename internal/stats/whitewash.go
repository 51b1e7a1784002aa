package stats

import (
	"fmt"
	"sort"

	"github.com/pable/go-snooker-metrics/internal/engine"
	"github.com/pable/go-snooker-metrics/internal/model"
)

// whitewashMinFrames excludes short-format and walkover wins: a whitewash
// is only meaningful when the winner needed at least 6 frames.
const whitewashMinFrames = 6

// Whitewashes computes, per player, the share of their qualifying
// professional wins (winner score >= 6) in which the opponent took no
// frame. Players with fewer than minWins qualifying wins are dropped.
func Whitewashes(views []model.MatchView, minWins int) ([]model.WhitewashRow, error) {
	qualifying := engine.Filter(professional(views), func(v model.MatchView) bool {
		return !v.Draw && v.WinnerScore >= whitewashMinFrames
	})

	groups := engine.MinSample(engine.GroupBy(qualifying, func(v model.MatchView) string {
		return v.Winner
	}), minWins)

	var rows []model.WhitewashRow
	for player, wins := range groups {
		ww := engine.CountWhere(wins, func(v model.MatchView) bool { return v.LoserScore == 0 })
		pct, err := engine.Percent(ww, len(wins))
		if err != nil {
			return nil, fmt.Errorf("whitewash rate for %s: %w", player, err)
		}
		rows = append(rows, model.WhitewashRow{
			Player:      player,
			Wins:        len(wins),
			Whitewashes: ww,
			Pct:         pct,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Pct != rows[j].Pct {
			return rows[i].Pct > rows[j].Pct
		}
		if rows[i].Whitewashes != rows[j].Whitewashes {
			return rows[i].Whitewashes > rows[j].Whitewashes
		}
		return rows[i].Player < rows[j].Player
	})
	return rows, nil
}
