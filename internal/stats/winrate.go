package stats

import (
	"fmt"
	"sort"

	"github.com/pable/go-snooker-metrics/internal/engine"
	"github.com/pable/go-snooker-metrics/internal/model"
)

// DefaultMinMatches is the sample floor for career-level percentages.
const DefaultMinMatches = 100

// DefaultMinStageMatches is the sample floor for per-stage percentages.
const DefaultMinStageMatches = 30

// WinRates computes career win percentage over professional matches for
// every player with at least minMatches of them. Wins and losses come from
// two separate group-bys (player-as-winner, player-as-loser) reconciled by
// a union over player identity, so a player who never lost still gets a
// row with zero losses. Draws are counted for both participants and are
// neither wins nor losses.
func WinRates(views []model.MatchView, minMatches int) ([]model.WinRateRow, error) {
	pro := professional(views)

	type tally struct{ wins, losses, draws int }
	tallies := make(map[string]*tally)
	get := func(name string) *tally {
		t := tallies[name]
		if t == nil {
			t = &tally{}
			tallies[name] = t
		}
		return t
	}

	for _, v := range pro {
		if v.Draw {
			get(v.Player1).draws++
			get(v.Player2).draws++
			continue
		}
		get(v.Winner).wins++
		get(v.Loser).losses++
	}

	var rows []model.WinRateRow
	for name, t := range tallies {
		matches := t.wins + t.losses + t.draws
		if matches < minMatches {
			continue
		}
		pct, err := engine.Percent(t.wins, matches)
		if err != nil {
			return nil, fmt.Errorf("win rate for %s: %w", name, err)
		}
		rows = append(rows, model.WinRateRow{
			Player:  name,
			Matches: matches,
			Wins:    t.wins,
			Losses:  t.losses,
			Draws:   t.draws,
			WinPct:  pct,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].WinPct != rows[j].WinPct {
			return rows[i].WinPct > rows[j].WinPct
		}
		if rows[i].Matches != rows[j].Matches {
			return rows[i].Matches > rows[j].Matches
		}
		return rows[i].Player < rows[j].Player
	})
	return rows, nil
}

// StageWinRates computes win percentage per (player, stage) over
// professional matches, keeping pairs with at least minMatches matches at
// that stage. Stage labels are compared exactly; "Final" and "final" are
// different stages.
func StageWinRates(views []model.MatchView, minMatches int) ([]model.StageWinRateRow, error) {
	type key struct{ player, stage string }

	apps := Flatten(professional(views))
	groups := engine.MinSample(engine.GroupBy(apps, func(a Appearance) key {
		return key{a.Player, a.View.Stage}
	}), minMatches)

	var rows []model.StageWinRateRow
	for k, g := range groups {
		wins := engine.CountWhere(g, func(a Appearance) bool { return a.Won })
		pct, err := engine.Percent(wins, len(g))
		if err != nil {
			return nil, fmt.Errorf("stage win rate for %s at %s: %w", k.player, k.stage, err)
		}
		rows = append(rows, model.StageWinRateRow{
			Player:  k.player,
			Stage:   k.stage,
			Matches: len(g),
			Wins:    wins,
			WinPct:  pct,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Player != rows[j].Player {
			return rows[i].Player < rows[j].Player
		}
		if rows[i].WinPct != rows[j].WinPct {
			return rows[i].WinPct > rows[j].WinPct
		}
		return rows[i].Stage < rows[j].Stage
	})
	return rows, nil
}
