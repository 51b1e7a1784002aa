package stats

import (
	"github.com/pable/go-snooker-metrics/internal/engine"
	"github.com/pable/go-snooker-metrics/internal/model"
)

// WinsByCountry rolls professional match wins up over (country, player):
// one leaf row per player, a subtotal row per country, and a grand total,
// subtotals carrying the "Total" sentinel so they cannot be mistaken for
// player names.
func WinsByCountry(views []model.MatchView) []engine.RollupRow {
	wins := engine.Filter(professional(views), func(v model.MatchView) bool { return !v.Draw })
	return engine.Rollup(wins,
		func(model.MatchView) int { return 1 },
		func(v model.MatchView) string { return v.WinnerCountry },
		func(v model.MatchView) string { return v.Winner },
	)
}

// PlayersByCountry counts distinct professional players per country, with
// a grand total row. Players are collected from both match roles so a
// player who never won still counts for their country.
func PlayersByCountry(views []model.MatchView) []engine.RollupRow {
	type entry struct{ player, country string }
	seen := make(map[entry]bool)
	var entries []entry
	for _, a := range Flatten(professional(views)) {
		e := entry{a.Player, a.Country}
		if !seen[e] {
			seen[e] = true
			entries = append(entries, e)
		}
	}
	return engine.Rollup(entries,
		func(entry) int { return 1 },
		func(e entry) string { return e.country },
	)
}
