// Package stats implements the report builders. Each builder is a pure
// function from the enriched match views (plus auxiliary relations) to an
// ordered result set; builders share no state and declare their own sample
// thresholds and sort orders.
package stats

import "github.com/pable/go-snooker-metrics/internal/model"

// Appearance is one player's participation in one match, produced by
// flattening each match into two role-tagged rows. Several statistics
// (tournaments entered, head-to-head, deciders) must count a player once
// per match regardless of role; aggregating over appearances instead of
// raw matches makes double counting impossible.
type Appearance struct {
	Player   string
	Country  string
	Opponent string
	Won      bool
	Draw     bool
	View     model.MatchView
}

// Flatten maps each match to exactly two appearances, one per player.
// Drawn matches yield two appearances with Won=false and Draw=true.
func Flatten(views []model.MatchView) []Appearance {
	out := make([]Appearance, 0, 2*len(views))
	for _, v := range views {
		out = append(out,
			Appearance{
				Player:   v.Winner,
				Country:  v.WinnerCountry,
				Opponent: v.Loser,
				Won:      !v.Draw,
				Draw:     v.Draw,
				View:     v,
			},
			Appearance{
				Player:   v.Loser,
				Country:  v.LoserCountry,
				Opponent: v.Winner,
				Won:      false,
				Draw:     v.Draw,
				View:     v,
			},
		)
	}
	return out
}

// professional filters views to professional tournaments.
func professional(views []model.MatchView) []model.MatchView {
	var out []model.MatchView
	for _, v := range views {
		if v.Professional() {
			out = append(out, v)
		}
	}
	return out
}
