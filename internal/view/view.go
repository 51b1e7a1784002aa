// Package view builds the denormalized MatchView relation every report
// reads from: matches joined to their tournament and to both players, with
// winner/loser resolved by score comparison.
package view

import (
	"fmt"
	"strings"

	"github.com/pable/go-snooker-metrics/internal/model"
)

// IntegrityError reports matches that violate referential integrity or the
// basic score invariants. Such rows indicate a corrupt snapshot, so they are
// reported rather than silently dropped.
type IntegrityError struct {
	Violations []string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("snapshot integrity: %d violation(s):\n  %s",
		len(e.Violations), strings.Join(e.Violations, "\n  "))
}

// Build joins the four base relations into MatchView rows. A match whose
// tournament id or player names are missing from the reference tables, or
// whose scores are negative, or that lists the same player twice, is
// recorded as a violation; if any violation exists Build returns the
// IntegrityError and no views.
func Build(rel model.Relations) ([]model.MatchView, error) {
	tournaments := make(map[int]model.Tournament, len(rel.Tournaments))
	for _, t := range rel.Tournaments {
		tournaments[t.ID] = t
	}
	players := make(map[string]model.Player, len(rel.Players))
	for _, p := range rel.Players {
		players[p.Name] = p
	}

	var violations []string
	views := make([]model.MatchView, 0, len(rel.Matches))

	for _, m := range rel.Matches {
		t, ok := tournaments[m.TournamentID]
		if !ok {
			violations = append(violations, fmt.Sprintf("match %d: unknown tournament id %d", m.ID, m.TournamentID))
			continue
		}
		p1, ok := players[m.Player1]
		if !ok {
			violations = append(violations, fmt.Sprintf("match %d: unknown player %q", m.ID, m.Player1))
			continue
		}
		p2, ok := players[m.Player2]
		if !ok {
			violations = append(violations, fmt.Sprintf("match %d: unknown player %q", m.ID, m.Player2))
			continue
		}
		if m.Player1 == m.Player2 {
			violations = append(violations, fmt.Sprintf("match %d: player %q listed on both sides", m.ID, m.Player1))
			continue
		}
		if m.Score1 < 0 || m.Score2 < 0 {
			violations = append(violations, fmt.Sprintf("match %d: negative score %d-%d", m.ID, m.Score1, m.Score2))
			continue
		}

		v := model.MatchView{
			MatchID:      m.ID,
			TournamentID: t.ID,
			Tournament:   t.Name,
			Year:         t.Year,
			Status:       t.Status,
			Category:     t.Category,
			Stage:        m.Stage,
			Player1:      m.Player1,
			Player2:      m.Player2,
		}

		switch {
		case m.Score1 > m.Score2:
			v.Winner, v.WinnerCountry, v.WinnerScore = p1.Name, p1.Country, m.Score1
			v.Loser, v.LoserCountry, v.LoserScore = p2.Name, p2.Country, m.Score2
		case m.Score2 > m.Score1:
			v.Winner, v.WinnerCountry, v.WinnerScore = p2.Name, p2.Country, m.Score2
			v.Loser, v.LoserCountry, v.LoserScore = p1.Name, p1.Country, m.Score1
		default:
			// Walkover or void match: a draw is its own outcome, never a win.
			v.Draw = true
			v.Winner, v.WinnerCountry, v.WinnerScore = p1.Name, p1.Country, m.Score1
			v.Loser, v.LoserCountry, v.LoserScore = p2.Name, p2.Country, m.Score2
		}

		views = append(views, v)
	}

	if len(violations) > 0 {
		return nil, &IntegrityError{Violations: violations}
	}
	return views, nil
}

// Index maps match id to its view, for frame-score resolution.
func Index(views []model.MatchView) map[int]model.MatchView {
	idx := make(map[int]model.MatchView, len(views))
	for _, v := range views {
		idx[v.MatchID] = v
	}
	return idx
}
