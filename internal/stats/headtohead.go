package stats

import (
	"fmt"
	"sort"

	"github.com/pable/go-snooker-metrics/internal/engine"
	"github.com/pable/go-snooker-metrics/internal/model"
)

// DefaultMinMeetings is the sample floor for head-to-head pairs.
const DefaultMinMeetings = 10

// h2hMinWinnerFrames filters out walkovers and truncated matches, which
// would otherwise pollute head-to-head records.
const h2hMinWinnerFrames = 4

// h2hEligible applies the walkover filter to both outcomes: a decided match
// needs at least h2hMinWinnerFrames winner frames, and a draw counts as a
// meeting only if frames were actually played (a 0-0 score is a void match,
// not a contest).
func h2hEligible(v model.MatchView) bool {
	if v.Draw {
		return v.WinnerScore > 0
	}
	return v.WinnerScore >= h2hMinWinnerFrames
}

// BestWorstOpponents reports, per player, the opponent they beat most often
// and the one who beats them most often, over professional matches with at
// least minMeetings meetings. Opponents are ranked per player by win ratio
// descending, then meeting count descending, then name; rank 1 is Best and
// the last rank is Worst. A player with a single qualifying opponent gets
// the same opponent in both roles; that is a valid result, not an error.
func BestWorstOpponents(views []model.MatchView, minMeetings int) ([]model.OpponentRow, error) {
	eligible := engine.Filter(professional(views), h2hEligible)
	apps := Flatten(eligible)

	type pairKey struct{ player, opponent string }
	pairs := engine.MinSample(engine.GroupBy(apps, func(a Appearance) pairKey {
		return pairKey{a.Player, a.Opponent}
	}), minMeetings)

	type record struct {
		opponent string
		meetings int
		wins     int
		winPct   float64
	}
	byPlayer := make(map[string][]record)
	for k, g := range pairs {
		wins := engine.CountWhere(g, func(a Appearance) bool { return a.Won })
		pct, err := engine.Percent(wins, len(g))
		if err != nil {
			return nil, fmt.Errorf("head-to-head %s vs %s: %w", k.player, k.opponent, err)
		}
		byPlayer[k.player] = append(byPlayer[k.player], record{
			opponent: k.opponent, meetings: len(g), wins: wins, winPct: pct,
		})
	}

	var rows []model.OpponentRow
	for player, recs := range byPlayer {
		sort.Slice(recs, func(i, j int) bool {
			if recs[i].winPct != recs[j].winPct {
				return recs[i].winPct > recs[j].winPct
			}
			if recs[i].meetings != recs[j].meetings {
				return recs[i].meetings > recs[j].meetings
			}
			return recs[i].opponent < recs[j].opponent
		})
		best, worst := recs[0], recs[len(recs)-1]
		rows = append(rows,
			model.OpponentRow{Player: player, Opponent: best.opponent, Meetings: best.meetings, Wins: best.wins, WinPct: best.winPct, Kind: "Best"},
			model.OpponentRow{Player: player, Opponent: worst.opponent, Meetings: worst.meetings, Wins: worst.wins, WinPct: worst.winPct, Kind: "Worst"},
		)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Player != rows[j].Player {
			return rows[i].Player < rows[j].Player
		}
		return rows[i].Kind < rows[j].Kind // "Best" < "Worst"
	})
	return rows, nil
}

// HeadToHead returns the full record between two named players over
// professional matches (walkover filter applied), in a's perspective.
func HeadToHead(views []model.MatchView, a, b string) (meetings, winsA, winsB, draws int) {
	for _, v := range professional(views) {
		if !h2hEligible(v) {
			continue
		}
		if (v.Winner == a && v.Loser == b) || (v.Winner == b && v.Loser == a) {
			meetings++
			switch {
			case v.Draw:
				draws++
			case v.Winner == a:
				winsA++
			default:
				winsB++
			}
		}
	}
	return
}
