// Package report renders builder output as aligned tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-snooker-metrics/internal/engine"
	"github.com/pable/go-snooker-metrics/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintOverview prints a one-block summary of the stored snapshot.
func PrintOverview(w io.Writer, ov model.DatasetOverview) {
	fmt.Fprintf(w, "\n=== Dataset Summary ===\n\n")
	fmt.Fprintf(w, "  Players      : %d\n", ov.Players)
	fmt.Fprintf(w, "  Tournaments  : %d\n", ov.Tournaments)
	fmt.Fprintf(w, "  Matches      : %d\n", ov.Matches)
	fmt.Fprintf(w, "  Frame scores : %d\n", ov.Frames)
	fmt.Fprintf(w, "  50+ breaks   : %d\n", ov.Breaks)
	fmt.Fprintf(w, "  Years        : %d – %d\n", ov.FirstYear, ov.LastYear)
}

// PrintWinRates prints the career win percentage table.
func PrintWinRates(w io.Writer, rows []model.WinRateRow) {
	table := newTable(w)
	table.Header("PLAYER", "MATCHES", "W", "L", "D", "WIN%")
	for _, r := range rows {
		table.Append(
			r.Player,
			strconv.Itoa(r.Matches),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Draws),
			fmt.Sprintf("%.3f", r.WinPct),
		)
	}
	table.Render()
}

// PrintStageWinRates prints per-stage win percentages.
func PrintStageWinRates(w io.Writer, rows []model.StageWinRateRow) {
	table := newTable(w)
	table.Header("PLAYER", "STAGE", "MATCHES", "W", "WIN%")
	for _, r := range rows {
		table.Append(
			r.Player,
			r.Stage,
			strconv.Itoa(r.Matches),
			strconv.Itoa(r.Wins),
			fmt.Sprintf("%.3f", r.WinPct),
		)
	}
	table.Render()
}

// PrintWhitewashes prints the whitewash percentage table.
func PrintWhitewashes(w io.Writer, rows []model.WhitewashRow) {
	table := newTable(w)
	table.Header("PLAYER", "WINS", "WHITEWASHES", "WW%")
	for _, r := range rows {
		table.Append(
			r.Player,
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Whitewashes),
			fmt.Sprintf("%.3f", r.Pct),
		)
	}
	table.Render()
}

// PrintTitles prints tournament title counts with the most recent title.
func PrintTitles(w io.Writer, rows []model.TitleRow) {
	table := newTable(w)
	table.Header("PLAYER", "TITLES", "LAST TITLE")
	for _, r := range rows {
		table.Append(
			r.Player,
			strconv.Itoa(r.Titles),
			fmt.Sprintf("%s %d", r.LastTournament, r.LastYear),
		)
	}
	table.Render()
}

// PrintTripleCrown prints the Triple Crown title pivot.
func PrintTripleCrown(w io.Writer, rows []model.TripleCrownRow) {
	table := newTable(w)
	header := make([]any, 0, len(model.TripleCrown)+2)
	header = append(header, "PLAYER")
	for _, t := range model.TripleCrown {
		header = append(header, strings.ToUpper(t))
	}
	header = append(header, "TOTAL")
	table.Header(header...)

	for _, r := range rows {
		cells := make([]any, 0, len(r.Counts)+2)
		cells = append(cells, r.Player)
		for _, c := range r.Counts {
			cells = append(cells, strconv.Itoa(c))
		}
		cells = append(cells, strconv.Itoa(r.Total))
		table.Append(cells...)
	}
	table.Render()
}

// PrintWorstDefeats prints each player's heaviest Triple Crown loss.
func PrintWorstDefeats(w io.Writer, rows []model.WorstDefeatRow) {
	table := newTable(w)
	table.Header("PLAYER", "TOURNAMENT", "YEAR", "OPPONENT", "SCORE", "MARGIN")
	for _, r := range rows {
		table.Append(
			r.Player,
			r.Tournament,
			strconv.Itoa(r.Year),
			r.Opponent,
			fmt.Sprintf("%d–%d", r.LoserScore, r.WinnerScore),
			strconv.Itoa(r.Margin),
		)
	}
	table.Render()
}

// PrintOpponents prints best/worst opponent pairs.
func PrintOpponents(w io.Writer, rows []model.OpponentRow) {
	table := newTable(w)
	table.Header("PLAYER", " ", "OPPONENT", "MEETINGS", "W", "WIN%")
	for _, r := range rows {
		table.Append(
			r.Player,
			r.Kind,
			r.Opponent,
			strconv.Itoa(r.Meetings),
			strconv.Itoa(r.Wins),
			fmt.Sprintf("%.3f", r.WinPct),
		)
	}
	table.Render()
}

// PrintTopBreaks prints the top breaks per tournament edition.
func PrintTopBreaks(w io.Writer, rows []model.BreakRow) {
	table := newTable(w)
	table.Header("YEAR", "TOURNAMENT", "#", "PLAYER", "BREAK")
	for _, r := range rows {
		table.Append(
			strconv.Itoa(r.Year),
			r.Tournament,
			strconv.Itoa(r.Rank),
			r.Player,
			strconv.Itoa(r.Break),
		)
	}
	table.Render()
}

// PrintCenturies prints yearly century counts with running statistics.
func PrintCenturies(w io.Writer, rows []model.CenturyYearRow) {
	table := newTable(w)
	table.Header("YEAR", "CENTURIES", "AVG(5Y)", "RUNNING MAX")
	for _, r := range rows {
		table.Append(
			strconv.Itoa(r.Year),
			strconv.Itoa(r.Centuries),
			fmt.Sprintf("%.3f", r.Rolling5),
			strconv.Itoa(r.RunningMax),
		)
	}
	table.Render()
}

// PrintMaximums prints 147 counts per player.
func PrintMaximums(w io.Writer, rows []model.MaximumBreakRow) {
	table := newTable(w)
	table.Header("PLAYER", "147s", "FIRST", "LAST")
	for _, r := range rows {
		table.Append(
			r.Player,
			strconv.Itoa(r.Count),
			strconv.Itoa(r.FirstYear),
			strconv.Itoa(r.LastYear),
		)
	}
	table.Render()
}

// PrintRollup prints rollup rows under the given key column headers.
// Subtotal and total rows already carry the sentinel label in their keys.
func PrintRollup(w io.Writer, rows []engine.RollupRow, keyHeaders []string, valueHeader string) {
	table := newTable(w)
	header := make([]any, 0, len(keyHeaders)+1)
	for _, h := range keyHeaders {
		header = append(header, h)
	}
	header = append(header, valueHeader)
	table.Header(header...)

	for _, r := range rows {
		cells := make([]any, 0, len(r.Keys)+1)
		for _, k := range r.Keys {
			cells = append(cells, k)
		}
		cells = append(cells, strconv.Itoa(r.Value))
		table.Append(cells...)
	}
	table.Render()
}

// PrintEntered prints tournaments-entered counts.
func PrintEntered(w io.Writer, rows []model.EnteredRow) {
	table := newTable(w)
	table.Header("PLAYER", "ENTERED", "FIRST", "LAST")
	for _, r := range rows {
		table.Append(
			r.Player,
			strconv.Itoa(r.Entered),
			strconv.Itoa(r.FirstYear),
			strconv.Itoa(r.LastYear),
		)
	}
	table.Render()
}

// PrintDeciders prints deciding-frame records.
func PrintDeciders(w io.Writer, rows []model.DeciderRow) {
	table := newTable(w)
	table.Header("PLAYER", "DECIDERS", "WON", "WIN%")
	for _, r := range rows {
		table.Append(
			r.Player,
			strconv.Itoa(r.Deciders),
			strconv.Itoa(r.Won),
			fmt.Sprintf("%.3f", r.WinPct),
		)
	}
	table.Render()
}
