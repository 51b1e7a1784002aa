package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/report"
	"github.com/pable/go-snooker-metrics/internal/stats"
	"github.com/pable/go-snooker-metrics/internal/view"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every report",
	Long: `Run every report over the loaded snapshot and print them in a fixed
order. Reports run concurrently; a failing report prints its error in
its own section without stopping the others.`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

type section struct {
	title string
	run   func(io.Writer) error
}

func runAll(cmd *cobra.Command, args []string) error {
	views, rel, err := loadSnapshot()
	if err != nil {
		return err
	}
	idx := view.Index(views)

	sections := []section{
		{"Win percentage", func(w io.Writer) error {
			rows, err := stats.WinRates(views, stats.DefaultMinMatches)
			if err != nil {
				return err
			}
			report.PrintWinRates(w, rows)
			return nil
		}},
		{"Win percentage by stage", func(w io.Writer) error {
			rows, err := stats.StageWinRates(views, stats.DefaultMinStageMatches)
			if err != nil {
				return err
			}
			report.PrintStageWinRates(w, rows)
			return nil
		}},
		{"Whitewashes", func(w io.Writer) error {
			rows, err := stats.Whitewashes(views, defaultWhitewashMin)
			if err != nil {
				return err
			}
			report.PrintWhitewashes(w, rows)
			return nil
		}},
		{"Titles", func(w io.Writer) error {
			report.PrintTitles(w, stats.Titles(views))
			return nil
		}},
		{"Triple Crown titles", func(w io.Writer) error {
			report.PrintTripleCrown(w, stats.TripleCrownTitles(views))
			return nil
		}},
		{"Triple Crown worst defeats", func(w io.Writer) error {
			report.PrintWorstDefeats(w, stats.TripleCrownWorstDefeats(views))
			return nil
		}},
		{"Best and worst opponents", func(w io.Writer) error {
			rows, err := stats.BestWorstOpponents(views, stats.DefaultMinMeetings)
			if err != nil {
				return err
			}
			report.PrintOpponents(w, rows)
			return nil
		}},
		{"Top breaks", func(w io.Writer) error {
			report.PrintTopBreaks(w, stats.TopBreaks(rel.Scores, idx, 3))
			return nil
		}},
		{"Centuries by year", func(w io.Writer) error {
			report.PrintCenturies(w, stats.CenturiesByYear(rel.Scores, idx))
			return nil
		}},
		{"Maximum breaks", func(w io.Writer) error {
			report.PrintMaximums(w, stats.MaximumBreaks(rel.Scores, idx))
			return nil
		}},
		{"Wins by country", func(w io.Writer) error {
			report.PrintRollup(w, stats.WinsByCountry(views), []string{"COUNTRY", "PLAYER"}, "WINS")
			return nil
		}},
		{"Tournaments entered", func(w io.Writer) error {
			report.PrintEntered(w, stats.TournamentsEntered(views))
			return nil
		}},
		{"Deciding frames", func(w io.Writer) error {
			rows, err := stats.Deciders(views, stats.DefaultMinDeciders)
			if err != nil {
				return err
			}
			report.PrintDeciders(w, rows)
			return nil
		}},
	}

	// The snapshot is immutable once loaded, so every section can render
	// into its own buffer in parallel.
	bufs := make([]bytes.Buffer, len(sections))
	errs := make([]error, len(sections))
	var wg sync.WaitGroup
	for i, s := range sections {
		wg.Add(1)
		go func(i int, s section) {
			defer wg.Done()
			errs[i] = s.run(&bufs[i])
		}(i, s)
	}
	wg.Wait()

	for i, s := range sections {
		fmt.Fprintf(os.Stdout, "\n=== %s ===\n\n", s.title)
		if errs[i] != nil {
			fmt.Fprintf(os.Stdout, "error: %v\n", errs[i])
			continue
		}
		io.Copy(os.Stdout, &bufs[i])
	}
	return nil
}
