package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/report"
	"github.com/pable/go-snooker-metrics/internal/stats"
)

var h2hMin int

var h2hCmd = &cobra.Command{
	Use:   "h2h [player] [opponent]",
	Short: "Head-to-head records",
	Long: `With no arguments, list each player's best and worst opponent by win
ratio among pairs with enough meetings. Matches won with fewer than four
frames are excluded as noise.

With two player names, print the direct record between them instead.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runH2H,
}

func init() {
	h2hCmd.Flags().IntVar(&h2hMin, "min", stats.DefaultMinMeetings, "minimum meetings for a pair to be ranked")
}

func runH2H(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("need both player names, got only %q", args[0])
	}

	views, _, err := loadSnapshot()
	if err != nil {
		return err
	}

	if len(args) == 2 {
		a, b := args[0], args[1]
		meetings, winsA, winsB, draws := stats.HeadToHead(views, a, b)
		if meetings == 0 {
			fmt.Fprintf(os.Stdout, "No matches between %s and %s.\n", a, b)
			return nil
		}
		fmt.Fprintf(os.Stdout, "%s %d – %d %s  (%d meetings, %d drawn)\n", a, winsA, winsB, b, meetings, draws)
		return nil
	}

	rows, err := stats.BestWorstOpponents(views, h2hMin)
	if err != nil {
		return err
	}
	report.PrintOpponents(os.Stdout, rows)
	return nil
}
