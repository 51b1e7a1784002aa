package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/report"
	"github.com/pable/go-snooker-metrics/internal/stats"
)

const defaultWhitewashMin = 10

var whitewashMin int

var whitewashCmd = &cobra.Command{
	Use:   "whitewash",
	Short: "Whitewash percentages in professional play",
	Long: `Rank players by the share of their qualifying wins in which the
opponent took no frame. Only professional wins of six or more frames
qualify, so short-format events never distort the rate.`,
	Args: cobra.NoArgs,
	RunE: runWhitewash,
}

func init() {
	whitewashCmd.Flags().IntVar(&whitewashMin, "min", defaultWhitewashMin, "minimum qualifying wins to be listed")
}

func runWhitewash(cmd *cobra.Command, args []string) error {
	views, _, err := loadSnapshot()
	if err != nil {
		return err
	}
	rows, err := stats.Whitewashes(views, whitewashMin)
	if err != nil {
		return err
	}
	report.PrintWhitewashes(os.Stdout, rows)
	return nil
}
