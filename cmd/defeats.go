package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/report"
	"github.com/pable/go-snooker-metrics/internal/stats"
)

var defeatsCmd = &cobra.Command{
	Use:   "defeats",
	Short: "Heaviest Triple Crown defeat per player and event",
	Long: `For every player and Triple Crown event, find the loss with the
largest frame margin across all years. Margin ties keep the earliest
year.`,
	Args: cobra.NoArgs,
	RunE: runDefeats,
}

func runDefeats(cmd *cobra.Command, args []string) error {
	views, _, err := loadSnapshot()
	if err != nil {
		return err
	}
	report.PrintWorstDefeats(os.Stdout, stats.TripleCrownWorstDefeats(views))
	return nil
}
