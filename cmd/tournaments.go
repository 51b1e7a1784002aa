package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/report"
	"github.com/pable/go-snooker-metrics/internal/stats"
)

var tournamentsCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "Tournament editions entered per player",
	Long:  "Count the distinct tournament editions each player appeared in, with the first and last year of their span.",
	Args:  cobra.NoArgs,
	RunE:  runTournaments,
}

func runTournaments(cmd *cobra.Command, args []string) error {
	views, _, err := loadSnapshot()
	if err != nil {
		return err
	}
	report.PrintEntered(os.Stdout, stats.TournamentsEntered(views))
	return nil
}
