package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/report"
	"github.com/pable/go-snooker-metrics/internal/stats"
)

var (
	winrateMin      int
	winrateByStage  bool
	winrateStageMin int
)

var winrateCmd = &cobra.Command{
	Use:   "winrate",
	Short: "Career win percentages",
	Long: `Rank players by career win percentage across all matches.

Drawn matches count toward the total but are never credited as wins.
With --by-stage the breakdown is computed per tournament stage instead.`,
	Args: cobra.NoArgs,
	RunE: runWinrate,
}

func init() {
	winrateCmd.Flags().IntVar(&winrateMin, "min", stats.DefaultMinMatches, "minimum career matches to be listed")
	winrateCmd.Flags().BoolVar(&winrateByStage, "by-stage", false, "break the win rate down per tournament stage")
	winrateCmd.Flags().IntVar(&winrateStageMin, "stage-min", stats.DefaultMinStageMatches, "minimum matches per stage with --by-stage")
}

func runWinrate(cmd *cobra.Command, args []string) error {
	views, _, err := loadSnapshot()
	if err != nil {
		return err
	}

	if winrateByStage {
		rows, err := stats.StageWinRates(views, winrateStageMin)
		if err != nil {
			return err
		}
		report.PrintStageWinRates(os.Stdout, rows)
		return nil
	}

	rows, err := stats.WinRates(views, winrateMin)
	if err != nil {
		return err
	}
	report.PrintWinRates(os.Stdout, rows)
	return nil
}
