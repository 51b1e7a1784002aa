package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/report"
	"github.com/pable/go-snooker-metrics/internal/stats"
)

var titlesTripleCrown bool

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Tournament titles per player",
	Long: `Count professional tournament titles (Final-stage wins) per player.

With --triple-crown the output is a pivot of World Championship, Masters
and UK Championship titles instead, zero-filled for events never won.`,
	Args: cobra.NoArgs,
	RunE: runTitles,
}

func init() {
	titlesCmd.Flags().BoolVar(&titlesTripleCrown, "triple-crown", false, "pivot titles across the three Triple Crown events")
}

func runTitles(cmd *cobra.Command, args []string) error {
	views, _, err := loadSnapshot()
	if err != nil {
		return err
	}

	if titlesTripleCrown {
		report.PrintTripleCrown(os.Stdout, stats.TripleCrownTitles(views))
		return nil
	}
	report.PrintTitles(os.Stdout, stats.Titles(views))
	return nil
}
