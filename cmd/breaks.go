package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/report"
	"github.com/pable/go-snooker-metrics/internal/stats"
	"github.com/pable/go-snooker-metrics/internal/view"
)

var breaksTopN int

var breaksCmd = &cobra.Command{
	Use:   "breaks <top|centuries|maximums>",
	Short: "Break records",
	Long: `Break statistics from the per-frame scores:

  top       highest breaks per tournament edition
  centuries century counts per year with running average and maximum
  maximums  147 breaks per player with first and last year`,
	Args: cobra.ExactArgs(1),
	RunE: runBreaks,
}

func init() {
	breaksCmd.Flags().IntVar(&breaksTopN, "top", 3, "breaks to keep per tournament edition (top subcommand)")
}

func runBreaks(cmd *cobra.Command, args []string) error {
	views, rel, err := loadSnapshot()
	if err != nil {
		return err
	}
	idx := view.Index(views)

	switch args[0] {
	case "top":
		report.PrintTopBreaks(os.Stdout, stats.TopBreaks(rel.Scores, idx, breaksTopN))
	case "centuries":
		report.PrintCenturies(os.Stdout, stats.CenturiesByYear(rel.Scores, idx))
	case "maximums":
		report.PrintMaximums(os.Stdout, stats.MaximumBreaks(rel.Scores, idx))
	default:
		return fmt.Errorf("unknown breaks report %q: want top, centuries or maximums", args[0])
	}
	return nil
}
