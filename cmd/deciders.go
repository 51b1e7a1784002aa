package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/report"
	"github.com/pable/go-snooker-metrics/internal/stats"
)

var decidersMin int

var decidersCmd = &cobra.Command{
	Use:   "deciders",
	Short: "Deciding-frame records",
	Long:  "Rank players by their win ratio in professional matches decided by a single frame.",
	Args:  cobra.NoArgs,
	RunE:  runDeciders,
}

func init() {
	decidersCmd.Flags().IntVar(&decidersMin, "min", stats.DefaultMinDeciders, "minimum deciders played to be listed")
}

func runDeciders(cmd *cobra.Command, args []string) error {
	views, _, err := loadSnapshot()
	if err != nil {
		return err
	}
	rows, err := stats.Deciders(views, decidersMin)
	if err != nil {
		return err
	}
	report.PrintDeciders(os.Stdout, rows)
	return nil
}
