package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/report"
	"github.com/pable/go-snooker-metrics/internal/stats"
)

var countriesPlayers bool

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Wins rolled up by country",
	Long: `Roll match wins up by (country, player) with per-country subtotals
and a grand total. With --players the rollup counts distinct players per
country instead.`,
	Args: cobra.NoArgs,
	RunE: runCountries,
}

func init() {
	countriesCmd.Flags().BoolVar(&countriesPlayers, "players", false, "count distinct players per country instead of wins")
}

func runCountries(cmd *cobra.Command, args []string) error {
	views, _, err := loadSnapshot()
	if err != nil {
		return err
	}

	if countriesPlayers {
		report.PrintRollup(os.Stdout, stats.PlayersByCountry(views), []string{"COUNTRY"}, "PLAYERS")
		return nil
	}
	report.PrintRollup(os.Stdout, stats.WinsByCountry(views), []string{"COUNTRY", "PLAYER"}, "WINS")
	return nil
}
