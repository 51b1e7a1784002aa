package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/model"
	"github.com/pable/go-snooker-metrics/internal/storage"
	"github.com/pable/go-snooker-metrics/internal/view"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "snookerstats",
	Short: "Snooker results analytics tool",
	Long:  "Load historical snooker results into a local snapshot and compute career, tournament and break statistics.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".snookerstats", "snooker.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(winrateCmd)
	rootCmd.AddCommand(whitewashCmd)
	rootCmd.AddCommand(titlesCmd)
	rootCmd.AddCommand(defeatsCmd)
	rootCmd.AddCommand(h2hCmd)
	rootCmd.AddCommand(breaksCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(tournamentsCmd)
	rootCmd.AddCommand(decidersCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// loadSnapshot reads the stored relations and rebuilds the match views every
// report works from. The database handle is closed before returning.
func loadSnapshot() ([]model.MatchView, model.Relations, error) {
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, model.Relations{}, fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	rel, err := db.LoadRelations()
	if err != nil {
		return nil, model.Relations{}, fmt.Errorf("load relations: %w", err)
	}
	if len(rel.Matches) == 0 {
		return nil, model.Relations{}, fmt.Errorf("no dataset loaded — run 'snookerstats load <path>' first")
	}

	views, err := view.Build(rel)
	if err != nil {
		return nil, model.Relations{}, err
	}
	return views, rel, nil
}
