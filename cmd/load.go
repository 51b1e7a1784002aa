package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-snooker-metrics/internal/dataset"
	"github.com/pable/go-snooker-metrics/internal/model"
	"github.com/pable/go-snooker-metrics/internal/storage"
	"github.com/pable/go-snooker-metrics/internal/view"
)

var loadCmd = &cobra.Command{
	Use:   "load <path>",
	Short: "Load a results dataset into the database",
	Long: `Load a snooker results dataset and replace the stored snapshot.

The path is either a directory containing players.csv, tournaments.csv,
matches.csv and scores.csv, or an .xlsx workbook with sheets of the same
names. The snapshot is replaced atomically: on any load or integrity
error the previous data is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	var rel model.Relations
	switch {
	case info.IsDir():
		rel, err = dataset.ReadDir(path)
	case strings.HasSuffix(strings.ToLower(path), ".xlsx"):
		rel, err = dataset.ReadWorkbook(path)
	default:
		return fmt.Errorf("unsupported dataset path %s: want a CSV directory or an .xlsx file", path)
	}
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	// Building the views up front surfaces referential problems before
	// anything is written.
	views, err := view.Build(rel)
	if err != nil {
		return err
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceDataset(rel); err != nil {
		return fmt.Errorf("store dataset: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Loaded %d players, %d tournaments, %d matches, %d frame scores (%d match views).\n",
		len(rel.Players), len(rel.Tournaments), len(rel.Matches), len(rel.Scores), len(views))
	return nil
}
