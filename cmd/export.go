package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/safespend/internal/cli"
	"github.com/theirongolddev/safespend/internal/config"
	"github.com/theirongolddev/safespend/internal/store"
)

var (
	flagExportDB   string
	flagExportList bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save a snapshot of today's budget to SQLite",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDB, "db", filepath.Join(config.Dir(), "snapshots.db"), "SQLite database path")
	exportCmd.Flags().BoolVar(&flagExportList, "list", false, "List saved snapshots instead of writing one")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	db, err := store.Open(flagExportDB)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if flagExportList {
		return listSnapshots(db)
	}

	_, logger, state, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	id, err := db.Save(store.Snapshot{
		TakenAt: time.Now(),
		Budget:  state.Budget(),
		Leaks:   state.Leaks(),
		History: state.History(),
	})
	if err != nil {
		return err
	}
	logger.Info("snapshot exported",
		zap.String("op", "cmd.export"),
		zap.Int64("id", id),
		zap.String("db", flagExportDB))

	fmt.Printf("  Snapshot %d saved to %s\n", id, flagExportDB)
	return nil
}

func listSnapshots(db *store.Export) error {
	snaps, err := db.List()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("\n  No snapshots yet.")
		return nil
	}

	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.TakenAt.Local().Format("2006-01-02 15:04"),
			cli.FormatMoney(s.Current),
			cli.FormatMoney(s.Remaining),
			strconv.Itoa(s.Leaks),
			strconv.Itoa(s.Days),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Snapshots",
		Headers: []string{"ID", "Taken", "Budget", "Safe", "Leaks", "Days"},
		Rows:    rows,
	}))
	return nil
}
