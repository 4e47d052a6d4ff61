package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jengzang/accident-dashboard-go/internal/database"
	"github.com/jengzang/accident-dashboard-go/internal/dataset"
	"github.com/jengzang/accident-dashboard-go/internal/logging"
	"github.com/jengzang/accident-dashboard-go/internal/repository"
)

var (
	csvPath  string
	dbPath   string
	encoding string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "accident-importer",
	Short: "Load the accident CSV into a SQLite snapshot",
	Long: `The importer reads the traffic accident CSV, validates it against the column
contract, and replaces the contents of the accident_records table in one
transaction. The dashboard server can then start from DATASET_DB_PATH instead
of parsing the CSV on every boot.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(logLevel)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		n, err := Import(cmd.Context(), csvPath, dbPath, encoding, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d records into %s\n", n, dbPath)
		return nil
	},
}

// Import loads csv into the snapshot at db and returns the number of rows written
func Import(ctx context.Context, csv, db, enc string, logger *zap.Logger) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	ds, err := dataset.Load(ctx, dataset.NewCSVSource(csv, enc))
	if err != nil {
		return 0, err
	}
	if ds.Defects() > 0 {
		logger.Warn("district names without a subregion", zap.Int("count", ds.Defects()))
	}

	conn, err := database.Open(database.Config{Path: db}, logger)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	if err := database.NewMigrationManager(conn, logger).RunMigrations(); err != nil {
		return 0, err
	}

	repo := repository.NewAccidentRepository(conn)
	if err := repo.ReplaceAll(ctx, ds.Records()); err != nil {
		return 0, err
	}

	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	logger.Info("snapshot written",
		zap.String("csv", csv),
		zap.String("db", db),
		zap.Int("records", n),
		zap.Int("regions", len(ds.Regions())),
	)
	return n, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&csvPath, "csv", "c", "", "path to the accident CSV file")
	rootCmd.Flags().StringVarP(&dbPath, "db", "d", "", "path to the SQLite snapshot to write")
	rootCmd.Flags().StringVarP(&encoding, "encoding", "e", dataset.EncodingUTF8, "CSV text encoding (utf-8 or euc-kr)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	_ = rootCmd.MarkFlagRequired("csv")
	_ = rootCmd.MarkFlagRequired("db")
}
