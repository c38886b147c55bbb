package cmd

import (
	"context"
	"fmt"
	"os"

	"attendance-manager/core/config"
	"attendance-manager/core/database"
	"attendance-manager/core/ledger"
	"attendance-manager/core/logger"
	"attendance-manager/core/storage"
	attendancefeature "attendance-manager/feature/attendance"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportDate   string
	exportOutput string
	exportUpload bool
)

// exportCmd serializes the ledger to CSV.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the attendance ledger as CSV",
	Long: `Serialize attendance records to CSV with a header row.

Examples:
  # One date to stdout
  attendance-manager export --date 2023-10-25

  # Full ledger to a file
  attendance-manager export --output ledger.csv

  # Upload a snapshot to object storage
  attendance-manager export --date 2023-10-25 --upload`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDate, "date", "", "Restrict the export to one date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Write to a file instead of stdout")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "Upload the snapshot to object storage")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	store := ledger.NewGormStore(db)
	svc := attendancefeature.NewService(store, ledger.NewWriter(store), nil, nil, l)

	if exportUpload {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		objectName, err := svc.ExportToStorage(ctx, client, cfg.Storage.Bucket, exportDate)
		if err != nil {
			return fmt.Errorf("failed to upload export: %w", err)
		}
		l.Info("Export uploaded", zap.String("object", objectName))
		return nil
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := svc.ExportCSV(ctx, exportDate, out); err != nil {
		return fmt.Errorf("failed to export ledger: %w", err)
	}
	return nil
}
