package cmd

import (
	"context"
	"fmt"

	"menu-manager/core/config"
	"menu-manager/core/database"
	"menu-manager/core/logger"
	"menu-manager/core/storage"
	"menu-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage and the staging database",
	Long:  `Checks that the storage bucket holds the baseline document and that the staging tables match their models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// storageCheckCmd represents the integrity storage command
var storageCheckCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the storage bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// databaseCheckCmd represents the integrity database command
var databaseCheckCmd = &cobra.Command{
	Use:   "database",
	Short: "Check the staging database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(storageCheckCmd)
	integrityCmd.AddCommand(databaseCheckCmd)
	storageCheckCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and seed missing objects")
}

func runIntegrityChecks(ctx context.Context, runStorage, runDatabase bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	var client storage.Client
	if runStorage {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	var db *gorm.DB
	if runDatabase {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Database connection failed", zap.Error(err))
		} else {
			db = conn
		}
	}

	svc := integrity.NewService(client, cfg.Storage.Bucket, []string{cfg.Baseline.Object}, db, logg)

	if runStorage {
		logg.Info("Checking storage...", zap.String("bucket", cfg.Storage.Bucket))
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			return fmt.Errorf("storage check failed: %w", err)
		}

		if report.BucketExists && len(report.Missing) == 0 {
			logg.Info("Storage is intact.")
		} else {
			logg.Warn("Storage incomplete", zap.Bool("bucket_exists", report.BucketExists), zap.Strings("missing", report.Missing))

			if fixFlag {
				logg.Info("Fixing storage...")
				if err := svc.FixStorage(ctx, report); err != nil {
					return fmt.Errorf("failed to fix storage: %w", err)
				}
				logg.Info("Storage fixed successfully.")
			} else {
				logg.Info("Run 'integrity storage --fix' to create what is missing.")
			}
		}
	}

	if runDatabase {
		logg.Info("Checking staging schema...", zap.String("driver", cfg.Database.Driver))
		report, err := svc.CheckDatabase()
		if err != nil {
			logg.Error("Database schema check failed", zap.Error(err))
			return nil
		}

		if report.Matched {
			logg.Info("Staging schema matches expected definition.")
			return nil
		}

		logg.Warn("Staging schema mismatches found", zap.String("driver", report.Driver))
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}

	return nil
}
