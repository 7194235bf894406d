package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"locale-manager/core/config"
	"locale-manager/core/logger"
	"locale-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

type integrityChecks struct {
	structure bool
	files     bool
	coverage  bool
	database  bool
}

var allChecks = integrityChecks{structure: true, files: true, coverage: true, database: true}

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the locale catalogue",
	Long:  `Checks the locale folder and files in storage, the translation coverage of every configured language and the preferences schema.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			svc, logg, err := newIntegrityService(cmd.Context())
			if err != nil {
				return err
			}
			defer logg.Sync()

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(svc.RunAll(cmd.Context()))
		}
		return runIntegrityChecks(cmd.Context(), allChecks)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the locale folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityChecks{structure: true})
	},
}

// filesCmd represents the integrity files command
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Check and create missing locale files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityChecks{files: true})
	},
}

// coverageCmd represents the integrity coverage command
var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Report translation coverage of every language",
	Long:  `Reconciles every configured language against the base language. Prints a table by default or a JSON report with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		svc, logg, err := newIntegrityService(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()

		startTime := time.Now()
		report, err := svc.CheckCoverage(ctx)
		if err != nil {
			return fmt.Errorf("coverage check failed: %w", err)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		fmt.Printf("\n=== Coverage against %s (%d keys) ===\n", report.Base, report.BaseKeys)
		fmt.Printf("%-8s %8s %8s %8s %8s %10s\n", "LANG", "EMPTY", "CHANGED", "EXTRAS", "FILE", "TRANSLATED")
		for _, cov := range report.Languages {
			if cov.Error != "" {
				fmt.Printf("%-8s error: %s\n", cov.Language, cov.Error)
				continue
			}
			file := "yes"
			if !cov.Present {
				file = "no"
			}
			fmt.Printf("%-8s %8d %8d %8d %8s %9.1f%%\n",
				cov.Language, cov.Stats.Missing, cov.Stats.Changed, cov.Stats.Extras, file, cov.Translated)
		}
		fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())
		return nil
	},
}

// databaseCmd represents the integrity database command
var databaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Check the preferences table schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityChecks{database: true})
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, filesCmd, coverageCmd, databaseCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing locale folder")
	filesCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create empty locale files for missing languages")
	integrityCmd.Flags().Bool("json", false, "Print the combined report as JSON")
	coverageCmd.Flags().Bool("json", false, "Print the report as JSON")
}

func newIntegrityService(ctx context.Context) (*integrity.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	deps, err := setup(ctx, cfg, logg)
	if err != nil {
		return nil, nil, err
	}

	svc := integrity.NewService(deps.store, cfg.Storage.Bucket, cfg.Locales, deps.provider, deps.db, logg)
	return svc, logg, nil
}

func runIntegrityChecks(ctx context.Context, checks integrityChecks) error {
	svc, logg, err := newIntegrityService(ctx)
	if err != nil {
		return err
	}
	defer logg.Sync()

	single := checks != allChecks

	if checks.structure {
		logg.Info("Checking locale folder...")
		exists, err := svc.CheckStructure(ctx)
		switch {
		case err != nil && single:
			return fmt.Errorf("structure check failed: %w", err)
		case err != nil:
			logg.Warn("Structure check skipped", zap.Error(err))
		case exists:
			logg.Info("Locale folder is present.")
		case fixFlag:
			logg.Info("Creating locale folder...")
			if err := svc.FixStructure(ctx); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			logg.Info("Structure fixed successfully.")
		default:
			logg.Warn("Locale folder is missing")
			if single {
				logg.Info("Run with --fix to create it.")
			}
		}
	}

	if checks.files {
		logg.Info("Checking locale files...")
		missing, err := svc.CheckLocaleFiles(ctx)
		switch {
		case err != nil && single:
			return fmt.Errorf("locale files check failed: %w", err)
		case err != nil:
			logg.Warn("Locale files check skipped", zap.Error(err))
		case len(missing) == 0:
			logg.Info("Every configured language has a locale file.")
		case fixFlag:
			logg.Info("Creating missing locale files...", zap.Strings("missing", missing))
			created, err := svc.FixLocaleFiles(ctx, missing)
			if err != nil {
				return fmt.Errorf("failed to create locale files: %w", err)
			}
			logg.Info("Locale files created.", zap.Strings("created", created))
		default:
			logg.Warn("Missing locale files detected", zap.Strings("missing", missing))
			if single {
				logg.Info("Run with --fix to create empty files.")
			}
		}
	}

	if checks.coverage {
		logg.Info("Checking translation coverage...")
		report, err := svc.CheckCoverage(ctx)
		if err != nil {
			return fmt.Errorf("coverage check failed: %w", err)
		}
		for _, cov := range report.Languages {
			if cov.Error != "" {
				logg.Error("Coverage check failed", zap.String("language", cov.Language), zap.String("error", cov.Error))
				continue
			}
			logg.Info("Coverage",
				zap.String("language", cov.Language),
				zap.Bool("present", cov.Present),
				zap.Int("missing", cov.Stats.Missing),
				zap.Int("changed", cov.Stats.Changed),
				zap.Int("extras", cov.Stats.Extras),
				zap.Float64("translated", cov.Translated),
			)
		}
	}

	if checks.database {
		logg.Info("Checking preferences schema...")
		report, err := svc.CheckDatabase()
		switch {
		case err != nil:
			logg.Error("Database schema check failed", zap.Error(err))
		case report.Matched:
			logg.Info("Preferences schema matches.", zap.String("driver", report.Driver))
		default:
			logg.Warn("Preferences schema mismatch",
				zap.String("table", report.Table),
				zap.Strings("missing_columns", report.MissingColumns),
			)
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	return nil
}
