package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"locale-manager/core/config"
	"locale-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <language>",
	Short: "Report missing and untranslated keys of a language",
	Long: `Reconciles a language against the base language and prints the keys with an empty
translation, the keys whose translation equals the base text and the keys missing from the base.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		deps, err := setup(ctx, cfg, logg)
		if err != nil {
			return err
		}

		lang, err := deps.resolveLanguage(ctx, args[0])
		if err != nil {
			return err
		}
		if err := deps.editor.Load(ctx, lang); err != nil {
			return fmt.Errorf("failed to load %s: %w", lang, err)
		}

		report, err := deps.editor.Report()
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		fmt.Printf("\n=== %s → %s ===\n", report.Base, report.Language)
		fmt.Println(report.Stats.String())
		printKeys("Empty", report.Missing)
		printKeys("Same as base", report.Same)
		printKeys("Not in base", report.Extras)

		logg.Debug("Diff completed", zap.String("language", lang), zap.Any("stats", report.Stats))
		return nil
	},
}

func printKeys(title string, keys []string) {
	fmt.Printf("\n%s (%d)\n", title, len(keys))
	if len(keys) == 0 {
		return
	}
	fmt.Println("  " + strings.Join(keys, "\n  "))
}

func init() {
	RootCmd.AddCommand(diffCmd)
	diffCmd.Flags().Bool("json", false, "Print the report as JSON")
}
