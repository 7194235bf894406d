package cmd

import (
	"fmt"

	"locale-manager/core/config"
	"locale-manager/core/logger"
	"locale-manager/feature/editor/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [language]",
	Short: "Edit a language in the terminal",
	Long: `Opens the terminal editor on a language. Without an argument the last edited language is opened,
or the one matching the system locale.

Logs are written to --log-file since the editor owns the terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logPath, _ := cmd.Flags().GetString("log-file")
		logg, err := logger.NewFile(&cfg.Log, logPath)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		deps, err := setup(ctx, cfg, logg)
		if err != nil {
			return err
		}

		var lang string
		if len(args) > 0 {
			lang = args[0]
		}
		lang, err = deps.resolveLanguage(ctx, lang)
		if err != nil {
			return err
		}

		logg.Info("Opening editor", zap.String("language", lang))
		return tui.Run(ctx, deps.editor, lang)
	},
}

func init() {
	RootCmd.AddCommand(editCmd)
	editCmd.Flags().String("log-file", "locale-manager.log", "File receiving the editor logs")
}
