package cmd

import (
	"fmt"
	"os"
	"strings"

	"locale-manager/core/config"
	"locale-manager/core/logger"
	"locale-manager/feature/editor"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <language>",
	Short: "Export a reconciled language",
	Long: `Loads a language, applies the --set edits and writes the result as qplay_<lang>.json.
Keys missing from the translation are exported with an empty value; keys only present in
the translation are kept.

Examples:
  # Write qplay_en.json to ./out
  export en --out ./out

  # Fix two keys and upload the result to the bucket
  export en --set greet=Hello --set bye=Goodbye --storage

  # Print to stdout
  export en --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		out, _ := cmd.Flags().GetString("out")
		toClipboard, _ := cmd.Flags().GetBool("clipboard")
		toStorage, _ := cmd.Flags().GetBool("storage")
		toStdout, _ := cmd.Flags().GetBool("stdout")
		sets, _ := cmd.Flags().GetStringArray("set")

		edits, err := parseSets(sets)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if out != "" {
			cfg.Locales.ExportDir = out
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

		session := deps.editor.Session()
		for _, e := range edits {
			if err := session.Edit(e[0], e[1]); err != nil {
				return fmt.Errorf("failed to set %s: %w", e[0], err)
			}
		}

		if toStdout {
			_, data, err := deps.editor.Document()
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		}

		var targets []string
		if toClipboard {
			targets = append(targets, editor.TargetClipboard)
		}
		if toStorage {
			targets = append(targets, editor.TargetStorage)
		}
		if out != "" || len(targets) == 0 {
			targets = append(targets, editor.TargetFile)
		}

		for _, target := range targets {
			location, err := deps.editor.Export(ctx, target)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %s to %s: %s\n", lang, target, location)
		}

		logg.Debug("Export completed", zap.String("language", lang), zap.Strings("targets", targets))
		return nil
	},
}

// parseSets splits key=value flags. The value may be empty and may contain '='.
func parseSets(sets []string) ([][2]string, error) {
	edits := make([][2]string, 0, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", s)
		}
		edits = append(edits, [2]string{key, value})
	}
	return edits, nil
}

func init() {
	RootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("out", "", "Directory receiving qplay_<lang>.json (default locales.export_dir)")
	exportCmd.Flags().Bool("clipboard", false, "Copy the export to the clipboard")
	exportCmd.Flags().Bool("storage", false, "Upload the export to the storage bucket")
	exportCmd.Flags().Bool("stdout", false, "Print the export instead of writing it")
	exportCmd.Flags().StringArray("set", nil, "Set a translation before exporting (key=value, repeatable)")
}
