package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/plisking/rename-pdf/internal/extract"
	"github.com/plisking/rename-pdf/internal/rename"
	"github.com/plisking/rename-pdf/pkg/types"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename every PDF in a directory after its extracted title",
	Long: `Rename processes the PDF files of a directory sequentially. For each file a
title is resolved (metadata, then primary text extraction, then fallback text
extraction), converted into a safe unique filename, and the file is renamed.

With --dry-run the intended renames are reported but not applied. Individual
failures are logged and skipped; only an invalid target directory aborts the
run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("directory")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		report, _ := cmd.Flags().GetBool("report")

		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving directory %s: %w", dir, err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("directory does not exist or is not accessible: %s", abs)
		}

		cfg := types.RenameConfig{
			Directory: abs,
			DryRun:    dryRun,
			Extract:   extractConfig(),
		}
		steps := extract.DefaultSteps(cfg.Extract, log.Logger)

		result, err := rename.Batch(cfg, steps, log.Logger)
		if err != nil {
			return err
		}

		log.Info().Msgf("done: %d renamed, %d unchanged, %d untitled, %d failed",
			result.Renamed, result.Unchanged, result.Untitled, result.Failed)

		if report {
			out, err := yaml.Marshal(result.Decisions)
			if err != nil {
				return fmt.Errorf("marshaling report: %w", err)
			}
			fmt.Fprint(os.Stdout, string(out))
		}
		return nil
	},
}

// extractConfig reads the scan bounds from configuration; unset values fall
// back to the built-in defaults.
func extractConfig() types.ExtractConfig {
	return types.ExtractConfig{
		PrimaryMaxPages:  viper.GetInt("extract.primary_max_pages"),
		PrimaryMaxLines:  viper.GetInt("extract.primary_max_lines"),
		FallbackMaxPages: viper.GetInt("extract.fallback_max_pages"),
		FallbackMaxLines: viper.GetInt("extract.fallback_max_lines"),
	}
}

func init() {
	renameCmd.Flags().StringP("directory", "d", "", "directory containing the PDF files to rename")
	_ = renameCmd.MarkFlagRequired("directory")
	renameCmd.Flags().Bool("dry-run", false, "report intended renames without applying them")
	renameCmd.Flags().Bool("report", false, "print the per-file decisions as YAML on stdout")

	rootCmd.AddCommand(renameCmd)
}
