package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/plisking/rename-pdf/internal/extract"
	"github.com/plisking/rename-pdf/internal/rename"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [files...]",
	Short: "Show the title and filename that would be chosen for each file",
	Long: `Inspect resolves a title for each given PDF and prints the title, the
resolution step that produced it, and the filename the file would receive.
Nothing is renamed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := extract.DefaultSteps(extractConfig(), log.Logger)
		for _, path := range args {
			title, source, ok := extract.Resolve(path, steps)
			if !ok {
				fmt.Printf("%s: no title found\n", path)
				continue
			}
			name := rename.BuildFilename(title, filepath.Dir(path), filepath.Base(path))
			fmt.Printf("%s: %q (%s) -> %s\n", path, title, source, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
