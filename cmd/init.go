package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julienpequegnot/articlegen/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default articlegen configuration",
	Long:  `Creates ~/.articlegen/config.yaml (or $ARTICLEGEN_HOME/config.yaml) with default settings.`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := config.Path()

	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Fprintf(out, "Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	cfg := config.Default()
	if rootDir != "" {
		abs, err := filepath.Abs(rootDir)
		if err != nil {
			return fmt.Errorf("failed to resolve root: %w", err)
		}
		cfg.RepoRoot = abs
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(out, "Created config at %s\n", path)

	fmt.Fprintln(out, "\nArticlegen initialized! Next steps:")
	fmt.Fprintln(out, "  articlegen             Generate a new article")
	fmt.Fprintln(out, "  articlegen list        List existing articles")

	return nil
}
