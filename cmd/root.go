package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/julienpequegnot/articlegen/internal/config"
	"github.com/julienpequegnot/articlegen/internal/posts"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "articlegen",
	Short: "Generate a blog article file with minimal input",
	Long: `Articlegen asks for the publish date, title, url name, tags, author and
description of an article, previews the front-matter document and writes it to
_posts/m<YYMM>/<YYYY-MM-DD>-<slug>.md once confirmed.

Run without arguments to start the interactive session.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runGenerate,
}

var (
	rootDir string
	verbose bool
)

func init() {
	rootCmd.Version = "0.1.0"
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Repository root holding the posts folder (default: parent of the executable's folder)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openRepository() (*posts.Repository, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	root, err := cfg.ResolveRoot(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository root: %w", err)
	}
	return posts.NewRepository(filepath.Join(root, cfg.PostsDir)), nil
}
