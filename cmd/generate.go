package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/julienpequegnot/articlegen/internal/article"
	"github.com/julienpequegnot/articlegen/internal/config"
	"github.com/julienpequegnot/articlegen/internal/prompt"
	"github.com/julienpequegnot/articlegen/internal/session"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	root, err := cfg.ResolveRoot(rootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve repository root: %w", err)
	}
	slog.Debug("using repository root", "root", root, "posts_dir", cfg.PostsDir)

	out := cmd.OutOrStdout()
	s := session.New(prompt.NewConsole(cmd.InOrStdin(), out), out, session.Options{
		Root:     root,
		PostsDir: cfg.PostsDir,
		Layout:   cfg.Layout,
		Location: loc,
		Author: article.Author{
			Name:    cfg.Author.Name,
			Twitter: cfg.Author.Twitter,
			GitHub:  cfg.Author.GitHub,
		},
	})

	res, err := s.Run(cmd.Context())
	switch {
	case errors.Is(err, session.ErrOverwriteDeclined):
		fmt.Fprintln(out, "\nWriting aborted by user. Exiting.")
		return nil
	case errors.Is(err, session.ErrAborted):
		fmt.Fprintln(out, "\nFile write aborted by user.")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "File written successfully: %s\n", res.Path)
	return nil
}
