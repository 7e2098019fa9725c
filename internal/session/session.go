// Package session runs one interactive article generation: it collects the
// article fields, previews the rendered document and writes it to the posts
// tree once confirmed.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/articlegen/internal/article"
	"github.com/julienpequegnot/articlegen/internal/posts"
	"github.com/julienpequegnot/articlegen/internal/prompt"
)

var (
	// ErrAborted marks a run the user declined. It is not a failure.
	ErrAborted = errors.New("file write aborted by user")

	// ErrOverwriteDeclined is returned when the target file exists and the
	// user refuses to overwrite it. Nothing is written in that case.
	ErrOverwriteDeclined = fmt.Errorf("%w: existing file kept", ErrAborted)
)

type Options struct {
	Root     string
	PostsDir string
	Layout   string
	Location *time.Location
	// Author values are offered as prompt defaults.
	Author article.Author
	Now    func() time.Time
}

type Result struct {
	Path          string
	FolderCreated bool
	Overwritten   bool
}

type Session struct {
	prompter prompt.Prompter
	out      io.Writer
	opts     Options
	repo     *posts.Repository
}

func New(p prompt.Prompter, out io.Writer, opts Options) *Session {
	if opts.PostsDir == "" {
		opts.PostsDir = "_posts"
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{
		prompter: p,
		out:      out,
		opts:     opts,
		repo:     posts.NewRepository(filepath.Join(opts.Root, opts.PostsDir)),
	}
}

// Run performs the whole session. A declined confirmation returns an error
// wrapping ErrAborted and leaves the filesystem untouched.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	in, err := s.Collect(ctx)
	if err != nil {
		return nil, err
	}

	doc := article.Render(in)
	target := article.NewTarget(s.opts.Root, s.opts.PostsDir, in.Published, in.Slug)
	slog.Debug("resolved target path", "folder", target.Folder, "file", target.File)

	s.preview(doc, target.File)

	ok, err := s.confirm(ctx, "Confirm (yes/no): ")
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(s.out)
	if !ok {
		return nil, ErrAborted
	}

	return s.publish(ctx, target, doc)
}

func (s *Session) publish(ctx context.Context, target article.Target, doc string) (*Result, error) {
	res := &Result{Path: target.File}

	created, err := s.repo.EnsureFolder(target.Folder)
	if err != nil {
		return nil, err
	}
	if created {
		slog.Debug("created month folder", "folder", target.Folder)
	}
	res.FolderCreated = created

	exists, err := s.repo.Exists(target.File)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", target.File, err)
	}
	if exists {
		label := fmt.Sprintf("File '%s' already exist. Overwrite it? (yes/no) : ", target.File)
		ok, err := s.confirm(ctx, label)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrOverwriteDeclined
		}
		res.Overwritten = true
	}

	if err := s.repo.Write(target.File, doc); err != nil {
		return nil, err
	}
	slog.Debug("article written", "path", target.File, "bytes", len(doc))
	return res, nil
}

func (s *Session) preview(doc, path string) {
	rule := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Repeat("-", 9))
	heading := lipgloss.NewStyle().Bold(true).Render("Generated page")
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, heading)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, doc)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintf(s.out, "Above contents will be written to file %s\n", pathStyle.Render(`"`+path+`"`))
}

func (s *Session) ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, err := s.prompter.Ask(label)
	if err != nil {
		return "", inputErr(err)
	}
	return answer, nil
}

func (s *Session) askDefault(ctx context.Context, label, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, err := prompt.WithDefault(s.prompter, label, def)
	if err != nil {
		return "", inputErr(err)
	}
	return answer, nil
}

func (s *Session) confirm(ctx context.Context, label string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := prompt.Confirm(s.prompter, label)
	if err != nil {
		return false, inputErr(err)
	}
	return ok, nil
}

func inputErr(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("input ended before the article was complete: %w", err)
	}
	return fmt.Errorf("failed to read input: %w", err)
}
