package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	goslug "github.com/goliatone/go-slug"
	"github.com/julienpequegnot/articlegen/internal/article"
)

const descriptionRule = "====================================================="

// Collect runs the prompts in order and returns the filled-in article.
func (s *Session) Collect(ctx context.Context) (article.Input, error) {
	in := article.Input{Layout: s.opts.Layout}
	steps := []func(context.Context, *article.Input) error{
		s.collectDate,
		s.collectTitle,
		s.collectTags,
		s.collectAuthor,
		s.collectDescription,
	}
	for _, step := range steps {
		if err := step(ctx, &in); err != nil {
			return article.Input{}, err
		}
	}
	return in, nil
}

func (s *Session) collectDate(ctx context.Context, in *article.Input) error {
	now := s.opts.Now().In(s.opts.Location)

	fmt.Fprint(s.out, "This utility helps generating article file with minimal input.\n\n"+
		"Article date in which article has been published.\n")

	year, err := s.askDefault(ctx, "Enter publish year", now.Format("2006"))
	if err != nil {
		return err
	}
	month, err := s.askDefault(ctx, "Enter publish month", now.Format("01"))
	if err != nil {
		return err
	}
	day, err := s.askDefault(ctx, "Enter publish date", now.Format("02"))
	if err != nil {
		return err
	}

	published, err := article.PublishDate(year, month, day, s.opts.Location)
	if err != nil {
		return err
	}
	in.Published = published
	return nil
}

func (s *Session) collectTitle(ctx context.Context, in *article.Input) error {
	fmt.Fprint(s.out, "\n\nTitle will be displayed on home page and monthly magazine page so must be "+
		"human readable but also short.\n")

	title, err := s.ask(ctx, "Human readable title: ")
	if err != nil {
		return err
	}
	in.Title = strings.TrimSpace(title)

	fmt.Fprint(s.out, "\n\nPage name, is similar to title but it will be part of URL, so capital letters "+
		"and space are not allowed. Based on Human readable title, a suggested url name is "+
		"given. Press enter to accept generated url name or enter new url name.\n")

	suggested := article.SuggestSlug(in.Title)
	slug, err := s.askDefault(ctx, "Url name", suggested)
	if err != nil {
		return err
	}
	if slug != suggested && !goslug.IsValid(slug) {
		slog.Warn("url name is not a clean slug, using it as typed", "slug", slug)
	}
	in.Slug = slug
	return nil
}

func (s *Session) collectTags(ctx context.Context, in *article.Input) error {
	fmt.Fprint(s.out, "\n\n")
	raw, err := s.ask(ctx, "Enter tags for article, separated by comma: ")
	if err != nil {
		return err
	}
	in.Tags = article.SplitTags(raw)
	return nil
}

func (s *Session) collectAuthor(ctx context.Context, in *article.Input) error {
	fmt.Fprint(s.out, "\n\nEnter author details:\n")

	var err error
	if in.Author.Name, err = s.askOptionalDefault(ctx, "  Enter name (Mandatory)", s.opts.Author.Name); err != nil {
		return err
	}
	if in.Author.Twitter, err = s.askOptionalDefault(ctx, "  Enter author's twitter handle (Optional)", s.opts.Author.Twitter); err != nil {
		return err
	}
	if in.Author.GitHub, err = s.askOptionalDefault(ctx, "  Enter author's github account (Optional)", s.opts.Author.GitHub); err != nil {
		return err
	}
	if in.Author.URL, err = s.ask(ctx, "  Enter original url of article: "); err != nil {
		return err
	}
	return nil
}

// askOptionalDefault only shows a suggestion when one is configured.
func (s *Session) askOptionalDefault(ctx context.Context, label, def string) (string, error) {
	if def == "" {
		return s.ask(ctx, label+": ")
	}
	return s.askDefault(ctx, label, def)
}

func (s *Session) collectDescription(ctx context.Context, in *article.Input) error {
	delimiter, err := s.ask(ctx, "Enter delimiter for description: ")
	if err != nil {
		return err
	}
	in.Delimiter = delimiter

	fmt.Fprintf(s.out, "\n\nEnter description\n%s\n", descriptionRule)

	var lines []string
	for {
		line, err := s.ask(ctx, " = ")
		if err != nil {
			return err
		}
		if line == delimiter {
			break
		}
		lines = append(lines, line)
	}
	in.Description = strings.Join(lines, "\n")
	return nil
}
