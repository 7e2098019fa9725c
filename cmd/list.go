// cmd/list.go
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/articlegen/internal/posts"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles",
	Long:  `List articles found under the posts folder, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listTop   int
	listMonth string
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&listTop, "top", "n", 20, "Number of articles to show (0 = all)")
	listCmd.Flags().StringVar(&listMonth, "month", "", "Only show one month folder (e.g. m2403)")
}

func runList(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}

	articles, err := repo.List(listTop, listMonth)
	if err != nil {
		if errors.Is(err, posts.ErrPostsDirMissing) {
			return fmt.Errorf("%w: %s", err, repo.Dir())
		}
		return err
	}

	out := cmd.OutOrStdout()
	if len(articles) == 0 {
		fmt.Fprintln(out, "No articles found. Run 'articlegen' to write one.")
		return nil
	}

	// Styles
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	slugStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf(" %-10s  %-30s  %-40s  %s", "DATE", "SLUG", "TITLE", "TAGS")))
	fmt.Fprintln(out, strings.Repeat("─", 100))

	for _, p := range articles {
		date := "-"
		if !p.Date.IsZero() {
			date = p.Date.Format("2006-01-02")
		}

		slug := p.Slug
		if len(slug) > 30 {
			slug = slug[:27] + "..."
		}

		title := p.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}

		fmt.Fprintf(out, " %s  %s  %-40s  %s\n",
			dateStyle.Render(fmt.Sprintf("%-10s", date)),
			slugStyle.Render(fmt.Sprintf("%-30s", slug)),
			title,
			tagStyle.Render(strings.Join(p.Tags, ", ")),
		)
	}

	return nil
}
