// cmd/show.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file-or-slug>",
	Short: "Show details of an article",
	Long:  `Display the front matter and a description preview of an article, looked up by path or url name.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}

	p, err := repo.Get(args[0])
	if err != nil {
		return err
	}

	// Styles
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	urlStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true)
	divider := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Repeat("━", 70))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, divider)
	fmt.Fprintln(out, titleStyle.Render(p.Title))
	fmt.Fprintln(out, divider)

	if !p.Date.IsZero() {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Published:"), valueStyle.Render(p.Date.Format("2006-01-02")))
	}
	if p.Categories != "" {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Category:"), valueStyle.Render(p.Categories))
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Tags:"), valueStyle.Render(strings.Join(p.Tags, ", ")))
	}
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Author:"), valueStyle.Render(p.Author.Name))
	if p.Author.Twitter != "" {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Twitter:"), valueStyle.Render(p.Author.Twitter))
	}
	if p.Author.GitHub != "" {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("GitHub:"), valueStyle.Render(p.Author.GitHub))
	}
	if p.Author.URL != "" {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Original:"), urlStyle.Render(p.Author.URL))
	}
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("File:"), valueStyle.Render(p.Path))

	fmt.Fprintln(out)

	// Show description preview
	body := strings.TrimSpace(p.Body)
	if len(body) > 500 {
		body = body[:500] + "..."
	}

	if body != "" {
		fmt.Fprintln(out, labelStyle.Render("PREVIEW:"))
		fmt.Fprintln(out, valueStyle.Render(body))
	}

	return nil
}
