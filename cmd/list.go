package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Bitlatte/developmental/internal/index"
	"github.com/Bitlatte/developmental/internal/model"
	"github.com/Bitlatte/developmental/internal/site"
)

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#607080"))
	listDateStyle   = lipgloss.NewStyle().Width(20)
	listTitleStyle  = lipgloss.NewStyle().Width(36)
	listSlugStyle   = lipgloss.NewStyle().Width(28)
	listMutedStyle  = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists posts newest first with their neighbours",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := site.LoadIndex(cmd.Context(), appConfig, logger)
		if err != nil {
			return err
		}
		return printIndex(cmd.OutOrStdout(), idx)
	},
}

func printIndex(w io.Writer, idx index.Index) error {
	row := func(date, title, slug, prev, next string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			listDateStyle.Render(date),
			listTitleStyle.Render(title),
			listSlugStyle.Render(slug),
			listSlugStyle.Render(prev),
			next)
	}

	if _, err := fmt.Fprintln(w, listHeaderStyle.Render(row("DATE", "TITLE", "SLUG", "PREVIOUS", "NEXT"))); err != nil {
		return err
	}
	adjacency := idx.ResolveAll()
	for _, p := range idx.Posts() {
		adj := adjacency[p.Slug]
		line := row(p.FormattedDate(), p.Title, p.Slug, refSlug(adj.Previous), refSlug(adj.Next))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, listMutedStyle.Render(fmt.Sprintf("%d posts", idx.Len())))
	return err
}

func refSlug(r model.Ref) string {
	if s, ok := r.Get(); ok {
		return s.Slug
	}
	return "-"
}

func init() {
	rootCmd.AddCommand(listCmd)
}
