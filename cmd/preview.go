package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Bitlatte/developmental/internal/index"
	"github.com/Bitlatte/developmental/internal/route"
	"github.com/Bitlatte/developmental/internal/site"
)

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview <slug>",
	Short: "Renders a post in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := site.LoadIndex(cmd.Context(), appConfig, logger)
		if err != nil {
			return err
		}
		return previewPost(cmd.OutOrStdout(), idx, args[0], previewWidth)
	},
}

func previewPost(w io.Writer, idx index.Index, slug string, width int) error {
	slug = route.PostPath(slug)
	post, ok := idx.Lookup(slug)
	if !ok {
		return fmt.Errorf("%w: %s", index.ErrNotFound, slug)
	}
	adj, err := idx.Resolve(slug)
	if err != nil {
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("failed to create terminal renderer: %w", err)
	}

	doc := fmt.Sprintf("# %s\n\n*%s*", post.Title, post.FormattedDate())
	if post.ReadTimeMinutes > 0 {
		doc += fmt.Sprintf(" *- %d minute read*", post.ReadTimeMinutes)
	}
	doc += "\n\n" + post.Markdown + "\n\n---\n\n"
	if prev, ok := adj.Previous.Get(); ok {
		doc += fmt.Sprintf("← Read the previous article: **%s** (`%s`)\n\n", prev.DisplayTitle(), prev.Slug)
	}
	if next, ok := adj.Next.Get(); ok {
		doc += fmt.Sprintf("→ Read the next article: **%s** (`%s`)\n", next.DisplayTitle(), next.Slug)
	}

	out, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", slug, err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func init() {
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 80, "Wrap width in columns")
	rootCmd.AddCommand(previewCmd)
}
