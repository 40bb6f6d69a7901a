package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Bitlatte/developmental/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from content, layouts, and static assets",
	Long: `The build command loads every Markdown post from the content directory,
orders the posts newest first, links each post to its neighbours and writes
the site to the configured output directory (default './public/').

Layouts in './layouts/' replace the built-in ones file by file, and files in
'./static/' are copied into the output unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := site.New(appConfig, logger).Build(cmd.Context())
		return err
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
