package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/developmental/internal/content"
)

var (
	newDescription string
	newDraft       bool
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Creates a new post with its front matter filled in",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := newPost(appConfig.ContentDir, strings.Join(args, " "), newDescription, newDraft, time.Now())
		if err != nil {
			return err
		}
		logger.Info("created post", zap.String("path", path))
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func newPost(contentDir, title, description string, draft bool, now time.Time) (string, error) {
	slug := content.SlugFromTitle(title)
	if slug == "" {
		return "", fmt.Errorf("title %q has no letters or digits to build a slug from", title)
	}
	path := filepath.Join(contentDir, slug, "index.md")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("post %s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	src, err := content.Scaffold(title, description, now, draft)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create directory '%s': %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("failed to write '%s': %w", path, err)
	}
	return path, nil
}

func init() {
	newCmd.Flags().StringVarP(&newDescription, "description", "d", "", "Post description")
	newCmd.Flags().BoolVar(&newDraft, "draft", false, "Mark the post as a draft")
	rootCmd.AddCommand(newCmd)
}
