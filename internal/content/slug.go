package content

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/Bitlatte/developmental/internal/route"
)

// Slug derives a post's slug from its path relative to the content root.
// "hello/index.md" and "hello.md" both become "/hello/".
func Slug(root, file string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path for %s: %w", file, err)
	}
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%s is outside content root %s", file, root)
	}

	dir, name := path.Split(rel)
	name = strings.TrimSuffix(name, path.Ext(name))
	if strings.EqualFold(name, "index") {
		return route.PostPath(dir), nil
	}
	return route.PostPath(dir + name), nil
}
