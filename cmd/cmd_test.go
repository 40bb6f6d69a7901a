package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/developmental/internal/content"
	"github.com/Bitlatte/developmental/internal/index"
	"github.com/Bitlatte/developmental/internal/model"
)

func testIndex(t *testing.T) index.Index {
	t.Helper()
	day := func(d int) time.Time { return time.Date(2020, time.January, d, 0, 0, 0, 0, time.UTC) }
	idx, err := index.Build([]*model.Post{
		{Slug: "/a/", Title: "Alpha", Date: day(1), Markdown: "First body."},
		{Slug: "/b/", Title: "Bravo", Date: day(2), Markdown: "Middle body."},
		{Slug: "/c/", Title: "Charlie", Date: day(3), Markdown: "Last body."},
	})
	require.NoError(t, err)
	return idx
}

func TestPrintIndex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printIndex(&buf, testIndex(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "TITLE")
	assert.Contains(t, lines[1], "Charlie")
	assert.Contains(t, lines[1], "/b/")
	assert.Contains(t, lines[2], "Bravo")
	assert.Contains(t, lines[2], "/a/")
	assert.Contains(t, lines[2], "/c/")
	assert.Contains(t, lines[3], "Alpha")
	assert.Contains(t, lines[4], "3 posts")
}

func TestPreviewPost(t *testing.T) {
	idx := testIndex(t)

	var buf bytes.Buffer
	require.NoError(t, previewPost(&buf, idx, "b", 80))
	out := buf.String()
	assert.Contains(t, out, "Bravo")
	assert.Contains(t, out, "Middle")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Charlie")

	err := previewPost(&bytes.Buffer{}, idx, "missing", 80)
	assert.ErrorIs(t, err, index.ErrNotFound)
}

func TestNewPost(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2021, time.June, 7, 8, 9, 10, 0, time.UTC)

	path, err := newPost(dir, "Hello, World", "A greeting", false, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hello-world", "index.md"), path)

	post, err := content.NewLoader(content.Options{Root: dir, RequireTitle: true}, nil).LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/hello-world/", post.Slug)
	assert.Equal(t, "Hello, World", post.Title)
	assert.Equal(t, "A greeting", post.Description)
	assert.True(t, post.Date.Equal(now))

	_, err = newPost(dir, "Hello World", "", false, now)
	assert.Error(t, err, "existing post is not overwritten")

	_, err = newPost(dir, "?!", "", false, now)
	assert.Error(t, err)

	_, err = os.Stat(filepath.Join(dir, "hello-world", "index.md"))
	assert.NoError(t, err)
}
