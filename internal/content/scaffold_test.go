package content

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugFromTitle(t *testing.T) {
	tests := map[string]string{
		"Hello World":             "hello-world",
		"  Learning Go: Part 2! ": "learning-go-part-2",
		"Don't panic":             "don-t-panic",
		"Ünïcode stays":           "ünïcode-stays",
		"---":                     "",
	}
	for in, want := range tests {
		assert.Equal(t, want, SlugFromTitle(in), in)
	}
}

func TestScaffold_LoadsBack(t *testing.T) {
	date := time.Date(2021, time.June, 7, 8, 9, 10, 0, time.UTC)
	src, err := Scaffold("Colons: are fine", "A post", date, false)
	require.NoError(t, err)

	root := t.TempDir()
	path := filepath.Join(root, "colons", "index.md")
	writeFile(t, path, string(src)+"Body.\n")

	post, err := newTestLoader(root).LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "Colons: are fine", post.Title)
	assert.Equal(t, "A post", post.Description)
	assert.True(t, date.Equal(post.Date))
	assert.Equal(t, "/colons/", post.Slug)
}

func TestScaffold_Draft(t *testing.T) {
	src, err := Scaffold("Wip", "", time.Now(), true)
	require.NoError(t, err)
	assert.Contains(t, string(src), "draft: true")
	assert.NotContains(t, string(src), "description")
}
