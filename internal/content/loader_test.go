package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newTestLoader(root string) *Loader {
	return NewLoader(Options{Root: root, RequireTitle: true, ExcerptLength: 160}, nil)
}

func TestLoad_Posts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "hello-world", "index.md"), `---
title: Hello World
date: "2020-03-01T22:12:03.284Z"
description: A first post
---
This is my first post. Visit [Go](https://go.dev) or [home](/).
`)
	writeFile(t, filepath.Join(root, "hello-world", "diagram.png"), "png")
	writeFile(t, filepath.Join(root, "second.md"), `---
title: Second
date: 2020-02-01
---
No description here, so the excerpt carries the preview.
`)

	posts, err := newTestLoader(root).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	bySlug := map[string]int{}
	for i, p := range posts {
		bySlug[p.Slug] = i
	}
	require.Contains(t, bySlug, "/hello-world/")
	require.Contains(t, bySlug, "/second/")

	hello := posts[bySlug["/hello-world/"]]
	assert.Equal(t, "Hello World", hello.Title)
	assert.Equal(t, "A first post", hello.Description)
	assert.Equal(t, "A first post", hello.Lede())
	assert.Equal(t, "March 01, 2020", hello.FormattedDate())
	assert.Equal(t, 1, hello.ReadTimeMinutes)
	assert.Equal(t, []string{"diagram.png"}, hello.Assets)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(hello.HTML)))
	require.NoError(t, err)
	external := doc.Find(`a[href="https://go.dev"]`)
	assert.Equal(t, "_blank", external.AttrOr("target", ""))
	assert.Contains(t, external.AttrOr("rel", ""), "noopener")
	internal := doc.Find(`a[href="/"]`)
	_, hasTarget := internal.Attr("target")
	assert.False(t, hasTarget, "internal links stay in the same tab")

	second := posts[bySlug["/second/"]]
	assert.Empty(t, second.Description)
	assert.Equal(t, time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC), second.Date.UTC())
	assert.Equal(t, second.Excerpt, second.Lede())
	assert.Contains(t, second.Excerpt, "No description here")
	assert.Empty(t, second.Assets, "single-file posts own no directory")
}

func TestLoad_ContentErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "missing title", body: "---\ndate: 2020-01-01\n---\nbody\n", want: ErrMissingTitle},
		{name: "missing date", body: "---\ntitle: T\n---\nbody\n", want: ErrMissingDate},
		{name: "bad date", body: "---\ntitle: T\ndate: not a date\n---\nbody\n", want: ErrInvalidDate},
		{name: "malformed front matter", body: "---\ntitle: [unclosed\n---\nbody\n", want: ErrFrontMatter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			path := filepath.Join(root, "post.md")
			writeFile(t, path, tt.body)

			_, err := newTestLoader(root).Load(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var cerr *Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, path, cerr.Path)
		})
	}
}

func TestLoad_DuplicateSlug(t *testing.T) {
	root := t.TempDir()
	post := "---\ntitle: T\ndate: 2020-01-01\n---\nbody\n"
	writeFile(t, filepath.Join(root, "same", "index.md"), post)
	writeFile(t, filepath.Join(root, "same.md"), post)

	_, err := newTestLoader(root).Load(context.Background())
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestLoad_Drafts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "draft.md"), "---\ntitle: Draft\ndate: 2020-01-01\ndraft: true\n---\nwip\n")

	posts, err := newTestLoader(root).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)

	withDrafts := NewLoader(Options{Root: root, RequireTitle: true, IncludeDrafts: true}, nil)
	posts, err = withDrafts.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestLoad_TitleFromPath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "my-first_post", "index.md"), "---\ndate: 2020-01-01\n---\nbody\n")

	loader := NewLoader(Options{Root: root, RequireTitle: false}, nil)
	posts, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "My First Post", posts[0].Title)
}

func TestLoad_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "---\ntitle: A\ndate: 2020-01-01\n---\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestLoader(root).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_MissingRoot(t *testing.T) {
	_, err := newTestLoader(filepath.Join(t.TempDir(), "missing")).Load(context.Background())
	assert.Error(t, err)
}
