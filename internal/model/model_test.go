package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRef(t *testing.T) {
	_, ok := None().Get()
	assert.False(t, ok)
	assert.False(t, Ref{}.Present(), "zero value must be absent")

	s := PostSummary{Slug: "/a/", Title: "A"}
	got, ok := Some(s).Get()
	assert.True(t, ok)
	assert.Equal(t, s, got)
}

func TestLedeFallsBackToExcerpt(t *testing.T) {
	p := &Post{Excerpt: "the excerpt"}
	assert.Equal(t, "the excerpt", p.Lede())
	assert.Equal(t, "the excerpt", p.Summary().Lede())

	p.Description = "the description"
	assert.Equal(t, "the description", p.Lede())
	assert.Equal(t, "the description", p.Summary().Lede())
}

func TestFormattedDate(t *testing.T) {
	p := &Post{Date: time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "March 01, 2020", p.FormattedDate())
	assert.Equal(t, "March 01, 2020", p.Summary().FormattedDate())
}

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, "/untitled/", PostSummary{Slug: "/untitled/"}.DisplayTitle())
	assert.Equal(t, "Hello", PostSummary{Slug: "/hello/", Title: "Hello"}.DisplayTitle())
}
