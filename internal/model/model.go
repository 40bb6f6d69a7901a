package model

import (
	"html/template"
	"time"
)

// DateLayout is the display format for post dates ("MMMM DD, YYYY").
const DateLayout = "January 02, 2006"

// Post is a single blog post loaded from a Markdown file. It is not modified
// once the loader has returned it.
type Post struct {
	Slug        string
	Title       string
	Date        time.Time
	Description string
	Excerpt     string
	HTML        template.HTML
	Markdown    string
	// ReadTimeMinutes is zero when the body is empty.
	ReadTimeMinutes int
	SourcePath      string
	// Assets are files that live next to the post's Markdown source and are
	// copied beside its generated page.
	Assets []string
}

// Summary returns the fields needed to link to or list the post.
func (p *Post) Summary() PostSummary {
	return PostSummary{
		Slug:        p.Slug,
		Title:       p.Title,
		Date:        p.Date,
		Description: p.Description,
		Excerpt:     p.Excerpt,
	}
}

func (p *Post) FormattedDate() string { return p.Date.Format(DateLayout) }

// Lede is the description when present, otherwise the excerpt.
func (p *Post) Lede() string { return lede(p.Description, p.Excerpt) }

// PostSummary is the part of a post that other pages refer to.
type PostSummary struct {
	Slug        string
	Title       string
	Date        time.Time
	Description string
	Excerpt     string
}

func (s PostSummary) FormattedDate() string { return s.Date.Format(DateLayout) }

func (s PostSummary) Lede() string { return lede(s.Description, s.Excerpt) }

// DisplayTitle falls back to the slug for untitled posts.
func (s PostSummary) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Slug
}

func lede(description, excerpt string) string {
	if description != "" {
		return description
	}
	return excerpt
}

// Ref is an optional reference to a neighbouring post.
type Ref struct {
	summary PostSummary
	ok      bool
}

func Some(s PostSummary) Ref { return Ref{summary: s, ok: true} }

func None() Ref { return Ref{} }

// Get returns the referenced post and whether there is one.
func (r Ref) Get() (PostSummary, bool) { return r.summary, r.ok }

func (r Ref) Present() bool { return r.ok }

// Adjacency holds a post's neighbours in reading order: Previous is the older
// post, Next the newer one.
type Adjacency struct {
	Previous Ref
	Next     Ref
}

// Social is a set of account handles.
type Social struct {
	GitHub   string
	LinkedIn string
}

// SiteMetadata is the site-wide data every page is rendered with.
type SiteMetadata struct {
	Title       string
	Author      string
	Description string
	SiteURL     string
	Avatar      string
	Social      Social

	AnalyticsID     string
	DisqusShortname string
	EditURL         string
}

// SiteData holds everything produced by one build.
type SiteData struct {
	Meta  SiteMetadata
	Posts []*Post
	// Adjacency is keyed by slug and computed once per build.
	Adjacency map[string]Adjacency
}
