package model

import "html/template"

// SEO is the metadata written into a page's head.
type SEO struct {
	Title       string
	FullTitle   string
	Description string
	Author      string
	Canonical   string
	Type        string
}

// HeaderView is what the header partial needs to render the title block and
// its hover labels.
type HeaderView struct {
	Title         string
	TitleLabel    string
	GitHubURL     string
	GitHubLabel   string
	LinkedInURL   string
	LinkedInLabel string
	Avatar        string
	Author        string
}

// Comments configures the comment widget on a post page.
type Comments struct {
	Shortname  string
	Identifier string
	Title      string
}

type PageData struct {
	Site   SiteMetadata
	SEO    SEO
	Header HeaderView
	// NonBlog pages are not wrapped in an article element.
	NonBlog bool

	Post      *Post
	Posts     []PostSummary
	Adjacency Adjacency
	Nav       []template.HTML
	EditURL   string
	Comments  *Comments

	LiveReload string
}
