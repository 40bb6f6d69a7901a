// Package seo builds the metadata written into each page's head.
package seo

import (
	"github.com/Bitlatte/developmental/internal/content"
	"github.com/Bitlatte/developmental/internal/model"
	"github.com/Bitlatte/developmental/internal/route"
)

// DescriptionLength caps the excerpt used in place of a missing description.
const DescriptionLength = 160

// ForPost describes a post page. A front matter description is used as written;
// posts without one use their excerpt, pruned to DescriptionLength.
func ForPost(site model.SiteMetadata, p *model.Post) model.SEO {
	description := p.Description
	if description == "" {
		description = content.Prune(p.Excerpt, DescriptionLength)
	}
	return model.SEO{
		Title:       p.Title,
		FullTitle:   fullTitle(p.Title, site.Title),
		Description: description,
		Author:      site.Author,
		Canonical:   route.Absolute(site.SiteURL, route.PostPath(p.Slug)),
		Type:        "article",
	}
}

// ForPage describes a non-post page. An empty description falls back to the
// site description.
func ForPage(site model.SiteMetadata, title, description, urlPath string) model.SEO {
	if description == "" {
		description = site.Description
	}
	s := model.SEO{
		Title:       title,
		FullTitle:   fullTitle(title, site.Title),
		Description: description,
		Author:      site.Author,
		Type:        "website",
	}
	if urlPath != "" {
		s.Canonical = route.Absolute(site.SiteURL, urlPath)
	}
	return s
}

func fullTitle(title, site string) string {
	if title == "" || title == site {
		return site
	}
	return title + " | " + site
}
