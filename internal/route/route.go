// Package route maps post slugs to URL paths and output files.
package route

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

const (
	IndexPath    = "/"
	IndexFile    = "index.html"
	NotFoundFile = "404.html"
	FeedFile     = "rss.xml"
	ManifestFile = "manifest.webmanifest"
)

// PostPath returns the canonical URL path for a slug: a leading and a trailing
// slash, no duplicate separators.
func PostPath(slug string) string {
	p := path.Clean("/" + strings.Trim(slug, "/"))
	if p == "/" {
		return p
	}
	return p + "/"
}

// OutputFile returns where the page served at urlPath is written.
func OutputFile(outputDir, urlPath string) string {
	return filepath.Join(outputDir, filepath.FromSlash(PostPath(urlPath)), IndexFile)
}

// Absolute resolves urlPath against the site URL. With no site URL the path is
// returned unchanged.
func Absolute(siteURL, urlPath string) string {
	if siteURL == "" {
		return urlPath
	}
	base, err := url.Parse(siteURL)
	if err != nil {
		return urlPath
	}
	ref, err := url.Parse(strings.TrimPrefix(urlPath, "/"))
	if err != nil {
		return urlPath
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(ref).String()
}
