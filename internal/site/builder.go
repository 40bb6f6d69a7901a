// Package site generates the static site: one page per post, the index, the
// 404 page, the feed and the manifest.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Bitlatte/developmental/internal/config"
	"github.com/Bitlatte/developmental/internal/content"
	"github.com/Bitlatte/developmental/internal/header"
	"github.com/Bitlatte/developmental/internal/index"
	"github.com/Bitlatte/developmental/internal/model"
	"github.com/Bitlatte/developmental/internal/nav"
	"github.com/Bitlatte/developmental/internal/route"
	"github.com/Bitlatte/developmental/internal/seo"
	"github.com/Bitlatte/developmental/internal/theme"
)

const (
	homeTitle     = "All posts"
	notFoundTitle = "404: Blog not found"
	stylesFile    = "styles.css"
)

// Report summarises a finished build.
type Report struct {
	Posts    int
	Pages    int
	Duration time.Duration
}

type Option func(*Builder)

// WithLiveReload makes every page connect to the live reload endpoint at path.
func WithLiveReload(path string) Option {
	return func(b *Builder) { b.liveReload = path }
}

// Builder runs the build pipeline for one configuration.
type Builder struct {
	cfg        config.Config
	logger     *zap.Logger
	liveReload string
}

func New(cfg config.Config, logger *zap.Logger, opts ...Option) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Builder{cfg: cfg, logger: logger}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Metadata extracts the site-wide template data from a configuration.
func Metadata(cfg config.Config) model.SiteMetadata {
	return model.SiteMetadata{
		Title:       cfg.SiteTitle,
		Author:      cfg.Author,
		Description: cfg.Description,
		SiteURL:     cfg.BaseURL,
		Avatar:      cfg.Avatar,
		Social: model.Social{
			GitHub:   cfg.Social.GitHub,
			LinkedIn: cfg.Social.LinkedIn,
		},
		AnalyticsID:     cfg.AnalyticsID,
		DisqusShortname: cfg.DisqusShortname,
		EditURL:         cfg.EditURL,
	}
}

// LoadIndex loads every post and orders them. It is the read-only half of a
// build and does not touch the output directory.
func LoadIndex(ctx context.Context, cfg config.Config, logger *zap.Logger) (index.Index, error) {
	loader := content.NewLoader(content.Options{
		Root:          cfg.ContentDir,
		ExcerptLength: cfg.ExcerptLength,
		IncludeDrafts: cfg.IncludeDrafts,
		RequireTitle:  cfg.RequireTitle,
		Markdown: content.MarkdownOptions{
			HighlightStyle: cfg.HighlightStyle,
			LineNumbers:    cfg.HighlightNumbers,
		},
	}, logger)

	posts, err := loader.Load(ctx)
	if err != nil {
		return index.Index{}, err
	}
	return index.Build(posts)
}

// Build generates the site. Content is loaded and validated before the output
// directory is cleaned, so a content error leaves the previous output intact.
func (b *Builder) Build(ctx context.Context) (Report, error) {
	start := time.Now()
	cfg := b.cfg
	b.logger.Info("starting build",
		zap.String("content", cfg.ContentDir),
		zap.String("output", cfg.OutputDir),
		zap.String("site", cfg.SiteTitle))

	idx, err := LoadIndex(ctx, cfg, b.logger)
	if err != nil {
		return Report{}, err
	}

	th, err := theme.Load(b.layoutsDir(), b.logger)
	if err != nil {
		return Report{}, err
	}

	if err := b.prepareOutput(); err != nil {
		return Report{}, err
	}

	site := &model.SiteData{
		Meta:      Metadata(cfg),
		Posts:     idx.Posts(),
		Adjacency: idx.ResolveAll(),
	}

	if err := b.renderPosts(ctx, th, site); err != nil {
		return Report{}, err
	}
	if err := b.renderHome(th, site, idx.Summaries()); err != nil {
		return Report{}, err
	}
	if err := b.renderNotFound(th, site); err != nil {
		return Report{}, err
	}
	if err := b.writeFeed(site); err != nil {
		return Report{}, err
	}
	if err := b.writeManifest(); err != nil {
		return Report{}, err
	}

	report := Report{
		Posts:    len(site.Posts),
		Pages:    len(site.Posts) + 2,
		Duration: time.Since(start),
	}
	b.logger.Info("build completed",
		zap.Int("posts", report.Posts),
		zap.Int("pages", report.Pages),
		zap.Duration("duration", report.Duration))
	return report, nil
}

// layoutsDir returns the site's layouts directory, or "" when it has none and
// the embedded layouts are used on their own.
func (b *Builder) layoutsDir() string {
	dir := b.cfg.LayoutsDir
	if dir == "" {
		return ""
	}
	if _, err := os.Stat(dir); err != nil {
		b.logger.Debug("no layouts directory, using built-in layouts", zap.String("dir", dir))
		return ""
	}
	return dir
}

func (b *Builder) prepareOutput() error {
	out := b.cfg.OutputDir
	b.logger.Debug("cleaning output directory", zap.String("dir", out))
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", out, err)
	}
	if err := os.MkdirAll(out, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", out, err)
	}

	// The built-in stylesheet goes first so a site stylesheet replaces it.
	if err := writeFile(filepath.Join(out, stylesFile), theme.Stylesheet); err != nil {
		return err
	}

	static := b.cfg.StaticDir
	if static == "" {
		return nil
	}
	if _, err := os.Stat(static); errors.Is(err, fs.ErrNotExist) {
		b.logger.Debug("static assets directory not found, skipping copy", zap.String("dir", static))
		return nil
	}
	if err := copyDirContents(static, out, b.logger); err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}
	return nil
}

func (b *Builder) renderPosts(ctx context.Context, th *theme.Theme, site *model.SiteData) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, b.cfg.Workers))
	for _, p := range site.Posts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return b.renderPost(th, site, p)
		})
	}
	return g.Wait()
}

func (b *Builder) renderPost(th *theme.Theme, site *model.SiteData, p *model.Post) error {
	adj, ok := site.Adjacency[p.Slug]
	if !ok {
		return fmt.Errorf("%w: %s", index.ErrNotFound, p.Slug)
	}
	links, err := nav.RenderAll(adj)
	if err != nil {
		return err
	}

	data := b.pageData(site.Meta)
	data.SEO = seo.ForPost(site.Meta, p)
	data.Post = p
	data.Adjacency = adj
	data.Nav = links
	data.EditURL = b.editURL(p)
	if site.Meta.DisqusShortname != "" {
		data.Comments = &model.Comments{
			Shortname:  site.Meta.DisqusShortname,
			Identifier: p.Slug,
			Title:      site.Meta.Title,
		}
	}

	out := route.OutputFile(b.cfg.OutputDir, p.Slug)
	if err := b.render(th, theme.Post, data, out); err != nil {
		return fmt.Errorf("failed to render post '%s': %w", p.Slug, err)
	}

	dir := filepath.Dir(out)
	for _, asset := range p.Assets {
		src := filepath.Join(filepath.Dir(p.SourcePath), asset)
		if err := copyFile(src, filepath.Join(dir, asset), b.logger); err != nil {
			return fmt.Errorf("failed to copy asset for '%s': %w", p.Slug, err)
		}
	}
	return nil
}

func (b *Builder) renderHome(th *theme.Theme, site *model.SiteData, posts []model.PostSummary) error {
	data := b.pageData(site.Meta)
	data.NonBlog = true
	data.SEO = seo.ForPage(site.Meta, homeTitle, "", route.IndexPath)
	data.Posts = posts
	return b.render(th, theme.Home, data, route.OutputFile(b.cfg.OutputDir, route.IndexPath))
}

func (b *Builder) renderNotFound(th *theme.Theme, site *model.SiteData) error {
	data := b.pageData(site.Meta)
	data.SEO = seo.ForPage(site.Meta, notFoundTitle, "", "")
	return b.render(th, theme.NotFound, data, filepath.Join(b.cfg.OutputDir, route.NotFoundFile))
}

func (b *Builder) writeFeed(site *model.SiteData) error {
	feed, err := Feed(site.Meta, site.Posts)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(b.cfg.OutputDir, route.FeedFile), feed)
}

func (b *Builder) writeManifest() error {
	m, err := Manifest(b.cfg)
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(b.cfg.OutputDir, route.ManifestFile), m); err != nil {
		return err
	}
	if icon := b.cfg.Manifest.Icon; icon != "" {
		if err := copyFile(icon, filepath.Join(b.cfg.OutputDir, iconName(icon)), b.logger); err != nil {
			return fmt.Errorf("failed to copy manifest icon: %w", err)
		}
	}
	return nil
}

func (b *Builder) pageData(meta model.SiteMetadata) model.PageData {
	return model.PageData{
		Site:       meta,
		Header:     header.View(meta),
		LiveReload: b.liveReload,
	}
}

// editURL points at the post's source file under the configured edit base URL.
func (b *Builder) editURL(p *model.Post) string {
	base := b.cfg.EditURL
	if base == "" {
		return ""
	}
	rel, err := filepath.Rel(b.cfg.ContentDir, p.SourcePath)
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/" + filepath.ToSlash(rel)
}

func (b *Builder) render(th *theme.Theme, kind theme.Kind, data model.PageData, out string) error {
	var buf bytes.Buffer
	if err := th.Execute(&buf, kind, data); err != nil {
		return err
	}
	if err := writeFile(out, buf.Bytes()); err != nil {
		return err
	}
	b.logger.Debug("generated page", zap.String("path", out), zap.String("layout", string(kind)))
	return nil
}
