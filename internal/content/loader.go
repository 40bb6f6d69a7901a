// Package content turns a directory of Markdown posts into model.Post values.
package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/araddon/dateparse"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Bitlatte/developmental/internal/model"
	"github.com/Bitlatte/developmental/internal/route"
)

// Options configures a Loader.
type Options struct {
	Root          string
	ExcerptLength int
	IncludeDrafts bool
	// RequireTitle rejects posts without a front matter title instead of
	// deriving one from the file name.
	RequireTitle bool
	Markdown     MarkdownOptions
}

type frontMatter struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Date        string `yaml:"date" toml:"date" json:"date"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Draft       bool   `yaml:"draft" toml:"draft" json:"draft"`
}

// Loader reads posts from a content directory.
type Loader struct {
	opts   Options
	md     goldmark.Markdown
	logger *zap.Logger
}

func NewLoader(opts Options, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ExcerptLength <= 0 {
		opts.ExcerptLength = 160
	}
	return &Loader{
		opts:   opts,
		md:     NewMarkdown(opts.Markdown),
		logger: logger,
	}
}

// Load walks the content root and returns every published post in walk order.
// All content errors found are returned together; any of them fails the load.
func (l *Loader) Load(ctx context.Context) ([]*model.Post, error) {
	root := l.opts.Root
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("content directory '%s' not found: %w", root, err)
	}

	var (
		posts   []*model.Post
		errs    []error
		bySlug  = make(map[string]string)
		assets  = make(map[string][]string)
		postDir = make(map[*model.Post]string)
	)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", path, walkErr)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isMarkdown(d.Name()) {
			if !strings.HasPrefix(d.Name(), ".") {
				dir := filepath.Dir(path)
				assets[dir] = append(assets[dir], d.Name())
			}
			return nil
		}

		post, err := l.LoadFile(path)
		if err != nil {
			var cerr *Error
			if errors.As(err, &cerr) {
				errs = append(errs, err)
				return nil
			}
			return err
		}
		if post == nil {
			return nil
		}
		if other, dup := bySlug[post.Slug]; dup {
			errs = append(errs, &Error{
				Path: path,
				Err:  fmt.Errorf("%w: %s is also defined by %s", ErrDuplicateSlug, post.Slug, other),
			})
			return nil
		}
		bySlug[post.Slug] = path
		if isIndexFile(d.Name()) {
			postDir[post] = filepath.Dir(path)
		}
		posts = append(posts, post)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("error during content collection walk: %w", walkErr)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	for post, dir := range postDir {
		files := assets[dir]
		sort.Strings(files)
		post.Assets = files
	}

	l.logger.Debug("content loaded", zap.String("root", root), zap.Int("posts", len(posts)))
	return posts, nil
}

// LoadFile parses one Markdown file. It returns a nil post, and no error, for
// drafts that are being skipped.
func (l *Loader) LoadFile(path string) (*model.Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("%w: %v", ErrFrontMatter, err)}
	}
	if fm.Draft && !l.opts.IncludeDrafts {
		l.logger.Debug("skipping draft", zap.String("path", path))
		return nil, nil
	}

	slug, err := Slug(l.opts.Root, path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	if slug == route.IndexPath {
		return nil, &Error{Path: path, Err: fmt.Errorf("%w: %s collides with the index page", ErrDuplicateSlug, slug)}
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		if l.opts.RequireTitle {
			return nil, &Error{Path: path, Err: ErrMissingTitle}
		}
		title = titleFromPath(path)
	}

	dateStr := strings.TrimSpace(fm.Date)
	if dateStr == "" {
		return nil, &Error{Path: path, Err: ErrMissingDate}
	}
	date, err := dateparse.ParseStrict(dateStr)
	if err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("%w %q: %v", ErrInvalidDate, dateStr, err)}
	}

	var htmlBuffer bytes.Buffer
	if err := l.md.Convert(body, &htmlBuffer); err != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML for file '%s': %w", path, err)
	}

	plain := PlainText(string(body))
	return &model.Post{
		Slug:            slug,
		Title:           title,
		Date:            date,
		Description:     strings.TrimSpace(fm.Description),
		Excerpt:         Prune(plain, l.opts.ExcerptLength),
		HTML:            template.HTML(htmlBuffer.String()),
		Markdown:        string(body),
		ReadTimeMinutes: ReadTime(plain),
		SourcePath:      path,
	}, nil
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

func isIndexFile(name string) bool {
	return strings.EqualFold(strings.TrimSuffix(name, filepath.Ext(name)), "index")
}

// titleFromPath turns "my-first_post.md" (or "my-first_post/index.md") into
// "My First Post".
func titleFromPath(path string) string {
	name := filepath.Base(path)
	if isIndexFile(name) {
		name = filepath.Base(filepath.Dir(path))
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(name)
}
