// Package theme loads the page layouts. Every layout ships embedded in the
// binary; a site can replace any of them by placing a file with the same
// relative path in its layouts directory.
package theme

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Bitlatte/developmental/internal/model"
	"github.com/Bitlatte/developmental/internal/route"
)

//go:embed layouts
var embedded embed.FS

//go:embed static/styles.css
var Stylesheet []byte

const (
	baseLayout  = "base.html"
	partialsDir = "partials"
)

// Kind names a page layout.
type Kind string

const (
	Post     Kind = "post.html"
	Home     Kind = "home.html"
	NotFound Kind = "404.html"
)

// Kinds lists every page layout a theme must provide.
var Kinds = []Kind{Post, Home, NotFound}

var funcs = template.FuncMap{
	"postPath": route.PostPath,
	"absURL":   route.Absolute,
}

// Theme holds one parsed template set per page kind.
type Theme struct {
	pages map[Kind]*template.Template
}

// Load parses the base layout and partials first, then clones that set once
// per page layout so each page can define its own content and footer blocks.
func Load(layoutsDir string, logger *zap.Logger) (*Theme, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	src := source{dir: layoutsDir, logger: logger}

	baseText, err := src.read(baseLayout)
	if err != nil {
		return nil, err
	}
	base, err := template.New(baseLayout).Funcs(funcs).Parse(baseText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", baseLayout, err)
	}

	partials, err := src.partials()
	if err != nil {
		return nil, err
	}
	for _, name := range partials {
		text, err := src.read(name)
		if err != nil {
			return nil, err
		}
		if _, err := base.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("failed to parse partial %s: %w", name, err)
		}
	}

	t := &Theme{pages: make(map[Kind]*template.Template, len(Kinds))}
	for _, kind := range Kinds {
		text, err := src.read(string(kind))
		if err != nil {
			return nil, err
		}
		page, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone base layout for %s: %w", kind, err)
		}
		if _, err := page.New(string(kind)).Parse(text); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", kind, err)
		}
		t.pages[kind] = page
	}
	return t, nil
}

// Execute renders a page of the given kind.
func (t *Theme) Execute(w io.Writer, kind Kind, data model.PageData) error {
	page, ok := t.pages[kind]
	if !ok {
		return fmt.Errorf("unknown layout %q", kind)
	}
	if err := page.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("failed to execute template '%s': %w", kind, err)
	}
	return nil
}

// source resolves layout files, preferring the site's layouts directory over
// the embedded defaults.
type source struct {
	dir    string
	logger *zap.Logger
}

func (s source) read(name string) (string, error) {
	if s.dir != "" {
		b, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(name)))
		if err == nil {
			s.logger.Debug("using site layout", zap.String("layout", name))
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to read layout %s: %w", name, err)
		}
	}
	b, err := embedded.ReadFile(path.Join("layouts", name))
	if err != nil {
		return "", fmt.Errorf("layout %s not found: %w", name, err)
	}
	return string(b), nil
}

// partials returns the union of embedded and site partials, sorted.
func (s source) partials() ([]string, error) {
	seen := make(map[string]bool)
	matches, err := fs.Glob(embedded, path.Join("layouts", partialsDir, "*.html"))
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		seen[path.Join(partialsDir, path.Base(m))] = true
	}

	if s.dir != "" {
		local, err := filepath.Glob(filepath.Join(s.dir, partialsDir, "*.html"))
		if err != nil {
			return nil, err
		}
		for _, m := range local {
			seen[path.Join(partialsDir, filepath.Base(m))] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		if strings.HasSuffix(strings.ToLower(name), ".html") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
