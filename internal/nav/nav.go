// Package nav renders the links between a post and its neighbours.
package nav

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Bitlatte/developmental/internal/model"
	"github.com/Bitlatte/developmental/internal/route"
)

// Direction is which neighbour a link points at.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Rel is the link relation for the direction.
func (d Direction) Rel() string {
	if d == Next {
		return "next"
	}
	return "prev"
}

func (d Direction) Label() string {
	if d == Next {
		return "Read the next article"
	}
	return "Read the previous article"
}

func (d Direction) Arrow() string {
	if d == Next {
		return "→"
	}
	return "←"
}

// Style is the set of classes a link is rendered with.
type Style string

const (
	StyleOlder Style = "other"
	StyleNewer Style = "other other--new"
)

// Variant selects the style for a direction.
func Variant(d Direction) Style {
	if d == Next {
		return StyleNewer
	}
	return StyleOlder
}

// Link is one rendered navigation link.
type Link struct {
	Direction Direction
	Href      string
	Rel       string
	Label     string
	Arrow     string
	Title     string
	Class     Style
}

// ArrowFirst reports whether the arrow precedes the text.
func (l Link) ArrowFirst() bool { return l.Direction == Previous }

// LinkFor builds the link for one direction. It reports false when there is no
// neighbour on that side.
func LinkFor(adj model.Adjacency, d Direction) (Link, bool) {
	ref := adj.Previous
	if d == Next {
		ref = adj.Next
	}
	other, ok := ref.Get()
	if !ok {
		return Link{}, false
	}
	return Link{
		Direction: d,
		Href:      route.PostPath(other.Slug),
		Rel:       d.Rel(),
		Label:     d.Label(),
		Arrow:     d.Arrow(),
		Title:     other.DisplayTitle(),
		Class:     Variant(d),
	}, true
}

// Links returns the links present for adj in reading order.
func Links(adj model.Adjacency) []Link {
	var out []Link
	for _, d := range []Direction{Previous, Next} {
		if l, ok := LinkFor(adj, d); ok {
			out = append(out, l)
		}
	}
	return out
}

var linkTmpl = template.Must(template.New("link").Parse(
	`<a href="{{.Href}}" rel="{{.Rel}}" class="{{.Class}}">` +
		`{{if .ArrowFirst}}<div class="arrow">{{.Arrow}}</div>{{end}}` +
		`<div class="other-text"><p class="other-phrase">{{.Label}}</p><p class="other-title">{{.Title}}</p></div>` +
		`{{if not .ArrowFirst}}<div class="arrow">{{.Arrow}}</div>{{end}}` +
		`</a>`))

// Render returns the HTML for one direction, or nothing when there is no
// neighbour on that side.
func Render(adj model.Adjacency, d Direction) (template.HTML, error) {
	l, ok := LinkFor(adj, d)
	if !ok {
		return "", nil
	}
	var buf bytes.Buffer
	if err := linkTmpl.Execute(&buf, l); err != nil {
		return "", fmt.Errorf("failed to render %s link: %w", d, err)
	}
	return template.HTML(buf.String()), nil
}

// RenderAll renders the links present for adj in reading order.
func RenderAll(adj model.Adjacency) ([]template.HTML, error) {
	var out []template.HTML
	for _, d := range []Direction{Previous, Next} {
		h, err := Render(adj, d)
		if err != nil {
			return nil, err
		}
		if h != "" {
			out = append(out, h)
		}
	}
	return out, nil
}
