// Package header models the hover state of the site header: the title block
// shows the site title until the pointer rests on a hoverable region, which
// swaps in that region's label.
package header

import (
	"fmt"

	"github.com/Bitlatte/developmental/internal/model"
)

// Target is a hoverable region of the header.
type Target int

const (
	None Target = iota
	Title
	GitHub
	LinkedIn
)

func (t Target) String() string {
	switch t {
	case None:
		return "none"
	case Title:
		return "title"
	case GitHub:
		return "github"
	case LinkedIn:
		return "linkedin"
	}
	return fmt.Sprintf("Target(%d)", int(t))
}

// State is the hover state of one rendered header. The zero value is idle.
type State struct {
	hovered Target
}

// Hovered returns the active target, None when idle.
func (s State) Hovered() Target { return s.hovered }

// Enter moves to hovered(t). Entering a new region replaces the previous one.
func (s State) Enter(t Target) State {
	return State{hovered: t}
}

// Leave returns to idle when t is the hovered target; leaving any other region
// changes nothing.
func (s State) Leave(t Target) State {
	if s.hovered != t {
		return s
	}
	return State{}
}

// Label is the text the title block shows in state s.
func (s State) Label(meta model.SiteMetadata) string {
	return Labels(meta)[s.hovered]
}

// Labels maps every target to the text it displays. A social target without a
// handle shows the site title.
func Labels(meta model.SiteMetadata) map[Target]string {
	labels := map[Target]string{
		None:     meta.Title,
		Title:    `"` + meta.Description + `"`,
		GitHub:   meta.Title,
		LinkedIn: meta.Title,
	}
	if meta.Social.GitHub != "" {
		labels[GitHub] = GitHubLink(meta.Social.GitHub)
	}
	if meta.Social.LinkedIn != "" {
		labels[LinkedIn] = LinkedInLink(meta.Social.LinkedIn)
	}
	return labels
}

func GitHubLink(handle string) string { return "github.com/" + handle }

func LinkedInLink(handle string) string { return "linkedin.com/in/" + handle }

// View prepares the header partial's data.
func View(meta model.SiteMetadata) model.HeaderView {
	labels := Labels(meta)
	v := model.HeaderView{
		Title:      labels[None],
		TitleLabel: labels[Title],
		Avatar:     meta.Avatar,
		Author:     meta.Author,
	}
	if meta.Social.GitHub != "" {
		v.GitHubLabel = labels[GitHub]
		v.GitHubURL = "https://" + labels[GitHub]
	}
	if meta.Social.LinkedIn != "" {
		v.LinkedInLabel = labels[LinkedIn]
		v.LinkedInURL = "https://" + labels[LinkedIn]
	}
	return v
}
