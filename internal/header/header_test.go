package header

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bitlatte/developmental/internal/model"
)

var meta = model.SiteMetadata{
	Title:       "Developmental",
	Description: "Learning it without losing it",
	Social:      model.Social{GitHub: "octocat", LinkedIn: "octocat-code"},
}

func TestTitleHover(t *testing.T) {
	var s State
	assert.Equal(t, "Developmental", s.Label(meta))

	s = s.Enter(Title)
	assert.Equal(t, Title, s.Hovered())
	assert.Equal(t, `"Learning it without losing it"`, s.Label(meta))

	s = s.Leave(Title)
	assert.Equal(t, None, s.Hovered())
	assert.Equal(t, "Developmental", s.Label(meta))
}

func TestSocialHover(t *testing.T) {
	s := State{}.Enter(GitHub)
	assert.Equal(t, "github.com/octocat", s.Label(meta))

	s = s.Leave(GitHub).Enter(LinkedIn)
	assert.Equal(t, "linkedin.com/in/octocat-code", s.Label(meta))
}

func TestSocialHover_NoHandle(t *testing.T) {
	bare := model.SiteMetadata{Title: "Developmental"}
	assert.Equal(t, "Developmental", State{}.Enter(GitHub).Label(bare))
	assert.Equal(t, "Developmental", State{}.Enter(LinkedIn).Label(bare))

	v := View(bare)
	assert.Empty(t, v.GitHubLabel)
	assert.Empty(t, v.LinkedInLabel)
}

func TestSingleActiveTarget(t *testing.T) {
	s := State{}.Enter(Title).Enter(GitHub)
	assert.Equal(t, GitHub, s.Hovered(), "entering a region replaces the old one")

	s = s.Leave(Title)
	assert.Equal(t, GitHub, s.Hovered(), "leaving a region that is not hovered is ignored")

	s = s.Leave(GitHub)
	assert.Equal(t, None, s.Hovered())
}

func TestView(t *testing.T) {
	v := View(meta)
	assert.Equal(t, "Developmental", v.Title)
	assert.Equal(t, `"Learning it without losing it"`, v.TitleLabel)
	assert.Equal(t, "https://github.com/octocat", v.GitHubURL)
	assert.Equal(t, "github.com/octocat", v.GitHubLabel)
	assert.Equal(t, "https://linkedin.com/in/octocat-code", v.LinkedInURL)

	bare := View(model.SiteMetadata{Title: "T"})
	assert.Empty(t, bare.GitHubURL, "no handle, no link")
	assert.Empty(t, bare.LinkedInURL)
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "title", Title.String())
	assert.Equal(t, "Target(9)", Target(9).String())
}
