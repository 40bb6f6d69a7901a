package config

import (
	"errors"
	"fmt"
	"strings"
)

// Social holds the account handles linked from the site header.
type Social struct {
	GitHub   string `mapstructure:"github"`
	LinkedIn string `mapstructure:"linkedin"`
}

// Manifest configures the generated web app manifest.
type Manifest struct {
	Name            string `mapstructure:"name"`
	ShortName       string `mapstructure:"shortName"`
	StartURL        string `mapstructure:"startURL"`
	BackgroundColor string `mapstructure:"backgroundColor"`
	ThemeColor      string `mapstructure:"themeColor"`
	Display         string `mapstructure:"display"`
	Icon            string `mapstructure:"icon"`
}

type Config struct {
	SiteTitle   string `mapstructure:"siteTitle"`
	Author      string `mapstructure:"author"`
	Description string `mapstructure:"description"`
	BaseURL     string `mapstructure:"baseURL"`
	Avatar      string `mapstructure:"avatar"`
	Social      Social `mapstructure:"social"`

	ContentDir string `mapstructure:"contentDir"`
	LayoutsDir string `mapstructure:"layoutsDir"`
	StaticDir  string `mapstructure:"staticDir"`
	OutputDir  string `mapstructure:"outputDir"`

	ExcerptLength int  `mapstructure:"excerptLength"`
	IncludeDrafts bool `mapstructure:"includeDrafts"`
	RequireTitle  bool `mapstructure:"requireTitle"`
	Workers       int  `mapstructure:"workers"`

	// Passed through to the templates untouched.
	AnalyticsID      string `mapstructure:"analyticsID"`
	DisqusShortname  string `mapstructure:"disqusShortname"`
	EditURL          string `mapstructure:"editURL"`
	HighlightStyle   string `mapstructure:"highlightStyle"`
	HighlightNumbers bool   `mapstructure:"highlightLineNumbers"`

	Manifest Manifest `mapstructure:"manifest"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		SiteTitle:     "Developmental",
		Author:        "",
		Description:   "Learning it without losing it",
		ContentDir:    "content/blog",
		LayoutsDir:    "layouts",
		StaticDir:     "static",
		OutputDir:     "public",
		ExcerptLength: 160,
		RequireTitle:  true,
		Workers:       4,
		Manifest: Manifest{
			StartURL:        "/",
			BackgroundColor: "#ffffff",
			ThemeColor:      "#607080",
			Display:         "minimal-ui",
		},
		HighlightStyle:   "monokai",
		HighlightNumbers: true,
	}
}

// Validate reports configuration that would produce a broken site.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.SiteTitle) == "" {
		errs = append(errs, errors.New("siteTitle must not be empty"))
	}
	if c.ContentDir == "" {
		errs = append(errs, errors.New("contentDir must not be empty"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("outputDir must not be empty"))
	}
	if c.ExcerptLength < 1 {
		errs = append(errs, fmt.Errorf("excerptLength must be positive, got %d", c.ExcerptLength))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	return errors.Join(errs...)
}

// ManifestName falls back to the site title when the manifest has no name of its own.
func (c Config) ManifestName() (name, short string) {
	name, short = c.Manifest.Name, c.Manifest.ShortName
	if name == "" {
		name = c.SiteTitle
	}
	if short == "" {
		short = name
	}
	return name, short
}
