package site

import (
	"encoding/json"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/Bitlatte/developmental/internal/config"
)

type manifestIcon struct {
	Src  string `json:"src"`
	Type string `json:"type,omitempty"`
}

type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	StartURL        string         `json:"start_url"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Display         string         `json:"display"`
	Icons           []manifestIcon `json:"icons,omitempty"`
}

// iconName is where the configured manifest icon is copied in the output.
func iconName(src string) string {
	return "icon" + filepath.Ext(src)
}

// Manifest renders the web app manifest. When the config names an icon it is
// referenced at its output location.
func Manifest(cfg config.Config) ([]byte, error) {
	name, short := cfg.ManifestName()
	m := webManifest{
		Name:            name,
		ShortName:       short,
		StartURL:        cfg.Manifest.StartURL,
		BackgroundColor: cfg.Manifest.BackgroundColor,
		ThemeColor:      cfg.Manifest.ThemeColor,
		Display:         cfg.Manifest.Display,
	}
	if cfg.Manifest.Icon != "" {
		m.Icons = []manifestIcon{{
			Src:  "/" + iconName(cfg.Manifest.Icon),
			Type: mime.TypeByExtension(filepath.Ext(cfg.Manifest.Icon)),
		}}
	}
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return out, nil
}
