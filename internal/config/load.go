package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. DEV_DISQUSSHORTNAME.
const EnvPrefix = "DEV"

// Load reads the configuration from cfgFile, or from ./config.yaml when cfgFile is
// empty. A missing default config file is not an error; the second return value
// reports which file was used, if any.
func Load(cfgFile string) (Config, string, error) {
	v := viper.New()
	setDefaults(v, Default())

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, "", fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, used, nil
}

// Every key gets a default so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("siteTitle", d.SiteTitle)
	v.SetDefault("author", d.Author)
	v.SetDefault("description", d.Description)
	v.SetDefault("baseURL", d.BaseURL)
	v.SetDefault("avatar", d.Avatar)
	v.SetDefault("social.github", d.Social.GitHub)
	v.SetDefault("social.linkedin", d.Social.LinkedIn)
	v.SetDefault("contentDir", d.ContentDir)
	v.SetDefault("layoutsDir", d.LayoutsDir)
	v.SetDefault("staticDir", d.StaticDir)
	v.SetDefault("outputDir", d.OutputDir)
	v.SetDefault("excerptLength", d.ExcerptLength)
	v.SetDefault("includeDrafts", d.IncludeDrafts)
	v.SetDefault("requireTitle", d.RequireTitle)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("analyticsID", d.AnalyticsID)
	v.SetDefault("disqusShortname", d.DisqusShortname)
	v.SetDefault("editURL", d.EditURL)
	v.SetDefault("highlightStyle", d.HighlightStyle)
	v.SetDefault("highlightLineNumbers", d.HighlightNumbers)
	v.SetDefault("manifest.name", d.Manifest.Name)
	v.SetDefault("manifest.shortName", d.Manifest.ShortName)
	v.SetDefault("manifest.startURL", d.Manifest.StartURL)
	v.SetDefault("manifest.backgroundColor", d.Manifest.BackgroundColor)
	v.SetDefault("manifest.themeColor", d.Manifest.ThemeColor)
	v.SetDefault("manifest.display", d.Manifest.Display)
	v.SetDefault("manifest.icon", d.Manifest.Icon)
}
