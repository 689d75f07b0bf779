package config

import (
	"github.com/arthur-debert/hilfsbuch/pkg/errors"
	"github.com/arthur-debert/hilfsbuch/pkg/render"
)

// Config is the complete application configuration
type Config struct {
	Render Render `koanf:"render" toml:"render"`
	Gate   Gate   `koanf:"gate" toml:"gate"`
	Search Search `koanf:"search" toml:"search"`
}

// Render controls how topics are printed
type Render struct {
	Format string `koanf:"format" toml:"format"`
	Theme  string `koanf:"theme" toml:"theme"`
	Width  int    `koanf:"width" toml:"width"`
}

// Gate controls the pause after gated topics
type Gate struct {
	Enabled bool `koanf:"enabled" toml:"enabled"`
}

// Search controls the search command
type Search struct {
	Limit int `koanf:"limit" toml:"limit"`
}

var themes = map[string]bool{"auto": true, "dark": true, "light": true}

// Validate checks the values that cannot be expressed by the types alone
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Render.Format); err != nil {
		return errors.Newf(errors.ErrConfigValid, "invalid render.format %q", c.Render.Format).
			WithDetail("key", "render.format")
	}
	if !themes[c.Render.Theme] {
		return errors.Newf(errors.ErrConfigValid, "invalid render.theme %q", c.Render.Theme).
			WithDetail("key", "render.theme")
	}
	if c.Render.Width < 0 {
		return errors.Newf(errors.ErrConfigValid, "render.width must not be negative, got %d", c.Render.Width).
			WithDetail("key", "render.width")
	}
	if c.Search.Limit < 0 {
		return errors.Newf(errors.ErrConfigValid, "search.limit must not be negative, got %d", c.Search.Limit).
			WithDetail("key", "search.limit")
	}
	return nil
}

// Format returns the parsed render format
func (c *Config) Format() render.Format {
	f, err := render.ParseFormat(c.Render.Format)
	if err != nil {
		return render.FormatAuto
	}
	return f
}

// RenderOptions returns the renderer options for this configuration
func (c *Config) RenderOptions() render.Options {
	return render.Options{Theme: c.Render.Theme, Width: c.Render.Width}
}
