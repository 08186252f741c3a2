package campbuidl

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/pelletier/go-toml/v2"

	"github.com/eringen/campbuidl/internal/logger"
	"github.com/eringen/campbuidl/views"
)

// SiteConfig holds all configuration for a guide site.
type SiteConfig struct {
	Name        string // Site name (default "CampBuidl")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Overrides the page description in meta tags

	Addr        string // Listen address (default ":3000")
	ContentPath string // YAML or SQLite content file; empty serves the built-in guide
	StaticDir   string // User-owned static assets (default "public")
	LogMode     string // dev, prod or quiet (default "dev")

	CacheTTL time.Duration // Rendered page cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "CampBuidl"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.LogMode == "" {
		c.LogMode = "dev"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
}

// fileConfig mirrors site.toml. Durations are written as strings ("5m").
type fileConfig struct {
	Name        string `toml:"name"`
	URL         string `toml:"url"`
	Description string `toml:"description"`
	Addr        string `toml:"addr"`
	Content     string `toml:"content"`
	StaticDir   string `toml:"static_dir"`
	LogMode     string `toml:"log_mode"`
	CacheTTL    string `toml:"cache_ttl"`
}

// LoadConfig reads the optional TOML file at path and then applies the
// environment on top. A missing file is only an error when path was given
// explicitly; defaults are filled in later by New.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return SiteConfig{}, fmt.Errorf("campbuidl: open config: %w", err)
		}
		defer f.Close()

		var fc fileConfig
		if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&fc); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return SiteConfig{}, fmt.Errorf("campbuidl: config %s: %s", path, strict.String())
			}
			return SiteConfig{}, fmt.Errorf("campbuidl: config %s: %w", path, err)
		}
		cfg = SiteConfig{
			Name:        fc.Name,
			URL:         fc.URL,
			Description: fc.Description,
			Addr:        fc.Addr,
			ContentPath: fc.Content,
			StaticDir:   fc.StaticDir,
			LogMode:     fc.LogMode,
		}
		if fc.CacheTTL != "" {
			ttl, err := time.ParseDuration(fc.CacheTTL)
			if err != nil {
				return SiteConfig{}, fmt.Errorf("campbuidl: config %s: cache_ttl: %w", path, err)
			}
			cfg.CacheTTL = ttl
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *SiteConfig) applyEnv() {
	c.Name = EnvOr("SITE_NAME", c.Name)
	c.URL = EnvOr("SITE_URL", c.URL)
	c.Description = EnvOr("SITE_DESCRIPTION", c.Description)
	c.Addr = EnvOr("ADDR", c.Addr)
	c.ContentPath = EnvOr("CONTENT_PATH", c.ContentPath)
	c.StaticDir = EnvOr("STATIC_DIR", c.StaticDir)
	c.LogMode = EnvOr("LOG_MODE", c.LogMode)
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithConnectSlot sets the wallet connect control shown in the nav bar.
func WithConnectSlot(c templ.Component) Option {
	return func(a *App) {
		a.slots.Connect = c
	}
}

// WithRouter sets how internal link targets are resolved.
func WithRouter(r views.Router) Option {
	return func(a *App) {
		a.slots.Router = r
	}
}

// WithLogger replaces the logger built from SiteConfig.LogMode.
func WithLogger(l *logger.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}
