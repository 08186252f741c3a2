// Package campbuidl serves a tiered tutorial guide as a single server-rendered
// page. Lessons are loaded from YAML, SQLite or the built-in guide, validated,
// composed once with templ and served by Echo.
//
// The host supplies the wallet connect control and the router through
// Options; campbuidl owns the layout, the lesson blocks and the HTTP surface.
package campbuidl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/campbuidl/content"
	"github.com/eringen/campbuidl/internal/logger"
	"github.com/eringen/campbuidl/views"
)

// ConnectMountID is the id of the element the default connect slot renders.
const ConnectMountID = "connect-button"

const shutdownTimeout = 10 * time.Second

// App is the central application. It wires together the composed document,
// the render cache, handlers and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Doc    *views.Document
	Cache  *PageCache

	log          *logger.Logger
	slots        views.Slots
	customRoutes []func(*App)
	staticDir    string
}

// New composes page and sets up middleware and routes. Content violations
// and missing slots are reported here, never at request time.
func New(cfg SiteConfig, page content.Page, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		slots: views.Slots{
			Connect: views.ConnectMount(ConnectMountID),
			Router:  views.PathRouter{},
		},
		staticDir: cfg.StaticDir,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		l, err := logger.New(cfg.LogMode)
		if err != nil {
			return nil, fmt.Errorf("campbuidl: init logger: %w", err)
		}
		a.log = l
	}

	doc, err := views.Compose(page, a.slots, a.meta(page))
	if err != nil {
		return nil, fmt.Errorf("campbuidl: compose: %w", err)
	}
	a.Doc = doc
	a.Cache = NewPageCache(cfg.CacheTTL)

	a.Echo.HideBanner = true
	a.Echo.HidePort = true
	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

func (a *App) meta(page content.Page) views.PageMeta {
	return views.PageMeta{
		Title:       page.Title,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL),
		Image:       fileURL(a.Config.URL, "og.png"),
	}
}

// Logger returns the application logger.
func (a *App) Logger() *logger.Logger { return a.log }

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/favicon.svg", a.handleFavicon)
	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", a.handleHealth)

	e.GET("/", a.handleHome)
	e.GET("/lessons/:id/", a.handleLesson)
	e.GET("/guide.md", a.handleMarkdown)
	e.GET("/og.png", a.handleOGImage)
}

// Start serves until ctx is cancelled, then shuts the server down
// gracefully.
func (a *App) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("serving guide", "addr", a.Config.Addr, "url", a.Config.URL, "lessons", len(a.Doc.Page().Lessons))
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("campbuidl: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.log.Info("shutting down")
		return a.Echo.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Close flushes the logger.
func (a *App) Close() error {
	a.log.Sync()
	return nil
}

// LoadContent loads and validates the page at path. An empty path yields the
// built-in guide.
func LoadContent(ctx context.Context, path string) (content.Page, error) {
	src := content.Builtin()
	if path != "" {
		src = content.FileSource(path)
	}
	return content.Load(ctx, src)
}
