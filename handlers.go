package campbuidl

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/campbuidl/views"
)

const (
	keyHome     = "home"
	keyMarkdown = "guide.md"
	keyOGImage  = "og.png"
)

func (a *App) handleHome(c echo.Context) error {
	body, err := a.Cache.Get(keyHome, func() ([]byte, error) {
		return renderBytes(c.Request().Context(), a.Doc)
	})
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, body)
}

// handleLesson serves one lesson block for htmx swaps. Plain navigation is
// sent to the lesson's anchor on the full page.
func (a *App) handleLesson(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}
	block, ok := a.Doc.Lesson(id)
	if !ok {
		return echo.ErrNotFound
	}
	if c.Request().Header.Get("HX-Request") != "true" {
		l, _ := a.Doc.Page().LessonByID(id)
		return c.Redirect(http.StatusFound, a.slots.Router.Resolve("/")+"#"+l.Anchor())
	}
	return Render(c, block)
}

func (a *App) handleMarkdown(c echo.Context) error {
	body, err := a.Cache.Get(keyMarkdown, func() ([]byte, error) {
		md, err := ExportMarkdown(c.Request().Context(), a.Doc)
		return []byte(md), err
	})
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", body)
}

func (a *App) handleOGImage(c echo.Context) error {
	body, err := a.Cache.Get(keyOGImage, func() ([]byte, error) {
		return RenderOGImage(a.Doc.Page())
	})
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", body)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"lessons": len(a.Doc.Page().Lessons),
	})
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.Blob(http.StatusOK, "image/svg+xml", faviconSVG())
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n\n")
	b.WriteString("Sitemap: " + fileURL(a.Config.URL, "sitemap.xml") + "\n")
	return c.String(http.StatusOK, b.String())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Doc.Page().Brand))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.log.Error("server error", "err", err, "uri", c.Request().RequestURI)
		_ = RenderStatus(c, code, views.ServerError(a.Doc.Page().Brand))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
