package campbuidl

import (
	"encoding/xml"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority,omitempty"`
}

// sitemapURLs lists the page and every lesson route.
func (a *App) sitemapURLs() []sitemapURL {
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: BuildURL(base), Priority: "1.0"},
	}
	for _, l := range a.Doc.Page().Lessons {
		urls = append(urls, sitemapURL{
			Loc:      BuildURL(base, "lessons", strconv.Itoa(l.ID)),
			Priority: "0.8",
		})
	}
	return urls
}

func (a *App) renderSitemap(c echo.Context) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  a.sitemapURLs(),
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
