package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/campbuidl/content"
	"github.com/eringen/campbuidl/markdown"
)

var lessonLinkStyle = LinkStyle{Class: "text-blue-500 hover:underline block", Suffix: " →"}

var linkLayoutClass = map[content.LinkLayout]string{
	content.LayoutStack: "space-y-2",
	content.LayoutGrid:  "grid grid-cols-2 gap-4",
}

// LessonRenderer turns one lesson into a self-contained block. Router, when
// set, resolves internal link targets; external links are never rewritten.
type LessonRenderer struct {
	Router Router
}

// Render validates l and returns its block. conn is the connector drawn
// toward the next lesson; the zero Connector draws none.
func (r LessonRenderer) Render(l content.Lesson, conn Connector) (templ.Component, error) {
	if err := content.ValidateLesson(l); err != nil {
		return nil, err
	}
	theme, err := content.ThemeFor(l.Theme)
	if err != nil {
		return nil, err
	}
	links := make([]content.LinkRef, len(l.Links))
	for i, link := range l.Links {
		links[i] = resolveLink(r.Router, link)
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("section", a("id", l.Anchor()), classes("relative"), a("data-lesson", strconv.Itoa(l.ID)), a("data-theme", string(l.Theme)))
		if !conn.IsZero() {
			h.open("div", classes(conn.Class()), a("data-connector", conn.String()), a("data-from", string(conn.From)), a("data-to", conn.Target()))
			h.close("div")
		}

		h.open("div", classes("flex items-center gap-4 mb-6"))
		h.open("div", classes("flex h-12 w-12 items-center justify-center rounded-full", theme.Badge))
		h.element("span", l.Icon, classes("text-2xl"))
		h.close("div")
		h.element("h2", l.Heading(), classes("text-3xl font-bold"))
		h.close("div")

		h.open("div", classes("card border-2 transition-all duration-300", theme.BorderIdle, theme.BorderHover))
		h.open("div", classes("card-header space-y-1"))
		h.open("div", classes("flex items-center space-x-2"))
		h.open("div", classes("h-8 w-8 rounded-full flex items-center justify-center", theme.Badge))
		h.element("span", l.Icon, classes(theme.TextAccent))
		h.close("div")
		h.element("h3", l.CardTitle(), classes("card-title text-2xl transition-colors", "group-hover:"+theme.TextAccent))
		h.close("div")
		if l.Description != "" {
			h.open("p", classes("card-description text-base"))
			h.render(markdown.Inline(l.Description))
			h.close("p")
		}
		h.close("div")

		h.open("div", classes("card-content space-y-6"))
		h.render(Outline(l.Outline))
		if len(links) > 0 {
			h.open("div", classes("mt-4"), a("data-section", "links"))
			h.element("h4", strings.TrimSuffix(l.ResourcesHeading(), ":")+":", classes("font-semibold mb-2"))
			h.open("div", classes(linkLayoutClass[l.Layout()]))
			for _, link := range links {
				h.render(Link(link, lessonLinkStyle))
			}
			h.close("div")
			h.close("div")
		}
		if l.Code != nil {
			h.render(Code(*l.Code, theme))
		}
		h.close("div")
		h.close("div")

		h.close("section")
		return h.err
	}), nil
}

// resolveLink maps internal targets through the router.
func resolveLink(r Router, l content.LinkRef) content.LinkRef {
	if r == nil || l.External {
		return l
	}
	l.URL = r.Resolve(l.URL)
	return l
}
