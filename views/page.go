package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/campbuidl/content"
)

// Slots are the collaborators the page layout composes but does not own.
type Slots struct {
	Connect templ.Component // wallet connect control mounted in the nav bar
	Router  Router
}

func (s Slots) check() error {
	if s.Connect == nil {
		return fmt.Errorf("%w: connect control", ErrSlotMissing)
	}
	if s.Router == nil {
		return fmt.Errorf("%w: router", ErrSlotMissing)
	}
	return nil
}

// Document is a fully composed guide page. All validation happens in
// Compose; rendering a Document only fails on write errors.
type Document struct {
	page    content.Page
	meta    PageMeta
	slots   Slots
	lessons []templ.Component
	index   map[int]int
	jsonLD  string
}

// Compose validates page and the slots and lays out nav, hero, lessons and
// footer. Lesson connectors are derived from adjacent theme colors.
func Compose(page content.Page, slots Slots, meta PageMeta) (*Document, error) {
	if err := slots.check(); err != nil {
		return nil, err
	}
	if err := content.Validate(page); err != nil {
		return nil, err
	}
	conns, err := Connectors(page.Lessons)
	if err != nil {
		return nil, err
	}

	if meta.Title == "" {
		meta.Title = page.Title
	}
	if meta.Description == "" {
		meta.Description = page.Description
	}
	if meta.Stylesheet == "" {
		meta.Stylesheet = DefaultStylesheet
	}

	d := &Document{
		page:    page,
		meta:    meta,
		slots:   slots,
		lessons: make([]templ.Component, len(page.Lessons)),
		index:   make(map[int]int, len(page.Lessons)),
		jsonLD:  CourseJsonLD(page, meta.URL),
	}
	r := LessonRenderer{Router: slots.Router}
	for i, l := range page.Lessons {
		c, err := r.Render(l, conns[i])
		if err != nil {
			return nil, err
		}
		d.lessons[i] = c
		d.index[l.ID] = i
	}
	return d, nil
}

// Page returns the composed content.
func (d *Document) Page() content.Page { return d.page }

// Meta returns the resolved head metadata.
func (d *Document) Meta() PageMeta { return d.meta }

// Lesson returns the block of a single lesson, as rendered in the page.
func (d *Document) Lesson(id int) (templ.Component, bool) {
	i, ok := d.index[id]
	if !ok {
		return nil, false
	}
	return d.lessons[i], true
}

// Render writes the complete HTML document.
func (d *Document) Render(ctx context.Context, w io.Writer) error {
	h := newWriter(ctx, w)
	h.raw("<!DOCTYPE html>")
	h.open("html", a("lang", "en"))
	writeHead(h, d.meta, d.jsonLD)
	h.open("body")
	h.render(d.Body())
	h.close("body")
	h.close("html")
	return h.err
}

// Body renders everything inside <body>: nav, hero, lessons and footer.
func (d *Document) Body() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("div", classes("min-h-screen bg-gradient-to-b from-background to-secondary/20"))
		d.writeNav(h)
		h.open("main", classes("container mx-auto p-8 max-w-4xl"))
		d.writeHero(h)
		h.open("div", classes("space-y-12"), a("data-section", "lessons"))
		for _, l := range d.lessons {
			h.render(l)
		}
		h.close("div")
		h.close("main")
		d.writeFooter(h)
		h.close("div")
		return h.err
	})
}

func writeHead(h *htmlWriter, meta PageMeta, jsonLD string) {
	h.open("head")
	h.open("meta", a("charset", "utf-8"))
	h.open("meta", a("name", "viewport"), a("content", "width=device-width, initial-scale=1"))
	h.element("title", meta.Title)
	if meta.Description != "" {
		h.open("meta", a("name", "description"), a("content", meta.Description))
	}
	h.open("meta", a("property", "og:type"), a("content", "website"))
	h.open("meta", a("property", "og:title"), a("content", meta.Title))
	if meta.Description != "" {
		h.open("meta", a("property", "og:description"), a("content", meta.Description))
	}
	if meta.URL != "" {
		h.open("link", a("rel", "canonical"), a("href", string(templ.URL(meta.URL))))
		h.open("meta", a("property", "og:url"), a("content", meta.URL))
	}
	if meta.Image != "" {
		h.open("meta", a("property", "og:image"), a("content", meta.Image))
	}
	h.open("link", a("href", "/favicon.svg"), a("rel", "icon"))
	h.open("link", a("rel", "stylesheet"), a("href", string(templ.URL(meta.Stylesheet))))
	if jsonLD != "" {
		h.open("script", a("type", "application/ld+json"))
		h.raw(jsonLD)
		h.close("script")
	}
	h.close("head")
}

func (d *Document) writeNav(h *htmlWriter) {
	h.open("nav", classes("sticky top-0 z-50 w-full border-b bg-background/95 backdrop-blur supports-[backdrop-filter]:bg-background/60"))
	h.open("div", classes("container flex h-16 items-center justify-between"))

	h.open("div", classes("flex items-center gap-6"))
	h.open("a", a("href", string(templ.URL(d.slots.Router.Resolve("/")))), classes("flex items-center space-x-2"))
	h.element("h1", d.page.Brand, classes("text-2xl font-bold bg-gradient-to-r from-blue-500 to-purple-500 bg-clip-text text-transparent"))
	h.close("a")
	h.close("div")

	if len(d.page.Nav) > 0 {
		h.open("div", classes("hidden md:flex items-center space-x-6"), a("data-section", "nav"))
		for _, n := range d.page.Nav {
			h.element("a", n.Label, a("href", string(templ.URL(d.slots.Router.Resolve(n.Target)))), classes("btn btn-ghost"))
		}
		h.close("div")
	}

	h.open("div", a("data-slot", "connect"))
	h.render(d.slots.Connect)
	h.close("div")

	h.close("div")
	h.close("nav")
}

func (d *Document) writeHero(h *htmlWriter) {
	h.open("div", classes("text-center mb-16 py-12 px-4"), a("data-section", "hero"))
	h.element("h1", d.page.Hero.Title, classes("text-5xl font-extrabold tracking-tight lg:text-6xl mb-6 bg-gradient-to-r from-blue-500 to-purple-500 bg-clip-text text-transparent animate-fade-in"))
	if d.page.Hero.Tagline != "" {
		h.element("p", d.page.Hero.Tagline, classes("text-xl text-muted-foreground max-w-2xl mx-auto"))
	}
	h.close("div")
}

var footerLinkStyle = LinkStyle{Class: "text-sm text-muted-foreground hover:text-foreground transition-colors"}

func (d *Document) writeFooter(h *htmlWriter) {
	h.open("footer", classes("border-t mt-24 bg-background/50 backdrop-blur-sm"))
	h.open("div", classes("container flex flex-col items-center justify-between gap-4 py-10 md:h-24 md:flex-row md:py-0"))
	if d.page.FooterNote != "" {
		h.element("p", d.page.FooterNote, classes("text-center text-sm leading-loose text-muted-foreground md:text-left"))
	}
	if len(d.page.FooterLinks) > 0 {
		h.open("div", classes("flex items-center space-x-6"), a("data-section", "footer-links"))
		for _, l := range d.page.FooterLinks {
			h.render(Link(resolveLink(d.slots.Router, l), footerLinkStyle))
		}
		h.close("div")
	}
	h.close("div")
	h.close("footer")
}

// ConnectMount renders the empty element the host's wallet widget mounts
// into.
func ConnectMount(id string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("div", a("id", id), a("data-connect-mount", ""))
		h.close("div")
		return h.err
	})
}
