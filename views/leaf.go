package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/campbuidl/content"
	"github.com/eringen/campbuidl/markdown"
)

// LinkStyle is the presentation of a rendered link.
type LinkStyle struct {
	Class  string
	Suffix string // appended to the label, e.g. " →"
}

// externalAttrs returns the new-tab directives. target and rel are only ever
// emitted together.
func externalAttrs(l content.LinkRef) []attr {
	if !l.External {
		return nil
	}
	return []attr{a("target", "_blank"), a("rel", markdown.ExternalRel)}
}

// Link renders a single link.
func Link(l content.LinkRef, style LinkStyle) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		attrs := []attr{a("href", string(templ.URL(l.URL)))}
		if style.Class != "" {
			attrs = append(attrs, classes(style.Class))
		}
		attrs = append(attrs, externalAttrs(l)...)
		h.element("a", l.Label+style.Suffix, attrs...)
		return h.err
	})
}

// Code renders a code panel. The body is escaped and otherwise written
// exactly as authored.
func Code(sample content.CodeSample, theme content.Theme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("div", classes("bg-black rounded-lg p-6 space-y-4"), a("data-section", "code"))
		h.element("h3", sample.Heading(), classes("text-lg font-semibold", theme.TextAccent))
		h.open("pre", classes("bg-black p-4 rounded-lg overflow-x-auto border", theme.CodeBorder))
		h.open("code", classes("language-"+string(sample.Lang()), "text-sm", theme.CodeText))
		h.text(sample.Body)
		h.close("code")
		h.close("pre")
		h.close("div")
		return h.err
	})
}
