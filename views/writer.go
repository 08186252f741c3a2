package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

type attr struct {
	name, value string
}

func a(name, value string) attr { return attr{name: name, value: value} }

// classes joins the non-empty class names.
func classes(names ...string) attr {
	kept := names[:0:0]
	for _, n := range names {
		if n != "" {
			kept = append(kept, n)
		}
	}
	return attr{name: "class", value: strings.Join(kept, " ")}
}

// htmlWriter streams markup and keeps the first write error, so components
// can emit a whole block and check once.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) open(tag string, attrs ...attr) {
	h.raw("<", tag)
	for _, at := range attrs {
		if at.name == "" {
			continue
		}
		if at.value == "" && at.name != "class" {
			h.raw(" ", at.name)
			continue
		}
		h.raw(" ", at.name, `="`, templ.EscapeString(at.value), `"`)
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</", tag, ">")
}

// element writes <tag attrs>text</tag>.
func (h *htmlWriter) element(tag, text string, attrs ...attr) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}
