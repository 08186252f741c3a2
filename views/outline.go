package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/campbuidl/content"
	"github.com/eringen/campbuidl/markdown"
)

var outlineListClass = map[int]string{
	1: "list-disc pl-6 space-y-3",
	2: "list-circle pl-6 mt-2 space-y-2",
}

// Outline renders items as nested lists mirroring their structure.
func Outline(items []content.OutlineItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := checkOutlineDepth(items, 1); err != nil {
			return err
		}
		h := newWriter(ctx, w)
		writeOutline(h, items, 1)
		return h.err
	})
}

// checkOutlineDepth fails when some level has no list template.
func checkOutlineDepth(items []content.OutlineItem, depth int) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := outlineListClass[depth]; !ok {
		return &content.Violation{
			Code:    content.CodeOutlineTooDeep,
			Message: fmt.Sprintf("outline depth %d has no list template", depth),
		}
	}
	for _, item := range items {
		if err := checkOutlineDepth(item.Children, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func writeOutline(h *htmlWriter, items []content.OutlineItem, depth int) {
	if len(items) == 0 {
		return
	}
	class := outlineListClass[depth]
	h.open("ul", classes(class), a("data-depth", fmt.Sprint(depth)))
	for _, item := range items {
		h.open("li")
		if item.Label != "" {
			h.element("strong", item.Label)
			if item.Text != "" {
				h.raw(" ")
			}
		}
		if item.Text != "" {
			h.raw(markdown.FormatInline(item.Text))
		}
		writeOutline(h, item.Children, depth+1)
		h.close("li")
	}
	h.close("ul")
}
