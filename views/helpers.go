package views

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/campbuidl/content"
)

// CourseJsonLD produces a Schema.org Course block listing every lesson as a
// LearningResource anchored in the page. siteURL is the canonical page URL,
// already built by the caller.
func CourseJsonLD(page content.Page, siteURL string) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Course",
		"name":     page.Title,
		"provider": map[string]string{
			"@type": "Organization",
			"name":  page.Brand,
		},
	}
	if page.Description != "" {
		data["description"] = page.Description
	}
	if siteURL != "" {
		data["url"] = siteURL
	}
	parts := make([]map[string]interface{}, 0, len(page.Lessons))
	for i, l := range page.Lessons {
		part := map[string]interface{}{
			"@type":    "LearningResource",
			"name":     l.Heading(),
			"position": i + 1,
		}
		if l.Description != "" {
			part["description"] = l.Description
		}
		if siteURL != "" {
			part["url"] = siteURL + "#" + l.Anchor()
		}
		parts = append(parts, part)
	}
	data["hasPart"] = parts
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// NotFound renders the 404 page.
func NotFound(brand string) templ.Component {
	return statusPage(brand, "Page not found", "The page you are looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError(brand string) templ.Component {
	return statusPage(brand, "Something went wrong", "Please try again in a moment.")
}

func statusPage(brand, title, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw("<!DOCTYPE html>")
		h.open("html", a("lang", "en"))
		h.open("head")
		h.open("meta", a("charset", "utf-8"))
		h.element("title", title+" · "+brand)
		h.open("link", a("rel", "stylesheet"), a("href", DefaultStylesheet))
		h.close("head")
		h.open("body")
		h.open("main", classes("container mx-auto p-8 max-w-4xl text-center"))
		h.element("h1", title, classes("text-4xl font-bold mb-4"))
		h.element("p", message, classes("text-muted-foreground mb-6"))
		h.element("a", "Back to "+brand, a("href", "/"), classes("text-blue-500 hover:underline"))
		h.close("main")
		h.close("body")
		h.close("html")
		return h.err
	})
}
