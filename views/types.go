package views

import (
	"errors"
	"strings"
)

// ErrSlotMissing is returned when a collaborator the page layout requires,
// the connect control or the router, was not supplied.
var ErrSlotMissing = errors.New("views: required slot is missing")

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string // defaults to the page title
	Description string // defaults to the page description
	URL         string // canonical + og:url
	Image       string // og:image
	Stylesheet  string // defaults to DefaultStylesheet
}

// DefaultStylesheet is where the host serves the compiled utility classes.
const DefaultStylesheet = "/public/app.css"

// Router resolves navigation targets to hrefs. Targets are opaque to the
// views; only the router knows how they map onto the host's routes.
type Router interface {
	Resolve(target string) string
}

// RouterFunc adapts a function to Router.
type RouterFunc func(target string) string

// Resolve calls f.
func (f RouterFunc) Resolve(target string) string { return f(target) }

// PathRouter mounts root-relative targets under Base. Absolute URLs and
// fragments pass through unchanged.
type PathRouter struct {
	Base string
}

// Resolve prefixes root-relative targets with the base path.
func (r PathRouter) Resolve(target string) string {
	base := strings.TrimRight(r.Base, "/")
	if base == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return target
	}
	return base + target
}
