// Package content defines the lesson content model a guide page is rendered
// from, the closed theme table that styles it, and the loaders that produce
// it from the built-in guide, YAML files or SQLite databases.
//
// Every value is constructed once at startup and never mutated afterwards.
package content

import "strconv"

// MaxOutlineDepth is the deepest outline nesting the lesson template renders.
// Top-level items are depth 1.
const MaxOutlineDepth = 2

// Language identifies the source language of a code sample. Renderers emit it
// as a language-* class for client-side highlighters.
type Language string

const (
	LangText       Language = "text"
	LangTSX        Language = "tsx"
	LangJSX        Language = "jsx"
	LangTypeScript Language = "typescript"
	LangJavaScript Language = "javascript"
	LangBash       Language = "bash"
	LangSolidity   Language = "solidity"
)

var knownLanguages = map[Language]bool{
	LangText: true, LangTSX: true, LangJSX: true, LangTypeScript: true,
	LangJavaScript: true, LangBash: true, LangSolidity: true,
}

// Valid reports whether l is one of the known languages.
func (l Language) Valid() bool { return knownLanguages[l] }

// LinkLayout controls how a lesson's links section arranges its entries.
type LinkLayout string

const (
	LayoutStack LinkLayout = "stack"
	LayoutGrid  LinkLayout = "grid"
)

// Valid reports whether l is a known layout. The empty value means stack.
func (l LinkLayout) Valid() bool {
	return l == "" || l == LayoutStack || l == LayoutGrid
}

// LinkRef points at a resource. External links open in a new browsing context
// and must never leak the opener or referrer.
type LinkRef struct {
	Label    string `yaml:"label"`
	URL      string `yaml:"url"`
	External bool   `yaml:"external,omitempty"`
}

// CodeSample is a literal snippet shown in a lesson's code panel. Body is
// rendered byte-for-byte.
type CodeSample struct {
	Title    string   `yaml:"title,omitempty"`
	Language Language `yaml:"language,omitempty"`
	Body     string   `yaml:"body"`
}

// DefaultCodeTitle heads a code panel whose sample has no title.
const DefaultCodeTitle = "Code Example"

// Heading returns the panel heading for the sample.
func (c CodeSample) Heading() string {
	if c.Title == "" {
		return DefaultCodeTitle
	}
	return c.Title
}

// Lang returns the sample language, text when unset.
func (c CodeSample) Lang() Language {
	if c.Language == "" {
		return LangText
	}
	return c.Language
}

// OutlineItem is one bullet of a lesson outline. Label is an optional bold
// lead-in rendered before Text.
type OutlineItem struct {
	Label    string        `yaml:"label,omitempty"`
	Text     string        `yaml:"text,omitempty"`
	Children []OutlineItem `yaml:"children,omitempty"`
}

// DefaultLinksHeading heads a links section when the lesson names none.
const DefaultLinksHeading = "Useful Resources"

// Lesson is one themed block of the guide.
type Lesson struct {
	ID           int           `yaml:"id"`
	Title        string        `yaml:"title"`
	Topic        string        `yaml:"topic,omitempty"`
	Description  string        `yaml:"description,omitempty"`
	Theme        ThemeColor    `yaml:"theme"`
	Icon         string        `yaml:"icon,omitempty"`
	Outline      []OutlineItem `yaml:"outline,omitempty"`
	LinksHeading string        `yaml:"links_heading,omitempty"`
	LinkLayout   LinkLayout    `yaml:"link_layout,omitempty"`
	Links        []LinkRef     `yaml:"links,omitempty"`
	Code         *CodeSample   `yaml:"code,omitempty"`
}

// CardTitle is the title shown inside the lesson card.
func (l Lesson) CardTitle() string {
	if l.Topic == "" {
		return l.Title
	}
	return l.Topic
}

// Heading is the numbered header above the lesson card.
func (l Lesson) Heading() string {
	return "Lesson " + strconv.Itoa(l.ID) + ": " + l.Title
}

// Anchor is the fragment identifier of the lesson section.
func (l Lesson) Anchor() string {
	return "lesson-" + strconv.Itoa(l.ID) + "-" + Slugify(l.Title)
}

// ResourcesHeading is the heading of the links section.
func (l Lesson) ResourcesHeading() string {
	if l.LinksHeading == "" {
		return DefaultLinksHeading
	}
	return l.LinksHeading
}

// Layout returns the links layout, stack when unset.
func (l Lesson) Layout() LinkLayout {
	if l.LinkLayout == "" {
		return LayoutStack
	}
	return l.LinkLayout
}

// NavLink is a navigation bar entry. Target is resolved by the router.
type NavLink struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Hero is the banner above the lessons.
type Hero struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline,omitempty"`
}

// Page is the full content set of the guide.
type Page struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description,omitempty"`
	Brand       string    `yaml:"brand"`
	Hero        Hero      `yaml:"hero"`
	Nav         []NavLink `yaml:"nav,omitempty"`
	Lessons     []Lesson  `yaml:"lessons"`
	FooterNote  string    `yaml:"footer_note,omitempty"`
	FooterLinks []LinkRef `yaml:"footer_links,omitempty"`
}

// LessonByID returns the lesson with the given id.
func (p Page) LessonByID(id int) (Lesson, bool) {
	for _, l := range p.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// ThemeColors returns the lesson colors in display order.
func (p Page) ThemeColors() []ThemeColor {
	colors := make([]ThemeColor, len(p.Lessons))
	for i, l := range p.Lessons {
		colors[i] = l.Theme
	}
	return colors
}
