package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eringen/campbuidl/markdown"
)

// Validate checks the whole page and returns every violation found, joined
// with errors.Join. A nil result means the page can be rendered.
func Validate(p Page) error {
	var errs []error
	add := func(v *Violation) { errs = append(errs, v) }

	if strings.TrimSpace(p.Title) == "" {
		add(&Violation{Code: CodePageFieldEmpty, Path: "title", Message: "page title is empty"})
	}
	if strings.TrimSpace(p.Brand) == "" {
		add(&Violation{Code: CodePageFieldEmpty, Path: "brand", Message: "brand is empty"})
	}
	if strings.TrimSpace(p.Hero.Title) == "" {
		add(&Violation{Code: CodePageFieldEmpty, Path: "hero.title", Message: "hero title is empty"})
	}
	for i, n := range p.Nav {
		path := fmt.Sprintf("nav[%d]", i)
		if strings.TrimSpace(n.Label) == "" {
			add(&Violation{Code: CodeLinkLabelEmpty, Path: path, Message: "nav label is empty"})
		}
		if strings.TrimSpace(n.Target) == "" {
			add(&Violation{Code: CodeNavTargetEmpty, Path: path, Message: "nav target is empty"})
		} else if markdown.SafeURL(n.Target) == "" {
			add(&Violation{
				Code:    CodeLinkURLUnsafe,
				Path:    path + ".target",
				Message: fmt.Sprintf("nav target %q uses an unsupported scheme", n.Target),
			})
		}
	}

	prevID := 0
	for i, l := range p.Lessons {
		if i > 0 && l.ID <= prevID {
			add(&Violation{
				Code:    CodeLessonOrder,
				Lesson:  l.ID,
				Path:    fmt.Sprintf("lessons[%d].id", i),
				Message: fmt.Sprintf("lesson id %d does not follow %d", l.ID, prevID),
			})
		}
		prevID = l.ID
		errs = append(errs, lessonViolations(l, fmt.Sprintf("lessons[%d]", i))...)
	}

	for i, link := range p.FooterLinks {
		errs = append(errs, linkViolations(link, 0, fmt.Sprintf("footer_links[%d]", i))...)
	}
	return errors.Join(errs...)
}

// ValidateLesson checks a single lesson in isolation.
func ValidateLesson(l Lesson) error {
	return errors.Join(lessonViolations(l, fmt.Sprintf("lesson %d", l.ID))...)
}

func lessonViolations(l Lesson, path string) []error {
	var errs []error
	if l.ID <= 0 {
		errs = append(errs, &Violation{Code: CodeLessonOrder, Lesson: l.ID, Path: path + ".id", Message: "lesson id must be positive"})
	}
	if strings.TrimSpace(l.Title) == "" {
		errs = append(errs, &Violation{Code: CodeLessonTitle, Lesson: l.ID, Path: path + ".title", Message: "lesson title is empty"})
	}
	if _, err := ThemeFor(l.Theme); err != nil {
		errs = append(errs, &Violation{
			Code:    CodeThemeUnmapped,
			Lesson:  l.ID,
			Path:    path + ".theme",
			Message: fmt.Sprintf("theme color %q has no mapping", string(l.Theme)),
		})
	}
	errs = append(errs, outlineViolations(l.Outline, l.ID, path+".outline", 1)...)
	if !l.LinkLayout.Valid() {
		errs = append(errs, &Violation{
			Code:    CodeLinkLayout,
			Lesson:  l.ID,
			Path:    path + ".link_layout",
			Message: fmt.Sprintf("link layout %q is not stack or grid", string(l.LinkLayout)),
		})
	}
	for i, link := range l.Links {
		errs = append(errs, linkViolations(link, l.ID, fmt.Sprintf("%s.links[%d]", path, i))...)
	}
	if l.Code != nil {
		if l.Code.Body == "" {
			errs = append(errs, &Violation{Code: CodeCodeBodyEmpty, Lesson: l.ID, Path: path + ".code.body", Message: "code sample body is empty"})
		}
		if !l.Code.Lang().Valid() {
			errs = append(errs, &Violation{
				Code:    CodeCodeLanguage,
				Lesson:  l.ID,
				Path:    path + ".code.language",
				Message: fmt.Sprintf("code language %q is not supported", string(l.Code.Language)),
			})
		}
	}
	return errs
}

func outlineViolations(items []OutlineItem, lesson int, path string, depth int) []error {
	var errs []error
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		if depth > MaxOutlineDepth {
			errs = append(errs, &Violation{
				Code:    CodeOutlineTooDeep,
				Lesson:  lesson,
				Path:    itemPath,
				Message: fmt.Sprintf("outline nests %d levels, at most %d are rendered", depth, MaxOutlineDepth),
			})
			continue
		}
		if strings.TrimSpace(item.Label) == "" && strings.TrimSpace(item.Text) == "" {
			errs = append(errs, &Violation{Code: CodeOutlineEmpty, Lesson: lesson, Path: itemPath, Message: "outline item has no label or text"})
		}
		errs = append(errs, outlineViolations(item.Children, lesson, itemPath+".children", depth+1)...)
	}
	return errs
}

func linkViolations(link LinkRef, lesson int, path string) []error {
	var errs []error
	if strings.TrimSpace(link.URL) == "" {
		errs = append(errs, &Violation{Code: CodeLinkURLEmpty, Lesson: lesson, Path: path + ".url", Message: "link url is empty"})
	} else if markdown.SafeURL(link.URL) == "" {
		// Rendered hrefs pass through the same allow-list.
		errs = append(errs, &Violation{
			Code:    CodeLinkURLUnsafe,
			Lesson:  lesson,
			Path:    path + ".url",
			Message: fmt.Sprintf("link url %q uses an unsupported scheme", link.URL),
		})
	}
	if strings.TrimSpace(link.Label) == "" {
		errs = append(errs, &Violation{Code: CodeLinkLabelEmpty, Lesson: lesson, Path: path + ".label", Message: "link label is empty"})
	}
	return errs
}
