package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrContentModel matches every content model violation via errors.Is.
var ErrContentModel = errors.New("content model violation")

// Violation codes.
const (
	CodeThemeUnmapped   = "THEME_UNMAPPED"
	CodeOutlineTooDeep  = "OUTLINE_TOO_DEEP"
	CodeOutlineEmpty    = "OUTLINE_ITEM_EMPTY"
	CodeCodeBodyEmpty   = "CODE_BODY_EMPTY"
	CodeCodeLanguage    = "CODE_LANGUAGE_UNKNOWN"
	CodeLinkURLEmpty    = "LINK_URL_EMPTY"
	CodeLinkURLUnsafe   = "LINK_URL_UNSAFE"
	CodeLinkLabelEmpty  = "LINK_LABEL_EMPTY"
	CodeLinkLayout      = "LINK_LAYOUT_UNKNOWN"
	CodeLessonOrder     = "LESSON_ID_ORDER"
	CodeLessonTitle     = "LESSON_TITLE_EMPTY"
	CodeNavTargetEmpty  = "NAV_TARGET_EMPTY"
	CodePageFieldEmpty  = "PAGE_FIELD_EMPTY"
	CodeContentDecode   = "CONTENT_DECODE"
	CodeContentNotFound = "CONTENT_NOT_FOUND"
)

// Violation describes one problem found in the content set.
type Violation struct {
	Code    string // categorization, one of the Code* constants
	Lesson  int    // lesson id, 0 when the problem is not lesson-scoped
	Path    string // location inside the page, e.g. lessons[1].outline[0]
	Message string
}

// Error returns the formatted violation.
func (v *Violation) Error() string {
	var b strings.Builder
	b.WriteString(v.Message)
	if v.Path != "" {
		fmt.Fprintf(&b, " (at %s)", v.Path)
	}
	return b.String()
}

// Unwrap makes every violation match ErrContentModel.
func (v *Violation) Unwrap() error {
	return ErrContentModel
}

// Violations flattens err into the violations it carries. Errors joined with
// errors.Join are walked recursively.
func Violations(err error) []*Violation {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*Violation
		for _, e := range joined.Unwrap() {
			out = append(out, Violations(e)...)
		}
		return out
	}
	if v, ok := err.(*Violation); ok {
		return []*Violation{v}
	}
	return Violations(errors.Unwrap(err))
}

// HasCode reports whether err carries a violation with the given code.
func HasCode(err error, code string) bool {
	for _, v := range Violations(err) {
		if v.Code == code {
			return true
		}
	}
	return false
}
