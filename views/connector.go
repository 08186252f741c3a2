package views

import (
	"github.com/eringen/campbuidl/content"
)

// FadeTarget names the end of the connector drawn after the last lesson.
const FadeTarget = "fade"

const connectorBase = "absolute left-0 -ml-4 hidden h-full w-0.5 bg-gradient-to-b md:block"

// Connector is the vertical gradient drawn beside a lesson toward the next
// one. It depends only on the two adjacent theme colors.
type Connector struct {
	From content.ThemeColor
	To   content.ThemeColor // empty for the terminal fade
	grad string
}

// ConnectorFor returns the gradient between two consecutive lessons.
func ConnectorFor(from, to content.ThemeColor) (Connector, error) {
	ft, err := content.ThemeFor(from)
	if err != nil {
		return Connector{}, err
	}
	tt, err := content.ThemeFor(to)
	if err != nil {
		return Connector{}, err
	}
	return Connector{From: from, To: to, grad: ft.GradientFrom + " " + tt.GradientVia + " to-transparent"}, nil
}

// FadeConnector returns the tapering gradient drawn after the last lesson.
func FadeConnector(from content.ThemeColor) (Connector, error) {
	ft, err := content.ThemeFor(from)
	if err != nil {
		return Connector{}, err
	}
	return Connector{From: from, grad: ft.GradientFrom + " to-transparent"}, nil
}

// Connectors returns one connector per lesson: lesson i links to lesson i+1
// and the last lesson fades out.
func Connectors(lessons []content.Lesson) ([]Connector, error) {
	out := make([]Connector, len(lessons))
	for i, l := range lessons {
		var (
			c   Connector
			err error
		)
		if i+1 < len(lessons) {
			c, err = ConnectorFor(l.Theme, lessons[i+1].Theme)
		} else {
			c, err = FadeConnector(l.Theme)
		}
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// IsZero reports whether no connector should be drawn.
func (c Connector) IsZero() bool { return c.From == "" }

// Terminal reports whether c is the fade after the last lesson.
func (c Connector) Terminal() bool { return !c.IsZero() && c.To == "" }

// Class returns the full class list of the connector element.
func (c Connector) Class() string {
	if c.IsZero() {
		return ""
	}
	return connectorBase + " " + c.grad
}

// Target returns the color the connector runs into, or FadeTarget.
func (c Connector) Target() string {
	if c.Terminal() {
		return FadeTarget
	}
	return string(c.To)
}

// String renders c as from->to for logs and test output.
func (c Connector) String() string {
	if c.IsZero() {
		return "none"
	}
	return string(c.From) + "->" + c.Target()
}
