// Package preview prints a guide's lessons to the terminal, one card per
// lesson framed in its theme color.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eringen/campbuidl/content"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#a6adc8"})
	labelStyle = lipgloss.NewStyle().Bold(true)
)

// Render returns the preview of page at the given width. Cards narrower than
// 40 columns are widened to 40.
func Render(page content.Page, width int) (string, error) {
	if width < 40 {
		width = 40
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(page.Hero.Title),
		mutedStyle.Render(page.Hero.Tagline),
	)
	blocks := []string{header}
	for _, l := range page.Lessons {
		card, err := lessonCard(l, width)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, card)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n", nil
}

func lessonCard(l content.Lesson, width int) (string, error) {
	theme, err := content.ThemeFor(l.Theme)
	if err != nil {
		return "", err
	}
	accent := lipgloss.Color(theme.Hex)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(accent).Render(l.Heading()))
	b.WriteString("\n")
	if l.Description != "" {
		b.WriteString(mutedStyle.Render(l.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	writeOutline(&b, l.Outline, 0)

	if len(l.Links) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(strings.TrimSuffix(l.ResourcesHeading(), ":") + ":"))
		b.WriteString("\n")
		for _, link := range l.Links {
			fmt.Fprintf(&b, "  → %s %s\n", link.Label, mutedStyle.Render(link.URL))
		}
	}
	if l.Code != nil {
		lines := strings.Count(l.Code.Body, "\n") + 1
		fmt.Fprintf(&b, "\n%s %s\n", labelStyle.Render(l.Code.Heading()+":"), mutedStyle.Render(fmt.Sprintf("%s, %d lines", l.Code.Lang(), lines)))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.TrimRight(b.String(), "\n"))
	return card, nil
}

var bullets = []string{"•", "◦"}

func writeOutline(b *strings.Builder, items []content.OutlineItem, depth int) {
	bullet := bullets[depth%len(bullets)]
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		b.WriteString(indent + bullet + " ")
		if item.Label != "" {
			b.WriteString(labelStyle.Render(item.Label))
			if item.Text != "" {
				b.WriteString(" ")
			}
		}
		b.WriteString(item.Text)
		b.WriteString("\n")
		writeOutline(b, item.Children, depth+1)
	}
}
