package campbuidl

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"

	"github.com/eringen/campbuidl/content"
	"github.com/eringen/campbuidl/views"
)

// Export formats accepted by Export.
const (
	FormatHTML     = "html"
	FormatMarkdown = "md"
	FormatSQLite   = "sqlite"
)

var (
	// Empty domain keeps relative links relative.
	mdConverter = md.NewConverter("", true, nil)

	reExcessBlanks = regexp.MustCompile(`\n{3,}`)
)

// RenderHTML renders the full document.
func RenderHTML(ctx context.Context, doc *views.Document) ([]byte, error) {
	return renderBytes(ctx, doc)
}

// ExportMarkdown converts the guide to Markdown. Only the main column is
// kept: navigation, the connect slot and the footer carry no lesson content.
func ExportMarkdown(ctx context.Context, doc *views.Document) (string, error) {
	body, err := renderBytes(ctx, doc.Body())
	if err != nil {
		return "", err
	}
	return ToMarkdown(body)
}

// ToMarkdown converts a rendered fragment to Markdown.
func ToMarkdown(html []byte) (string, error) {
	d, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("campbuidl: parse html: %w", err)
	}
	sel := d.Find("main")
	if sel.Length() == 0 {
		sel = d.Find("body")
	}
	sel.Find("nav, footer, script, style, [data-connector], [data-slot]").Remove()
	contentHTML, err := sel.Html()
	if err != nil {
		return "", err
	}
	out, err := mdConverter.ConvertString(contentHTML)
	if err != nil {
		return "", fmt.Errorf("campbuidl: convert markdown: %w", err)
	}
	out = reExcessBlanks.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out) + "\n", nil
}

// Export writes the guide to out in the given format. html and md render
// the composed document; sqlite stores the page content itself.
func Export(ctx context.Context, doc *views.Document, format, out string) error {
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("campbuidl: export: %w", err)
	}
	switch format {
	case FormatHTML:
		b, err := RenderHTML(ctx, doc)
		if err != nil {
			return err
		}
		return os.WriteFile(out, b, 0o644)
	case FormatMarkdown:
		s, err := ExportMarkdown(ctx, doc)
		if err != nil {
			return err
		}
		return os.WriteFile(out, []byte(s), 0o644)
	case FormatSQLite:
		store, err := content.OpenSQLite(out)
		if err != nil {
			return fmt.Errorf("campbuidl: export: %w", err)
		}
		defer store.Close()
		return store.Save(ctx, doc.Page())
	default:
		return fmt.Errorf("campbuidl: unknown export format %q (want html, md or sqlite)", format)
	}
}
