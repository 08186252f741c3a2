package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/campbuidl"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate content and audit the rendered page",
	Long: `Validate loads the content, checks every lesson against the content model,
composes the page and audits the rendered HTML for unsafe new-tab links,
misplaced connectors and duplicate ids.

Exit codes:
  0 - Content is valid and the page passed the audit
  1 - Violations or audit findings

Examples:
  campbuidl validate
  campbuidl validate --content guide.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadSiteConfig(cmd)
	if err != nil {
		return err
	}
	app, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	html, err := campbuidl.RenderHTML(ctx, app.Doc)
	if err != nil {
		return err
	}
	findings, err := campbuidl.AuditHTML(html)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(findings) > 0 {
		for _, f := range findings {
			fmt.Fprintf(out, "  ✗ %s\n", f)
		}
		return fmt.Errorf("rendered page has %d audit finding(s)", len(findings))
	}

	page := app.Doc.Page()
	fmt.Fprintf(out, "✓ %d lessons valid\n", len(page.Lessons))
	if verbose {
		for _, l := range page.Lessons {
			fmt.Fprintf(out, "  %s (%s)\n", l.Heading(), l.Theme)
		}
	}
	return nil
}
