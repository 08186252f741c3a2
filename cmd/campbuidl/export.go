package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/campbuidl"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the guide as HTML, Markdown or a SQLite content file",
	Long: `Export writes a static copy of the guide.

Formats:
  html   - the full rendered page
  md     - the lessons as Markdown
  sqlite - the content itself, loadable with --content

Examples:
  campbuidl export --format html --out dist/index.html
  campbuidl export --content guide.yaml --format sqlite --out guide.db`,
	RunE: runExport,
}

var (
	exportFormat string
	exportOut    string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", campbuidl.FormatHTML, "output format (html, md, sqlite)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path")
	_ = exportCmd.MarkFlagRequired("out")
	_ = exportCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{campbuidl.FormatHTML, campbuidl.FormatMarkdown, campbuidl.FormatSQLite}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runExport(cmd *cobra.Command, _ []string) error {
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

	if err := campbuidl.Export(ctx, app.Doc, exportFormat, exportOut); err != nil {
		return err
	}
	app.Logger().Info("exported guide", "format", exportFormat, "out", exportOut)
	fmt.Fprintf(cmd.OutOrStdout(), "✓ wrote %s (%s)\n", exportOut, exportFormat)
	return nil
}
