package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/eringen/campbuidl/content"
	"github.com/eringen/campbuidl/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init DIR",
	Short: "Create a new guide project",
	Long: `Init creates DIR with a site.toml, an editable content.yaml holding the
built-in guide, and a starter stylesheet.

Examples:
  campbuidl init my-guide
  campbuidl init my-guide --url https://guide.example.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd, args[0])
	},
}

var initURL string

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initURL, "url", "http://localhost:3000", "canonical site URL")
}

func runInit(cmd *cobra.Command, dir string) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	data := scaffold.Data{
		ProjectName: filepath.Base(dir),
		SiteName:    toTitle(filepath.Base(dir)),
		SiteURL:     initURL,
	}

	fmt.Fprintf(out, "Creating new guide: %s\n\n", dir)

	root := "templates"
	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		outPath := strings.TrimSuffix(filepath.Join(dir, relPath), ".tmpl")
		if filepath.Base(outPath) == "dotenv" {
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		}
		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		raw, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(raw))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}
		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	contentPath := filepath.Join(dir, "content.yaml")
	if err := writeContent(contentPath, data.SiteName); err != nil {
		return err
	}
	fmt.Fprintf(out, "  created %s\n", contentPath)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Next steps:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  cd %s\n", dir)
	fmt.Fprintln(out, "  campbuidl validate --config site.toml")
	fmt.Fprintln(out, "  campbuidl serve --config site.toml")
	return nil
}

// writeContent seeds the project with the built-in guide under its own brand.
func writeContent(path, brand string) error {
	page := content.Default()
	page.Brand = brand
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return content.EncodeYAML(f, page)
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-guide" -> "My Guide", "guide" -> "Guide"
func toTitle(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
