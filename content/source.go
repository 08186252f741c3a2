package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source produces a page from some content store.
type Source interface {
	Load(ctx context.Context) (Page, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Page, error)

// Load calls f.
func (f SourceFunc) Load(ctx context.Context) (Page, error) { return f(ctx) }

// Builtin serves the guide compiled into the binary.
func Builtin() Source {
	return SourceFunc(func(context.Context) (Page, error) {
		return Default(), nil
	})
}

// FileSource picks a loader by file extension: .yaml and .yml are decoded as
// YAML, .db, .sqlite and .sqlite3 are opened as SQLite content databases.
func FileSource(path string) Source {
	return SourceFunc(func(ctx context.Context) (Page, error) {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return Page{}, &Violation{Code: CodeContentNotFound, Path: path, Message: "content file not found"}
			}
			return Page{}, err
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			f, err := os.Open(path)
			if err != nil {
				return Page{}, err
			}
			defer f.Close()
			return DecodeYAML(f)
		case ".db", ".sqlite", ".sqlite3":
			s, err := OpenSQLite(path)
			if err != nil {
				return Page{}, err
			}
			defer s.Close()
			return s.Load(ctx)
		default:
			return Page{}, fmt.Errorf("content: unsupported content file %q", path)
		}
	})
}

// Load reads a page from src and validates it. The page is returned only when
// it has no violations.
func Load(ctx context.Context, src Source) (Page, error) {
	p, err := src.Load(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("content: load: %w", err)
	}
	if err := Validate(p); err != nil {
		return Page{}, err
	}
	return p, nil
}
