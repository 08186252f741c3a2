package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/campbuidl"
	"github.com/eringen/campbuidl/content"
	"github.com/eringen/campbuidl/internal/logger"
)

var (
	// Global flags
	cfgFile     string
	contentPath string
	logMode     string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "campbuidl",
	Short: "Serve and export a tiered tutorial guide",
	Long: `campbuidl renders a numbered series of themed lessons into a single page.

Lessons come from a YAML or SQLite content file, or from the built-in
Web3 guide when no content file is given. Every lesson is validated before
anything is served or exported.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "site config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "content file (.yaml or .db); built-in guide when empty")
	rootCmd.PersistentFlags().StringVar(&logMode, "log-mode", "", "log mode (dev, prod, quiet)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("config", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
	})
	_ = rootCmd.RegisterFlagCompletionFunc("content", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "db", "sqlite"}, cobra.ShellCompDirectiveFilterFileExt
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"dev", "prod", "quiet"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// loadSiteConfig reads --config and the environment, then applies any flags
// the user set explicitly.
func loadSiteConfig(cmd *cobra.Command) (campbuidl.SiteConfig, error) {
	cfg, err := campbuidl.LoadConfig(cfgFile)
	if err != nil {
		return campbuidl.SiteConfig{}, err
	}
	if cmd.Flags().Changed("content") {
		cfg.ContentPath = contentPath
	}
	if cmd.Flags().Changed("log-mode") {
		cfg.LogMode = logMode
	}
	return cfg, nil
}

// buildApp loads the configured content and composes it.
func buildApp(ctx context.Context, cfg campbuidl.SiteConfig) (*campbuidl.App, error) {
	if cfg.LogMode == "" {
		cfg.LogMode = "quiet"
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, err
	}
	page, err := campbuidl.LoadContent(ctx, cfg.ContentPath)
	if err != nil {
		return nil, err
	}
	source := cfg.ContentPath
	if source == "" {
		source = "built-in"
	}
	log.Debug("content loaded", "source", source, "lessons", len(page.Lessons))
	return campbuidl.New(cfg, page, campbuidl.WithLogger(log))
}

// formatError returns a user-friendly error message. Content violations are
// listed one per line with their code.
func formatError(err error) string {
	vs := content.Violations(err)
	if len(vs) == 0 {
		return err.Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "content has %d violation(s)", len(vs))
	for _, v := range vs {
		fmt.Fprintf(&b, "\n  - [%s] %s", v.Code, v.Error())
	}
	if verbose {
		fmt.Fprintf(&b, "\n\nTechnical details: %v", err)
	}
	return b.String()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}
