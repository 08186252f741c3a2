package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the guide over HTTP",
	Long: `Serve loads and validates the content, composes the page once and serves it
until interrupted.

Examples:
  campbuidl serve
  campbuidl serve --config site.toml
  campbuidl serve --content guide.yaml --addr :8080`,
	RunE: runServe,
}

var (
	serveAddr   string
	serveURL    string
	serveStatic string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :3000)")
	serveCmd.Flags().StringVar(&serveURL, "url", "", "canonical site URL")
	serveCmd.Flags().StringVar(&serveStatic, "static", "", "static asset directory (default public)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadSiteConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}
	if cmd.Flags().Changed("url") {
		cfg.URL = serveURL
	}
	if cmd.Flags().Changed("static") {
		cfg.StaticDir = serveStatic
	}
	if cfg.LogMode == "" {
		cfg.LogMode = "dev"
	}

	app, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	return app.Start(ctx)
}
