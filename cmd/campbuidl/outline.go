package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/campbuidl"
	"github.com/eringen/campbuidl/internal/preview"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Preview the lessons in the terminal",
	RunE:  runOutline,
}

var outlineWidth int

func init() {
	rootCmd.AddCommand(outlineCmd)

	outlineCmd.Flags().IntVarP(&outlineWidth, "width", "w", 80, "card width in columns")
}

func runOutline(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSiteConfig(cmd)
	if err != nil {
		return err
	}
	page, err := campbuidl.LoadContent(context.Background(), cfg.ContentPath)
	if err != nil {
		return err
	}
	out, err := preview.Render(page, outlineWidth)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
