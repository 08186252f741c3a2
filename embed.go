package campbuidl

import "embed"

// EmbeddedAssets contains static assets shipped with the binary: favicon.svg
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

func faviconSVG() []byte {
	b, _ := EmbeddedAssets.ReadFile("embedded/favicon.svg")
	return b
}
