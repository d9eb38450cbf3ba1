// Package assets bundles the resources the application ships with: the
// default configuration file, per-variant theme overlays and translation
// catalogs.
package assets

import "embed"

//go:embed xfb.conf
var DefaultConfig []byte

//go:embed themes
var Themes embed.FS

//go:embed lang
var Translations embed.FS
