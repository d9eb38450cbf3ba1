// Package theme selects and applies one of the two built-in visual themes:
// a fixed color palette plus an optional stylesheet overlay.
package theme

import (
	"io/fs"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/pkg/errors"

	"xfb/internal/logger"
)

// Applied describes the theme in effect after Apply.
type Applied struct {
	Variant          string
	Palette          Palette
	StylesheetLoaded bool
}

type Applier struct {
	log    logger.Logger
	styles fs.FS
	set    func(fyne.Theme)
}

// NewApplier builds an applier reading stylesheet overlays from styles and
// installing the finished theme through set (normally the toolkit settings).
func NewApplier(log logger.Logger, styles fs.FS, set func(fyne.Theme)) *Applier {
	return &Applier{log: log, styles: styles, set: set}
}

var styleFiles = map[bool]string{
	true:  "themes/dark.json",
	false: "themes/light.json",
}

// Apply selects the palette for the flag and installs it. A missing or
// unparseable stylesheet degrades to palette-only theming, never fails.
// Selection is a pure function of the flag.
func (a *Applier) Apply(dark bool) Applied {
	applied := Applied{Variant: VariantLight, Palette: LightPalette}
	variant := fynetheme.VariantLight
	if dark {
		applied.Variant = VariantDark
		applied.Palette = DarkPalette
		variant = fynetheme.VariantDark
	}

	overlay, err := a.loadStylesheet(styleFiles[dark])
	if err != nil {
		a.log.Warning("ThemeApplier", "stylesheet unavailable, palette-only theme", map[string]interface{}{
			"variant": applied.Variant,
			"reason":  err.Error(),
		})
	} else {
		applied.StylesheetLoaded = true
	}

	a.set(&playerTheme{palette: applied.Palette, variant: variant, overlay: overlay})
	a.log.Info("ThemeApplier", "theme applied", map[string]interface{}{
		"variant":    applied.Variant,
		"stylesheet": applied.StylesheetLoaded,
	})
	return applied
}

func (a *Applier) loadStylesheet(name string) (fyne.Theme, error) {
	data, err := fs.ReadFile(a.styles, name)
	if err != nil {
		return nil, errors.Wrap(err, "read stylesheet")
	}
	overlay, err := fynetheme.FromJSON(string(data))
	if err != nil {
		return nil, errors.Wrap(err, "parse stylesheet")
	}
	return overlay, nil
}
