package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// playerTheme renders one palette variant. Roles outside the palette come
// from the stylesheet overlay when one loaded, otherwise from the toolkit
// default for the same variant.
type playerTheme struct {
	palette Palette
	variant fyne.ThemeVariant
	overlay fyne.Theme
}

var _ fyne.Theme = (*playerTheme)(nil)

func (t *playerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground:
		return t.palette.Background
	case fynetheme.ColorNameForeground:
		return t.palette.Foreground
	case fynetheme.ColorNameInputBackground:
		return t.palette.InputBackground
	case fynetheme.ColorNameInputBorder:
		return t.palette.InputBorder
	case fynetheme.ColorNameButton:
		return t.palette.Button
	case fynetheme.ColorNameMenuBackground:
		return t.palette.MenuBackground
	case fynetheme.ColorNamePrimary:
		return t.palette.Primary
	case fynetheme.ColorNameSelection:
		return t.palette.Selection
	case fynetheme.ColorNameHover:
		return t.palette.Hover
	case fynetheme.ColorNamePlaceHolder:
		return t.palette.PlaceHolder
	}

	if t.overlay != nil {
		return t.overlay.Color(name, t.variant)
	}
	return fynetheme.DefaultTheme().Color(name, t.variant)
}

func (t *playerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

func (t *playerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

func (t *playerTheme) Size(name fyne.ThemeSizeName) float32 {
	if t.overlay != nil {
		return t.overlay.Size(name)
	}
	return fynetheme.DefaultTheme().Size(name)
}
