package theme

import "image/color"

// Variant names of the two built-in themes.
const (
	VariantDark  = "dark"
	VariantLight = "light"
)

// Palette is the fixed table mapping the ten UI roles a theme covers to
// concrete colors. Palettes are design constants, selected but never
// computed.
type Palette struct {
	Background      color.Color
	Foreground      color.Color
	InputBackground color.Color
	InputBorder     color.Color
	Button          color.Color
	MenuBackground  color.Color
	Primary         color.Color
	Selection       color.Color
	Hover           color.Color
	PlaceHolder     color.Color
}

func rgb(r, g, b uint8) color.Color {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// DarkPalette, Catppuccin Mocha derived.
var DarkPalette = Palette{
	Background:      rgb(0x1e, 0x1e, 0x2e),
	Foreground:      rgb(0xcd, 0xd6, 0xf4),
	InputBackground: rgb(0x18, 0x18, 0x25),
	InputBorder:     rgb(0x45, 0x47, 0x5a),
	Button:          rgb(0x31, 0x32, 0x44),
	MenuBackground:  rgb(0x1e, 0x1e, 0x2e),
	Primary:         rgb(0x89, 0xb4, 0xfa),
	Selection:       rgb(0x45, 0x47, 0x5a),
	Hover:           rgb(0x31, 0x32, 0x44),
	PlaceHolder:     rgb(0x6c, 0x70, 0x86),
}

// LightPalette, Catppuccin Latte derived.
var LightPalette = Palette{
	Background:      rgb(0xef, 0xf1, 0xf5),
	Foreground:      rgb(0x4c, 0x4f, 0x69),
	InputBackground: rgb(0xff, 0xff, 0xff),
	InputBorder:     rgb(0xbc, 0xc0, 0xcc),
	Button:          rgb(0xe6, 0xe9, 0xef),
	MenuBackground:  rgb(0xef, 0xf1, 0xf5),
	Primary:         rgb(0x1e, 0x66, 0xf5),
	Selection:       rgb(0xcc, 0xd0, 0xda),
	Hover:           rgb(0xe6, 0xe9, 0xef),
	PlaceHolder:     rgb(0x8c, 0x8f, 0xa1),
}
